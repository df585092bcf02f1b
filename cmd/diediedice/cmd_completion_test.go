package main

import (
	"io"
	"os"
	"strings"
	"testing"
)

func TestGenerateBashCompletion(t *testing.T) {
	output := generateBashCompletion()

	if !strings.Contains(output, "complete -F _diediedice diediedice") {
		t.Error("bash completion should register the completion function")
	}
	if !strings.Contains(output, "commands=") {
		t.Error("bash completion should define commands list")
	}

	for _, cmd := range []string{"roll", "completion", "version", "help"} {
		if !strings.Contains(output, cmd) {
			t.Errorf("bash completion should contain subcommand %q", cmd)
		}
	}

	for _, flag := range []string{"--dice", "--sides", "--times", "--seed", "--output", "--verbose", "--theme"} {
		if !strings.Contains(output, flag) {
			t.Errorf("bash completion should contain flag %q", flag)
		}
	}

	if !strings.Contains(output, `output_formats="text json"`) {
		t.Error("bash completion should list output formats")
	}
}

func TestGenerateZshCompletion(t *testing.T) {
	output := generateZshCompletion()

	if !strings.Contains(output, "_arguments") {
		t.Error("zsh completion should use _arguments for flag completion")
	}
	if !strings.Contains(output, "_describe") {
		t.Error("zsh completion should use _describe for command completion")
	}

	for _, cmd := range []string{"roll:", "completion:", "version:", "help:"} {
		if !strings.Contains(output, cmd) {
			t.Errorf("zsh completion should contain subcommand description for %q", cmd)
		}
	}

	if !strings.Contains(output, "(text json)") {
		t.Error("zsh completion should provide output format values")
	}
	if !strings.Contains(output, "(1d20 2d6 4d6 1d100)") {
		t.Error("zsh completion should offer notation presets")
	}
}

func TestGenerateFishCompletion(t *testing.T) {
	output := generateFishCompletion()

	subcommands := map[string]string{
		"roll":       "Roll dice headlessly",
		"completion": "Generate shell completion",
		"version":    "Print version",
		"help":       "Show help",
	}
	for cmd, desc := range subcommands {
		if !strings.Contains(output, "-a "+cmd) {
			t.Errorf("fish completion should register subcommand %q", cmd)
		}
		if !strings.Contains(output, desc) {
			t.Errorf("fish completion should have description containing %q for subcommand %q", desc, cmd)
		}
	}

	for _, flag := range []string{"dice", "sides", "times", "seed", "output", "verbose"} {
		if !strings.Contains(output, "-l "+flag) {
			t.Errorf("fish completion should contain roll long flag %q", flag)
		}
	}
	if !strings.Contains(output, "'text json'") {
		t.Error("fish completion should provide output format values for roll")
	}
}

func TestCompletionShellFormat(t *testing.T) {
	bash := strings.TrimSpace(generateBashCompletion())
	if !strings.HasPrefix(bash, "#") || !strings.HasSuffix(bash, "complete -F _diediedice diediedice") {
		t.Error("bash completion should start with a comment and end with the registration")
	}

	zsh := strings.TrimSpace(generateZshCompletion())
	if !strings.HasPrefix(zsh, "#compdef diediedice") {
		t.Error("zsh completion must start with #compdef diediedice")
	}
	if !strings.HasSuffix(zsh, `_diediedice "$@"`) {
		t.Error("zsh completion should end with _diediedice \"$@\" call")
	}

	// Every non-comment, non-empty fish line should start with "complete"
	for _, line := range strings.Split(generateFishCompletion(), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !strings.HasPrefix(line, "complete ") {
			t.Errorf("fish completion non-comment line should start with 'complete': %q", line)
		}
	}
}

func TestCompletionScript(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish"} {
		script, ok := completionScript(shell)
		if !ok || script == "" {
			t.Errorf("completionScript(%q) should return a script", shell)
		}
	}
	if _, ok := completionScript("powershell"); ok {
		t.Error("completionScript should reject unsupported shells")
	}
}

func TestPrintHelp_WritesExpectedSections(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe failed: %v", err)
	}

	oldStderr := os.Stderr
	os.Stderr = w
	defer func() { os.Stderr = oldStderr }()

	printHelp()
	_ = w.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("failed to read captured stderr: %v", err)
	}
	text := string(out)

	if !strings.Contains(text, "Usage:") || !strings.Contains(text, "Commands:") {
		t.Fatalf("help output missing expected sections:\n%s", text)
	}
	if !strings.Contains(text, "roll      Roll dice headlessly") || !strings.Contains(text, "completion  Generate shell completion") {
		t.Fatalf("help output missing expected command descriptions:\n%s", text)
	}
}

func TestVersionString(t *testing.T) {
	if !strings.HasPrefix(versionString(), "diediedice ") {
		t.Errorf("versionString() = %q", versionString())
	}
}
