package theme

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNormalizeKey(t *testing.T) {
	got := normalizeKey("  Catppuccin Mocha  ")
	if got != "catppuccin-mocha" {
		t.Fatalf("normalizeKey() = %q, want catppuccin-mocha", got)
	}
}

func TestGetBuiltInTheme(t *testing.T) {
	got, ok := Get("  catppuccin mocha ")
	if !ok {
		t.Fatal("expected built-in theme to be found")
	}
	if got.Name != "Catppuccin Mocha" {
		t.Fatalf("theme name = %q, want Catppuccin Mocha", got.Name)
	}
}

func TestNamesIncludesBuiltIns(t *testing.T) {
	names := Names()
	if len(names) != 4 {
		t.Fatalf("expected 4 built-in themes, got %d", len(names))
	}

	have := map[string]bool{}
	for _, n := range names {
		have[n] = true
	}

	for _, want := range []string{"Catppuccin Mocha", "Paper", "Nord", "Dracula"} {
		if !have[want] {
			t.Fatalf("theme %q not found in Names()", want)
		}
	}
}

func TestResolveBuiltInTheme(t *testing.T) {
	got := Resolve("dracula")
	if got.Name != "Dracula" {
		t.Fatalf("Resolve(dracula) returned %q, want Dracula", got.Name)
	}
}

func TestResolveCustomThemeFromHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	themesDir := filepath.Join(home, ".config", "diediedice", "themes")
	if err := os.MkdirAll(themesDir, 0755); err != nil {
		t.Fatalf("MkdirAll() failed: %v", err)
	}

	yaml := "name: Ocean Breeze\nbase: \"#001122\"\ntext: \"#ffffff\"\n"
	path := filepath.Join(themesDir, "ocean-breeze.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	got := Resolve("ocean breeze")
	if got.Name != "Ocean Breeze" {
		t.Fatalf("Resolve(custom) name = %q, want Ocean Breeze", got.Name)
	}
	if got.Base != "#001122" {
		t.Fatalf("Resolve(custom) base = %q, want #001122", got.Base)
	}
}

func TestAvailableNamesIncludesCustomThemes(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	themesDir := filepath.Join(home, ".config", "diediedice", "themes")
	if err := os.MkdirAll(themesDir, 0755); err != nil {
		t.Fatalf("MkdirAll() failed: %v", err)
	}
	files := map[string]string{
		"ocean.yaml": "name: Ocean Breeze\nbase: \"#001122\"\n",
		"nord.yaml":  "name: Nord\nbase: \"#000000\"\n",
		"amber.yml":  "name: Amber\n",
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(themesDir, name), []byte(body), 0644); err != nil {
			t.Fatalf("WriteFile(%s) failed: %v", name, err)
		}
	}

	got := AvailableNames()
	want := append(Names(), "Amber", "Ocean Breeze")
	if len(got) != len(want) {
		t.Fatalf("AvailableNames() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("AvailableNames() = %v, want %v", got, want)
		}
	}
}

func TestAvailableNamesWithoutCustomDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if got, want := len(AvailableNames()), len(Names()); got != want {
		t.Fatalf("len(AvailableNames()) = %d, want %d built-ins", got, want)
	}
}

func TestResolveFallsBackToDefault(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got := Resolve("not-a-real-theme")
	if got.Name != CatppuccinMocha.Name {
		t.Fatalf("Resolve(unknown) name = %q, want %q", got.Name, CatppuccinMocha.Name)
	}
}

func TestLoadCustomThemeUsesFilenameWhenNameMissing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "my-theme.yaml")

	yaml := "base: \"#010203\"\ntext: \"#eeeeee\"\n"
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	got, err := LoadCustomTheme(path)
	if err != nil {
		t.Fatalf("LoadCustomTheme() failed: %v", err)
	}
	if got.Name != "my-theme" {
		t.Fatalf("Name = %q, want my-theme", got.Name)
	}
}

func TestLoadCustomThemeInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")

	if err := os.WriteFile(path, []byte("name: [\n"), 0644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	if _, err := LoadCustomTheme(path); err == nil {
		t.Fatal("expected parsing error for invalid yaml")
	}
}

func TestLoadCustomThemesSkipsInvalidFiles(t *testing.T) {
	dir := t.TempDir()

	valid := filepath.Join(dir, "forest.yaml")
	invalid := filepath.Join(dir, "broken.yaml")
	nonYAML := filepath.Join(dir, "readme.txt")

	if err := os.WriteFile(valid, []byte("name: Forest\nbase: \"#102030\"\n"), 0644); err != nil {
		t.Fatalf("WriteFile(valid) failed: %v", err)
	}
	if err := os.WriteFile(invalid, []byte("name: [\n"), 0644); err != nil {
		t.Fatalf("WriteFile(invalid) failed: %v", err)
	}
	if err := os.WriteFile(nonYAML, []byte("ignore me"), 0644); err != nil {
		t.Fatalf("WriteFile(nonYAML) failed: %v", err)
	}

	themes := LoadCustomThemes(dir)
	if len(themes) != 1 {
		t.Fatalf("LoadCustomThemes() loaded %d themes, want 1", len(themes))
	}

	if got, ok := themes[normalizeKey("Forest")]; !ok || got.Name != "Forest" {
		t.Fatalf("expected Forest theme, got %#v (ok=%v)", got, ok)
	}
}

func TestLoadCustomThemeInheritsMissingColors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sparse.yaml")

	if err := os.WriteFile(path, []byte("name: Sparse\naccent: \"#123456\"\n"), 0644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	got, err := LoadCustomTheme(path)
	if err != nil {
		t.Fatalf("LoadCustomTheme() failed: %v", err)
	}
	if got.Accent != "#123456" {
		t.Fatalf("Accent = %q, want #123456", got.Accent)
	}
	if got.Text != Default().Text {
		t.Fatalf("Text = %q, want default %q", got.Text, Default().Text)
	}
}

func TestThemeDieColor(t *testing.T) {
	theme := Default()

	tests := []struct {
		value, sides int
		want         string
	}{
		{6, 6, string(theme.Green)},
		{1, 6, string(theme.Red)},
		{3, 6, string(theme.Text)},
		{20, 20, string(theme.Green)},
		{2, 2, string(theme.Green)},
		{1, 2, string(theme.Red)},
	}
	for _, tt := range tests {
		if got := theme.DieColor(tt.value, tt.sides); string(got) != tt.want {
			t.Fatalf("DieColor(%d, %d) = %q, want %q", tt.value, tt.sides, got, tt.want)
		}
	}
}

func TestStylesKeepTheme(t *testing.T) {
	s := NewStyles(Paper)
	if s.Theme().Name != "Paper" {
		t.Fatalf("Styles.Theme().Name = %q, want Paper", s.Theme().Name)
	}
	if s.DieStyle(1, 6).GetForeground() != Paper.Red {
		t.Fatal("DieStyle(1, 6) should use the red accent")
	}
}
