package main

import (
	"flag"
	"fmt"
	"os"
)

func completionCmd() {
	fs := flag.NewFlagSet("completion", flag.ExitOnError)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: diediedice completion <bash|zsh|fish>\n\n")
		fmt.Fprintf(os.Stderr, "Generate shell completion scripts.\n\n")
		fmt.Fprintf(os.Stderr, "Examples:\n")
		fmt.Fprintf(os.Stderr, "  # Bash\n")
		fmt.Fprintf(os.Stderr, "  diediedice completion bash > /usr/local/etc/bash_completion.d/diediedice\n")
		fmt.Fprintf(os.Stderr, "  # Zsh\n")
		fmt.Fprintf(os.Stderr, "  diediedice completion zsh > \"${fpath[1]}/_diediedice\"\n")
		fmt.Fprintf(os.Stderr, "  # Fish\n")
		fmt.Fprintf(os.Stderr, "  diediedice completion fish > ~/.config/fish/completions/diediedice.fish\n")
	}

	if err := fs.Parse(os.Args[2:]); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Error: shell name is required (bash, zsh, or fish)\n\n")
		fs.Usage()
		os.Exit(1)
	}

	script, ok := completionScript(fs.Arg(0))
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unsupported shell %q (use bash, zsh, or fish)\n", fs.Arg(0))
		os.Exit(1)
	}
	fmt.Print(script)
}

func completionScript(shell string) (string, bool) {
	switch shell {
	case "bash":
		return generateBashCompletion(), true
	case "zsh":
		return generateZshCompletion(), true
	case "fish":
		return generateFishCompletion(), true
	}
	return "", false
}

func generateBashCompletion() string {
	return `# bash completion for diediedice                         -*- shell-script -*-

_diediedice() {
    local cur prev words cword
    _init_completion || return

    local commands="roll completion version help"

    local roll_flags="--dice --sides --times --seed --output --verbose"
    local tui_flags="--dice --sides --seed --theme --version"

    local output_formats="text json"
    local notations="1d20 2d6 4d6 1d100"
    local shells="bash zsh fish"

    case "${prev}" in
        --output)
            COMPREPLY=($(compgen -W "${output_formats}" -- "${cur}"))
            return
            ;;
        --dice|--sides|--times|--seed|--theme)
            # User-provided values
            return
            ;;
    esac

    if [[ ${cword} -eq 1 ]]; then
        if [[ "${cur}" == -* ]]; then
            COMPREPLY=($(compgen -W "${tui_flags}" -- "${cur}"))
        else
            COMPREPLY=($(compgen -W "${commands}" -- "${cur}"))
        fi
        return
    fi

    local command="${words[1]}"

    case "${command}" in
        roll)
            if [[ "${cur}" == -* ]]; then
                COMPREPLY=($(compgen -W "${roll_flags}" -- "${cur}"))
            else
                COMPREPLY=($(compgen -W "${notations}" -- "${cur}"))
            fi
            ;;
        completion)
            COMPREPLY=($(compgen -W "${shells}" -- "${cur}"))
            ;;
    esac
}

complete -F _diediedice diediedice
`
}

func generateZshCompletion() string {
	return `#compdef diediedice

# zsh completion for diediedice

_diediedice() {
    local -a commands
    commands=(
        'roll:Roll dice headlessly and print the history'
        'completion:Generate shell completion scripts'
        'version:Print version information'
        'help:Show help message'
    )

    _arguments -C \
        '--dice[Initial number of dice]:dice:' \
        '--sides[Initial number of sides]:sides:' \
        '--seed[Seed for reproducible rolls]:seed:' \
        '--theme[Color theme]:theme:' \
        '--version[Print version and exit]' \
        '1:command:->command' \
        '*::arg:->args'

    case $state in
        command)
            _describe -t commands 'diediedice commands' commands
            ;;
        args)
            case $words[1] in
                roll)
                    _arguments \
                        '--dice[Number of dice]:dice:' \
                        '--sides[Number of sides per die]:sides:' \
                        '--times[Number of rolls]:times:' \
                        '--seed[Seed for reproducible rolls]:seed:' \
                        '--output[Output format]:format:(text json)' \
                        '--verbose[Include the die count in condensed breakdowns]' \
                        '1:notation:(1d20 2d6 4d6 1d100)'
                    ;;
                completion)
                    _arguments \
                        '1:shell:(bash zsh fish)'
                    ;;
            esac
            ;;
    esac
}

_diediedice "$@"
`
}

func generateFishCompletion() string {
	return `# fish completion for diediedice

# Disable file completions by default
complete -c diediedice -f

# Subcommands
complete -c diediedice -n '__fish_use_subcommand' -a roll -d 'Roll dice headlessly and print the history'
complete -c diediedice -n '__fish_use_subcommand' -a completion -d 'Generate shell completion scripts'
complete -c diediedice -n '__fish_use_subcommand' -a version -d 'Print version information'
complete -c diediedice -n '__fish_use_subcommand' -a help -d 'Show help message'

# TUI flags
complete -c diediedice -n '__fish_use_subcommand' -l dice -d 'Initial number of dice' -r
complete -c diediedice -n '__fish_use_subcommand' -l sides -d 'Initial number of sides' -r
complete -c diediedice -n '__fish_use_subcommand' -l seed -d 'Seed for reproducible rolls' -r
complete -c diediedice -n '__fish_use_subcommand' -l theme -d 'Color theme' -r
complete -c diediedice -n '__fish_use_subcommand' -l version -d 'Print version and exit'

# roll flags
complete -c diediedice -n '__fish_seen_subcommand_from roll' -a '1d20 2d6 4d6 1d100' -d 'Dice notation'
complete -c diediedice -n '__fish_seen_subcommand_from roll' -l dice -d 'Number of dice' -r
complete -c diediedice -n '__fish_seen_subcommand_from roll' -l sides -d 'Number of sides per die' -r
complete -c diediedice -n '__fish_seen_subcommand_from roll' -l times -d 'Number of rolls' -r
complete -c diediedice -n '__fish_seen_subcommand_from roll' -l seed -d 'Seed for reproducible rolls' -r
complete -c diediedice -n '__fish_seen_subcommand_from roll' -l output -d 'Output format' -ra 'text json'
complete -c diediedice -n '__fish_seen_subcommand_from roll' -l verbose -d 'Include the die count in condensed breakdowns'

# completion - shell names
complete -c diediedice -n '__fish_seen_subcommand_from completion' -a 'bash zsh fish' -d 'Shell type'
`
}
