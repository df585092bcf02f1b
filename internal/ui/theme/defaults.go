package theme

import (
	"path/filepath"
	"sort"

	"github.com/sadopc/diediedice/internal/config"
)

// Default returns the default theme.
func Default() Theme {
	return CatppuccinMocha
}

// Resolve looks up a theme by name: catalog -> custom themes -> fallback to Mocha.
func Resolve(name string) Theme {
	if t, ok := Get(name); ok {
		return t
	}

	if t, ok := LoadCustomThemes(customDir())[normalizeKey(name)]; ok {
		return t
	}

	return CatppuccinMocha
}

// AvailableNames lists the built-in themes followed by the custom themes in
// ~/.config/diediedice/themes. A custom theme that shadows a built-in name
// is listed once, since Resolve prefers the built-in.
func AvailableNames() []string {
	return namesWithCustom(customDir())
}

func namesWithCustom(dir string) []string {
	names := Names()
	if dir == "" {
		return names
	}

	seen := make(map[string]bool, len(names))
	for _, n := range names {
		seen[normalizeKey(n)] = true
	}

	var custom []string
	for key, t := range LoadCustomThemes(dir) {
		if !seen[key] {
			custom = append(custom, t.Name)
		}
	}
	sort.Strings(custom)
	return append(names, custom...)
}

// customDir returns ~/.config/diediedice/themes, or "" when the home
// directory is unknown.
func customDir() string {
	dir := config.Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "themes")
}
