// Package assets embeds the built-in theme files and loads them by
// name.
package assets

import (
	"embed"
	"fmt"
	"sort"
	"strings"
)

//go:embed themes/*
var themes embed.FS

// DefaultThemeName is the theme used when none is specified.
const DefaultThemeName = "professional"

// LoadTheme returns the YAML content of a built-in theme by name.
// The name should not include the .yaml extension.
func LoadTheme(name string) ([]byte, error) {
	if err := ValidateAssetName(name); err != nil {
		return nil, err
	}

	content, err := themes.ReadFile("themes/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrThemeNotFound, name)
	}

	return content, nil
}

// ListThemes returns the names of all built-in themes, sorted.
func ListThemes() []string {
	entries, err := themes.ReadDir("themes")
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}

// ValidateAssetName checks that an asset name is safe for use as a
// filename. Rejects empty names and names containing path separators,
// dots, or traversal characters.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\.") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
