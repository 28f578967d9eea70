package note2doc

import (
	"fmt"
	"os"

	"github.com/notesforge/go-note2doc/internal/assets"
	"github.com/notesforge/go-note2doc/internal/fileutil"
	"github.com/notesforge/go-note2doc/internal/yamlutil"
)

// LoadTheme resolves a theme by name or file path. A bare name loads a
// built-in theme ("professional", "tech", "minimal"); anything
// containing a path separator is read from disk. An empty input loads
// the default theme. Theme decoding is tolerant: unknown fields are
// ignored so older binaries can read newer theme files.
func LoadTheme(nameOrPath string) (*Theme, error) {
	if nameOrPath == "" {
		nameOrPath = assets.DefaultThemeName
	}

	var data []byte
	if fileutil.IsFilePath(nameOrPath) {
		content, err := os.ReadFile(nameOrPath) // #nosec G304 -- user-provided path
		if err != nil {
			return nil, fmt.Errorf("loading theme file %q: %w", nameOrPath, err)
		}
		data = content
	} else {
		content, err := assets.LoadTheme(nameOrPath)
		if err != nil {
			return nil, err
		}
		data = content
	}

	var theme Theme
	if err := yamlutil.Unmarshal(data, &theme); err != nil {
		return nil, fmt.Errorf("decoding theme %q: %w", nameOrPath, err)
	}
	return &theme, nil
}

// BuiltinThemes returns the names of the built-in themes.
func BuiltinThemes() []string {
	return assets.ListThemes()
}
