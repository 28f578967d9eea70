package assets_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/notesforge/go-note2doc/internal/assets"
)

func TestLoadTheme(t *testing.T) {
	t.Parallel()

	content, err := assets.LoadTheme(assets.DefaultThemeName)
	if err != nil {
		t.Fatalf("LoadTheme failed: %v", err)
	}
	if !strings.Contains(string(content), "primaryColor") {
		t.Errorf("theme yaml missing primaryColor:\n%s", content)
	}
}

func TestLoadThemeNotFound(t *testing.T) {
	t.Parallel()

	_, err := assets.LoadTheme("nonexistent")
	if !errors.Is(err, assets.ErrThemeNotFound) {
		t.Errorf("err = %v, want ErrThemeNotFound", err)
	}
}

func TestLoadThemeRejectsTraversal(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"", "../secrets", "a/b", "theme.yaml"} {
		if _, err := assets.LoadTheme(name); !errors.Is(err, assets.ErrInvalidAssetName) {
			t.Errorf("LoadTheme(%q) err = %v, want ErrInvalidAssetName", name, err)
		}
	}
}

func TestListThemes(t *testing.T) {
	t.Parallel()

	names := assets.ListThemes()
	if len(names) == 0 {
		t.Fatal("no built-in themes")
	}

	found := false
	for i, name := range names {
		if name == assets.DefaultThemeName {
			found = true
		}
		if i > 0 && names[i-1] > name {
			t.Errorf("names not sorted: %v", names)
		}
		if strings.HasSuffix(name, ".yaml") {
			t.Errorf("name %q carries its extension", name)
		}
	}
	if !found {
		t.Errorf("default theme %q not listed in %v", assets.DefaultThemeName, names)
	}
}
