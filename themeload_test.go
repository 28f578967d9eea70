package note2doc

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/notesforge/go-note2doc/internal/assets"
)

func TestLoadThemeBuiltins(t *testing.T) {
	t.Parallel()

	for _, name := range BuiltinThemes() {
		theme, err := LoadTheme(name)
		if err != nil {
			t.Errorf("LoadTheme(%q) failed: %v", name, err)
			continue
		}
		if theme.Name != name {
			t.Errorf("theme name = %q, want %q", theme.Name, name)
		}
		if theme.PrimaryColor == "" {
			t.Errorf("theme %q has no primary color", name)
		}
	}
}

func TestLoadThemeEmptyNameLoadsDefault(t *testing.T) {
	t.Parallel()

	theme, err := LoadTheme("")
	if err != nil {
		t.Fatalf("LoadTheme failed: %v", err)
	}
	if theme.Name != assets.DefaultThemeName {
		t.Errorf("theme name = %q, want %q", theme.Name, assets.DefaultThemeName)
	}
}

func TestLoadThemeNotFound(t *testing.T) {
	t.Parallel()

	if _, err := LoadTheme("corporate"); !errors.Is(err, assets.ErrThemeNotFound) {
		t.Errorf("err = %v, want ErrThemeNotFound", err)
	}
}

func TestLoadThemeFromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "custom.yaml")
	content := "name: custom\nprimaryColor: \"#102030\"\nbodyStyle:\n  size: 12\nfutureField: ignored\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	theme, err := LoadTheme(path)
	if err != nil {
		t.Fatalf("LoadTheme failed: %v", err)
	}
	if theme.Name != "custom" || theme.PrimaryColor != "#102030" || theme.BodyStyle.Size != 12 {
		t.Errorf("theme = %+v", theme)
	}
}

func TestLoadThemeMissingFile(t *testing.T) {
	t.Parallel()

	if _, err := LoadTheme(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("missing theme file must fail")
	}
}

func TestLoadThemeResolvesStyles(t *testing.T) {
	t.Parallel()

	theme, err := LoadTheme("tech")
	if err != nil {
		t.Fatalf("LoadTheme failed: %v", err)
	}

	tokens := ResolveStyles(theme, nil)
	if tokens.PrimaryColor != "#0F766E" {
		t.Errorf("PrimaryColor = %q", tokens.PrimaryColor)
	}
	if tokens.Headings[0].Size != 26 {
		t.Errorf("h1 size = %d", tokens.Headings[0].Size)
	}
	if tokens.Colors["accent"] != "#F97316" {
		t.Errorf("colors[accent] = %q", tokens.Colors["accent"])
	}
}
