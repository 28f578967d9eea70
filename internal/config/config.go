// Package config loads and validates CLI configuration files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/notesforge/go-note2doc/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Field length limits for multi-tenant safety.
const (
	MaxTextLength           = 500  // header/footer free-form text
	MaxPageFormatLength     = 100  // page-number template
	MaxThemeLength          = 2048 // theme name or path
	MaxFormatLength         = 10   // "html", "md", "txt", "pdf"
	MaxPageSizeLength       = 10   // "a4", "letter", "legal"
	MaxOrientationLength    = 10   // "portrait", "landscape"
	MaxWatermarkTextLength  = 50   // "DRAFT", "CONFIDENTIAL"
	MaxWatermarkColorLength = 20   // "#888888"
	MaxImagePathLength      = 2048
)

// Config holds all configuration for document generation.
type Config struct {
	Input     InputConfig     `yaml:"input"`
	Output    OutputConfig    `yaml:"output"`
	Theme     ThemeConfig     `yaml:"theme"`
	Watermark WatermarkConfig `yaml:"watermark"`
	Header    RegionConfig    `yaml:"header"`
	Footer    RegionConfig    `yaml:"footer"`
	Page      PageConfig      `yaml:"page"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // default input directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // default output directory (empty = same as source)
	Format     string `yaml:"format"`     // "html", "md", "txt", "pdf" (default: "html")
}

// ThemeConfig defines styling options.
type ThemeConfig struct {
	Name string `yaml:"name"` // built-in theme name or path to a theme file
}

// WatermarkConfig defines background watermark options.
type WatermarkConfig struct {
	Enabled   bool    `yaml:"enabled"`
	Type      string  `yaml:"type"`      // "text" or "image" (default: "text")
	Text      string  `yaml:"text"`      // e.g. "DRAFT", "CONFIDENTIAL"
	ImagePath string  `yaml:"imagePath"` // when type is "image"
	Color     string  `yaml:"color"`     // hex (default: theme primary)
	Opacity   float64 `yaml:"opacity"`   // 0.0 to 1.0 (default: 0.15)
	Angle     float64 `yaml:"angle"`     // degrees (default: -24)
}

// RegionConfig defines one header or footer region.
type RegionConfig struct {
	Enabled         bool   `yaml:"enabled"`
	Text            string `yaml:"text"`
	ShowPageNumbers bool   `yaml:"showPageNumbers"`
	PageFormat      string `yaml:"pageFormat"`  // template with X (page) and Y (total)
	NumberStyle     string `yaml:"numberStyle"` // "arabic", "roman", "alphabetic"
	Alignment       string `yaml:"alignment"`   // "left", "center", "right"
	Separator       bool   `yaml:"separator"`
	SeparatorColor  string `yaml:"separatorColor"`
	Color           string `yaml:"color"`
	Size            int    `yaml:"size"` // points
}

// PageConfig defines page geometry and decoration.
type PageConfig struct {
	Size        string       `yaml:"size"`        // "a4", "letter", "legal" (default: "a4")
	Orientation string       `yaml:"orientation"` // "portrait", "landscape" (default: "portrait")
	Border      BorderConfig `yaml:"border"`
}

// BorderConfig defines the page border drawn on all four edges.
type BorderConfig struct {
	Enabled bool   `yaml:"enabled"`
	Width   int    `yaml:"width"` // points
	Color   string `yaml:"color"`
	Style   string `yaml:"style"` // "single", "double", "dashed", "dotted"
}

// Validate checks field values and lengths. Called automatically by
// LoadConfig, but available for consumers who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("theme.name", c.Theme.Name, MaxThemeLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.format", c.Output.Format, MaxFormatLength); err != nil {
		return err
	}
	if c.Output.Format != "" {
		switch strings.ToLower(c.Output.Format) {
		case "html", "md", "txt", "pdf":
		default:
			return fmt.Errorf("output.format: invalid value %q (must be html, md, txt, or pdf)", c.Output.Format)
		}
	}

	if err := validateFieldLength("page.size", c.Page.Size, MaxPageSizeLength); err != nil {
		return err
	}
	if err := validateFieldLength("page.orientation", c.Page.Orientation, MaxOrientationLength); err != nil {
		return err
	}
	if c.Page.Border.Enabled && c.Page.Border.Style != "" {
		switch strings.ToLower(c.Page.Border.Style) {
		case "single", "double", "dashed", "dotted":
		default:
			return fmt.Errorf("page.border.style: invalid value %q (must be single, double, dashed, or dotted)", c.Page.Border.Style)
		}
	}

	if c.Watermark.Enabled {
		switch strings.ToLower(c.Watermark.Type) {
		case "", "text":
			if c.Watermark.Text == "" {
				return fmt.Errorf("watermark.text: required when watermark is enabled")
			}
		case "image":
			if c.Watermark.ImagePath == "" {
				return fmt.Errorf("watermark.imagePath: required when watermark type is image")
			}
		default:
			return fmt.Errorf("watermark.type: invalid value %q (must be text or image)", c.Watermark.Type)
		}
		if err := validateFieldLength("watermark.text", c.Watermark.Text, MaxWatermarkTextLength); err != nil {
			return err
		}
		if err := validateFieldLength("watermark.color", c.Watermark.Color, MaxWatermarkColorLength); err != nil {
			return err
		}
		if err := validateFieldLength("watermark.imagePath", c.Watermark.ImagePath, MaxImagePathLength); err != nil {
			return err
		}
		if c.Watermark.Opacity < 0 || c.Watermark.Opacity > 1 {
			return fmt.Errorf("watermark.opacity: must be between 0 and 1, got %.2f", c.Watermark.Opacity)
		}
		if c.Watermark.Angle < -90 || c.Watermark.Angle > 90 {
			return fmt.Errorf("watermark.angle: must be between -90 and 90, got %.2f", c.Watermark.Angle)
		}
	}

	if err := validateRegion("header", c.Header); err != nil {
		return err
	}
	return validateRegion("footer", c.Footer)
}

// validateRegion checks one header or footer section.
func validateRegion(section string, r RegionConfig) error {
	if err := validateFieldLength(section+".text", r.Text, MaxTextLength); err != nil {
		return err
	}
	if err := validateFieldLength(section+".pageFormat", r.PageFormat, MaxPageFormatLength); err != nil {
		return err
	}
	if r.Alignment != "" {
		switch strings.ToLower(r.Alignment) {
		case "left", "center", "right":
		default:
			return fmt.Errorf("%s.alignment: invalid value %q (must be left, center, or right)", section, r.Alignment)
		}
	}
	if r.NumberStyle != "" {
		switch strings.ToLower(r.NumberStyle) {
		case "arabic", "roman", "alphabetic":
		default:
			return fmt.Errorf("%s.numberStyle: invalid value %q (must be arabic, roman, or alphabetic)", section, r.NumberStyle)
		}
	}
	if r.Size < 0 || r.Size > 48 {
		return fmt.Errorf("%s.size: must be between 0 and 48, got %d", section, r.Size)
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a neutral configuration with all decoration
// disabled.
func DefaultConfig() *Config {
	return &Config{
		Output:    OutputConfig{Format: "html"},
		Watermark: WatermarkConfig{Enabled: false},
		Header:    RegionConfig{Enabled: false},
		Footer:    RegionConfig{Enabled: false},
		Page:      PageConfig{Size: "a4", Orientation: "portrait"},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's searched in standard locations. Returns an error if
// the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard
// locations. Tries extensions in order: .yaml, .yml.
// Tries locations in order: current directory, ~/.config/note2doc/.
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "note2doc", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
