package note2doc

import (
	"fmt"
	"strings"
	"time"
)

// Output format constants.
const (
	FormatHTML     = "html"
	FormatMarkdown = "md"
	FormatText     = "txt"
	FormatPDF      = "pdf"
)

// Page size constants.
const (
	PageSizeA4     = "a4"
	PageSizeLetter = "letter"
	PageSizeLegal  = "legal"
)

// Orientation constants.
const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

// Page number style constants.
const (
	NumberStyleArabic     = "arabic"
	NumberStyleRoman      = "roman"
	NumberStyleAlphabetic = "alphabetic"
)

// Input contains one conversion request.
type Input struct {
	Content    string      // marker-syntax content (required)
	Format     string      // "html", "md", "txt", "pdf" (default: "html")
	Theme      *Theme      // theme input (nil = built-in defaults)
	Formatting *Formatting // explicit per-field overrides (optional)
	Watermark  *Watermark  // watermark config (optional)
	Header     *HeaderFooter
	Footer     *HeaderFooter
	Page       *PageSetup // page size, orientation, border (nil = defaults)
}

// Result holds the rendered artifact plus parse and render diagnostics.
type Result struct {
	Artifact  []byte // rendered output in the requested format
	HTML      []byte // page HTML, kept when Format is "pdf" for debugging
	Warnings  []string
	Structure StructureSummary
}

// Formatting holds explicit per-render overrides. A zero field defers
// to the theme, which in turn defers to the system default.
type Formatting struct {
	Margins     *Margins
	LineSpacing float64
}

// Margins are page margins in millimeters.
type Margins struct {
	Top    float64 `yaml:"top"`
	Bottom float64 `yaml:"bottom"`
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
}

// Watermark configures a text or image watermark centered behind content.
type Watermark struct {
	Type      string  // "text" or "image" (default: "text")
	Text      string  // watermark text
	ImagePath string  // image file path when Type is "image"
	Color     string  // hex color (default: theme primary)
	Opacity   float64 // 0.0 to 1.0 (default: 0.15)
	Angle     float64 // rotation in degrees (default: -24)
}

// Validate checks watermark settings. Nil means no watermark.
func (w *Watermark) Validate() error {
	if w == nil {
		return nil
	}
	if w.Opacity < 0 || w.Opacity > 1 {
		return fmt.Errorf("%w: %.2f (must be between 0 and 1)", ErrInvalidOpacity, w.Opacity)
	}
	return nil
}

// HeaderFooter configures one header or footer region: literal text, an
// optional page-number template, and a separator rule.
type HeaderFooter struct {
	Enabled         bool
	Text            string
	ShowPageNumbers bool
	PageFormat      string // template with X (page) and Y (total), e.g. "Page X of Y"
	NumberStyle     string // "arabic", "roman", "alphabetic"
	Alignment       string // "left", "center", "right"
	Separator       bool
	SeparatorColor  string // hex (default: "#CCCCCC")
	Color           string
	Size            int // points
}

// Validate checks header/footer settings. Nil means the region is off.
func (h *HeaderFooter) Validate() error {
	if h == nil {
		return nil
	}
	switch strings.ToLower(h.NumberStyle) {
	case "", NumberStyleArabic, NumberStyleRoman, NumberStyleAlphabetic:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidNumberStyle, h.NumberStyle)
	}
	return nil
}

// Page border style constants.
const (
	BorderSingle = "single"
	BorderDouble = "double"
	BorderDashed = "dashed"
	BorderDotted = "dotted"
)

// PageBorder configures a border drawn on all four page edges.
type PageBorder struct {
	Enabled bool
	Width   int    // points
	Color   string // hex (default: "#000000")
	Style   string // "single", "double", "dashed", "dotted"
}

// PageSetup configures page dimensions and decoration.
type PageSetup struct {
	Size        string // "a4", "letter", "legal"
	Orientation string // "portrait", "landscape"
	Border      *PageBorder
}

// DefaultPageSetup returns page settings with default values.
func DefaultPageSetup() *PageSetup {
	return &PageSetup{
		Size:        PageSizeA4,
		Orientation: OrientationPortrait,
	}
}

// Validate checks that page settings are valid.
// Returns nil if p is nil (nil means use defaults).
func (p *PageSetup) Validate() error {
	if p == nil {
		return nil
	}
	switch strings.ToLower(p.Size) {
	case "", PageSizeA4, PageSizeLetter, PageSizeLegal:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidPageSize, p.Size)
	}
	switch strings.ToLower(p.Orientation) {
	case "", OrientationPortrait, OrientationLandscape:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidOrientation, p.Orientation)
	}
	if p.Border != nil && p.Border.Enabled {
		switch strings.ToLower(p.Border.Style) {
		case "", BorderSingle, BorderDouble, BorderDashed, BorderDotted:
		default:
			return fmt.Errorf("%w: %q", ErrInvalidBorderStyle, p.Border.Style)
		}
	}
	return nil
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	timeout time.Duration
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the PDF export timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("note2doc: WithTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}
