package note2doc

import "strings"

// Theme is the raw theme/configuration input for style resolution.
// Every field is optional: resolution falls back through explicit
// override, then theme value, then the hard-coded system default.
type Theme struct {
	Name           string       `yaml:"name"`
	PrimaryColor   string       `yaml:"primaryColor"`
	FontFamily     string       `yaml:"fontFamily"`
	CodeFontFamily string       `yaml:"codeFontFamily"`
	HeadingStyle   HeadingStyle `yaml:"headingStyle"`
	BodyStyle      BodyStyle    `yaml:"bodyStyle"`
	TableStyle     TableStyle   `yaml:"tableStyle"`
	Margins        *Margins     `yaml:"margins"`
	// Colors is the named color table used by {colorname:text} inline
	// spans; entries override the built-in table.
	Colors map[string]string `yaml:"colors"`
}

// HeadingStyle holds per-level heading tokens.
type HeadingStyle struct {
	H1 HeadingToken `yaml:"h1"`
	H2 HeadingToken `yaml:"h2"`
	H3 HeadingToken `yaml:"h3"`
	H4 HeadingToken `yaml:"h4"`
	H5 HeadingToken `yaml:"h5"`
	H6 HeadingToken `yaml:"h6"`
}

// HeadingToken is one heading level's raw style input. Zero values mean
// "unset" and resolve to the next tier.
type HeadingToken struct {
	Size   int    `yaml:"size"`   // points
	Weight string `yaml:"weight"` // CSS font-weight: "400".."900"
	Color  string `yaml:"color"`  // hex
}

// BodyStyle is the raw body text style input.
type BodyStyle struct {
	Size       int     `yaml:"size"` // points
	LineHeight float64 `yaml:"lineHeight"`
}

// TableStyle is the raw table style input.
type TableStyle struct {
	BorderWidth int    `yaml:"borderWidth"` // pixels
	BorderColor string `yaml:"borderColor"`
	HeaderFill  string `yaml:"headerFill"`
	HeaderText  string `yaml:"headerText"`
	OddRowFill  string `yaml:"oddRowFill"`
	EvenRowFill string `yaml:"evenRowFill"`
}

// StyleTokens are the concrete, fully resolved rendering values shared
// by all renderers. Resolved once per render request and immutable for
// the duration of the pass.
type StyleTokens struct {
	FontFamily     string
	CodeFontFamily string
	PrimaryColor   string
	Headings       [6]ResolvedHeading // index 0 is h1
	Body           ResolvedBody
	Table          ResolvedTable
	Margins        Margins // millimeters
	LineSpacing    float64
	Colors         map[string]string
}

// ResolvedHeading is one heading level's concrete style.
type ResolvedHeading struct {
	Size   int
	Weight string
	Color  string
}

// ResolvedBody is the concrete body text style.
type ResolvedBody struct {
	Size       int
	LineHeight float64
}

// ResolvedTable is the concrete table style.
type ResolvedTable struct {
	BorderWidth int
	BorderColor string
	HeaderFill  string
	HeaderText  string
	OddRowFill  string
	EvenRowFill string
}

// System defaults: the last tier of the fallback chain.
const (
	defaultPrimaryColor = "#1F3A5F"
	defaultFontFamily   = "Calibri, Arial, sans-serif"
	defaultCodeFont     = "Fira Code, Consolas, monospace"
	defaultBodySize     = 11
	defaultLineHeight   = 1.4
	defaultMarginMM     = 25.0
	fallbackColor       = "#000000"
)

// defaultColorTable is the built-in named color table for inline spans.
func defaultColorTable() map[string]string {
	return map[string]string{
		"h1": "#6200EA", "h2": "#651FFF", "h3": "#7C4DFF",
		"h4": "#B388FF", "h5": "#333333", "h6": "#555555",
		"body": "#000000", "link": "#0563C1",
		"red": "#C62828", "green": "#2E7D32", "blue": "#1565C0",
		"orange": "#EF6C00", "purple": "#6A1B9A", "gray": "#616161",
	}
}

// ResolveStyles maps a theme and optional explicit overrides to
// concrete StyleTokens. Pure function: it never fails, substituting the
// next tier for every missing or malformed field.
func ResolveStyles(theme *Theme, opts *Formatting) StyleTokens {
	if theme == nil {
		theme = &Theme{}
	}

	primary := safeColor(theme.PrimaryColor, defaultPrimaryColor)

	tokens := StyleTokens{
		FontFamily:     fallbackString(theme.FontFamily, defaultFontFamily),
		CodeFontFamily: fallbackString(theme.CodeFontFamily, defaultCodeFont),
		PrimaryColor:   primary,
	}

	levels := [6]HeadingToken{
		theme.HeadingStyle.H1, theme.HeadingStyle.H2, theme.HeadingStyle.H3,
		theme.HeadingStyle.H4, theme.HeadingStyle.H5, theme.HeadingStyle.H6,
	}
	for i, raw := range levels {
		tokens.Headings[i] = resolveHeading(i+1, raw, primary)
	}

	tokens.Body = ResolvedBody{
		Size:       fallbackInt(theme.BodyStyle.Size, defaultBodySize),
		LineHeight: fallbackFloat(theme.BodyStyle.LineHeight, defaultLineHeight),
	}

	tokens.Table = ResolvedTable{
		BorderWidth: fallbackInt(theme.TableStyle.BorderWidth, 1),
		BorderColor: safeColor(theme.TableStyle.BorderColor, "#DDDDDD"),
		HeaderFill:  safeColor(theme.TableStyle.HeaderFill, "#F6F6F6"),
		HeaderText:  safeColor(theme.TableStyle.HeaderText, "#17202A"),
		OddRowFill:  safeColor(theme.TableStyle.OddRowFill, "#F5F5F5"),
		EvenRowFill: safeColor(theme.TableStyle.EvenRowFill, "#FFFFFF"),
	}

	tokens.Margins = Margins{
		Top: defaultMarginMM, Bottom: defaultMarginMM,
		Left: defaultMarginMM, Right: defaultMarginMM,
	}
	if theme.Margins != nil {
		tokens.Margins = resolveMargins(*theme.Margins, tokens.Margins)
	}

	tokens.LineSpacing = tokens.Body.LineHeight

	// Explicit overrides win over theme values.
	if opts != nil {
		if opts.Margins != nil {
			tokens.Margins = resolveMargins(*opts.Margins, tokens.Margins)
		}
		if opts.LineSpacing > 0 {
			tokens.LineSpacing = opts.LineSpacing
		}
	}

	colors := defaultColorTable()
	for name, value := range theme.Colors {
		colors[name] = safeColor(value, fallbackColor)
	}
	tokens.Colors = colors

	return tokens
}

// resolveHeading fills one heading level, deriving size and weight from
// the level when unset: sizes step down from 24pt, h1 is heaviest.
func resolveHeading(level int, raw HeadingToken, primary string) ResolvedHeading {
	size := raw.Size
	if size <= 0 {
		size = 26 - level*2
		if size < 12 {
			size = 12
		}
	}
	weight := raw.Weight
	if weight == "" {
		weight = "600"
		if level == 1 {
			weight = "700"
		}
	}
	return ResolvedHeading{
		Size:   size,
		Weight: weight,
		Color:  safeColor(raw.Color, primary),
	}
}

// resolveMargins substitutes the fallback for any non-positive side.
func resolveMargins(m, fb Margins) Margins {
	out := fb
	if m.Top > 0 {
		out.Top = m.Top
	}
	if m.Bottom > 0 {
		out.Bottom = m.Bottom
	}
	if m.Left > 0 {
		out.Left = m.Left
	}
	if m.Right > 0 {
		out.Right = m.Right
	}
	return out
}

// safeColor validates a 6-digit hex color string (with or without a
// leading #) and returns it normalized to "#RRGGBB" form. Any other
// input yields the fallback rather than an error.
func safeColor(value, fallback string) string {
	cleaned := strings.TrimPrefix(strings.TrimSpace(value), "#")
	if len(cleaned) != 6 {
		return fallback
	}
	for _, c := range cleaned {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return fallback
		}
	}
	return "#" + cleaned
}

func fallbackString(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func fallbackInt(value, fallback int) int {
	if value <= 0 {
		return fallback
	}
	return value
}

func fallbackFloat(value, fallback float64) float64 {
	if value <= 0 {
		return fallback
	}
	return value
}
