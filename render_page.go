package note2doc

import (
	"fmt"
	"strings"

	"github.com/notesforge/go-note2doc/internal/fileutil"
)

// mmPerInch converts millimeter margins to the inch values Chrome's
// print API expects.
const mmPerInch = 25.4

// Paper dimensions in inches, portrait.
var paperSizes = map[string][2]float64{
	PageSizeA4:     {8.27, 11.69},
	PageSizeLetter: {8.5, 11},
	PageSizeLegal:  {8.5, 14},
}

// printOptions carries the page-level layout instructions that cannot
// be expressed inside the HTML itself: paper geometry, margins, and the
// header/footer print templates with their live page-number fields.
type printOptions struct {
	PaperWidth   float64
	PaperHeight  float64
	MarginTop    float64 // inches
	MarginBottom float64
	MarginLeft   float64
	MarginRight  float64
	Header       string // Chrome print template HTML
	Footer       string
	ShowRegions  bool
}

// RenderPage builds the page-oriented output: a standalone HTML
// document with print CSS plus the print options for the paged target.
// File-system reads for image assets are guarded by existence checks; a
// missing asset degrades to a skipped element plus a warning.
func RenderPage(res *ParseResult, tokens StyleTokens, input Input) (string, *printOptions, []string) {
	var warnings []string
	var body []string

	wm := effectiveWatermark(res, input.Watermark)

	for _, n := range res.Nodes {
		frags, warn := pageNode(n, res.Headings, tokens)
		body = append(body, frags...)
		warnings = append(warnings, warn...)
	}

	css, wmWarnings := pageCSS(tokens, input.Page, wm)
	warnings = append(warnings, wmWarnings...)

	doc := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Document</title>
<style>%s</style>
</head>
<body>
%s
</body>
</html>`, css, strings.Join(body, "\n"))

	opts, optWarnings := buildPrintOptions(tokens, input)
	warnings = append(warnings, optWarnings...)

	return doc, opts, warnings
}

// effectiveWatermark resolves the watermark for a render: an explicit
// configuration wins; otherwise the first WATERMARK node in the
// document activates a text watermark with its payload.
func effectiveWatermark(res *ParseResult, configured *Watermark) *Watermark {
	if configured != nil {
		return configured
	}
	for _, n := range res.Nodes {
		if n.Kind == KindWatermark {
			return &Watermark{Type: "text", Text: n.Text}
		}
	}
	return nil
}

// pageNode renders one node for the paged target. Most kinds share the
// preview projection; images get existence checks here because this is
// the only renderer that touches the file system.
func pageNode(n Node, headings []Heading, tokens StyleTokens) ([]string, []string) {
	switch n.Kind {
	case KindImage:
		if n.Path == "" || (!fileutil.IsURL(n.Path) && !fileutil.FileExists(n.Path)) {
			return nil, []string{fmt.Sprintf("Image not found: %s; skipped.", n.Path)}
		}
		return imageHTML(n), nil
	case KindWatermark:
		return nil, nil
	default:
		return previewNode(n, headings, tokens), nil
	}
}

// pageCSS builds the print stylesheet: body typography, table shading,
// heading styles, the page border, and the watermark layer.
func pageCSS(tokens StyleTokens, page *PageSetup, wm *Watermark) (string, []string) {
	var warnings []string
	var buf strings.Builder

	fmt.Fprintf(&buf, "body{font-family:%s;font-size:%dpt;line-height:%.2f;color:#17202a;margin:0;}",
		tokens.FontFamily, tokens.Body.Size, tokens.LineSpacing)

	buf.WriteString("p{margin:0 0 6pt;}ul,ol{margin:0.4rem 0 0.8rem 1.3rem;}")
	fmt.Fprintf(&buf, "pre{background:#0f172a;color:#e2e8f0;padding:0.75rem;border-radius:4px;white-space:pre-wrap;font-family:%s;}", tokens.CodeFontFamily)
	buf.WriteString("blockquote{border-left:3px solid #cbd5e1;margin:0.6rem 0;padding:0.2rem 0.9rem;font-style:italic;}")
	buf.WriteString(".nf-note{border-left:3px solid #f59e0b;background:#fffbeb;padding:0.5rem 0.9rem;margin:0.6rem 0;font-weight:600;}")
	buf.WriteString(".nf-footnote{font-size:0.85em;color:#555;}")
	buf.WriteString(".nf-ascii{background:none;color:inherit;font-family:monospace;}")
	buf.WriteString("figure{margin:0.6rem 0;}figure img{max-width:60%;}figcaption{font-style:italic;font-size:0.85em;}")

	table := tokens.Table
	buf.WriteString("table{width:100%;border-collapse:collapse;margin:0.6rem 0;}")
	fmt.Fprintf(&buf, "th,td{border:%dpx solid %s;padding:0.35rem;text-align:left;}",
		table.BorderWidth, table.BorderColor)
	fmt.Fprintf(&buf, "thead{background:%s;}thead th{color:%s;font-weight:700;}",
		table.HeaderFill, table.HeaderText)
	fmt.Fprintf(&buf, "tr.nf-row-odd{background:%s;}tr.nf-row-even{background:%s;}",
		table.OddRowFill, table.EvenRowFill)

	// Keep headings attached to their content at page boundaries.
	buf.WriteString("h1,h2,h3,h4,h5,h6{break-after:avoid;page-break-after:avoid;}")
	for i, h := range tokens.Headings {
		fmt.Fprintf(&buf, "h%d{font-size:%dpt;font-weight:%s;color:%s;margin:12pt 0 4pt;}",
			i+1, h.Size, h.Weight, h.Color)
	}

	if border := pageBorderCSS(page); border != "" {
		buf.WriteString(border)
	}

	css, wmWarnings := watermarkCSS(wm, tokens)
	warnings = append(warnings, wmWarnings...)
	buf.WriteString(css)

	return buf.String(), warnings
}

// pageBorderCSS draws the page border on every printed page using a
// fixed element inset from the page edges.
func pageBorderCSS(page *PageSetup) string {
	if page == nil || page.Border == nil || !page.Border.Enabled {
		return ""
	}
	b := page.Border

	width := b.Width
	if width <= 0 {
		width = 1
	}
	style := "solid"
	switch strings.ToLower(b.Style) {
	case BorderDouble:
		style = "double"
	case BorderDashed:
		style = "dashed"
	case BorderDotted:
		style = "dotted"
	}

	return fmt.Sprintf(
		"body::after{content:\"\";position:fixed;inset:2mm;border:%dpt %s %s;pointer-events:none;}",
		width, style, safeColor(b.Color, "#000000"))
}

// watermarkCSS renders the watermark centered behind content on every
// page. A missing image asset degrades to a warning and no watermark.
func watermarkCSS(wm *Watermark, tokens StyleTokens) (string, []string) {
	if wm == nil {
		return "", nil
	}

	if wm.Type == "image" {
		if wm.ImagePath == "" || !fileutil.FileExists(wm.ImagePath) {
			return "", []string{fmt.Sprintf("Watermark image not found: %s; skipped.", wm.ImagePath)}
		}
		return fmt.Sprintf(
			"body::before{content:\"\";position:fixed;top:50%%;left:50%%;width:40%%;height:40%%;transform:translate(-50%%,-50%%);background:url(%q) center/contain no-repeat;opacity:%.2f;z-index:-1;pointer-events:none;}",
			"file://"+wm.ImagePath, watermarkOpacity(wm)), nil
	}

	if wm.Text == "" {
		return "", nil
	}

	angle := wm.Angle
	if angle == 0 {
		angle = -24
	}
	color := safeColor(wm.Color, tokens.PrimaryColor)

	return fmt.Sprintf(
		"body::before{content:%q;position:fixed;top:50%%;left:50%%;transform:translate(-50%%,-50%%) rotate(%.1fdeg);font-size:6rem;font-weight:700;color:%s;opacity:%.2f;z-index:-1;pointer-events:none;white-space:nowrap;}",
		escapeCSSString(wm.Text), angle, color, watermarkOpacity(wm)), nil
}

// escapeCSSString escapes a string for safe use in a CSS content
// property.
func escapeCSSString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", `\A `)
	s = strings.ReplaceAll(s, "\r", "")
	return s
}

// buildPrintOptions assembles paper geometry, margins, and the
// header/footer templates for the paged target.
func buildPrintOptions(tokens StyleTokens, input Input) (*printOptions, []string) {
	var warnings []string

	page := input.Page
	if page == nil {
		page = DefaultPageSetup()
	}

	size, ok := paperSizes[strings.ToLower(page.Size)]
	if !ok {
		size = paperSizes[PageSizeA4]
	}
	width, height := size[0], size[1]
	if strings.ToLower(page.Orientation) == OrientationLandscape {
		width, height = height, width
	}

	opts := &printOptions{
		PaperWidth:   width,
		PaperHeight:  height,
		MarginTop:    tokens.Margins.Top / mmPerInch,
		MarginBottom: tokens.Margins.Bottom / mmPerInch,
		MarginLeft:   tokens.Margins.Left / mmPerInch,
		MarginRight:  tokens.Margins.Right / mmPerInch,
		Header:       buildPrintTemplate(input.Header, tokens, true),
		Footer:       buildPrintTemplate(input.Footer, tokens, false),
	}
	opts.ShowRegions = regionEnabled(input.Header) || regionEnabled(input.Footer)

	// Chrome print templates render page-number fields in arabic only;
	// other styles degrade to live arabic fields rather than a wrong
	// static number.
	for _, region := range []*HeaderFooter{input.Header, input.Footer} {
		if region == nil || !region.Enabled || !region.ShowPageNumbers {
			continue
		}
		switch strings.ToLower(region.NumberStyle) {
		case "", NumberStyleArabic:
		default:
			warnings = append(warnings,
				fmt.Sprintf("Page number style %q not supported by the paged target; using arabic.", region.NumberStyle))
		}
	}

	return opts, warnings
}

func regionEnabled(region *HeaderFooter) bool {
	return region != nil && region.Enabled
}
