package note2doc

import (
	"fmt"
	"html"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// previewRootClass is the container class for the preview fragment.
const previewRootClass = "nf-preview-root"

// codeHighlightStyle is the chroma style used for CODE blocks.
const codeHighlightStyle = "catppuccin-mocha"

// RenderPreview projects the node sequence into an HTML preview
// fragment with its stylesheet prepended. All text content is escaped;
// code blocks are syntax-highlighted; an optional watermark overlay is
// injected first inside the container, behind all content.
func RenderPreview(res *ParseResult, tokens StyleTokens, wm *Watermark) string {
	var frags []string
	frags = append(frags, `<div class="`+previewRootClass+`">`)

	if overlay := watermarkOverlay(wm, tokens); overlay != "" {
		frags = append(frags, overlay)
	}

	for _, n := range res.Nodes {
		frags = append(frags, previewNode(n, res.Headings, tokens)...)
	}

	frags = append(frags, "</div>")
	return "<style>" + previewCSS(tokens) + "</style>" + strings.Join(frags, "")
}

// previewNode renders one node into HTML fragments.
func previewNode(n Node, headings []Heading, tokens StyleTokens) []string {
	switch n.Kind {
	case KindHeading:
		level := clampLevel(n.Level)
		return []string{fmt.Sprintf("<h%d>%s</h%d>", level, html.EscapeString(n.Text), level)}
	case KindParagraph:
		open := "<p>"
		if n.Align == AlignCenter || n.Align == AlignRight {
			open = fmt.Sprintf(`<p style="text-align:%s">`, n.Align)
		}
		return []string{open + inlineHTML(n.Text, tokens.Colors) + "</p>"}
	case KindBullet:
		return listHTML("ul", n.Items)
	case KindNumbered:
		return listHTML("ol", n.Items)
	case KindCode:
		return []string{codeHTML(n.Text)}
	case KindTable:
		return tableHTML(n.Rows)
	case KindQuote:
		return []string{"<blockquote>" + html.EscapeString(n.Text) + "</blockquote>"}
	case KindNote:
		return []string{`<div class="nf-note">` + html.EscapeString(n.Text) + "</div>"}
	case KindASCII:
		return []string{`<pre class="nf-ascii">` + html.EscapeString(n.Text) + "</pre>"}
	case KindImage:
		return imageHTML(n)
	case KindLink:
		return []string{fmt.Sprintf(`<p><a href="%s">%s</a></p>`,
			html.EscapeString(normalizeURL(n.URL, n.Text)), html.EscapeString(n.Text))}
	case KindFootnote:
		return []string{fmt.Sprintf(`<p class="nf-footnote">[%d] %s</p>`, n.Index, html.EscapeString(n.Text))}
	case KindTOC:
		return tocHTML(headings)
	case KindWatermark:
		// Inline watermark markers activate the document watermark;
		// the overlay itself is injected at the container level.
		return nil
	}
	return nil
}

func listHTML(tag string, items []string) []string {
	frags := []string{"<" + tag + ">"}
	for _, item := range items {
		frags = append(frags, "<li>"+html.EscapeString(item)+"</li>")
	}
	return append(frags, "</"+tag+">")
}

// codeHTML highlights a code block with chroma, falling back to an
// escaped <pre> when no lexer matches.
func codeHTML(code string) string {
	lexer := lexers.Analyse(code)
	if lexer == nil {
		return "<pre><code>" + html.EscapeString(code) + "</code></pre>"
	}

	style := styles.Get(codeHighlightStyle)
	if style == nil {
		style = styles.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return "<pre><code>" + html.EscapeString(code) + "</code></pre>"
	}

	var buf strings.Builder
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return "<pre><code>" + html.EscapeString(code) + "</code></pre>"
	}
	return buf.String()
}

// chromaCSS returns the stylesheet for highlighted code blocks.
func chromaCSS() string {
	style := styles.Get(codeHighlightStyle)
	if style == nil {
		style = styles.Fallback
	}
	var buf strings.Builder
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	if err := formatter.WriteCSS(&buf, style); err != nil {
		return ""
	}
	return buf.String()
}

// tableHTML renders the header row from rows[0] and body rows from the
// remainder. Body rows carry odd/even classes, 1-indexed from the first
// body row, for the alternating fill rule.
func tableHTML(rows [][]string) []string {
	if len(rows) == 0 {
		return nil
	}

	frags := []string{"<table><thead><tr>"}
	for _, col := range rows[0] {
		frags = append(frags, "<th>"+html.EscapeString(col)+"</th>")
	}
	frags = append(frags, "</tr></thead><tbody>")

	for k, row := range rows[1:] {
		class := "nf-row-even"
		if (k+1)%2 == 1 {
			class = "nf-row-odd"
		}
		frags = append(frags, `<tr class="`+class+`">`)
		for _, col := range row {
			frags = append(frags, "<td>"+html.EscapeString(col)+"</td>")
		}
		frags = append(frags, "</tr>")
	}
	return append(frags, "</tbody></table>")
}

func imageHTML(n Node) []string {
	align := n.Align
	if align == "" {
		align = AlignCenter
	}
	frags := []string{fmt.Sprintf(`<figure style="text-align:%s">`, html.EscapeString(align))}
	frags = append(frags, fmt.Sprintf(`<img src="%s" alt="%s"/>`,
		html.EscapeString(n.Path), html.EscapeString(n.Caption)))
	if n.Caption != "" {
		frags = append(frags, "<figcaption>"+html.EscapeString(n.Caption)+"</figcaption>")
	}
	return append(frags, "</figure>")
}

func tocHTML(headings []Heading) []string {
	frags := []string{`<nav class="nf-toc"><ul>`}
	for _, h := range headings {
		frags = append(frags, fmt.Sprintf(`<li class="nf-toc-l%d">%s</li>`,
			clampLevel(h.Level), html.EscapeString(h.Text)))
	}
	return append(frags, "</ul></nav>")
}

// inlineHTML converts paragraph text into escaped HTML with styled
// spans for the inline bold/italic/color runs.
func inlineHTML(text string, colors map[string]string) string {
	var buf strings.Builder
	for _, run := range SplitInlineRuns(text, colors) {
		escaped := html.EscapeString(run.Text)
		switch {
		case run.Bold:
			buf.WriteString("<strong>" + escaped + "</strong>")
		case run.Italic:
			buf.WriteString("<em>" + escaped + "</em>")
		case run.Color != "":
			buf.WriteString(fmt.Sprintf(`<span style="color:%s">%s</span>`, run.Color, escaped))
		default:
			buf.WriteString(escaped)
		}
	}
	return buf.String()
}

// watermarkOverlay builds the absolutely positioned, non-interactive
// watermark element injected first inside the preview container.
func watermarkOverlay(wm *Watermark, tokens StyleTokens) string {
	if wm == nil {
		return ""
	}
	if wm.Type == "image" && wm.ImagePath != "" {
		return fmt.Sprintf(`<div class="nf-watermark" aria-hidden="true"><img src="%s" alt="" style="max-width:40%%;opacity:%.2f;"/></div>`,
			html.EscapeString(wm.ImagePath), watermarkOpacity(wm))
	}
	if wm.Text == "" {
		return ""
	}
	return `<div class="nf-watermark" aria-hidden="true"><span>` + html.EscapeString(wm.Text) + "</span></div>"
}

func watermarkOpacity(wm *Watermark) float64 {
	if wm == nil || wm.Opacity <= 0 {
		return 0.15
	}
	return wm.Opacity
}

// previewCSS builds the preview stylesheet from resolved tokens.
func previewCSS(tokens StyleTokens) string {
	var buf strings.Builder

	fmt.Fprintf(&buf,
		".%s{position:relative;font-family:%s;font-size:%dpt;line-height:%.2f;padding:%.0fmm %.0fmm %.0fmm %.0fmm;color:#17202a;}",
		previewRootClass, tokens.FontFamily, tokens.Body.Size, tokens.LineSpacing,
		tokens.Margins.Top, tokens.Margins.Right, tokens.Margins.Bottom, tokens.Margins.Left)

	buf.WriteString("p{margin:0.4rem 0;}ul,ol{margin:0.4rem 0 0.8rem 1.3rem;}")
	fmt.Fprintf(&buf, "pre{background:#0f172a;color:#e2e8f0;padding:0.75rem;border-radius:8px;overflow:auto;font-family:%s;}", tokens.CodeFontFamily)
	buf.WriteString("blockquote{border-left:3px solid #cbd5e1;margin:0.6rem 0;padding:0.2rem 0.9rem;font-style:italic;}")
	buf.WriteString(".nf-note{border-left:3px solid #f59e0b;background:#fffbeb;padding:0.5rem 0.9rem;margin:0.6rem 0;font-weight:600;}")
	buf.WriteString(".nf-footnote{font-size:0.85em;color:#555;}")
	buf.WriteString(".nf-ascii{background:none;color:inherit;font-family:monospace;}")

	table := tokens.Table
	buf.WriteString("table{width:100%;border-collapse:collapse;margin:0.6rem 0;}")
	fmt.Fprintf(&buf, "th,td{border:%dpx solid %s;padding:0.45rem;text-align:left;}",
		table.BorderWidth, table.BorderColor)
	fmt.Fprintf(&buf, "thead{background:%s;}thead th{color:%s;font-weight:700;}",
		table.HeaderFill, table.HeaderText)
	fmt.Fprintf(&buf, "tr.nf-row-odd{background:%s;}tr.nf-row-even{background:%s;}",
		table.OddRowFill, table.EvenRowFill)

	buf.WriteString(".nf-watermark{position:absolute;inset:0;display:flex;align-items:center;justify-content:center;pointer-events:none;z-index:0;}")
	fmt.Fprintf(&buf, ".nf-watermark span{font-size:42px;font-weight:700;opacity:0.14;transform:rotate(-24deg);color:%s;}", tokens.PrimaryColor)
	fmt.Fprintf(&buf, ".%s>*{position:relative;z-index:1;}", previewRootClass)

	for i, h := range tokens.Headings {
		fmt.Fprintf(&buf, "h%d{font-size:%dpt;font-weight:%s;color:%s;margin:0.8rem 0 0.4rem;}",
			i+1, h.Size, h.Weight, h.Color)
	}

	buf.WriteString(chromaCSS())
	return buf.String()
}
