package note2doc

import (
	"fmt"
	"html"
	"regexp"
	"strings"
)

// Field reference kinds for page numbering.
const (
	fieldCurrentPage = "page"
	fieldTotalPages  = "total"
)

// pageSegment is one piece of a parsed page-number template: either a
// literal text fragment or a live field reference.
type pageSegment struct {
	Literal string
	Field   string // fieldCurrentPage or fieldTotalPages; empty for literals
}

// legacyPageFormats are historical page-format values migrated to the
// canonical template on load. Fixed migration rule, not a substitution.
var legacyPageFormats = map[string]bool{
	"X | Page":    true,
	"X | P a g e": true,
}

// canonicalPageFormat replaces legacy page-format values.
const canonicalPageFormat = "Page X of Y"

// Brace aliases accepted in page-format templates.
var (
	bracePagePattern  = regexp.MustCompile(`(?i)\{page\}`)
	braceTotalPattern = regexp.MustCompile(`(?i)\{pages\}|\{total\}`)
	pageTokenPattern  = regexp.MustCompile(`(?i)\b([xy])\b`)
)

// normalizePageFormat applies the legacy migration and brace aliases,
// returning a template containing only X/Y tokens and literal text.
func normalizePageFormat(format string) string {
	template := strings.TrimSpace(format)
	if template == "" {
		template = "X"
	}
	if legacyPageFormats[template] {
		template = canonicalPageFormat
	}
	template = bracePagePattern.ReplaceAllString(template, "X")
	template = braceTotalPattern.ReplaceAllString(template, "Y")
	return template
}

// parsePageFormat splits a page-format template into interleaved
// literal and field segments, left to right. A template without any
// X/Y token yields a single current-page field.
func parsePageFormat(format string) []pageSegment {
	template := normalizePageFormat(format)

	var segments []pageSegment
	pos := 0

	for _, m := range pageTokenPattern.FindAllStringSubmatchIndex(template, -1) {
		start, end := m[0], m[1]
		if start > pos {
			segments = append(segments, pageSegment{Literal: template[pos:start]})
		}
		field := fieldCurrentPage
		if strings.EqualFold(template[m[2]:m[3]], "y") {
			field = fieldTotalPages
		}
		segments = append(segments, pageSegment{Field: field})
		pos = end
	}

	if pos < len(template) {
		segments = append(segments, pageSegment{Literal: template[pos:]})
	}

	hasField := false
	for _, s := range segments {
		if s.Field != "" {
			hasField = true
			break
		}
	}
	if !hasField {
		segments = append(segments, pageSegment{Field: fieldCurrentPage})
	}
	return segments
}

// buildPrintTemplate renders one header or footer region as a Chrome
// print template. Field segments become live pageNumber/totalPages
// spans computed at print time; literal text is escaped. The separator
// rule becomes a border on the region edge facing the content.
func buildPrintTemplate(region *HeaderFooter, tokens StyleTokens, isHeader bool) string {
	if region == nil || !region.Enabled {
		return "<span></span>"
	}

	var buf strings.Builder
	if region.Text != "" {
		buf.WriteString(html.EscapeString(region.Text))
	}

	if region.ShowPageNumbers {
		if region.Text != "" {
			buf.WriteString(" | ")
		}
		for _, seg := range parsePageFormat(region.PageFormat) {
			switch seg.Field {
			case fieldCurrentPage:
				buf.WriteString(`<span class="pageNumber"></span>`)
			case fieldTotalPages:
				buf.WriteString(`<span class="totalPages"></span>`)
			default:
				buf.WriteString(html.EscapeString(seg.Literal))
			}
		}
	}

	if buf.Len() == 0 {
		return "<span></span>"
	}

	align := "center"
	switch strings.ToLower(region.Alignment) {
	case AlignLeft:
		align = "left"
	case AlignRight:
		align = "right"
	}

	size := region.Size
	if size <= 0 {
		size = 10
	}
	color := safeColor(region.Color, "#000000")

	separator := ""
	if region.Separator {
		edge := "top"
		if isHeader {
			edge = "bottom"
		}
		separator = fmt.Sprintf(" border-%s: 1px solid %s; padding-%s: 2px;",
			edge, safeColor(region.SeparatorColor, "#CCCCCC"), edge)
	}

	return fmt.Sprintf(
		`<div style="font-size: %dpt; font-family: %s; color: %s; width: 100%%; text-align: %s; margin: 0 %.1fmm;%s">%s</div>`,
		size, tokens.FontFamily, color, align, tokens.Margins.Left, separator, buf.String())
}
