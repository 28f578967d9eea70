package note2doc

import (
	"fmt"
	"strings"
)

// RenderMarkdown projects the node sequence into portable Markdown.
// Every node contributes a trailing blank line for block separation;
// the output is trimmed and terminated with exactly one newline.
// Markdown output of the heading/paragraph/list/code/table subset is a
// fixed point: reparsing and re-rendering it yields the same text.
func RenderMarkdown(res *ParseResult) string {
	var lines []string

	for _, n := range res.Nodes {
		switch n.Kind {
		case KindHeading:
			lines = append(lines, strings.Repeat("#", clampLevel(n.Level))+" "+n.Text)
		case KindParagraph:
			lines = append(lines, n.Text)
		case KindBullet:
			for _, item := range n.Items {
				lines = append(lines, "- "+item)
			}
		case KindNumbered:
			for i, item := range n.Items {
				lines = append(lines, fmt.Sprintf("%d. %s", i+1, item))
			}
		case KindCode:
			lines = append(lines, "```", n.Text, "```")
		case KindTable:
			lines = append(lines, tableMarkdown(n.Rows)...)
		case KindQuote:
			lines = append(lines, "> "+n.Text)
		case KindNote:
			lines = append(lines, "> **Note:** "+n.Text)
		case KindASCII:
			lines = append(lines, "```", n.Text, "```")
		case KindImage:
			lines = append(lines, fmt.Sprintf("![%s](%s)", n.Caption, n.Path))
		case KindLink:
			lines = append(lines, fmt.Sprintf("[%s](%s)", n.Text, normalizeURL(n.URL, n.Text)))
		case KindFootnote:
			lines = append(lines, fmt.Sprintf("[^%d]: %s", n.Index, n.Text))
		case KindTOC:
			lines = append(lines, tocLines(res.Headings, "- ")...)
		case KindWatermark:
			continue
		}
		lines = append(lines, "")
	}

	return strings.TrimSpace(strings.Join(lines, "\n")) + "\n"
}

// tableMarkdown emits pipe-delimited rows with a dash separator row
// matching the header width.
func tableMarkdown(rows [][]string) []string {
	if len(rows) == 0 {
		return nil
	}
	out := []string{pipeRow(rows[0])}

	dashes := make([]string, len(rows[0]))
	for i := range dashes {
		dashes[i] = "---"
	}
	out = append(out, pipeRow(dashes))

	for _, row := range rows[1:] {
		out = append(out, pipeRow(row))
	}
	return out
}

func pipeRow(cells []string) string {
	return "| " + strings.Join(cells, " | ") + " |"
}

// tocLines renders the accumulated headings, one per line, indented by
// level. The prefix is prepended after the indent ("- " for Markdown).
func tocLines(headings []Heading, prefix string) []string {
	lines := make([]string, 0, len(headings))
	for _, h := range headings {
		indent := strings.Repeat("  ", clampLevel(h.Level)-1)
		lines = append(lines, indent+prefix+h.Text)
	}
	return lines
}

// clampLevel bounds a heading level to the valid 1..6 range.
func clampLevel(level int) int {
	if level < 1 {
		return 1
	}
	if level > 6 {
		return 6
	}
	return level
}

// normalizeURL defaults the scheme to https when missing, falling back
// to the link text when no URL was given.
func normalizeURL(url, text string) string {
	if url == "" {
		url = text
	}
	if url == "" {
		return ""
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return "https://" + url
	}
	return url
}
