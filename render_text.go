package note2doc

import (
	"fmt"
	"strings"
)

// RenderPlainText projects the node sequence into plain text: the same
// node-to-line mapping as the Markdown target but without markup
// syntax. Table cells are joined with a literal " | ".
func RenderPlainText(res *ParseResult) string {
	var lines []string

	for _, n := range res.Nodes {
		switch n.Kind {
		case KindHeading, KindParagraph, KindCode, KindASCII:
			lines = append(lines, n.Text)
		case KindBullet:
			for _, item := range n.Items {
				lines = append(lines, "- "+item)
			}
		case KindNumbered:
			for i, item := range n.Items {
				lines = append(lines, fmt.Sprintf("%d. %s", i+1, item))
			}
		case KindTable:
			for _, row := range n.Rows {
				lines = append(lines, strings.Join(row, " | "))
			}
		case KindQuote:
			lines = append(lines, `"`+n.Text+`"`)
		case KindNote:
			lines = append(lines, "Note: "+n.Text)
		case KindImage:
			if n.Caption != "" {
				lines = append(lines, fmt.Sprintf("[image: %s] %s", n.Path, n.Caption))
			} else {
				lines = append(lines, fmt.Sprintf("[image: %s]", n.Path))
			}
		case KindLink:
			lines = append(lines, fmt.Sprintf("%s (%s)", n.Text, normalizeURL(n.URL, n.Text)))
		case KindFootnote:
			lines = append(lines, fmt.Sprintf("[%d] %s", n.Index, n.Text))
		case KindTOC:
			lines = append(lines, tocLines(res.Headings, "")...)
		case KindWatermark:
			continue
		}
		lines = append(lines, "")
	}

	return strings.TrimSpace(strings.Join(lines, "\n")) + "\n"
}
