package note2doc

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// mdImporter parses Markdown with GFM extensions for conversion into
// marker syntax.
var mdImporter = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// FromMarkdown converts a Markdown document into marker syntax, so
// existing Markdown notes can enter the pipeline. Headings, paragraphs,
// lists, code fences, quotes, and GFM tables map to their marker
// equivalents; inline emphasis carries over as bold/italic spans.
func FromMarkdown(source string) (string, error) {
	if strings.TrimSpace(source) == "" {
		return "", fmt.Errorf("%w: empty source", ErrMarkdownImport)
	}

	src := []byte(source)
	doc := mdImporter.Parser().Parse(text.NewReader(src))

	var blocks []string
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if block := markerBlock(n, src); block != "" {
			blocks = append(blocks, block)
		}
	}

	return strings.Join(blocks, "\n\n") + "\n", nil
}

// markerBlock converts one top-level Markdown block into a marker
// syntax block.
func markerBlock(n ast.Node, src []byte) string {
	switch node := n.(type) {
	case *ast.Heading:
		return headingMarker(node.Level) + ": " + inlineText(node, src)

	case *ast.Paragraph:
		// A paragraph that is a single link or image becomes the
		// dedicated marker; anything else stays a paragraph.
		if node.ChildCount() == 1 {
			switch only := node.FirstChild().(type) {
			case *ast.Link:
				return fmt.Sprintf("LINK: %s | %s", inlineText(only, src), string(only.Destination))
			case *ast.Image:
				return fmt.Sprintf("IMAGE: %s | %s", string(only.Destination), inlineText(only, src))
			}
		}
		return "PARAGRAPH: " + inlineText(node, src)

	case *ast.List:
		marker := "BULLET:"
		if node.IsOrdered() {
			marker = "NUMBERED:"
		}
		lines := []string{marker}
		for item := node.FirstChild(); item != nil; item = item.NextSibling() {
			lines = append(lines, "- "+inlineText(item, src))
		}
		return strings.Join(lines, "\n")

	case *ast.FencedCodeBlock:
		return "CODE:\n" + rawLines(node, src)

	case *ast.CodeBlock:
		return "CODE:\n" + rawLines(node, src)

	case *ast.Blockquote:
		return "QUOTE: " + inlineText(node, src)

	case *east.Table:
		var lines []string
		marker := "TABLE: "
		for row := node.FirstChild(); row != nil; row = row.NextSibling() {
			var cells []string
			for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
				cells = append(cells, inlineText(cell, src))
			}
			line := "| " + strings.Join(cells, " | ") + " |"
			if marker != "" {
				line = marker + line
				marker = ""
			}
			lines = append(lines, line)
		}
		return strings.Join(lines, "\n")
	}

	return ""
}

// headingMarker maps a Markdown heading level to its marker name.
func headingMarker(level int) string {
	switch level {
	case 1:
		return "HEADING"
	case 2:
		return "SUBHEADING"
	case 3:
		return "SUB-SUBHEADING"
	default:
		return fmt.Sprintf("H%d", clampLevel(level))
	}
}

// inlineText flattens a node's inline content to text, preserving
// emphasis as bold/italic span syntax.
func inlineText(n ast.Node, src []byte) string {
	var buf strings.Builder
	writeInline(&buf, n, src)
	return strings.Join(strings.Fields(buf.String()), " ")
}

func writeInline(buf *strings.Builder, n ast.Node, src []byte) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch node := c.(type) {
		case *ast.Text:
			buf.Write(node.Segment.Value(src))
			if node.SoftLineBreak() || node.HardLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.Emphasis:
			wrap := "*"
			if node.Level >= 2 {
				wrap = "**"
			}
			buf.WriteString(wrap)
			writeInline(buf, node, src)
			buf.WriteString(wrap)
		case *ast.CodeSpan:
			buf.WriteString(string(node.Text(src)))
		default:
			writeInline(buf, c, src)
		}
	}
}

// rawLines returns a code block's lines verbatim, without the trailing
// newline.
func rawLines(n ast.Node, src []byte) string {
	var buf strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(src))
	}
	return strings.TrimRight(buf.String(), "\n")
}
