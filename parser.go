package note2doc

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

// numberedItemPrefix strips a leading "1." or "1)" from a list item.
var numberedItemPrefix = regexp.MustCompile(`^\d+[.)]\s*`)

// wordsPerMinute is the reading speed used for the reading-time estimate.
const wordsPerMinute = 200.0

// Parse consumes marker-syntax content in a single left-to-right pass
// and produces the node sequence, warnings, and summary. Line endings
// are normalized before classification. Malformed constructs degrade to
// a node plus a warning; the only error is empty input.
//
// Parse is stateless across invocations and safe to call concurrently.
func Parse(content string) (*ParseResult, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	content = normalizeLineEndings(content)
	lines := strings.Split(content, "\n")

	p := &blockParser{lines: lines}
	p.run()

	return &ParseResult{
		Nodes:    p.nodes,
		Warnings: p.warnings,
		Headings: p.headings,
		Summary:  summarize(p.nodes),
	}, nil
}

var crlfOrCR = regexp.MustCompile(`\r\n?`)

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// blockParser holds the per-call parse state. The heading accumulator
// and footnote counter live here, never in package state, so concurrent
// parses cannot interfere.
type blockParser struct {
	lines    []string
	idx      int
	nodes    []Node
	warnings []string
	headings []Heading
	footnote int
}

func (p *blockParser) warnf(format string, args ...any) {
	p.warnings = append(p.warnings, fmt.Sprintf(format, args...))
}

func (p *blockParser) emit(n Node) {
	p.nodes = append(p.nodes, n)
}

// run drives the cursor over all lines. Each marker handler consumes
// its full span and leaves the cursor on the first unconsumed line.
func (p *blockParser) run() {
	for p.idx < len(p.lines) {
		raw := p.lines[p.idx]
		stripped := strings.TrimSpace(raw)

		if stripped == "" {
			p.idx++
			continue
		}

		m := markerPattern.FindStringSubmatch(stripped)
		if m == nil {
			// Bare fallback: the block parser is stricter than the
			// heuristic classifier and requires an explicit marker.
			p.emit(Node{Kind: KindParagraph, Text: stripped})
			p.warnf("Line %d: treated as PARAGRAPH (no marker found).", p.idx+1)
			p.idx++
			continue
		}

		marker, payload := m[1], strings.TrimSpace(m[2])
		class, known := markerAliases[marker]
		if !known {
			// Unrecognized markers are skipped deliberately.
			p.idx++
			continue
		}

		switch class {
		case "h1", "h2", "h3", "h4", "h5", "h6":
			level := int(class[1] - '0')
			p.emit(Node{Kind: KindHeading, Level: level, Text: payload})
			p.headings = append(p.headings, Heading{Level: level, Text: payload})
			p.idx++
		case ClassParagraph:
			p.consumeParagraph(payload, AlignLeft)
		case ClassParagraphCenter:
			p.emit(Node{Kind: KindParagraph, Text: payload, Align: AlignCenter})
			p.idx++
		case ClassParagraphRight:
			p.emit(Node{Kind: KindParagraph, Text: payload, Align: AlignRight})
			p.idx++
		case ClassBullet:
			p.consumeList(KindBullet, payload)
		case ClassNumbered:
			p.consumeList(KindNumbered, payload)
		case ClassCode:
			p.consumeRaw(KindCode, payload)
		case ClassTable:
			p.consumeTable(payload)
		case ClassASCII:
			p.consumeRaw(KindASCII, payload)
		case "quote":
			p.emit(Node{Kind: KindQuote, Text: payload})
			p.idx++
		case "note":
			p.emit(Node{Kind: KindNote, Text: payload})
			p.idx++
		case "image":
			p.emitImage(payload)
			p.idx++
		case "link":
			p.emitLink(payload)
			p.idx++
		case "highlight":
			// Highlight blocks keep their documented partial behavior:
			// a plain paragraph; {color:text} spans handle inline color.
			p.emit(Node{Kind: KindParagraph, Text: payload})
			p.idx++
		case "footnote":
			p.footnote++
			p.emit(Node{Kind: KindFootnote, Text: payload, Index: p.footnote})
			p.idx++
		case "toc":
			p.emit(Node{Kind: KindTOC})
			p.idx++
		case "watermark":
			if payload == "" {
				payload = "DRAFT"
			}
			p.emit(Node{Kind: KindWatermark, Text: payload})
			p.idx++
		default:
			p.idx++
		}
	}
}

// consumeParagraph joins the marker payload and subsequent non-marker,
// non-empty lines with single spaces. Stops at the next marker line or
// blank line.
func (p *blockParser) consumeParagraph(payload, align string) {
	var fragments []string
	if payload != "" {
		fragments = append(fragments, payload)
	}

	next := p.idx + 1
	for next < len(p.lines) {
		line := p.lines[next]
		if isMarkerLine(line) || strings.TrimSpace(line) == "" {
			break
		}
		fragments = append(fragments, strings.TrimSpace(line))
		next++
	}

	p.emit(Node{Kind: KindParagraph, Text: strings.Join(fragments, " "), Align: align})
	p.idx = next
}

// consumeList collects one item per subsequent non-marker, non-empty
// line, stripping any leading bullet glyph or "N." / "N)" prefix.
// A zero-item block still emits a node, paired with a warning.
func (p *blockParser) consumeList(kind NodeKind, payload string) {
	start := p.idx
	var items []string

	add := func(s string) {
		if cleaned := stripItemPrefix(kind, s); cleaned != "" {
			items = append(items, cleaned)
		} else if s != "" {
			items = append(items, s)
		}
	}

	if payload != "" {
		add(payload)
	}

	next := p.idx + 1
	for next < len(p.lines) {
		line := p.lines[next]
		stripped := strings.TrimSpace(line)
		if isMarkerLine(line) || stripped == "" {
			break
		}
		add(stripped)
		next++
	}

	if len(items) == 0 {
		p.warnf("Line %d: %s block has no items.", start+1, strings.ToUpper(string(kind)))
	}
	p.emit(Node{Kind: kind, Items: items})
	p.idx = next
}

// stripItemPrefix removes the list glyph appropriate for the kind.
func stripItemPrefix(kind NodeKind, s string) string {
	if kind == KindNumbered {
		return strings.TrimSpace(numberedItemPrefix.ReplaceAllString(s, ""))
	}
	return strings.TrimSpace(strings.TrimLeft(s, "-*• "))
}

// consumeRaw collects right-trimmed raw lines until the next marker
// line, preserving internal whitespace byte for byte. Used for CODE and
// ASCII blocks; trailing blank lines are trimmed from the result.
func (p *blockParser) consumeRaw(kind NodeKind, payload string) {
	var raw []string
	if payload != "" {
		raw = append(raw, payload)
	}

	next := p.idx + 1
	for next < len(p.lines) {
		line := p.lines[next]
		if isMarkerLine(line) {
			break
		}
		raw = append(raw, strings.TrimRight(line, " \t"))
		next++
	}

	text := strings.Trim(strings.Join(raw, "\n"), "\n")
	p.emit(Node{Kind: kind, Text: text})
	p.idx = next
}

// consumeTable splits the payload (when it starts with a pipe) and
// subsequent pipe-prefixed lines into rows. Blank lines are skipped;
// non-pipe lines inside the block are dropped with a warning naming the
// offending line. A zero-row table still emits a node and warns.
func (p *blockParser) consumeTable(payload string) {
	start := p.idx
	var rows [][]string

	if strings.HasPrefix(payload, "|") {
		if row := splitTableRow(payload); len(row) > 0 {
			rows = append(rows, row)
		}
	}

	next := p.idx + 1
	for next < len(p.lines) {
		line := p.lines[next]
		stripped := strings.TrimSpace(line)
		if isMarkerLine(line) {
			break
		}
		if stripped == "" {
			next++
			continue
		}
		if strings.HasPrefix(stripped, "|") {
			if row := splitTableRow(stripped); len(row) > 0 {
				rows = append(rows, row)
			}
		} else {
			p.warnf("Line %d: ignored invalid TABLE row.", next+1)
		}
		next++
	}

	if len(rows) == 0 {
		p.warnf("Line %d: TABLE has no rows.", start+1)
	}
	p.emit(Node{Kind: KindTable, Rows: rows})
	p.idx = next
}

// splitTableRow splits a pipe-delimited row into trimmed cells,
// dropping the empty cells produced by a leading or trailing pipe.
// Short rows are not padded; renderers handle jagged rows.
func splitTableRow(row string) []string {
	cleaned := strings.Trim(strings.TrimSpace(row), "|")
	if strings.TrimSpace(cleaned) == "" {
		return nil
	}
	parts := strings.Split(cleaned, "|")
	cells := make([]string, len(parts))
	for i, part := range parts {
		cells[i] = strings.TrimSpace(part)
	}
	return cells
}

// emitImage parses an IMAGE payload of the form "path|caption|alignment".
func (p *blockParser) emitImage(payload string) {
	parts := strings.Split(payload, "|")
	node := Node{Kind: KindImage, Align: AlignCenter}
	node.Path = strings.Trim(strings.TrimSpace(parts[0]), `"`)
	if len(parts) > 1 {
		node.Caption = strings.Trim(strings.TrimSpace(parts[1]), `"`)
	}
	if len(parts) > 2 {
		if align := strings.Trim(strings.TrimSpace(parts[2]), `"`); align != "" {
			node.Align = align
		}
	}
	p.emit(node)
}

// emitLink parses a LINK payload of the form "text|url".
func (p *blockParser) emitLink(payload string) {
	parts := strings.Split(payload, "|")
	node := Node{Kind: KindLink}
	node.Text = strings.Trim(strings.TrimSpace(parts[0]), `"`)
	if len(parts) > 1 {
		node.URL = strings.Trim(strings.TrimSpace(parts[1]), `"`)
	}
	p.emit(node)
}

// summarize derives the document statistics from the node sequence.
// The word count covers heading, paragraph, and code text plus all list
// items and table cells, in node order.
func summarize(nodes []Node) StructureSummary {
	var parts []string
	headings := 0

	for _, n := range nodes {
		switch n.Kind {
		case KindHeading:
			headings++
			if n.Text != "" {
				parts = append(parts, n.Text)
			}
		case KindParagraph, KindCode:
			if n.Text != "" {
				parts = append(parts, n.Text)
			}
		}
		parts = append(parts, n.Items...)
		for _, row := range n.Rows {
			parts = append(parts, row...)
		}
	}

	words := len(strings.Fields(strings.Join(parts, " ")))
	reading := math.Round(float64(words)/wordsPerMinute*100) / 100

	return StructureSummary{
		WordCount:          words,
		HeadingCount:       headings,
		ReadingTimeMinutes: reading,
	}
}
