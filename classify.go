package note2doc

import (
	"regexp"
	"strings"
)

// LineClass is the label a single line receives from ClassifyLine.
// Marker lines resolve through the alias table to a block kind
// ("h1".."h6", "paragraph", "bullet", ...); non-marker lines receive a
// heuristic label.
type LineClass string

// Heuristic labels that do not come from the marker table.
const (
	ClassEmpty           LineClass = "empty"
	ClassText            LineClass = "text"
	ClassTable           LineClass = "table"
	ClassBullet          LineClass = "bullet"
	ClassNumbered        LineClass = "numbered"
	ClassCode            LineClass = "code"
	ClassASCII           LineClass = "ascii"
	ClassParagraph       LineClass = "paragraph"
	ClassParagraphCenter LineClass = "paragraph_center"
	ClassParagraphRight  LineClass = "paragraph_right"
)

// LineInfo is the result of classifying one raw line.
type LineInfo struct {
	Class   LineClass
	Content string // extracted payload, stripped (raw for table/ascii lines)
	Marker  string // original marker name, empty for heuristic matches
	Indent  int    // floor(leading whitespace / 2), for list nesting
}

// markerAliases maps a marker name (the upper-case token before the
// colon) to its block class. Unknown markers classify as ClassText with
// the payload unchanged.
var markerAliases = map[string]LineClass{
	"HEADING": "h1", "H1": "h1",
	"SUBHEADING": "h2", "H2": "h2",
	"SUB-SUBHEADING": "h3", "H3": "h3",
	"H4": "h4", "H5": "h5", "H6": "h6",
	"PARAGRAPH": ClassParagraph, "PARA": ClassParagraph,
	"CENTER":   ClassParagraphCenter,
	"RIGHT":    ClassParagraphRight,
	"BULLET":   ClassBullet,
	"NUMBERED": ClassNumbered,
	"CODE":     ClassCode,
	"TABLE":    ClassTable,
	"ASCII":    ClassASCII, "DIAGRAM": ClassASCII,
	"QUOTE": "quote",
	"NOTE":  "note", "IMPORTANT": "note",
	"IMAGE":     "image",
	"LINK":      "link",
	"HIGHLIGHT": "highlight",
	"FOOTNOTE":  "footnote",
	"TOC":       "toc",
	"WATERMARK": "watermark",
}

// Precompiled patterns for line classification.
var (
	markerPattern   = regexp.MustCompile(`^([A-Z][A-Z0-9-]*):\s*(.*)$`)
	bulletPattern   = regexp.MustCompile(`^(\s*)([-*\x{2022}])\s+(.+)$`)
	numberedPattern = regexp.MustCompile(`^\s*\d+[.)]\s+`)
)

// codePrefixes are tokens that mark a line as code-like when no marker
// or list syntax matched.
var codePrefixes = []string{
	"def ", "class ", "function ", "var ", "let ", "const ",
	"import ", "from ", "if ", "for ", "while ", "return ", "print(",
	"#include", "public ", "private ",
}

// boxDrawingChars trigger ASCII-diagram classification.
const boxDrawingChars = "─│┌┐└┘├┤┬┴┼╔╗╚╝═║"

// paragraphMinLength is the stripped length at which an unmarked line
// counts as a paragraph rather than short text.
const paragraphMinLength = 40

// ClassifyLine maps one raw text line to a typed label and payload.
// It never fails: every line receives some label. Rule order is
// load-bearing: a marker always wins, then table, bullet, numbered,
// code, ASCII, and finally the paragraph/text length split.
func ClassifyLine(line string) LineInfo {
	stripped := strings.TrimSpace(line)
	if stripped == "" {
		return LineInfo{Class: ClassEmpty}
	}

	if m := markerPattern.FindStringSubmatch(stripped); m != nil {
		class, ok := markerAliases[m[1]]
		if !ok {
			class = ClassText
		}
		return LineInfo{
			Class:   class,
			Content: strings.TrimSpace(m[2]),
			Marker:  m[1],
			Indent:  indentLevel(line),
		}
	}

	if strings.Contains(stripped, "|") {
		return LineInfo{Class: ClassTable, Content: stripped}
	}

	if m := bulletPattern.FindStringSubmatch(line); m != nil {
		return LineInfo{
			Class:   ClassBullet,
			Content: m[3],
			Indent:  len(m[1]) / 2,
		}
	}

	if numberedPattern.MatchString(stripped) {
		return LineInfo{Class: ClassNumbered, Content: stripped}
	}

	for _, prefix := range codePrefixes {
		if strings.HasPrefix(stripped, prefix) {
			return LineInfo{Class: ClassCode, Content: stripped}
		}
	}

	if strings.ContainsAny(stripped, boxDrawingChars) {
		return LineInfo{Class: ClassASCII, Content: line}
	}

	if len(stripped) >= paragraphMinLength {
		return LineInfo{Class: ClassParagraph, Content: stripped}
	}
	return LineInfo{Class: ClassText, Content: stripped}
}

// indentLevel computes the nesting level from leading whitespace.
func indentLevel(line string) int {
	return (len(line) - len(strings.TrimLeft(line, " \t"))) / 2
}

// isMarkerLine reports whether the line (after stripping) is a marker
// line. The block parser uses this as its consumption terminator.
func isMarkerLine(line string) bool {
	return markerPattern.MatchString(strings.TrimSpace(line))
}
