package note2doc

import "testing"

func TestClassifyLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		line    string
		class   LineClass
		content string
		marker  string
	}{
		{"empty line", "", ClassEmpty, "", ""},
		{"whitespace only", "   \t ", ClassEmpty, "", ""},
		{"heading marker", "HEADING: Project Plan", "h1", "Project Plan", "HEADING"},
		{"h1 alias", "H1: Title", "h1", "Title", "H1"},
		{"subheading marker", "SUBHEADING: Scope", "h2", "Scope", "SUBHEADING"},
		{"sub-subheading marker", "SUB-SUBHEADING: Detail", "h3", "Detail", "SUB-SUBHEADING"},
		{"paragraph marker", "PARAGRAPH: Short.", ClassParagraph, "Short.", "PARAGRAPH"},
		{"para alias", "PARA: Short.", ClassParagraph, "Short.", "PARA"},
		{"center marker", "CENTER: Centered text", ClassParagraphCenter, "Centered text", "CENTER"},
		{"right marker", "RIGHT: Right text", ClassParagraphRight, "Right text", "RIGHT"},
		{"bullet marker", "BULLET: first item", ClassBullet, "first item", "BULLET"},
		{"numbered marker", "NUMBERED: step one", ClassNumbered, "step one", "NUMBERED"},
		{"code marker", "CODE: x := 1", ClassCode, "x := 1", "CODE"},
		{"table marker", "TABLE: | a | b |", ClassTable, "| a | b |", "TABLE"},
		{"diagram alias", "DIAGRAM: layout", ClassASCII, "layout", "DIAGRAM"},
		{"quote marker", "QUOTE: Stay hungry.", "quote", "Stay hungry.", "QUOTE"},
		{"important alias", "IMPORTANT: Deadline moved", "note", "Deadline moved", "IMPORTANT"},
		{"watermark marker", "WATERMARK: DRAFT", "watermark", "DRAFT", "WATERMARK"},
		{"marker without payload", "TOC:", "toc", "", "TOC"},
		{"unknown marker", "WIDGET: something", ClassText, "something", "WIDGET"},
		{"pipe row", "| name | role |", ClassTable, "| name | role |", ""},
		{"dash bullet", "- first", ClassBullet, "first", ""},
		{"star bullet", "* second", ClassBullet, "second", ""},
		{"numbered dot", "1. first step", ClassNumbered, "1. first step", ""},
		{"numbered paren", "2) second step", ClassNumbered, "2) second step", ""},
		{"code prefix def", "def handler(req):", ClassCode, "def handler(req):", ""},
		{"code prefix import", "import os", ClassCode, "import os", ""},
		{"box drawing", "┌────┐", ClassASCII, "┌────┐", ""},
		{"long unmarked line", "This sentence is long enough to be treated as prose.", ClassParagraph, "This sentence is long enough to be treated as prose.", ""},
		{"short unmarked line", "short note", ClassText, "short note", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ClassifyLine(tt.line)
			if got.Class != tt.class {
				t.Errorf("Class = %q, want %q", got.Class, tt.class)
			}
			if got.Content != tt.content {
				t.Errorf("Content = %q, want %q", got.Content, tt.content)
			}
			if got.Marker != tt.marker {
				t.Errorf("Marker = %q, want %q", got.Marker, tt.marker)
			}
		})
	}
}

func TestClassifyLineMarkerBeatsHeuristics(t *testing.T) {
	t.Parallel()

	// A marker line containing a pipe is still a marker line.
	got := ClassifyLine("PARAGRAPH: uses a | character")
	if got.Class != ClassParagraph {
		t.Errorf("Class = %q, want %q", got.Class, ClassParagraph)
	}
	if got.Marker != "PARAGRAPH" {
		t.Errorf("Marker = %q, want PARAGRAPH", got.Marker)
	}
}

func TestClassifyLineIndent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line   string
		indent int
	}{
		{"- top", 0},
		{"  - nested", 1},
		{"    - deeper", 2},
	}

	for _, tt := range tests {
		got := ClassifyLine(tt.line)
		if got.Indent != tt.indent {
			t.Errorf("ClassifyLine(%q).Indent = %d, want %d", tt.line, got.Indent, tt.indent)
		}
	}
}
