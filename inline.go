package note2doc

import (
	"regexp"
	"strings"
)

// StyledRun is one contiguous span of paragraph text with uniform
// styling. Color is empty for plain runs (body color applies).
type StyledRun struct {
	Text   string
	Bold   bool
	Italic bool
	Color  string // resolved hex color for {name:text} spans
}

// inlinePattern matches the three inline span forms: **bold**, *italic*
// and {colorname:text}. Scanned left to right; everything between
// matches becomes a plain run.
var inlinePattern = regexp.MustCompile(`\*\*[^*]+\*\*|\*[^*]+\*|\{[^}:]+:[^}]+\}`)

// colorSpanPattern extracts name and text from a {name:text} span.
var colorSpanPattern = regexp.MustCompile(`^\{([^}:]+):([^}]+)\}$`)

// SplitInlineRuns tokenizes paragraph text into styled runs. Color
// names resolve against the token color table; unknown names fall back
// to the default body color (empty Color on the run).
func SplitInlineRuns(text string, colors map[string]string) []StyledRun {
	if text == "" {
		return nil
	}

	var runs []StyledRun
	pos := 0

	for _, loc := range inlinePattern.FindAllStringIndex(text, -1) {
		if loc[0] > pos {
			runs = append(runs, StyledRun{Text: text[pos:loc[0]]})
		}
		runs = append(runs, styledRun(text[loc[0]:loc[1]], colors))
		pos = loc[1]
	}

	if pos < len(text) {
		runs = append(runs, StyledRun{Text: text[pos:]})
	}
	return runs
}

// styledRun converts one matched span into its run.
func styledRun(span string, colors map[string]string) StyledRun {
	switch {
	case strings.HasPrefix(span, "**") && strings.HasSuffix(span, "**"):
		return StyledRun{Text: span[2 : len(span)-2], Bold: true}
	case strings.HasPrefix(span, "*") && strings.HasSuffix(span, "*"):
		return StyledRun{Text: span[1 : len(span)-1], Italic: true}
	default:
		m := colorSpanPattern.FindStringSubmatch(span)
		if m == nil {
			return StyledRun{Text: span}
		}
		run := StyledRun{Text: m[2]}
		if hex, ok := colors[strings.TrimSpace(m[1])]; ok {
			run.Color = hex
		}
		return run
	}
}
