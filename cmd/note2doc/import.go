package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	note2doc "github.com/notesforge/go-note2doc"
)

// runImport converts a Markdown file to marker syntax. With -o the
// result is written to a file; otherwise it goes to stdout.
func runImport(args []string, stdout io.Writer) error {
	var output string
	var positional []string
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-o", "--output":
			if i+1 >= len(args) {
				return fmt.Errorf("missing value for %s", args[i])
			}
			i++
			output = args[i]
		default:
			positional = append(positional, args[i])
		}
	}

	if len(positional) == 0 {
		return ErrNoInput
	}
	inputPath := positional[0]

	ext := strings.ToLower(filepath.Ext(inputPath))
	if ext != ".md" && ext != ".markdown" {
		return fmt.Errorf("file must have .md or .markdown extension: %s", inputPath)
	}

	content, err := os.ReadFile(inputPath) // #nosec G304 -- user-provided path
	if err != nil {
		return fmt.Errorf("reading %s: %w", inputPath, err)
	}

	markers, err := note2doc.FromMarkdown(string(content))
	if err != nil {
		return err
	}

	if output == "" {
		_, err = io.WriteString(stdout, markers)
		return err
	}
	if err := os.WriteFile(output, []byte(markers), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}
