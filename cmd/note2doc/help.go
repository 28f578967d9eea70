package main

import (
	"fmt"
	"io"

	note2doc "github.com/notesforge/go-note2doc"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: note2doc <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert    Convert marker-syntax note files to documents")
	fmt.Fprintln(w, "  import     Convert a Markdown file to marker syntax")
	fmt.Fprintln(w, "  themes     List built-in themes")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'note2doc help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: note2doc convert <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert marker-syntax note files (.note, .txt) to documents.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Note file or directory (optional if config has input.defaultDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>          Output file or directory")
	fmt.Fprintln(w, "  -f, --format <s>             Output format: html, md, txt, pdf")
	fmt.Fprintln(w, "  -c, --config <name>          Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>            Parallel workers (0 = auto)")
	fmt.Fprintln(w, "  -t, --timeout <d>            PDF export timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styling:")
	fmt.Fprintln(w, "      --theme <s>              Theme name or file path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page:")
	fmt.Fprintln(w, "  -p, --page-size <s>          Page size: a4, letter, legal")
	fmt.Fprintln(w, "      --orientation <s>        Orientation: portrait, landscape")
	fmt.Fprintln(w, "      --page-border            Draw a border on every page")
	fmt.Fprintln(w, "      --border-width <n>       Border width in points")
	fmt.Fprintln(w, "      --border-color <s>       Border color (hex)")
	fmt.Fprintln(w, "      --border-style <s>       Border style: single, double, dashed, dotted")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Header/Footer:")
	fmt.Fprintln(w, "      --header-text <s>        Header text")
	fmt.Fprintln(w, "      --header-page-numbers    Show page numbers in header")
	fmt.Fprintln(w, "      --footer-text <s>        Footer text")
	fmt.Fprintln(w, "      --footer-page-numbers    Show page numbers in footer")
	fmt.Fprintln(w, "      --footer-page-format <s> Template, e.g. \"Page X of Y\"")
	fmt.Fprintln(w, "      --footer-align <s>       Alignment: left, center, right")
	fmt.Fprintln(w, "      --footer-separator       Rule above the footer")
	fmt.Fprintln(w, "      --no-header, --no-footer Disable a region")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Watermark:")
	fmt.Fprintln(w, "      --wm-text <s>            Watermark text")
	fmt.Fprintln(w, "      --wm-image <path>        Watermark image path")
	fmt.Fprintln(w, "      --wm-color <s>           Watermark color (hex)")
	fmt.Fprintln(w, "      --wm-opacity <f>         Watermark opacity (0.0-1.0)")
	fmt.Fprintln(w, "      --wm-angle <f>           Watermark angle in degrees")
	fmt.Fprintln(w, "      --no-watermark           Disable watermark")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet                  Only show errors")
	fmt.Fprintln(w, "  -v, --verbose                Show detailed progress")
}

// runThemes lists the built-in themes.
func runThemes(w io.Writer) {
	for _, name := range note2doc.BuiltinThemes() {
		fmt.Fprintln(w, name)
	}
}

// runHelp prints help for a specific command.
func runHelp(args []string, stdout, stderr io.Writer) {
	if len(args) == 0 {
		printUsage(stdout)
		return
	}

	switch args[0] {
	case "convert":
		printConvertUsage(stdout)
	case "import":
		fmt.Fprintln(stdout, "Usage: note2doc import <file.md> [-o output.note]")
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, "Convert a Markdown file to marker syntax.")
	case "themes":
		fmt.Fprintln(stdout, "Usage: note2doc themes")
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, "List built-in themes.")
	case "version":
		fmt.Fprintln(stdout, "Usage: note2doc version")
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, "Show version information.")
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n", args[0])
		printUsage(stderr)
	}
}
