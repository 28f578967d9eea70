// Package note2doc compiles marker-syntax notes into styled documents.
//
// Marker syntax is a line-oriented format where a block starts with an
// uppercase marker and a colon ("HEADING: Title", "BULLET: first
// item"). The package parses content into a flat node sequence and
// renders it to an HTML preview, portable Markdown, plain text, or a
// page-oriented PDF.
//
// # Quick Start
//
// Create a converter, convert content, and close when done:
//
//	conv := note2doc.New()
//	defer conv.Close()
//
//	result, err := conv.Convert(ctx, note2doc.Input{
//	    Content: "HEADING: Status Report\nPARAGRAPH: All systems go.",
//	    Format:  note2doc.FormatHTML,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("report.html", result.Artifact, 0644)
//
// The result carries the rendered artifact, accumulated warnings
// (malformed blocks degrade with a warning instead of failing), and a
// structure summary with word count and estimated reading time.
//
// # Conversion Pipeline
//
//  1. Block parsing: marker lines open blocks; continuation lines
//     attach until the next marker or a blank line
//  2. Style resolution: explicit overrides, then theme values, then
//     system defaults, resolved once per request
//  3. Rendering to the requested target
//  4. For the PDF target, printing via headless Chrome (go-rod) with
//     header/footer templates carrying live page-number fields
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv := note2doc.New(note2doc.WithTimeout(2 * time.Minute))
//
// Per-conversion options are passed via Input:
//
//	result, err := conv.Convert(ctx, note2doc.Input{
//	    Content:   content,
//	    Format:    note2doc.FormatPDF,
//	    Theme:     theme,
//	    Watermark: &note2doc.Watermark{Text: "DRAFT"},
//	    Header:    &note2doc.HeaderFooter{Enabled: true, Text: "Q3 Report"},
//	    Footer:    &note2doc.HeaderFooter{Enabled: true, ShowPageNumbers: true, PageFormat: "Page X of Y"},
//	    Page:      &note2doc.PageSetup{Size: "a4"},
//	})
//
// # Parallel Processing
//
// For batch conversion, use ConverterPool to manage multiple browser
// instances:
//
//	pool := note2doc.NewConverterPool(4)
//	defer pool.Close()
//
//	conv := pool.Acquire()
//	defer pool.Release(conv)
//	result, err := conv.Convert(ctx, input)
//
// # Browser Requirements
//
// PDF generation requires Chrome/Chromium. The go-rod library
// automatically downloads a managed Chromium instance on first run
// (~/.cache/rod/browser/). Use ROD_BROWSER_BIN to point at a
// pre-installed binary in containers and CI. When the browser is
// unavailable, the PDF target degrades to the page HTML document with a
// warning instead of failing.
package note2doc
