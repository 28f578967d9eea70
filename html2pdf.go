package note2doc

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/notesforge/go-note2doc/internal/fileutil"
)

// pagedExporter abstracts page-document to PDF conversion to allow
// different backends.
type pagedExporter interface {
	ExportPDF(ctx context.Context, pageHTML string, opts *printOptions) ([]byte, error)
	Close() error
}

// pagedRenderer abstracts PDF rendering from an HTML file to enable
// testing without a browser.
type pagedRenderer interface {
	RenderFromFile(ctx context.Context, filePath string, opts *printOptions) ([]byte, error)
}

// Compile-time interface checks
var (
	_ pagedExporter = (*rodExporter)(nil)
	_ pagedRenderer = (*rodRenderer)(nil)
)

// rodRenderer implements pagedRenderer using go-rod.
// Rod automatically downloads Chromium on first run if not found.
type rodRenderer struct {
	browser *rod.Browser
	timeout time.Duration
}

func newRodRenderer(timeout time.Duration) *rodRenderer {
	return &rodRenderer{timeout: timeout}
}

// ensureBrowser lazily connects to the browser.
func (r *rodRenderer) ensureBrowser() error {
	if r.browser != nil {
		return nil
	}

	l := launcher.New()

	// Use pre-installed browser if specified (Docker/containerized environments)
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	// NoSandbox required for CI and containerized environments
	if os.Getenv("CI") == "true" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}
	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	r.browser = rod.New().ControlURL(u)
	if err := r.browser.Connect(); err != nil {
		r.browser = nil
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	return nil
}

// Close releases browser resources.
func (r *rodRenderer) Close() error {
	if r.browser != nil {
		err := r.browser.Close()
		r.browser = nil
		return err
	}
	return nil
}

// RenderFromFile opens a local HTML file in headless Chrome and prints
// it to PDF. Returns explicit errors instead of panicking when browser
// operations fail.
func (r *rodRenderer) RenderFromFile(ctx context.Context, filePath string, opts *printOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := r.ensureBrowser(); err != nil {
		return nil, err
	}

	page, err := r.browser.Page(proto.TargetCreateTarget{URL: "file://" + filePath})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()

	timeout := r.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}
	}

	if err := page.Timeout(timeout).WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reader, err := page.PDF(buildPDFRequest(opts))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	pdfBuf, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
	}

	return pdfBuf, nil
}

// buildPDFRequest maps print options onto Chrome's print API. Header
// and footer templates carry the live page-number fields, so Chrome
// resolves them per page at print time.
func buildPDFRequest(opts *printOptions) *proto.PagePrintToPDF {
	if opts == nil {
		opts = &printOptions{
			PaperWidth:  paperSizes[PageSizeA4][0],
			PaperHeight: paperSizes[PageSizeA4][1],
		}
	}

	req := &proto.PagePrintToPDF{
		PaperWidth:      floatPtr(opts.PaperWidth),
		PaperHeight:     floatPtr(opts.PaperHeight),
		MarginTop:       floatPtr(opts.MarginTop),
		MarginBottom:    floatPtr(opts.MarginBottom),
		MarginLeft:      floatPtr(opts.MarginLeft),
		MarginRight:     floatPtr(opts.MarginRight),
		PrintBackground: true,
	}

	if opts.ShowRegions {
		req.DisplayHeaderFooter = true
		req.HeaderTemplate = opts.Header
		req.FooterTemplate = opts.Footer
	}

	return req
}

// floatPtr returns a pointer to a float64 value.
func floatPtr(v float64) *float64 {
	return &v
}

// rodExporter converts a page document to PDF using headless Chrome
// via go-rod.
type rodExporter struct {
	renderer *rodRenderer
}

func newRodExporter(timeout time.Duration) *rodExporter {
	return &rodExporter{
		renderer: newRodRenderer(timeout),
	}
}

// ExportPDF writes the page document to a temp file and prints it.
// Loading from a file lets relative image paths resolve.
func (e *rodExporter) ExportPDF(ctx context.Context, pageHTML string, opts *printOptions) ([]byte, error) {
	tmpPath, cleanup, err := fileutil.WriteTempFile(pageHTML, "html")
	if err != nil {
		return nil, err
	}
	defer cleanup()

	return e.renderer.RenderFromFile(ctx, tmpPath, opts)
}

// Close releases browser resources.
func (e *rodExporter) Close() error {
	if e.renderer != nil {
		return e.renderer.Close()
	}
	return nil
}
