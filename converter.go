package note2doc

import (
	"context"
	"fmt"
	"strings"
)

// Converter orchestrates the marker-syntax conversion pipeline.
// Create with New(), use Convert() for conversion, and Close() when done.
type Converter struct {
	cfg      converterConfig
	exporter pagedExporter
}

// New creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithTimeout).
func New(opts ...Option) *Converter {
	c := &Converter{
		cfg: converterConfig{timeout: defaultTimeout},
	}

	for _, opt := range opts {
		opt(c)
	}

	// Create paged exporter if not injected (e.g., by tests)
	if c.exporter == nil {
		c.exporter = newRodExporter(c.cfg.timeout)
	}

	return c
}

// Convert parses the content and renders it in the requested format.
// The context is used for cancellation and timeout. Parse and render
// diagnostics accumulate in Result.Warnings; only invalid input or a
// failed parse return an error.
// Recovers from internal panics to prevent crashes from propagating to
// callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	format, err := c.validateInput(input)
	if err != nil {
		return nil, err
	}

	res, err := Parse(input.Content)
	if err != nil {
		return nil, err
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	tokens := ResolveStyles(input.Theme, input.Formatting)

	out := &Result{
		Warnings:  res.Warnings,
		Structure: res.Summary,
	}

	switch format {
	case FormatMarkdown:
		out.Artifact = []byte(RenderMarkdown(res))

	case FormatText:
		out.Artifact = []byte(RenderPlainText(res))

	case FormatHTML:
		wm := effectiveWatermark(res, input.Watermark)
		out.Artifact = []byte(RenderPreview(res, tokens, wm))

	case FormatPDF:
		pageHTML, printOpts, warnings := RenderPage(res, tokens, input)
		out.Warnings = append(out.Warnings, warnings...)
		out.HTML = []byte(pageHTML)

		pdfBytes, exportErr := c.exporter.ExportPDF(ctx, pageHTML, printOpts)
		if exportErr != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			// Degrade to the page document rather than failing the
			// whole conversion: the browser backend is an external
			// dependency that may be absent.
			out.Artifact = []byte(pageHTML)
			out.Warnings = append(out.Warnings,
				fmt.Sprintf("export target unavailable: %v", exportErr))
			return out, nil
		}
		out.Artifact = pdfBytes
	}

	return out, nil
}

// Close releases resources (headless Chrome browser).
func (c *Converter) Close() error {
	if c.exporter != nil {
		return c.exporter.Close()
	}
	return nil
}

// validateInput checks that required fields are present and valid, and
// normalizes the output format.
//
// This is a TRUST BOUNDARY for direct library users who build Input
// manually. CLI users have their input validated earlier at config load
// time. Both paths converge here.
func (c *Converter) validateInput(input Input) (string, error) {
	if strings.TrimSpace(input.Content) == "" {
		return "", ErrEmptyContent
	}

	format := strings.ToLower(strings.TrimSpace(input.Format))
	if format == "" {
		format = FormatHTML
	}
	switch format {
	case FormatHTML, FormatMarkdown, FormatText, FormatPDF:
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, input.Format)
	}

	if err := input.Page.Validate(); err != nil {
		return "", err
	}
	if err := input.Header.Validate(); err != nil {
		return "", err
	}
	if err := input.Footer.Validate(); err != nil {
		return "", err
	}
	if err := input.Watermark.Validate(); err != nil {
		return "", err
	}
	return format, nil
}
