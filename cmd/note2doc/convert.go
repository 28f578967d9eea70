package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	note2doc "github.com/notesforge/go-note2doc"
	"github.com/notesforge/go-note2doc/internal/config"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput            = errors.New("no input specified")
	ErrReadNotes          = errors.New("failed to read notes file")
	ErrWriteOutput        = errors.New("failed to write output file")
	ErrInvalidExtension   = errors.New("file must have .note or .txt extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// maxWorkers bounds --workers to a sane range.
const maxWorkers = 32

// noteExtensions are the input extensions accepted by convert.
var noteExtensions = map[string]bool{".note": true, ".txt": true}

// Converter is the interface for the conversion service.
type Converter interface {
	Convert(ctx context.Context, input note2doc.Input) (*note2doc.Result, error)
}

// Compile-time interface implementation check.
var _ Converter = (*note2doc.Converter)(nil)

// Pool abstracts converter pool operations for testability.
type Pool interface {
	Acquire() *note2doc.Converter
	Release(*note2doc.Converter)
	Size() int
	Close() error
}

var _ Pool = (*note2doc.ConverterPool)(nil)

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string
}

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Warnings   []string
	Err        error
	Duration   time.Duration
}

// newPool builds a converter pool sized from the flags.
func newPool(flags *convertFlags) (Pool, error) {
	if err := validateWorkers(flags.workers); err != nil {
		return nil, err
	}

	var opts []note2doc.Option
	if flags.timeout != "" {
		d, err := time.ParseDuration(flags.timeout)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("invalid timeout %q", flags.timeout)
		}
		opts = append(opts, note2doc.WithTimeout(d))
	}

	size := note2doc.ResolvePoolSize(flags.workers)
	return note2doc.NewConverterPool(size, opts...), nil
}

// runConvert orchestrates the conversion process.
func runConvert(positionalArgs []string, flags *convertFlags, pool Pool, stdout, stderr io.Writer) error {
	cfg := config.DefaultConfig()
	var err error
	if flags.common.config != "" {
		cfg, err = config.LoadConfig(flags.common.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// CLI flags override config values
	mergeFlags(flags, cfg)

	inputPath, err := resolveInputPath(positionalArgs, cfg)
	if err != nil {
		return err
	}

	outputDir := flags.output
	if outputDir == "" {
		outputDir = cfg.Output.DefaultDir
	}

	files, err := discoverFiles(inputPath, outputDir, cfg.Output.Format)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no note files found in %s", inputPath)
	}

	theme, err := note2doc.LoadTheme(cfg.Theme.Name)
	if err != nil {
		return fmt.Errorf("loading theme: %w", err)
	}

	results := convertBatch(context.Background(), pool, files, cfg, theme)

	failed := printResults(results, flags.common.quiet, flags.common.verbose, stdout, stderr)
	if failed > 0 {
		return fmt.Errorf("%d conversion(s) failed", failed)
	}
	return nil
}

// mergeFlags merges CLI flags into config. CLI values override config
// values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.format != "" {
		cfg.Output.Format = flags.format
	}
	if flags.theme != "" {
		cfg.Theme.Name = flags.theme
	}

	// Page flags
	if flags.page.size != "" {
		cfg.Page.Size = flags.page.size
	}
	if flags.page.orientation != "" {
		cfg.Page.Orientation = flags.page.orientation
	}
	if flags.page.border {
		cfg.Page.Border.Enabled = true
	}
	if flags.page.borderWidth > 0 {
		cfg.Page.Border.Width = flags.page.borderWidth
	}
	if flags.page.borderColor != "" {
		cfg.Page.Border.Color = flags.page.borderColor
	}
	if flags.page.borderStyle != "" {
		cfg.Page.Border.Style = flags.page.borderStyle
	}

	// Watermark flags
	if flags.watermark.disabled {
		cfg.Watermark.Enabled = false
	} else {
		if flags.watermark.text != "" {
			cfg.Watermark.Enabled = true
			cfg.Watermark.Type = "text"
			cfg.Watermark.Text = flags.watermark.text
		}
		if flags.watermark.image != "" {
			cfg.Watermark.Enabled = true
			cfg.Watermark.Type = "image"
			cfg.Watermark.ImagePath = flags.watermark.image
		}
		if flags.watermark.color != "" {
			cfg.Watermark.Color = flags.watermark.color
		}
		if flags.watermark.opacity > 0 {
			cfg.Watermark.Opacity = flags.watermark.opacity
		}
		if flags.watermark.angle != watermarkAngleSentinel {
			cfg.Watermark.Angle = flags.watermark.angle
		}
	}

	mergeRegionFlags(&flags.header, &cfg.Header)
	mergeRegionFlags(&flags.footer, &cfg.Footer)
}

// mergeRegionFlags merges one header or footer flag group.
func mergeRegionFlags(f *regionFlags, cfg *config.RegionConfig) {
	if f.disabled {
		cfg.Enabled = false
		return
	}
	if f.text != "" {
		cfg.Enabled = true
		cfg.Text = f.text
	}
	if f.pageNumbers {
		cfg.Enabled = true
		cfg.ShowPageNumbers = true
	}
	if f.pageFormat != "" {
		cfg.PageFormat = f.pageFormat
	}
	if f.numberStyle != "" {
		cfg.NumberStyle = f.numberStyle
	}
	if f.alignment != "" {
		cfg.Alignment = f.alignment
	}
	if f.separator {
		cfg.Separator = true
	}
}

// validateWorkers checks the --workers value.
func validateWorkers(workers int) error {
	if workers < 0 || workers > maxWorkers {
		return fmt.Errorf("%w: %d (must be 0-%d)", ErrInvalidWorkerCount, workers, maxWorkers)
	}
	return nil
}

// resolveInputPath determines the input from positional args or config.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", ErrNoInput
}

// discoverFiles expands the input path into files to convert. A single
// file is converted in place; a directory is walked for note files.
func discoverFiles(inputPath, outputDir, format string) ([]FileToConvert, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	ext := outputExtension(format)

	if !info.IsDir() {
		if !noteExtensions[strings.ToLower(filepath.Ext(inputPath))] {
			return nil, fmt.Errorf("%w: %s", ErrInvalidExtension, inputPath)
		}
		return []FileToConvert{{
			InputPath:  inputPath,
			OutputPath: outputPathFor(inputPath, outputDir, ext),
		}}, nil
	}

	var files []FileToConvert
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !noteExtensions[strings.ToLower(filepath.Ext(path))] {
			return nil
		}
		files = append(files, FileToConvert{
			InputPath:  path,
			OutputPath: outputPathFor(path, outputDir, ext),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// outputExtension maps a format to its file extension.
func outputExtension(format string) string {
	switch strings.ToLower(format) {
	case note2doc.FormatMarkdown:
		return ".md"
	case note2doc.FormatText:
		return ".out.txt"
	case note2doc.FormatPDF:
		return ".pdf"
	default:
		return ".html"
	}
}

// outputPathFor derives the output path: same directory as the input
// unless an output directory was given.
func outputPathFor(inputPath, outputDir, ext string) string {
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath)) + ext
	if outputDir == "" {
		return filepath.Join(filepath.Dir(inputPath), base)
	}
	return filepath.Join(outputDir, base)
}

// buildInput maps config onto a conversion request.
func buildInput(cfg *config.Config, theme *note2doc.Theme, content string) note2doc.Input {
	input := note2doc.Input{
		Content: content,
		Format:  cfg.Output.Format,
		Theme:   theme,
		Page: &note2doc.PageSetup{
			Size:        cfg.Page.Size,
			Orientation: cfg.Page.Orientation,
		},
	}

	if cfg.Page.Border.Enabled {
		input.Page.Border = &note2doc.PageBorder{
			Enabled: true,
			Width:   cfg.Page.Border.Width,
			Color:   cfg.Page.Border.Color,
			Style:   cfg.Page.Border.Style,
		}
	}

	if cfg.Watermark.Enabled {
		input.Watermark = &note2doc.Watermark{
			Type:      cfg.Watermark.Type,
			Text:      cfg.Watermark.Text,
			ImagePath: cfg.Watermark.ImagePath,
			Color:     cfg.Watermark.Color,
			Opacity:   cfg.Watermark.Opacity,
			Angle:     cfg.Watermark.Angle,
		}
	}

	input.Header = buildRegion(cfg.Header)
	input.Footer = buildRegion(cfg.Footer)
	return input
}

// buildRegion maps one region config onto the library type.
func buildRegion(r config.RegionConfig) *note2doc.HeaderFooter {
	if !r.Enabled {
		return nil
	}
	return &note2doc.HeaderFooter{
		Enabled:         true,
		Text:            r.Text,
		ShowPageNumbers: r.ShowPageNumbers,
		PageFormat:      r.PageFormat,
		NumberStyle:     r.NumberStyle,
		Alignment:       r.Alignment,
		Separator:       r.Separator,
		SeparatorColor:  r.SeparatorColor,
		Color:           r.Color,
		Size:            r.Size,
	}
}

// convertBatch converts files in parallel using the pool. Results are
// returned in input order.
func convertBatch(ctx context.Context, pool Pool, files []FileToConvert, cfg *config.Config, theme *note2doc.Theme) []ConversionResult {
	results := make([]ConversionResult, len(files))

	var wg sync.WaitGroup
	for i, file := range files {
		wg.Add(1)
		go func(i int, file FileToConvert) {
			defer wg.Done()
			results[i] = convertFile(ctx, pool, file, cfg, theme)
		}(i, file)
	}
	wg.Wait()

	return results
}

// convertFile converts one file using a pooled converter.
func convertFile(ctx context.Context, pool Pool, file FileToConvert, cfg *config.Config, theme *note2doc.Theme) ConversionResult {
	start := time.Now()
	res := ConversionResult{InputPath: file.InputPath, OutputPath: file.OutputPath}

	content, err := os.ReadFile(file.InputPath) // #nosec G304 -- user-provided path
	if err != nil {
		res.Err = fmt.Errorf("%w: %v", ErrReadNotes, err)
		return res
	}

	conv := pool.Acquire()
	defer pool.Release(conv)

	result, err := conv.Convert(ctx, buildInput(cfg, theme, string(content)))
	if err != nil {
		res.Err = err
		return res
	}
	res.Warnings = result.Warnings

	if dir := filepath.Dir(file.OutputPath); dir != "." {
		if err := os.MkdirAll(dir, dirPermissions); err != nil {
			res.Err = fmt.Errorf("%w: %v", ErrWriteOutput, err)
			return res
		}
	}
	if err := os.WriteFile(file.OutputPath, result.Artifact, filePermissions); err != nil {
		res.Err = fmt.Errorf("%w: %v", ErrWriteOutput, err)
		return res
	}

	res.Duration = time.Since(start)
	return res
}

// printResults reports per-file outcomes and returns the failure count.
func printResults(results []ConversionResult, quiet, verbose bool, stdout, stderr io.Writer) int {
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(stderr, "FAIL %s: %v\n", r.InputPath, r.Err)
			continue
		}
		for _, w := range r.Warnings {
			fmt.Fprintf(stderr, "warning: %s: %s\n", r.InputPath, w)
		}
		if quiet {
			continue
		}
		if verbose {
			fmt.Fprintf(stdout, "OK %s -> %s (%s)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(stdout, "OK %s -> %s\n", r.InputPath, r.OutputPath)
		}
	}
	return failed
}
