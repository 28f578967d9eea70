package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	note2doc "github.com/notesforge/go-note2doc"
	"github.com/notesforge/go-note2doc/internal/config"
)

func TestParseConvertFlags(t *testing.T) {
	t.Parallel()

	args := []string{
		"notes.note",
		"-f", "pdf",
		"--theme", "tech",
		"-w", "4",
		"--header-text", "Quarterly",
		"--footer-page-numbers",
		"--footer-page-format", "Page X of Y",
		"--page-border",
		"--wm-text", "DRAFT",
	}

	flags, positional, err := parseConvertFlags(args)
	if err != nil {
		t.Fatalf("parseConvertFlags failed: %v", err)
	}

	if len(positional) != 1 || positional[0] != "notes.note" {
		t.Errorf("positional = %v", positional)
	}
	if flags.format != "pdf" || flags.theme != "tech" || flags.workers != 4 {
		t.Errorf("flags = %+v", flags)
	}
	if flags.header.text != "Quarterly" {
		t.Errorf("header = %+v", flags.header)
	}
	if !flags.footer.pageNumbers || flags.footer.pageFormat != "Page X of Y" {
		t.Errorf("footer = %+v", flags.footer)
	}
	if !flags.page.border || flags.watermark.text != "DRAFT" {
		t.Errorf("page/watermark = %+v / %+v", flags.page, flags.watermark)
	}
}

func TestParseConvertFlagsAngleSentinel(t *testing.T) {
	t.Parallel()

	flags, _, err := parseConvertFlags([]string{"a.note"})
	if err != nil {
		t.Fatal(err)
	}
	if flags.watermark.angle != watermarkAngleSentinel {
		t.Errorf("angle = %v, want sentinel", flags.watermark.angle)
	}

	flags, _, err = parseConvertFlags([]string{"a.note", "--wm-angle", "0"})
	if err != nil {
		t.Fatal(err)
	}
	if flags.watermark.angle != 0 {
		t.Errorf("angle = %v, want 0", flags.watermark.angle)
	}
}

func TestMergeFlags(t *testing.T) {
	t.Parallel()

	t.Run("cli values override config", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Output.Format = "md"
		cfg.Theme.Name = "professional"

		flags := &convertFlags{format: "pdf", theme: "tech"}
		flags.watermark.angle = watermarkAngleSentinel
		mergeFlags(flags, cfg)

		if cfg.Output.Format != "pdf" || cfg.Theme.Name != "tech" {
			t.Errorf("cfg = %+v", cfg)
		}
	})

	t.Run("unset flags keep config values", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Output.Format = "md"
		cfg.Watermark.Enabled = true
		cfg.Watermark.Text = "DRAFT"
		cfg.Watermark.Angle = -30

		flags := &convertFlags{}
		flags.watermark.angle = watermarkAngleSentinel
		mergeFlags(flags, cfg)

		if cfg.Output.Format != "md" {
			t.Errorf("format = %q", cfg.Output.Format)
		}
		if !cfg.Watermark.Enabled || cfg.Watermark.Angle != -30 {
			t.Errorf("watermark = %+v", cfg.Watermark)
		}
	})

	t.Run("zero angle flag is honored", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Watermark.Angle = -24

		flags := &convertFlags{}
		flags.watermark.angle = 0
		mergeFlags(flags, cfg)

		if cfg.Watermark.Angle != 0 {
			t.Errorf("angle = %v, want 0", cfg.Watermark.Angle)
		}
	})

	t.Run("disable flags force regions off", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Watermark.Enabled = true
		cfg.Header.Enabled = true
		cfg.Footer.Enabled = true

		flags := &convertFlags{}
		flags.watermark.angle = watermarkAngleSentinel
		flags.watermark.disabled = true
		flags.header.disabled = true
		flags.footer.disabled = true
		mergeFlags(flags, cfg)

		if cfg.Watermark.Enabled || cfg.Header.Enabled || cfg.Footer.Enabled {
			t.Errorf("regions still enabled: %+v %+v %+v", cfg.Watermark, cfg.Header, cfg.Footer)
		}
	})

	t.Run("region text enables the region", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		flags := &convertFlags{}
		flags.watermark.angle = watermarkAngleSentinel
		flags.footer.pageNumbers = true
		mergeFlags(flags, cfg)

		if !cfg.Footer.Enabled || !cfg.Footer.ShowPageNumbers {
			t.Errorf("footer = %+v", cfg.Footer)
		}
	})
}

func TestValidateWorkers(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 1, maxWorkers} {
		if err := validateWorkers(n); err != nil {
			t.Errorf("validateWorkers(%d) = %v", n, err)
		}
	}
	for _, n := range []int{-1, maxWorkers + 1} {
		if err := validateWorkers(n); !errors.Is(err, ErrInvalidWorkerCount) {
			t.Errorf("validateWorkers(%d) = %v, want ErrInvalidWorkerCount", n, err)
		}
	}
}

func TestOutputExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format string
		want   string
	}{
		{"md", ".md"},
		{"txt", ".out.txt"},
		{"pdf", ".pdf"},
		{"html", ".html"},
		{"", ".html"},
	}
	for _, tt := range tests {
		if got := outputExtension(tt.format); got != tt.want {
			t.Errorf("outputExtension(%q) = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestOutputPathFor(t *testing.T) {
	t.Parallel()

	got := outputPathFor(filepath.Join("notes", "plan.note"), "", ".html")
	if got != filepath.Join("notes", "plan.html") {
		t.Errorf("path = %q", got)
	}

	got = outputPathFor(filepath.Join("notes", "plan.note"), "out", ".pdf")
	if got != filepath.Join("out", "plan.pdf") {
		t.Errorf("path = %q", got)
	}
}

func TestDiscoverFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, name := range []string{"a.note", "b.txt", "ignored.md"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("PARAGRAPH: x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	sub := filepath.Join(dir, "sub")
	if err := os.Mkdir(sub, 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(sub, "c.note"), []byte("PARAGRAPH: x"), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Run("directory walk", func(t *testing.T) {
		t.Parallel()

		files, err := discoverFiles(dir, "", "html")
		if err != nil {
			t.Fatalf("discoverFiles failed: %v", err)
		}
		if len(files) != 3 {
			t.Fatalf("files = %+v, want 3 entries", files)
		}
		for _, f := range files {
			if !strings.HasSuffix(f.OutputPath, ".html") {
				t.Errorf("output path %q", f.OutputPath)
			}
		}
	})

	t.Run("single file", func(t *testing.T) {
		t.Parallel()

		files, err := discoverFiles(filepath.Join(dir, "a.note"), "", "pdf")
		if err != nil {
			t.Fatalf("discoverFiles failed: %v", err)
		}
		if len(files) != 1 || files[0].OutputPath != filepath.Join(dir, "a.pdf") {
			t.Errorf("files = %+v", files)
		}
	})

	t.Run("wrong extension rejected", func(t *testing.T) {
		t.Parallel()

		_, err := discoverFiles(filepath.Join(dir, "ignored.md"), "", "html")
		if !errors.Is(err, ErrInvalidExtension) {
			t.Errorf("err = %v, want ErrInvalidExtension", err)
		}
	})
}

func TestResolveInputPath(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()

	if got, err := resolveInputPath([]string{"notes/"}, cfg); err != nil || got != "notes/" {
		t.Errorf("got %q, %v", got, err)
	}

	cfg.Input.DefaultDir = "default-notes"
	if got, err := resolveInputPath(nil, cfg); err != nil || got != "default-notes" {
		t.Errorf("got %q, %v", got, err)
	}

	cfg.Input.DefaultDir = ""
	if _, err := resolveInputPath(nil, cfg); !errors.Is(err, ErrNoInput) {
		t.Errorf("err = %v, want ErrNoInput", err)
	}
}

func TestBuildInput(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Output.Format = "pdf"
	cfg.Page.Size = "letter"
	cfg.Page.Border.Enabled = true
	cfg.Page.Border.Style = "dashed"
	cfg.Watermark.Enabled = true
	cfg.Watermark.Text = "DRAFT"
	cfg.Footer = config.RegionConfig{
		Enabled:         true,
		ShowPageNumbers: true,
		PageFormat:      "Page X of Y",
	}

	theme := &note2doc.Theme{Name: "tech"}
	input := buildInput(cfg, theme, "HEADING: T")

	if input.Format != "pdf" || input.Content != "HEADING: T" || input.Theme != theme {
		t.Errorf("input = %+v", input)
	}
	if input.Page.Size != "letter" || input.Page.Border == nil || input.Page.Border.Style != "dashed" {
		t.Errorf("page = %+v", input.Page)
	}
	if input.Watermark == nil || input.Watermark.Text != "DRAFT" {
		t.Errorf("watermark = %+v", input.Watermark)
	}
	if input.Header != nil {
		t.Errorf("disabled header must map to nil, got %+v", input.Header)
	}
	if input.Footer == nil || !input.Footer.ShowPageNumbers || input.Footer.PageFormat != "Page X of Y" {
		t.Errorf("footer = %+v", input.Footer)
	}
}

func TestPrintResults(t *testing.T) {
	t.Parallel()

	results := []ConversionResult{
		{InputPath: "a.note", OutputPath: "a.html", Duration: 5 * time.Millisecond},
		{InputPath: "b.note", OutputPath: "b.html", Warnings: []string{"Line 2: treated as PARAGRAPH (no marker found)."}},
		{InputPath: "c.note", Err: errors.New("boom")},
	}

	var stdout, stderr bytes.Buffer
	failed := printResults(results, false, false, &stdout, &stderr)

	if failed != 1 {
		t.Errorf("failed = %d, want 1", failed)
	}
	if !strings.Contains(stdout.String(), "OK a.note -> a.html") {
		t.Errorf("stdout = %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), "FAIL c.note: boom") {
		t.Errorf("stderr = %q", stderr.String())
	}
	if !strings.Contains(stderr.String(), "warning: b.note:") {
		t.Errorf("stderr = %q", stderr.String())
	}

	stdout.Reset()
	stderr.Reset()
	if printResults(results, true, false, &stdout, &stderr) != 1 {
		t.Error("quiet mode must still count failures")
	}
	if strings.Contains(stdout.String(), "OK") {
		t.Errorf("quiet mode printed OK lines: %q", stdout.String())
	}
}
