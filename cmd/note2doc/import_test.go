package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeMarkdown(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "notes.md")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunImportToStdout(t *testing.T) {
	t.Parallel()

	path := writeMarkdown(t, "# Title\n\nSome prose.\n")

	var stdout bytes.Buffer
	if err := runImport([]string{path}, &stdout); err != nil {
		t.Fatalf("runImport failed: %v", err)
	}

	got := stdout.String()
	if !strings.Contains(got, "HEADING: Title") || !strings.Contains(got, "PARAGRAPH: Some prose.") {
		t.Errorf("output:\n%s", got)
	}
}

func TestRunImportToFile(t *testing.T) {
	t.Parallel()

	path := writeMarkdown(t, "# Title\n")
	out := filepath.Join(t.TempDir(), "notes.note")

	var stdout bytes.Buffer
	if err := runImport([]string{path, "-o", out}, &stdout); err != nil {
		t.Fatalf("runImport failed: %v", err)
	}

	if stdout.Len() != 0 {
		t.Errorf("stdout should be empty when -o is given: %q", stdout.String())
	}
	content, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !strings.Contains(string(content), "HEADING: Title") {
		t.Errorf("output file:\n%s", content)
	}
}

func TestRunImportErrors(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer

	if err := runImport(nil, &stdout); !errors.Is(err, ErrNoInput) {
		t.Errorf("err = %v, want ErrNoInput", err)
	}

	if err := runImport([]string{"notes.txt"}, &stdout); err == nil ||
		!strings.Contains(err.Error(), ".md or .markdown") {
		t.Errorf("err = %v", err)
	}

	if err := runImport([]string{"a.md", "-o"}, &stdout); err == nil ||
		!strings.Contains(err.Error(), "missing value") {
		t.Errorf("err = %v", err)
	}

	missing := filepath.Join(t.TempDir(), "absent.md")
	if err := runImport([]string{missing}, &stdout); err == nil ||
		!strings.Contains(err.Error(), "reading") {
		t.Errorf("err = %v", err)
	}
}

func TestRunThemes(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	runThemes(&buf)

	got := buf.String()
	for _, name := range []string{"minimal", "professional", "tech"} {
		if !strings.Contains(got, name) {
			t.Errorf("themes output missing %q:\n%s", name, got)
		}
	}
}
