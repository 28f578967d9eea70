package fileutil_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/notesforge/go-note2doc/internal/fileutil"
)

func TestWriteTempFile(t *testing.T) {
	t.Parallel()

	path, cleanup, err := fileutil.WriteTempFile("<html></html>", "html")
	if err != nil {
		t.Fatalf("WriteTempFile failed: %v", err)
	}
	defer cleanup()

	if !strings.HasSuffix(path, ".html") {
		t.Errorf("path %q missing extension", path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading temp file: %v", err)
	}
	if string(content) != "<html></html>" {
		t.Errorf("content = %q", content)
	}

	cleanup()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("cleanup should remove the file")
	}
}

func TestValidateExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		extension string
		wantErr   error
	}{
		{"valid", "html", nil},
		{"empty", "", fileutil.ErrExtensionEmpty},
		{"slash", "a/b", fileutil.ErrExtensionPathTraversal},
		{"backslash", `a\b`, fileutil.ErrExtensionPathTraversal},
		{"null byte", "a\x00b", fileutil.ErrExtensionPathTraversal},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := fileutil.ValidateExtension(tt.extension)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "present.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if !fileutil.FileExists(file) {
		t.Error("existing file reported missing")
	}
	if fileutil.FileExists(filepath.Join(dir, "absent.txt")) {
		t.Error("missing file reported present")
	}
	if fileutil.FileExists(dir) {
		t.Error("directory must not count as a file")
	}
}

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	if fileutil.IsFilePath("professional") {
		t.Error("bare name misread as path")
	}
	if !fileutil.IsFilePath("./themes/custom.yaml") {
		t.Error("relative path not detected")
	}
	if !fileutil.IsFilePath(`C:\themes\custom.yaml`) {
		t.Error("windows path not detected")
	}
}

func TestIsURL(t *testing.T) {
	t.Parallel()

	if !fileutil.IsURL("https://example.com/a.png") || !fileutil.IsURL("http://example.com") {
		t.Error("http(s) url not detected")
	}
	if fileutil.IsURL("ftp://example.com") || fileutil.IsURL("images/a.png") {
		t.Error("non-http string misread as url")
	}
}
