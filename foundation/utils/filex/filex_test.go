// File: filex_test.go
// Title: File Utilities Tests
// Description: Tests for size formatting, extension replacement, checked reads
//              and atomic writes.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-02-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial test implementation with comprehensive coverage
// - 2025-02-19 v0.2.0: Checked reads and atomic writes

package filex

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	jcerror "github.com/msto63/jackc/foundation/core/error"
)

// setupTestDir creates a temporary directory with test files
func setupTestDir(t *testing.T) string {
	tmpDir := t.TempDir()

	testFiles := map[string]string{
		"Main.jack":       "class Main { }\n",
		"Big.jack":        strings.Repeat("// padding\n", 200),
		"notes.txt":       "not jack",
		"Shout.JACK":      "class Shout { }\n",
		"src/Square.jack": "class Square { }\n",
	}

	for path, content := range testFiles {
		fullPath := filepath.Join(tmpDir, path)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			t.Fatalf("Failed to create dir for %s: %v", path, err)
		}
		if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to create test file %s: %v", fullPath, err)
		}
	}

	return tmpDir
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{1 << 20, "1.0 MB"},
		{5 << 30, "5.0 GB"},
	}

	for _, tt := range tests {
		if got := FormatSize(tt.bytes); got != tt.want {
			t.Errorf("FormatSize(%d) = %q, want %q", tt.bytes, got, tt.want)
		}
	}
}

func TestReplaceExt(t *testing.T) {
	tests := []struct {
		path   string
		suffix string
		ext    string
		want   string
	}{
		{"Main.jack", "", ".xml", "Main.xml"},
		{"Main.jack", "T", ".xml", "MainT.xml"},
		{"a.b/Main.jack", "", ".xml", "a.b/Main.xml"},
		{"Makefile", "", ".xml", "Makefile.xml"},
	}

	for _, tt := range tests {
		if got := ReplaceExt(tt.path, tt.suffix, tt.ext); got != tt.want {
			t.Errorf("ReplaceExt(%q, %q, %q) = %q, want %q", tt.path, tt.suffix, tt.ext, got, tt.want)
		}
	}
}

func TestReadChecked(t *testing.T) {
	dir := setupTestDir(t)

	tests := []struct {
		name  string
		path  string
		limit int64
		code  jcerror.Code
	}{
		{"valid", "Main.jack", 0, ""},
		{"over size limit", "Big.jack", 100, jcerror.CodeInvalidInput},
		{"missing", "Gone.jack", 0, jcerror.CodeNotFound},
		{"directory", "src", 0, jcerror.CodeInvalidInput},
		{"wrong extension", "notes.txt", 0, jcerror.CodeInvalidInput},
		{"extension case differs", "Shout.JACK", 0, jcerror.CodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.path)
			content, err := ReadChecked(path, ".jack", tt.limit)

			if tt.code == "" {
				if err != nil {
					t.Fatalf("ReadChecked() error = %v", err)
				}
				if string(content) != "class Main { }\n" {
					t.Errorf("content = %q", content)
				}
				return
			}

			jcErr, ok := jcerror.As(err)
			if !ok || jcErr.Code() != tt.code {
				t.Fatalf("ReadChecked() error = %v, want %s", err, tt.code)
			}
			if p, _ := jcErr.Detail("path"); p != path {
				t.Errorf("path detail = %v, want %s", p, path)
			}
		})
	}
}

func TestWriteAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Main.xml")

	if err := os.WriteFile(path, []byte("old"), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := WriteAtomic(path, []byte("<class>\n</class>\n"), 0644); err != nil {
		t.Fatalf("WriteAtomic() error = %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil || string(content) != "<class>\n</class>\n" {
		t.Errorf("content = %q, err = %v", content, err)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("temporary files left behind: %d entries", len(entries))
	}
}

func TestWriteAtomic_MissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "Main.xml")
	err := WriteAtomic(path, []byte("x"), 0644)
	if !jcerror.HasCode(err, jcerror.CodeIOError) {
		t.Errorf("WriteAtomic() error = %v, want IO_ERROR", err)
	}
	if _, statErr := os.Stat(path); statErr == nil {
		t.Error("file created despite error")
	}
}
