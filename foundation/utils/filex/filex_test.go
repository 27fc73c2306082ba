// File: filex_test.go
// Title: Unit Tests for File Helpers
// Description: Tests for the path helpers and shared tree fixtures.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-25 v0.1.0: Initial test implementation
// - 2026-10-12 v0.2.0: Rewritten for the reduced helper set

package filex

import (
	"os"
	"path/filepath"
	"testing"
)

// makeTree creates files (and their parent directories) below a fresh
// temporary directory and returns its path.
func makeTree(t *testing.T, files ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte("content of "+f), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	return root
}

func TestExistsAndIsDir(t *testing.T) {
	root := makeTree(t, "a.txt")
	file := filepath.Join(root, "a.txt")

	tests := []struct {
		name       string
		path       string
		wantExists bool
		wantDir    bool
	}{
		{"directory", root, true, true},
		{"file", file, true, false},
		{"missing", filepath.Join(root, "nope"), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Exists(tt.path); got != tt.wantExists {
				t.Errorf("Exists(%q) = %v; want %v", tt.path, got, tt.wantExists)
			}
			if got := IsDir(tt.path); got != tt.wantDir {
				t.Errorf("IsDir(%q) = %v; want %v", tt.path, got, tt.wantDir)
			}
		})
	}
}

func TestNormalizeExt(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{".txt", ".txt"},
		{"TXT", ".txt"},
		{" .DocX ", ".docx"},
		{"", ""},
		{"  ", ""},
	}

	for _, tt := range tests {
		if got := NormalizeExt(tt.input); got != tt.want {
			t.Errorf("NormalizeExt(%q) = %q; want %q", tt.input, got, tt.want)
		}
	}
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		input int64
		want  string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{1024 * 1024, "1.0 MB"},
		{5 * 1024 * 1024 * 1024, "5.0 GB"},
	}

	for _, tt := range tests {
		if got := FormatSize(tt.input); got != tt.want {
			t.Errorf("FormatSize(%d) = %q; want %q", tt.input, got, tt.want)
		}
	}
}
