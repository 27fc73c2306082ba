// File: filex.go
// Title: Core File Utilities
// Description: Path helpers shared by the scanner and the watcher:
//              existence checks, extension normalization and size
//              formatting.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive file utilities
// - 2026-10-12 v0.2.0: Reduced to the helpers used by the document finder

package filex

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Match describes a file reported by an Enumerator or a Watcher.
type Match struct {
	Path    string    `json:"path"`
	Name    string    `json:"name"`
	Ext     string    `json:"ext"`
	Size    int64     `json:"size"`
	ModTime time.Time `json:"mod_time"`
	// Depth is the number of directories between the root and the file;
	// files directly inside the root have depth 0.
	Depth int `json:"depth"`
}

// Exists checks if a file or directory exists
func Exists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// IsDir checks if the path exists and is a directory
func IsDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// NormalizeExt lower-cases ext and adds the leading dot if missing.
// Blank input stays empty.
func NormalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" || strings.HasPrefix(ext, ".") {
		return ext
	}
	return "." + ext
}

// extOf returns the normalized extension of a file name
func extOf(name string) string {
	return NormalizeExt(filepath.Ext(name))
}

// FormatSize formats a size in bytes to a human-readable string
func FormatSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}

	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}

	units := []string{"KB", "MB", "GB", "TB", "PB"}
	return fmt.Sprintf("%.1f %s", float64(bytes)/float64(div), units[exp])
}
