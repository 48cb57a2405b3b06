// File: filex.go
// Title: Core File Utilities
// Description: Implements the file operations the analyzer needs: size
//              formatting, checked source reading and all-or-nothing
//              document writes.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-02-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive file utilities
// - 2025-02-19 v0.2.0: Reduced to checked reads and atomic writes

package filex

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	jcerror "github.com/msto63/jackc/foundation/core/error"
)

// ===============================
// Size Formatting
// ===============================

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

// ===============================
// Path Manipulation
// ===============================

// ReplaceExt swaps the extension of path for ext. suffix is appended to the
// base name first.
func ReplaceExt(path, suffix, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + suffix + ext
}

// ===============================
// Checked Reading
// ===============================

// ReadChecked reads a regular file with the given extension and at most
// limit bytes. The extension match is case-sensitive. A limit of 0 disables
// the size check.
func ReadChecked(path, ext string, limit int64) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, jcerror.Newf("file not found: %s", path).
				WithCode(jcerror.CodeNotFound).
				WithOperation("filex.ReadChecked").
				WithDetail("path", path)
		}
		return nil, ioError(err, "stat", path)
	}

	if info.IsDir() {
		return nil, invalidInput(path, "%s is a directory", path)
	}
	if !info.Mode().IsRegular() {
		return nil, invalidInput(path, "%s is not a regular file", path)
	}
	if ext != "" && filepath.Ext(path) != ext {
		return nil, invalidInput(path, "%s does not have the %s extension", path, ext)
	}
	if limit > 0 && info.Size() > limit {
		return nil, invalidInput(path, "%s is %s, limit is %s", path, FormatSize(info.Size()), FormatSize(limit))
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, ioError(err, "read", path)
	}
	return content, nil
}

// ===============================
// Atomic Writing
// ===============================

// WriteAtomic writes data to a temporary file in the target directory and
// renames it over path. Readers see either the old file or the complete new
// one, never a partial document.
func WriteAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return ioError(err, "create temp file for", path)
	}
	tmpName := tmp.Name()

	cleanup := func() {
		tmp.Close()
		os.Remove(tmpName)
	}

	if _, err := tmp.Write(data); err != nil {
		cleanup()
		return ioError(err, "write", path)
	}
	if err := tmp.Chmod(perm); err != nil {
		cleanup()
		return ioError(err, "chmod", path)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return ioError(err, "close", path)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return ioError(err, "rename", path)
	}
	return nil
}

func ioError(err error, action, path string) error {
	return jcerror.Wrap(err, fmt.Sprintf("failed to %s %s", action, path)).
		WithCode(jcerror.CodeIOError).
		WithOperation("filex").
		WithDetail("path", path)
}

func invalidInput(path, format string, args ...interface{}) error {
	return jcerror.Newf(format, args...).
		WithCode(jcerror.CodeInvalidInput).
		WithOperation("filex.ReadChecked").
		WithDetail("path", path)
}
