// Package filex implements the file operations used by the jackc command.
//
// Package: filex
// Title: Extended File Operations for Go
// Description: Human-readable sizes, extension replacement, checked
//              source reads and atomic writes. All
//              failures are structured errors with NOT_FOUND, INVALID_INPUT
//              or IO_ERROR codes and a "path" detail.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-02-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive file utilities
// - 2025-01-26 v0.1.1: Enhanced documentation
// - 2025-02-19 v0.2.0: Reduced to the operations the analyzer uses
//
// Usage:
//
//	src, err := filex.ReadChecked("Main.jack", ".jack", 1<<20)
//	if err != nil {
//		return err
//	}
//	out := filex.ReplaceExt("Main.jack", "", ".xml")
//	err = filex.WriteAtomic(out, doc, 0644)
package filex
