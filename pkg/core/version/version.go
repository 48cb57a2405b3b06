// ============================================================================
// jackc - Jack Syntax Analyzer
// ============================================================================
//
// Package:     version
// Description: Central version management for the analyzer and its outputs
// Author:      Mike Stoffels
// Created:     2025-02-10
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants
const (
	// Tool version
	Tool = "0.3.0"

	// Grammar is the Jack grammar revision the parser accepts
	Grammar = "1.0.0"

	// Document is the version of the XML document layout
	Document = "1.0.0"
)

// Build information, set at link time via -ldflags "-X ...".
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// String returns the one-line version banner
func String() string {
	return fmt.Sprintf("jackc %s (grammar %s, document %s, commit %s, built %s, %s/%s)",
		Tool, Grammar, Document, Commit, BuildDate, runtime.GOOS, runtime.GOARCH)
}
