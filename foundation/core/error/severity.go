// File: severity.go
// Title: Error Severity Levels
// Description: Severity levels for errors and the mapping from error codes.
//              Malformed input is low severity, caller defects are high.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial severity levels
// - 2025-03-02 v0.2.0: Severity mapping for analyzer codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow is bad user input, e.g. a syntax error in a source file
	SeverityLow Severity = iota

	// SeverityMedium is an environment problem the user can fix
	SeverityMedium

	// SeverityHigh is a defect in the calling code
	SeverityHigh

	// SeverityCritical means the process cannot continue
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical

	case CodeEndOfInput, CodeNoPriorToken, CodeWrongTokenKind, CodeNoCurrentToken, CodeEmit:
		return SeverityHigh

	case CodeIOError, CodeConfigError, CodeInvalidConfig, CodeNotFound:
		return SeverityMedium

	case CodeLexical, CodeIntegerOverflow, CodeSyntax, CodeInvalidInput:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
