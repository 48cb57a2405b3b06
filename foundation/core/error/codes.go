// File: codes.go
// Title: Error Codes
// Description: Structured error codes used across the analyzer. Codes group
//              into categories so the CLI can tell bad input from a caller
//              defect.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial error codes
// - 2025-03-02 v0.2.0: Replaced platform codes with analyzer codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeIOError      Code = "IO_ERROR"

	// Input errors found while analyzing a source file
	CodeLexical         Code = "JACK_LEXICAL"
	CodeIntegerOverflow Code = "JACK_INTEGER_OVERFLOW"
	CodeSyntax          Code = "JACK_SYNTAX"

	// Tokenizer and emitter misuse (defects in the calling code)
	CodeEndOfInput     Code = "JACK_END_OF_INPUT"
	CodeNoPriorToken   Code = "JACK_NO_PRIOR_TOKEN"
	CodeWrongTokenKind Code = "JACK_WRONG_TOKEN_KIND"
	CodeNoCurrentToken Code = "JACK_NO_CURRENT_TOKEN"
	CodeEmit           Code = "JACK_EMIT"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeLexical, CodeIntegerOverflow:
		return "lexical"
	case CodeSyntax:
		return "syntax"
	case CodeEndOfInput, CodeNoPriorToken, CodeWrongTokenKind, CodeNoCurrentToken, CodeEmit:
		return "usage"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}

// IsInputError reports whether the code describes malformed source text
// rather than a defect in the calling code.
func (c Code) IsInputError() bool {
	switch c.Category() {
	case "lexical", "syntax":
		return true
	default:
		return false
	}
}
