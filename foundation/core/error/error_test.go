// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes, severity mapping,
//              details and errors.As based lookups.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive test coverage
// - 2025-03-02 v0.2.0: Analyzer codes and wrapped lookups

package error

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}
	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}
	if len(err.StackTrace()) == 0 {
		t.Error("StackTrace() should not be empty")
	}
	if !strings.Contains(err.StackTrace()[0].Function, "TestNew") {
		t.Errorf("first frame = %s, want the caller of New", err.StackTrace()[0].Function)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		message  string
		wantNil  bool
		wantMsg  string
		wantCode Code
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "wrapper message",
			wantNil: true,
		},
		{
			name:     "wrap standard error",
			err:      errors.New("original error"),
			message:  "wrapper message",
			wantMsg:  "wrapper message: original error",
			wantCode: CodeUnknown,
		},
		{
			name:     "wrap structured error keeps code",
			err:      New("expected ';'").WithCode(CodeSyntax),
			message:  "Main.jack",
			wantMsg:  "Main.jack: expected ';'",
			wantCode: CodeSyntax,
		},
		{
			name:     "wrap fmt-wrapped structured error",
			err:      fmt.Errorf("outer: %w", New("bad char").WithCode(CodeLexical)),
			message:  "tokenize",
			wantMsg:  "tokenize: outer: bad char",
			wantCode: CodeLexical,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.err, tt.message)
			if tt.wantNil {
				if got != nil {
					t.Errorf("Wrap() = %v, want nil", got)
				}
				return
			}
			if got.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got.Error(), tt.wantMsg)
			}
			if got.Code() != tt.wantCode {
				t.Errorf("Code() = %v, want %v", got.Code(), tt.wantCode)
			}
			if !errors.Is(got, tt.err) {
				t.Error("errors.Is() should find the wrapped cause")
			}
		})
	}
}

func TestWrap_InheritsDetails(t *testing.T) {
	inner := New("expected identifier").
		WithCode(CodeSyntax).
		WithDetail("line", 4).
		WithOperation("parser.compileClass")

	outer := Wrap(inner, "analysis failed")

	if v, ok := outer.Detail("line"); !ok || v != 4 {
		t.Errorf("Detail(line) = %v, %v; want 4, true", v, ok)
	}
	if outer.Operation() != "parser.compileClass" {
		t.Errorf("Operation() = %q", outer.Operation())
	}
	if outer.Severity() != SeverityLow {
		t.Errorf("Severity() = %v, want low", outer.Severity())
	}
}

func TestWithCode_SeverityMapping(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeSyntax, SeverityLow},
		{CodeLexical, SeverityLow},
		{CodeIntegerOverflow, SeverityLow},
		{CodeNoPriorToken, SeverityHigh},
		{CodeWrongTokenKind, SeverityHigh},
		{CodeEndOfInput, SeverityHigh},
		{CodeConfigError, SeverityMedium},
		{CodeInternal, SeverityCritical},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			err := New("x").WithCode(tt.code)
			if err.Severity() != tt.want {
				t.Errorf("Severity() = %v, want %v", err.Severity(), tt.want)
			}
		})
	}
}

func TestSeverity_ShouldAlert(t *testing.T) {
	tests := []struct {
		code Code
		want bool
	}{
		{CodeSyntax, false},
		{CodeLexical, false},
		{CodeConfigError, false},
		{CodeWrongTokenKind, true},
		{CodeInternal, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			err := New("x").WithCode(tt.code)
			if got := GetSeverity(err).ShouldAlert(); got != tt.want {
				t.Errorf("ShouldAlert() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWithDetails_Merges(t *testing.T) {
	err := New("expected ';'").
		WithDetail("line", 1).
		WithDetails(map[string]interface{}{"line": 4, "column": 12})

	if v, _ := err.Detail("line"); v != 4 {
		t.Errorf("Detail(line) = %v, want 4", v)
	}
	if v, _ := err.Detail("column"); v != 12 {
		t.Errorf("Detail(column) = %v, want 12", v)
	}
}

func TestCode_Category(t *testing.T) {
	tests := []struct {
		code     Code
		category string
		inputErr bool
	}{
		{CodeLexical, "lexical", true},
		{CodeIntegerOverflow, "lexical", true},
		{CodeSyntax, "syntax", true},
		{CodeNoPriorToken, "usage", false},
		{CodeEmit, "usage", false},
		{CodeInvalidConfig, "configuration", false},
		{Code("BOGUS"), "generic", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := tt.code.Category(); got != tt.category {
				t.Errorf("Category() = %q, want %q", got, tt.category)
			}
			if got := tt.code.IsInputError(); got != tt.inputErr {
				t.Errorf("IsInputError() = %v, want %v", got, tt.inputErr)
			}
		})
	}
}

func TestHasCode(t *testing.T) {
	err := New("boom").WithCode(CodeSyntax)
	wrapped := fmt.Errorf("context: %w", err)

	if !HasCode(err, CodeSyntax) {
		t.Error("HasCode() = false for direct error")
	}
	if !HasCode(wrapped, CodeSyntax) {
		t.Error("HasCode() = false for wrapped error")
	}
	if HasCode(errors.New("plain"), CodeSyntax) {
		t.Error("HasCode() = true for plain error")
	}
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Error("GetCode() should be UNKNOWN for plain errors")
	}
	if GetSeverity(wrapped) != SeverityLow {
		t.Errorf("GetSeverity() = %v, want low", GetSeverity(wrapped))
	}
}

func TestError_String(t *testing.T) {
	err := New("expected ';'").
		WithCode(CodeSyntax).
		WithDetail("line", 2).
		WithDetail("column", 9)

	s := err.String()
	for _, want := range []string{"Error: expected ';'", "Code: JACK_SYNTAX", "Severity: low", "Details: {column=9, line=2}"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q in:\n%s", want, s)
		}
	}
}
