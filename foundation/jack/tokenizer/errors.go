// File: errors.go
// Title: Tokenizer Errors
// Description: Constructors for lexical errors and tokenizer misuse errors.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation

package tokenizer

import (
	"fmt"

	jcerror "github.com/msto63/jackc/foundation/core/error"
	"github.com/msto63/jackc/foundation/jack/token"
)

func lexicalError(code jcerror.Code, pos token.Position, format string, args ...interface{}) *jcerror.Error {
	msg := fmt.Sprintf(format, args...)
	return jcerror.Newf("lexical error at line %d, column %d: %s", pos.Line, pos.Column, msg).
		WithCode(code).
		WithOperation("tokenizer.scan").
		WithDetail("line", pos.Line).
		WithDetail("column", pos.Column)
}

func misuseError(code jcerror.Code, op, message string) *jcerror.Error {
	return jcerror.New(message).
		WithCode(code).
		WithOperation("tokenizer." + op)
}

func wrongKind(op string, want, got token.Kind) *jcerror.Error {
	return misuseError(jcerror.CodeWrongTokenKind, op,
		fmt.Sprintf("%s called on %s token", op, got)).
		WithDetail("expected", want.String()).
		WithDetail("found", got.String())
}
