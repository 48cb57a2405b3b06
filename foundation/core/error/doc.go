// Package error provides structured error handling for the jackc analyzer.
//
// Package: error
// Title: jackc Error Handling Framework
// Description: Structured errors with codes, severity, details and a cause
//              chain. Every failure of the tokenizer, the syntax analyzer, the
//              emitter and the configuration layer is reported as *Error so
//              callers can branch on the code and log the details.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2025-03-02 v0.2.0: Jack analyzer codes, errors.As based lookups
//
// Usage:
//   import jcerror "github.com/msto63/jackc/foundation/core/error"
//
//   err := jcerror.New("expected identifier").
//     WithCode(jcerror.CodeSyntax).
//     WithDetail("line", 3).
//     WithOperation("parser.compileClass")
//
//   if jcerror.HasCode(err, jcerror.CodeSyntax) {
//     // bad input, not a caller defect
//   }
package error
