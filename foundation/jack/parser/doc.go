// Package parser implements the recursive-descent syntax analyzer for Jack.
//
// Package: parser
// Title: Jack Syntax Analyzer
// Description: One method per grammar production, each building an
//              ast.Element for its production. Every decision is taken by
//              peeking at the next token, so no production ever has to give a
//              token back. Any token that fits none of the alternatives at a
//              decision point fails the parse with a JACK_SYNTAX error naming
//              what was expected and what was found.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-12
// Modified: 2025-02-18
//
// Change History:
// - 2025-02-12 v0.1.0: Initial implementation
// - 2025-02-18 v0.1.1: Nesting depth guard, trailing token check
//
// Usage:
//   p := parser.New(parser.Options{Logger: logger})
//   tree, err := p.Parse(src)
//   if err != nil {
//     return err // *error.Error with line, column, expected and found
//   }
package parser
