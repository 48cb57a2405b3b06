// File: xml.go
// Title: XML Serialization
// Description: WriteTree renders a parse tree through the ast visitor;
//              WriteTokens renders a flat token list under a <tokens> root.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-14
// Modified: 2025-02-14
//
// Change History:
// - 2025-02-14 v0.1.0: Initial implementation

package emitter

import (
	"io"

	"github.com/msto63/jackc/foundation/jack/ast"
	"github.com/msto63/jackc/foundation/jack/token"
)

// TokensTag is the root element of a flat token document
const TokensTag = "tokens"

// treeWriter adapts Writer to ast.Visitor
type treeWriter struct {
	w *Writer
}

func (tw treeWriter) VisitElementStart(e *ast.Element) error {
	return tw.w.Open(e.Tag())
}

func (tw treeWriter) VisitElementEnd(e *ast.Element) error {
	return tw.w.Close(e.Tag())
}

func (tw treeWriter) VisitTerminal(t *ast.Terminal) error {
	return tw.w.Leaf(t.Tag(), t.Content())
}

// WriteTree writes root and all of its descendants
func WriteTree(out io.Writer, root ast.Node, indent string) error {
	w := NewWriter(out, indent)
	if err := root.Accept(treeWriter{w: w}); err != nil {
		return err
	}
	return w.Finish()
}

// WriteTokens writes tokens as leaves of a single <tokens> element
func WriteTokens(out io.Writer, tokens []token.Token, indent string) error {
	w := NewWriter(out, indent)
	if err := w.Open(TokensTag); err != nil {
		return err
	}
	for _, tok := range tokens {
		if err := w.Leaf(tok.Kind.Tag(), tok.Lexeme()); err != nil {
			return err
		}
	}
	if err := w.Close(TokensTag); err != nil {
		return err
	}
	return w.Finish()
}
