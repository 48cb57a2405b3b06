// File: tokenizer.go
// Title: Jack Token Cursor
// Description: The Tokenizer cursor over the scanner's output: HasMore,
//              Advance, a single-step Retreat, Peek and kind-checked
//              accessors for the current token.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-14
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation
// - 2025-02-14 v0.1.1: Peek, sticky scan errors

package tokenizer

import (
	jcerror "github.com/msto63/jackc/foundation/core/error"
	"github.com/msto63/jackc/foundation/jack/token"
)

// Tokenizer is a cursor over the tokens of one source text. It is not safe
// for concurrent use.
type Tokenizer struct {
	sc *scanner

	current     token.Token
	hasCurrent  bool
	previous    token.Token
	hasPrevious bool
	canRetreat  bool

	// ahead holds scanned but unconsumed tokens: at most one peeked token plus
	// one retreated token.
	ahead []token.Token
	err   error
	done  bool
}

// New creates a tokenizer for src
func New(src string) *Tokenizer {
	return &Tokenizer{
		sc:    newScanner(src),
		ahead: make([]token.Token, 0, 2),
	}
}

func (t *Tokenizer) fill() {
	if len(t.ahead) > 0 || t.done || t.err != nil {
		return
	}
	tok, ok, err := t.sc.next()
	switch {
	case err != nil:
		t.err = err
	case !ok:
		t.done = true
	default:
		t.ahead = append(t.ahead, tok)
	}
}

// HasMore reports whether Advance has something to deliver. A pending
// lexical error counts, so that Advance can report it.
func (t *Tokenizer) HasMore() bool {
	t.fill()
	return len(t.ahead) > 0 || t.err != nil
}

// Advance makes the next token current
func (t *Tokenizer) Advance() error {
	t.fill()
	if len(t.ahead) == 0 {
		if t.err != nil {
			return t.err
		}
		return misuseError(jcerror.CodeEndOfInput, "Advance", "advance past end of input").
			WithDetail("line", t.sc.line).
			WithDetail("column", t.sc.column)
	}

	t.previous, t.hasPrevious = t.current, t.hasCurrent
	t.current, t.hasCurrent = t.ahead[0], true
	t.ahead = t.ahead[1:]
	t.canRetreat = true
	return nil
}

// Retreat undoes the most recent Advance. It may not be called twice in a
// row, nor before the first Advance.
func (t *Tokenizer) Retreat() error {
	if !t.canRetreat {
		return misuseError(jcerror.CodeNoPriorToken, "Retreat", "no prior token to retreat to")
	}

	t.ahead = append([]token.Token{t.current}, t.ahead...)
	t.current, t.hasCurrent = t.previous, t.hasPrevious
	t.previous, t.hasPrevious = token.Token{}, false
	t.canRetreat = false
	return nil
}

// Peek returns the next token without consuming it. At the end of input it
// returns an end-of-input token together with an EndOfInput error; a pending
// lexical error is returned as is.
func (t *Tokenizer) Peek() (token.Token, error) {
	t.fill()
	if len(t.ahead) > 0 {
		return t.ahead[0], nil
	}
	eof := token.EOF(t.sc.pos())
	if t.err != nil {
		return eof, t.err
	}
	return eof, misuseError(jcerror.CodeEndOfInput, "Peek", "peek past end of input").
		WithDetail("line", eof.Pos.Line).
		WithDetail("column", eof.Pos.Column)
}

// Position returns the position of the next token, or of the end of input
func (t *Tokenizer) Position() token.Position {
	t.fill()
	if len(t.ahead) > 0 {
		return t.ahead[0].Pos
	}
	return t.sc.pos()
}

// Current returns the current token
func (t *Tokenizer) Current() (token.Token, error) {
	if !t.hasCurrent {
		return token.Token{}, misuseError(jcerror.CodeNoCurrentToken, "Current", "no current token")
	}
	return t.current, nil
}

// Kind returns the kind of the current token, KindNone if there is none
func (t *Tokenizer) Kind() token.Kind {
	if !t.hasCurrent {
		return token.KindNone
	}
	return t.current.Kind
}

func (t *Tokenizer) expect(op string, kind token.Kind) (token.Token, error) {
	if !t.hasCurrent {
		return token.Token{}, misuseError(jcerror.CodeNoCurrentToken, op, op+" called with no current token")
	}
	if t.current.Kind != kind {
		return token.Token{}, wrongKind(op, kind, t.current.Kind)
	}
	return t.current, nil
}

// Keyword returns the current keyword
func (t *Tokenizer) Keyword() (token.Keyword, error) {
	tok, err := t.expect("Keyword", token.KindKeyword)
	return tok.Keyword, err
}

// Symbol returns the current symbol character
func (t *Tokenizer) Symbol() (byte, error) {
	tok, err := t.expect("Symbol", token.KindSymbol)
	return tok.Symbol, err
}

// Identifier returns the current identifier
func (t *Tokenizer) Identifier() (string, error) {
	tok, err := t.expect("Identifier", token.KindIdentifier)
	return tok.Text, err
}

// IntVal returns the value of the current integer constant
func (t *Tokenizer) IntVal() (int, error) {
	tok, err := t.expect("IntVal", token.KindIntConst)
	return tok.Int, err
}

// StringVal returns the contents of the current string constant
func (t *Tokenizer) StringVal() (string, error) {
	tok, err := t.expect("StringVal", token.KindStringConst)
	return tok.Text, err
}

// All consumes the remaining tokens and returns them in order
func (t *Tokenizer) All() ([]token.Token, error) {
	var tokens []token.Token
	for t.HasMore() {
		if err := t.Advance(); err != nil {
			return nil, err
		}
		tokens = append(tokens, t.current)
	}
	return tokens, nil
}

// Tokenize is a convenience wrapper returning every token of src
func Tokenize(src string) ([]token.Token, error) {
	return New(src).All()
}
