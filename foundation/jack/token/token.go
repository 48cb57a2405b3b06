// File: token.go
// Title: Jack Tokens
// Description: Token kinds, keywords, symbols and the Token type with its
//              source position.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation

package token

import (
	"fmt"
	"strconv"
)

// MaxInt is the largest integer constant the language allows
const MaxInt = 32767

// Kind classifies a token
type Kind int

const (
	// KindNone is the zero value; no valid token has it
	KindNone Kind = iota
	KindKeyword
	KindSymbol
	KindIdentifier
	KindIntConst
	KindStringConst
)

// String returns the upper-case kind name used in diagnostics
func (k Kind) String() string {
	switch k {
	case KindKeyword:
		return "KEYWORD"
	case KindSymbol:
		return "SYMBOL"
	case KindIdentifier:
		return "IDENTIFIER"
	case KindIntConst:
		return "INT_CONST"
	case KindStringConst:
		return "STRING_CONST"
	default:
		return "NONE"
	}
}

// Tag returns the element name used for the kind in XML output
func (k Kind) Tag() string {
	switch k {
	case KindKeyword:
		return "keyword"
	case KindSymbol:
		return "symbol"
	case KindIdentifier:
		return "identifier"
	case KindIntConst:
		return "integerConstant"
	case KindStringConst:
		return "stringConstant"
	default:
		return ""
	}
}

// Describe returns the lower-case form used in "expected X, found Y" messages
func (k Kind) Describe() string {
	switch k {
	case KindKeyword:
		return "keyword"
	case KindSymbol:
		return "symbol"
	case KindIdentifier:
		return "identifier"
	case KindIntConst:
		return "integer constant"
	case KindStringConst:
		return "string constant"
	default:
		return "nothing"
	}
}

// Keyword is one of the reserved words of the language
type Keyword string

const (
	Class       Keyword = "class"
	Constructor Keyword = "constructor"
	Function    Keyword = "function"
	Method      Keyword = "method"
	Field       Keyword = "field"
	Static      Keyword = "static"
	Var         Keyword = "var"
	Int         Keyword = "int"
	Char        Keyword = "char"
	Boolean     Keyword = "boolean"
	Void        Keyword = "void"
	True        Keyword = "true"
	False       Keyword = "false"
	Null        Keyword = "null"
	This        Keyword = "this"
	Let         Keyword = "let"
	Do          Keyword = "do"
	If          Keyword = "if"
	Else        Keyword = "else"
	While       Keyword = "while"
	Return      Keyword = "return"
)

var keywords = map[string]Keyword{
	"class":       Class,
	"constructor": Constructor,
	"function":    Function,
	"method":      Method,
	"field":       Field,
	"static":      Static,
	"var":         Var,
	"int":         Int,
	"char":        Char,
	"boolean":     Boolean,
	"void":        Void,
	"true":        True,
	"false":       False,
	"null":        Null,
	"this":        This,
	"let":         Let,
	"do":          Do,
	"if":          If,
	"else":        Else,
	"while":       While,
	"return":      Return,
}

// LookupKeyword reports whether word is reserved. Matching is case-sensitive.
func LookupKeyword(word string) (Keyword, bool) {
	kw, ok := keywords[word]
	return kw, ok
}

// Symbols lists every symbol character of the language
const Symbols = "{}()[].,;+-*/&|<>=~"

// IsSymbol reports whether c is a symbol character
func IsSymbol(c byte) bool {
	for i := 0; i < len(Symbols); i++ {
		if Symbols[i] == c {
			return true
		}
	}
	return false
}

// IsOp reports whether c is a binary operator
func IsOp(c byte) bool {
	switch c {
	case '+', '-', '*', '/', '&', '|', '<', '>', '=':
		return true
	}
	return false
}

// IsUnaryOp reports whether c is a unary operator
func IsUnaryOp(c byte) bool {
	return c == '-' || c == '~'
}

// IsKeywordConstant reports whether kw may appear as a term on its own
func IsKeywordConstant(kw Keyword) bool {
	switch kw {
	case True, False, Null, This:
		return true
	}
	return false
}

// Position is a location in source text
type Position struct {
	Line   int // 1-based
	Column int // 1-based, in bytes
	Offset int // 0-based byte offset
}

// String returns "line:column"
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is a single lexical unit. Exactly one of Keyword, Symbol, Text or Int
// is meaningful, selected by Kind.
type Token struct {
	Kind    Kind
	Keyword Keyword // KindKeyword
	Symbol  byte    // KindSymbol
	Text    string  // KindIdentifier, KindStringConst (without quotes)
	Int     int     // KindIntConst
	Pos     Position
}

// Lexeme returns the token's textual value as it appears in output
func (t Token) Lexeme() string {
	switch t.Kind {
	case KindKeyword:
		return string(t.Keyword)
	case KindSymbol:
		return string(t.Symbol)
	case KindIntConst:
		return strconv.Itoa(t.Int)
	default:
		return t.Text
	}
}

// Describe renders the token for "found X" diagnostics, e.g. symbol '{'
func (t Token) Describe() string {
	switch t.Kind {
	case KindNone:
		return "end of input"
	case KindStringConst:
		return fmt.Sprintf("%s %q", t.Kind.Describe(), t.Text)
	default:
		return fmt.Sprintf("%s '%s'", t.Kind.Describe(), t.Lexeme())
	}
}

// String returns a debugging representation such as KEYWORD(class)
func (t Token) String() string {
	return fmt.Sprintf("%s(%s)", t.Kind, t.Lexeme())
}

// IsKeyword reports whether t is the keyword kw
func (t Token) IsKeyword(kw Keyword) bool {
	return t.Kind == KindKeyword && t.Keyword == kw
}

// IsSymbol reports whether t is the symbol c
func (t Token) IsSymbol(c byte) bool {
	return t.Kind == KindSymbol && t.Symbol == c
}

// IsEOF reports whether t is the end-of-input marker
func (t Token) IsEOF() bool {
	return t.Kind == KindNone
}

// EOF returns the end-of-input marker at pos
func EOF(pos Position) Token {
	return Token{Kind: KindNone, Pos: pos}
}
