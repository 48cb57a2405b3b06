// File: scanner.go
// Title: Jack Scanner
// Description: Character-level scanning: whitespace and comment skipping,
//              string, integer, word and symbol recognition with line and
//              column tracking.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-14
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation
// - 2025-02-14 v0.1.1: Reject carriage returns inside string constants

package tokenizer

import (
	"strconv"
	"unicode/utf8"

	jcerror "github.com/msto63/jackc/foundation/core/error"
	"github.com/msto63/jackc/foundation/jack/token"
)

// scanner reads tokens from source text one at a time
type scanner struct {
	input    string
	position int  // index of ch
	readPos  int  // index after ch
	ch       byte // current char, 0 at end of input
	line     int  // line of ch (1-based)
	column   int  // column of ch (1-based)
}

func newScanner(input string) *scanner {
	s := &scanner{input: input, line: 1}
	s.readChar()
	return s
}

func (s *scanner) readChar() {
	if s.readPos > len(s.input) {
		return
	}

	if s.ch == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}

	if s.readPos == len(s.input) {
		s.ch = 0
	} else {
		s.ch = s.input[s.readPos]
	}
	s.position = s.readPos
	s.readPos++
}

func (s *scanner) peekChar() byte {
	if s.readPos >= len(s.input) {
		return 0
	}
	return s.input[s.readPos]
}

func (s *scanner) atEOF() bool {
	return s.position >= len(s.input)
}

func (s *scanner) pos() token.Position {
	return token.Position{Line: s.line, Column: s.column, Offset: s.position}
}

// next returns the next token. ok is false at end of input.
func (s *scanner) next() (tok token.Token, ok bool, err error) {
	if err := s.skipIgnored(); err != nil {
		return token.Token{}, false, err
	}
	if s.atEOF() {
		return token.Token{}, false, nil
	}

	pos := s.pos()
	switch {
	case s.ch == '"':
		return s.readString(pos)
	case isDigit(s.ch):
		return s.readInteger(pos)
	case isLetter(s.ch):
		return s.readWord(pos), true, nil
	case token.IsSymbol(s.ch):
		tok = token.Token{Kind: token.KindSymbol, Symbol: s.ch, Pos: pos}
		s.readChar()
		return tok, true, nil
	default:
		r, _ := utf8.DecodeRuneInString(s.input[s.position:])
		return token.Token{}, false, lexicalError(jcerror.CodeLexical, pos, "invalid character %q", r)
	}
}

// skipIgnored skips whitespace and comments
func (s *scanner) skipIgnored() error {
	for !s.atEOF() {
		switch {
		case isWhitespace(s.ch):
			s.readChar()
		case s.ch == '/' && s.peekChar() == '/':
			for !s.atEOF() && s.ch != '\n' {
				s.readChar()
			}
		case s.ch == '/' && s.peekChar() == '*':
			if err := s.skipBlockComment(); err != nil {
				return err
			}
		default:
			return nil
		}
	}
	return nil
}

// skipBlockComment skips /* ... */ and /** ... */ comments
func (s *scanner) skipBlockComment() error {
	start := s.pos()
	s.readChar()
	s.readChar()
	for !s.atEOF() {
		if s.ch == '*' && s.peekChar() == '/' {
			s.readChar()
			s.readChar()
			return nil
		}
		s.readChar()
	}
	return lexicalError(jcerror.CodeLexical, start, "unterminated comment")
}

func (s *scanner) readString(pos token.Position) (token.Token, bool, error) {
	s.readChar()
	start := s.position
	for {
		if s.atEOF() || s.ch == '\n' || s.ch == '\r' {
			return token.Token{}, false, lexicalError(jcerror.CodeLexical, pos, "unterminated string constant")
		}
		if s.ch == '"' {
			break
		}
		s.readChar()
	}
	text := s.input[start:s.position]
	s.readChar()
	return token.Token{Kind: token.KindStringConst, Text: text, Pos: pos}, true, nil
}

func (s *scanner) readInteger(pos token.Position) (token.Token, bool, error) {
	start := s.position
	for isDigit(s.ch) {
		s.readChar()
	}
	text := s.input[start:s.position]

	value, err := strconv.Atoi(text)
	if err != nil || value > token.MaxInt {
		return token.Token{}, false, lexicalError(jcerror.CodeIntegerOverflow, pos,
			"integer constant %s exceeds %d", text, token.MaxInt)
	}
	return token.Token{Kind: token.KindIntConst, Int: value, Pos: pos}, true, nil
}

func (s *scanner) readWord(pos token.Position) token.Token {
	start := s.position
	for isLetter(s.ch) || isDigit(s.ch) {
		s.readChar()
	}
	word := s.input[start:s.position]

	if kw, ok := token.LookupKeyword(word); ok {
		return token.Token{Kind: token.KindKeyword, Keyword: kw, Pos: pos}
	}
	return token.Token{Kind: token.KindIdentifier, Text: word, Pos: pos}
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isWhitespace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}
