// File: parser.go
// Title: Jack Parser Core
// Description: Parser type, options and the token helpers shared by all
//              productions: peek, take, expect and syntax error reporting.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-12
// Modified: 2025-02-18
//
// Change History:
// - 2025-02-12 v0.1.0: Initial implementation
// - 2025-02-18 v0.1.1: Nesting depth guard, trailing token check

package parser

import (
	"fmt"
	"strings"

	jcerror "github.com/msto63/jackc/foundation/core/error"
	jclog "github.com/msto63/jackc/foundation/core/log"
	"github.com/msto63/jackc/foundation/jack/ast"
	"github.com/msto63/jackc/foundation/jack/token"
	"github.com/msto63/jackc/foundation/jack/tokenizer"
)

const (
	// DefaultMaxDepth bounds element nesting in the parse tree
	DefaultMaxDepth = 1000

	// DefaultMaxInputLength bounds the source size in bytes
	DefaultMaxInputLength = 1 << 20
)

// Parser is a recursive-descent parser for one source text at a time. It is
// not safe for concurrent use; create one parser per goroutine.
type Parser struct {
	tok     *tokenizer.Tokenizer
	logger  *jclog.Logger
	options Options
	trace   bool

	// open productions, innermost last
	stack []ast.Production
}

// Options configures parser behavior
type Options struct {
	Logger         *jclog.Logger
	MaxDepth       int
	MaxInputLength int
}

// New creates a new parser with the given options
func New(opts Options) *Parser {
	if opts.Logger == nil {
		opts.Logger = jclog.GetDefault()
	}
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	if opts.MaxInputLength <= 0 {
		opts.MaxInputLength = DefaultMaxInputLength
	}

	logger := opts.Logger.WithName("jack-parser")
	return &Parser{
		logger:  logger,
		options: opts,
		trace:   logger.IsLevelEnabled(jclog.LevelTrace),
	}
}

// Parse parses a complete class and returns its parse tree. Anything other
// than comments and whitespace after the class's closing brace is an error.
func (p *Parser) Parse(src string) (*ast.Element, error) {
	if len(src) > p.options.MaxInputLength {
		return nil, jcerror.Newf("source exceeds maximum length: %d > %d bytes",
			len(src), p.options.MaxInputLength).
			WithCode(jcerror.CodeInvalidInput).
			WithOperation("parser.Parse")
	}

	p.reset(src)

	p.logger.Debug("Starting Jack parsing", jclog.Fields{
		"length": len(src),
	})

	root, err := p.compileClass()
	if err == nil {
		err = p.expectEnd()
	}
	if err != nil {
		p.logger.Debug("Jack parsing failed", jclog.Fields{
			"error": err.Error(),
		})
		return nil, err
	}

	p.logger.Debug("Jack parsing completed", jclog.Fields{
		"class":   className(root),
		"members": len(root.Children) - 4,
	})
	return root, nil
}

func (p *Parser) reset(src string) {
	p.tok = tokenizer.New(src)
	p.stack = p.stack[:0]
}

// enter opens an element for prod at the next token's position. Every call
// must be paired with a deferred leave.
func (p *Parser) enter(prod ast.Production) (*ast.Element, error) {
	p.stack = append(p.stack, prod)

	next, err := p.peek()
	if err != nil {
		return nil, err
	}
	if len(p.stack) > p.options.MaxDepth {
		return nil, p.syntaxError(fmt.Sprintf("nesting depth of at most %d", p.options.MaxDepth), next).
			WithDetail("max_depth", p.options.MaxDepth)
	}

	if p.trace {
		p.logger.Trace("enter "+string(prod), jclog.Fields{
			"depth": len(p.stack),
			"next":  next.String(),
		})
	}
	return ast.NewElement(prod, next.Pos), nil
}

func (p *Parser) leave() {
	p.stack = p.stack[:len(p.stack)-1]
}

// peek returns the next token without consuming it. At the end of input it
// returns the end-of-input token and no error, so callers can report it as
// the found token.
func (p *Parser) peek() (token.Token, error) {
	tok, err := p.tok.Peek()
	if err != nil && !jcerror.HasCode(err, jcerror.CodeEndOfInput) {
		return tok, err
	}
	return tok, nil
}

// take consumes the next token and appends it to el
func (p *Parser) take(el *ast.Element) (token.Token, error) {
	if err := p.tok.Advance(); err != nil {
		return token.Token{}, err
	}
	tok, err := p.tok.Current()
	if err != nil {
		return token.Token{}, err
	}
	el.AppendToken(tok)
	return tok, nil
}

func (p *Parser) expectKeyword(el *ast.Element, keywords ...token.Keyword) (token.Keyword, error) {
	next, err := p.peek()
	if err != nil {
		return "", err
	}
	if next.Kind == token.KindKeyword {
		for _, kw := range keywords {
			if next.Keyword == kw {
				_, err := p.take(el)
				return kw, err
			}
		}
	}

	alts := make([]string, len(keywords))
	for i, kw := range keywords {
		alts[i] = "'" + string(kw) + "'"
	}
	return "", p.syntaxError(alternatives(alts...), next)
}

func (p *Parser) expectSymbol(el *ast.Element, c byte) error {
	next, err := p.peek()
	if err != nil {
		return err
	}
	if !next.IsSymbol(c) {
		return p.syntaxError("'"+string(c)+"'", next)
	}
	_, err = p.take(el)
	return err
}

func (p *Parser) expectIdentifier(el *ast.Element) (string, error) {
	next, err := p.peek()
	if err != nil {
		return "", err
	}
	if next.Kind != token.KindIdentifier {
		return "", p.syntaxError("identifier", next)
	}
	tok, err := p.take(el)
	return tok.Text, err
}

// expectType consumes int, char, boolean or a class name; void too if
// allowVoid is set.
func (p *Parser) expectType(el *ast.Element, allowVoid bool) error {
	next, err := p.peek()
	if err != nil {
		return err
	}

	ok := next.Kind == token.KindIdentifier
	if next.Kind == token.KindKeyword {
		switch next.Keyword {
		case token.Int, token.Char, token.Boolean:
			ok = true
		case token.Void:
			ok = allowVoid
		}
	}
	if !ok {
		expected := "type"
		if allowVoid {
			expected = "'void' or type"
		}
		return p.syntaxError(expected, next)
	}

	_, err = p.take(el)
	return err
}

// expectEnd fails unless the input is exhausted
func (p *Parser) expectEnd() error {
	next, err := p.peek()
	if err != nil {
		return err
	}
	if !next.IsEOF() {
		return p.syntaxError("end of input", next)
	}
	return nil
}

// syntaxError reports that found does not match expected
func (p *Parser) syntaxError(expected string, found token.Token) *jcerror.Error {
	pos := found.Pos
	op := "parser.Parse"
	if n := len(p.stack); n > 0 {
		op = "parser." + string(p.stack[n-1])
	}

	return jcerror.Newf("syntax error at line %d, column %d: expected %s, found %s",
		pos.Line, pos.Column, expected, found.Describe()).
		WithCode(jcerror.CodeSyntax).
		WithOperation(op).
		WithDetails(map[string]interface{}{
			"line":     pos.Line,
			"column":   pos.Column,
			"expected": expected,
			"found":    found.Describe(),
		})
}

// alternatives joins choices as "a", "a or b", "a, b or c"
func alternatives(choices ...string) string {
	switch len(choices) {
	case 0:
		return ""
	case 1:
		return choices[0]
	}
	return strings.Join(choices[:len(choices)-1], ", ") + " or " + choices[len(choices)-1]
}

func className(root *ast.Element) string {
	terms := root.Terminals()
	if len(terms) < 2 {
		return ""
	}
	return terms[1].Token.Text
}
