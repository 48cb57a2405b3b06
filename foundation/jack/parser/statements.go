// File: statements.go
// Title: Jack Statement Productions
// Description: statements and the five statement kinds.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-12
// Modified: 2025-02-12
//
// Change History:
// - 2025-02-12 v0.1.0: Initial implementation

package parser

import (
	"github.com/msto63/jackc/foundation/jack/ast"
	"github.com/msto63/jackc/foundation/jack/token"
)

// statements: statement*
// Stops at the first token that does not start a statement and leaves it for
// the caller.
func (p *Parser) compileStatements() (*ast.Element, error) {
	el, err := p.enter(ast.Statements)
	defer p.leave()
	if err != nil {
		return nil, err
	}

	for {
		next, err := p.peek()
		if err != nil {
			return nil, err
		}
		if next.Kind != token.KindKeyword {
			return el, nil
		}

		var stmt *ast.Element
		switch next.Keyword {
		case token.Let:
			stmt, err = p.compileLet()
		case token.If:
			stmt, err = p.compileIf()
		case token.While:
			stmt, err = p.compileWhile()
		case token.Do:
			stmt, err = p.compileDo()
		case token.Return:
			stmt, err = p.compileReturn()
		default:
			return el, nil
		}
		if err != nil {
			return nil, err
		}
		el.Append(stmt)
	}
}

// letStatement: 'let' varName ('[' expression ']')? '=' expression ';'
func (p *Parser) compileLet() (*ast.Element, error) {
	el, err := p.enter(ast.LetStatement)
	defer p.leave()
	if err != nil {
		return nil, err
	}

	if _, err := p.expectKeyword(el, token.Let); err != nil {
		return nil, err
	}
	if _, err := p.expectIdentifier(el); err != nil {
		return nil, err
	}

	next, err := p.peek()
	if err != nil {
		return nil, err
	}
	switch {
	case next.IsSymbol('['):
		if _, err := p.take(el); err != nil {
			return nil, err
		}
		if err := p.appendExpression(el); err != nil {
			return nil, err
		}
		if err := p.expectSymbol(el, ']'); err != nil {
			return nil, err
		}
	case !next.IsSymbol('='):
		return nil, p.syntaxError(alternatives("'['", "'='"), next)
	}

	if err := p.expectSymbol(el, '='); err != nil {
		return nil, err
	}
	if err := p.appendExpression(el); err != nil {
		return nil, err
	}
	if err := p.expectSymbol(el, ';'); err != nil {
		return nil, err
	}
	return el, nil
}

// ifStatement: 'if' '(' expression ')' '{' statements '}'
// ('else' '{' statements '}')?
func (p *Parser) compileIf() (*ast.Element, error) {
	el, err := p.enter(ast.IfStatement)
	defer p.leave()
	if err != nil {
		return nil, err
	}

	if _, err := p.expectKeyword(el, token.If); err != nil {
		return nil, err
	}
	if err := p.compileCondition(el); err != nil {
		return nil, err
	}
	if err := p.compileBlock(el); err != nil {
		return nil, err
	}

	next, err := p.peek()
	if err != nil {
		return nil, err
	}
	if next.IsKeyword(token.Else) {
		if _, err := p.take(el); err != nil {
			return nil, err
		}
		if err := p.compileBlock(el); err != nil {
			return nil, err
		}
	}
	return el, nil
}

// whileStatement: 'while' '(' expression ')' '{' statements '}'
func (p *Parser) compileWhile() (*ast.Element, error) {
	el, err := p.enter(ast.WhileStatement)
	defer p.leave()
	if err != nil {
		return nil, err
	}

	if _, err := p.expectKeyword(el, token.While); err != nil {
		return nil, err
	}
	if err := p.compileCondition(el); err != nil {
		return nil, err
	}
	if err := p.compileBlock(el); err != nil {
		return nil, err
	}
	return el, nil
}

// doStatement: 'do' subroutineCall ';'
func (p *Parser) compileDo() (*ast.Element, error) {
	el, err := p.enter(ast.DoStatement)
	defer p.leave()
	if err != nil {
		return nil, err
	}

	if _, err := p.expectKeyword(el, token.Do); err != nil {
		return nil, err
	}
	if _, err := p.expectIdentifier(el); err != nil {
		return nil, err
	}
	if err := p.compileCallRest(el); err != nil {
		return nil, err
	}
	if err := p.expectSymbol(el, ';'); err != nil {
		return nil, err
	}
	return el, nil
}

// returnStatement: 'return' expression? ';'
func (p *Parser) compileReturn() (*ast.Element, error) {
	el, err := p.enter(ast.ReturnStatement)
	defer p.leave()
	if err != nil {
		return nil, err
	}

	if _, err := p.expectKeyword(el, token.Return); err != nil {
		return nil, err
	}

	next, err := p.peek()
	if err != nil {
		return nil, err
	}
	if !next.IsSymbol(';') {
		if err := p.appendExpression(el); err != nil {
			return nil, err
		}
	}

	if err := p.expectSymbol(el, ';'); err != nil {
		return nil, err
	}
	return el, nil
}

// compileCondition parses '(' expression ')' into el
func (p *Parser) compileCondition(el *ast.Element) error {
	if err := p.expectSymbol(el, '('); err != nil {
		return err
	}
	if err := p.appendExpression(el); err != nil {
		return err
	}
	return p.expectSymbol(el, ')')
}

// compileBlock parses '{' statements '}' into el
func (p *Parser) compileBlock(el *ast.Element) error {
	if err := p.expectSymbol(el, '{'); err != nil {
		return err
	}
	stmts, err := p.compileStatements()
	if err != nil {
		return err
	}
	el.Append(stmts)
	return p.expectSymbol(el, '}')
}
