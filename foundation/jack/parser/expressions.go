// File: expressions.go
// Title: Jack Expression Productions
// Description: expression, term, expressionList and the inlined
//              subroutineCall. All binary operators share one precedence
//              level and associate to the left; the tree keeps the operands
//              and operators as flat siblings.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-13
// Modified: 2025-02-13
//
// Change History:
// - 2025-02-13 v0.1.0: Initial implementation

package parser

import (
	"github.com/msto63/jackc/foundation/jack/ast"
	"github.com/msto63/jackc/foundation/jack/token"
)

// expression: term (op term)*
func (p *Parser) compileExpression() (*ast.Element, error) {
	el, err := p.enter(ast.Expression)
	defer p.leave()
	if err != nil {
		return nil, err
	}

	if err := p.appendTerm(el); err != nil {
		return nil, err
	}

	for {
		next, err := p.peek()
		if err != nil {
			return nil, err
		}
		if next.Kind != token.KindSymbol || !token.IsOp(next.Symbol) {
			return el, nil
		}
		if _, err := p.take(el); err != nil {
			return nil, err
		}
		if err := p.appendTerm(el); err != nil {
			return nil, err
		}
	}
}

// term: integerConstant | stringConstant | keywordConstant | varName
//     | varName '[' expression ']' | subroutineCall | '(' expression ')'
//     | unaryOp term
func (p *Parser) compileTerm() (*ast.Element, error) {
	el, err := p.enter(ast.Term)
	defer p.leave()
	if err != nil {
		return nil, err
	}

	next, err := p.peek()
	if err != nil {
		return nil, err
	}

	switch {
	case next.Kind == token.KindIntConst, next.Kind == token.KindStringConst:
		_, err = p.take(el)

	case next.Kind == token.KindKeyword && token.IsKeywordConstant(next.Keyword):
		_, err = p.take(el)

	case next.Kind == token.KindIdentifier:
		err = p.compileReference(el)

	case next.IsSymbol('('):
		err = p.compileParenthesized(el)

	case next.Kind == token.KindSymbol && token.IsUnaryOp(next.Symbol):
		if _, err = p.take(el); err == nil {
			err = p.appendTerm(el)
		}

	default:
		return nil, p.syntaxError("term", next)
	}

	if err != nil {
		return nil, err
	}
	return el, nil
}

// compileReference handles a term starting with an identifier. The token
// after the identifier decides between a plain variable, an array access and
// a subroutine call.
func (p *Parser) compileReference(el *ast.Element) error {
	if _, err := p.expectIdentifier(el); err != nil {
		return err
	}

	next, err := p.peek()
	if err != nil {
		return err
	}

	switch {
	case next.IsSymbol('['):
		if _, err := p.take(el); err != nil {
			return err
		}
		if err := p.appendExpression(el); err != nil {
			return err
		}
		return p.expectSymbol(el, ']')
	case next.IsSymbol('('), next.IsSymbol('.'):
		return p.compileCallRest(el)
	default:
		return nil
	}
}

func (p *Parser) compileParenthesized(el *ast.Element) error {
	if err := p.expectSymbol(el, '('); err != nil {
		return err
	}
	if err := p.appendExpression(el); err != nil {
		return err
	}
	return p.expectSymbol(el, ')')
}

// compileCallRest parses the part of a subroutineCall after its leading
// identifier, appending to el:
//
//	'(' expressionList ')' | '.' subroutineName '(' expressionList ')'
func (p *Parser) compileCallRest(el *ast.Element) error {
	next, err := p.peek()
	if err != nil {
		return err
	}

	switch {
	case next.IsSymbol('.'):
		if _, err := p.take(el); err != nil {
			return err
		}
		if _, err := p.expectIdentifier(el); err != nil {
			return err
		}
	case !next.IsSymbol('('):
		return p.syntaxError(alternatives("'('", "'.'"), next)
	}

	if err := p.expectSymbol(el, '('); err != nil {
		return err
	}
	list, err := p.compileExpressionList()
	if err != nil {
		return err
	}
	el.Append(list)
	return p.expectSymbol(el, ')')
}

// expressionList: (expression (',' expression)*)?
// The closing ')' is left for the caller.
func (p *Parser) compileExpressionList() (*ast.Element, error) {
	el, err := p.enter(ast.ExpressionList)
	defer p.leave()
	if err != nil {
		return nil, err
	}

	next, err := p.peek()
	if err != nil {
		return nil, err
	}
	if next.IsSymbol(')') {
		return el, nil
	}

	for {
		if err := p.appendExpression(el); err != nil {
			return nil, err
		}

		next, err := p.peek()
		if err != nil {
			return nil, err
		}
		if !next.IsSymbol(',') {
			return el, nil
		}
		if _, err := p.take(el); err != nil {
			return nil, err
		}
	}
}

func (p *Parser) appendExpression(el *ast.Element) error {
	expr, err := p.compileExpression()
	if err != nil {
		return err
	}
	el.Append(expr)
	return nil
}

func (p *Parser) appendTerm(el *ast.Element) error {
	term, err := p.compileTerm()
	if err != nil {
		return err
	}
	el.Append(term)
	return nil
}
