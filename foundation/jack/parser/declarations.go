// File: declarations.go
// Title: Jack Declaration Productions
// Description: class, classVarDec, subroutineDec, parameterList,
//              subroutineBody and varDec.
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

// class: 'class' className '{' (classVarDec | subroutineDec)* '}'
func (p *Parser) compileClass() (*ast.Element, error) {
	el, err := p.enter(ast.Class)
	defer p.leave()
	if err != nil {
		return nil, err
	}

	if _, err := p.expectKeyword(el, token.Class); err != nil {
		return nil, err
	}
	if _, err := p.expectIdentifier(el); err != nil {
		return nil, err
	}
	if err := p.expectSymbol(el, '{'); err != nil {
		return nil, err
	}

	for {
		next, err := p.peek()
		if err != nil {
			return nil, err
		}
		if next.IsSymbol('}') {
			break
		}

		var member *ast.Element
		switch {
		case next.IsKeyword(token.Static), next.IsKeyword(token.Field):
			member, err = p.compileClassVarDec()
		case next.IsKeyword(token.Constructor), next.IsKeyword(token.Function), next.IsKeyword(token.Method):
			member, err = p.compileSubroutineDec()
		default:
			return nil, p.syntaxError(
				alternatives("'static'", "'field'", "'constructor'", "'function'", "'method'", "'}'"), next)
		}
		if err != nil {
			return nil, err
		}
		el.Append(member)
	}

	if err := p.expectSymbol(el, '}'); err != nil {
		return nil, err
	}
	return el, nil
}

// classVarDec: ('static'|'field') type varName (',' varName)* ';'
func (p *Parser) compileClassVarDec() (*ast.Element, error) {
	el, err := p.enter(ast.ClassVarDec)
	defer p.leave()
	if err != nil {
		return nil, err
	}

	if _, err := p.expectKeyword(el, token.Static, token.Field); err != nil {
		return nil, err
	}
	if err := p.compileNameList(el); err != nil {
		return nil, err
	}
	return el, nil
}

// compileNameList parses type varName (',' varName)* ';' into el
func (p *Parser) compileNameList(el *ast.Element) error {
	if err := p.expectType(el, false); err != nil {
		return err
	}
	if _, err := p.expectIdentifier(el); err != nil {
		return err
	}

	for {
		next, err := p.peek()
		if err != nil {
			return err
		}
		if !next.IsSymbol(',') {
			break
		}
		if _, err := p.take(el); err != nil {
			return err
		}
		if _, err := p.expectIdentifier(el); err != nil {
			return err
		}
	}

	return p.expectSymbol(el, ';')
}

// subroutineDec: ('constructor'|'function'|'method') ('void'|type)
// subroutineName '(' parameterList ')' subroutineBody
func (p *Parser) compileSubroutineDec() (*ast.Element, error) {
	el, err := p.enter(ast.SubroutineDec)
	defer p.leave()
	if err != nil {
		return nil, err
	}

	if _, err := p.expectKeyword(el, token.Constructor, token.Function, token.Method); err != nil {
		return nil, err
	}
	if err := p.expectType(el, true); err != nil {
		return nil, err
	}
	if _, err := p.expectIdentifier(el); err != nil {
		return nil, err
	}
	if err := p.expectSymbol(el, '('); err != nil {
		return nil, err
	}

	params, err := p.compileParameterList()
	if err != nil {
		return nil, err
	}
	el.Append(params)

	if err := p.expectSymbol(el, ')'); err != nil {
		return nil, err
	}

	body, err := p.compileSubroutineBody()
	if err != nil {
		return nil, err
	}
	el.Append(body)
	return el, nil
}

// parameterList: ((type varName) (',' type varName)*)?
// The closing ')' is left for the caller.
func (p *Parser) compileParameterList() (*ast.Element, error) {
	el, err := p.enter(ast.ParameterList)
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
		if err := p.expectType(el, false); err != nil {
			return nil, err
		}
		if _, err := p.expectIdentifier(el); err != nil {
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

// subroutineBody: '{' varDec* statements '}'
func (p *Parser) compileSubroutineBody() (*ast.Element, error) {
	el, err := p.enter(ast.SubroutineBody)
	defer p.leave()
	if err != nil {
		return nil, err
	}

	if err := p.expectSymbol(el, '{'); err != nil {
		return nil, err
	}

	for {
		next, err := p.peek()
		if err != nil {
			return nil, err
		}
		if !next.IsKeyword(token.Var) {
			break
		}
		varDec, err := p.compileVarDec()
		if err != nil {
			return nil, err
		}
		el.Append(varDec)
	}

	stmts, err := p.compileStatements()
	if err != nil {
		return nil, err
	}
	el.Append(stmts)

	if err := p.expectSymbol(el, '}'); err != nil {
		return nil, err
	}
	return el, nil
}

// varDec: 'var' type varName (',' varName)* ';'
func (p *Parser) compileVarDec() (*ast.Element, error) {
	el, err := p.enter(ast.VarDec)
	defer p.leave()
	if err != nil {
		return nil, err
	}

	if _, err := p.expectKeyword(el, token.Var); err != nil {
		return nil, err
	}
	if err := p.compileNameList(el); err != nil {
		return nil, err
	}
	return el, nil
}
