// File: nodes.go
// Title: Jack Parse Tree Nodes
// Description: Element and Terminal node types and the production labels.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-11
// Modified: 2025-02-11
//
// Change History:
// - 2025-02-11 v0.1.0: Initial implementation

package ast

import (
	"fmt"
	"strconv"

	"github.com/msto63/jackc/foundation/jack/token"
)

// Production labels an element with the grammar rule that produced it
type Production string

const (
	Class           Production = "class"
	ClassVarDec     Production = "classVarDec"
	SubroutineDec   Production = "subroutineDec"
	ParameterList   Production = "parameterList"
	SubroutineBody  Production = "subroutineBody"
	VarDec          Production = "varDec"
	Statements      Production = "statements"
	LetStatement    Production = "letStatement"
	IfStatement     Production = "ifStatement"
	WhileStatement  Production = "whileStatement"
	DoStatement     Production = "doStatement"
	ReturnStatement Production = "returnStatement"
	Expression      Production = "expression"
	Term            Production = "term"
	ExpressionList  Production = "expressionList"
)

// IsStatement reports whether p labels one of the five statement kinds
func (p Production) IsStatement() bool {
	switch p {
	case LetStatement, IfStatement, WhileStatement, DoStatement, ReturnStatement:
		return true
	}
	return false
}

// Node represents the base interface for all parse tree nodes
type Node interface {
	// Tag returns the element name used when the node is serialized
	Tag() string

	// Accept implements the visitor pattern
	Accept(visitor Visitor) error

	// Position returns the source position of the node's first token
	Position() token.Position

	// Validate performs basic structural validation of the node
	Validate() error

	String() string
}

// Element is a non-terminal node
type Element struct {
	Production Production
	Children   []Node
	Pos        token.Position
}

// Terminal is a leaf holding a single token
type Terminal struct {
	Token token.Token
}

// NewElement creates an empty element for production p
func NewElement(p Production, pos token.Position) *Element {
	return &Element{Production: p, Pos: pos}
}

// Append adds child nodes in order
func (e *Element) Append(children ...Node) {
	e.Children = append(e.Children, children...)
}

// AppendToken adds a terminal for tok
func (e *Element) AppendToken(tok token.Token) {
	e.Children = append(e.Children, &Terminal{Token: tok})
}

// Tag returns the production name
func (e *Element) Tag() string {
	return string(e.Production)
}

// Accept visits the element, its children in order, then the element's end
func (e *Element) Accept(visitor Visitor) error {
	if err := visitor.VisitElementStart(e); err != nil {
		return err
	}
	for _, child := range e.Children {
		if err := child.Accept(visitor); err != nil {
			return err
		}
	}
	return visitor.VisitElementEnd(e)
}

// Position returns the position of the element's first token
func (e *Element) Position() token.Position {
	return e.Pos
}

// Validate checks the element has a label and no nil children
func (e *Element) Validate() error {
	if e.Production == "" {
		return fmt.Errorf("element at %s has no production", e.Pos)
	}
	for i, child := range e.Children {
		if child == nil {
			return fmt.Errorf("%s at %s: child %d is nil", e.Production, e.Pos, i)
		}
		if e.Production != Statements {
			continue
		}
		if el, ok := child.(*Element); !ok || !el.Production.IsStatement() {
			return fmt.Errorf("statements at %s: child %d is not a statement", e.Pos, i)
		}
	}
	return nil
}

// String renders the subtree as an S-expression
func (e *Element) String() string {
	return Dump(e)
}

// Elements returns the direct children that are elements labeled p
func (e *Element) Elements(p Production) []*Element {
	var out []*Element
	for _, child := range e.Children {
		if el, ok := child.(*Element); ok && el.Production == p {
			out = append(out, el)
		}
	}
	return out
}

// Terminals returns the direct children that are terminals
func (e *Element) Terminals() []*Terminal {
	var out []*Terminal
	for _, child := range e.Children {
		if t, ok := child.(*Terminal); ok {
			out = append(out, t)
		}
	}
	return out
}

// Tag returns the token kind's element name
func (t *Terminal) Tag() string {
	return t.Token.Kind.Tag()
}

// Accept calls VisitTerminal
func (t *Terminal) Accept(visitor Visitor) error {
	return visitor.VisitTerminal(t)
}

// Position returns the token position
func (t *Terminal) Position() token.Position {
	return t.Token.Pos
}

// Validate checks the terminal holds a real token
func (t *Terminal) Validate() error {
	if t.Token.Kind == token.KindNone {
		return fmt.Errorf("terminal at %s holds no token", t.Token.Pos)
	}
	return nil
}

// Content returns the text written between the terminal's tags
func (t *Terminal) Content() string {
	return t.Token.Lexeme()
}

// String returns tag:content, e.g. symbol:{ or stringConstant:"a b"
func (t *Terminal) String() string {
	if t.Token.Kind == token.KindStringConst {
		return t.Tag() + ":" + strconv.Quote(t.Content())
	}
	return t.Tag() + ":" + t.Content()
}
