// File: visitor.go
// Title: Jack Parse Tree Visitors
// Description: Visitor interface and the stock visitors: statistics,
//              S-expression dump, validation, plus Walk for ad hoc
//              traversals.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-11
// Modified: 2025-02-11
//
// Change History:
// - 2025-02-11 v0.1.0: Initial implementation

package ast

import (
	"strings"
)

// Visitor interface for traversing the tree in document order
type Visitor interface {
	VisitElementStart(e *Element) error
	VisitElementEnd(e *Element) error
	VisitTerminal(t *Terminal) error
}

// BaseVisitor provides no-op implementations for all visitor methods.
// Embed this in concrete visitors to only override needed methods.
type BaseVisitor struct{}

func (BaseVisitor) VisitElementStart(*Element) error { return nil }
func (BaseVisitor) VisitElementEnd(*Element) error   { return nil }
func (BaseVisitor) VisitTerminal(*Terminal) error    { return nil }

// Stats summarizes a tree
type Stats struct {
	Elements     int
	Terminals    int
	Opens        int
	Closes       int
	MaxDepth     int
	ByProduction map[Production]int
}

// Balanced reports whether every opened element was closed
func (s Stats) Balanced() bool {
	return s.Opens == s.Closes
}

// StatsVisitor accumulates Stats while visiting
type StatsVisitor struct {
	BaseVisitor
	stats Stats
	depth int
}

// NewStatsVisitor creates an empty statistics visitor
func NewStatsVisitor() *StatsVisitor {
	return &StatsVisitor{stats: Stats{ByProduction: make(map[Production]int)}}
}

func (sv *StatsVisitor) VisitElementStart(e *Element) error {
	sv.stats.Elements++
	sv.stats.Opens++
	sv.stats.ByProduction[e.Production]++
	sv.depth++
	if sv.depth > sv.stats.MaxDepth {
		sv.stats.MaxDepth = sv.depth
	}
	return nil
}

func (sv *StatsVisitor) VisitElementEnd(*Element) error {
	sv.stats.Closes++
	sv.depth--
	return nil
}

func (sv *StatsVisitor) VisitTerminal(*Terminal) error {
	sv.stats.Terminals++
	return nil
}

// Stats returns the accumulated statistics
func (sv *StatsVisitor) Stats() Stats {
	return sv.stats
}

// DumpVisitor renders a tree as a single-line S-expression
type DumpVisitor struct {
	builder strings.Builder
	atStart bool
}

func (dv *DumpVisitor) VisitElementStart(e *Element) error {
	dv.space()
	dv.builder.WriteByte('(')
	dv.builder.WriteString(string(e.Production))
	dv.atStart = true
	return nil
}

func (dv *DumpVisitor) VisitElementEnd(*Element) error {
	dv.builder.WriteByte(')')
	return nil
}

func (dv *DumpVisitor) VisitTerminal(t *Terminal) error {
	dv.space()
	dv.builder.WriteString(t.String())
	return nil
}

func (dv *DumpVisitor) space() {
	if !dv.atStart && dv.builder.Len() > 0 {
		dv.builder.WriteByte(' ')
	}
	dv.atStart = false
}

// String returns the rendered text
func (dv *DumpVisitor) String() string {
	return dv.builder.String()
}

// ValidationVisitor collects structural errors from every node
type ValidationVisitor struct {
	errors []error
}

func (vv *ValidationVisitor) VisitElementStart(e *Element) error {
	if err := e.Validate(); err != nil {
		vv.errors = append(vv.errors, err)
	}
	return nil
}

func (vv *ValidationVisitor) VisitElementEnd(*Element) error { return nil }

func (vv *ValidationVisitor) VisitTerminal(t *Terminal) error {
	if err := t.Validate(); err != nil {
		vv.errors = append(vv.errors, err)
	}
	return nil
}

// Errors returns the collected errors
func (vv *ValidationVisitor) Errors() []error {
	return vv.errors
}

// Collect computes statistics for the tree rooted at node
func Collect(node Node) Stats {
	sv := NewStatsVisitor()
	_ = node.Accept(sv)
	return sv.Stats()
}

// Dump renders the tree rooted at node as an S-expression, e.g.
// (term identifier:foo symbol:[ (expression (term integerConstant:1)) symbol:])
func Dump(node Node) string {
	dv := &DumpVisitor{}
	_ = node.Accept(dv)
	return dv.String()
}

// ValidateTree validates every node of the tree rooted at node
func ValidateTree(node Node) []error {
	vv := &ValidationVisitor{}
	_ = node.Accept(vv)
	return vv.Errors()
}

// Walk calls fn for node and its descendants in document order. depth is 0
// for node itself. Returning false from fn skips the node's children.
func Walk(node Node, fn func(n Node, depth int) bool) {
	walk(node, 0, fn)
}

func walk(node Node, depth int, fn func(Node, int) bool) {
	if !fn(node, depth) {
		return
	}
	if e, ok := node.(*Element); ok {
		for _, child := range e.Children {
			walk(child, depth+1, fn)
		}
	}
}
