// ============================================================================
// jackc - Jack Syntax Analyzer
// ============================================================================
//
// Package:     treeview
// Description: Flattening and rendering of parse trees into outline rows
// Author:      Mike Stoffels
// Created:     2025-02-20
// License:     MIT
// ============================================================================

package treeview

import (
	"fmt"
	"strings"

	"github.com/msto63/jackc/foundation/jack/ast"
	"github.com/msto63/jackc/foundation/jack/token"
)

// Row is one line of the outline: an element or a terminal at a depth
type Row struct {
	Depth    int
	Element  *ast.Element
	Terminal *ast.Terminal
}

// IsTerminal reports whether the row holds a token leaf
func (r Row) IsTerminal() bool {
	return r.Terminal != nil
}

// Kind returns the token kind of a terminal row, KindNone for elements
func (r Row) Kind() token.Kind {
	if r.Terminal == nil {
		return token.KindNone
	}
	return r.Terminal.Token.Kind
}

// LeafFilter tracks which terminal kinds are shown. Elements are always shown.
type LeafFilter struct {
	Keyword     bool
	Symbol      bool
	Identifier  bool
	IntConst    bool
	StringConst bool
}

// ShowAll returns a filter with every kind enabled
func ShowAll() LeafFilter {
	return LeafFilter{
		Keyword:     true,
		Symbol:      true,
		Identifier:  true,
		IntConst:    true,
		StringConst: true,
	}
}

// Toggle flips the kind bound to key "1" to "5". It reports false for any
// other key.
func (f *LeafFilter) Toggle(key string) bool {
	switch key {
	case "1":
		f.Keyword = !f.Keyword
	case "2":
		f.Symbol = !f.Symbol
	case "3":
		f.Identifier = !f.Identifier
	case "4":
		f.IntConst = !f.IntConst
	case "5":
		f.StringConst = !f.StringConst
	default:
		return false
	}
	return true
}

// Allows reports whether rows of the given kind are shown
func (f LeafFilter) Allows(kind token.Kind) bool {
	switch kind {
	case token.KindKeyword:
		return f.Keyword
	case token.KindSymbol:
		return f.Symbol
	case token.KindIdentifier:
		return f.Identifier
	case token.KindIntConst:
		return f.IntConst
	case token.KindStringConst:
		return f.StringConst
	default:
		return true
	}
}

// Flatten lists the tree in document order
func Flatten(root ast.Node) []Row {
	var rows []Row
	if root == nil {
		return rows
	}
	ast.Walk(root, func(n ast.Node, depth int) bool {
		switch node := n.(type) {
		case *ast.Element:
			rows = append(rows, Row{Depth: depth, Element: node})
		case *ast.Terminal:
			rows = append(rows, Row{Depth: depth, Terminal: node})
		}
		return true
	})
	return rows
}

// Filter returns the rows the filter allows
func Filter(rows []Row, filter LeafFilter) []Row {
	out := make([]Row, 0, len(rows))
	for _, row := range rows {
		if row.IsTerminal() && !filter.Allows(row.Kind()) {
			continue
		}
		out = append(out, row)
	}
	return out
}

// FormatRow returns the unstyled text of a row: tag name for elements,
// tag and content for terminals
func FormatRow(row Row) string {
	indent := strings.Repeat("  ", row.Depth)
	if !row.IsTerminal() {
		return indent + row.Element.Tag()
	}
	return fmt.Sprintf("%s%s %s", indent, row.Terminal.Tag(), leafContent(row.Terminal))
}

// Outline renders rows as unstyled text, one row per line
func Outline(rows []Row) string {
	var b strings.Builder
	for _, row := range rows {
		b.WriteString(FormatRow(row))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderRows renders rows with guides, kind colors and source positions
func RenderRows(rows []Row) string {
	var b strings.Builder
	for _, row := range rows {
		b.WriteString(GuideStyle.Render(strings.Repeat("│ ", row.Depth)))
		if row.IsTerminal() {
			style := kindStyle(row.Kind())
			b.WriteString(style.Render(row.Terminal.Tag()))
			b.WriteString(" ")
			b.WriteString(style.Render(leafContent(row.Terminal)))
			b.WriteString(" ")
			b.WriteString(PositionStyle.Render(row.Terminal.Position().String()))
		} else {
			b.WriteString(ElementStyle.Render(row.Element.Tag()))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func leafContent(t *ast.Terminal) string {
	if t.Token.Kind == token.KindStringConst {
		return fmt.Sprintf("%q", t.Content())
	}
	return t.Content()
}

// KindCounts counts terminal rows per kind
func KindCounts(rows []Row) map[token.Kind]int {
	counts := make(map[token.Kind]int)
	for _, row := range rows {
		if row.IsTerminal() {
			counts[row.Kind()]++
		}
	}
	return counts
}
