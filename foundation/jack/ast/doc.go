// Package ast defines the concrete parse tree built by the Jack analyzer.
//
// Package: ast
// Title: Jack Parse Tree
// Description: The tree has two node types. An Element is a non-terminal
//              labeled by the grammar production that built it; a Terminal
//              wraps one token. Visitors see every element twice (start and
//              end) and every terminal once, which is exactly what a
//              serializer needs. Helpers compute statistics, validate the
//              tree and render a compact S-expression for tests.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-11
// Modified: 2025-02-11
//
// Change History:
// - 2025-02-11 v0.1.0: Initial implementation
//
// Usage:
//   stats := ast.Collect(root)
//   fmt.Println(stats.Elements, stats.MaxDepth)
//   fmt.Println(ast.Dump(root))  // (class keyword:class identifier:Main ...)
package ast
