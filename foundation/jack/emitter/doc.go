// Package emitter serializes Jack parse trees and token streams as XML.
//
// Package: emitter
// Title: Jack Tree Emitter
// Description: A small tag writer that renders nested elements and leaf
//              elements, checks that every element is closed by the matching
//              tag, and escapes the three characters the output format
//              reserves. WriteTree and WriteTokens drive it from a parse tree
//              or a flat token list.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-14
// Modified: 2025-02-14
//
// Change History:
// - 2025-02-14 v0.1.0: Initial implementation
//
// Usage:
//   var buf bytes.Buffer
//   if err := emitter.WriteTree(&buf, root, "  "); err != nil {
//     return err
//   }
package emitter
