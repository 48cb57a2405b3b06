// Package tokenizer turns Jack source text into a stream of classified tokens.
//
// Package: tokenizer
// Title: Jack Lexical Tokenizer
// Description: A byte-oriented scanner and a cursor over its output. The
//              cursor offers Advance, one step of Retreat and a Peek that
//              looks at the next token without consuming it. Scanning is
//              lazy: tokens are produced as the cursor asks for them, and the
//              first lexical error stops the stream for good.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-14
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation
// - 2025-02-14 v0.1.1: Peek, sticky scan errors
//
// Usage:
//   tz := tokenizer.New(src)
//   for tz.HasMore() {
//     if err := tz.Advance(); err != nil {
//       return err
//     }
//     tok, _ := tz.Current()
//     fmt.Println(tok)
//   }
package tokenizer
