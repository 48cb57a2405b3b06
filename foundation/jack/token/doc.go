// Package token defines the lexical vocabulary of the Jack language.
//
// Package: token
// Title: Jack Token Definitions
// Description: Token kinds, the keyword and symbol sets, source positions
//              and the Token value produced by the tokenizer. The package has
//              no behavior beyond classification, so both the tokenizer and
//              the parser can depend on it without depending on each other.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation
package token
