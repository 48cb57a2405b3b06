// Package jack ties the Jack tokenizer, parser and emitter together.
//
// Package: jack
// Title: Jack Syntax Analysis Engine
// Description: The Engine runs one analysis per call: it tags the run with a
//              correlation ID, tokenizes and parses the source, computes tree
//              statistics and renders the result as XML. Engines hold no
//              per-run state and can be shared between goroutines.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-15
// Modified: 2025-02-18
//
// Change History:
// - 2025-02-15 v0.1.0: Initial implementation
// - 2025-02-18 v0.1.1: Render into a buffer before writing
//
// Usage:
//   engine, err := jack.NewEngine(jack.Options{Logger: logger})
//   result, err := engine.Analyze("Main.jack", src)
//   if err != nil {
//     return err
//   }
//   err = engine.WriteTree(out, result)
package jack
