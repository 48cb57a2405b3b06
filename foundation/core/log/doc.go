// Package log provides structured logging for the jackc analyzer.
//
// Package: log
// Title: jackc Structured Logging Framework
// Description: Leveled, structured logging with persistent context fields,
//              correlation IDs, several output formats and performance
//              timers. Integrates with the structured error package so that
//              error codes and details end up as log fields.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2025-03-02 v0.2.0: Synchronous writer only, deterministic field order
//
// Usage:
//   import jclog "github.com/msto63/jackc/foundation/core/log"
//
//   logger := jclog.NewWithConfig(jclog.Config{Level: jclog.LevelDebug, Format: jclog.FormatConsole}).
//     WithName("jack-engine").
//     WithCorrelationID(runID)
//
//   logger.Info("analysis completed", jclog.Fields{"tokens": 412})
//
//   timer := logger.StartTimer("analyze")
//   // ... work
//   if err != nil {
//     timer.StopWithError(err)
//   } else {
//     timer.Stop()
//   }
package log
