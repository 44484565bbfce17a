// Package log provides structured logging for the xlstr module.
//
// Package: log
// Title: xlstr Structured Logging
// Description: Leveled, structured logging with JSON, text and logfmt output,
//              persistent context fields and integration with the structured
//              error type of core/error.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2025-10-19 v0.2.0: Synchronous writer, Discard logger
//
// Usage:
//
//	import mdwlog "github.com/msto63/xlstr/core/log"
//
//	logger := mdwlog.New().
//		WithLevel(mdwlog.LevelDebug).
//		WithFormat(mdwlog.FormatLogfmt).
//		WithName("conformance")
//
//	logger.Info("suite loaded", mdwlog.Int("cases", 42))
//
//	timer := logger.StartTimer("run")
//	// ... run the suites
//	timer.Stop()
package log
