// Package log provides structured logging for fixstr.
//
// Package: log
// Title: Structured Logging
// Description: Structured logging with contextual fields, JSON and text
//              output and integration with the foundation error type.
//              Loggers are immutable values; With* methods return copies
//              that share the output and its write lock.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-12 v0.2.0: Trimmed to JSON and text output, severity aware LogError
//
// Usage:
//
//	import mdwlog "github.com/msto63/fixstr/foundation/core/log"
//
//	logger := mdwlog.New().
//		WithLevel(mdwlog.LevelInfo).
//		WithFormat(mdwlog.FormatText).
//		WithName("finder").
//		WithCorrelationID(runID)
//
//	logger.Info("scan started", mdwlog.Field("root", root))
//	logger.WarnWithErr("skipping directory", err, mdwlog.Field("path", p))
//
//	timer := logger.StartTimer("scan")
//	defer timer.Stop()
//
// Errors created with the foundation error package carry a severity;
// LogError picks the level from it (low -> info, medium -> warn,
// high and critical -> error) and adds code, operation and details as
// fields.
package log
