// Package log provides structured logging for zeitwerk tools.
//
// Package: log
// Title: zeitwerk Structured Logging
// Description: Structured logging with contextual fields, JSON/text/logfmt output,
//              correlation ids and integration with the zeitwerk error type. The
//              calendar engine itself never logs; commands and the config loader do.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-16 v0.2.0: Immutable loggers, deterministic field order
//
// Usage:
//
//	import mdwlog "github.com/msto63/zeitwerk/foundation/core/log"
//
//	logger := mdwlog.NewWithConfig(mdwlog.Config{
//		Level:  mdwlog.LevelDebug,
//		Format: mdwlog.FormatLogfmt,
//		Name:   "zeitwerk",
//	}).WithCorrelationID(id)
//
//	logger.Info("converted", mdwlog.Fields{"from": "Z", "to": "+05:30"})
//	logger.LogError(err)
package log
