// ============================================================================
// zeitwerk - Civil Calendar and Zone Offset Engine
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating loggers from configuration
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	"github.com/google/uuid"

	mdwlog "github.com/msto63/zeitwerk/foundation/core/log"
	"github.com/msto63/zeitwerk/pkg/core/config"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Logger name, shown in every entry
	Name string

	// Log level (trace, debug, info, warn, error, off)
	Level string

	// Output format: "json", "text" or "logfmt" (default: text)
	Format string

	// Output writer, stderr if nil
	Output io.Writer

	// CorrelationID tags every entry; a fresh one is generated if empty
	CorrelationID string
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  "warn",
		Format: "text",
	}
}

// NewLogger creates a new Foundation logger. Unknown levels fall back to
// info and unknown formats to text.
func NewLogger(cfg LoggerConfig) *mdwlog.Logger {
	level, err := mdwlog.ParseLevel(cfg.Level)
	if err != nil {
		level = mdwlog.LevelInfo
	}

	format, err := mdwlog.ParseFormat(cfg.Format)
	if err != nil {
		format = mdwlog.FormatText
	}

	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}

	id := cfg.CorrelationID
	if id == "" {
		id = NewCorrelationID()
	}

	return mdwlog.NewWithConfig(mdwlog.Config{
		Level:  level,
		Format: format,
		Output: output,
		Name:   cfg.Name,
	}).WithCorrelationID(id)
}

// FromConfig creates the logger described by the general section of cfg
func FromConfig(name string, cfg *config.Config, output io.Writer) *mdwlog.Logger {
	lc := DefaultLoggerConfig(name)
	lc.Output = output
	if cfg != nil {
		lc.Level = cfg.General.LogLevel
		lc.Format = cfg.General.LogFormat
	}
	return NewLogger(lc)
}

// NewCorrelationID returns a random id for one command invocation
func NewCorrelationID() string {
	return uuid.NewString()
}
