// File: timer.go
// Title: Performance Timer
// Description: Measures how long an operation took and logs the result.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-16 v0.2.0: Simplified to Stop/StopWithError, failures logged at the timer level

package log

import (
	"time"
)

// Timer represents a performance timer for measuring operation duration
type Timer struct {
	logger    *Logger
	operation string
	startTime time.Time
	fields    Fields
	level     Level
	stopped   bool
}

// NewTimer creates a new timer for the given operation
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		startTime: time.Now(),
		fields:    make(Fields),
		level:     LevelDebug,
	}
}

// WithLevel sets the log level for the timer completion message
func (t *Timer) WithLevel(level Level) *Timer {
	t.level = level
	return t
}

// WithField adds a field to be logged when the timer completes
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Elapsed returns the elapsed time since the timer was started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.startTime)
}

// Stop stops the timer and logs the elapsed time. A second call is a no-op returning 0.
func (t *Timer) Stop() time.Duration {
	if t.stopped {
		return 0
	}
	elapsed := t.Elapsed()
	t.stopped = true

	if t.logger != nil {
		entry := NewEntry(t.level, t.operation+" completed")
		t.emit(entry, elapsed)
	}
	return elapsed
}

// StopWithError stops the timer and logs err with the elapsed time at the
// timer's level. Reporting the failure itself is left to the caller.
func (t *Timer) StopWithError(err error) time.Duration {
	if t.stopped {
		return 0
	}
	elapsed := t.Elapsed()
	t.stopped = true

	if t.logger != nil {
		entry := NewEntry(t.level, t.operation+" failed")
		entry.Error = err
		t.emit(entry, elapsed)
	}
	return elapsed
}

func (t *Timer) emit(entry *Entry, elapsed time.Duration) {
	if !entry.Level.ShouldLog(t.logger.level) {
		return
	}
	entry.Logger = t.logger.name
	entry.CorrelationID = t.logger.correlationID
	entry.Duration = elapsed
	for k, v := range t.logger.contextFields {
		entry.Fields[k] = v
	}
	for k, v := range t.fields {
		entry.Fields[k] = v
	}
	entry.Fields["operation"] = t.operation
	t.logger.write(entry)
}
