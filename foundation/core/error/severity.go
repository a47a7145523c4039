// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. Input errors are expected and
//              recoverable; configuration problems stop a command before it runs.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-16 v0.2.0: Severity mapping for calendar and zone codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates rejected user input, e.g. a malformed zone identifier
	SeverityLow Severity = iota

	// SeverityMedium is the default for errors without a more specific code
	SeverityMedium

	// SeverityHigh indicates a problem the caller cannot work around, e.g. a broken config file
	SeverityHigh

	// SeverityCritical indicates an internal invariant was broken
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code.Category() {
	case "zone", "parse", "validation", "usage":
		return SeverityLow
	case "configuration":
		return SeverityHigh
	}
	if code == CodeInternal {
		return SeverityCritical
	}
	return SeverityMedium
}
