// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error classification
//              across zeitwerk. Zone identifier failures carry one code per grammar
//              rule so callers can tell them apart without parsing messages.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-16 v0.2.0: Replaced platform codes with calendar and zone codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Malformed zone identifier, one code per violated rule
	CodeZoneBlank        Code = "ZONE_BLANK"
	CodeZoneSegmentCount Code = "ZONE_SEGMENT_COUNT"
	CodeZoneHourRange    Code = "ZONE_HOUR_RANGE"
	CodeZoneMinuteRange  Code = "ZONE_MINUTE_RANGE"
	CodeZoneSecondRange  Code = "ZONE_SECOND_RANGE"
	CodeZoneUnrecognized Code = "ZONE_UNRECOGNIZED"

	// Calendar values
	CodeDateUnparsable  Code = "DATE_UNPARSABLE"
	CodeInvalidDate     Code = "INVALID_DATE"
	CodeInvalidTime     Code = "INVALID_TIME"
	CodeInvalidPeriod   Code = "INVALID_PERIOD"
	CodeInvalidDuration Code = "INVALID_DURATION"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Command line usage: wrong argument count, unknown flag or command
	CodeUsage Code = "USAGE"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeZoneBlank, CodeZoneSegmentCount, CodeZoneHourRange, CodeZoneMinuteRange,
		CodeZoneSecondRange, CodeZoneUnrecognized,
		CodeDateUnparsable, CodeInvalidDate, CodeInvalidTime, CodeInvalidPeriod, CodeInvalidDuration,
		CodeConfigError, CodeInvalidConfig, CodeUsage:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeZoneBlank, CodeZoneSegmentCount, CodeZoneHourRange, CodeZoneMinuteRange,
		CodeZoneSecondRange, CodeZoneUnrecognized:
		return "zone"
	case CodeDateUnparsable:
		return "parse"
	case CodeInvalidDate, CodeInvalidTime, CodeInvalidPeriod, CodeInvalidDuration:
		return "validation"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	case CodeUsage:
		return "usage"
	default:
		return "generic"
	}
}

// IsZoneCode reports whether c belongs to the malformed zone identifier family
func (c Code) IsZoneCode() bool {
	return c.Category() == "zone"
}

// ExitCode maps the code to a process exit status for command line tools
func (c Code) ExitCode() int {
	switch c.Category() {
	case "zone", "parse", "validation", "usage":
		return 2
	case "configuration":
		return 3
	default:
		return 1
	}
}
