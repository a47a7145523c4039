// ============================================================================
// zeitwerk - Civil Calendar and Zone Offset Engine
// ============================================================================
//
// Package:     chrono
// Description: Duration, an exact span of seconds on the instant axis
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package chrono

import (
	"math"
	"time"

	mdwerror "github.com/msto63/zeitwerk/foundation/core/error"
	"github.com/msto63/zeitwerk/foundation/utils/timex"
)

// Duration is a signed span of fractional seconds. Every unit has a fixed
// length: a day is always 86,400 seconds, whatever the zone does.
type Duration struct {
	seconds float64
}

// Seconds returns a duration of n seconds
func Seconds(n float64) Duration { return Duration{seconds: n} }

// Milliseconds returns a duration of n milliseconds
func Milliseconds(n float64) Duration { return Duration{seconds: n / 1000} }

// Minutes returns a duration of n minutes
func Minutes(n float64) Duration { return Duration{seconds: n * timex.SecondsPerMinute} }

// Hours returns a duration of n hours
func Hours(n float64) Duration { return Duration{seconds: n * timex.SecondsPerHour} }

// Days returns a duration of n days of 86,400 seconds each
func Days(n float64) Duration { return Duration{seconds: n * timex.SecondsPerDay} }

// Weeks returns a duration of n weeks of seven days each
func Weeks(n float64) Duration { return Duration{seconds: n * timex.SecondsPerWeek} }

// DurationOf converts a time.Duration
func DurationOf(d time.Duration) Duration {
	return Duration{seconds: d.Seconds()}
}

// ParseDuration parses "90m", "2 days", "-1.5 hours" or "3w". Months and
// years are rejected; they are periods, not durations.
func ParseDuration(s string) (Duration, error) {
	d, err := timex.ParseDuration(s)
	if err != nil {
		return Duration{}, mdwerror.Wrap(err, "parse duration").WithOperation("chrono.ParseDuration")
	}
	return DurationOf(d), nil
}

// Seconds returns the length of d in seconds
func (d Duration) Seconds() float64 {
	return d.seconds
}

// Std converts d to a time.Duration, saturating at its range limits
func (d Duration) Std() time.Duration {
	ns := math.Round(d.seconds * 1e9)
	switch {
	case ns >= math.MaxInt64:
		return time.Duration(math.MaxInt64)
	case ns <= math.MinInt64:
		return time.Duration(math.MinInt64)
	}
	return time.Duration(ns)
}

func (d Duration) Plus(other Duration) Duration  { return Duration{seconds: d.seconds + other.seconds} }
func (d Duration) Minus(other Duration) Duration { return Duration{seconds: d.seconds - other.seconds} }
func (d Duration) Negate() Duration              { return Duration{seconds: -d.seconds} }
func (d Duration) IsZero() bool                  { return d.seconds == 0 }

// Abs returns the magnitude of d
func (d Duration) Abs() Duration {
	return Duration{seconds: math.Abs(d.seconds)}
}

// Compare returns -1, 0 or 1 as d is shorter than, equal to or longer than other
func (d Duration) Compare(other Duration) int {
	switch {
	case d.seconds < other.seconds:
		return -1
	case d.seconds > other.seconds:
		return 1
	}
	return 0
}

// String renders d compactly, e.g. "1d 2h 30m 0s"
func (d Duration) String() string {
	return timex.FormatSecondsCompact(d.seconds)
}
