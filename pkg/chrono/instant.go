// ============================================================================
// zeitwerk - Civil Calendar and Zone Offset Engine
// ============================================================================
//
// Package:     chrono
// Description: Instant, an absolute point on the time line
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package chrono

import (
	"math"
	"time"
)

// Instant is a point on the time line, stored as signed fractional seconds
// since the Unix epoch. Instants are totally ordered and independent of any zone.
type Instant struct {
	seconds float64
}

// Epoch is 1970-01-01T00:00:00Z
var Epoch = Instant{}

// NewInstant returns the instant the given number of seconds after the epoch
func NewInstant(seconds float64) Instant {
	return Instant{seconds: seconds}
}

// InstantOf converts a time.Time to an Instant
func InstantOf(t time.Time) Instant {
	return Instant{seconds: float64(t.Unix()) + float64(t.Nanosecond())/1e9}
}

// Seconds returns the signed seconds since the epoch
func (i Instant) Seconds() float64 {
	return i.seconds
}

// Time converts i to a time.Time in UTC
func (i Instant) Time() time.Time {
	sec := math.Floor(i.seconds)
	nsec := math.Round((i.seconds - sec) * 1e9)
	if nsec >= 1e9 {
		sec++
		nsec -= 1e9
	}
	return time.Unix(int64(sec), int64(nsec)).UTC()
}

// Since returns i - other; the result is positive iff i is later than other
func (i Instant) Since(other Instant) Duration {
	return Duration{seconds: i.seconds - other.seconds}
}

// Plus returns i translated by d
func (i Instant) Plus(d Duration) Instant {
	return Instant{seconds: i.seconds + d.seconds}
}

// Minus returns i translated by -d
func (i Instant) Minus(d Duration) Instant {
	return Instant{seconds: i.seconds - d.seconds}
}

// Compare returns -1, 0 or 1 as i is before, equal to or after other
func (i Instant) Compare(other Instant) int {
	switch {
	case i.seconds < other.seconds:
		return -1
	case i.seconds > other.seconds:
		return 1
	}
	return 0
}

func (i Instant) Before(other Instant) bool { return i.seconds < other.seconds }
func (i Instant) After(other Instant) bool  { return i.seconds > other.seconds }
func (i Instant) Equal(other Instant) bool  { return i.seconds == other.seconds }

// String renders i in RFC 3339 form in UTC
func (i Instant) String() string {
	return i.Time().Format(time.RFC3339Nano)
}
