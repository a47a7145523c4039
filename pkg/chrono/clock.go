// ============================================================================
// zeitwerk - Civil Calendar and Zone Offset Engine
// ============================================================================
//
// Package:     chrono
// Description: Clock, the injected source of the current instant and zone
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package chrono

import "time"

// Clock supplies "now". The current-value constructors call each method at
// most once and never cache the result.
type Clock interface {
	Instant() Instant
	Zone() ZoneOffset
}

// SystemClock reads the system time. Location selects the zone; nil means
// the process's local zone.
type SystemClock struct {
	Location *time.Location
}

func (c SystemClock) Instant() Instant {
	return InstantOf(time.Now())
}

func (c SystemClock) Zone() ZoneOffset {
	if c.Location == nil {
		return ZoneOfLocation(time.Local)
	}
	return ZoneOfLocation(c.Location)
}

// FixedClock always reports the same instant and zone
type FixedClock struct {
	At Instant
	In ZoneOffset
}

// NewFixedClock pins the clock to i in zone
func NewFixedClock(i Instant, zone ZoneOffset) FixedClock {
	return FixedClock{At: i, In: zone}
}

func (c FixedClock) Instant() Instant { return c.At }
func (c FixedClock) Zone() ZoneOffset { return c.In }

// OffsetClock reports the instant of Base shifted by Skew, in Base's zone.
// A nil Base is the system clock.
type OffsetClock struct {
	Base Clock
	Skew Duration
}

func (c OffsetClock) Instant() Instant { return clockOrSystem(c.Base).Instant().Plus(c.Skew) }
func (c OffsetClock) Zone() ZoneOffset { return clockOrSystem(c.Base).Zone() }

type zonedClock struct {
	base Clock
	zone ZoneOffset
}

func (c zonedClock) Instant() Instant { return c.base.Instant() }
func (c zonedClock) Zone() ZoneOffset { return c.zone }

// ClockIn returns a clock that reads base's instant and reports zone
func ClockIn(base Clock, zone ZoneOffset) Clock {
	return zonedClock{base: clockOrSystem(base), zone: zone}
}

func clockOrSystem(c Clock) Clock {
	if c == nil {
		return SystemClock{}
	}
	return c
}

// Now returns the current date-time of clock in its zone. A nil clock is the system clock.
func Now(clock Clock) DateTime {
	clock = clockOrSystem(clock)
	return DateTimeAt(clock.Instant(), clock.Zone())
}

// Today returns the current date of clock in its zone
func Today(clock Clock) LocalDate {
	return Now(clock).Date()
}

// CurrentTime returns the current time of day of clock in its zone
func CurrentTime(clock Clock) LocalTime {
	return Now(clock).Time()
}

// CurrentDateTime returns the current wall-clock reading of clock without its zone
func CurrentDateTime(clock Clock) LocalDateTime {
	return Now(clock).Local()
}

// CurrentInstant returns the current instant of clock; the zone is not consulted
func CurrentInstant(clock Clock) Instant {
	return clockOrSystem(clock).Instant()
}
