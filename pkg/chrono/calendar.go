// ============================================================================
// zeitwerk - Civil Calendar and Zone Offset Engine
// ============================================================================
//
// Package:     chrono
// Description: Calendar, the resolver between instants and wall-clock fields
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package chrono

import (
	"math"
	"time"
)

// Fields are the wall-clock readings of an instant in a zone
type Fields struct {
	Year        int
	Month       int
	Day         int
	Hour        int
	Minute      int
	Second      int
	Millisecond int
}

// Calendar converts between instants and wall-clock fields in a zone.
// Implementations must be inverse to each other for every field set that
// exists in the zone.
type Calendar interface {
	Fields(i Instant, zone ZoneOffset) Fields
	Instant(f Fields, zone ZoneOffset) Instant
}

// Gregorian resolves fields with package time, which applies the proleptic
// Gregorian calendar and the zone's daylight saving rules. Instants are
// rounded to the nearest millisecond; the fudge is applied in whole
// milliseconds so a field round trip returns the identical instant.
type Gregorian struct{}

// Fields returns the wall-clock reading of i in zone
func (Gregorian) Fields(i Instant, zone ZoneOffset) Fields {
	ms := int64(math.Round(i.seconds*1000)) + int64(zone.fudge)*1000
	t := time.UnixMilli(ms).In(zone.location())
	return Fields{
		Year:        t.Year(),
		Month:       int(t.Month()),
		Day:         t.Day(),
		Hour:        t.Hour(),
		Minute:      t.Minute(),
		Second:      t.Second(),
		Millisecond: t.Nanosecond() / int(time.Millisecond),
	}
}

// Instant returns the instant at which zone reads f. Readings that fall in
// a daylight saving gap or overlap resolve the way time.Date does.
func (Gregorian) Instant(f Fields, zone ZoneOffset) Instant {
	t := time.Date(f.Year, time.Month(f.Month), f.Day, f.Hour, f.Minute, f.Second,
		f.Millisecond*int(time.Millisecond), zone.location())
	return Instant{seconds: float64(t.UnixMilli()-int64(zone.fudge)*1000) / 1000}
}

func calendarOrDefault(c Calendar) Calendar {
	if c == nil {
		return Gregorian{}
	}
	return c
}
