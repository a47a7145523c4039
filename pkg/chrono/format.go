// ============================================================================
// zeitwerk - Civil Calendar and Zone Offset Engine
// ============================================================================
//
// Package:     chrono
// Description: Formatter, string rendering and parsing delegated to package time
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package chrono

import (
	"time"

	mdwerror "github.com/msto63/zeitwerk/foundation/core/error"
	"github.com/msto63/zeitwerk/foundation/utils/timex"
)

// Formatter renders and parses date-times with a layout
type Formatter interface {
	Format(dt DateTime, layout string) string
	Parse(layout, value string, zone ZoneOffset) (DateTime, error)
}

// LayoutFormatter formats with Go reference layouts. A layout may also be a
// name known to timex.LayoutFor, such as "iso8601" or "business-date".
type LayoutFormatter struct{}

// Format renders dt with layout
func (LayoutFormatter) Format(dt DateTime, layout string) string {
	return dt.Std().Format(timex.LayoutFor(layout))
}

// Parse reads value with layout. Values without an offset are read as wall
// clock in zone; values with an offset are converted to zone.
func (LayoutFormatter) Parse(layout, value string, zone ZoneOffset) (DateTime, error) {
	resolved := timex.LayoutFor(layout)
	t, err := time.ParseInLocation(resolved, value, zone.location())
	if err != nil {
		return DateTime{}, mdwerror.Wrap(err, "unable to parse date").
			WithCode(mdwerror.CodeDateUnparsable).
			WithOperation("chrono.LayoutFormatter.Parse").
			WithDetail("input", value).
			WithDetail("layout", resolved)
	}
	return fromStd(t, zone), nil
}

// fromStd keeps the fields of t when it was read in zone's own location and
// converts by instant otherwise
func fromStd(t time.Time, zone ZoneOffset) DateTime {
	if t.Location() == zone.location() {
		return DateTimeOf(localFromFields(Fields{
			Year:        t.Year(),
			Month:       int(t.Month()),
			Day:         t.Day(),
			Hour:        t.Hour(),
			Minute:      t.Minute(),
			Second:      t.Second(),
			Millisecond: t.Nanosecond() / int(time.Millisecond),
		}), zone)
	}
	return DateTimeAt(InstantOf(t), zone)
}

// ParseDateTime parses value with the first of timex.CommonLayouts that accepts it
func ParseDateTime(value string, zone ZoneOffset) (DateTime, error) {
	return ParseDateTimeWith(LayoutFormatter{}, value, zone)
}

// ParseDateTimeWith is ParseDateTime with an explicit formatter
func ParseDateTimeWith(f Formatter, value string, zone ZoneOffset) (DateTime, error) {
	var lastErr error
	for _, layout := range timex.CommonLayouts {
		dt, err := f.Parse(layout, value, zone)
		if err == nil {
			return dt, nil
		}
		lastErr = err
	}
	return DateTime{}, mdwerror.Wrap(lastErr, "no known layout matches").
		WithCode(mdwerror.CodeDateUnparsable).
		WithOperation("chrono.ParseDateTime").
		WithDetail("input", value)
}
