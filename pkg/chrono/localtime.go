// ============================================================================
// zeitwerk - Civil Calendar and Zone Offset Engine
// ============================================================================
//
// Package:     chrono
// Description: LocalTime, a time of day with millisecond precision
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package chrono

import (
	"fmt"

	mdwerror "github.com/msto63/zeitwerk/foundation/core/error"
	"github.com/msto63/zeitwerk/foundation/utils/timex"
)

// LocalTime is a time of day. The zero value is midnight.
type LocalTime struct {
	hour        int
	minute      int
	second      int
	millisecond int
}

var (
	Midnight = LocalTime{}
	Noon     = LocalTime{hour: 12}
)

// NewLocalTime validates every field independently
func NewLocalTime(hour, minute, second, millisecond int) (LocalTime, error) {
	if !timex.IsValidClock(hour, minute, second, millisecond) {
		return LocalTime{}, mdwerror.Newf("invalid time %02d:%02d:%02d.%03d", hour, minute, second, millisecond).
			WithCode(mdwerror.CodeInvalidTime).
			WithOperation("chrono.NewLocalTime").
			WithDetails(map[string]interface{}{
				"hour": hour, "minute": minute, "second": second, "millisecond": millisecond,
			})
	}
	return LocalTime{hour: hour, minute: minute, second: second, millisecond: millisecond}, nil
}

func (t LocalTime) Hour() int        { return t.hour }
func (t LocalTime) Minute() int      { return t.minute }
func (t LocalTime) Second() int      { return t.second }
func (t LocalTime) Millisecond() int { return t.millisecond }

// SecondOfDay returns the whole seconds since midnight
func (t LocalTime) SecondOfDay() int {
	return t.hour*timex.SecondsPerHour + t.minute*timex.SecondsPerMinute + t.second
}

// Plus adds an exact duration, wrapping around midnight
func (t LocalTime) Plus(d Duration) LocalTime {
	return epochDate.AtTime(t).Plus(d).Time()
}

// Minus subtracts an exact duration, wrapping around midnight
func (t LocalTime) Minus(d Duration) LocalTime {
	return t.Plus(d.Negate())
}

// Compare orders times by hour, minute, second and millisecond
func (t LocalTime) Compare(other LocalTime) int {
	switch {
	case t.hour != other.hour:
		return sign(t.hour - other.hour)
	case t.minute != other.minute:
		return sign(t.minute - other.minute)
	case t.second != other.second:
		return sign(t.second - other.second)
	}
	return sign(t.millisecond - other.millisecond)
}

func (t LocalTime) Before(other LocalTime) bool { return t.Compare(other) < 0 }
func (t LocalTime) After(other LocalTime) bool  { return t.Compare(other) > 0 }
func (t LocalTime) Equal(other LocalTime) bool  { return t == other }

func (t LocalTime) WithHour(hour int) LocalTime {
	return t.with(hour, t.minute, t.second, t.millisecond)
}

func (t LocalTime) WithMinute(minute int) LocalTime {
	return t.with(t.hour, minute, t.second, t.millisecond)
}

func (t LocalTime) WithSecond(second int) LocalTime {
	return t.with(t.hour, t.minute, second, t.millisecond)
}

func (t LocalTime) WithMillisecond(ms int) LocalTime {
	return t.with(t.hour, t.minute, t.second, ms)
}

// with returns the new time, or t unchanged if a field is out of range
func (t LocalTime) with(hour, minute, second, ms int) LocalTime {
	if v, err := NewLocalTime(hour, minute, second, ms); err == nil {
		return v
	}
	return t
}

// String renders t as hh:mm:ss, with .mmm appended when milliseconds are set
func (t LocalTime) String() string {
	if t.millisecond != 0 {
		return fmt.Sprintf("%02d:%02d:%02d.%03d", t.hour, t.minute, t.second, t.millisecond)
	}
	return fmt.Sprintf("%02d:%02d:%02d", t.hour, t.minute, t.second)
}

var epochDate = LocalDate{year: 1970, month: 1, day: 1}
