// ============================================================================
// zeitwerk - Civil Calendar and Zone Offset Engine
// ============================================================================
//
// Package:     chrono
// Description: LocalDate, a civil date without time or zone
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package chrono

import (
	"fmt"
	"math"
	"time"

	mdwerror "github.com/msto63/zeitwerk/foundation/core/error"
	"github.com/msto63/zeitwerk/foundation/utils/timex"
)

// LocalDate is a proleptic Gregorian date. The zero value is not a valid date.
type LocalDate struct {
	year  int
	month int
	day   int
}

// NewLocalDate validates and returns the date. Days beyond the end of the
// month are rejected, not clamped.
func NewLocalDate(year, month, day int) (LocalDate, error) {
	if !timex.IsValidDate(year, month, day) {
		return LocalDate{}, mdwerror.Newf("invalid date %04d-%02d-%02d", year, month, day).
			WithCode(mdwerror.CodeInvalidDate).
			WithOperation("chrono.NewLocalDate").
			WithDetails(map[string]interface{}{"year": year, "month": month, "day": day})
	}
	return LocalDate{year: year, month: month, day: day}, nil
}

func (d LocalDate) Year() int          { return d.year }
func (d LocalDate) Month() timex.Month { return timex.Month(d.month) }
func (d LocalDate) Day() int           { return d.day }

// Weekday returns the ISO day of the week
func (d LocalDate) Weekday() timex.Weekday {
	return timex.WeekdayOf(time.Date(d.year, time.Month(d.month), d.day, 0, 0, 0, 0, time.UTC).Weekday())
}

func (d LocalDate) DayOfYear() int   { return timex.DayOfYear(d.year, d.month, d.day) }
func (d LocalDate) IsLeapYear() bool { return timex.IsLeapYear(d.year) }
func (d LocalDate) LengthOfMonth() int {
	return timex.DaysInMonth(d.year, d.month)
}

// AtTime combines d with a time of day
func (d LocalDate) AtTime(t LocalTime) LocalDateTime {
	return LocalDateTime{date: d, clock: t}
}

// AtStartOfDay returns midnight at the start of d
func (d LocalDate) AtStartOfDay() LocalDateTime {
	return LocalDateTime{date: d}
}

// InZone returns midnight of d in zone
func (d LocalDate) InZone(zone ZoneOffset) DateTime {
	return DateTimeOf(d.AtStartOfDay(), zone)
}

// Plus adds an exact duration at the neutral offset and returns the resulting date
func (d LocalDate) Plus(dur Duration) LocalDate {
	return d.AtStartOfDay().Plus(dur).Date()
}

// Minus subtracts an exact duration at the neutral offset
func (d LocalDate) Minus(dur Duration) LocalDate {
	return d.Plus(dur.Negate())
}

// PlusDays adds n days of 86,400 seconds
func (d LocalDate) PlusDays(n int) LocalDate {
	return d.Plus(Days(float64(n)))
}

// PlusPeriod applies p. Years and months are carried into a candidate month,
// then the day count from its first day is added as exact days, so a day
// that does not exist in the candidate month rolls into the next one:
// January 31 plus one month is March 3 (March 2 in leap years).
func (d LocalDate) PlusPeriod(p Period) LocalDate {
	months := d.month - 1 + p.Months + p.Years*timex.MonthsPerYear
	first := LocalDate{
		year:  d.year + timex.FloorDiv(months, timex.MonthsPerYear),
		month: timex.FloorMod(months, timex.MonthsPerYear) + 1,
		day:   1,
	}
	return first.PlusDays(d.day - 1 + p.Days)
}

// MinusPeriod applies the negated period
func (d LocalDate) MinusPeriod(p Period) LocalDate {
	return d.PlusPeriod(p.Negate())
}

// DaysUntil returns the number of whole days from d to other
func (d LocalDate) DaysUntil(other LocalDate) int {
	span := other.AtStartOfDay().InZone(UTC).Instant().Since(d.AtStartOfDay().InZone(UTC).Instant())
	return int(math.Round(span.Seconds() / timex.SecondsPerDay))
}

// Compare orders dates by year, month and day
func (d LocalDate) Compare(other LocalDate) int {
	switch {
	case d.year != other.year:
		return sign(d.year - other.year)
	case d.month != other.month:
		return sign(d.month - other.month)
	}
	return sign(d.day - other.day)
}

func (d LocalDate) Before(other LocalDate) bool { return d.Compare(other) < 0 }
func (d LocalDate) After(other LocalDate) bool  { return d.Compare(other) > 0 }
func (d LocalDate) Equal(other LocalDate) bool  { return d == other }

// WithYear returns d in another year, or d unchanged if the day does not exist there
func (d LocalDate) WithYear(year int) LocalDate {
	if v, err := NewLocalDate(year, d.month, d.day); err == nil {
		return v
	}
	return d
}

// WithMonth returns d in another month, or d unchanged if invalid
func (d LocalDate) WithMonth(month int) LocalDate {
	if v, err := NewLocalDate(d.year, month, d.day); err == nil {
		return v
	}
	return d
}

// WithDay returns d on another day of its month, or d unchanged if invalid
func (d LocalDate) WithDay(day int) LocalDate {
	if v, err := NewLocalDate(d.year, d.month, day); err == nil {
		return v
	}
	return d
}

// String renders d as YYYY-MM-DD; years outside 0-9999 carry a sign
func (d LocalDate) String() string {
	switch {
	case d.year < 0:
		return fmt.Sprintf("-%04d-%02d-%02d", -d.year, d.month, d.day)
	case d.year > 9999:
		return fmt.Sprintf("+%d-%02d-%02d", d.year, d.month, d.day)
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
