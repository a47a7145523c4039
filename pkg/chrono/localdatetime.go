// ============================================================================
// zeitwerk - Civil Calendar and Zone Offset Engine
// ============================================================================
//
// Package:     chrono
// Description: LocalDateTime, a civil date and time without zone
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package chrono

import "github.com/msto63/zeitwerk/foundation/utils/timex"

// LocalDateTime is a date and time of day without a zone. Arithmetic runs
// through a DateTime at UTC so that all carrying shares one path.
type LocalDateTime struct {
	date  LocalDate
	clock LocalTime
}

// NewLocalDateTime combines a date and a time of day
func NewLocalDateTime(date LocalDate, t LocalTime) LocalDateTime {
	return LocalDateTime{date: date, clock: t}
}

// LocalDateTimeOf validates and returns the date-time
func LocalDateTimeOf(year, month, day, hour, minute, second, millisecond int) (LocalDateTime, error) {
	date, err := NewLocalDate(year, month, day)
	if err != nil {
		return LocalDateTime{}, err
	}
	t, err := NewLocalTime(hour, minute, second, millisecond)
	if err != nil {
		return LocalDateTime{}, err
	}
	return LocalDateTime{date: date, clock: t}, nil
}

func localFromFields(f Fields) LocalDateTime {
	return LocalDateTime{
		date:  LocalDate{year: f.Year, month: f.Month, day: f.Day},
		clock: LocalTime{hour: f.Hour, minute: f.Minute, second: f.Second, millisecond: f.Millisecond},
	}
}

func (ldt LocalDateTime) fields() Fields {
	return Fields{
		Year:        ldt.date.year,
		Month:       ldt.date.month,
		Day:         ldt.date.day,
		Hour:        ldt.clock.hour,
		Minute:      ldt.clock.minute,
		Second:      ldt.clock.second,
		Millisecond: ldt.clock.millisecond,
	}
}

// Fields returns the wall-clock fields of ldt
func (ldt LocalDateTime) Fields() Fields {
	return ldt.fields()
}

func (ldt LocalDateTime) Date() LocalDate        { return ldt.date }
func (ldt LocalDateTime) Time() LocalTime        { return ldt.clock }
func (ldt LocalDateTime) Year() int              { return ldt.date.year }
func (ldt LocalDateTime) Month() timex.Month     { return ldt.date.Month() }
func (ldt LocalDateTime) Day() int               { return ldt.date.day }
func (ldt LocalDateTime) Hour() int              { return ldt.clock.hour }
func (ldt LocalDateTime) Minute() int            { return ldt.clock.minute }
func (ldt LocalDateTime) Second() int            { return ldt.clock.second }
func (ldt LocalDateTime) Millisecond() int       { return ldt.clock.millisecond }
func (ldt LocalDateTime) Weekday() timex.Weekday { return ldt.date.Weekday() }

// InZone reads ldt as a wall clock in zone
func (ldt LocalDateTime) InZone(zone ZoneOffset) DateTime {
	return DateTimeOf(ldt, zone)
}

// Plus adds an exact duration at the neutral offset
func (ldt LocalDateTime) Plus(d Duration) LocalDateTime {
	return DateTimeOf(ldt, UTC).Plus(d).Local()
}

// Minus subtracts an exact duration at the neutral offset
func (ldt LocalDateTime) Minus(d Duration) LocalDateTime {
	return ldt.Plus(d.Negate())
}

// PlusPeriod applies p to the date and keeps the time of day
func (ldt LocalDateTime) PlusPeriod(p Period) LocalDateTime {
	return LocalDateTime{date: ldt.date.PlusPeriod(p), clock: ldt.clock}
}

// MinusPeriod applies the negated period to the date
func (ldt LocalDateTime) MinusPeriod(p Period) LocalDateTime {
	return ldt.PlusPeriod(p.Negate())
}

// Compare orders by the instants ldt denotes at the neutral offset, which
// is the same as comparing the fields lexicographically
func (ldt LocalDateTime) Compare(other LocalDateTime) int {
	return DateTimeOf(ldt, UTC).Instant().Compare(DateTimeOf(other, UTC).Instant())
}

func (ldt LocalDateTime) Before(other LocalDateTime) bool { return ldt.Compare(other) < 0 }
func (ldt LocalDateTime) After(other LocalDateTime) bool  { return ldt.Compare(other) > 0 }
func (ldt LocalDateTime) Equal(other LocalDateTime) bool  { return ldt == other }

func (ldt LocalDateTime) WithYear(year int) LocalDateTime {
	return LocalDateTime{date: ldt.date.WithYear(year), clock: ldt.clock}
}

func (ldt LocalDateTime) WithMonth(month int) LocalDateTime {
	return LocalDateTime{date: ldt.date.WithMonth(month), clock: ldt.clock}
}

func (ldt LocalDateTime) WithDay(day int) LocalDateTime {
	return LocalDateTime{date: ldt.date.WithDay(day), clock: ldt.clock}
}

func (ldt LocalDateTime) WithHour(hour int) LocalDateTime {
	return LocalDateTime{date: ldt.date, clock: ldt.clock.WithHour(hour)}
}

func (ldt LocalDateTime) WithMinute(minute int) LocalDateTime {
	return LocalDateTime{date: ldt.date, clock: ldt.clock.WithMinute(minute)}
}

func (ldt LocalDateTime) WithSecond(second int) LocalDateTime {
	return LocalDateTime{date: ldt.date, clock: ldt.clock.WithSecond(second)}
}

func (ldt LocalDateTime) WithMillisecond(ms int) LocalDateTime {
	return LocalDateTime{date: ldt.date, clock: ldt.clock.WithMillisecond(ms)}
}

// String renders ldt as YYYY-MM-DDThh:mm:ss[.mmm]
func (ldt LocalDateTime) String() string {
	return ldt.date.String() + "T" + ldt.clock.String()
}
