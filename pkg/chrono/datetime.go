// ============================================================================
// zeitwerk - Civil Calendar and Zone Offset Engine
// ============================================================================
//
// Package:     chrono
// Description: DateTime, a wall-clock reading in a stated zone and the bridge
//              between instants and civil fields
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package chrono

import (
	"time"

	"github.com/msto63/zeitwerk/foundation/utils/timex"
)

// DateTime is a wall-clock reading in a zone.
//
// Equal and Compare answer different questions. Equal is structural: the
// fields and the zone must both match. Compare, Before and After order by
// the instant denoted. 12:00Z and 14:00+02:00 are not Equal, yet Compare
// returns 0 for them.
type DateTime struct {
	local LocalDateTime
	zone  ZoneOffset
	cal   Calendar
}

// DateTimeAt presents instant i in zone
func DateTimeAt(i Instant, zone ZoneOffset) DateTime {
	return DateTimeIn(Gregorian{}, i, zone)
}

// DateTimeIn presents instant i in zone using cal to resolve the fields
func DateTimeIn(cal Calendar, i Instant, zone ZoneOffset) DateTime {
	cal = calendarOrDefault(cal)
	return DateTime{local: localFromFields(cal.Fields(i, zone)), zone: zone, cal: cal}
}

// DateTimeOf reads ldt as a wall clock in zone
func DateTimeOf(ldt LocalDateTime, zone ZoneOffset) DateTime {
	return DateTime{local: ldt, zone: zone, cal: Gregorian{}}
}

// NewDateTime validates the fields and returns the date-time in zone
func NewDateTime(year, month, day, hour, minute, second, millisecond int, zone ZoneOffset) (DateTime, error) {
	ldt, err := LocalDateTimeOf(year, month, day, hour, minute, second, millisecond)
	if err != nil {
		return DateTime{}, err
	}
	return DateTimeOf(ldt, zone), nil
}

func (dt DateTime) calendar() Calendar {
	return calendarOrDefault(dt.cal)
}

// Instant returns the instant dt denotes
func (dt DateTime) Instant() Instant {
	return dt.calendar().Instant(dt.local.fields(), dt.zone)
}

// InZone presents the same instant in another zone
func (dt DateTime) InZone(zone ZoneOffset) DateTime {
	return DateTimeIn(dt.calendar(), dt.Instant(), zone)
}

// Plus adds an exact duration. The zone is kept; the wall clock may jump
// if the zone's offset changes in between.
func (dt DateTime) Plus(d Duration) DateTime {
	return DateTimeIn(dt.calendar(), dt.Instant().Plus(d), dt.zone)
}

// Minus subtracts an exact duration
func (dt DateTime) Minus(d Duration) DateTime {
	return dt.Plus(d.Negate())
}

// PlusPeriod applies p to the date only; the time of day and zone are kept
func (dt DateTime) PlusPeriod(p Period) DateTime {
	return dt.withLocal(dt.local.PlusPeriod(p))
}

// MinusPeriod applies the negated period to the date
func (dt DateTime) MinusPeriod(p Period) DateTime {
	return dt.PlusPeriod(p.Negate())
}

// Since returns the exact duration from other to dt
func (dt DateTime) Since(other DateTime) Duration {
	return dt.Instant().Since(other.Instant())
}

// Equal reports whether the wall-clock fields and the zone both match
func (dt DateTime) Equal(other DateTime) bool {
	return dt.local == other.local && dt.zone.Equal(other.zone)
}

// Compare orders by instant, not by fields
func (dt DateTime) Compare(other DateTime) int {
	return dt.Instant().Compare(other.Instant())
}

func (dt DateTime) Before(other DateTime) bool { return dt.Compare(other) < 0 }
func (dt DateTime) After(other DateTime) bool  { return dt.Compare(other) > 0 }

func (dt DateTime) Local() LocalDateTime   { return dt.local }
func (dt DateTime) Date() LocalDate        { return dt.local.date }
func (dt DateTime) Time() LocalTime        { return dt.local.clock }
func (dt DateTime) Zone() ZoneOffset       { return dt.zone }
func (dt DateTime) Calendar() Calendar     { return dt.calendar() }
func (dt DateTime) Year() int              { return dt.local.Year() }
func (dt DateTime) Month() timex.Month     { return dt.local.Month() }
func (dt DateTime) Day() int               { return dt.local.Day() }
func (dt DateTime) Hour() int              { return dt.local.Hour() }
func (dt DateTime) Minute() int            { return dt.local.Minute() }
func (dt DateTime) Second() int            { return dt.local.Second() }
func (dt DateTime) Millisecond() int       { return dt.local.Millisecond() }
func (dt DateTime) Weekday() timex.Weekday { return dt.local.Weekday() }
func (dt DateTime) DayOfYear() int         { return dt.local.date.DayOfYear() }
func (dt DateTime) Fields() Fields         { return dt.local.fields() }

// Offset returns the seconds east of UTC in effect at dt
func (dt DateTime) Offset() int {
	return dt.zone.OffsetAt(dt.Instant())
}

// Std converts dt to a time.Time. Zones with a fudge are given an exact
// fixed zone so the offset survives formatting.
func (dt DateTime) Std() time.Time {
	i := dt.Instant()
	loc := dt.zone.location()
	if dt.zone.fudge != 0 {
		loc = time.FixedZone(dt.zone.Identifier(), dt.zone.OffsetAt(i))
	}
	return i.Time().Round(time.Millisecond).In(loc)
}

// Format renders dt with a layout or layout name, see LayoutFormatter
func (dt DateTime) Format(layout string) string {
	return LayoutFormatter{}.Format(dt, layout)
}

// The With helpers never fail: a value that would be invalid leaves dt unchanged.

func (dt DateTime) WithYear(year int) DateTime     { return dt.withLocal(dt.local.WithYear(year)) }
func (dt DateTime) WithMonth(month int) DateTime   { return dt.withLocal(dt.local.WithMonth(month)) }
func (dt DateTime) WithDay(day int) DateTime       { return dt.withLocal(dt.local.WithDay(day)) }
func (dt DateTime) WithHour(hour int) DateTime     { return dt.withLocal(dt.local.WithHour(hour)) }
func (dt DateTime) WithMinute(minute int) DateTime { return dt.withLocal(dt.local.WithMinute(minute)) }
func (dt DateTime) WithSecond(second int) DateTime { return dt.withLocal(dt.local.WithSecond(second)) }
func (dt DateTime) WithMillisecond(ms int) DateTime {
	return dt.withLocal(dt.local.WithMillisecond(ms))
}

// WithZone keeps the wall clock and changes the zone, unlike InZone
func (dt DateTime) WithZone(zone ZoneOffset) DateTime {
	return DateTime{local: dt.local, zone: zone, cal: dt.cal}
}

func (dt DateTime) withLocal(ldt LocalDateTime) DateTime {
	return DateTime{local: ldt, zone: dt.zone, cal: dt.cal}
}

// String renders dt in ISO-8601 form with the offset in effect, followed by
// the zone name in brackets for named zones:
// 2016-03-13T13:00:00-04:00[America/New_York]
func (dt DateTime) String() string {
	s := dt.local.String() + FormatOffset(dt.Offset())
	if !dt.zone.IsFixed() {
		s += "[" + dt.zone.Identifier() + "]"
	}
	return s
}
