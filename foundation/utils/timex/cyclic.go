// File: cyclic.go
// Title: Cyclic Calendar Enumerations
// Description: Month and Weekday with 1-based ordinals and wrap-around arithmetic.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Weekday wrapper around time.Weekday
// - 2026-10-16 v0.2.0: 1-based Month and ISO Weekday with Plus/Minus

package timex

import (
	"fmt"
	"time"
)

// cycle offsets a 1-based ordinal by n within a cycle of the given cardinality
func cycle(ordinal, n, cardinality int) int {
	return ((ordinal-1+n%cardinality)+cardinality)%cardinality + 1
}

// Month is a civil month, January = 1 through December = 12
type Month int

const (
	January Month = iota + 1
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

// IsValid reports whether m is between January and December
func (m Month) IsValid() bool {
	return m >= January && m <= December
}

// Plus returns the month n months after m, wrapping around the year in both directions
func (m Month) Plus(n int) Month {
	return Month(cycle(int(m), n, MonthsPerYear))
}

// Minus returns the month n months before m
func (m Month) Minus(n int) Month {
	return m.Plus(-(n % MonthsPerYear))
}

// Days returns the length of m in year
func (m Month) Days(year int) int {
	return DaysInMonth(year, int(m))
}

// String returns the English month name
func (m Month) String() string {
	if !m.IsValid() {
		return fmt.Sprintf("%%!Month(%d)", int(m))
	}
	return time.Month(m).String()
}

// Weekday is a day of the week in ISO-8601 numbering, Monday = 1 through Sunday = 7
type Weekday int

const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

const daysPerWeek = 7

// WeekdayOf converts a time.Weekday (Sunday = 0) to ISO numbering
func WeekdayOf(w time.Weekday) Weekday {
	if w == time.Sunday {
		return Sunday
	}
	return Weekday(w)
}

// IsValid reports whether w is between Monday and Sunday
func (w Weekday) IsValid() bool {
	return w >= Monday && w <= Sunday
}

// Plus returns the weekday n days after w
func (w Weekday) Plus(n int) Weekday {
	return Weekday(cycle(int(w), n, daysPerWeek))
}

// Minus returns the weekday n days before w
func (w Weekday) Minus(n int) Weekday {
	return w.Plus(-(n % daysPerWeek))
}

// IsWeekend reports whether w is Saturday or Sunday
func (w Weekday) IsWeekend() bool {
	return w == Saturday || w == Sunday
}

// Std converts w to a time.Weekday
func (w Weekday) Std() time.Weekday {
	return time.Weekday(int(w) % daysPerWeek)
}

// String returns the English weekday name
func (w Weekday) String() string {
	if !w.IsValid() {
		return fmt.Sprintf("%%!Weekday(%d)", int(w))
	}
	return w.Std().String()
}
