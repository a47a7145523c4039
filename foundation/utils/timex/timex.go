// File: timex.go
// Title: Calendar Math
// Description: Proleptic Gregorian calendar rules shared by the zeitwerk engine:
//              leap years, month lengths, date validity, day-of-year and the
//              split of an offset in seconds into hours, minutes and seconds.
//              The same rule applies to every signed year, including year zero
//              and negative years.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive time utilities
// - 2025-07-26 v0.1.1: Added FormatDurationCompact function, fixed business day logic
// - 2026-10-16 v0.2.0: Reduced to calendar math; business days and parsing moved out

package timex

// Fixed unit constants. A day always has 86,400 seconds; leap seconds are ignored.
const (
	SecondsPerMinute = 60
	SecondsPerHour   = 3600
	SecondsPerDay    = 86400
	SecondsPerWeek   = 7 * SecondsPerDay
	MonthsPerYear    = 12
)

// MaxOffsetSeconds bounds the magnitude of a zone offset (18 hours)
const MaxOffsetSeconds = 18 * SecondsPerHour

var daysPerMonth = [...]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeapYear reports whether year is a leap year: divisible by 4 and either
// not divisible by 100 or divisible by 400.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the length of month (1-12) in year, or 0 for an invalid month
func DaysInMonth(year, month int) int {
	if month < 1 || month > MonthsPerYear {
		return 0
	}
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return daysPerMonth[month-1]
}

// DaysInYear returns 366 for leap years and 365 otherwise
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// IsValidDate reports whether day exists in the given month of year
func IsValidDate(year, month, day int) bool {
	return day >= 1 && day <= DaysInMonth(year, month)
}

// DayOfYear returns the 1-based ordinal of the date within its year, or 0 for
// an invalid date
func DayOfYear(year, month, day int) int {
	if !IsValidDate(year, month, day) {
		return 0
	}
	n := day
	for m := 1; m < month; m++ {
		n += DaysInMonth(year, m)
	}
	return n
}

// IsValidClock reports whether hour, minute, second and millisecond are each in range
func IsValidClock(hour, minute, second, millisecond int) bool {
	return hour >= 0 && hour < 24 &&
		minute >= 0 && minute < 60 &&
		second >= 0 && second < 60 &&
		millisecond >= 0 && millisecond < 1000
}

// SplitSeconds splits a signed number of seconds into its sign (-1, 0 or 1)
// and the hours, minutes and seconds of its magnitude
func SplitSeconds(total int) (sign, hours, minutes, seconds int) {
	switch {
	case total < 0:
		sign = -1
		total = -total
	case total > 0:
		sign = 1
	}
	hours = total / SecondsPerHour
	minutes = total % SecondsPerHour / SecondsPerMinute
	seconds = total % SecondsPerMinute
	return sign, hours, minutes, seconds
}

// FloorDiv divides a by b rounding toward negative infinity; b must be positive
func FloorDiv(a, b int) int {
	q := a / b
	if a%b < 0 {
		q--
	}
	return q
}

// FloorMod returns the remainder of FloorDiv, always in [0, b)
func FloorMod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
