// Package timex implements the calendar math and time utilities shared by zeitwerk.
//
// Package: timex
// Title: Calendar Math and Time Utilities
// Description: This package holds the rules of the proleptic Gregorian calendar
//              that every other zeitwerk package builds on: leap years, month
//              lengths, date and clock validity, cyclic month and weekday
//              arithmetic, named layouts and duration parsing and formatting.
//              It has no notion of zones or instants; those live in pkg/chrono.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive time operations
// - 2025-01-26 v0.1.1: Enhanced documentation with comprehensive examples
// - 2026-10-16 v0.2.0: Refocused on calendar math for the zeitwerk engine
//
// Package Overview:
//
// # Calendar Rules
//
//   - IsLeapYear: divisible by 4, and either not by 100 or by 400
//   - DaysInMonth: 28 to 31, or 0 for a month outside 1..12
//   - IsValidDate, IsValidClock, DayOfYear, DaysInYear
//   - SplitSeconds: sign, hours, minutes and seconds of an offset
//   - FloorDiv, FloorMod: division that rounds toward negative infinity
//
// The rules apply to every signed year. Year 0 and year -4 are leap years.
//
// # Cyclic Enumerations
//
// Month (January = 1) and Weekday (Monday = 1, as in ISO-8601) support
// wrap-around arithmetic:
//
//	timex.January.Plus(13)  // February
//	timex.Monday.Minus(1)   // Sunday
//
// For any n other than math.MinInt, m.Minus(n) equals m.Plus(-n).
//
// # Layouts
//
// Layout constants (ISO8601, BusinessDate, EuropeanDate, ...) can be looked up
// by name with LayoutFor("business-date"). CommonLayouts is the ordered list a
// parser tries when the shape of the input is unknown.
//
// # Durations
//
//	d, err := timex.ParseDuration("2 days")   // 48h
//	d, err  = timex.ParseDuration("-3w")      // -504h
//	timex.FormatDuration(90 * time.Minute)    // "1 hour and 30 minutes"
//	timex.FormatDurationCompact(26 * time.Hour) // "1d 2h 0m 0s"
//
// Parse failures are *mdwerror.Error values with CodeInvalidDuration.
//
// Thread Safety:
//
// All functions are pure and safe for concurrent use.
package timex
