// ============================================================================
// zeitwerk - Civil Calendar and Zone Offset Engine
// ============================================================================
//
// Package:     chrono
// Description: Instants, zone offsets and civil date/time values
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

// Package chrono converts between instants and their wall-clock readings in
// a zone, and adds time in two ways: exact durations and calendar periods.
//
// # Values
//
// Instant is a point on the time line (seconds since the Unix epoch).
// Duration is an exact span in seconds; a day is always 86,400 seconds.
// Period is years, months and days whose length depends on the date it is
// applied to. LocalDate, LocalTime and LocalDateTime are civil fields
// without a zone. DateTime is a LocalDateTime read in a ZoneOffset and is the
// only bridge between fields and instants. All of them are immutable and
// safe for concurrent use.
//
// # Duration versus Period
//
//	ny, _ := chrono.ParseZone("America/New_York")
//	dt, _ := chrono.NewDateTime(2016, 3, 12, 12, 0, 0, 0, ny)
//	dt.Plus(chrono.Hours(24))         // 2016-03-13T13:00:00-04:00, DST began
//	dt.PlusPeriod(chrono.PeriodOfDays(1)) // 2016-03-13T12:00:00-04:00
//
// Periods carry overflowing days into the next month instead of clamping:
// January 31 plus one month is March 3 (March 2 in leap years).
//
// # Zones
//
// ParseZone accepts "Z", "±hh:mm", "±hh:mm:ss", IANA names and common
// abbreviations. Each rejected form has its own error code (CodeZoneBlank,
// CodeZoneHourRange, ...). The platform zone is built by a ZoneDatabase;
// when it stores less precision than requested (MinuteZones), the difference
// is kept as a fudge and applied on every conversion.
//
// # Collaborators
//
// Clock supplies the current instant and zone (SystemClock, FixedClock);
// a nil Clock means the system clock. Calendar resolves fields (Gregorian).
// Formatter renders and parses strings (LayoutFormatter).
package chrono
