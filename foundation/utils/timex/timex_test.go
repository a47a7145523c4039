// File: timex_test.go
// Title: Calendar Math Tests
// Description: Tests for leap years, month lengths, cyclic enumerations,
//              layouts and duration parsing and formatting.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial test implementation
// - 2026-10-16 v0.2.0: Calendar rule and cyclic arithmetic tests

package timex

import (
	"math"
	"testing"
	"time"

	mdwerror "github.com/msto63/zeitwerk/foundation/core/error"
)

// ===============================
// Calendar Rule Tests
// ===============================

func TestIsLeapYear(t *testing.T) {
	testCases := []struct {
		year     int
		expected bool
	}{
		{1900, false},
		{1998, false},
		{1999, false},
		{2000, true},
		{2001, false},
		{2004, true},
		{2100, false},
		{2400, true},
		{0, true},
		{-4, true},
		{-100, false},
	}

	for _, tc := range testCases {
		if got := IsLeapYear(tc.year); got != tc.expected {
			t.Errorf("IsLeapYear(%d) = %v, want %v", tc.year, got, tc.expected)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	testCases := []struct {
		name     string
		year     int
		month    int
		expected int
	}{
		{"january", 2023, 1, 31},
		{"february common", 2023, 2, 28},
		{"february leap", 2024, 2, 29},
		{"february 1900", 1900, 2, 28},
		{"february 2000", 2000, 2, 29},
		{"april", 2023, 4, 30},
		{"december", 2023, 12, 31},
		{"month zero", 2023, 0, 0},
		{"month thirteen", 2023, 13, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DaysInMonth(tc.year, tc.month); got != tc.expected {
				t.Errorf("DaysInMonth(%d, %d) = %d, want %d", tc.year, tc.month, got, tc.expected)
			}
		})
	}
}

// The last valid day of every month is its length; the day after it is invalid.
func TestDaysInMonthBoundary(t *testing.T) {
	for year := 1896; year <= 2104; year++ {
		for month := 1; month <= 12; month++ {
			last := DaysInMonth(year, month)
			if !IsValidDate(year, month, last) {
				t.Errorf("IsValidDate(%d, %d, %d) = false, want true", year, month, last)
			}
			if IsValidDate(year, month, last+1) {
				t.Errorf("IsValidDate(%d, %d, %d) = true, want false", year, month, last+1)
			}
			want := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
			if last != want {
				t.Errorf("DaysInMonth(%d, %d) = %d, want %d", year, month, last, want)
			}
		}
	}
}

func TestIsValidDate(t *testing.T) {
	testCases := []struct {
		y, m, d  int
		expected bool
	}{
		{2024, 2, 29, true},
		{2023, 2, 29, false},
		{2023, 4, 31, false},
		{2023, 1, 0, false},
		{2023, 0, 1, false},
		{-1, 12, 31, true},
	}

	for _, tc := range testCases {
		if got := IsValidDate(tc.y, tc.m, tc.d); got != tc.expected {
			t.Errorf("IsValidDate(%d, %d, %d) = %v, want %v", tc.y, tc.m, tc.d, got, tc.expected)
		}
	}
}

func TestIsValidClock(t *testing.T) {
	if !IsValidClock(23, 59, 59, 999) {
		t.Error("IsValidClock(23, 59, 59, 999) = false, want true")
	}
	for _, c := range [][4]int{{24, 0, 0, 0}, {0, 60, 0, 0}, {0, 0, 60, 0}, {0, 0, 0, 1000}, {-1, 0, 0, 0}} {
		if IsValidClock(c[0], c[1], c[2], c[3]) {
			t.Errorf("IsValidClock(%v) = true, want false", c)
		}
	}
}

func TestDayOfYear(t *testing.T) {
	testCases := []struct {
		y, m, d  int
		expected int
	}{
		{2023, 1, 1, 1},
		{2023, 12, 31, 365},
		{2024, 12, 31, 366},
		{2024, 3, 1, 61},
		{2023, 3, 1, 60},
		{2023, 2, 30, 0},
	}

	for _, tc := range testCases {
		if got := DayOfYear(tc.y, tc.m, tc.d); got != tc.expected {
			t.Errorf("DayOfYear(%d, %d, %d) = %d, want %d", tc.y, tc.m, tc.d, got, tc.expected)
		}
	}
}

func TestSplitSeconds(t *testing.T) {
	testCases := []struct {
		total         int
		sign, h, m, s int
	}{
		{0, 0, 0, 0, 0},
		{3600, 1, 1, 0, 0},
		{14640, 1, 4, 4, 0},
		{-19800, -1, 5, 30, 0},
		{64800, 1, 18, 0, 0},
		{3661, 1, 1, 1, 1},
	}

	for _, tc := range testCases {
		sign, h, m, s := SplitSeconds(tc.total)
		if sign != tc.sign || h != tc.h || m != tc.m || s != tc.s {
			t.Errorf("SplitSeconds(%d) = (%d, %d, %d, %d), want (%d, %d, %d, %d)",
				tc.total, sign, h, m, s, tc.sign, tc.h, tc.m, tc.s)
		}
	}
}

func TestFloorDivMod(t *testing.T) {
	testCases := []struct {
		a, b     int
		div, mod int
	}{
		{7, 3, 2, 1},
		{-7, 3, -3, 2},
		{-6, 3, -2, 0},
		{0, 5, 0, 0},
	}

	for _, tc := range testCases {
		if got := FloorDiv(tc.a, tc.b); got != tc.div {
			t.Errorf("FloorDiv(%d, %d) = %d, want %d", tc.a, tc.b, got, tc.div)
		}
		if got := FloorMod(tc.a, tc.b); got != tc.mod {
			t.Errorf("FloorMod(%d, %d) = %d, want %d", tc.a, tc.b, got, tc.mod)
		}
	}
}

// ===============================
// Cyclic Enumeration Tests
// ===============================

func TestMonthPlus(t *testing.T) {
	testCases := []struct {
		month    Month
		n        int
		expected Month
	}{
		{January, 0, January},
		{January, 1, February},
		{December, 1, January},
		{January, 13, February},
		{January, -1, December},
		{March, -14, January},
		{June, 120, June},
	}

	for _, tc := range testCases {
		if got := tc.month.Plus(tc.n); got != tc.expected {
			t.Errorf("%v.Plus(%d) = %v, want %v", tc.month, tc.n, got, tc.expected)
		}
	}
}

func TestWeekdayPlus(t *testing.T) {
	testCases := []struct {
		day      Weekday
		n        int
		expected Weekday
	}{
		{Monday, 1, Tuesday},
		{Sunday, 1, Monday},
		{Monday, -1, Sunday},
		{Wednesday, 7, Wednesday},
		{Wednesday, -15, Tuesday},
	}

	for _, tc := range testCases {
		if got := tc.day.Plus(tc.n); got != tc.expected {
			t.Errorf("%v.Plus(%d) = %v, want %v", tc.day, tc.n, got, tc.expected)
		}
	}
}

func TestMinusAgreesWithNegatedPlus(t *testing.T) {
	for m := January; m <= December; m++ {
		for n := -40; n <= 40; n++ {
			if got, want := m.Minus(n), m.Plus(-n); got != want {
				t.Errorf("%v.Minus(%d) = %v, want %v", m, n, got, want)
			}
			if got := m.Plus(n); !got.IsValid() {
				t.Errorf("%v.Plus(%d) = %d, outside the year", m, n, int(got))
			}
		}
	}
	for _, n := range []int{math.MaxInt, math.MinInt + 1, math.MaxInt32, math.MinInt32, 1 << 40, -(1 << 40)} {
		for m := January; m <= December; m++ {
			if got, want := m.Minus(n), m.Plus(-n); got != want {
				t.Errorf("%v.Minus(%d) = %v, want %v", m, n, got, want)
			}
		}
	}
	for w := Monday; w <= Sunday; w++ {
		for n := -30; n <= 30; n++ {
			if got, want := w.Minus(n), w.Plus(-n); got != want {
				t.Errorf("%v.Minus(%d) = %v, want %v", w, n, got, want)
			}
		}
	}
}

func TestWeekdayOf(t *testing.T) {
	if got := WeekdayOf(time.Sunday); got != Sunday {
		t.Errorf("WeekdayOf(Sunday) = %v, want Sunday", got)
	}
	for w := Monday; w <= Sunday; w++ {
		if got := WeekdayOf(w.Std()); got != w {
			t.Errorf("WeekdayOf(%v.Std()) = %v", w, got)
		}
	}
	if !Saturday.IsWeekend() || Friday.IsWeekend() {
		t.Error("IsWeekend() misclassifies Saturday or Friday")
	}
}

func TestEnumStrings(t *testing.T) {
	if got := March.String(); got != "March" {
		t.Errorf("March.String() = %q", got)
	}
	if got := Sunday.String(); got != "Sunday" {
		t.Errorf("Sunday.String() = %q", got)
	}
	if got := Month(13).String(); got != "%!Month(13)" {
		t.Errorf("Month(13).String() = %q", got)
	}
}

// ===============================
// Layout Tests
// ===============================

func TestLayoutFor(t *testing.T) {
	testCases := []struct {
		name     string
		expected string
	}{
		{"iso8601", ISO8601},
		{"business-date", BusinessDate},
		{"rfc3339", time.RFC3339},
		{"02/01/2006", "02/01/2006"},
	}

	for _, tc := range testCases {
		if got := LayoutFor(tc.name); got != tc.expected {
			t.Errorf("LayoutFor(%q) = %q, want %q", tc.name, got, tc.expected)
		}
	}

	names := LayoutNames()
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("LayoutNames() not sorted at %d: %q >= %q", i, names[i-1], names[i])
		}
	}
}

// ===============================
// Duration Tests
// ===============================

func TestParseDuration(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected time.Duration
	}{
		{"go syntax", "1h30m", 90 * time.Minute},
		{"negative go syntax", "-45s", -45 * time.Second},
		{"days with space", "2 days", 48 * time.Hour},
		{"singular", "1 hour", time.Hour},
		{"fraction", "1.5 hours", 90 * time.Minute},
		{"compact days", "3d", 72 * time.Hour},
		{"negative weeks", "-2w", -14 * Day},
		{"explicit plus", "+1 day", Day},
		{"abbreviated", "10 mins", 10 * time.Minute},
		{"millis", "250 ms", 250 * time.Millisecond},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseDuration(tc.input)
			if err != nil {
				t.Fatalf("ParseDuration(%q) error = %v", tc.input, err)
			}
			if got != tc.expected {
				t.Errorf("ParseDuration(%q) = %v, want %v", tc.input, got, tc.expected)
			}
		})
	}
}

func TestParseDurationErrors(t *testing.T) {
	for _, input := range []string{"", "   ", "abc", "3 fortnights", "1 month", "2 years", "d"} {
		_, err := ParseDuration(input)
		if err == nil {
			t.Errorf("ParseDuration(%q) error = nil, want error", input)
			continue
		}
		if !mdwerror.HasCode(err, mdwerror.CodeInvalidDuration) {
			t.Errorf("ParseDuration(%q) code = %v, want %v", input, mdwerror.GetCode(err), mdwerror.CodeInvalidDuration)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	testCases := []struct {
		input    time.Duration
		expected string
	}{
		{0, "0 seconds"},
		{time.Second, "1 second"},
		{90 * time.Minute, "1 hour and 30 minutes"},
		{Day + 2*time.Hour + 5*time.Minute, "1 day, 2 hours, and 5 minutes"},
		{400 * Day, "400 days"},
		{250 * time.Millisecond, "250 milliseconds"},
		{-time.Hour, "-1 hour"},
	}

	for _, tc := range testCases {
		if got := FormatDuration(tc.input); got != tc.expected {
			t.Errorf("FormatDuration(%v) = %q, want %q", tc.input, got, tc.expected)
		}
	}
}

func TestFormatSecondsCompact(t *testing.T) {
	testCases := []struct {
		input    float64
		expected string
	}{
		{0, "0s"},
		{45, "45s"},
		{1.5, "1.5s"},
		{0.25, "250ms"},
		{90, "1m 30s"},
		{3600, "1h 0m 0s"},
		{86405, "1d 0h 0m 5s"},
		{-9000, "-2h 30m 0s"},
		{0.0004, "0s"},
	}

	for _, tc := range testCases {
		if got := FormatSecondsCompact(tc.input); got != tc.expected {
			t.Errorf("FormatSecondsCompact(%v) = %q, want %q", tc.input, got, tc.expected)
		}
	}

	if got := FormatDurationCompact(26 * time.Hour); got != "1d 2h 0m 0s" {
		t.Errorf("FormatDurationCompact(26h) = %q", got)
	}
}
