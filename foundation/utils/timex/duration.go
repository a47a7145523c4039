// File: duration.go
// Title: Duration Parsing and Formatting
// Description: Signed duration parsing that accepts Go syntax plus business
//              friendly forms ("2 days", "3w"), and human readable and compact
//              renderings. Months and years are rejected because their length
//              is not fixed; use a calendar period for those.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: ParseDuration and FormatDuration
// - 2025-07-26 v0.1.1: Added FormatDurationCompact
// - 2026-10-16 v0.2.0: Signed input, day/week suffixes, millisecond compact output

package timex

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	mdwerror "github.com/msto63/zeitwerk/foundation/core/error"
)

const (
	Day  = 24 * time.Hour
	Week = 7 * Day
)

var unitDurations = map[string]time.Duration{
	"ms":          time.Millisecond,
	"millisecond": time.Millisecond,
	"s":           time.Second,
	"sec":         time.Second,
	"second":      time.Second,
	"m":           time.Minute,
	"min":         time.Minute,
	"minute":      time.Minute,
	"h":           time.Hour,
	"hr":          time.Hour,
	"hour":        time.Hour,
	"d":           Day,
	"day":         Day,
	"w":           Week,
	"week":        Week,
}

// ParseDuration parses a signed duration. Accepted forms are Go duration
// syntax ("1h30m"), a number followed by a unit ("2 days", "1.5 hours") and
// a compact day or week count ("3d", "-2w").
func ParseDuration(value string) (time.Duration, error) {
	input := strings.TrimSpace(value)
	if input == "" {
		return 0, invalidDuration(value, "empty duration string")
	}

	if d, err := time.ParseDuration(input); err == nil {
		return d, nil
	}

	lower := strings.ToLower(input)
	sign := 1.0
	switch {
	case strings.HasPrefix(lower, "-"):
		sign = -1
		lower = strings.TrimSpace(lower[1:])
	case strings.HasPrefix(lower, "+"):
		lower = strings.TrimSpace(lower[1:])
	}

	number, unit := splitNumberUnit(lower)
	if number == "" || unit == "" {
		return 0, invalidDuration(value, "unable to parse duration string")
	}
	num, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return 0, invalidDuration(value, "unable to parse duration string")
	}

	if len(unit) > 2 && strings.HasSuffix(unit, "s") && unit != "ms" {
		unit = strings.TrimSuffix(unit, "s")
	}
	if unit == "month" || unit == "year" {
		return 0, invalidDuration(value, unit+"s have no fixed length")
	}
	base, ok := unitDurations[unit]
	if !ok {
		return 0, invalidDuration(value, "unknown duration unit "+strconv.Quote(unit))
	}

	total := sign * num * float64(base)
	if math.Abs(total) > math.MaxInt64 {
		return 0, invalidDuration(value, "duration out of range")
	}
	return time.Duration(total), nil
}

// splitNumberUnit separates "2 days" or "2days" into "2" and "days"
func splitNumberUnit(s string) (string, string) {
	i := 0
	for i < len(s) && (s[i] == '.' || (s[i] >= '0' && s[i] <= '9')) {
		i++
	}
	return s[:i], strings.TrimSpace(s[i:])
}

func invalidDuration(value, reason string) error {
	return mdwerror.New(reason).
		WithCode(mdwerror.CodeInvalidDuration).
		WithOperation("timex.ParseDuration").
		WithDetail("input", value)
}

// FormatDuration formats a duration in human readable form, e.g.
// "1 day, 2 hours, and 5 minutes". Years are not used because a day count
// is exact and a year count is not.
func FormatDuration(d time.Duration) string {
	if d == 0 {
		return "0 seconds"
	}
	if d < 0 {
		return "-" + FormatDuration(-d)
	}

	var parts []string
	if days := int(d / Day); days > 0 {
		parts = append(parts, fmt.Sprintf("%d day%s", days, pluralSuffix(days)))
		d -= time.Duration(days) * Day
	}
	if hours := int(d / time.Hour); hours > 0 {
		parts = append(parts, fmt.Sprintf("%d hour%s", hours, pluralSuffix(hours)))
		d -= time.Duration(hours) * time.Hour
	}
	if minutes := int(d / time.Minute); minutes > 0 {
		parts = append(parts, fmt.Sprintf("%d minute%s", minutes, pluralSuffix(minutes)))
		d -= time.Duration(minutes) * time.Minute
	}
	if seconds := int(d / time.Second); seconds > 0 {
		parts = append(parts, fmt.Sprintf("%d second%s", seconds, pluralSuffix(seconds)))
		d -= time.Duration(seconds) * time.Second
	}

	// Milliseconds only if no larger units
	if len(parts) == 0 {
		if ms := int(d / time.Millisecond); ms > 0 {
			parts = append(parts, fmt.Sprintf("%d millisecond%s", ms, pluralSuffix(ms)))
		}
	}

	switch len(parts) {
	case 0:
		return "0 seconds"
	case 1:
		return parts[0]
	case 2:
		return parts[0] + " and " + parts[1]
	}
	return strings.Join(parts[:len(parts)-1], ", ") + ", and " + parts[len(parts)-1]
}

// FormatDurationCompact formats a duration in compact format (1d 2h 30m 45s)
func FormatDurationCompact(d time.Duration) string {
	return FormatSecondsCompact(d.Seconds())
}

// FormatSecondsCompact formats a signed number of seconds compactly, rounded
// to the millisecond: "1d 0h 0m 5s", "-2h 30m 0s", "1.5s", "250ms".
func FormatSecondsCompact(seconds float64) string {
	ms := int64(math.Round(seconds * 1000))
	if ms == 0 {
		return "0s"
	}
	if ms < 0 {
		return "-" + FormatSecondsCompact(-seconds)
	}

	const (
		msPerSecond = 1000
		msPerMinute = 60 * msPerSecond
		msPerHour   = 60 * msPerMinute
		msPerDay    = 24 * msPerHour
	)

	var parts []string
	if days := ms / msPerDay; days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
		ms -= days * msPerDay
	}
	if hours := ms / msPerHour; hours > 0 || len(parts) > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
		ms -= hours * msPerHour
	}
	if minutes := ms / msPerMinute; minutes > 0 || len(parts) > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
		ms -= minutes * msPerMinute
	}

	secs, frac := ms/msPerSecond, ms%msPerSecond
	switch {
	case len(parts) == 0 && secs == 0:
		parts = append(parts, fmt.Sprintf("%dms", frac))
	case frac == 0:
		parts = append(parts, fmt.Sprintf("%ds", secs))
	default:
		s := strings.TrimRight(fmt.Sprintf("%d.%03d", secs, frac), "0")
		parts = append(parts, s+"s")
	}
	return strings.Join(parts, " ")
}

func pluralSuffix(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
