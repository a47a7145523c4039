// ============================================================================
// zeitwerk - Civil Calendar and Zone Offset Engine
// ============================================================================
//
// Package:     chrono
// Description: ZoneOffset parsing, canonical rendering and the sub-minute
//              correction ("fudge") applied to imprecise platform zones
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package chrono

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"

	mdwerror "github.com/msto63/zeitwerk/foundation/core/error"
	"github.com/msto63/zeitwerk/foundation/utils/timex"
)

// ZoneOffset is a zone in which instants are presented as wall-clock fields.
// It is either offset-only ("+05:30") or named ("Europe/Berlin").
//
// The fudge is the difference between the requested offset and the offset
// the platform zone actually reports. It is zero unless the zone database
// drops precision (see MinuteZones) and is added back in every conversion.
//
// The zero value is UTC.
type ZoneOffset struct {
	loc    *time.Location
	fixed  bool
	offset int
	fudge  int
}

// UTC is the neutral zero offset
var UTC = ZoneOffset{loc: time.UTC, fixed: true}

func (z ZoneOffset) norm() ZoneOffset {
	if z.loc == nil {
		return UTC
	}
	return z
}

// location returns the platform zone, never nil
func (z ZoneOffset) location() *time.Location {
	return z.norm().loc
}

// ParseZone parses a zone identifier using the platform zone database.
// See ParseZoneWith for the accepted forms.
func ParseZone(id string) (ZoneOffset, error) {
	return ParseZoneWith(PlatformZones{}, id)
}

// ParseZoneWith parses a zone identifier. Accepted forms are "Z", "±hh:mm"
// and "±hh:mm:ss" with two digits per component, hours 0-18 and a total of
// at most 18 hours. Anything else is looked up as an IANA name, then as an
// abbreviation. Failures carry one of the CodeZone* codes.
func ParseZoneWith(db ZoneDatabase, id string) (ZoneOffset, error) {
	switch {
	case id == "":
		return ZoneOffset{}, zoneError(mdwerror.CodeZoneBlank, id, "blank zone identifier")
	case id == "Z":
		return zoneOfSeconds(db, 0), nil
	case id[0] == '+' || id[0] == '-':
		seconds, err := parseOffset(id)
		if err != nil {
			return ZoneOffset{}, err
		}
		return zoneOfSeconds(db, seconds), nil
	}

	if loc, err := db.Named(id); err == nil {
		return ZoneOfLocation(loc), nil
	}
	if loc, err := db.Abbreviated(id); err == nil {
		return ZoneOfLocation(loc), nil
	}

	reason := "not an offset, zone name or abbreviation"
	if id[0] >= '0' && id[0] <= '9' {
		reason = "offset is missing its sign"
	}
	return ZoneOffset{}, zoneError(mdwerror.CodeZoneUnrecognized, id, reason)
}

// parseOffset parses "±hh:mm" or "±hh:mm:ss" into signed seconds
func parseOffset(id string) (int, error) {
	segments := strings.Split(id[1:], ":")
	if len(segments) != 2 && len(segments) != 3 {
		return 0, zoneError(mdwerror.CodeZoneSegmentCount, id,
			fmt.Sprintf("expected 2 or 3 segments, got %d", len(segments)))
	}

	hours, ok := twoDigits(segments[0])
	if !ok || hours > 18 {
		return 0, zoneError(mdwerror.CodeZoneHourRange, id, "hour must be 00-18")
	}
	minutes, ok := twoDigits(segments[1])
	if !ok || minutes > 59 {
		return 0, zoneError(mdwerror.CodeZoneMinuteRange, id, "minute must be 00-59")
	}
	seconds := 0
	if len(segments) == 3 {
		seconds, ok = twoDigits(segments[2])
		if !ok || seconds > 59 {
			return 0, zoneError(mdwerror.CodeZoneSecondRange, id, "second must be 00-59")
		}
	}

	total := hours*timex.SecondsPerHour + minutes*timex.SecondsPerMinute + seconds
	if total > timex.MaxOffsetSeconds {
		return 0, zoneError(mdwerror.CodeZoneHourRange, id, "offset exceeds 18 hours")
	}
	if id[0] == '-' {
		total = -total
	}
	return total, nil
}

// twoDigits parses exactly two ASCII digits
func twoDigits(s string) (int, bool) {
	if len(s) != 2 || s[0] < '0' || s[0] > '9' || s[1] < '0' || s[1] > '9' {
		return 0, false
	}
	return int(s[0]-'0')*10 + int(s[1]-'0'), true
}

func zoneError(code mdwerror.Code, input, reason string) error {
	return mdwerror.Newf("malformed zone identifier %q: %s", input, reason).
		WithCode(code).
		WithOperation("chrono.ParseZone").
		WithDetail("input", input).
		WithDetail("reason", reason)
}

// ZoneOfSeconds returns the offset-only zone seconds east of UTC, built by
// the platform zone database
func ZoneOfSeconds(seconds int) (ZoneOffset, error) {
	return ZoneOfSecondsWith(PlatformZones{}, seconds)
}

// ZoneOfSecondsWith returns the offset-only zone built by db
func ZoneOfSecondsWith(db ZoneDatabase, seconds int) (ZoneOffset, error) {
	if seconds > timex.MaxOffsetSeconds || seconds < -timex.MaxOffsetSeconds {
		return ZoneOffset{}, mdwerror.Newf("offset %d s exceeds 18 hours", seconds).
			WithCode(mdwerror.CodeZoneHourRange).
			WithOperation("chrono.ZoneOfSeconds").
			WithDetail("seconds", seconds)
	}
	return zoneOfSeconds(db, seconds), nil
}

func zoneOfSeconds(db ZoneDatabase, seconds int) ZoneOffset {
	loc := db.Fixed(seconds)
	_, stored := time.Unix(0, 0).In(loc).Zone()
	return ZoneOffset{loc: loc, fixed: true, offset: seconds, fudge: seconds - stored}
}

// ZoneOfLocation wraps a platform zone. A nil location and time.UTC yield UTC.
func ZoneOfLocation(loc *time.Location) ZoneOffset {
	if loc == nil || loc == time.UTC {
		return UTC
	}
	return ZoneOffset{loc: loc}
}

// IsFixed reports whether z is an offset-only zone
func (z ZoneOffset) IsFixed() bool {
	return z.norm().fixed
}

// Fudge returns the sub-minute correction applied on top of the platform zone
func (z ZoneOffset) Fudge() int {
	return z.fudge
}

// Location returns the platform zone z resolves to
func (z ZoneOffset) Location() *time.Location {
	return z.location()
}

// Identifier renders z canonically: "Z" for zero, "±hh:mm" or "±hh:mm:ss"
// for other offsets, the IANA name for named zones
func (z ZoneOffset) Identifier() string {
	z = z.norm()
	if z.fixed {
		return FormatOffset(z.offset)
	}
	return z.loc.String()
}

// String is the same as Identifier
func (z ZoneOffset) String() string {
	return z.Identifier()
}

// OffsetAt returns the seconds east of UTC in effect at i
func (z ZoneOffset) OffsetAt(i Instant) int {
	z = z.norm()
	if z.fixed {
		return z.offset
	}
	_, platform := i.Time().In(z.loc).Zone()
	return platform + z.fudge
}

// DisplayName returns the platform's name for z, or the canonical identifier
// when the platform zone cannot express the offset exactly
func (z ZoneOffset) DisplayName(locale language.Tag) string {
	return z.DisplayNameWith(PlatformZones{}, locale)
}

// DisplayNameWith is DisplayName with an explicit zone database
func (z ZoneOffset) DisplayNameWith(db ZoneDatabase, locale language.Tag) string {
	z = z.norm()
	if z.fudge != 0 {
		return z.Identifier()
	}
	return db.DisplayName(z.loc, locale)
}

// Equal compares the resolved platform zones only. Offset-only zones are
// equal when the platform stores the same offset for both, so with
// MinuteZones "+04:04:30" equals "+04:04".
func (z ZoneOffset) Equal(other ZoneOffset) bool {
	a, b := z.norm(), other.norm()
	switch {
	case a.loc == b.loc:
		return true
	case a.fixed && b.fixed:
		return a.offset-a.fudge == b.offset-b.fudge
	case !a.fixed && !b.fixed:
		return a.loc.String() == b.loc.String()
	}
	return false
}

// FormatOffset renders signed seconds as "Z", "±hh:mm" or "±hh:mm:ss"
func FormatOffset(seconds int) string {
	sign, h, m, s := timex.SplitSeconds(seconds)
	if sign == 0 {
		return "Z"
	}
	prefix := "+"
	if sign < 0 {
		prefix = "-"
	}
	if s != 0 {
		return fmt.Sprintf("%s%02d:%02d:%02d", prefix, h, m, s)
	}
	return fmt.Sprintf("%s%02d:%02d", prefix, h, m)
}
