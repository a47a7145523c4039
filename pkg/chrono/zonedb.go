// ============================================================================
// zeitwerk - Civil Calendar and Zone Offset Engine
// ============================================================================
//
// Package:     chrono
// Description: Platform zone database: fixed offsets, IANA names and
//              abbreviations backed by Go's embedded tz database
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package chrono

import (
	"time"
	_ "time/tzdata"

	"golang.org/x/text/language"

	mdwerror "github.com/msto63/zeitwerk/foundation/core/error"
	"github.com/msto63/zeitwerk/foundation/core/i18n"
	"github.com/msto63/zeitwerk/pkg/core/cache"
)

// ZoneDatabase builds the platform zones a ZoneOffset resolves to
type ZoneDatabase interface {
	// Fixed returns an offset-only zone. The zone may store less precision
	// than requested; the caller measures and corrects the difference.
	Fixed(seconds int) *time.Location

	// Named looks up an IANA zone such as "Australia/Sydney"
	Named(name string) (*time.Location, error)

	// Abbreviated looks up a zone by abbreviation such as "PST"
	Abbreviated(abbr string) (*time.Location, error)

	// DisplayName returns the name shown to users for loc
	DisplayName(loc *time.Location, locale language.Tag) string
}

// abbreviations maps common abbreviations to a representative IANA zone
var abbreviations = map[string]string{
	"EST":  "America/New_York",
	"EDT":  "America/New_York",
	"CST":  "America/Chicago",
	"CDT":  "America/Chicago",
	"MST":  "America/Denver",
	"MDT":  "America/Denver",
	"PST":  "America/Los_Angeles",
	"PDT":  "America/Los_Angeles",
	"AKST": "America/Anchorage",
	"HST":  "Pacific/Honolulu",
	"BRT":  "America/Sao_Paulo",
	"ART":  "America/Argentina/Buenos_Aires",
	"WET":  "Europe/Lisbon",
	"BST":  "Europe/London",
	"CET":  "Europe/Paris",
	"CEST": "Europe/Paris",
	"EET":  "Europe/Helsinki",
	"EEST": "Europe/Helsinki",
	"MSK":  "Europe/Moscow",
	"IST":  "Asia/Kolkata",
	"SGT":  "Asia/Singapore",
	"HKT":  "Asia/Hong_Kong",
	"JST":  "Asia/Tokyo",
	"KST":  "Asia/Seoul",
	"AWST": "Australia/Perth",
	"ACST": "Australia/Adelaide",
	"AEST": "Australia/Sydney",
	"AEDT": "Australia/Sydney",
	"NZST": "Pacific/Auckland",
	"NZDT": "Pacific/Auckland",
}

// PlatformZones resolves zones through Go's time package. Fixed offsets are
// exact. Aliases take precedence over the built-in abbreviation table.
type PlatformZones struct {
	Aliases map[string]string
}

// Fixed returns time.UTC for zero and a fixed zone named by its offset otherwise
func (PlatformZones) Fixed(seconds int) *time.Location {
	if seconds == 0 {
		return time.UTC
	}
	return time.FixedZone(FormatOffset(seconds), seconds)
}

// locations holds the zones loaded by PlatformZones.Named, shared process wide
var locations = cache.New[string, *time.Location](cache.Config{MaxItems: 512})

// Named loads an IANA zone. Repeated lookups return the same *time.Location.
// "Local" is rejected: it names the host's zone, not a tz database entry.
func (PlatformZones) Named(name string) (*time.Location, error) {
	if name == "Local" {
		return nil, mdwerror.New("host zone is not a zone name").
			WithCode(mdwerror.CodeNotFound).
			WithOperation("chrono.PlatformZones.Named").
			WithDetail("name", name)
	}
	loc, err := locations.GetOrSet(name, func() (*time.Location, error) {
		return time.LoadLocation(name)
	})
	if err != nil {
		return nil, mdwerror.Wrap(err, "unknown zone name").
			WithCode(mdwerror.CodeNotFound).
			WithOperation("chrono.PlatformZones.Named").
			WithDetail("name", name)
	}
	return loc, nil
}

// Abbreviated resolves an abbreviation through Aliases, then the built-in table
func (z PlatformZones) Abbreviated(abbr string) (*time.Location, error) {
	name, ok := z.Aliases[abbr]
	if !ok {
		name, ok = abbreviations[abbr]
	}
	if !ok {
		return nil, mdwerror.Newf("unknown zone abbreviation %q", abbr).
			WithCode(mdwerror.CodeNotFound).
			WithOperation("chrono.PlatformZones.Abbreviated").
			WithDetail("abbreviation", abbr)
	}
	return z.Named(name)
}

// DisplayName returns the localized name of UTC for UTC, "GMT+hh:mm" (or
// the locale's equivalent prefix) for fixed zones and the IANA name otherwise
func (PlatformZones) DisplayName(loc *time.Location, locale language.Tag) string {
	names := i18n.Default()
	switch name := loc.String(); {
	case loc == time.UTC || name == "UTC":
		return names.T(locale, "zone.utc")
	case len(name) > 0 && (name[0] == '+' || name[0] == '-'):
		return names.T(locale, "zone.gmt") + name
	default:
		return name
	}
}

// MinuteZones decorates a database whose fixed zones only hold whole minutes,
// as minute-precision platforms do. Offsets are truncated toward zero and the
// lost seconds show up as a non-zero fudge on the resulting ZoneOffset.
type MinuteZones struct {
	Base ZoneDatabase
}

func (z MinuteZones) base() ZoneDatabase {
	if z.Base == nil {
		return PlatformZones{}
	}
	return z.Base
}

func (z MinuteZones) Fixed(seconds int) *time.Location {
	return z.base().Fixed(seconds - seconds%60)
}

func (z MinuteZones) Named(name string) (*time.Location, error) {
	return z.base().Named(name)
}

func (z MinuteZones) Abbreviated(abbr string) (*time.Location, error) {
	return z.base().Abbreviated(abbr)
}

func (z MinuteZones) DisplayName(loc *time.Location, locale language.Tag) string {
	return z.base().DisplayName(loc, locale)
}
