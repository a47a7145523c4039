// ============================================================================
// zeitwerk - Civil Calendar and Zone Offset Engine
// ============================================================================
//
// Package:     chrono
// Description: Period, a calendar-relative span of years, months and days
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package chrono

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	mdwerror "github.com/msto63/zeitwerk/foundation/core/error"
)

// Period is a signed span of years, months and days. Components are kept as
// given: Period{Months: 14} and Period{Years: 1, Months: 2} are different
// values. Periods have no order because the length of a month depends on
// the date it is applied to; compare them with == or Equal only.
type Period struct {
	Years  int
	Months int
	Days   int
}

// NewPeriod returns the period of the given years, months and days
func NewPeriod(years, months, days int) Period {
	return Period{Years: years, Months: months, Days: days}
}

// PeriodOfDays returns a period of n days
func PeriodOfDays(n int) Period { return Period{Days: n} }

// PeriodOfMonths returns a period of n months
func PeriodOfMonths(n int) Period { return Period{Months: n} }

// PeriodOfYears returns a period of n years
func PeriodOfYears(n int) Period { return Period{Years: n} }

// Plus adds component-wise without normalizing
func (p Period) Plus(other Period) Period {
	return Period{Years: p.Years + other.Years, Months: p.Months + other.Months, Days: p.Days + other.Days}
}

// Minus subtracts component-wise without normalizing
func (p Period) Minus(other Period) Period {
	return p.Plus(other.Negate())
}

// Negate flips the sign of every component
func (p Period) Negate() Period {
	return Period{Years: -p.Years, Months: -p.Months, Days: -p.Days}
}

// IsZero reports whether all components are zero
func (p Period) IsZero() bool {
	return p == Period{}
}

// Equal reports whether all three components match
func (p Period) Equal(other Period) bool {
	return p == other
}

// String describes p in words, e.g. "1 year, 2 months" or "-1 year, -3 days".
// Zero components are omitted; the zero period is "empty period".
func (p Period) String() string {
	if p.IsZero() {
		return "empty period"
	}
	var parts []string
	for _, c := range []struct {
		n    int
		unit string
	}{{p.Years, "year"}, {p.Months, "month"}, {p.Days, "day"}} {
		switch c.n {
		case 0:
		case 1, -1:
			parts = append(parts, fmt.Sprintf("%d %s", c.n, c.unit))
		default:
			parts = append(parts, fmt.Sprintf("%d %ss", c.n, c.unit))
		}
	}
	return strings.Join(parts, ", ")
}

// ISO renders p in ISO-8601 form, e.g. "P1Y2M3D" or "P-1Y-3D"
func (p Period) ISO() string {
	if p.IsZero() {
		return "P0D"
	}
	var b strings.Builder
	b.WriteByte('P')
	if p.Years != 0 {
		b.WriteString(strconv.Itoa(p.Years) + "Y")
	}
	if p.Months != 0 {
		b.WriteString(strconv.Itoa(p.Months) + "M")
	}
	if p.Days != 0 {
		b.WriteString(strconv.Itoa(p.Days) + "D")
	}
	return b.String()
}

var periodPattern = regexp.MustCompile(`^([-+]?)P(?:([-+]?\d+)Y)?(?:([-+]?\d+)M)?(?:([-+]?\d+)W)?(?:([-+]?\d+)D)?$`)

// ParsePeriod parses an ISO-8601 period such as "P1Y2M", "P3W" or "-P1M5D".
// A leading sign negates the whole period; weeks are folded into days.
func ParsePeriod(s string) (Period, error) {
	m := periodPattern.FindStringSubmatch(strings.ToUpper(strings.TrimSpace(s)))
	if m == nil || (m[2] == "" && m[3] == "" && m[4] == "" && m[5] == "") {
		return Period{}, invalidPeriod(s, "expected ISO-8601 form PnYnMnWnD")
	}

	var n [4]int
	for i, group := range m[2:] {
		if group == "" {
			continue
		}
		v, err := strconv.Atoi(group)
		if err != nil {
			return Period{}, invalidPeriod(s, "component out of range")
		}
		n[i] = v
	}

	p := Period{Years: n[0], Months: n[1], Days: n[2]*7 + n[3]}
	if m[1] == "-" {
		p = p.Negate()
	}
	return p, nil
}

func invalidPeriod(input, reason string) error {
	return mdwerror.Newf("invalid period %q: %s", input, reason).
		WithCode(mdwerror.CodeInvalidPeriod).
		WithOperation("chrono.ParsePeriod").
		WithDetail("input", input).
		WithDetail("reason", reason)
}
