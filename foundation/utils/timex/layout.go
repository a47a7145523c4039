// File: layout.go
// Title: Named Layouts
// Description: Layout constants for the platform formatter and lookup by name.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Format constants and Format(t, name)
// - 2026-10-16 v0.2.0: LayoutFor and CommonLayouts for the zeitwerk formatter

package timex

import (
	"sort"
	"time"
)

// Common layouts used in business applications
const (
	// ISO formats
	ISO8601         = "2006-01-02T15:04:05Z07:00"
	ISO8601Millis   = "2006-01-02T15:04:05.000Z07:00"
	ISO8601Date     = "2006-01-02"
	ISO8601Time     = "15:04:05"
	ISO8601DateTime = "2006-01-02T15:04:05"

	// Common business formats
	BusinessDate     = "2006-01-02"
	BusinessDateTime = "2006-01-02 15:04:05"
	BusinessTime     = "15:04:05"

	// Display formats
	DisplayDate     = "January 2, 2006"
	DisplayDateTime = "January 2, 2006 at 3:04 PM"
	DisplayTime     = "3:04 PM"

	// Short formats
	ShortDate     = "01/02/2006"
	ShortDateTime = "01/02/2006 15:04"
	ShortTime     = "15:04"

	// Compact formats
	CompactDate     = "20060102"
	CompactDateTime = "20060102150405"
	CompactTime     = "150405"

	// European format DD.MM.YYYY
	EuropeanDate     = "02.01.2006"
	EuropeanDateTime = "02.01.2006 15:04"

	// Log formats
	LogTimestamp = "2006-01-02 15:04:05.000"
)

var namedLayouts = map[string]string{
	"iso8601":        ISO8601,
	"iso8601-millis": ISO8601Millis,
	"iso8601-date":   ISO8601Date,
	"iso8601-time":   ISO8601Time,
	"business":       BusinessDateTime,
	"business-date":  BusinessDate,
	"business-time":  BusinessTime,
	"display":        DisplayDateTime,
	"display-date":   DisplayDate,
	"display-time":   DisplayTime,
	"short":          ShortDateTime,
	"short-date":     ShortDate,
	"short-time":     ShortTime,
	"compact":        CompactDateTime,
	"compact-date":   CompactDate,
	"compact-time":   CompactTime,
	"european":       EuropeanDateTime,
	"european-date":  EuropeanDate,
	"log":            LogTimestamp,
	"rfc1123":        time.RFC1123,
	"rfc1123z":       time.RFC1123Z,
	"rfc822":         time.RFC822,
	"rfc3339":        time.RFC3339,
	"rfc3339nano":    time.RFC3339Nano,
}

// LayoutFor resolves a layout name such as "business-date" to its layout.
// Any other string is returned unchanged and treated as a literal layout.
func LayoutFor(name string) string {
	if layout, ok := namedLayouts[name]; ok {
		return layout
	}
	return name
}

// LayoutNames returns the known layout names in sorted order
func LayoutNames() []string {
	names := make([]string, 0, len(namedLayouts))
	for name := range namedLayouts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CommonLayouts lists the layouts tried, in order, when parsing input of unknown shape
var CommonLayouts = []string{
	time.RFC3339Nano,
	ISO8601,
	ISO8601DateTime,
	LogTimestamp,
	BusinessDateTime,
	BusinessDate,
	ShortDateTime,
	ShortDate,
	EuropeanDateTime,
	EuropeanDate,
	DisplayDateTime,
	DisplayDate,
	CompactDateTime,
	CompactDate,
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
}
