// ============================================================================
// zeitwerk - Civil Calendar and Zone Offset Engine
// ============================================================================
//
// Package:     version
// Description: Central version management for the library and the CLI
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
	"time"
)

// Version is the release of the zeitwerk module
const Version = "0.3.0"

// Build information, set via -ldflags "-X" at release time
var (
	Commit    = "unknown"
	BuildDate = ""
)

// Info describes the running binary
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
	Platform  string
	TZData    string
}

// Get returns the version information of the running binary
func Get() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
		TZData:    tzSource(),
	}
}

// String returns a one-line summary
func (i Info) String() string {
	s := fmt.Sprintf("zeitwerk %s (%s, %s, %s)", i.Version, i.Commit, i.GoVersion, i.Platform)
	if i.BuildDate != "" {
		s += " built " + i.BuildDate
	}
	return s
}

// tzSource reports where named zones are loaded from
func tzSource() string {
	if _, err := time.LoadLocation("Europe/Berlin"); err != nil {
		return "unavailable"
	}
	return "system or embedded"
}
