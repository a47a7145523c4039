// Package error provides the structured error type used throughout zeitwerk.
//
// Package: error
// Title: zeitwerk Error Handling
// Description: This package implements a structured error with a code, a severity,
//              the failing operation and free-form details. Every fallible
//              constructor in the calendar engine returns one of these, so callers
//              can branch on the violated rule instead of matching message text.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-16 v0.2.0: Zone and calendar codes, errors.Is/As integration
//
// Usage:
//
//	import mdwerror "github.com/msto63/zeitwerk/foundation/core/error"
//
//	err := mdwerror.New("hour out of range").
//		WithCode(mdwerror.CodeZoneHourRange).
//		WithOperation("chrono.ParseZone").
//		WithDetail("input", "+23:10")
//
//	if mdwerror.HasCode(err, mdwerror.CodeZoneHourRange) {
//		// reject the offset
//	}
//
// Zone identifier failures share the "zone" category:
//
//	if mdwerror.GetCode(err).IsZoneCode() { ... }
package error
