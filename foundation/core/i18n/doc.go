// File: doc.go
// Title: Internationalization (i18n) Package Documentation
// Description: Package i18n provides translation catalogs for user-facing
//              names such as months, weekdays and zone names.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-16 v0.2.0: Embedded calendar catalogs

/*
Package i18n provides translation catalogs loaded from TOML and YAML files.

Catalog files are named after their locale ("en.toml", "de.yaml") and hold
nested tables that are addressed by dotted keys:

	[month]
	january = "Januar"

	m := i18n.Default()
	m.T(language.German, "month.january") // "Januar"

A requested locale is matched against the available catalogs with
golang.org/x/text/language, so "de-AT" is served by "de". Keys missing in the
matched catalog fall back to the default locale and then to the key itself.

The built-in catalogs cover English, German and French names of months,
weekdays and UTC. New(Options{FS: os.DirFS(dir)}) loads catalogs from disk.
*/
package i18n
