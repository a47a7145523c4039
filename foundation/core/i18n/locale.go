// File: locale.go
// Title: Locale Helpers
// Description: Locale parsing and normalization on top of
//              golang.org/x/text/language.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of locale detection
// - 2026-10-16 v0.2.0: Parsing delegated to x/text, header detection removed

package i18n

import (
	"path"
	"strings"

	"golang.org/x/text/language"

	mdwerror "github.com/msto63/zeitwerk/foundation/core/error"
)

// NormalizeLocale returns the canonical BCP 47 form, e.g. "de_de" -> "de-DE".
// Unparsable input is returned unchanged.
func NormalizeLocale(locale string) string {
	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return locale
	}
	return tag.String()
}

// ValidateLocale checks that locale is a well-formed BCP 47 tag
func ValidateLocale(locale string) error {
	if _, err := language.Parse(strings.ReplaceAll(locale, "_", "-")); err != nil {
		return mdwerror.Wrap(err, "invalid locale").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("i18n.ValidateLocale").
			WithDetail("locale", locale)
	}
	return nil
}

// SplitLocale splits a locale into language and region, e.g. "de-AT" -> "de", "AT".
// The region is empty when the locale names none.
func SplitLocale(locale string) (lang, region string) {
	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return locale, ""
	}
	base, _ := tag.Base()
	if r, conf := tag.Region(); conf == language.Exact {
		region = r.String()
	}
	return base.String(), region
}

// ParseLocaleFromFilename derives the locale from a catalog file name such
// as "locales/de_DE.toml"
func ParseLocaleFromFilename(filename string) (language.Tag, error) {
	base := path.Base(filename)
	base = strings.TrimSuffix(base, path.Ext(base))
	tag, err := language.Parse(strings.ReplaceAll(base, "_", "-"))
	if err != nil {
		return language.Und, mdwerror.Wrap(err, "language file name is not a locale").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("i18n.ParseLocaleFromFilename").
			WithDetail("file", filename)
	}
	return tag, nil
}
