package cmd

import (
	"strings"

	"golang.org/x/text/language"

	"github.com/msto63/zeitwerk/foundation/core/i18n"
	"github.com/msto63/zeitwerk/foundation/utils/timex"
)

func monthName(locale language.Tag, m timex.Month) string {
	return i18n.Default().TWithFallback(locale, "month."+strings.ToLower(m.String()), m.String())
}

func weekdayName(locale language.Tag, w timex.Weekday) string {
	return i18n.Default().TWithFallback(locale, "weekday."+strings.ToLower(w.String()), w.String())
}

func weekdayShort(locale language.Tag, w timex.Weekday) string {
	return i18n.Default().TWithFallback(locale, "weekday_short."+strings.ToLower(w.String()), w.String()[:2])
}
