// Package i18n registers the onboarding web messages and exposes locale
// helpers for handlers.
package i18n

import (
	"net/http"

	"github.com/louisbranch/onboarding/internal/services/shared/i18nhttp"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// LangCookieName stores the user's language preference.
const LangCookieName = i18nhttp.LangCookieName

// Localize resolves the request locale and returns its printer.
func Localize(w http.ResponseWriter, r *http.Request) (*message.Printer, language.Tag) {
	return i18nhttp.Localize(w, r)
}

// LanguageOptions builds the language switcher for the current request.
func LanguageOptions(printer *message.Printer, active language.Tag, r *http.Request) []i18nhttp.LanguageOption {
	path, rawQuery := "/", ""
	if r != nil {
		path, rawQuery = r.URL.Path, r.URL.RawQuery
	}
	return i18nhttp.BuildLanguageOptions(active, path, rawQuery, func(tag language.Tag) string {
		return printer.Sprintf(i18nhttp.LanguageKey(tag))
	})
}
