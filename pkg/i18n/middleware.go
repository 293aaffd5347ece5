package i18n

import (
	"net/http"
	"slices"
)

// LangQueryParam overrides header negotiation when it names a supported language.
const LangQueryParam = "lang"

// Middleware stores the request language in the context. A supported "lang"
// query parameter wins; otherwise Accept-Language is negotiated against the
// translator's languages, falling back to its default language.
func Middleware(t *Translator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			supported := t.SupportedLanguages()

			lang := r.URL.Query().Get(LangQueryParam)
			if !slices.Contains(supported, lang) {
				lang = ParseAcceptLanguage(r.Header.Get("Accept-Language"), supported, t.DefaultLanguage())
			}

			next.ServeHTTP(w, r.WithContext(SetLocale(r.Context(), lang)))
		})
	}
}
