package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// maxAcceptLanguageLength bounds the header size processed per request.
const maxAcceptLanguageLength = 4096

// ParseAcceptLanguage picks the best supported language for an
// Accept-Language header using BCP 47 matching from golang.org/x/text.
// Regional variants match their base language ("de-AT" selects "de").
// defaultLang is returned for empty or malformed headers and when nothing matches.
func ParseAcceptLanguage(header string, supportedLangs []string, defaultLang string) string {
	header = strings.TrimSpace(header)
	if header == "" || len(supportedLangs) == 0 {
		return defaultLang
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	desired, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(desired) == 0 {
		return defaultLang
	}

	supported := make([]language.Tag, 0, len(supportedLangs))
	names := make([]string, 0, len(supportedLangs))
	for _, lang := range supportedLangs {
		tag, err := language.Parse(lang)
		if err != nil {
			continue
		}
		supported = append(supported, tag)
		names = append(names, lang)
	}
	if len(supported) == 0 {
		return defaultLang
	}

	_, idx, conf := language.NewMatcher(supported).Match(desired...)
	if conf == language.No {
		return defaultLang
	}
	return names[idx]
}
