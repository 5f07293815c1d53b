package i18n

import "golang.org/x/text/language"

const (
	LocalePT = "pt-BR"
	LocaleEN = "en-US"

	DefaultLocale = LocalePT
)

var supported = []language.Tag{
	language.MustParse(LocalePT),
	language.MustParse(LocaleEN),
}

var locales = []string{LocalePT, LocaleEN}

var matcher = language.NewMatcher(supported)

// Resolve maps an Accept-Language header to a supported locale tag,
// defaulting to pt-BR.
func Resolve(acceptLanguage string) string {
	if acceptLanguage == "" {
		return DefaultLocale
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return DefaultLocale
	}

	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return DefaultLocale
	}
	return locales[idx]
}

// Message resolves a catalog key for a locale. Unknown keys come back
// verbatim so a missing translation never blanks an error response.
func Message(locale, key string) string {
	if msgs, ok := catalog[locale]; ok {
		if msg, ok := msgs[key]; ok {
			return msg
		}
	}

	if msg, ok := catalog[DefaultLocale][key]; ok {
		return msg
	}
	return key
}
