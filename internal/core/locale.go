package core

import "golang.org/x/text/language"

// Hebrew first: it is the store's default language.
var localeMatcher = language.NewMatcher([]language.Tag{
	language.Hebrew,
	language.English,
})

// ParseLocale maps a BCP 47 language tag (or a bare "he"/"en") to a supported
// Locale. Anything that does not resolve to English falls back to Hebrew.
func ParseLocale(v string) Locale {
	tag, _ := language.MatchStrings(localeMatcher, v)
	if base, _ := tag.Base(); base.String() == "en" {
		return LocaleEnglish
	}
	return LocaleHebrew
}
