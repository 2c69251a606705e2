package domain

// Language selects the localization table used when rendering responses.
type Language string

const (
	LanguageEN Language = "en"
	LanguageLV Language = "lv"
	LanguageRU Language = "ru"
	LanguageUK Language = "uk"
)

// SupportedLanguages lists every language the renderer has a string table for.
var SupportedLanguages = []Language{LanguageEN, LanguageLV, LanguageRU, LanguageUK}

// ParseLanguage maps a language code to a supported Language, falling back to
// English for anything unrecognized.
func ParseLanguage(code string) Language {
	for _, l := range SupportedLanguages {
		if string(l) == code {
			return l
		}
	}
	return LanguageEN
}
