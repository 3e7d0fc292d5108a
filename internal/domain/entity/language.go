package entity

import "strings"

// Language selects which side of the bilingual text is shown.
type Language string

const (
	LanguageEnglish    Language = "en"
	LanguageVietnamese Language = "vi"
	LanguageBoth       Language = "both"
)

// Languages lists the accepted language modes.
func Languages() []Language {
	return []Language{LanguageEnglish, LanguageVietnamese, LanguageBoth}
}

// ParseLanguage normalizes s. Unknown values fall back to LanguageBoth.
func ParseLanguage(s string) Language {
	switch Language(strings.ToLower(strings.TrimSpace(s))) {
	case LanguageEnglish:
		return LanguageEnglish
	case LanguageVietnamese:
		return LanguageVietnamese
	default:
		return LanguageBoth
	}
}

// ShowsEnglish reports whether English text is rendered.
func (l Language) ShowsEnglish() bool { return l != LanguageVietnamese }

// ShowsVietnamese reports whether Vietnamese text is rendered.
func (l Language) ShowsVietnamese() bool { return l != LanguageEnglish }

// Pick returns the text for l. With LanguageBoth the English text wins and
// vi is expected to be shown separately. Missing translations fall back to en.
func (l Language) Pick(en, vi string) string {
	if l == LanguageVietnamese && vi != "" {
		return vi
	}
	return en
}
