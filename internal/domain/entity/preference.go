package entity

// Theme is the display theme of a session.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Language is a supported display language code.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageFrench  Language = "fr"
	LanguageArabic  Language = "ar"
	LanguageSwahili Language = "sw"
)

// SupportedLanguages in display order.
var SupportedLanguages = []Language{LanguageEnglish, LanguageFrench, LanguageArabic, LanguageSwahili}

// LanguageNames are the native display names of SupportedLanguages.
var LanguageNames = map[Language]string{
	LanguageEnglish: "English",
	LanguageFrench:  "Français",
	LanguageArabic:  "العربية",
	LanguageSwahili: "Kiswahili",
}

// IsSupported reports whether l is one of SupportedLanguages.
func (l Language) IsSupported() bool {
	for _, s := range SupportedLanguages {
		if s == l {
			return true
		}
	}

	return false
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}

	return ThemeDark
}

// Preferences are per-session display settings.
type Preferences struct {
	Theme    Theme    `json:"theme"`
	Language Language `json:"language"`
}

// DefaultPreferences is used when nothing has been stored yet.
func DefaultPreferences() Preferences {
	return Preferences{Theme: ThemeLight, Language: LanguageEnglish}
}
