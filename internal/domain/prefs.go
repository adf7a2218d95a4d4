package domain

// Theme is the colour scheme of the UI.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Toggle flips between light and dark. Anything unknown becomes dark, the
// same as flipping from light.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Language is a supported UI language.
type Language string

const (
	LangEnglish Language = "en"
	LangMyanmar Language = "my"
)

// Languages lists the supported UI languages.
var Languages = []Language{LangEnglish, LangMyanmar}

// Toggle flips between the two supported languages.
func (l Language) Toggle() Language {
	if l == LangMyanmar {
		return LangEnglish
	}
	return LangMyanmar
}

// Valid reports whether l is one of Languages.
func (l Language) Valid() bool {
	for _, v := range Languages {
		if v == l {
			return true
		}
	}
	return false
}
