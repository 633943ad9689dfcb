package host

import (
	"regexp"
	"strings"
)

var tokenPattern = regexp.MustCompile(`\$[\w.]+`)

// Localization is the host's translation table.
type Localization struct {
	selected     string
	translations map[string]string
}

// NewLocalization creates an empty table for the given language.
func NewLocalization(language string) *Localization {
	return &Localization{selected: language, translations: make(map[string]string)}
}

// SelectedLanguage returns the active language.
func (l *Localization) SelectedLanguage() string { return l.selected }

// SetLanguage switches the active language and drops existing translations.
func (l *Localization) SetLanguage(language string) {
	l.selected = language
	l.translations = make(map[string]string)
}

// AddWord stores value under key. A leading $ on key is ignored.
func (l *Localization) AddWord(key, value string) {
	l.translations[strings.TrimPrefix(key, "$")] = value
}

// HasWord reports whether key has a translation.
func (l *Localization) HasWord(key string) bool {
	_, ok := l.translations[strings.TrimPrefix(key, "$")]
	return ok
}

// Localize replaces every $token in text with its translation. Unknown
// tokens are left as-is.
func (l *Localization) Localize(text string) string {
	return tokenPattern.ReplaceAllStringFunc(text, func(tok string) string {
		if v, ok := l.translations[tok[1:]]; ok {
			return v
		}
		return tok
	})
}

// LocalizationLoad is the argument of the host's language-load method.
type LocalizationLoad struct {
	Localization *Localization
	Language     string
}
