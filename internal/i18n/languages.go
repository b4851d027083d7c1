package i18n

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

// displayNames holds each language's name in that language.
var displayNames = map[string]string{
	"en": "English",
	"it": "Italiano",
	"es": "Español",
	"fr": "Français",
	"de": "Deutsch",
}

// DisplayName returns the native name of a language, or code when unknown.
func DisplayName(code string) string {
	if name, ok := displayNames[code]; ok {
		return name
	}
	return code
}

// DisplayName returns the native name of a language, or code when unknown.
func (s *Store) DisplayName(code string) string {
	return DisplayName(code)
}

// SystemLanguage returns the base language of the process locale
// (LC_ALL, LC_MESSAGES, LANG in that order), or the default language when
// none is set or it cannot be parsed.
func (s *Store) SystemLanguage() string {
	if code, ok := localeFromEnv(); ok {
		return code
	}
	return s.def
}

// DetectLanguage picks the system language when it is supported, the
// default language otherwise.
func (s *Store) DetectLanguage() string {
	if code := s.SystemLanguage(); s.IsSupported(code) {
		return code
	}
	return s.def
}

func localeFromEnv() (string, bool) {
	for _, env := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(env); v != "" {
			return parseLocale(v)
		}
	}
	return "", false
}

// parseLocale reduces a POSIX locale such as "it_IT.UTF-8@euro" to "it".
func parseLocale(v string) (string, bool) {
	if i := strings.IndexAny(v, ".@"); i >= 0 {
		v = v[:i]
	}
	if v == "" || v == "C" || v == "POSIX" {
		return "", false
	}
	tag, err := language.Parse(strings.ReplaceAll(v, "_", "-"))
	if err != nil {
		return "", false
	}
	base, _ := tag.Base()
	return base.String(), true
}

// LanguageInfo describes the language state of a Store.
type LanguageInfo struct {
	Current   string            `json:"current"`
	Default   string            `json:"default"`
	System    string            `json:"system"`
	Supported []string          `json:"supported"`
	Names     map[string]string `json:"language_names"`
}

// Info returns the current language state.
func (s *Store) Info() LanguageInfo {
	supported := s.SupportedLanguages()
	names := make(map[string]string, len(supported))
	for _, code := range supported {
		names[code] = DisplayName(code)
	}
	return LanguageInfo{
		Current:   s.ActiveLanguage(),
		Default:   s.def,
		System:    s.SystemLanguage(),
		Supported: supported,
		Names:     names,
	}
}
