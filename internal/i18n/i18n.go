// Package i18n holds the user-facing message catalog in English and French.
package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Lang is a supported interface language.
type Lang string

const (
	English Lang = "en"
	French  Lang = "fr"
)

// Languages returns the supported languages in display order.
func Languages() []Lang {
	return []Lang{English, French}
}

// DisplayName returns the language's own name.
func (l Lang) DisplayName() string {
	switch l {
	case French:
		return "Français"
	default:
		return "English"
	}
}

// ParseLang validates a language code.
func ParseLang(s string) (Lang, error) {
	switch Lang(strings.ToLower(strings.TrimSpace(s))) {
	case English:
		return English, nil
	case French:
		return French, nil
	}
	return "", fmt.Errorf("unknown language %q (want en or fr)", s)
}

var (
	supported = []language.Tag{language.English, language.French}
	matcher   = language.NewMatcher(supported)
)

// Match picks the supported language closest to a locale string such as
// "fr_CA.UTF-8" or "en-GB". Unknown or empty locales yield English.
func Match(locale string) Lang {
	locale, _, _ = strings.Cut(locale, ".")
	locale, _, _ = strings.Cut(locale, "@")
	locale = strings.ReplaceAll(locale, "_", "-")
	if locale == "" || locale == "C" || locale == "POSIX" {
		return English
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return English
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return English
	}
	if supported[idx] == language.French {
		return French
	}
	return English
}

// T returns the message for key in lang, formatted with args. Missing
// translations fall back to English, then to the key itself.
func T(lang Lang, key Key, args ...any) string {
	msg, ok := catalog[lang][key]
	if !ok {
		msg, ok = catalog[English][key]
	}
	if !ok {
		msg = string(key)
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}
