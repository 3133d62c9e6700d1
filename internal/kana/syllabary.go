package kana

import "fmt"

// Syllabary identifies one of the two kana writing systems.
type Syllabary string

const (
	Hiragana Syllabary = "hiragana"
	Katakana Syllabary = "katakana"
)

// AllSyllabaries returns both syllabaries in display order.
func AllSyllabaries() []Syllabary {
	return []Syllabary{Hiragana, Katakana}
}

// DisplayName returns a human-readable label for the syllabary.
func (s Syllabary) DisplayName() string {
	switch s {
	case Hiragana:
		return "Hiragana"
	case Katakana:
		return "Katakana"
	default:
		return string(s)
	}
}

// Other returns the opposite syllabary.
func (s Syllabary) Other() Syllabary {
	if s == Katakana {
		return Hiragana
	}
	return Katakana
}

// ParseSyllabary converts a user-supplied name into a Syllabary.
func ParseSyllabary(name string) (Syllabary, error) {
	switch Syllabary(name) {
	case Hiragana, Katakana:
		return Syllabary(name), nil
	}
	return "", fmt.Errorf("unknown character set %q: must be hiragana or katakana", name)
}
