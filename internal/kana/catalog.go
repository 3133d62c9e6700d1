package kana

import (
	"slices"
)

// Character is a single kana with the row it is taught in and its reading.
type Character struct {
	Glyph  string
	Row    string
	Romaji string
}

// Catalog is the ordered character table of one syllabary.
type Catalog struct {
	Syllabary  Syllabary
	Characters []Character
}

// For returns the catalog for the given syllabary. Unknown values yield an
// empty catalog.
func For(s Syllabary) Catalog {
	switch s {
	case Hiragana:
		return Catalog{Syllabary: Hiragana, Characters: slices.Clone(hiraganaTable)}
	case Katakana:
		return Catalog{Syllabary: Katakana, Characters: slices.Clone(katakanaTable)}
	default:
		return Catalog{Syllabary: s}
	}
}

// CharactersInRow returns the characters of row in catalog order.
func CharactersInRow(c Catalog, row string) []Character {
	var out []Character
	for _, ch := range c.Characters {
		if ch.Row == row {
			out = append(out, ch)
		}
	}
	return out
}

// RowsOf returns the distinct row ids of the catalog sorted ascending. The
// result defines what "next row" means for progression.
func RowsOf(c Catalog) []string {
	seen := make(map[string]bool)
	var rows []string
	for _, ch := range c.Characters {
		if !seen[ch.Row] {
			seen[ch.Row] = true
			rows = append(rows, ch.Row)
		}
	}
	slices.Sort(rows)
	return rows
}

// RowIndex returns the position of row within RowsOf(c), or -1.
func RowIndex(c Catalog, row string) int {
	return slices.Index(RowsOf(c), row)
}

// FirstRow returns the first row of the catalog, or "" for an empty catalog.
func FirstRow(c Catalog) string {
	rows := RowsOf(c)
	if len(rows) == 0 {
		return ""
	}
	return rows[0]
}

// Romaji returns every reading in the catalog, duplicates included.
func Romaji(c Catalog) []string {
	out := make([]string, 0, len(c.Characters))
	for _, ch := range c.Characters {
		out = append(out, ch.Romaji)
	}
	return out
}
