package progress

import "github.com/abhisek/hirabolta/internal/kana"

// DefaultThreshold is the default number of correct answers needed to
// complete a row.
const DefaultThreshold = 5

// Record is a learner's position in one syllabary.
type Record struct {
	CurrentRow   string
	CorrectCount int
	CharacterSet kana.Syllabary
}

// DefaultRecord returns the starting record for s: first row, no answers.
func DefaultRecord(s kana.Syllabary) Record {
	return Record{
		CurrentRow:   kana.FirstRow(kana.For(s)),
		CorrectCount: 0,
		CharacterSet: s,
	}
}

// Fraction returns the row completion ratio in [0, 1] for the given threshold.
func (r Record) Fraction(threshold int) float64 {
	if threshold <= 0 {
		return 0
	}
	f := float64(r.CorrectCount) / float64(threshold)
	if f > 1 {
		return 1
	}
	return f
}
