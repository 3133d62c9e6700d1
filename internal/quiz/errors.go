package quiz

import (
	"fmt"

	"github.com/abhisek/hirabolta/internal/kana"
)

// EmptyRowError is returned when a character is requested from a row that has
// no characters in the catalog. Callers should only pass rows from kana.RowsOf.
type EmptyRowError struct {
	Syllabary kana.Syllabary
	Row       string
}

func (e *EmptyRowError) Error() string {
	return fmt.Sprintf("row %q has no characters in %s catalog", e.Row, e.Syllabary)
}

// InsufficientOptionsError is returned when the distractor pool cannot fill
// the requested option count.
type InsufficientOptionsError struct {
	Requested int // option count requested, correct answer included
	Available int // distinct distractors available
}

func (e *InsufficientOptionsError) Error() string {
	return fmt.Sprintf("cannot build %d options: only %d distinct distractors available",
		e.Requested, e.Available)
}
