package session

import (
	"time"

	"github.com/abhisek/hirabolta/internal/kana"
)

// SessionSummary holds the data shown when a quiz session ends.
type SessionSummary struct {
	Syllabary      kana.Syllabary
	Duration       time.Duration
	TotalQuestions int
	TotalCorrect   int
	Accuracy       float64
	RowsCompleted  []string
}

// BuildSummary creates a SessionSummary from the session state at now.
func BuildSummary(state *SessionState, now time.Time) *SessionSummary {
	var accuracy float64
	if state.TotalQuestions > 0 {
		accuracy = float64(state.TotalCorrect) / float64(state.TotalQuestions)
	}
	return &SessionSummary{
		Syllabary:      state.Syllabary,
		Duration:       now.Sub(state.StartTime),
		TotalQuestions: state.TotalQuestions,
		TotalCorrect:   state.TotalCorrect,
		Accuracy:       accuracy,
		RowsCompleted:  append([]string(nil), state.RowsCompleted...),
	}
}
