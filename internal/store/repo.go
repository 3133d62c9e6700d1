package store

import (
	"time"

	"github.com/abhisek/hirabolta/internal/kana"
)

// Session event actions.
const (
	ActionStart = "start"
	ActionEnd   = "end"
)

// AnswerEventData captures one answered question.
type AnswerEventData struct {
	SessionID string
	LearnerID string
	Syllabary kana.Syllabary
	Row       string
	Glyph     string
	Expected  string
	Submitted string
	Correct   bool
	TimeMs    int
}

// SessionEventData captures the start or end of a quiz session.
type SessionEventData struct {
	SessionID       string
	LearnerID       string
	Syllabary       kana.Syllabary
	Action          string // ActionStart or ActionEnd
	QuestionsServed int    // on end only
	CorrectAnswers  int    // on end only
	DurationSecs    int    // on end only
}

// AnswerStats summarizes the answers given in one syllabary.
type AnswerStats struct {
	Syllabary kana.Syllabary
	Total     int
	Correct   int
}

// Accuracy returns Correct/Total, or 0 when nothing was answered.
func (a AnswerStats) Accuracy() float64 {
	if a.Total == 0 {
		return 0
	}
	return float64(a.Correct) / float64(a.Total)
}

// Stats is the learner summary shown by `hirabolta stats` and the progress
// screen.
type Stats struct {
	Answers      map[kana.Syllabary]AnswerStats
	PracticeDays int
	LastPractice time.Time // zero if never practiced
}

// Total returns the answer totals across both syllabaries.
func (s Stats) Total() AnswerStats {
	var t AnswerStats
	for _, a := range s.Answers {
		t.Total += a.Total
		t.Correct += a.Correct
	}
	return t
}
