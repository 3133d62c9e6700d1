package session

import (
	"time"

	"github.com/abhisek/hirabolta/internal/kana"
	"github.com/abhisek/hirabolta/internal/progress"
	"github.com/abhisek/hirabolta/internal/quiz"
)

// SessionState tracks the runtime state of an active quiz session.
type SessionState struct {
	// ID is the UUID for this session.
	ID string

	// Syllabary is the character set being practiced.
	Syllabary kana.Syllabary

	// Current is the question on screen.
	Current quiz.QuizState

	// QuestionStartTime tracks when the current question was first displayed.
	QuestionStartTime time.Time

	// StartTime is when the session began.
	StartTime time.Time

	// TotalQuestions is the count of questions answered so far.
	TotalQuestions int

	// TotalCorrect is the count of correct answers so far.
	TotalCorrect int

	// RowsCompleted lists the rows finished during this session, in order.
	RowsCompleted []string
}

// AnswerResult is what the UI needs to render feedback for one answer.
type AnswerResult struct {
	Correct  bool
	Expected string

	// AdvancedRow is set when this answer moved the learner to the next row.
	AdvancedRow bool

	// Completed is set when the learner has finished the last row.
	Completed bool

	// FromRow is the row the question came from.
	FromRow string

	// Record is the progress after the answer.
	Record progress.Record
}
