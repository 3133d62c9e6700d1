package session

import (
	"github.com/abhisek/hirabolta/internal/kana"
	"github.com/abhisek/hirabolta/internal/quiz"
	sess "github.com/abhisek/hirabolta/internal/session"
)

// sessionInitMsg is sent when a session was started (or restarted on
// another syllabary) and its first question drawn.
type sessionInitMsg struct {
	Syllabary kana.Syllabary
	Question  quiz.QuizState
	Err       error
}

// questionReadyMsg is sent when the next question has been drawn.
type questionReadyMsg struct {
	Question quiz.QuizState
	Err      error
}

// answerResultMsg carries the evaluation of a submitted option.
type answerResultMsg struct {
	Submitted string
	Result    sess.AnswerResult
	Err       error
}

// feedbackDoneMsg is sent when the feedback display period ends. Seq ties
// the message to the question it was scheduled for.
type feedbackDoneMsg struct {
	Seq int
}
