package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/hirabolta/internal/i18n"
	"github.com/abhisek/hirabolta/internal/kana"
	"github.com/abhisek/hirabolta/internal/quiz"
	"github.com/abhisek/hirabolta/internal/router"
	"github.com/abhisek/hirabolta/internal/screen"
	"github.com/abhisek/hirabolta/internal/screens/summary"
	sess "github.com/abhisek/hirabolta/internal/session"
	"github.com/abhisek/hirabolta/internal/ui/components"
	"github.com/abhisek/hirabolta/internal/ui/layout"
)

// FeedbackDelay is how long a correct answer stays on screen before the
// next character is drawn.
var FeedbackDelay = time.Second

type feedbackKind int

const (
	feedbackNone feedbackKind = iota
	feedbackCorrect
	feedbackWrong
	feedbackRowComplete
	feedbackAllComplete
)

// feedback is the toast shown under the options.
type feedback struct {
	Kind   feedbackKind
	Title  string
	Detail string
}

// SessionScreen implements screen.Screen for an active quiz session.
type SessionScreen struct {
	env       *screen.Env
	syllabary kana.Syllabary

	question quiz.QuizState
	choice   components.MultiChoice
	started  bool

	feedback  feedback
	advancing bool // a correct answer is on screen, next question pending
	seq       int

	errMsg string
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)
var _ screen.BackHandler = (*SessionScreen)(nil)

// New creates a quiz screen practicing syl.
func New(env *screen.Env, syl kana.Syllabary) *SessionScreen {
	return &SessionScreen{
		env:       env,
		syllabary: syl,
	}
}

func (s *SessionScreen) Init() tea.Cmd {
	return s.startSession(s.syllabary, false)
}

func (s *SessionScreen) Title() string {
	return s.syllabary.DisplayName()
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.errMsg != "" {
		return []layout.KeyHint{{Key: "Esc", Description: s.env.T(i18n.MsgHintBack)}}
	}
	if s.advancing {
		return []layout.KeyHint{
			{Key: "Enter", Description: s.env.T(i18n.MsgHintNext)},
			{Key: "Esc", Description: s.env.T(i18n.MsgHintBack)},
		}
	}
	return []layout.KeyHint{
		{Key: fmt.Sprintf("1-%d", len(s.question.Options)), Description: s.env.T(i18n.MsgHintQuiz)},
		{Key: "Tab", Description: s.env.T(i18n.MsgHintSwitch)},
		{Key: "Esc", Description: s.env.T(i18n.MsgHintBack)},
	}
}

func (s *SessionScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, height, s.errMsg)
	}
	if !s.started {
		return renderLoading(width, height)
	}
	return s.renderQuestionView(width, height)
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionInitMsg:
		return s.handleInit(msg)

	case questionReadyMsg:
		return s.handleQuestionReady(msg)

	case answerResultMsg:
		return s.handleAnswerResult(msg)

	case feedbackDoneMsg:
		if msg.Seq != s.seq || !s.advancing {
			return s, nil
		}
		return s, s.nextQuestion()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

// HandleBack ends the session and replaces the quiz with its summary.
func (s *SessionScreen) HandleBack() tea.Cmd {
	quizSvc := s.env.Quiz
	return func() tea.Msg {
		sum := quizSvc.EndSession(context.Background())
		if sum == nil {
			return router.PopScreenMsg{}
		}
		return router.ReplaceScreenMsg{Screen: summary.New(s.env, sum)}
	}
}

// startSession begins a session on syl. With change set, the stored record
// of syl is reloaded first.
func (s *SessionScreen) startSession(syl kana.Syllabary, change bool) tea.Cmd {
	quizSvc := s.env.Quiz
	return func() tea.Msg {
		ctx := context.Background()
		var (
			q   quiz.QuizState
			err error
		)
		if change {
			q, err = quizSvc.ChangeSyllabary(ctx, syl)
		} else {
			q, err = quizSvc.StartSession(ctx, syl)
		}
		return sessionInitMsg{Syllabary: syl, Question: q, Err: err}
	}
}

func (s *SessionScreen) nextQuestion() tea.Cmd {
	s.advancing = false
	quizSvc := s.env.Quiz
	return func() tea.Msg {
		q, err := quizSvc.NextQuestion(context.Background())
		return questionReadyMsg{Question: q, Err: err}
	}
}

func (s *SessionScreen) submit(option string) tea.Cmd {
	quizSvc := s.env.Quiz
	question := s.question
	return func() tea.Msg {
		res, err := quizSvc.SubmitAnswer(context.Background(), question, option)
		return answerResultMsg{Submitted: option, Result: res, Err: err}
	}
}

func (s *SessionScreen) handleInit(msg sessionInitMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.env.Log().Error("session start failed", zap.String("syllabary", string(msg.Syllabary)), zap.Error(msg.Err))
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.syllabary = msg.Syllabary
	s.started = true
	s.feedback = feedback{}
	s.showQuestion(msg.Question)
	return s, nil
}

func (s *SessionScreen) handleQuestionReady(msg questionReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		if errors.Is(msg.Err, sess.ErrNoSession) {
			return s, s.startSession(s.syllabary, false)
		}
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.feedback = feedback{}
	s.showQuestion(msg.Question)
	return s, nil
}

func (s *SessionScreen) showQuestion(q quiz.QuizState) {
	s.seq++
	s.advancing = false
	s.question = q
	s.choice = components.NewMultiChoice("", q.Options, -1)
}

func (s *SessionScreen) handleAnswerResult(msg answerResultMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	res := msg.Result
	target := s.question.Target

	if !res.Correct {
		s.feedback = feedback{
			Kind:   feedbackWrong,
			Title:  s.env.T(i18n.MsgWrong),
			Detail: s.env.T(i18n.MsgNotQuiteRight),
		}
		s.choice.Retry()
		return s, nil
	}

	s.choice.Reveal(s.choice.ChosenIndex)
	s.advancing = true
	switch {
	case res.Completed:
		s.feedback = feedback{Kind: feedbackAllComplete, Title: s.env.T(i18n.MsgAllComplete)}
	case res.AdvancedRow:
		s.feedback = feedback{
			Kind:   feedbackRowComplete,
			Title:  s.env.T(i18n.MsgRowComplete),
			Detail: s.env.T(i18n.MsgCurrentRow, rowLabel(res.Record.CurrentRow)),
		}
	default:
		s.feedback = feedback{
			Kind:   feedbackCorrect,
			Title:  s.env.T(i18n.MsgCorrect),
			Detail: s.env.T(i18n.MsgIsReading, target.Glyph, target.Romaji),
		}
	}

	seq := s.seq
	return s, tea.Tick(FeedbackDelay, func(time.Time) tea.Msg {
		return feedbackDoneMsg{Seq: seq}
	})
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state: any key goes back.
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if !s.started {
		return s, nil
	}

	if s.advancing {
		if key == "enter" || key == "space" {
			return s, s.nextQuestion()
		}
		return s, nil
	}

	// Waiting for the evaluation of the last pick.
	if s.choice.Submitted {
		return s, nil
	}

	if key == "tab" {
		return s, s.startSession(s.syllabary.Other(), true)
	}

	var cmd tea.Cmd
	s.choice, cmd = s.choice.Update(msg)
	if option, ok := s.choice.Chosen(); ok {
		return s, tea.Batch(cmd, s.submit(option))
	}
	return s, cmd
}
