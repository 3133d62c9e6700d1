package session

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/hirabolta/internal/kana"
	"github.com/abhisek/hirabolta/internal/quiz"
	"github.com/abhisek/hirabolta/internal/router"
	"github.com/abhisek/hirabolta/internal/screen"
	"github.com/abhisek/hirabolta/internal/screens/summary"
	sess "github.com/abhisek/hirabolta/internal/session"
	"github.com/abhisek/hirabolta/internal/settings"
)

func init() {
	FeedbackDelay = time.Millisecond
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// drain runs cmd and every command batched inside it, returning the messages.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// feed delivers every message produced by cmd back to the screen.
func feed(t *testing.T, s *SessionScreen, cmd tea.Cmd) tea.Cmd {
	t.Helper()
	var next []tea.Cmd
	for _, msg := range drain(cmd) {
		_, c := s.Update(msg)
		next = append(next, c)
	}
	return tea.Batch(next...)
}

// press sends a key and processes the command it triggers, returning the
// follow-up command.
func press(t *testing.T, s *SessionScreen, key tea.KeyPressMsg) tea.Cmd {
	t.Helper()
	_, cmd := s.Update(key)
	return feed(t, s, cmd)
}

func testEnv(t *testing.T, threshold int) *screen.Env {
	t.Helper()
	st := settings.Default()
	cfg := sess.DefaultConfig()
	cfg.Threshold = threshold
	svc := sess.NewService(cfg, quiz.NewSeededEngine(7), nil, nil, nil)
	t.Cleanup(func() { svc.Close(context.Background()) })
	return &screen.Env{Quiz: svc, Settings: &st}
}

func startedScreen(t *testing.T, threshold int) *SessionScreen {
	t.Helper()
	s := New(testEnv(t, threshold), kana.Hiragana)
	feed(t, s, s.Init())
	if !s.started {
		t.Fatalf("session not started: %q", s.errMsg)
	}
	return s
}

func digit(i int) rune {
	return rune('1' + i)
}

func wrongIndex(q quiz.QuizState) int {
	for i, o := range q.Options {
		if o != q.Target.Romaji {
			return i
		}
	}
	return -1
}

func TestSessionScreen_InitDrawsQuestion(t *testing.T) {
	s := startedScreen(t, 5)

	if s.question.Target.Row != "a" {
		t.Errorf("first question row = %q, want %q", s.question.Target.Row, "a")
	}
	if len(s.choice.Options) != quiz.DefaultOptionCount {
		t.Errorf("got %d options, want %d", len(s.choice.Options), quiz.DefaultOptionCount)
	}
	view := s.View(80, 30)
	if !strings.Contains(view, s.question.Target.Glyph) {
		t.Error("view does not show the target glyph")
	}
	if !strings.Contains(view, "Row A") {
		t.Error("view does not show the current row")
	}
}

func TestSessionScreen_CorrectAnswerAdvances(t *testing.T) {
	s := startedScreen(t, 5)
	first := s.question

	tick := press(t, s, keyPress(digit(first.CorrectIndex())))
	if !s.advancing {
		t.Fatal("expected advancing after a correct answer")
	}
	if s.feedback.Kind != feedbackCorrect {
		t.Errorf("feedback kind = %v, want correct", s.feedback.Kind)
	}
	if got := s.env.Quiz.Record(kana.Hiragana).CorrectCount; got != 1 {
		t.Errorf("correct count = %d, want 1", got)
	}

	// The feedback tick draws the next question.
	feed(t, s, feed(t, s, tick))
	if s.advancing {
		t.Error("expected a fresh question after the feedback delay")
	}
	if s.feedback.Kind != feedbackNone {
		t.Error("expected feedback cleared on the next question")
	}
}

func TestSessionScreen_WrongAnswerStrikesOption(t *testing.T) {
	s := startedScreen(t, 5)
	q := s.question
	wrong := wrongIndex(q)

	press(t, s, keyPress(digit(wrong)))

	if s.advancing {
		t.Error("wrong answer must not advance")
	}
	if s.feedback.Kind != feedbackWrong {
		t.Errorf("feedback kind = %v, want wrong", s.feedback.Kind)
	}
	if !s.choice.Struck[wrong] {
		t.Error("expected the wrong option to be struck")
	}
	if s.choice.Submitted {
		t.Error("expected the options to accept another pick")
	}
	if s.question.Target != q.Target {
		t.Error("the same character must stay on screen")
	}
	if got := s.env.Quiz.Record(kana.Hiragana); got.CorrectCount != 0 || got.CurrentRow != "a" {
		t.Errorf("wrong answer changed progress: %+v", got)
	}
	if !strings.Contains(s.View(80, 30), "Try again") {
		t.Error("expected the try again toast")
	}
}

func TestSessionScreen_RowCompletionFeedback(t *testing.T) {
	s := startedScreen(t, 1)

	press(t, s, keyPress(digit(s.question.CorrectIndex())))

	if s.feedback.Kind != feedbackRowComplete {
		t.Fatalf("feedback kind = %v, want row complete", s.feedback.Kind)
	}
	if got := s.env.Quiz.Record(kana.Hiragana).CurrentRow; got != "h" {
		t.Errorf("current row = %q, want %q", got, "h")
	}
	if !strings.Contains(s.feedback.Detail, "H") {
		t.Errorf("row detail = %q, want the new row", s.feedback.Detail)
	}
}

func TestSessionScreen_EnterSkipsFeedbackDelay(t *testing.T) {
	s := startedScreen(t, 5)
	press(t, s, keyPress(digit(s.question.CorrectIndex())))
	seq := s.seq

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	feed(t, s, cmd)

	if s.advancing {
		t.Error("expected the next question after enter")
	}
	if s.seq == seq {
		t.Error("expected a new question sequence")
	}

	// A stale tick from the skipped feedback is ignored.
	before := s.question
	s.Update(feedbackDoneMsg{Seq: seq})
	if s.question.Target != before.Target || s.advancing {
		t.Error("stale feedbackDoneMsg changed the screen")
	}
}

func TestSessionScreen_ArrowsAndEnterSubmit(t *testing.T) {
	s := startedScreen(t, 5)
	target := s.question.CorrectIndex()

	for i := 0; i < target; i++ {
		s.Update(specialKey(tea.KeyDown))
	}
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	feed(t, s, cmd)

	if !s.advancing {
		t.Error("expected arrows + enter to submit the correct option")
	}
}

func TestSessionScreen_TabSwitchesSyllabary(t *testing.T) {
	s := startedScreen(t, 5)

	_, cmd := s.Update(specialKey(tea.KeyTab))
	feed(t, s, cmd)

	if s.syllabary != kana.Katakana {
		t.Errorf("syllabary = %q, want katakana", s.syllabary)
	}
	if s.question.Syllabary != kana.Katakana {
		t.Errorf("question syllabary = %q, want katakana", s.question.Syllabary)
	}
	if s.Title() != "Katakana" {
		t.Errorf("Title = %q, want Katakana", s.Title())
	}
}

func TestSessionScreen_BackShowsSummary(t *testing.T) {
	s := startedScreen(t, 5)
	press(t, s, keyPress(digit(s.question.CorrectIndex())))

	msg := s.HandleBack()()
	replace, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("HandleBack returned %T, want ReplaceScreenMsg", msg)
	}
	if _, ok := replace.Screen.(*summary.SummaryScreen); !ok {
		t.Errorf("replacement screen is %T, want summary", replace.Screen)
	}
	if s.env.Quiz.State() != nil {
		t.Error("expected the session to be ended")
	}
}

func TestSessionScreen_GuestNotice(t *testing.T) {
	s := startedScreen(t, 5)
	if !strings.Contains(s.View(80, 30), "Guest mode") {
		t.Error("expected the guest mode notice")
	}
}

func TestSessionScreen_KeyHints(t *testing.T) {
	s := startedScreen(t, 5)
	hints := s.KeyHints()
	if len(hints) != 3 {
		t.Fatalf("KeyHints length = %d, want 3", len(hints))
	}
	if hints[0].Key != "1-6" {
		t.Errorf("answer hint key = %q, want option range", hints[0].Key)
	}
}
