package settings

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/hirabolta/internal/i18n"
	"github.com/abhisek/hirabolta/internal/kana"
	"github.com/abhisek/hirabolta/internal/quiz"
	"github.com/abhisek/hirabolta/internal/router"
	"github.com/abhisek/hirabolta/internal/screen"
	sess "github.com/abhisek/hirabolta/internal/session"
	appsettings "github.com/abhisek/hirabolta/internal/settings"
	"github.com/abhisek/hirabolta/internal/ui/theme"
)

type fakePrefs struct {
	stored map[string]appsettings.Settings
	saved  []appsettings.Settings
	err    error
}

func (f *fakePrefs) Load(_ context.Context, learnerID string, base appsettings.Settings) (appsettings.Settings, bool, error) {
	st, ok := f.stored[learnerID]
	if !ok {
		return base, false, nil
	}
	return st, true, nil
}

func (f *fakePrefs) Save(_ context.Context, s appsettings.Settings) error {
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, s)
	return nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

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

// press sends a key, delivers the resulting messages back to the screen and
// returns them.
func press(s *SettingsScreen, key tea.KeyPressMsg) []tea.Msg {
	_, cmd := s.Update(key)
	var out []tea.Msg
	for _, msg := range drain(cmd) {
		out = append(out, msg)
		_, next := s.Update(msg)
		out = append(out, drain(next)...)
	}
	return out
}

func testEnv(t *testing.T) (*screen.Env, *fakePrefs) {
	t.Helper()
	st := appsettings.Default()
	svc := sess.NewService(sess.DefaultConfig(), quiz.NewSeededEngine(3), nil, nil, nil)
	t.Cleanup(func() { svc.Close(context.Background()) })
	prefs := &fakePrefs{stored: map[string]appsettings.Settings{}}
	t.Cleanup(func() { theme.Apply(theme.NameDark) })
	return &screen.Env{
		Quiz:       svc,
		Settings:   &st,
		Prefs:      prefs,
		ConfigPath: filepath.Join(t.TempDir(), "config.yaml"),
	}, prefs
}

func TestSettingsScreen_RowSize(t *testing.T) {
	env, prefs := testEnv(t)
	s := New(env)

	press(s, specialKey(tea.KeyRight))
	if env.Settings.CharactersPerRow != 15 {
		t.Errorf("CharactersPerRow = %d, want 15", env.Settings.CharactersPerRow)
	}
	if env.Quiz.Threshold() != env.Settings.CharactersPerRow {
		t.Errorf("threshold = %d, want %d", env.Quiz.Threshold(), env.Settings.CharactersPerRow)
	}
	if len(prefs.saved) != 1 {
		t.Fatalf("saved %d times, want 1", len(prefs.saved))
	}

	loaded, err := appsettings.LoadFile(env.ConfigPath, appsettings.Default())
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if loaded.CharactersPerRow != env.Settings.CharactersPerRow {
		t.Errorf("config file row size = %d, want %d", loaded.CharactersPerRow, env.Settings.CharactersPerRow)
	}
	if !strings.Contains(s.View(80, 24), "Settings saved") {
		t.Error("expected saved notice")
	}
}

func TestSettingsScreen_RowSizeCycles(t *testing.T) {
	env, prefs := testEnv(t)
	s := New(env)

	press(s, specialKey(tea.KeyLeft))
	if env.Settings.CharactersPerRow != 25 {
		t.Errorf("CharactersPerRow = %d, want 25", env.Settings.CharactersPerRow)
	}
	if env.Quiz.Threshold() != 25 {
		t.Errorf("threshold = %d, want 25", env.Quiz.Threshold())
	}
	press(s, specialKey(tea.KeyRight))
	if env.Settings.CharactersPerRow != 5 {
		t.Errorf("CharactersPerRow = %d, want 5 after wrapping", env.Settings.CharactersPerRow)
	}
	if len(prefs.saved) != 2 {
		t.Errorf("saved %d times, want 2", len(prefs.saved))
	}
}

func TestSettingsScreen_Theme(t *testing.T) {
	env, _ := testEnv(t)
	s := New(env)

	press(s, specialKey(tea.KeyDown))
	press(s, specialKey(tea.KeyRight))
	if env.Settings.Theme != appsettings.ThemeLight {
		t.Errorf("Theme = %q, want %q", env.Settings.Theme, appsettings.ThemeLight)
	}
	if theme.Current() != theme.NameLight {
		t.Errorf("active palette = %q, want %q", theme.Current(), theme.NameLight)
	}
}

func TestSettingsScreen_Language(t *testing.T) {
	env, _ := testEnv(t)
	s := New(env)

	press(s, specialKey(tea.KeyDown))
	press(s, specialKey(tea.KeyDown))
	msgs := press(s, specialKey(tea.KeyRight))
	if env.Settings.Lang() != i18n.French {
		t.Errorf("Language = %q, want fr", env.Settings.Language)
	}
	if s.Title() != "Paramètres" {
		t.Errorf("Title = %q, want localized title", s.Title())
	}

	var changed bool
	for _, msg := range msgs {
		if _, ok := msg.(screen.SettingsChangedMsg); ok {
			changed = true
		}
	}
	if !changed {
		t.Error("expected SettingsChangedMsg")
	}
}

func TestSettingsScreen_SaveError(t *testing.T) {
	env, prefs := testEnv(t)
	prefs.err = errors.New("disk full")
	s := New(env)

	press(s, specialKey(tea.KeyRight))
	if !strings.Contains(s.View(80, 24), "could not be saved") {
		t.Error("expected save failure notice")
	}
}

func TestSettingsScreen_SwitchLearner(t *testing.T) {
	env, prefs := testEnv(t)
	prefs.stored["aiko"] = appsettings.Settings{
		CharactersPerRow: 15,
		Theme:            appsettings.ThemeDark,
		Language:         string(i18n.English),
		Learner:          "aiko",
	}
	s := New(env)
	s.selected = fieldLearner

	// The focus command blinks the cursor, so it is not run.
	s.Update(specialKey(tea.KeyEnter))
	if !s.editing {
		t.Fatal("expected learner edit mode")
	}
	for _, r := range "aiko" {
		s.Update(keyPress(r))
	}
	msgs := press(s, specialKey(tea.KeyEnter))

	if s.editing {
		t.Error("edit mode should end on enter")
	}
	if env.Quiz.Learner() != "aiko" {
		t.Errorf("service learner = %q, want aiko", env.Quiz.Learner())
	}
	if env.Settings.Learner != "aiko" {
		t.Errorf("settings learner = %q, want aiko", env.Settings.Learner)
	}
	if env.Settings.CharactersPerRow != 15 {
		t.Errorf("stored preferences not applied: row size %d", env.Settings.CharactersPerRow)
	}
	if env.Quiz.Threshold() != 15 {
		t.Errorf("threshold = %d, want 15", env.Quiz.Threshold())
	}

	var changed bool
	for _, msg := range msgs {
		if m, ok := msg.(screen.LearnerChangedMsg); ok && m.Learner == "aiko" {
			changed = true
		}
	}
	if !changed {
		t.Error("expected LearnerChangedMsg")
	}
}

func TestSettingsScreen_EditCancelled(t *testing.T) {
	env, _ := testEnv(t)
	s := New(env)
	s.selected = fieldLearner

	s.Update(specialKey(tea.KeyEnter))
	s.Update(keyPress('x'))
	if cmd := s.HandleBack(); cmd != nil {
		t.Error("cancelling an edit should not leave the screen")
	}
	if s.editing {
		t.Error("edit mode should end on esc")
	}
	if env.Quiz.Learner() != "" {
		t.Errorf("learner changed to %q", env.Quiz.Learner())
	}

	cmd := s.HandleBack()
	if cmd == nil {
		t.Fatal("expected pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestSettingsScreen_ResetNeedsConfirmation(t *testing.T) {
	env, _ := testEnv(t)
	env.Quiz.SetThreshold(1)
	ctx := context.Background()
	q, err := env.Quiz.StartSession(ctx, kana.Hiragana)
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	if _, err := env.Quiz.SubmitAnswer(ctx, q, q.Target.Romaji); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	env.Quiz.EndSession(ctx)
	if env.Quiz.Record(kana.Hiragana).CurrentRow == kana.FirstRow(kana.For(kana.Hiragana)) {
		t.Fatal("expected progress past the first row")
	}

	s := New(env)
	s.selected = fieldResetHiragana

	press(s, specialKey(tea.KeyEnter))
	if env.Quiz.Record(kana.Hiragana).CurrentRow == kana.FirstRow(kana.For(kana.Hiragana)) {
		t.Error("first enter should only ask for confirmation")
	}
	if !strings.Contains(s.View(80, 24), "confirm") {
		t.Error("expected confirmation prompt")
	}

	press(s, specialKey(tea.KeyEnter))
	if got := env.Quiz.Record(kana.Hiragana).CurrentRow; got != kana.FirstRow(kana.For(kana.Hiragana)) {
		t.Errorf("CurrentRow = %q after reset", got)
	}
	if !strings.Contains(s.View(80, 24), "Progress reset") {
		t.Error("expected reset notice")
	}
}

func TestSettingsScreen_ResetConfirmationCancelledByMove(t *testing.T) {
	env, _ := testEnv(t)
	s := New(env)
	s.selected = fieldResetKatakana

	press(s, specialKey(tea.KeyEnter))
	press(s, specialKey(tea.KeyUp))
	if s.confirming != -1 {
		t.Error("moving should cancel a pending reset")
	}
}
