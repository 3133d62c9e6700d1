package app

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/hirabolta/internal/quiz"
	"github.com/abhisek/hirabolta/internal/router"
	"github.com/abhisek/hirabolta/internal/screen"
	"github.com/abhisek/hirabolta/internal/screens/home"
	sess "github.com/abhisek/hirabolta/internal/session"
	"github.com/abhisek/hirabolta/internal/settings"
)

func testModel(t *testing.T) AppModel {
	t.Helper()
	st := settings.Default()
	svc := sess.NewService(sess.DefaultConfig(), quiz.NewSeededEngine(5), nil, nil, nil)
	t.Cleanup(func() { svc.Close(context.Background()) })
	m := newAppModel(&screen.Env{Quiz: svc, Settings: &st})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(AppModel)
}

// skipSplash presses a key on the welcome screen and applies the replace.
func skipSplash(t *testing.T, m AppModel) AppModel {
	t.Helper()
	updated, cmd := m.Update(tea.KeyPressMsg{Code: 'a', Text: "a"})
	m = updated.(AppModel)
	if cmd == nil {
		t.Fatal("expected transition command")
	}
	updated, _ = m.Update(cmd())
	return updated.(AppModel)
}

func TestApp_StartsOnSplash(t *testing.T) {
	m := testModel(t)
	if m.router.Active().Title() != "" {
		t.Errorf("first screen title = %q, want the untitled splash", m.router.Active().Title())
	}
	m = skipSplash(t, m)
	if _, ok := m.router.Active().(*home.HomeScreen); !ok {
		t.Fatalf("expected home screen, got %T", m.router.Active())
	}
	if m.router.Depth() != 1 {
		t.Errorf("depth = %d, want 1", m.router.Depth())
	}
}

func TestApp_HeaderShowsGuest(t *testing.T) {
	m := skipSplash(t, testModel(t))
	out := m.render()
	if !strings.Contains(out, "(guest)") {
		t.Error("header should mark guest mode")
	}
	if !strings.Contains(out, "Hirabolta") {
		t.Error("header should carry the app name")
	}
}

func TestApp_EscPopsPushedScreen(t *testing.T) {
	m := skipSplash(t, testModel(t))

	// Progress is the third menu item.
	for range 2 {
		updated, _ := m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
		m = updated.(AppModel)
	}
	updated, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	m = updated.(AppModel)
	updated, _ = m.Update(cmd())
	m = updated.(AppModel)
	if m.router.Depth() != 2 {
		t.Fatalf("depth = %d, want 2", m.router.Depth())
	}

	updated, cmd = m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	m = updated.(AppModel)
	if cmd == nil {
		t.Fatal("esc should produce a command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Fatal("esc should pop the progress screen")
	}
	updated, _ = m.Update(router.PopScreenMsg{})
	m = updated.(AppModel)
	if m.router.Depth() != 1 {
		t.Errorf("depth = %d after esc, want 1", m.router.Depth())
	}
}

func TestApp_EscOnRootIsNoop(t *testing.T) {
	m := skipSplash(t, testModel(t))
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd != nil {
		t.Error("esc on the root screen should do nothing")
	}
}

func TestApp_SaveFailureNotice(t *testing.T) {
	m := skipSplash(t, testModel(t))
	updated, _ := m.Update(saveFailedMsg{Err: errors.New("disk full")})
	m = updated.(AppModel)
	if !strings.Contains(m.render(), "could not be saved") {
		t.Error("header should show the save failure")
	}

	updated, _ = m.Update(screen.LearnerChangedMsg{Learner: ""})
	m = updated.(AppModel)
	if strings.Contains(m.render(), "could not be saved") {
		t.Error("switching learner should clear the notice")
	}
}

func TestApp_GuestHasNoSaveListener(t *testing.T) {
	m := testModel(t)
	if cmd := m.listenSaveErrors(); cmd != nil {
		t.Error("guests have no writer to listen to")
	}
}

func TestApp_CtrlCQuits(t *testing.T) {
	m := testModel(t)
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("ctrl+c should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected QuitMsg")
	}
}
