package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/hirabolta/internal/screen"
)

type initMsg string

// fakeScreen records its Init and the keys it received. Update returns a
// new value so the router must store what the screen hands back.
type fakeScreen struct {
	name string
	keys []string
}

func (s fakeScreen) Init() tea.Cmd {
	return func() tea.Msg { return initMsg(s.name) }
}

func (s fakeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if k, ok := msg.(tea.KeyPressMsg); ok {
		s.keys = append(append([]string(nil), s.keys...), k.String())
	}
	return s, nil
}

func (s fakeScreen) View(int, int) string { return s.name }
func (s fakeScreen) Title() string        { return s.name }

// runInit executes cmd and returns the screen name its Init reported.
func runInit(t *testing.T, cmd tea.Cmd) string {
	t.Helper()
	require.NotNil(t, cmd, "expected the screen's Init command")
	msg, ok := cmd().(initMsg)
	require.True(t, ok)
	return string(msg)
}

func TestRouter_QuizFlow(t *testing.T) {
	r := New(fakeScreen{name: "splash"})
	assert.Equal(t, "splash", r.View(80, 24))

	// The splash hands over to home without growing the stack.
	assert.Equal(t, "home", runInit(t, r.Update(ReplaceScreenMsg{Screen: fakeScreen{name: "home"}})))
	assert.Equal(t, 1, r.Depth())

	assert.Equal(t, "hiragana", runInit(t, r.Update(PushScreenMsg{Screen: fakeScreen{name: "hiragana"}})))
	assert.Equal(t, 2, r.Depth())

	// Ending a quiz swaps it for its summary, so back returns home.
	assert.Equal(t, "summary", runInit(t, r.Update(ReplaceScreenMsg{Screen: fakeScreen{name: "summary"}})))
	assert.Equal(t, 2, r.Depth())
	assert.Equal(t, "summary", r.Active().Title())

	assert.Nil(t, r.Update(PopScreenMsg{}))
	assert.Equal(t, 1, r.Depth())
	assert.Equal(t, "home", r.Active().Title())
}

func TestRouter_PopKeepsRoot(t *testing.T) {
	r := New(fakeScreen{name: "home"})
	r.Pop()
	r.Update(PopScreenMsg{})
	assert.Equal(t, 1, r.Depth())
	assert.Equal(t, "home", r.Active().Title())
}

func TestRouter_ForwardsToActiveScreen(t *testing.T) {
	r := New(fakeScreen{name: "home"})
	r.Push(fakeScreen{name: "katakana"})

	r.Update(tea.KeyPressMsg{Code: '3', Text: "3"})
	r.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	active, ok := r.Active().(fakeScreen)
	require.True(t, ok)
	assert.Equal(t, []string{"3", "enter"}, active.keys, "the updated screen value is kept")

	r.Pop()
	home := r.Active().(fakeScreen)
	assert.Empty(t, home.keys, "screens below the top see no input")
}

func TestRouter_ReplaceOnEmptyStack(t *testing.T) {
	r := &Router{}
	assert.Nil(t, r.Active())
	assert.Equal(t, "", r.View(80, 24))
	assert.Nil(t, r.Update(tea.KeyPressMsg{Code: tea.KeyEnter}))

	r.Replace(fakeScreen{name: "home"})
	assert.Equal(t, 1, r.Depth())
}
