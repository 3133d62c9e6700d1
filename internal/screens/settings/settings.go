// Package settings is the preferences screen: characters per row, theme,
// language, learner name and progress resets.
package settings

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/hirabolta/internal/i18n"
	"github.com/abhisek/hirabolta/internal/kana"
	"github.com/abhisek/hirabolta/internal/router"
	"github.com/abhisek/hirabolta/internal/screen"
	appsettings "github.com/abhisek/hirabolta/internal/settings"
	"github.com/abhisek/hirabolta/internal/ui/components"
	"github.com/abhisek/hirabolta/internal/ui/layout"
	"github.com/abhisek/hirabolta/internal/ui/theme"
)

type field int

const (
	fieldRowSize field = iota
	fieldTheme
	fieldLanguage
	fieldLearner
	fieldResetHiragana
	fieldResetKatakana
	fieldCount
)

// learnerMaxLen bounds the learner name input.
const learnerMaxLen = 32

type settingsSavedMsg struct {
	Err error
}

type learnerSwitchedMsg struct {
	Learner string
	Prefs   *appsettings.Settings // stored preferences of the new learner, if any
	Err     error
}

type resetDoneMsg struct {
	Syllabary kana.Syllabary
	Err       error
}

// SettingsScreen edits the shared settings in place and persists every
// change.
type SettingsScreen struct {
	env        *screen.Env
	selected   field
	confirming field // reset row awaiting a second enter, or -1
	editing    bool
	input      components.TextInput
	status     string
	statusErr  bool
}

var _ screen.Screen = (*SettingsScreen)(nil)
var _ screen.KeyHintProvider = (*SettingsScreen)(nil)
var _ screen.BackHandler = (*SettingsScreen)(nil)

// New creates a new SettingsScreen.
func New(env *screen.Env) *SettingsScreen {
	return &SettingsScreen{
		env:        env,
		confirming: -1,
		input:      components.NewTextInput("", env.Settings.Learner, learnerMaxLen),
	}
}

func (s *SettingsScreen) Init() tea.Cmd {
	return nil
}

func (s *SettingsScreen) Title() string {
	return s.env.T(i18n.MsgSettingsTitle)
}

func (s *SettingsScreen) KeyHints() []layout.KeyHint {
	if s.editing {
		return []layout.KeyHint{
			{Key: "Enter", Description: s.env.T(i18n.MsgHintMenu)},
			{Key: "Esc", Description: s.env.T(i18n.MsgHintBack)},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: s.env.T(i18n.MsgHintNavigate)},
		{Key: "←→", Description: s.env.T(i18n.MsgHintSettings)},
		{Key: "Enter", Description: s.env.T(i18n.MsgHintEdit)},
		{Key: "Esc", Description: s.env.T(i18n.MsgHintBack)},
	}
}

// HandleBack cancels a learner edit, otherwise leaves the screen.
func (s *SettingsScreen) HandleBack() tea.Cmd {
	if s.editing {
		s.editing = false
		s.input.Blur()
		s.input.Model.SetValue(s.env.Settings.Learner)
		return nil
	}
	return func() tea.Msg { return router.PopScreenMsg{} }
}

func (s *SettingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case settingsSavedMsg:
		if msg.Err != nil {
			s.env.Log().Warn("settings not saved", zap.Error(msg.Err))
			s.setStatus(s.env.T(i18n.MsgSaveFailed), true)
		} else {
			s.setStatus(s.env.T(i18n.MsgSettingsSaved), false)
		}
		return s, nil

	case learnerSwitchedMsg:
		return s.handleLearnerSwitched(msg)

	case resetDoneMsg:
		if msg.Err != nil {
			s.setStatus(msg.Err.Error(), true)
		} else {
			s.setStatus(s.env.T(i18n.MsgResetDone)+": "+msg.Syllabary.DisplayName(), false)
		}
		return s, nil

	case tea.KeyMsg:
		if s.editing {
			return s.handleEditKey(msg)
		}
		return s.handleKey(msg)
	}

	if s.editing {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *SettingsScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()
	if key != "enter" {
		s.confirming = -1
	}

	switch key {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < fieldCount-1 {
			s.selected++
		}
	case "left", "h":
		return s, s.adjust(-1)
	case "right", "l":
		return s, s.adjust(+1)
	case "enter":
		return s, s.activate()
	}
	return s, nil
}

func (s *SettingsScreen) handleEditKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if msg.String() != "enter" {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	s.editing = false
	s.input.Blur()
	name := strings.TrimSpace(s.input.Value())
	s.input.Submit(true)
	if name == s.env.Settings.Learner {
		return s, nil
	}
	return s, s.switchLearner(name)
}

// adjust moves the selected value by delta and applies it.
func (s *SettingsScreen) adjust(delta int) tea.Cmd {
	st := s.env.Settings
	switch s.selected {
	case fieldRowSize:
		n := appsettings.NextRowSize(st.CharactersPerRow, delta)
		if n == st.CharactersPerRow {
			return nil
		}
		st.CharactersPerRow = n
		s.env.Quiz.SetThreshold(n)
	case fieldTheme:
		if st.Theme == appsettings.ThemeDark {
			st.Theme = appsettings.ThemeLight
		} else {
			st.Theme = appsettings.ThemeDark
		}
		theme.Apply(st.Theme)
	case fieldLanguage:
		langs := i18n.Languages()
		i := slices.Index(langs, st.Lang())
		i = (i + delta + len(langs)) % len(langs)
		st.Language = string(langs[i])
	default:
		return nil
	}
	return tea.Batch(s.save(), s.changed())
}

// activate handles enter on the selected row.
func (s *SettingsScreen) activate() tea.Cmd {
	switch s.selected {
	case fieldLearner:
		s.editing = true
		return s.input.Focus()
	case fieldResetHiragana, fieldResetKatakana:
		if s.confirming != s.selected {
			s.confirming = s.selected
			s.setStatus(s.env.T(i18n.MsgResetConfirm), false)
			return nil
		}
		s.confirming = -1
		syl := kana.Hiragana
		if s.selected == fieldResetKatakana {
			syl = kana.Katakana
		}
		return s.reset(syl)
	case fieldRowSize, fieldTheme, fieldLanguage:
		return s.adjust(+1)
	}
	return nil
}

func (s *SettingsScreen) changed() tea.Cmd {
	snapshot := *s.env.Settings
	return func() tea.Msg { return screen.SettingsChangedMsg{Settings: snapshot} }
}

// save writes the current settings to the store and the config file.
func (s *SettingsScreen) save() tea.Cmd {
	snapshot := *s.env.Settings
	prefs := s.env.Prefs
	path := s.env.ConfigPath
	return func() tea.Msg {
		var errs []error
		if prefs != nil {
			errs = append(errs, prefs.Save(context.Background(), snapshot))
		}
		if path != "" {
			errs = append(errs, appsettings.SaveFile(path, snapshot))
		}
		return settingsSavedMsg{Err: errors.Join(errs...)}
	}
}

func (s *SettingsScreen) switchLearner(name string) tea.Cmd {
	quizSvc := s.env.Quiz
	prefs := s.env.Prefs
	base := *s.env.Settings
	return func() tea.Msg {
		ctx := context.Background()
		err := quizSvc.SwitchLearner(ctx, name)
		msg := learnerSwitchedMsg{Learner: name}
		if prefs != nil {
			st, found, lerr := prefs.Load(ctx, name, base)
			if lerr != nil {
				err = errors.Join(err, lerr)
			} else if found {
				msg.Prefs = &st
			}
		}
		msg.Err = err
		return msg
	}
}

func (s *SettingsScreen) handleLearnerSwitched(msg learnerSwitchedMsg) (screen.Screen, tea.Cmd) {
	st := s.env.Settings
	st.Learner = msg.Learner
	if msg.Prefs != nil {
		st.CharactersPerRow = msg.Prefs.CharactersPerRow
		st.Theme = msg.Prefs.Theme
		st.Language = msg.Prefs.Language
		s.env.Quiz.SetThreshold(st.CharactersPerRow)
		theme.Apply(st.Theme)
	}
	if msg.Err != nil {
		s.env.Log().Warn("learner switch incomplete", zap.String("learner", msg.Learner), zap.Error(msg.Err))
	}
	learner := msg.Learner
	return s, tea.Batch(
		s.save(),
		s.changed(),
		func() tea.Msg { return screen.LearnerChangedMsg{Learner: learner} },
	)
}

func (s *SettingsScreen) reset(syl kana.Syllabary) tea.Cmd {
	quizSvc := s.env.Quiz
	return func() tea.Msg {
		_, err := quizSvc.ResetProgress(context.Background(), syl)
		return resetDoneMsg{Syllabary: syl, Err: err}
	}
}

func (s *SettingsScreen) setStatus(text string, isErr bool) {
	s.status = text
	s.statusErr = isErr
}

func (s *SettingsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	st := s.env.Settings

	rows := []struct {
		label string
		value string
	}{
		{s.env.T(i18n.MsgRowSize), fmt.Sprintf("◀ %2d ▶", st.CharactersPerRow)},
		{s.env.T(i18n.MsgTheme), "◀ " + s.themeName(st.Theme) + " ▶"},
		{s.env.T(i18n.MsgLanguage), "◀ " + st.Lang().DisplayName() + " ▶"},
		{s.env.T(i18n.MsgLearner), s.learnerValue()},
		{s.env.T(i18n.MsgResetHiragana), ""},
		{s.env.T(i18n.MsgResetKatakana), ""},
	}

	var lines []string
	for i, r := range rows {
		prefix := "  "
		style := theme.Unselected
		if field(i) == s.selected {
			prefix = "▸ "
			style = theme.Selected
		}
		label := fmt.Sprintf("%s%-24s", prefix, r.label)
		line := style.Render(label)
		if r.value != "" {
			line += "  " + lipgloss.NewStyle().Foreground(theme.Text).Render(r.value)
		}
		if field(i) == s.confirming {
			line += "  " + theme.Incorrect.Render("!")
		}
		lines = append(lines, line)
	}

	body := strings.Join(lines, "\n")
	if s.status != "" {
		style := theme.Hint
		if s.statusErr {
			style = theme.Incorrect
		}
		body += "\n\n" + style.Render(s.status)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		components.Card(body, cw))
}

func (s *SettingsScreen) learnerValue() string {
	if s.editing {
		return s.input.View()
	}
	if s.env.Settings.Learner == "" {
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render(s.env.T(i18n.MsgGuestLabel))
	}
	return s.env.Settings.Learner
}

func (s *SettingsScreen) themeName(name string) string {
	if name == appsettings.ThemeLight {
		return s.env.T(i18n.MsgThemeLight)
	}
	return s.env.T(i18n.MsgThemeDark)
}
