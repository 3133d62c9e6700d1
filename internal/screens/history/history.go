package history

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/hirabolta/internal/i18n"
	"github.com/abhisek/hirabolta/internal/kana"
	"github.com/abhisek/hirabolta/internal/router"
	"github.com/abhisek/hirabolta/internal/screen"
	"github.com/abhisek/hirabolta/internal/store"
	"github.com/abhisek/hirabolta/internal/ui/layout"
	"github.com/abhisek/hirabolta/internal/ui/theme"
)

type historyLoadedMsg struct {
	Stats store.Stats
	Err   error
}

// HistoryScreen shows row progress per syllabary and the answer history.
type HistoryScreen struct {
	env      *screen.Env
	stats    store.Stats
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(env *screen.Env) *HistoryScreen {
	return &HistoryScreen{
		env:      env,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	source := s.env.Stats
	learner := s.env.Quiz.Learner()
	return func() tea.Msg {
		if source == nil || learner == "" {
			return historyLoadedMsg{}
		}
		st, err := source.Stats(context.Background(), learner, time.Local)
		return historyLoadedMsg{Stats: st, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return s.env.T(i18n.MsgProgressTitle)
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: s.env.T(i18n.MsgHintMenu)},
		{Key: "↑↓", Description: s.env.T(i18n.MsgHintNavigate)},
		{Key: "Esc", Description: s.env.T(i18n.MsgHintBack)},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.stats = msg.Stats
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(kana.AllSyllabaries())-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading progress...")
	}

	var b strings.Builder
	b.WriteString("\n")

	threshold := s.env.Quiz.Threshold()
	for i, syl := range kana.AllSyllabaries() {
		rec := s.env.Quiz.Record(syl)
		ans := s.stats.Answers[syl]

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		status := s.env.T(i18n.MsgCurrentRow, strings.ToUpper(rec.CurrentRow)) + "  " +
			s.env.T(i18n.MsgRowProgress, rec.CorrectCount, threshold)
		if s.env.Quiz.IsComplete(syl) {
			status = s.env.T(i18n.MsgCompleted)
		}
		line := fmt.Sprintf("%s%-9s  %s", prefix, syl.DisplayName(), status)
		if ans.Total > 0 {
			line += fmt.Sprintf("  ·  %s %.0f%%", s.env.T(i18n.MsgAccuracy), ans.Accuracy()*100)
		}

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")

		// Show the row chart.
		if s.expanded[i] {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderRows(syl)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderTotals()))
	return b.String()
}

// renderRows lists every row of syl: done rows in green, the current row
// highlighted, later rows dimmed.
func (s *HistoryScreen) renderRows(syl kana.Syllabary) string {
	c := kana.For(syl)
	rec := s.env.Quiz.Record(syl)
	current := kana.RowIndex(c, rec.CurrentRow)
	complete := s.env.Quiz.IsComplete(syl)

	var lines []string
	for i, row := range kana.RowsOf(c) {
		chars := kana.CharactersInRow(c, row)
		glyphs := make([]string, len(chars))
		for j, ch := range chars {
			glyphs[j] = ch.Glyph
		}
		line := fmt.Sprintf("    %-3s %s", strings.ToUpper(row), strings.Join(glyphs, " "))

		var style lipgloss.Style
		switch {
		case i < current || complete:
			style = theme.Correct
			line += "  ✓"
		case i == current:
			style = theme.Selected
		default:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		}
		lines = append(lines, style.Render(line))
	}
	return strings.Join(lines, "\n")
}

func (s *HistoryScreen) renderTotals() string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	if s.env.Quiz.Learner() == "" {
		return dim.Italic(true).Render(s.env.T(i18n.MsgGuestMode))
	}
	total := s.stats.Total()
	if total.Total == 0 {
		return dim.Italic(true).Render(s.env.T(i18n.MsgNoAnswersYet))
	}

	parts := []string{
		fmt.Sprintf("%s: %d", s.env.T(i18n.MsgTotalAnswers), total.Total),
		fmt.Sprintf("%s: %.0f%%", s.env.T(i18n.MsgAccuracy), total.Accuracy()*100),
		fmt.Sprintf("%s: %d", s.env.T(i18n.MsgPracticeDays), s.stats.PracticeDays),
	}
	out := lipgloss.NewStyle().Foreground(theme.Text).Render(strings.Join(parts, "    "))
	if !s.stats.LastPractice.IsZero() {
		out += "\n" + dim.Render(fmt.Sprintf("%s: %s",
			s.env.T(i18n.MsgLastPractice), s.stats.LastPractice.Format("Jan 02, 2006")))
	}
	return out
}
