package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/hirabolta/internal/i18n"
	"github.com/abhisek/hirabolta/internal/kana"
	"github.com/abhisek/hirabolta/internal/ui/components"
	"github.com/abhisek/hirabolta/internal/ui/theme"
)

func rowLabel(row string) string {
	return strings.ToUpper(row)
}

// renderQuestionView renders the active question display.
func (s *SessionScreen) renderQuestionView(width, height int) string {
	var b strings.Builder
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	// Syllabary tabs.
	b.WriteString(center.Render(s.renderTabs()))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n")

	// Row progress.
	rec := s.env.Quiz.Record(s.syllabary)
	threshold := s.env.Quiz.Threshold()
	rowLine := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(s.env.T(i18n.MsgCurrentRow, rowLabel(rec.CurrentRow)))
	b.WriteString(center.Render(rowLine))
	b.WriteString("\n")
	bar := components.NewStepBar(rec.CorrectCount, threshold, min(width-8, 40))
	b.WriteString(center.Render(bar.View()))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.TextDim).Render(
		s.env.T(i18n.MsgRowProgress, rec.CorrectCount, threshold)))
	b.WriteString("\n\n")

	// Character card.
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Glyph.Render(s.question.Target.Glyph)))
	b.WriteString("\n\n")

	b.WriteString(center.Foreground(theme.Text).Bold(true).Render(s.env.T(i18n.MsgPickReading)))
	b.WriteString("\n\n")

	// Options.
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choice.View()))
	b.WriteString("\n")

	// Feedback toast.
	if fb := s.renderFeedback(width); fb != "" {
		b.WriteString(fb)
		b.WriteString("\n")
	}

	if s.env.Quiz.Learner() == "" {
		b.WriteString("\n")
		b.WriteString(center.Inherit(theme.Hint).Render(s.env.T(i18n.MsgGuestMode)))
	}

	return b.String()
}

// renderTabs renders the Hiragana/Katakana switch with the active one marked.
func (s *SessionScreen) renderTabs() string {
	tabs := make([]string, 0, 2)
	for _, syl := range kana.AllSyllabaries() {
		if syl == s.syllabary {
			tabs = append(tabs, theme.Selected.Render("[ "+syl.DisplayName()+" ]"))
		} else {
			tabs = append(tabs, theme.Unselected.Render("  "+syl.DisplayName()+"  "))
		}
	}
	return strings.Join(tabs, "  ")
}

// renderFeedback renders the toast for the last answer.
func (s *SessionScreen) renderFeedback(width int) string {
	if s.feedback.Kind == feedbackNone {
		return ""
	}

	style := theme.Correct
	switch s.feedback.Kind {
	case feedbackWrong:
		style = theme.Incorrect
	case feedbackRowComplete, feedbackAllComplete:
		style = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(style.Render(s.feedback.Title)))
	if s.feedback.Detail != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(s.feedback.Detail))
	}
	return b.String()
}

// renderLoading renders the loading state.
func renderLoading(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Preparing your session...")
}

// renderError renders an error message.
func renderError(width, height int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}
