package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hirabolta/internal/i18n"
	"github.com/abhisek/hirabolta/internal/router"
	"github.com/abhisek/hirabolta/internal/screen"
	"github.com/abhisek/hirabolta/internal/session"
	"github.com/abhisek/hirabolta/internal/ui/layout"
	"github.com/abhisek/hirabolta/internal/ui/theme"
)

// SummaryScreen displays the session summary.
type SummaryScreen struct {
	env     *screen.Env
	summary *session.SessionSummary
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(env *screen.Env, summary *session.SessionSummary) *SummaryScreen {
	return &SummaryScreen{env: env, summary: summary}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return s.env.T(i18n.MsgSummaryTitle)
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: s.env.T(i18n.MsgHomeTitle)},
		{Key: "Esc", Description: s.env.T(i18n.MsgHintBack)},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			// The quiz screen was replaced by this one, so one pop goes home.
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	var b strings.Builder
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	// Title.
	b.WriteString(center.Foreground(theme.Primary).Bold(true).Render(s.env.T(i18n.MsgSummaryTitle)))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.TextDim).Render(sum.Syllabary.DisplayName()))
	b.WriteString("\n\n")

	// Duration.
	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(center.Foreground(theme.TextDim).Render(
		fmt.Sprintf("%s: %d:%02d", s.env.T(i18n.MsgSummaryTime), mins, secs)))
	b.WriteString("\n\n")

	// Score line.
	scoreLine := fmt.Sprintf("%s: %d/%d        %s: %.0f%%",
		s.env.T(i18n.MsgSummaryScore), sum.TotalCorrect, sum.TotalQuestions,
		s.env.T(i18n.MsgAccuracy), sum.Accuracy*100)
	b.WriteString(center.Foreground(theme.Text).Render(scoreLine))
	b.WriteString("\n\n")

	// Rows divider.
	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", max(min(width-8, 40), 0)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(s.env.T(i18n.MsgSummaryRows))))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	if len(sum.RowsCompleted) == 0 {
		b.WriteString(center.Foreground(theme.TextDim).Render(s.env.T(i18n.MsgSummaryNone)))
	} else {
		rows := make([]string, len(sum.RowsCompleted))
		for i, r := range sum.RowsCompleted {
			rows[i] = strings.ToUpper(r)
		}
		b.WriteString(center.Foreground(theme.Success).Bold(true).Render("✓ " + strings.Join(rows, "  ✓ ")))
	}
	b.WriteString("\n")

	return b.String()
}
