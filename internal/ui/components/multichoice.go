package components

import (
	"fmt"
	"strconv"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hirabolta/internal/ui/theme"
)

// MultiChoice is a multiple-choice selector component. Options are labelled
// 1..N and can be picked with the number keys or the arrows plus enter.
type MultiChoice struct {
	Question     string
	Options      []string
	CorrectIndex int
	Selected     int
	Submitted    bool
	ChosenIndex  int

	// Struck marks options already tried and rejected.
	Struck map[int]bool
}

// NewMultiChoice creates a new multiple-choice component. correctIndex may be
// -1 when the caller does not want the correct option highlighted on reveal.
func NewMultiChoice(question string, options []string, correctIndex int) MultiChoice {
	return MultiChoice{
		Question:     question,
		Options:      options,
		CorrectIndex: correctIndex,
		Selected:     0,
		Submitted:    false,
		ChosenIndex:  -1,
	}
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Submitted {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k", "left", "h":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j", "right", "l":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter", "space":
		if len(m.Options) > 0 && !m.Struck[m.Selected] {
			m.Submitted = true
			m.ChosenIndex = m.Selected
		}
	default:
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(m.Options) {
			m.Selected = n - 1
			// Struck options stay selectable but cannot be submitted again.
			if !m.Struck[n-1] {
				m.Submitted = true
				m.ChosenIndex = n - 1
			}
		}
	}

	return m, nil
}

// Retry strikes the submitted option and accepts input again.
func (m *MultiChoice) Retry() {
	if m.ChosenIndex >= 0 {
		if m.Struck == nil {
			m.Struck = make(map[int]bool)
		}
		m.Struck[m.ChosenIndex] = true
	}
	m.Submitted = false
	m.ChosenIndex = -1
}

// Reveal marks index as the correct option.
func (m *MultiChoice) Reveal(index int) {
	m.CorrectIndex = index
}

// Chosen returns the submitted option, if any.
func (m MultiChoice) Chosen() (string, bool) {
	if !m.Submitted || m.ChosenIndex < 0 || m.ChosenIndex >= len(m.Options) {
		return "", false
	}
	return m.Options[m.ChosenIndex], true
}

// View renders the multiple-choice component.
func (m MultiChoice) View() string {
	s := ""
	if m.Question != "" {
		questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
		s = questionStyle.Render(m.Question) + "\n\n"
	}

	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected && !m.Submitted {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt)

		if m.Submitted {
			if i == m.CorrectIndex {
				s += lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line) + "\n"
			} else if i == m.ChosenIndex {
				s += lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(line) + "\n"
			} else {
				s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
			}
		} else {
			if m.Struck[i] {
				s += lipgloss.NewStyle().Foreground(theme.Error).Strikethrough(true).Render(line+"  ✗") + "\n"
			} else if i == m.Selected {
				s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
			} else {
				s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
			}
		}
	}

	return s
}

// IsCorrect returns true if the user chose the correct answer.
func (m MultiChoice) IsCorrect() bool {
	return m.Submitted && m.ChosenIndex == m.CorrectIndex
}
