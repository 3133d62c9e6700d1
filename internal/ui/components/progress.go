package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/hirabolta/internal/ui/theme"
)

const (
	cellFilled = "▰"
	cellEmpty  = "▱"

	// minBarCells keeps a bar readable on narrow terminals.
	minBarCells = 4
)

// ProgressBar renders a horizontal bar of filled and empty cells, either
// continuous (Percent) or stepped (Done of Steps).
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int

	// Steps, when positive, draws one cell per step with Done of them
	// filled. A bar too narrow for every step falls back to continuous.
	Steps int
	Done  int
}

// NewProgressBar creates a continuous bar filled to percent (0..1).
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

// NewStepBar creates a bar with one cell per step, such as one cell per
// correct answer a row needs.
func NewStepBar(done, steps, width int) ProgressBar {
	p := ProgressBar{Width: width, Steps: steps, Done: min(max(done, 0), max(steps, 0))}
	if steps > 0 {
		p.Percent = float64(p.Done) / float64(steps)
	}
	return p
}

func (p ProgressBar) fraction() float64 {
	return min(max(p.Percent, 0), 1)
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var b strings.Builder
	if p.Label != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label))
		b.WriteString("  ")
	}

	suffix := ""
	if p.ShowPercent {
		if p.Steps > 0 {
			suffix = fmt.Sprintf("  %d/%d", p.Done, p.Steps)
		} else {
			suffix = fmt.Sprintf("  %3d%%", int(p.fraction()*100))
		}
	}

	cells := max(p.Width-lipgloss.Width(b.String())-len(suffix), minBarCells)
	filled := int(float64(cells) * p.fraction())
	if p.Steps > 0 && p.Steps <= cells {
		cells, filled = p.Steps, p.Done
	}

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Render(strings.Repeat(cellFilled, filled)))
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat(cellEmpty, cells-filled)))
	if suffix != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(suffix))
	}
	return b.String()
}
