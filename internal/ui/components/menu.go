package components

import (
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hirabolta/internal/ui/theme"
)

// MenuItem is one entry of a navigation menu.
type MenuItem struct {
	// Glyph is a single kana or kanji shown before the label.
	Glyph string

	// Label is resolved through Menu.Label at render time, so it may hold a
	// message key.
	Label    string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical navigation menu. Arrows (or j/k) move with wrap-around,
// enter activates, and digits 1-9 activate the matching item directly.
type Menu struct {
	Items    []MenuItem
	Selected int

	// Label maps an item label to display text. Nil shows labels as is.
	Label func(string) string
}

// NewMenu creates a menu with the first enabled item selected.
func NewMenu(items []MenuItem, label func(string) string) Menu {
	m := Menu{Items: items, Label: label}
	for i, item := range items {
		if !item.Disabled {
			m.Selected = i
			break
		}
	}
	return m
}

// Update handles keyboard navigation.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		m.move(-1)
	case "down", "j":
		m.move(+1)
	case "enter":
		return m, m.activate(m.Selected)
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			i := int(key[0] - '1')
			if i < len(m.Items) && !m.Items[i].Disabled {
				m.Selected = i
				return m, m.activate(i)
			}
		}
	}
	return m, nil
}

// move steps the selection by delta, skipping disabled items.
func (m *Menu) move(delta int) {
	n := len(m.Items)
	for step := 1; step < n; step++ {
		i := ((m.Selected+delta*step)%n + n) % n
		if !m.Items[i].Disabled {
			m.Selected = i
			return
		}
	}
}

func (m Menu) activate(i int) tea.Cmd {
	if i < 0 || i >= len(m.Items) {
		return nil
	}
	item := m.Items[i]
	if item.Disabled || item.Action == nil {
		return nil
	}
	return item.Action()
}

// Text returns the display text of item i: its glyph followed by the
// resolved label.
func (m Menu) Text(i int) string {
	item := m.Items[i]
	label := item.Label
	if m.Label != nil {
		label = m.Label(label)
	}
	if item.Glyph == "" {
		return label
	}
	return item.Glyph + "  " + label
}

// View renders the menu as a compact list, one numbered line per item.
func (m Menu) View() string {
	lines := make([]string, len(m.Items))
	for i, item := range m.Items {
		text := strconv.Itoa(i+1) + " " + m.Text(i)
		switch {
		case i == m.Selected:
			lines[i] = theme.Selected.Render(" ▸ " + text)
		case item.Disabled:
			lines[i] = lipgloss.NewStyle().Foreground(theme.TextDim).Render("   " + text)
		default:
			lines[i] = lipgloss.NewStyle().Foreground(theme.Text).Render("   " + text)
		}
	}
	return strings.Join(lines, "\n")
}
