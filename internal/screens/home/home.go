package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hirabolta/internal/i18n"
	"github.com/abhisek/hirabolta/internal/kana"
	"github.com/abhisek/hirabolta/internal/router"
	"github.com/abhisek/hirabolta/internal/screen"
	"github.com/abhisek/hirabolta/internal/screens/history"
	sessionscreen "github.com/abhisek/hirabolta/internal/screens/session"
	settingsscreen "github.com/abhisek/hirabolta/internal/screens/settings"
	"github.com/abhisek/hirabolta/internal/ui/components"
	"github.com/abhisek/hirabolta/internal/ui/layout"
	"github.com/abhisek/hirabolta/internal/ui/theme"
)

const titleFull = "ひ ら ぼ る た"

const titleCompact = "H · I · R · A · B · O · L · T · A"

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 24

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	env  *screen.Env
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(env *screen.Env) *HomeScreen {
	h := &HomeScreen{env: env}

	push := func(build func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: build()}
			}
		}
	}

	// Labels hold message keys so a language change shows on the next render.
	items := []components.MenuItem{
		{Glyph: "あ", Label: string(i18n.MsgMenuHiragana), Action: push(func() screen.Screen {
			return sessionscreen.New(env, kana.Hiragana)
		})},
		{Glyph: "ア", Label: string(i18n.MsgMenuKatakana), Action: push(func() screen.Screen {
			return sessionscreen.New(env, kana.Katakana)
		})},
		{Glyph: "進", Label: string(i18n.MsgMenuProgress), Action: push(func() screen.Screen {
			return history.New(env)
		})},
		{Glyph: "設", Label: string(i18n.MsgMenuSettings), Action: push(func() screen.Screen {
			return settingsscreen.New(env)
		})},
		{Glyph: "終", Label: string(i18n.MsgMenuExit), Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	h.menu = components.NewMenu(items, func(key string) string {
		return env.T(i18n.Key(key))
	})
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: h.env.T(i18n.MsgHintNavigate)},
		{Key: "Enter", Description: h.env.T(i18n.MsgHintMenu)},
		{Key: "Ctrl+C", Description: h.env.T(i18n.MsgMenuExit)},
	}
}

func (h *HomeScreen) View(width, height int) string {
	compact := height < 26 || width < 70

	// All sections share a uniform content width so they line up.
	cw := components.ContentWidth(width)

	var sections []string

	sections = append(sections, renderTitle(cw, compact))

	if !compact {
		sections = append(sections, lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Render(RenderMascot(h.mascotVariant())))
	}

	sections = append(sections, lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(h.greeting()))

	sections = append(sections, h.renderProgress(cw))
	sections = append(sections, h.renderMenu(cw, compact))

	content := strings.Join(sections, "\n\n")
	return components.Frame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return h.env.T(i18n.MsgHomeTitle)
}

func (h *HomeScreen) greeting() string {
	if learner := h.env.Quiz.Learner(); learner != "" {
		return h.env.T(i18n.MsgGreetingLearner, learner)
	}
	return h.env.T(i18n.MsgGreetingGuest)
}

func (h *HomeScreen) mascotVariant() MascotVariant {
	for _, syl := range kana.AllSyllabaries() {
		if h.env.Quiz.IsComplete(syl) {
			return MascotCelebrating
		}
	}
	if h.env.Quiz.Learner() == "" {
		return MascotGuest
	}
	return MascotIdle
}

// renderProgress shows the current row of each syllabary with a bar over
// all rows.
func (h *HomeScreen) renderProgress(cw int) string {
	threshold := h.env.Quiz.Threshold()
	lines := make([]string, 0, 2)
	for _, syl := range kana.AllSyllabaries() {
		rec := h.env.Quiz.Record(syl)
		c := kana.For(syl)
		rows := kana.RowsOf(c)
		idx := max(kana.RowIndex(c, rec.CurrentRow), 0)
		done := float64(idx) + rec.Fraction(threshold)
		frac := 0.0
		if len(rows) > 0 {
			frac = done / float64(len(rows))
		}

		label := fmt.Sprintf("%-9s %-8s", syl.DisplayName(),
			h.env.T(i18n.MsgCurrentRow, strings.ToUpper(rec.CurrentRow)))
		if h.env.Quiz.IsComplete(syl) {
			label = fmt.Sprintf("%-9s %-8s", syl.DisplayName(), "✓")
		}
		lines = append(lines, components.NewProgressBar(label, frac, true, cw-4).View())
	}
	return components.Card(strings.Join(lines, "\n"), cw)
}

// renderMenu renders the menu as fixed-width buttons, or as a numbered list
// on small terminals.
func (h *HomeScreen) renderMenu(cw int, compact bool) string {
	center := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center)
	if compact {
		return center.Render(h.menu.View())
	}

	buttons := make([]string, len(h.menu.Items))
	for i := range h.menu.Items {
		buttons[i] = components.Button(h.menu.Text(i), i == h.menu.Selected, buttonWidth)
	}
	return center.Render(strings.Join(buttons, "\n"))
}

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	title := titleFull + "\n" + lipgloss.NewStyle().Foreground(theme.TextDim).Render("Hirabolta")
	if compact {
		title = titleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(title))
}
