package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/hirabolta/internal/i18n"
	"github.com/abhisek/hirabolta/internal/router"
	"github.com/abhisek/hirabolta/internal/screen"
	"github.com/abhisek/hirabolta/internal/screens/home"
	"github.com/abhisek/hirabolta/internal/screens/welcome"
	"github.com/abhisek/hirabolta/internal/ui/layout"
)

// saveFailedMsg carries an error reported by the background progress writer.
type saveFailedMsg struct {
	Err error
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	env        *screen.Env
	router     *router.Router
	width      int
	height     int
	saveFailed bool
}

// newAppModel creates a new AppModel starting on the welcome splash.
func newAppModel(env *screen.Env) AppModel {
	splash := welcome.New(env, func() screen.Screen {
		return home.New(env)
	})
	return AppModel{
		env:    env,
		router: router.New(splash),
	}
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(m.router.Active().Init(), m.listenSaveErrors())
}

// listenSaveErrors waits for the next write failure of the current learner.
// Guests have no writer, and a closed channel ends the listener.
func (m AppModel) listenSaveErrors() tea.Cmd {
	if m.env.Quiz == nil {
		return nil
	}
	errs := m.env.Quiz.SaveErrors()
	if errs == nil {
		return nil
	}
	return func() tea.Msg {
		err, ok := <-errs
		if !ok {
			return nil
		}
		return saveFailedMsg{Err: err}
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case saveFailedMsg:
		m.env.Log().Error("progress write failed", zap.Error(msg.Err))
		m.saveFailed = true
		return m, m.listenSaveErrors()

	case screen.LearnerChangedMsg:
		// The previous learner's writer is closed; follow the new one.
		m.saveFailed = false
		return m, tea.Batch(m.router.Update(msg), m.listenSaveErrors())

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if h, ok := m.router.Active().(screen.BackHandler); ok {
				return m, h.HandleBack()
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// status is the right-hand side of the header.
func (m AppModel) status() string {
	learner := m.env.T(i18n.MsgGuestLabel)
	if m.env.Quiz != nil && m.env.Quiz.Learner() != "" {
		learner = m.env.Quiz.Learner()
	}
	if m.saveFailed {
		return "⚠ " + m.env.T(i18n.MsgSaveFailed) + "  " + learner
	}
	return learner
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render composes header, active screen and footer for the current size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.status(), m.width)

	var footerHints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		footerHints = p.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: m.env.T(i18n.MsgHintBack)},
			{Key: "Ctrl+C", Description: m.env.T(i18n.MsgMenuExit)},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "Enter", Description: m.env.T(i18n.MsgHintMenu)},
			{Key: "Ctrl+C", Description: m.env.T(i18n.MsgMenuExit)},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and ends any open quiz session on exit.
func Run(env *screen.Env) error {
	p := tea.NewProgram(newAppModel(env))
	_, err := p.Run()
	if env.Quiz != nil {
		if sum := env.Quiz.EndSession(context.Background()); sum != nil {
			env.Log().Info("session ended on exit",
				zap.String("syllabary", string(sum.Syllabary)),
				zap.Int("questions", sum.TotalQuestions),
				zap.Int("correct", sum.TotalCorrect))
		}
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
