package screen

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/hirabolta/internal/i18n"
	"github.com/abhisek/hirabolta/internal/session"
	"github.com/abhisek/hirabolta/internal/settings"
	"github.com/abhisek/hirabolta/internal/store"
	"github.com/abhisek/hirabolta/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// BackHandler is an optional interface for screens that handle esc
// themselves instead of being popped by the app.
type BackHandler interface {
	HandleBack() tea.Cmd
}

// StatsSource reads the answer history of a learner. *store.EventRepo
// implements it.
type StatsSource interface {
	Stats(ctx context.Context, learnerID string, loc *time.Location) (store.Stats, error)
}

// PrefsStore persists settings per learner. *store.SettingsRepo implements it.
type PrefsStore interface {
	Load(ctx context.Context, learnerID string, base settings.Settings) (settings.Settings, bool, error)
	Save(ctx context.Context, s settings.Settings) error
}

// LearnerChangedMsg is sent after the active learner was switched, so that
// listeners bound to the previous learner can be rebuilt.
type LearnerChangedMsg struct {
	Learner string
}

// SettingsChangedMsg is sent after the settings were modified.
type SettingsChangedMsg struct {
	Settings settings.Settings
}

// Env carries the collaborators shared by every screen.
type Env struct {
	Quiz     *session.Service
	Settings *settings.Settings

	// Stats and Prefs may be nil when running without a store.
	Stats StatsSource
	Prefs PrefsStore

	// ConfigPath is the YAML file settings are mirrored to. Empty disables it.
	ConfigPath string

	Logger *zap.Logger
}

// Lang returns the display language.
func (e *Env) Lang() i18n.Lang {
	if e == nil || e.Settings == nil {
		return i18n.English
	}
	return e.Settings.Lang()
}

// T translates key in the display language.
func (e *Env) T(key i18n.Key, args ...any) string {
	return i18n.T(e.Lang(), key, args...)
}

// Log returns the environment logger, never nil.
func (e *Env) Log() *zap.Logger {
	if e == nil || e.Logger == nil {
		return zap.NewNop()
	}
	return e.Logger
}
