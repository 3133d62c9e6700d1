package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/abhisek/hirabolta/internal/app"
	"github.com/abhisek/hirabolta/internal/logging"
	"github.com/abhisek/hirabolta/internal/quiz"
	"github.com/abhisek/hirabolta/internal/screen"
	"github.com/abhisek/hirabolta/internal/session"
	"github.com/abhisek/hirabolta/internal/settings"
	"github.com/abhisek/hirabolta/internal/store"
	"github.com/abhisek/hirabolta/internal/ui/theme"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// loadSettings resolves settings from the config file, .env and the
// environment, then applies the --learner flag. It also returns the config
// path the TUI mirrors changes to.
func loadSettings(cmd *cobra.Command) (settings.Settings, string, error) {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		p, err := settings.DefaultPath()
		if err != nil {
			return settings.Settings{}, "", fmt.Errorf("resolve config path: %w", err)
		}
		configPath = p
	}

	st, err := settings.Load(settings.LoadOptions{
		ConfigPath: configPath,
		Locale:     os.Getenv("LANG"),
	})
	if err != nil {
		return st, configPath, fmt.Errorf("load settings: %w", err)
	}
	if cmd.Flags().Changed("learner") {
		st.Learner, _ = cmd.Flags().GetString("learner")
	}
	return st, configPath, nil
}

// newLogger builds the file logger from --log and --verbose.
func newLogger(cmd *cobra.Command) (*zap.Logger, error) {
	path, _ := cmd.Flags().GetString("log")
	if path == "" {
		p, err := logging.DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("resolve log path: %w", err)
		}
		path = p
	}
	verbose, _ := cmd.Flags().GetBool("verbose")
	return logging.New(path, verbose)
}

// openStore resolves the database path and opens the store.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// withStoredPrefs overlays the preferences saved from the TUI for the
// learner in cfg. The learner itself is kept.
func withStoredPrefs(ctx context.Context, st *store.Store, cfg settings.Settings, logger *zap.Logger) settings.Settings {
	if logger == nil {
		logger = zap.NewNop()
	}
	stored, found, err := st.SettingsRepo().Load(ctx, cfg.Learner, cfg)
	if err != nil {
		logger.Warn("stored settings not loaded", zap.String("learner", cfg.Learner), zap.Error(err))
		return cfg
	}
	if !found {
		return cfg
	}
	stored.Learner = cfg.Learner
	return stored
}

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cfg, configPath, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	logger, err := newLogger(cmd)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	cfg = withStoredPrefs(ctx, st, cfg, logger)
	theme.Apply(cfg.Theme)

	svc := session.NewService(session.Config{
		Learner:     cfg.Learner,
		Threshold:   cfg.CharactersPerRow,
		OptionCount: quiz.DefaultOptionCount,
	}, quiz.NewEngine(nil), st.ProgressRepo(), st.EventRepo(), logger)
	defer svc.Close(context.Background())

	if err := svc.Load(ctx); err != nil {
		// Progress falls back to the first rows.
		logger.Error("progress not loaded", zap.String("learner", cfg.Learner), zap.Error(err))
		fmt.Fprintln(os.Stderr, "Progress could not be loaded:", err)
	}

	logger.Info("starting",
		zap.String("learner", cfg.Learner),
		zap.Int("characters_per_row", cfg.CharactersPerRow),
		zap.String("theme", cfg.Theme),
		zap.String("language", cfg.Language))

	return app.Run(&screen.Env{
		Quiz:       svc,
		Settings:   &cfg,
		Stats:      st.EventRepo(),
		Prefs:      st.SettingsRepo(),
		ConfigPath: configPath,
		Logger:     logger,
	})
}
