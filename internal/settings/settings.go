// Package settings loads and validates the quiz preferences.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/hirabolta/internal/i18n"
)

// DefaultCharactersPerRow is the row size of a fresh install.
const DefaultCharactersPerRow = 5

// RowSizes lists the selectable CharactersPerRow values in ascending order.
var RowSizes = []int{5, 15, 25}

// Themes.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Settings holds the learner's quiz preferences.
type Settings struct {
	// CharactersPerRow is the number of correct answers that completes a row.
	CharactersPerRow int `yaml:"characters_per_row"`

	// Theme is "dark" or "light".
	Theme string `yaml:"theme"`

	// Language is the interface language, "en" or "fr".
	Language string `yaml:"language"`

	// Learner identifies whose progress is saved. Empty means guest.
	Learner string `yaml:"learner,omitempty"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		CharactersPerRow: DefaultCharactersPerRow,
		Theme:            ThemeDark,
		Language:         string(i18n.English),
	}
}

// Validate checks every field against its allowed values.
func (s Settings) Validate() error {
	var errs []error
	if !slices.Contains(RowSizes, s.CharactersPerRow) {
		errs = append(errs, fmt.Errorf("characters per row must be one of %v, got %d",
			RowSizes, s.CharactersPerRow))
	}
	if s.Theme != ThemeDark && s.Theme != ThemeLight {
		errs = append(errs, fmt.Errorf("unknown theme %q (want dark or light)", s.Theme))
	}
	if _, err := i18n.ParseLang(s.Language); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Lang returns the interface language, falling back to English.
func (s Settings) Lang() i18n.Lang {
	l, err := i18n.ParseLang(s.Language)
	if err != nil {
		return i18n.English
	}
	return l
}

// NextRowSize returns the row size delta steps from n within RowSizes,
// wrapping at either end. A value outside RowSizes starts from the first.
func NextRowSize(n, delta int) int {
	i := slices.Index(RowSizes, n)
	if i < 0 {
		return RowSizes[0]
	}
	k := len(RowSizes)
	return RowSizes[((i+delta)%k+k)%k]
}

// Guest reports whether no learner is configured.
func (s Settings) Guest() bool {
	return strings.TrimSpace(s.Learner) == ""
}

// DefaultPath resolves the config file path:
// $XDG_CONFIG_HOME/hirabolta/config.yaml or ~/.config/hirabolta/config.yaml.
func DefaultPath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "hirabolta", "config.yaml"), nil
}

// LoadFile overlays the YAML file at path onto base. A missing file leaves
// base unchanged.
func LoadFile(path string, base Settings) (Settings, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return base, nil
	}
	if err != nil {
		return base, fmt.Errorf("read config: %w", err)
	}
	s := base
	if err := yaml.Unmarshal(data, &s); err != nil {
		return base, fmt.Errorf("parse config %s: %w", path, err)
	}
	return s, nil
}

// SaveFile writes s as YAML to path, creating the parent directory.
func SaveFile(path string, s Settings) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// FromEnv overlays HIRABOLTA_* environment variables onto base.
func FromEnv(base Settings) (Settings, error) {
	s := base
	if v := os.Getenv("HIRABOLTA_ROWSIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return base, fmt.Errorf("HIRABOLTA_ROWSIZE: %w", err)
		}
		s.CharactersPerRow = n
	}
	if v := os.Getenv("HIRABOLTA_THEME"); v != "" {
		s.Theme = strings.ToLower(v)
	}
	if v := os.Getenv("HIRABOLTA_LANG"); v != "" {
		s.Language = strings.ToLower(v)
	}
	if v := os.Getenv("HIRABOLTA_LEARNER"); v != "" {
		s.Learner = v
	}
	return s, nil
}

// LoadOptions controls where Load looks for settings.
type LoadOptions struct {
	// ConfigPath is the YAML file. Empty uses DefaultPath.
	ConfigPath string

	// DotEnvPath is loaded into the environment before reading variables.
	// Empty uses ".env" in the working directory. Missing files are ignored.
	DotEnvPath string

	// Locale seeds the default language, usually $LANG.
	Locale string
}

// Load resolves settings from defaults, the locale, the YAML file, a .env
// file and the environment, in increasing priority, then validates them.
func Load(opts LoadOptions) (Settings, error) {
	s := Default()
	if opts.Locale != "" {
		s.Language = string(i18n.Match(opts.Locale))
	}

	path := opts.ConfigPath
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return s, err
		}
		path = p
	}
	s, err := LoadFile(path, s)
	if err != nil {
		return s, err
	}

	envPath := opts.DotEnvPath
	if envPath == "" {
		envPath = ".env"
	}
	// godotenv never overrides variables that are already set.
	if err := godotenv.Load(envPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return s, fmt.Errorf("load %s: %w", envPath, err)
	}

	s, err = FromEnv(s)
	if err != nil {
		return s, err
	}
	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("invalid settings: %w", err)
	}
	return s, nil
}
