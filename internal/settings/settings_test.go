package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"HIRABOLTA_ROWSIZE", "HIRABOLTA_THEME", "HIRABOLTA_LANG", "HIRABOLTA_LEARNER"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestDefault_Valid(t *testing.T) {
	s := Default()
	assert.NoError(t, s.Validate())
	assert.Equal(t, 5, s.CharactersPerRow)
	assert.Equal(t, "dark", s.Theme)
	assert.Equal(t, "en", s.Language)
	assert.True(t, s.Guest())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr bool
	}{
		{"row size 5", func(s *Settings) { s.CharactersPerRow = 5 }, false},
		{"row size 15", func(s *Settings) { s.CharactersPerRow = 15 }, false},
		{"row size 25", func(s *Settings) { s.CharactersPerRow = 25 }, false},
		{"zero row size", func(s *Settings) { s.CharactersPerRow = 0 }, true},
		{"row size between choices", func(s *Settings) { s.CharactersPerRow = 10 }, true},
		{"row size too large", func(s *Settings) { s.CharactersPerRow = 30 }, true},
		{"light theme", func(s *Settings) { s.Theme = "light" }, false},
		{"unknown theme", func(s *Settings) { s.Theme = "solarized" }, true},
		{"french", func(s *Settings) { s.Language = "fr" }, false},
		{"unknown language", func(s *Settings) { s.Language = "de" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			tt.mutate(&s)
			err := s.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSaveAndLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	want := Settings{CharactersPerRow: 15, Theme: "light", Language: "fr", Learner: "aiko"}

	require.NoError(t, SaveFile(path, want))
	got, err := LoadFile(path, Default())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadFile_MissingKeepsBase(t *testing.T) {
	base := Default()
	got, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"), base)
	require.NoError(t, err)
	assert.Equal(t, base, got)
}

func TestLoadFile_PartialOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: light\n"), 0o644))

	got, err := LoadFile(path, Default())
	require.NoError(t, err)
	assert.Equal(t, "light", got.Theme)
	assert.Equal(t, 5, got.CharactersPerRow)
}

func TestLoadFile_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("characters_per_row: [oops"), 0o644))

	_, err := LoadFile(path, Default())
	assert.Error(t, err)
}

func TestFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("HIRABOLTA_ROWSIZE", "25")
	t.Setenv("HIRABOLTA_THEME", "LIGHT")
	t.Setenv("HIRABOLTA_LEARNER", "kenji")

	s, err := FromEnv(Default())
	require.NoError(t, err)
	assert.Equal(t, 25, s.CharactersPerRow)
	assert.Equal(t, "light", s.Theme)
	assert.Equal(t, "en", s.Language)
	assert.Equal(t, "kenji", s.Learner)
}

func TestNextRowSize(t *testing.T) {
	tests := []struct {
		n, delta, want int
	}{
		{5, 1, 15},
		{15, 1, 25},
		{25, 1, 5},
		{5, -1, 25},
		{25, -1, 15},
		{7, 1, 5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NextRowSize(tt.n, tt.delta), "NextRowSize(%d, %d)", tt.n, tt.delta)
	}
}

func TestLoad_LargestRowSize(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	cfg := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("characters_per_row: 25\n"), 0o644))

	s, err := Load(LoadOptions{ConfigPath: cfg, DotEnvPath: filepath.Join(dir, ".env")})
	require.NoError(t, err)
	assert.Equal(t, 25, s.CharactersPerRow)
}

func TestFromEnv_BadRowSize(t *testing.T) {
	clearEnv(t)
	t.Setenv("HIRABOLTA_ROWSIZE", "five")

	_, err := FromEnv(Default())
	assert.Error(t, err)
}

func TestLoad_Precedence(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	cfg := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("characters_per_row: 15\ntheme: light\nlearner: file\n"), 0o644))
	dotenv := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(dotenv, []byte("HIRABOLTA_LEARNER=dotenv\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("HIRABOLTA_LEARNER") })
	t.Setenv("HIRABOLTA_ROWSIZE", "25")

	s, err := Load(LoadOptions{ConfigPath: cfg, DotEnvPath: dotenv, Locale: "fr_FR.UTF-8"})
	require.NoError(t, err)

	assert.Equal(t, 25, s.CharactersPerRow, "env beats file")
	assert.Equal(t, "light", s.Theme, "file beats default")
	assert.Equal(t, "fr", s.Language, "locale seeds default")
	assert.Equal(t, "dotenv", s.Learner, ".env beats file")
}

func TestLoad_InvalidRejected(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Setenv("HIRABOLTA_ROWSIZE", "50")

	_, err := Load(LoadOptions{
		ConfigPath: filepath.Join(dir, "config.yaml"),
		DotEnvPath: filepath.Join(dir, ".env"),
	})
	assert.Error(t, err)
}
