package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "en", cfg.Language)
	assert.Equal(t, "en", cfg.DefaultLanguage)
	assert.Equal(t, 20, cfg.Quiz.Limit)
	assert.Equal(t, 5, cfg.Quiz.MinLimit)
	assert.Equal(t, 100, cfg.Quiz.MaxLimit)
	assert.Equal(t, FilterAll, cfg.Quiz.Category)
	assert.Equal(t, FilterAll, cfg.Quiz.Difficulty)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
env: production
language: it
quiz:
  limit: 30
  category: Basic Movement
paths:
  questions: /srv/questions
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "it", cfg.Language)
	assert.Equal(t, 30, cfg.Quiz.Limit)
	assert.Equal(t, "Basic Movement", cfg.Quiz.Category)
	assert.Equal(t, "/srv/questions", cfg.Paths.Questions)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	require.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("VIMQUIZ_LANGUAGE", "es")
	t.Setenv("VIMQUIZ_QUIZ_LIMIT", "12")
	t.Setenv("VIMQUIZ_DB", "/tmp/quiz.db")

	cfg, err := Load(filepath.Join(writeEmptyConfig(t)), nil)
	require.NoError(t, err)

	assert.Equal(t, "es", cfg.Language)
	assert.Equal(t, 12, cfg.Quiz.Limit)
	assert.Equal(t, "/tmp/quiz.db", cfg.Database.Path)
}

func TestLoad_FlagsWin(t *testing.T) {
	t.Setenv("VIMQUIZ_LANGUAGE", "es")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("lang", "", "")
	fs.String("locales", "", "")
	require.NoError(t, fs.Parse([]string{"--lang", "de", "--locales", "/srv/locales"}))

	cfg, err := Load(writeEmptyConfig(t), fs)
	require.NoError(t, err)

	assert.Equal(t, "de", cfg.Language)
	assert.Equal(t, "/srv/locales", cfg.Paths.Locales)
}

func TestLoad_ClampsLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit string
		want  int
	}{
		{"below minimum", "1", 5},
		{"above maximum", "500", 100},
		{"in range", "42", 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("VIMQUIZ_QUIZ_LIMIT", tt.limit)
			cfg, err := Load(writeEmptyConfig(t), nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Quiz.Limit)
		})
	}
}

func TestQuiz_ClampLimit(t *testing.T) {
	q := Quiz{MinLimit: 5, MaxLimit: 100}
	assert.Equal(t, 5, q.ClampLimit(0))
	assert.Equal(t, 5, q.ClampLimit(5))
	assert.Equal(t, 100, q.ClampLimit(101))
}

func writeEmptyConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0o644))
	return path
}
