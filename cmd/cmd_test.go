package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/vimquiz/internal/catalog"
)

// execute runs the root command with args and returns its stdout. Flags
// are reset first since the command tree is package state.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	var out bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))

	err := rootCmd.Execute()
	return out.String(), err
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if f.Changed {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		}
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "vimquiz (devel)\n", out)
}

func TestText(t *testing.T) {
	out, err := execute(t, "", "text", "menu.start", "--lang", "it")
	require.NoError(t, err)
	assert.Equal(t, "Inizia il quiz\n", out)

	out, err = execute(t, "", "text", "quiz.question_label", "--param", "current=2", "--param", "total=5")
	require.NoError(t, err)
	assert.Equal(t, "Question 2 of 5\n", out)
}

func TestText_IntegerParamWithFloatVerb(t *testing.T) {
	out, err := execute(t, "", "text", "history.totals",
		"--param", "quizzes=3", "--param", "correct=7", "--param", "questions=10", "--param", "best=80")
	require.NoError(t, err)
	assert.Equal(t, "3 quizzes, 7/10 correct, best 80.0%\n", out)
}

func TestText_MissingKeyEchoesKey(t *testing.T) {
	out, err := execute(t, "", "text", "no.such.key")
	require.NoError(t, err)
	assert.Equal(t, "no.such.key\n", out)
}

func TestStatsJSON(t *testing.T) {
	out, err := execute(t, "", "stats", "--json")
	require.NoError(t, err)

	var st catalog.Stats
	require.NoError(t, json.Unmarshal([]byte(out), &st))
	assert.Equal(t, 10, st.TotalCategories)
	assert.Positive(t, st.TotalQuestions)
	assert.Contains(t, st.Categories, "Basic Movement")
}

func TestCategoriesShow(t *testing.T) {
	out, err := execute(t, "", "categories", "show", "Basic Movement")
	require.NoError(t, err)
	assert.Contains(t, out, "Move cursor left")

	_, err = execute(t, "", "categories", "show", "Nope")
	assert.Error(t, err)
}

func TestLanguages(t *testing.T) {
	for _, env := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		t.Setenv(env, "")
	}
	out, err := execute(t, "", "languages", "--lang", "es")
	require.NoError(t, err)
	assert.Contains(t, out, "es    Español       (current)")
	assert.Contains(t, out, "en    English       (default")
	assert.Contains(t, out, "it    Italiano")
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.json")
	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(good, []byte(`{"category": "X", "difficulty": "beginner", "questions": [{"command": "x"}]}`), 0o644))
	require.NoError(t, os.WriteFile(bad, []byte(`{"questions": [{"description": "no command"}]}`), 0o644))

	out, err := execute(t, "", "validate", good)
	require.NoError(t, err)
	assert.Contains(t, out, "ok    "+good)

	out, err = execute(t, "", "validate", good, bad)
	require.Error(t, err)
	assert.Contains(t, out, "FAIL  "+bad)
}

func TestPreview(t *testing.T) {
	out, err := execute(t, "1\n2\n", "preview", "--count", "2", "--seed", "3", "--category", "Basic Movement")
	require.NoError(t, err)
	assert.Contains(t, out, "Question 1 of 2")
	assert.Contains(t, out, "Question 2 of 2")
	assert.Contains(t, out, "Quiz completed!")
}

func TestPreview_NoMatch(t *testing.T) {
	out, err := execute(t, "", "preview", "--category", "Nope")
	require.NoError(t, err)
	assert.Contains(t, out, "No questions match the current settings.")
}

func TestHistoryAndReset(t *testing.T) {
	db := filepath.Join(t.TempDir(), "results.db")

	out, err := execute(t, "", "history", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "No quizzes played yet.")

	out, err = execute(t, "", "reset", "--yes", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted 0 results.")

	_, err = execute(t, "", "history", "--no-history")
	assert.ErrorIs(t, err, errNoHistory)
}
