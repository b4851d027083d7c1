// Package screentest builds screen environments over small in-memory
// fixtures for screen tests.
package screentest

import (
	"math/rand"
	"testing"
	"testing/fstest"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/vimquiz/internal/catalog"
	"github.com/abhisek/vimquiz/internal/i18n"
	"github.com/abhisek/vimquiz/internal/screen"
	"github.com/abhisek/vimquiz/internal/session"
	"github.com/abhisek/vimquiz/internal/store"
)

// Locales holds en and it resources covering the keys the screens use.
var Locales = fstest.MapFS{
	"en/main.json": {Data: []byte(`{
		"app": {"subtitle": "Learn Vim commands", "continue": "press any key to continue"},
		"menu": {"start": "Start quiz", "settings": "Settings", "language": "Language",
			"statistics": "Statistics", "history": "History", "exit": "Quit"},
		"quiz": {"question_label": "Question {current} of {total}", "score_label": "Score: {score}",
			"prompt": "Which command does this?", "no_questions": "No questions match."},
		"messages": {"correct_answer": "Correct! {command}: {description}",
			"wrong_answer": "Wrong! The answer was {command}: {description}",
			"quiz_completed": "Quiz completed!", "perfect_score": "Perfect!",
			"good_work": "Good work.", "review_commands": "Review these commands.",
			"wrong_item": "Question {question}: you chose {selected}, the answer was {correct} ({description})"},
		"language": {"title": "Choose language", "changed": "Language changed to {name}"},
		"statistics": {"title": "Question statistics", "questions_count": "{count} questions",
			"commands": "Commands in {category}"},
		"history": {"title": "Recent results", "empty": "No quizzes played yet.",
			"row": "{date}  {score}/{total}  {percentage:.1f}%  {category}",
			"disabled": "Result history is disabled.",
			"totals": "{quizzes} quizzes, {correct}/{questions} correct, best {best:.1f}%"},
		"hints": {"back": "back", "select": "select"}
	}`)},
	"en/questions.json": {Data: []byte(`{
		"difficulties": {"beginner": "Beginner", "intermediate": "Intermediate"},
		"categories": {"basic_movement": "Basic Movement", "search_replace": "Search and Replace"}
	}`)},
	"en/question_descriptions.json": {Data: []byte(`{"basic_movement": {"h": "Move left"}}`)},
	"it/main.json": {Data: []byte(`{
		"menu": {"start": "Inizia quiz"},
		"quiz": {"prompt": "Quale comando fa questo?"},
		"messages": {"quiz_completed": "Quiz completato!"}
	}`)},
	"it/questions.json":             {Data: []byte(`{"categories": {"basic_movement": "Movimento di base"}}`)},
	"it/question_descriptions.json": {Data: []byte(`{"basic_movement": {"h": "Sposta a sinistra"}}`)},
}

// Sources holds two categories with six questions.
var Sources = fstest.MapFS{
	"movement.json": {Data: []byte(`{"category": "Basic Movement", "difficulty": "beginner", "questions": [
		{"command": "h", "description": "Move cursor left"},
		{"command": "j", "description": "Move cursor down"},
		{"command": "k", "description": "Move cursor up"},
		{"command": "l", "description": "Move cursor right"}
	]}`)},
	"search.json": {Data: []byte(`{"category": "Search and Replace", "difficulty": "intermediate", "questions": [
		{"command": "/", "description": "Search forward"},
		{"command": "n", "description": "Next match"}
	]}`)},
}

// NewEnv returns an environment with a seeded session over Sources. When
// withStore is set, results go to an in-memory SQLite database.
func NewEnv(t *testing.T, withStore bool) *screen.Env {
	t.Helper()

	text := i18n.New(i18n.Options{FS: Locales, DefaultLanguage: "en"})
	cat, err := catalog.Load(Sources, catalog.WithDescriber(text))
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}

	env := &screen.Env{
		Session: session.New(cat,
			session.WithRand(rand.New(rand.NewSource(7))),
			session.WithLimits(1, 100)),
		Text: text,
	}

	if withStore {
		st, err := store.Open("file::memory:?cache=shared")
		if err != nil {
			t.Fatalf("open store: %v", err)
		}
		t.Cleanup(func() { st.Close() })
		env.Results = st.ResultRepo()
	}
	return env
}

// Key builds a printable key press.
func Key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

// Special builds a non-printable key press such as tea.KeyEnter.
func Special(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// Run executes cmd and returns its message, nil for a nil command.
func Run(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}
