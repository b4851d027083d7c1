package i18n

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"en/main.json": {Data: []byte(`{
			"app": {"title": "Vim Quiz"},
			"quiz": {
				"question_label": "Question {current} of {total}",
				"score_label": "Score: {score}",
				"only_in_english": "English only"
			},
			"messages": {"percentage": "{value:.1f}%"}
		}`)},
		"en/questions.json": {Data: []byte(`{"prompt": "Which command matches?"}`)},
		"en/question_descriptions.json": {Data: []byte(`{
			"basic_movement": {"h": "Move left", "j": "Move down"}
		}`)},
		"it/main.json": {Data: []byte(`{
			"app": {"title": "Quiz di Vim"},
			"quiz": {"question_label": "Domanda {current} di {total}"}
		}`)},
		"it/question_descriptions.json": {Data: []byte(`{
			"basic_movement": {"h": "Muovi a sinistra"}
		}`)},
		"es/main.json":     {Data: []byte(`{"app": {"title": 42}}`)},
		"es/questions.json": {Data: []byte(`{"prompt": "¿Qué comando?"}`)},
	}
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(Options{FS: testFS(), DefaultLanguage: "en"})
}

func TestNew_DiscoversLanguages(t *testing.T) {
	s := newTestStore(t)
	assert.Equal(t, []string{"en", "es", "it"}, s.SupportedLanguages())
	assert.Equal(t, "en", s.ActiveLanguage())
	assert.Equal(t, "en", s.DefaultLanguage())
}

func TestNew_ExplicitSupportedAddsDefault(t *testing.T) {
	s := New(Options{FS: testFS(), DefaultLanguage: "en", Supported: []string{"it"}})
	assert.Equal(t, []string{"en", "it"}, s.SupportedLanguages())
}

func TestResolve_ActiveLanguage(t *testing.T) {
	s := newTestStore(t)
	require.True(t, s.SetActiveLanguage("it"))

	assert.Equal(t, "Quiz di Vim", s.Resolve("app.title", nil))
	assert.Equal(t, "Domanda 3 di 10", s.Resolve("quiz.question_label", Params{"current": 3, "total": 10}))
}

func TestResolve_FallsBackToDefault(t *testing.T) {
	s := newTestStore(t)
	require.True(t, s.SetActiveLanguage("it"))

	assert.Equal(t, "English only", s.Resolve("quiz.only_in_english", nil))
	assert.Equal(t, "Score: 7", s.Resolve("quiz.score_label", Params{"score": 7}))
}

func TestResolve_MissingKeyReturnsKey(t *testing.T) {
	s := newTestStore(t)
	for _, lang := range s.SupportedLanguages() {
		require.True(t, s.SetActiveLanguage(lang))
		assert.Equal(t, "no.such.key", s.Resolve("no.such.key", nil), "language %s", lang)
	}
}

func TestResolve_BranchIsAMiss(t *testing.T) {
	s := newTestStore(t)
	assert.Equal(t, "quiz", s.Resolve("quiz", nil))
	assert.Equal(t, "app.title.deeper", s.Resolve("app.title.deeper", nil))
}

func TestResolve_SubstitutionFailureReturnsTemplate(t *testing.T) {
	s := newTestStore(t)
	got := s.Resolve("quiz.question_label", Params{"current": 1})
	assert.Equal(t, "Question {current} of {total}", got)
}

func TestResolve_FormatVerb(t *testing.T) {
	s := newTestStore(t)
	assert.Equal(t, "87.5%", s.Resolve("messages.percentage", Params{"value": 87.5}))
}

func TestResolve_EveryLanguageNeverFailsOnDefaultKeys(t *testing.T) {
	s := newTestStore(t)
	keys := []string{"app.title", "quiz.question_label", "quiz.score_label", "quiz.only_in_english"}

	for _, lang := range s.SupportedLanguages() {
		require.True(t, s.SetActiveLanguage(lang))
		for _, key := range keys {
			got := s.Resolve(key, nil)
			assert.NotEqual(t, key, got, "language %s key %s", lang, key)
		}
	}
}

func TestMalformedResourceIsOmitted(t *testing.T) {
	s := newTestStore(t)
	require.True(t, s.SetActiveLanguage("es"))

	// main.json is malformed, so app.title comes from English.
	assert.Equal(t, "Vim Quiz", s.Resolve("app.title", nil))
	// questions.json is still mounted.
	assert.Equal(t, "¿Qué comando?", s.ResolveQuestion("prompt", nil))
}

func TestResolveQuestion(t *testing.T) {
	s := newTestStore(t)
	assert.Equal(t, "Which command matches?", s.ResolveQuestion("prompt", nil))
}

func TestResolveDescription(t *testing.T) {
	s := newTestStore(t)
	require.True(t, s.SetActiveLanguage("it"))

	assert.Equal(t, "Muovi a sinistra", s.ResolveDescription("basic_movement", "h"))
	assert.Equal(t, "Move down", s.ResolveDescription("basic_movement", "j"))
	assert.Equal(t, "zz", s.ResolveDescription("basic_movement", "zz"))
	assert.Equal(t, "h", s.ResolveDescription("no_namespace", "h"))
}

func TestResolveIn_DoesNotMoveCursor(t *testing.T) {
	s := newTestStore(t)

	assert.Equal(t, "Quiz di Vim", s.ResolveIn("it", "app.title", nil))
	assert.Equal(t, "Muovi a sinistra", s.ResolveDescriptionIn("it", "basic_movement", "h"))
	assert.Equal(t, "en", s.ActiveLanguage())

	// Unsupported languages resolve through the default.
	assert.Equal(t, "Vim Quiz", s.ResolveIn("xx", "app.title", nil))
}

func TestSetActiveLanguage_Unsupported(t *testing.T) {
	s := newTestStore(t)
	require.True(t, s.SetActiveLanguage("it"))

	assert.False(t, s.SetActiveLanguage("klingon"))
	assert.Equal(t, "it", s.ActiveLanguage())
}

func TestLoadLanguage_SubstitutesDefault(t *testing.T) {
	s := newTestStore(t)
	assert.Equal(t, "en", s.LoadLanguage("klingon"))
	assert.Equal(t, "it", s.LoadLanguage("it"))
	assert.Equal(t, "en", s.ActiveLanguage())
}

func TestNilFS(t *testing.T) {
	s := New(Options{DefaultLanguage: "en"})
	assert.Equal(t, []string{"en"}, s.SupportedLanguages())
	assert.Equal(t, "app.title", s.Resolve("app.title", nil))
	assert.Equal(t, "h", s.ResolveDescription("basic_movement", "h"))
}

func TestStoresAreIndependent(t *testing.T) {
	a := New(Options{FS: testFS(), DefaultLanguage: "en"})
	b := New(Options{FS: testFS(), DefaultLanguage: "it"})

	require.True(t, a.SetActiveLanguage("es"))
	require.True(t, b.SetActiveLanguage("es"))

	assert.Equal(t, "Vim Quiz", a.Resolve("app.title", nil))
	assert.Equal(t, "Quiz di Vim", b.Resolve("app.title", nil))
}

func TestDisplayName(t *testing.T) {
	s := newTestStore(t)
	assert.Equal(t, "Italiano", s.DisplayName("it"))
	assert.Equal(t, "Deutsch", DisplayName("de"))
	assert.Equal(t, "pt", s.DisplayName("pt"))
}

func TestSystemLanguage(t *testing.T) {
	tests := []struct {
		name   string
		lcAll  string
		lang   string
		want   string
		detect string
	}{
		{"posix locale", "", "it_IT.UTF-8", "it", "it"},
		{"lc_all wins", "es_ES.UTF-8", "it_IT.UTF-8", "es", "es"},
		{"unsupported", "", "pt_BR.UTF-8", "pt", "en"},
		{"C locale", "", "C", "en", "en"},
		{"unset", "", "", "en", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LC_ALL", tt.lcAll)
			t.Setenv("LC_MESSAGES", "")
			t.Setenv("LANG", tt.lang)

			s := newTestStore(t)
			assert.Equal(t, tt.want, s.SystemLanguage())
			assert.Equal(t, tt.detect, s.DetectLanguage())
		})
	}
}

func TestInfo(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "")

	s := newTestStore(t)
	require.True(t, s.SetActiveLanguage("it"))

	info := s.Info()
	assert.Equal(t, "it", info.Current)
	assert.Equal(t, "en", info.Default)
	assert.Equal(t, "en", info.System)
	assert.Equal(t, []string{"en", "es", "it"}, info.Supported)
	assert.Equal(t, "Español", info.Names["es"])
}
