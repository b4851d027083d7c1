// Package session runs a multiple-choice quiz over a catalog.
package session

import (
	"math/rand"
	"time"

	"github.com/abhisek/vimquiz/internal/catalog"
)

// Default question-count bounds and starting limit.
const (
	DefaultMinLimit = 5
	DefaultMaxLimit = 100
	DefaultLimit    = 20
)

// Settings are the filters and size of the next run.
type Settings struct {
	Category   string
	Difficulty string
	Limit      int
}

// Prompt is the view of the active question.
type Prompt struct {
	Ordinal     int // 1-based
	Total       int
	Command     string // correct token
	Description string
	Explanation string
	Category    string
	Difficulty  catalog.Difficulty
	Options     []string
	Revealed    bool
}

// Option configures a Session.
type Option func(*Session)

// WithRand sets the randomness source. Tests pass a seeded source.
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) { s.rng = rng }
}

// WithLimits sets the bounds applied to the question count.
func WithLimits(minLimit, maxLimit int) Option {
	return func(s *Session) {
		s.minLimit = minLimit
		s.maxLimit = max(minLimit, maxLimit)
	}
}

// Session drives quiz runs over a catalog. It is not safe for concurrent
// use; one caller drives it at a time.
type Session struct {
	cat      *catalog.Catalog
	rng      *rand.Rand
	minLimit int
	maxLimit int
	settings Settings
	state    State
}

// New creates an idle session.
func New(cat *catalog.Catalog, opts ...Option) *Session {
	s := &Session{
		cat:      cat,
		minLimit: DefaultMinLimit,
		maxLimit: DefaultMaxLimit,
		settings: Settings{Category: catalog.FilterAll, Difficulty: catalog.FilterAll, Limit: DefaultLimit},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	s.settings.Limit = s.clamp(s.settings.Limit)
	return s
}

// Configure stores the settings for the next Start. An empty filter means
// FilterAll; limit is clamped to the configured bounds.
func (s *Session) Configure(category, difficulty string, limit int) Settings {
	if category == "" {
		category = catalog.FilterAll
	}
	if difficulty == "" {
		difficulty = catalog.FilterAll
	}
	s.settings = Settings{Category: category, Difficulty: difficulty, Limit: s.clamp(limit)}
	return s.settings
}

func (s *Session) clamp(n int) int {
	return min(max(n, s.minLimit), s.maxLimit)
}

// Start samples a new run from the catalog and discards the previous one.
// A filter that matches nothing completes the run immediately.
func (s *Session) Start() {
	pool := s.cat.RandomSample(s.rng, s.settings.Limit, s.settings.Category, s.settings.Difficulty)
	s.state = NewState(pool, s.cat.Tokens(), s.rng)
}

// CurrentQuestion returns the active question with its description
// resolved in the current language.
func (s *Session) CurrentQuestion() (Prompt, error) {
	q, ok := s.state.Current()
	if !ok {
		return Prompt{}, ErrNotInProgress
	}
	q = s.cat.Localize(q)
	return Prompt{
		Ordinal:     s.state.Index + 1,
		Total:       s.state.Total(),
		Command:     s.state.Correct,
		Description: q.Description,
		Explanation: q.Explanation,
		Category:    q.SourceCategory,
		Difficulty:  q.Difficulty,
		Options:     append([]string(nil), s.state.Options...),
		Revealed:    s.state.Phase == PhaseAnswerRevealed,
	}, nil
}

// SubmitAnswer scores token against the active question.
func (s *Session) SubmitAnswer(token string) (Outcome, error) {
	next, out, err := s.state.Submit(token)
	if err != nil {
		return out, err
	}
	s.state = next
	out.Question = s.cat.Localize(out.Question)
	return out, nil
}

// Advance moves to the next question after an answer was revealed.
func (s *Session) Advance() error {
	next, err := s.state.Advance(s.rng)
	if err != nil {
		return err
	}
	s.state = next
	return nil
}

// Reshuffle restarts the current run in a new order without sampling the
// catalog again.
func (s *Session) Reshuffle() {
	s.state = s.state.Reshuffle(s.rng)
}

// FinalSummary returns the summary of a completed run.
func (s *Session) FinalSummary() (Summary, error) {
	sum, err := s.state.Summary()
	if err != nil {
		return sum, err
	}
	sum.Wrong = s.localizeWrong(sum.Wrong)
	return sum, nil
}

// WrongAnswers returns the missed questions so far.
func (s *Session) WrongAnswers() []WrongAnswer {
	return s.localizeWrong(s.state.Wrong)
}

func (s *Session) localizeWrong(ws []WrongAnswer) []WrongAnswer {
	out := make([]WrongAnswer, len(ws))
	for i, w := range ws {
		w.Description = s.cat.Localize(w.question).Description
		out[i] = w
	}
	return out
}

// Answers returns every submitted answer so far.
func (s *Session) Answers() []AnswerRecord {
	return append([]AnswerRecord(nil), s.state.Answers...)
}

// Progress returns index/total, 0 for an empty run.
func (s *Session) Progress() float64 {
	if s.state.Total() == 0 {
		return 0
	}
	return float64(s.state.Index) / float64(s.state.Total())
}

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.state.Phase }

// Score returns the number of correct answers.
func (s *Session) Score() int { return s.state.Score }

// Total returns the number of questions in the run.
func (s *Session) Total() int { return s.state.Total() }

// Index returns the 0-based index of the active question.
func (s *Session) Index() int { return s.state.Index }

// Settings returns the settings used by the next Start.
func (s *Session) Settings() Settings { return s.settings }

// Limits returns the bounds applied to the question count.
func (s *Session) Limits() (int, int) { return s.minLimit, s.maxLimit }

// State returns a snapshot of the current run.
func (s *Session) State() State { return s.state }

// Catalog returns the catalog the session samples from.
func (s *Session) Catalog() *catalog.Catalog { return s.cat }
