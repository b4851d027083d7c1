package session

import (
	"errors"
	"math/rand"
	"slices"

	"github.com/abhisek/vimquiz/internal/catalog"
)

var (
	// ErrNoSelection is returned when an answer is submitted without a token.
	ErrNoSelection = errors.New("no answer selected")
	// ErrNotInProgress is returned when no question is waiting for an answer.
	ErrNotInProgress = errors.New("no question in progress")
	// ErrNotRevealed is returned when advancing before the answer is revealed.
	ErrNotRevealed = errors.New("answer not revealed yet")
	// ErrNotCompleted is returned when asking for a summary before the run ends.
	ErrNotCompleted = errors.New("quiz not completed")
)

// Phase represents the current phase of a quiz run.
type Phase int

const (
	PhaseIdle           Phase = iota // Nothing started yet
	PhaseInProgress                  // Waiting for an answer
	PhaseAnswerRevealed              // Answer submitted, feedback showing
	PhaseCompleted                   // Every question answered
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseInProgress:
		return "in_progress"
	case PhaseAnswerRevealed:
		return "answer_revealed"
	case PhaseCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// AnswerRecord is one submitted answer.
type AnswerRecord struct {
	Ordinal  int // 1-based question number
	Command  string
	Selected string
	Correct  bool
}

// WrongAnswer captures a missed question for the final summary.
type WrongAnswer struct {
	Ordinal     int    `json:"question"`
	Correct     string `json:"correct"`
	Selected    string `json:"selected"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Difficulty  string `json:"difficulty"`

	question catalog.Question
}

// Outcome is the result of one submission.
type Outcome struct {
	Correct  bool
	Selected string
	Token    string
	Question catalog.Question
}

// State is one quiz run. Transitions return a new State and leave the
// receiver untouched.
type State struct {
	Phase     Phase
	Index     int
	Score     int
	Questions []catalog.Question
	Options   []string
	Correct   string
	Answers   []AnswerRecord
	Wrong     []WrongAnswer

	tokens []string
}

// NewState starts a run over questions in the given order. tokens is the
// distractor pool, normally every token of the unfiltered corpus. An empty
// run is completed immediately.
func NewState(questions []catalog.Question, tokens []string, rng *rand.Rand) State {
	s := State{
		Questions: slices.Clone(questions),
		tokens:    tokens,
	}
	return s.prepare(rng)
}

// Total returns the number of questions in the run.
func (s State) Total() int {
	return len(s.Questions)
}

// Current returns the active question.
func (s State) Current() (catalog.Question, bool) {
	if s.Phase != PhaseInProgress && s.Phase != PhaseAnswerRevealed {
		return catalog.Question{}, false
	}
	return s.Questions[s.Index], true
}

// Submit scores token against the active question.
func (s State) Submit(token string) (State, Outcome, error) {
	if s.Phase != PhaseInProgress {
		return s, Outcome{}, ErrNotInProgress
	}
	if token == "" {
		return s, Outcome{}, ErrNoSelection
	}

	q := s.Questions[s.Index]
	out := Outcome{
		Correct:  token == s.Correct,
		Selected: token,
		Token:    s.Correct,
		Question: q,
	}

	next := s
	next.Answers = append(slices.Clip(s.Answers), AnswerRecord{
		Ordinal:  s.Index + 1,
		Command:  s.Correct,
		Selected: token,
		Correct:  out.Correct,
	})
	if out.Correct {
		next.Score++
	} else {
		next.Wrong = append(slices.Clip(s.Wrong), WrongAnswer{
			Ordinal:     s.Index + 1,
			Correct:     s.Correct,
			Selected:    token,
			Description: q.Description,
			Category:    q.SourceCategory,
			Difficulty:  string(q.Difficulty),
			question:    q,
		})
	}
	next.Phase = PhaseAnswerRevealed
	return next, out, nil
}

// Advance moves past a revealed answer to the next question or completes
// the run.
func (s State) Advance(rng *rand.Rand) (State, error) {
	if s.Phase != PhaseAnswerRevealed {
		return s, ErrNotRevealed
	}
	next := s
	next.Index++
	return next.prepare(rng), nil
}

// Reshuffle restarts the run over the same questions in a new order.
func (s State) Reshuffle(rng *rand.Rand) State {
	qs := slices.Clone(s.Questions)
	rng.Shuffle(len(qs), func(i, j int) { qs[i], qs[j] = qs[j], qs[i] })
	return NewState(qs, s.tokens, rng)
}

// prepare builds the option set for Index, or completes the run.
func (s State) prepare(rng *rand.Rand) State {
	if s.Index >= len(s.Questions) {
		s.Phase = PhaseCompleted
		s.Options = nil
		s.Correct = ""
		return s
	}
	s.Correct = s.Questions[s.Index].Token()
	s.Options = BuildOptions(s.Correct, s.tokens, rng)
	s.Phase = PhaseInProgress
	return s
}
