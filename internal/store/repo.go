package store

import (
	"context"
	"time"
)

// WrongAnswerData is one missed question of a stored result.
type WrongAnswerData struct {
	Ordinal     int    `json:"question"`
	Correct     string `json:"correct"`
	Selected    string `json:"selected"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Difficulty  string `json:"difficulty"`
}

// Result is a finished quiz run.
type Result struct {
	ID         string            `json:"id"`
	Sequence   int64             `json:"sequence"`
	CreatedAt  time.Time         `json:"created_at"`
	Language   string            `json:"language"`
	Category   string            `json:"category"`
	Difficulty string            `json:"difficulty"`
	Score      int               `json:"score"`
	Total      int               `json:"total"`
	Percentage float64           `json:"percentage"`
	Tier       string            `json:"tier"`
	Wrong      []WrongAnswerData `json:"wrong_answers"`
}

// Totals aggregates every stored result.
type Totals struct {
	Quizzes        int     `json:"quizzes"`
	Questions      int     `json:"questions"`
	Correct        int     `json:"correct"`
	BestPercentage float64 `json:"best_percentage"`
	AvgPercentage  float64 `json:"avg_percentage"`
}

// ResultRepo stores finished quiz results.
type ResultRepo interface {
	// Save stores r, assigning ID, Sequence and CreatedAt when unset.
	Save(ctx context.Context, r *Result) error

	// Recent returns up to limit results, newest first. limit <= 0 means all.
	Recent(ctx context.Context, limit int) ([]Result, error)

	// Get returns one result with its wrong answers, or nil if absent.
	Get(ctx context.Context, id string) (*Result, error)

	// Totals aggregates every stored result.
	Totals(ctx context.Context) (Totals, error)

	// MostMissed returns the commands answered wrong most often.
	MostMissed(ctx context.Context, limit int) ([]MissedCommand, error)

	// Reset deletes every result and returns how many were removed.
	Reset(ctx context.Context) (int64, error)
}

// MissedCommand counts how often a command was answered wrong.
type MissedCommand struct {
	Command  string `json:"command"`
	Category string `json:"category"`
	Misses   int    `json:"misses"`
}
