package session

// Tier is the qualitative grade of a finished run.
type Tier string

const (
	TierPerfect     Tier = "perfect"
	TierExcellent   Tier = "excellent"
	TierGood        Tier = "good"
	TierNeedsReview Tier = "needs_review"
)

// TierFor grades a percentage: 100 is perfect, 70 and above excellent,
// 50 and above good.
func TierFor(percentage float64) Tier {
	switch {
	case percentage >= 100:
		return TierPerfect
	case percentage >= 70:
		return TierExcellent
	case percentage >= 50:
		return TierGood
	default:
		return TierNeedsReview
	}
}

// MessageKey returns the translation key of the tier's message.
func (t Tier) MessageKey() string {
	switch t {
	case TierPerfect:
		return "messages.perfect_score"
	case TierExcellent:
		return "messages.excellent_work"
	case TierGood:
		return "messages.good_work"
	default:
		return "messages.review_commands"
	}
}

// Summary holds the data displayed when a run is over.
type Summary struct {
	Score      int           `json:"score"`
	Total      int           `json:"total"`
	Percentage float64       `json:"percentage"`
	Tier       Tier          `json:"tier"`
	Wrong      []WrongAnswer `json:"wrong_answers"`
}

// Percentage returns score as a share of total, 0 for an empty run.
func Percentage(score, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(score) * 100 / float64(total)
}

// Summary builds the final summary of a completed run.
func (s State) Summary() (Summary, error) {
	if s.Phase != PhaseCompleted {
		return Summary{}, ErrNotCompleted
	}
	pct := Percentage(s.Score, s.Total())
	return Summary{
		Score:      s.Score,
		Total:      s.Total(),
		Percentage: pct,
		Tier:       TierFor(pct),
		Wrong:      append([]WrongAnswer(nil), s.Wrong...),
	}, nil
}
