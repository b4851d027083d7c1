package session

import (
	"errors"
	"testing"

	"github.com/abhisek/vimquiz/internal/catalog"
)

func TestTierFor(t *testing.T) {
	tests := []struct {
		score, total int
		want         Tier
	}{
		{10, 10, TierPerfect},
		{9, 10, TierExcellent},
		{7, 10, TierExcellent},
		{69, 100, TierGood},
		{5, 10, TierGood},
		{49, 100, TierNeedsReview},
		{0, 10, TierNeedsReview},
		{0, 0, TierNeedsReview},
	}

	for _, tt := range tests {
		if got := TierFor(Percentage(tt.score, tt.total)); got != tt.want {
			t.Errorf("TierFor(%d/%d) = %q, want %q", tt.score, tt.total, got, tt.want)
		}
	}
}

func TestTierMessageKey(t *testing.T) {
	keys := map[Tier]string{
		TierPerfect:     "messages.perfect_score",
		TierExcellent:   "messages.excellent_work",
		TierGood:        "messages.good_work",
		TierNeedsReview: "messages.review_commands",
	}
	for tier, want := range keys {
		if got := tier.MessageKey(); got != want {
			t.Errorf("%q.MessageKey() = %q, want %q", tier, got, want)
		}
	}
}

func TestStateSummary(t *testing.T) {
	s := State{Phase: PhaseInProgress}
	if _, err := s.Summary(); !errors.Is(err, ErrNotCompleted) {
		t.Errorf("err = %v, want ErrNotCompleted", err)
	}

	s = State{
		Phase:     PhaseCompleted,
		Score:     3,
		Questions: make([]catalog.Question, 4),
		Wrong:     []WrongAnswer{{Ordinal: 2, Correct: "j", Selected: "k"}},
	}
	sum, err := s.Summary()
	if err != nil {
		t.Fatal(err)
	}
	if sum.Percentage != 75 || sum.Tier != TierExcellent || sum.Total != 4 {
		t.Errorf("summary = %+v", sum)
	}
	if len(sum.Wrong) != 1 || sum.Wrong[0].Correct != "j" {
		t.Errorf("wrong = %+v", sum.Wrong)
	}
}
