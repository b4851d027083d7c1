package session

import (
	"math/rand"
	"slices"
	"testing"
)

func TestBuildOptions(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   int
	}{
		{"large pool", []string{"h", "j", "k", "l", "w", "b", "e"}, 4},
		{"exactly three others", []string{"h", "j", "k", "l"}, 4},
		{"two others", []string{"h", "j", "k"}, 3},
		{"only correct", []string{"h"}, 1},
		{"empty pool", nil, 1},
		{"duplicates in pool", []string{"h", "j", "j", "j", "h"}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for seed := int64(0); seed < 50; seed++ {
				rng := rand.New(rand.NewSource(seed))
				got := BuildOptions("h", tt.tokens, rng)

				if len(got) != tt.want {
					t.Fatalf("len = %d, want %d (%v)", len(got), tt.want, got)
				}
				count := 0
				for _, o := range got {
					if o == "h" {
						count++
					}
				}
				if count != 1 {
					t.Fatalf("correct token appears %d times in %v", count, got)
				}
				sorted := slices.Clone(got)
				slices.Sort(sorted)
				if len(slices.Compact(sorted)) != len(got) {
					t.Fatalf("duplicate options in %v", got)
				}
			}
		})
	}
}

func TestBuildOptions_CorrectPositionVaries(t *testing.T) {
	tokens := []string{"h", "j", "k", "l", "w"}
	positions := map[int]bool{}
	rng := rand.New(rand.NewSource(1))
	for range 200 {
		got := BuildOptions("h", tokens, rng)
		positions[slices.Index(got, "h")] = true
	}
	if len(positions) != 4 {
		t.Errorf("correct token seen at %d positions, want 4", len(positions))
	}
}

func TestBuildOptions_Deterministic(t *testing.T) {
	tokens := []string{"h", "j", "k", "l", "w", "b"}
	a := BuildOptions("k", tokens, rand.New(rand.NewSource(99)))
	b := BuildOptions("k", tokens, rand.New(rand.NewSource(99)))
	if !slices.Equal(a, b) {
		t.Errorf("same seed gave %v and %v", a, b)
	}
}
