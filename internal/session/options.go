package session

import "math/rand"

// MaxDistractors is the number of wrong options shown with each question.
const MaxDistractors = 3

// BuildOptions returns correct plus up to MaxDistractors distinct tokens
// drawn without replacement from tokens, in random order. Fewer
// distractors are used when the pool is smaller.
func BuildOptions(correct string, tokens []string, rng *rand.Rand) []string {
	seen := map[string]bool{correct: true}
	var pool []string
	for _, t := range tokens {
		if !seen[t] {
			seen[t] = true
			pool = append(pool, t)
		}
	}

	n := min(MaxDistractors, len(pool))
	options := make([]string, 0, n+1)
	options = append(options, correct)
	for _, i := range rng.Perm(len(pool))[:n] {
		options = append(options, pool[i])
	}
	rng.Shuffle(len(options), func(i, j int) { options[i], options[j] = options[j], options[i] })
	return options
}
