package match

import (
	"cmp"
	"slices"
)

// DefaultMinSimilarity is the lowest identifier similarity Suggest reports.
const DefaultMinSimilarity = 0.5

type candidate struct {
	name  string
	score float64
}

// Suggest ranks known names by similarity to name and returns at most n
// of them scoring at least minScore. Ties keep alphabetical order so the
// result is deterministic.
func Suggest(name string, known []string, n int, minScore float64) []string {
	var ranked []candidate

	for _, k := range known {
		score := IdentSimilarity(name, k)
		if score >= minScore {
			ranked = append(ranked, candidate{name: k, score: score})
		}
	}

	slices.SortFunc(ranked, func(a, b candidate) int {
		if c := cmp.Compare(b.score, a.score); c != 0 {
			return c
		}

		return cmp.Compare(a.name, b.name)
	})

	if n >= 0 && len(ranked) > n {
		ranked = ranked[:n]
	}

	out := make([]string, len(ranked))
	for i, c := range ranked {
		out[i] = c.name
	}

	return out
}
