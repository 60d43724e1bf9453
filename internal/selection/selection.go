// Package selection ranks candidate recipes by accumulated tag preference
// and picks the batch for a plan run. It is a pure function over the
// candidates and a score table, so callers can inject scores from the store
// or from memory.
package selection

import (
	"sort"

	"mealplan/internal/recipe"
)

// Scores maps tag IDs to their accumulated like counts. Tags absent from the
// table score zero, which covers tags the store has never seen.
type Scores map[int64]int64

// RecipeScore sums the likes of every tag attached to the recipe.
func (s Scores) RecipeScore(r recipe.Recipe) int64 {
	var total int64
	for _, tag := range r.Tags {
		total += s[tag.ID]
	}
	return total
}

// Pick returns the n highest-scoring candidates, best first. The underlying
// sort is stable and ascending; the result walks it from the top, so
// equal-score candidates surface in reverse input order. When fewer than n
// candidates exist all of them are returned.
func Pick(candidates []recipe.Recipe, scores Scores, n int) []recipe.Recipe {
	if n <= 0 {
		return nil
	}

	ranked := make([]recipe.Recipe, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		return scores.RecipeScore(ranked[i]) < scores.RecipeScore(ranked[j])
	})

	if n > len(ranked) {
		n = len(ranked)
	}
	picked := make([]recipe.Recipe, 0, n)
	for i := len(ranked) - 1; i >= len(ranked)-n; i-- {
		picked = append(picked, ranked[i])
	}
	return picked
}
