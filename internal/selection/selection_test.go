package selection_test

import (
	"testing"

	"mealplan/internal/recipe"
	"mealplan/internal/selection"
)

func tagged(id int64, tagIDs ...int64) recipe.Recipe {
	r := recipe.Recipe{ID: id}
	for _, tid := range tagIDs {
		r.Tags = append(r.Tags, recipe.Tag{ID: tid})
	}
	return r
}

func ids(recipes []recipe.Recipe) []int64 {
	out := make([]int64, len(recipes))
	for i, r := range recipes {
		out[i] = r.ID
	}
	return out
}

func TestPickSelectsHighestScoring(t *testing.T) {
	scores := selection.Scores{1: 5, 2: 2, 3: 8}
	candidates := []recipe.Recipe{tagged(10, 1), tagged(20, 2), tagged(30, 3)}

	picked := selection.Pick(candidates, scores, 2)
	got := ids(picked)
	if len(got) != 2 || got[0] != 30 || got[1] != 10 {
		t.Fatalf("Pick = %v, want [30 10]", got)
	}
}

func TestPickSumsTagLikes(t *testing.T) {
	scores := selection.Scores{1: 3, 2: 3, 3: 5}
	candidates := []recipe.Recipe{tagged(10, 1, 2), tagged(20, 3)}

	picked := selection.Pick(candidates, scores, 1)
	if len(picked) != 1 || picked[0].ID != 10 {
		t.Fatalf("Pick = %v, want [10]", ids(picked))
	}
}

func TestPickUnknownTagsScoreZero(t *testing.T) {
	scores := selection.Scores{}
	candidates := []recipe.Recipe{tagged(10, 99), tagged(20, 98)}

	picked := selection.Pick(candidates, scores, 2)
	if len(picked) != 2 {
		t.Fatalf("expected both candidates, got %v", ids(picked))
	}
}

func TestPickReturnsAllWhenUnderSupplied(t *testing.T) {
	scores := selection.Scores{1: 1, 2: 2}
	candidates := []recipe.Recipe{tagged(10, 1), tagged(20, 2)}

	picked := selection.Pick(candidates, scores, 5)
	if len(picked) != 2 {
		t.Fatalf("expected all candidates, got %v", ids(picked))
	}
}

func TestPickZeroCount(t *testing.T) {
	if picked := selection.Pick([]recipe.Recipe{tagged(10, 1)}, selection.Scores{}, 0); len(picked) != 0 {
		t.Fatalf("Pick with n=0 should be empty, got %v", ids(picked))
	}
}

func TestPickDoesNotMutateCandidates(t *testing.T) {
	scores := selection.Scores{1: 1, 2: 9}
	candidates := []recipe.Recipe{tagged(10, 1), tagged(20, 2)}

	_ = selection.Pick(candidates, scores, 2)
	if candidates[0].ID != 10 || candidates[1].ID != 20 {
		t.Fatalf("candidate slice mutated: %v", ids(candidates))
	}
}
