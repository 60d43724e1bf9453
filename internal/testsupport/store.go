package testsupport

import (
	"context"
	"testing"

	"mealplan/internal/config"
	"mealplan/internal/recipe"
	"mealplan/internal/store"
)

// MustOpenStore opens a store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *store.Store {
	t.Helper()

	st, err := store.Open(cfg)
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() {
		st.Close()
	})
	return st
}

// SaveRecipe persists a recipe with the given tag ids for tests.
func SaveRecipe(t testing.TB, st *store.Store, id int64, name string, tagIDs ...int64) {
	t.Helper()

	r := recipe.Recipe{ID: id, Name: name}
	for _, tagID := range tagIDs {
		r.Tags = append(r.Tags, recipe.Tag{ID: tagID})
	}
	if err := st.SaveRecipe(context.Background(), r); err != nil {
		t.Fatalf("store.SaveRecipe: %v", err)
	}
}
