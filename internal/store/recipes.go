package store

import (
	"context"
	"fmt"

	"mealplan/internal/recipe"
)

// SaveRecipe persists a selected recipe's identity, its tags (seeded with a
// zero preference score when first seen), and the recipe-tag relationships.
// Saving the same recipe twice is harmless.
func (s *Store) SaveRecipe(ctx context.Context, r recipe.Recipe) error {
	if _, err := s.db.ExecContext(ctx, "INSERT OR IGNORE INTO recipes (id, name) VALUES (?, ?)", r.ID, r.Name); err != nil {
		return fmt.Errorf("insert recipe %d: %w", r.ID, err)
	}
	for _, tag := range r.Tags {
		if _, err := s.db.ExecContext(ctx, "INSERT OR IGNORE INTO tags (id, likes) VALUES (?, 0)", tag.ID); err != nil {
			return fmt.Errorf("insert tag %d: %w", tag.ID, err)
		}
		if _, err := s.db.ExecContext(ctx, "INSERT OR IGNORE INTO recipe_tags (recipe_id, tag_id) VALUES (?, ?)", r.ID, tag.ID); err != nil {
			return fmt.Errorf("insert recipe tag %d/%d: %w", r.ID, tag.ID, err)
		}
	}
	return nil
}

// InHistory reports whether the recipe was selected by any previous gather
// phase. Recipes in history are never served again.
func (s *Store) InHistory(ctx context.Context, recipeID int64) (bool, error) {
	var count int
	row := s.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM recipe_history WHERE recipe_id = ?", recipeID)
	if err := row.Scan(&count); err != nil {
		return false, fmt.Errorf("check history for recipe %d: %w", recipeID, err)
	}
	return count > 0, nil
}

// AddHistory records a recipe as permanently consumed.
func (s *Store) AddHistory(ctx context.Context, recipeID int64) error {
	if _, err := s.db.ExecContext(ctx, "INSERT OR IGNORE INTO recipe_history (recipe_id) VALUES (?)", recipeID); err != nil {
		return fmt.Errorf("add history for recipe %d: %w", recipeID, err)
	}
	return nil
}

// AddPending places a recipe in the batch awaiting review.
func (s *Store) AddPending(ctx context.Context, recipeID int64) error {
	if _, err := s.db.ExecContext(ctx, "INSERT OR IGNORE INTO pending_batch (recipe_id) VALUES (?)", recipeID); err != nil {
		return fmt.Errorf("add pending recipe %d: %w", recipeID, err)
	}
	return nil
}

// RemovePending drops a single rated recipe from the pending batch, so an
// interrupted review resumes with only the unrated remainder.
func (s *Store) RemovePending(ctx context.Context, recipeID int64) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM pending_batch WHERE recipe_id = ?", recipeID); err != nil {
		return fmt.Errorf("remove pending recipe %d: %w", recipeID, err)
	}
	return nil
}

// ClearPending empties the pending batch.
func (s *Store) ClearPending(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM pending_batch"); err != nil {
		return fmt.Errorf("clear pending batch: %w", err)
	}
	return nil
}

// PendingRecipes returns the batch awaiting review, in recipe-id order.
func (s *Store) PendingRecipes(ctx context.Context) ([]Recipe, error) {
	return s.queryRecipes(ctx, `SELECT recipes.id, recipes.name FROM recipes
        INNER JOIN pending_batch ON recipes.id = pending_batch.recipe_id
        ORDER BY recipes.id`)
}

// History returns every recipe ever selected, in recipe-id order.
func (s *Store) History(ctx context.Context) ([]Recipe, error) {
	return s.queryRecipes(ctx, `SELECT recipes.id, recipes.name FROM recipes
        INNER JOIN recipe_history ON recipes.id = recipe_history.recipe_id
        ORDER BY recipes.id`)
}

func (s *Store) queryRecipes(ctx context.Context, query string) ([]Recipe, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query recipes: %w", err)
	}
	defer rows.Close()

	var recipes []Recipe
	for rows.Next() {
		var r Recipe
		if err := rows.Scan(&r.ID, &r.Name); err != nil {
			return nil, fmt.Errorf("scan recipe: %w", err)
		}
		recipes = append(recipes, r)
	}
	return recipes, rows.Err()
}
