package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"mealplan/internal/selection"
)

// RecipeTags returns the tags attached to a recipe, each with its current
// preference score. The per-tag lookups are independent reads fanned out
// concurrently and joined before returning; any single failure fails the
// whole lookup.
func (s *Store) RecipeTags(ctx context.Context, recipeID int64) ([]Tag, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT tag_id FROM recipe_tags WHERE recipe_id = ? ORDER BY tag_id", recipeID)
	if err != nil {
		return nil, fmt.Errorf("query recipe tags: %w", err)
	}
	var tagIDs []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan tag id: %w", err)
		}
		tagIDs = append(tagIDs, id)
	}
	if err := rows.Close(); err != nil {
		return nil, fmt.Errorf("close tag rows: %w", err)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tag ids: %w", err)
	}

	tags := make([]Tag, len(tagIDs))
	group, groupCtx := errgroup.WithContext(ctx)
	for i, id := range tagIDs {
		i, id := i, id
		group.Go(func() error {
			tag, err := s.tagByID(groupCtx, id)
			if err != nil {
				return err
			}
			tags[i] = tag
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return tags, nil
}

func (s *Store) tagByID(ctx context.Context, id int64) (Tag, error) {
	var tag Tag
	row := s.db.QueryRowContext(ctx, "SELECT id, likes FROM tags WHERE id = ?", id)
	if err := row.Scan(&tag.ID, &tag.Likes); err != nil {
		return Tag{}, fmt.Errorf("get tag %d: %w", id, err)
	}
	return tag, nil
}

// AddTagLikes adds a rating value to a tag's accumulated score.
func (s *Store) AddTagLikes(ctx context.Context, tagID, delta int64) error {
	if _, err := s.db.ExecContext(ctx, "UPDATE tags SET likes = likes + ? WHERE id = ?", delta, tagID); err != nil {
		return fmt.Errorf("update likes for tag %d: %w", tagID, err)
	}
	return nil
}

// TagScores builds the score table for the given tag IDs, fanning out the
// lookups concurrently. Tags the store has never seen are simply absent and
// score zero downstream.
func (s *Store) TagScores(ctx context.Context, tagIDs []int64) (selection.Scores, error) {
	scores := make(selection.Scores, len(tagIDs))
	var mu sync.Mutex

	seen := make(map[int64]struct{}, len(tagIDs))
	group, groupCtx := errgroup.WithContext(ctx)
	for _, id := range tagIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		id := id
		group.Go(func() error {
			tag, err := s.tagByID(groupCtx, id)
			if errors.Is(err, sql.ErrNoRows) {
				return nil
			}
			if err != nil {
				return err
			}
			mu.Lock()
			scores[tag.ID] = tag.Likes
			mu.Unlock()
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return scores, nil
}

// Tags returns every persisted tag with its score, in tag-id order.
func (s *Store) Tags(ctx context.Context) ([]Tag, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, likes FROM tags ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("query tags: %w", err)
	}
	defer rows.Close()

	var tags []Tag
	for rows.Next() {
		var tag Tag
		if err := rows.Scan(&tag.ID, &tag.Likes); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		tags = append(tags, tag)
	}
	return tags, rows.Err()
}
