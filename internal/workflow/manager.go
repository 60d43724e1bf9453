// Package workflow drives the two-phase meal planning loop: a gather phase
// that turns the persisted tag preferences into a shopping list, and a review
// phase that folds the user's ratings back into those preferences. The phase
// boundary is durable, so the program can exit between phases and resume.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"mealplan/internal/artifact"
	"mealplan/internal/config"
	"mealplan/internal/prompt"
	"mealplan/internal/recipe"
	"mealplan/internal/selection"
	"mealplan/internal/services"
	"mealplan/internal/shopping"
	"mealplan/internal/store"
)

// ErrWrongMode reports an attempt to run a phase while the persisted state
// points at the other one.
var ErrWrongMode = errors.New("workflow is in a different phase")

// Catalog lists recipes from the remote catalog one page at a time.
type Catalog interface {
	List(ctx context.Context, offset, size int64) ([]recipe.Recipe, error)
}

// Manager coordinates the gather and review phases against the store.
type Manager struct {
	cfg      *config.Config
	store    *store.Store
	catalog  Catalog
	prompter *prompt.Prompter
	logger   *slog.Logger

	openViewer func(string) error
	now        func() time.Time
}

// ManagerOption configures optional Manager behavior.
type ManagerOption func(*Manager)

// WithClock overrides the time source used for artifact naming and stamps.
func WithClock(now func() time.Time) ManagerOption {
	return func(m *Manager) {
		m.now = now
	}
}

// WithViewer overrides how finished artifacts are opened for the user.
func WithViewer(open func(string) error) ManagerOption {
	return func(m *Manager) {
		m.openViewer = open
	}
}

// NewManager constructs a workflow manager.
func NewManager(cfg *config.Config, st *store.Store, catalog Catalog, prompter *prompt.Prompter, logger *slog.Logger, opts ...ManagerOption) *Manager {
	m := &Manager{
		cfg:        cfg,
		store:      st,
		catalog:    catalog,
		prompter:   prompter,
		logger:     logger,
		openViewer: artifact.OpenInViewer,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Run executes whichever phase the persisted state says is next.
func (m *Manager) Run(ctx context.Context, count int64) error {
	state, err := m.store.State(ctx)
	if err != nil {
		return services.Wrap(services.ErrPersistence, "run", "read workflow state", err)
	}
	switch state.Mode {
	case store.ModeGather:
		return m.RunGather(ctx, count)
	case store.ModeReview:
		return m.RunReview(ctx)
	default:
		return fmt.Errorf("unhandled workflow mode %v", state.Mode)
	}
}

// RunGather fetches a catalog page, selects the best-scoring unseen recipes,
// writes the shopping list and recipe artifacts, and hands the workflow over
// to the review phase. A non-positive count makes it prompt the user.
func (m *Manager) RunGather(ctx context.Context, count int64) error {
	state, err := m.store.State(ctx)
	if err != nil {
		return services.Wrap(services.ErrPersistence, "gather", "read workflow state", err)
	}
	if state.Mode != store.ModeGather {
		return fmt.Errorf("%w: want %s, have %s", ErrWrongMode, store.ModeGather, state.Mode)
	}

	if count <= 0 {
		count, err = prompt.Ask(m.prompter, "How many recipes do you want? ", prompt.PositiveInt, prompt.DefaultFailureMessage)
		if err != nil {
			return fmt.Errorf("read recipe count: %w", err)
		}
	}

	m.logger.Info("fetching catalog page", "offset", state.Offset, "size", m.cfg.Catalog.PageSize)
	page, err := m.catalog.List(ctx, state.Offset, m.cfg.Catalog.PageSize)
	if err != nil {
		return err
	}

	candidates, err := m.filterSeen(ctx, page)
	if err != nil {
		return err
	}
	m.logger.Info("filtered catalog page", "fetched", len(page), "unseen", len(candidates))

	scores, err := m.store.TagScores(ctx, tagIDs(candidates))
	if err != nil {
		return services.Wrap(services.ErrPersistence, "gather", "load tag scores", err)
	}
	selected := selection.Pick(candidates, scores, int(count))
	if len(selected) == 0 {
		return fmt.Errorf("no unseen recipes available at offset %d", state.Offset)
	}
	for _, r := range selected {
		m.logger.Info("selected recipe", "recipe_id", r.ID, "name", r.Name, "score", scores.RecipeScore(r))
	}

	consolidated, err := shopping.Consolidate(recipe.Flatten(selected))
	if err != nil {
		return services.Wrap(services.ErrConsolidation, "gather", "consolidate ingredients", err)
	}

	day := m.now()
	if err := m.writeArtifact(artifact.KindShoppingList, day, shopping.FormatList(consolidated)); err != nil {
		return err
	}
	if err := m.writeArtifact(artifact.KindRecipes, day, recipeLinks(selected)); err != nil {
		return err
	}

	for _, r := range selected {
		if err := m.store.SaveRecipe(ctx, r); err != nil {
			return services.Wrap(services.ErrPersistence, "gather", "save recipe", err)
		}
		if err := m.store.AddHistory(ctx, r.ID); err != nil {
			return services.Wrap(services.ErrPersistence, "gather", "record history", err)
		}
		if err := m.store.AddPending(ctx, r.ID); err != nil {
			return services.Wrap(services.ErrPersistence, "gather", "queue for review", err)
		}
	}

	if err := m.store.IncrementOffset(ctx, int64(len(selected))); err != nil {
		return services.Wrap(services.ErrPersistence, "gather", "advance offset", err)
	}
	if err := m.store.SetMode(ctx, store.ModeReview); err != nil {
		return services.Wrap(services.ErrPersistence, "gather", "enter review phase", err)
	}
	m.logger.Info("gather phase complete", "selected", len(selected))
	return nil
}

// RunReview asks the user to rate every recipe still waiting in the pending
// batch, folds each rating into the recipe's tag scores, and hands the
// workflow back to the gather phase. Recipes drop out of the batch as they
// are rated, so an interrupted review resumes with the unrated remainder.
func (m *Manager) RunReview(ctx context.Context) error {
	state, err := m.store.State(ctx)
	if err != nil {
		return services.Wrap(services.ErrPersistence, "review", "read workflow state", err)
	}
	if state.Mode != store.ModeReview {
		return fmt.Errorf("%w: want %s, have %s", ErrWrongMode, store.ModeReview, state.Mode)
	}

	pending, err := m.store.PendingRecipes(ctx)
	if err != nil {
		return services.Wrap(services.ErrPersistence, "review", "load pending batch", err)
	}

	for _, r := range pending {
		label := fmt.Sprintf("How did you like %s (dislike, none, like, or love)? ", r.Name)
		rating, err := prompt.Ask(m.prompter, label, ParseRating, "Please enter dislike, none, like, or love.")
		if err != nil {
			return fmt.Errorf("read rating for recipe %d: %w", r.ID, err)
		}

		tags, err := m.store.RecipeTags(ctx, r.ID)
		if err != nil {
			return services.Wrap(services.ErrPersistence, "review", "load recipe tags", err)
		}
		for _, tag := range tags {
			if err := m.store.AddTagLikes(ctx, tag.ID, rating.Value()); err != nil {
				return services.Wrap(services.ErrPersistence, "review", "apply rating", err)
			}
		}
		if err := m.store.RemovePending(ctx, r.ID); err != nil {
			return services.Wrap(services.ErrPersistence, "review", "retire rated recipe", err)
		}
		m.logger.Info("recorded rating", "recipe_id", r.ID, "rating", rating.String(), "tags", len(tags))
	}

	if err := m.store.ClearPending(ctx); err != nil {
		return services.Wrap(services.ErrPersistence, "review", "clear pending batch", err)
	}
	if err := m.store.SetMode(ctx, store.ModeGather); err != nil {
		return services.Wrap(services.ErrPersistence, "review", "enter gather phase", err)
	}
	m.logger.Info("review phase complete", "rated", len(pending))
	return nil
}

func (m *Manager) filterSeen(ctx context.Context, page []recipe.Recipe) ([]recipe.Recipe, error) {
	unseen := make([]recipe.Recipe, 0, len(page))
	for _, r := range page {
		seen, err := m.store.InHistory(ctx, r.ID)
		if err != nil {
			return nil, services.Wrap(services.ErrPersistence, "gather", "check history", err)
		}
		if !seen {
			unseen = append(unseen, r)
		}
	}
	return unseen, nil
}

func (m *Manager) writeArtifact(kind string, day time.Time, body string) error {
	path := artifact.DatedPath(m.cfg.Paths.ListDir, kind, day)
	if err := artifact.AppendSection(path, day, body); err != nil {
		return services.Wrap(services.ErrArtifact, "gather", "write "+kind, err)
	}
	if err := m.openViewer(path); err != nil {
		m.logger.Warn("could not open artifact", "path", path, "error", err)
	}
	return nil
}

func tagIDs(recipes []recipe.Recipe) []int64 {
	var ids []int64
	for _, r := range recipes {
		for _, tag := range r.Tags {
			ids = append(ids, tag.ID)
		}
	}
	return ids
}

func recipeLinks(recipes []recipe.Recipe) string {
	links := make([]string, 0, len(recipes))
	for _, r := range recipes {
		links = append(links, r.PublicURL())
	}
	return strings.Join(links, "\n")
}
