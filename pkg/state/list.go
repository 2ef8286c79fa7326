package state

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/aretw0/lifecycle"

	"github.com/wenhuei/recipevault/pkg/core"
)

// List holds the currently displayed recipe collection and the active type
// filter. The held collection is always the sorted result of the last
// successful load, optionally followed by a single optimistic insert; updates
// and deletes always go through a full reload.
type List struct {
	repo   *core.Repository
	logger *slog.Logger

	// mu serializes operations so loading transitions and the collection
	// snapshot are published in the order the operations completed.
	mu     sync.Mutex
	filter string // "" means no filter

	Recipes *Value[[]core.Recipe]
	Loading *Value[bool]
	Err     *Value[error]
}

// NewList creates a list container over the repository.
func NewList(repo *core.Repository, logger *slog.Logger) *List {
	if logger == nil {
		logger = slog.Default()
	}
	return &List{
		repo:    repo,
		logger:  logger,
		Recipes: NewValue[[]core.Recipe](nil),
		Loading: NewValue(false),
		Err:     NewValue[error](nil),
	}
}

// Filter returns the active type filter, or "" when no filter is set.
func (l *List) Filter() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.filter
}

// Load replaces the held collection with a fresh query result.
// On failure the error is published and the existing collection is kept:
// stale-but-valid data beats blanking the view.
func (l *List) Load(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.load(ctx)
}

// load must be called with l.mu held.
func (l *List) load(ctx context.Context) error {
	l.Loading.Set(true)
	defer l.Loading.Set(false)

	var (
		recipes []core.Recipe
		err     error
	)
	if l.filter == "" {
		recipes, err = l.repo.ListAll(ctx)
	} else {
		recipes, err = l.repo.ListByType(ctx, l.filter)
	}
	if err != nil {
		l.logger.Debug("list load failed", "error", err)
		l.Err.Set(err)
		return err
	}

	l.Recipes.Set(recipes)
	return nil
}

// SetFilter switches the active type filter (empty for no filter) and
// re-issues the list query.
func (l *List) SetFilter(ctx context.Context, typeID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.filter = typeID
	return l.load(ctx)
}

// Delete removes a recipe through the repository and, on success, re-derives
// the collection with a full reload. Reloading is simpler and safer than ad
// hoc local removal.
func (l *List) Delete(ctx context.Context, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.repo.Delete(ctx, id); err != nil {
		l.Err.Set(err)
		return err
	}
	return l.load(ctx)
}

// InsertLocal inserts a freshly created recipe into the held collection
// without a reload, preserving the createdDate-descending order. It reports
// whether the recipe is visible under the active filter; when it is not, the
// collection is left untouched and the caller should tell the user the item
// won't appear until the filter changes.
func (l *List) InsertLocal(rec core.Recipe) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.filter != "" && rec.RecipeTypeID != l.filter {
		return false
	}

	current := l.Recipes.Get()
	next := make([]core.Recipe, 0, len(current)+1)
	next = append(next, current...)
	next = append(next, rec.Clone())
	sort.SliceStable(next, func(i, j int) bool {
		return next[i].CreatedDate.After(next[j].CreatedDate)
	})

	l.Recipes.Set(next)
	return true
}

// AutoRefresh reloads the collection whenever the repository reports a store
// change, so mutations made elsewhere (another screen, an external editor)
// are reconciled without user action. It returns after starting the
// background loop; the loop stops when ctx is cancelled.
func (l *List) AutoRefresh(ctx context.Context) error {
	events, err := l.repo.Watch(ctx, "*")
	if err != nil {
		return err
	}

	lifecycle.Go(ctx, func(ctx context.Context) error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-events:
				if !ok {
					return nil
				}
				l.logger.Debug("store changed, refreshing list", "event", e.String())
				if err := l.Load(ctx); err != nil {
					// Already published to Err; keep watching.
					continue
				}
			}
		}
	}, lifecycle.WithErrorHandler(func(err error) {
		l.logger.Error("auto-refresh stopped", "error", err)
	}))

	return nil
}
