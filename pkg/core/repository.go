package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/aretw0/lifecycle"
)

// DefaultEventBuffer is the default size of the watch broker buffer.
const DefaultEventBuffer = 100

// Repository is the single façade over the persistent recipe store.
// Every operation commits durably before returning: a mutation reported as
// successful is visible to the next ListAll/ListByType call.
//
// All store access is serialized through one mutex so that read-modify-write
// updates cannot interleave with other updates or deletes of the same id.
type Repository struct {
	mu              sync.Mutex
	store           Store
	logger          *slog.Logger
	eventBufferSize int
	now             func() time.Time
}

// RepositoryConfig holds the configuration for the repository.
type RepositoryConfig struct {
	Logger      *slog.Logger
	EventBuffer int // zero means DefaultEventBuffer
}

// NewRepository creates a repository over the given store.
func NewRepository(store Store, config RepositoryConfig) *Repository {
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	buffer := config.EventBuffer
	if buffer <= 0 {
		buffer = DefaultEventBuffer
	}
	return &Repository{
		store:           store,
		logger:          logger,
		eventBufferSize: buffer,
		now:             time.Now,
	}
}

// ListAll returns all recipes sorted by creation date, most recent first.
func (r *Repository) ListAll(ctx context.Context) ([]Recipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.listSorted(ctx, "")
}

// ListByType returns recipes of the given type, sorted like ListAll.
func (r *Repository) ListByType(ctx context.Context, typeID string) ([]Recipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.listSorted(ctx, typeID)
}

// listSorted must be called with r.mu held.
func (r *Repository) listSorted(ctx context.Context, typeID string) ([]Recipe, error) {
	all, err := r.store.List(ctx)
	if err != nil {
		return nil, &PersistenceError{Op: "list", Err: err}
	}

	recipes := make([]Recipe, 0, len(all))
	for _, rec := range all {
		if typeID != "" && rec.RecipeTypeID != typeID {
			continue
		}
		recipes = append(recipes, rec)
	}

	// SliceStable keeps ties in createdDate from reshuffling between reads
	// of an unchanged store.
	sort.SliceStable(recipes, func(i, j int) bool {
		return recipes[i].CreatedDate.After(recipes[j].CreatedDate)
	})
	return recipes, nil
}

// Get retrieves a single recipe by id.
func (r *Repository) Get(ctx context.Context, id string) (Recipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, err := r.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Recipe{}, ErrNotFound
		}
		return Recipe{}, &PersistenceError{Op: "get", Err: err}
	}
	return rec, nil
}

// Add writes a new recipe exactly as given and echoes the stored record.
// Fails if the id already exists or the underlying write fails.
func (r *Repository) Add(ctx context.Context, rec Recipe) (Recipe, error) {
	if rec.ID == "" {
		return Recipe{}, &ValidationError{Field: "id", Reason: "must not be empty"}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.store.Get(ctx, rec.ID); err == nil {
		return Recipe{}, &PersistenceError{Op: "add", Err: ErrAlreadyExists}
	} else if !errors.Is(err, ErrNotFound) {
		return Recipe{}, &PersistenceError{Op: "add", Err: err}
	}

	if err := r.store.Save(ctx, rec); err != nil {
		return Recipe{}, &PersistenceError{Op: "add", Err: err}
	}

	r.logger.Debug("recipe added", "id", rec.ID, "type", rec.RecipeTypeID)
	return rec.Clone(), nil
}

// Update overwrites the mutable fields of an existing recipe and stamps a
// fresh updatedDate. The stored record's id and createdDate are preserved;
// whatever the caller put in those fields of rec is ignored.
func (r *Repository) Update(ctx context.Context, rec Recipe) (Recipe, error) {
	if rec.ID == "" {
		return Recipe{}, &ValidationError{Field: "id", Reason: "must not be empty"}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, err := r.store.Get(ctx, rec.ID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Recipe{}, ErrNotFound
		}
		return Recipe{}, &PersistenceError{Op: "update", Err: err}
	}

	merged := existing
	merged.Title = rec.Title
	merged.RecipeTypeID = rec.RecipeTypeID
	merged.ImageURL = rec.ImageURL
	merged.Ingredients = rec.Ingredients
	merged.Steps = rec.Steps
	merged.UpdatedDate = r.now()

	if err := r.store.Save(ctx, merged); err != nil {
		return Recipe{}, &PersistenceError{Op: "update", Err: err}
	}

	r.logger.Debug("recipe updated", "id", merged.ID)
	return merged.Clone(), nil
}

// Delete removes the recipe with the given id.
// Deleting a missing id fails with ErrNotFound rather than succeeding
// silently, so callers get a definite answer about what happened.
func (r *Repository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.store.Get(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return &PersistenceError{Op: "delete", Err: err}
	}

	if err := r.store.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return &PersistenceError{Op: "delete", Err: err}
	}

	r.logger.Debug("recipe deleted", "id", id)
	return nil
}

// Watch observes store changes if the store supports it.
// Events are forwarded through a buffered broker channel so a slow consumer
// cannot block the store's watcher.
func (r *Repository) Watch(ctx context.Context, pattern string) (<-chan Event, error) {
	w, ok := r.store.(Watchable)
	if !ok {
		return nil, fmt.Errorf("store does not support watching")
	}

	upstream, err := w.Watch(ctx, pattern)
	if err != nil {
		return nil, err
	}

	out := make(chan Event, r.eventBufferSize)
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-upstream:
				if !ok {
					return nil
				}
				select {
				case out <- e:
				case <-ctx.Done():
					return nil
				}
			}
		}
	}, lifecycle.WithErrorHandler(func(err error) {
		r.logger.Error("watch broker failed", "error", err)
	}))

	return out, nil
}
