package state

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wenhuei/recipevault/pkg/core"
)

// stubStore is an in-memory core.Store with switchable failure modes.
type stubStore struct {
	mu       sync.Mutex
	recipes  map[string]core.Recipe
	failList error
	upstream chan core.Event
	saves    int
}

func newStubStore() *stubStore {
	return &stubStore{
		recipes:  make(map[string]core.Recipe),
		upstream: make(chan core.Event, 1),
	}
}

func (s *stubStore) failNextLists(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failList = err
}

func (s *stubStore) Save(ctx context.Context, r core.Recipe) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saves++
	s.recipes[r.ID] = r.Clone()
	return nil
}

func (s *stubStore) Get(ctx context.Context, id string) (core.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.recipes[id]
	if !ok {
		return core.Recipe{}, core.ErrNotFound
	}
	return r.Clone(), nil
}

func (s *stubStore) List(ctx context.Context) ([]core.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failList != nil {
		return nil, s.failList
	}
	out := make([]core.Recipe, 0, len(s.recipes))
	for _, r := range s.recipes {
		out = append(out, r.Clone())
	}
	return out, nil
}

func (s *stubStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.recipes[id]; !ok {
		return core.ErrNotFound
	}
	delete(s.recipes, id)
	return nil
}

func (s *stubStore) Initialize(ctx context.Context) error { return nil }

func (s *stubStore) Watch(ctx context.Context, pattern string) (<-chan core.Event, error) {
	return s.upstream, nil
}

func (s *stubStore) saveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

func listFixture(id, typeID string, created time.Time) core.Recipe {
	return core.Recipe{
		ID:           id,
		Title:        "Recipe " + id,
		RecipeTypeID: typeID,
		CreatedDate:  created,
		UpdatedDate:  created,
	}
}

func newListFixture(t *testing.T) (*stubStore, *List) {
	t.Helper()
	store := newStubStore()
	repo := core.NewRepository(store, core.RepositoryConfig{})
	return store, NewList(repo, nil)
}

func seed(t *testing.T, store *stubStore, recipes ...core.Recipe) {
	t.Helper()
	for _, r := range recipes {
		require.NoError(t, store.Save(context.Background(), r))
	}
}

func TestList_LoadPublishesSortedCollection(t *testing.T) {
	store, list := newListFixture(t)
	base := time.Now().Add(-time.Hour)
	seed(t, store,
		listFixture("old", "1", base),
		listFixture("new", "2", base.Add(time.Minute)),
	)

	require.NoError(t, list.Load(context.Background()))

	got := list.Recipes.Get()
	require.Len(t, got, 2)
	assert.Equal(t, "new", got[0].ID, "newest first")
	assert.Equal(t, "old", got[1].ID)
	assert.Nil(t, list.Err.Get())
}

func TestList_LoadingTransitions(t *testing.T) {
	store, list := newListFixture(t)
	seed(t, store, listFixture("a", "1", time.Now()))

	ch, cancel := list.Loading.Subscribe()
	defer cancel()

	require.NoError(t, list.Load(context.Background()))

	// Replay of the initial false, then true on entry, then false on exit.
	want := []bool{false, true, false}
	for i, expected := range want {
		select {
		case v := <-ch:
			assert.Equal(t, expected, v, "transition %d", i)
		case <-time.After(time.Second):
			t.Fatalf("Timeout waiting for loading transition %d", i)
		}
	}
}

func TestList_LoadFailureKeepsStaleCollection(t *testing.T) {
	store, list := newListFixture(t)
	seed(t, store, listFixture("keep", "1", time.Now()))

	ctx := context.Background()
	require.NoError(t, list.Load(ctx))
	require.Len(t, list.Recipes.Get(), 1)

	boom := errors.New("backend down")
	store.failNextLists(boom)

	err := list.Load(ctx)
	require.Error(t, err)

	assert.Len(t, list.Recipes.Get(), 1, "stale collection survives a failed load")
	assert.ErrorIs(t, list.Err.Get(), boom)
}

func TestList_SetFilter(t *testing.T) {
	store, list := newListFixture(t)
	base := time.Now().Add(-time.Hour)
	seed(t, store,
		listFixture("b1", "1", base),
		listFixture("l1", "2", base.Add(time.Minute)),
		listFixture("b2", "1", base.Add(2*time.Minute)),
	)

	ctx := context.Background()
	require.NoError(t, list.SetFilter(ctx, "1"))
	assert.Equal(t, "1", list.Filter())

	got := list.Recipes.Get()
	require.Len(t, got, 2)
	assert.Equal(t, "b2", got[0].ID)
	assert.Equal(t, "b1", got[1].ID)

	// Clearing the filter restores the full collection.
	require.NoError(t, list.SetFilter(ctx, ""))
	assert.Len(t, list.Recipes.Get(), 3)
}

func TestList_Delete(t *testing.T) {
	store, list := newListFixture(t)
	seed(t, store,
		listFixture("stay", "1", time.Now().Add(-time.Minute)),
		listFixture("go", "1", time.Now()),
	)

	ctx := context.Background()
	require.NoError(t, list.Load(ctx))
	require.NoError(t, list.Delete(ctx, "go"))

	got := list.Recipes.Get()
	require.Len(t, got, 1)
	assert.Equal(t, "stay", got[0].ID)

	err := list.Delete(ctx, "go")
	assert.ErrorIs(t, err, core.ErrNotFound)
	assert.ErrorIs(t, list.Err.Get(), core.ErrNotFound)
}

func TestList_InsertLocal_NoFilter(t *testing.T) {
	store, list := newListFixture(t)
	base := time.Now().Add(-time.Hour)
	seed(t, store, listFixture("existing", "1", base))

	require.NoError(t, list.Load(context.Background()))

	fresh := listFixture("fresh", "2", base.Add(time.Minute))
	assert.True(t, list.InsertLocal(fresh), "visible without a filter")

	got := list.Recipes.Get()
	require.Len(t, got, 2)
	assert.Equal(t, "fresh", got[0].ID, "newest lands first without a reload")
}

func TestList_InsertLocal_FilterMismatch(t *testing.T) {
	store, list := newListFixture(t)
	seed(t, store, listFixture("b1", "1", time.Now()))

	ctx := context.Background()
	require.NoError(t, list.SetFilter(ctx, "1"))
	before := list.Recipes.Get()

	hidden := listFixture("l1", "2", time.Now())
	assert.False(t, list.InsertLocal(hidden), "recipe of another type is not visible under the filter")
	assert.Equal(t, before, list.Recipes.Get(), "collection untouched on mismatch")

	matching := listFixture("b2", "1", time.Now())
	assert.True(t, list.InsertLocal(matching))
	assert.Len(t, list.Recipes.Get(), 2)
}

func TestList_AutoRefresh(t *testing.T) {
	store, list := newListFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, list.Load(ctx))
	require.NoError(t, list.AutoRefresh(ctx))

	ch, cancelSub := list.Recipes.Subscribe()
	defer cancelSub()
	<-ch // drain the replay

	// A store mutation made behind the container's back.
	seed(t, store, listFixture("external", "1", time.Now()))
	store.upstream <- core.Event{Type: core.EventCreate, ID: "external", Timestamp: time.Now().Unix()}

	select {
	case got := <-ch:
		require.Len(t, got, 1)
		assert.Equal(t, "external", got[0].ID)
	case <-time.After(2 * time.Second):
		t.Fatal("Timeout waiting for auto-refresh")
	}
}
