package fs

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wenhuei/recipevault/pkg/core"
)

func setupWatchTest(t *testing.T, cfg Config) (*Store, <-chan core.Event, context.CancelFunc) {
	t.Helper()

	dir := t.TempDir()
	cfg.Path = dir
	store := NewStore(cfg)
	require.NoError(t, store.Initialize(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	events, err := store.Watch(ctx, "*")
	require.NoError(t, err)

	// Give the watcher a moment to establish before triggering events.
	time.Sleep(100 * time.Millisecond)

	return store, events, cancel
}

func waitForEvent(t *testing.T, events <-chan core.Event, timeout time.Duration) core.Event {
	t.Helper()
	select {
	case e, ok := <-events:
		require.True(t, ok, "event channel closed unexpectedly")
		return e
	case <-time.After(timeout):
		t.Fatal("Timeout waiting for event")
		return core.Event{}
	}
}

func TestWatch_Create(t *testing.T) {
	store, events, cancel := setupWatchTest(t, Config{})
	defer cancel()

	require.NoError(t, store.Save(context.Background(), testRecipe("laksa")))

	e := waitForEvent(t, events, 2*time.Second)
	assert.Equal(t, "laksa", e.ID)
	// Atomic rename may surface as CREATE depending on the platform; both
	// CREATE and MODIFY mean "content changed".
	assert.Contains(t, []core.EventType{core.EventCreate, core.EventModify}, e.Type)
	assert.NotZero(t, e.Timestamp)
}

func TestWatch_Delete(t *testing.T) {
	store, events, cancel := setupWatchTest(t, Config{})
	defer cancel()

	ctx := context.Background()
	require.NoError(t, store.Save(ctx, testRecipe("rendang")))
	waitForEvent(t, events, 2*time.Second)

	require.NoError(t, store.Delete(ctx, "rendang"))

	e := waitForEvent(t, events, 2*time.Second)
	assert.Equal(t, "rendang", e.ID)
	assert.Equal(t, core.EventDelete, e.Type)
}

func TestWatch_Debounce(t *testing.T) {
	store, events, cancel := setupWatchTest(t, Config{})
	defer cancel()

	// Burst of writes to the same document inside the debounce window
	// should coalesce into a single event.
	path := filepath.Join(store.Path, "burst.yaml")
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte("title: burst"), 0644))
		time.Sleep(5 * time.Millisecond)
	}

	waitForEvent(t, events, 2*time.Second)

	// Drain anything left; a correct debouncer produces at most one more
	// (a trailing CREATE/MODIFY pair on some platforms).
	count := 1
	deadline := time.After(300 * time.Millisecond)
drain:
	for {
		select {
		case <-events:
			count++
		case <-deadline:
			break drain
		}
	}
	assert.LessOrEqual(t, count, 2, "burst of 5 writes should coalesce")
}

func TestWatch_IgnoresNoise(t *testing.T) {
	store, events, cancel := setupWatchTest(t, Config{
		IgnorePatterns: []string{"drafts/**"},
	})
	defer cancel()

	// None of these should produce an event.
	for _, name := range []string{".hidden.yaml", "notes.txt", TempFilePrefix + "x.yaml"} {
		require.NoError(t, os.WriteFile(filepath.Join(store.Path, name), []byte("x"), 0644))
	}

	select {
	case e := <-events:
		t.Fatalf("unexpected event for ignored file: %+v", e)
	case <-time.After(300 * time.Millisecond):
	}

	// A real document still comes through.
	require.NoError(t, store.Save(context.Background(), testRecipe("real")))
	e := waitForEvent(t, events, 2*time.Second)
	assert.Equal(t, "real", e.ID)
}

func TestWatch_ClosesOnCancel(t *testing.T) {
	_, events, cancel := setupWatchTest(t, Config{})

	cancel()

	select {
	case _, ok := <-events:
		assert.False(t, ok, "channel should be closed after cancel")
	case <-time.After(2 * time.Second):
		t.Fatal("Timeout waiting for channel close")
	}
}
