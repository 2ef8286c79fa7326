package fs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/wenhuei/recipevault/pkg/core"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore(Config{Path: t.TempDir()})
	if err := store.Initialize(context.Background()); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	return store
}

func testRecipe(id string) core.Recipe {
	created := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	return core.Recipe{
		ID:           id,
		Title:        "Char Kway Teow",
		RecipeTypeID: "2",
		Ingredients:  []string{"flat noodles", "prawns", "dark soy"},
		Steps:        []string{"heat wok", "fry everything"},
		CreatedDate:  created,
		UpdatedDate:  created,
	}
}

func TestStore_SaveAndGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	want := testRecipe("ckt")
	if err := store.Save(ctx, want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// The document lands as <id>.yaml in the vault directory.
	if _, err := os.Stat(filepath.Join(store.Path, "ckt.yaml")); err != nil {
		t.Fatalf("expected document on disk: %v", err)
	}

	got, err := store.Get(ctx, "ckt")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Title != want.Title {
		t.Errorf("Title = %q, want %q", got.Title, want.Title)
	}
	if !got.CreatedDate.Equal(want.CreatedDate) {
		t.Errorf("CreatedDate = %v, want %v", got.CreatedDate, want.CreatedDate)
	}
	if len(got.Ingredients) != 3 || len(got.Steps) != 2 {
		t.Errorf("ingredients/steps did not round-trip: %+v", got)
	}
}

func TestStore_SaveRejectsEmptyID(t *testing.T) {
	store := newTestStore(t)
	if err := store.Save(context.Background(), core.Recipe{Title: "no id"}); err == nil {
		t.Error("expected error for empty id")
	}
}

func TestStore_GetMissing(t *testing.T) {
	store := newTestStore(t)
	_, err := store.Get(context.Background(), "ghost")
	if !errors.Is(err, core.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_GetMalformed(t *testing.T) {
	store := newTestStore(t)
	path := filepath.Join(store.Path, "bad.yaml")
	if err := os.WriteFile(path, []byte("{not: [valid"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := store.Get(context.Background(), "bad")
	var derr *core.DecodeError
	if !errors.As(err, &derr) {
		t.Errorf("expected DecodeError, got %v", err)
	}
}

func TestStore_FilenameIsAuthoritative(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	// Simulate a hand-edited document whose id field disagrees with the
	// filename. The filename wins.
	r := testRecipe("other")
	if err := store.Save(ctx, r); err != nil {
		t.Fatal(err)
	}
	if err := os.Rename(filepath.Join(store.Path, "other.yaml"), filepath.Join(store.Path, "renamed.yaml")); err != nil {
		t.Fatal(err)
	}

	got, err := store.Get(ctx, "renamed")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.ID != "renamed" {
		t.Errorf("ID = %q, want %q", got.ID, "renamed")
	}
}

func TestStore_List(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		if err := store.Save(ctx, testRecipe(id)); err != nil {
			t.Fatal(err)
		}
	}

	// Noise the scan must skip: dotfiles, foreign extensions, temp files,
	// subdirectories, and unparseable documents.
	noise := map[string]string{
		".hidden.yaml":            "x",
		"notes.txt":               "x",
		TempFilePrefix + "1.yaml": "x",
		"corrupt.yaml":            "{not: [valid",
	}
	for name, content := range noise {
		if err := os.WriteFile(filepath.Join(store.Path, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(store.Path, "subdir"), 0755); err != nil {
		t.Fatal(err)
	}

	recipes, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(recipes) != 3 {
		t.Errorf("expected 3 recipes, got %d", len(recipes))
	}
}

func TestStore_Delete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, testRecipe("gone")); err != nil {
		t.Fatal(err)
	}
	if err := store.Delete(ctx, "gone"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(store.Path, "gone.yaml")); !os.IsNotExist(err) {
		t.Error("document still on disk after delete")
	}

	if err := store.Delete(ctx, "gone"); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("expected ErrNotFound for missing id, got %v", err)
	}
}

func TestStore_InitializeMustExist(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "does-not-exist")
	store := NewStore(Config{Path: missing, MustExist: true})
	if err := store.Initialize(context.Background()); err == nil {
		t.Error("expected error when vault is missing and MustExist is set")
	}

	// Without MustExist the directory is created.
	store = NewStore(Config{Path: missing})
	if err := store.Initialize(context.Background()); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	if info, err := os.Stat(missing); err != nil || !info.IsDir() {
		t.Error("vault directory was not created")
	}
}
