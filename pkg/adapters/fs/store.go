// Package fs implements the persistent recipe store on the local filesystem.
// Each recipe is a single YAML document named <id>.yaml inside the vault
// directory; writes go through a temp file + rename so a crash never leaves
// a half-written record behind.
package fs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/wenhuei/recipevault/pkg/core"
)

// recipeExt is the extension used for recipe documents.
const recipeExt = ".yaml"

// Compile-time interface checks.
var (
	_ core.Store     = (*Store)(nil)
	_ core.Watchable = (*Store)(nil)
)

// Store implements core.Store using the filesystem.
type Store struct {
	Path   string
	config Config
}

// Config holds the configuration for the filesystem store.
type Config struct {
	Path      string
	MustExist bool
	Logger    *slog.Logger
	// IgnorePatterns are doublestar globs (relative to Path) that the
	// watcher skips, in addition to temp files and dotfiles.
	IgnorePatterns []string
}

// NewStore creates a new filesystem-backed recipe store.
func NewStore(config Config) *Store {
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	return &Store{
		Path:   config.Path,
		config: config,
	}
}

// Initialize performs the necessary setup for the store (mkdir).
func (s *Store) Initialize(ctx context.Context) error {
	if s.config.MustExist {
		info, err := os.Stat(s.Path)
		if os.IsNotExist(err) {
			return fmt.Errorf("vault path does not exist: %s", s.Path)
		}
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return fmt.Errorf("vault path is not a directory: %s", s.Path)
		}
		return nil
	}

	if err := os.MkdirAll(s.Path, 0755); err != nil {
		return fmt.Errorf("failed to create vault directory: %w", err)
	}
	return nil
}

// Save persists a recipe document, creating or overwriting it.
func (s *Store) Save(ctx context.Context, r core.Recipe) error {
	if r.ID == "" {
		return fmt.Errorf("recipe has no ID")
	}

	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to serialize recipe: %w", err)
	}

	if err := writeFileAtomic(s.pathFor(r.ID), data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	s.config.Logger.Debug("recipe saved", "id", r.ID)
	return nil
}

// Get retrieves a recipe document by id.
func (s *Store) Get(ctx context.Context, id string) (core.Recipe, error) {
	data, err := os.ReadFile(s.pathFor(id))
	if err != nil {
		if os.IsNotExist(err) {
			return core.Recipe{}, core.ErrNotFound
		}
		return core.Recipe{}, err
	}

	var r core.Recipe
	if err := yaml.Unmarshal(data, &r); err != nil {
		return core.Recipe{}, &core.DecodeError{Source: id + recipeExt, Err: err}
	}
	// The filename is authoritative for identity; a hand-edited document
	// with a mismatched id field must not shadow another record.
	r.ID = id

	return r, nil
}

// List scans the vault directory for all recipe documents.
// Unparseable files are skipped rather than failing the whole scan.
func (s *Store) List(ctx context.Context) ([]core.Recipe, error) {
	entries, err := os.ReadDir(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to scan vault: %w", err)
	}

	var recipes []core.Recipe
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if filepath.Ext(name) != recipeExt || strings.HasPrefix(name, ".") {
			continue
		}
		if strings.HasPrefix(name, TempFilePrefix) {
			continue
		}

		id := strings.TrimSuffix(name, recipeExt)
		r, err := s.Get(ctx, id)
		if err != nil {
			s.config.Logger.Debug("skipping unparseable document", "file", name, "error", err)
			continue
		}
		recipes = append(recipes, r)
	}

	return recipes, nil
}

// Delete removes a recipe document.
func (s *Store) Delete(ctx context.Context, id string) error {
	fullPath := s.pathFor(id)
	if _, err := os.Stat(fullPath); os.IsNotExist(err) {
		return core.ErrNotFound
	}

	if err := os.Remove(fullPath); err != nil {
		return fmt.Errorf("failed to remove file: %w", err)
	}

	s.config.Logger.Debug("recipe document removed", "id", id)
	return nil
}

func (s *Store) pathFor(id string) string {
	return filepath.Join(s.Path, id+recipeExt)
}
