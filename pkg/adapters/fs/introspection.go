package fs

import (
	"os"
	"path/filepath"

	"github.com/aretw0/introspection"
)

// StoreState exposes internal state for observability.
type StoreState struct {
	Path          string `json:"path"`
	DocumentCount int    `json:"document_count"`
	MustExist     bool   `json:"must_exist"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	count := 0
	if entries, err := os.ReadDir(s.Path); err == nil {
		for _, e := range entries {
			if !e.IsDir() && filepath.Ext(e.Name()) == recipeExt {
				count++
			}
		}
	}

	return StoreState{
		Path:          s.Path,
		DocumentCount: count,
		MustExist:     s.config.MustExist,
	}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "fs-store"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)
