// Package catalog loads the read-only recipe type reference data.
// The catalog ships with an embedded default resource and can be overridden
// with an external JSON file. Types are loaded once and treated as immutable
// for the lifetime of the process.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/wenhuei/recipevault/pkg/core"
)

//go:embed recipetypes.json
var defaultResource []byte

// Catalog holds the loaded recipe types.
type Catalog struct {
	types []core.RecipeType
}

// Load reads recipe types from the given JSON file, or from the embedded
// default resource when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return decode(defaultResource, "embedded recipetypes.json")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("recipe types resource %s: %w", path, core.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read recipe types: %w", err)
	}

	return decode(data, path)
}

func decode(data []byte, source string) (*Catalog, error) {
	var types []core.RecipeType
	if err := json.Unmarshal(data, &types); err != nil {
		return nil, &core.DecodeError{Source: source, Err: err}
	}
	return &Catalog{types: types}, nil
}

// Types returns a copy of the loaded recipe types, in resource order.
func (c *Catalog) Types() []core.RecipeType {
	out := make([]core.RecipeType, len(c.types))
	copy(out, c.types)
	return out
}

// NameOf resolves a recipe type id to its display name.
func (c *Catalog) NameOf(id string) (string, bool) {
	for _, t := range c.types {
		if t.ID == id {
			return t.Name, true
		}
	}
	return "", false
}

// Len returns the number of loaded types.
func (c *Catalog) Len() int {
	return len(c.types)
}
