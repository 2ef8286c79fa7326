// Recipe is the central entity of the domain.
package core

import "time"

// Recipe represents a single recipe record.
// ID and CreatedDate are immutable once the record is stored.
type Recipe struct {
	ID           string    `yaml:"id" json:"id"`
	Title        string    `yaml:"title" json:"title"`
	RecipeTypeID string    `yaml:"recipeTypeId" json:"recipeTypeId"`
	ImageURL     string    `yaml:"imageURL,omitempty" json:"imageURL,omitempty"`
	Ingredients  []string  `yaml:"ingredients" json:"ingredients"`
	Steps        []string  `yaml:"steps" json:"steps"`
	CreatedDate  time.Time `yaml:"createdDate" json:"createdDate"`
	UpdatedDate  time.Time `yaml:"updatedDate" json:"updatedDate"`
}

// Clone returns a deep copy of the recipe.
// Consumers hold read views; sharing the ingredient/step slices would let a
// screen mutate the stored record behind the repository's back.
func (r Recipe) Clone() Recipe {
	out := r
	if r.Ingredients != nil {
		out.Ingredients = make([]string, len(r.Ingredients))
		copy(out.Ingredients, r.Ingredients)
	}
	if r.Steps != nil {
		out.Steps = make([]string, len(r.Steps))
		copy(out.Steps, r.Steps)
	}
	return out
}

// RecipeType is an immutable reference record loaded from a static resource.
type RecipeType struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageURL,omitempty"`
}

// EventType represents the type of change in the store.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change in the store.
type Event struct {
	Type      EventType
	ID        string
	Timestamp int64 // Unix timestamp
}

// String implements lifecycle.Event.
func (e Event) String() string {
	return string(e.Type) + " " + e.ID
}
