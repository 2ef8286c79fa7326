package state

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wenhuei/recipevault/pkg/catalog"
	"github.com/wenhuei/recipevault/pkg/core"
)

// Fields carries the raw user input for a recipe submission.
// Ingredients and Steps are newline-separated text blocks, normalized by the
// container before storage.
type Fields struct {
	Title        string
	RecipeTypeID string
	ImageURL     string
	Ingredients  string
	Steps        string
}

// Form holds in-progress create/edit state for a single recipe submission.
// The recipe type snapshot is resolved once at construction.
type Form struct {
	repo   *core.Repository
	types  []core.RecipeType
	logger *slog.Logger

	Loading *Value[bool]
	Err     *Value[error]
	Success *Value[*core.Recipe]

	now   func() time.Time
	newID func() string
}

// NewForm creates a form container over the repository with the catalog's
// current types.
func NewForm(repo *core.Repository, cat *catalog.Catalog, logger *slog.Logger) *Form {
	if logger == nil {
		logger = slog.Default()
	}
	return &Form{
		repo:    repo,
		types:   cat.Types(),
		logger:  logger,
		Loading: NewValue(false),
		Err:     NewValue[error](nil),
		Success: NewValue[*core.Recipe](nil),
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// Types returns the recipe type snapshot resolved at construction.
func (f *Form) Types() []core.RecipeType {
	out := make([]core.RecipeType, len(f.types))
	copy(out, f.types)
	return out
}

// SubmitCreate validates the input, builds a new recipe with a generated id
// and fresh date stamps, and stores it. Validation failures are reported
// without touching the store.
func (f *Form) SubmitCreate(ctx context.Context, fields Fields) (core.Recipe, error) {
	if strings.TrimSpace(fields.Title) == "" {
		err := &core.ValidationError{Field: "title", Reason: "must not be empty"}
		f.Err.Set(err)
		return core.Recipe{}, err
	}
	if len(f.types) == 0 {
		err := &core.ValidationError{Field: "recipeType", Reason: "no recipe types available"}
		f.Err.Set(err)
		return core.Recipe{}, err
	}

	now := f.now()
	rec := core.Recipe{
		ID:           f.newID(),
		Title:        fields.Title,
		RecipeTypeID: fields.RecipeTypeID,
		ImageURL:     fields.ImageURL,
		Ingredients:  SplitLines(fields.Ingredients),
		Steps:        SplitLines(fields.Steps),
		CreatedDate:  now,
		UpdatedDate:  now,
	}

	f.Loading.Set(true)
	stored, err := f.repo.Add(ctx, rec)
	f.Loading.Set(false)

	if err != nil {
		f.logger.Debug("create submission failed", "error", err)
		f.Err.Set(err)
		return core.Recipe{}, err
	}

	f.Success.Set(&stored)
	return stored, nil
}

// SubmitUpdate overwrites an existing recipe's mutable fields. The id and
// createdDate come from the existing record; the repository stamps the
// updatedDate itself.
func (f *Form) SubmitUpdate(ctx context.Context, existing core.Recipe, fields Fields) (core.Recipe, error) {
	if strings.TrimSpace(fields.Title) == "" {
		err := &core.ValidationError{Field: "title", Reason: "must not be empty"}
		f.Err.Set(err)
		return core.Recipe{}, err
	}

	candidate := core.Recipe{
		ID:           existing.ID,
		Title:        fields.Title,
		RecipeTypeID: fields.RecipeTypeID,
		ImageURL:     fields.ImageURL,
		Ingredients:  SplitLines(fields.Ingredients),
		Steps:        SplitLines(fields.Steps),
		CreatedDate:  existing.CreatedDate,
	}

	f.Loading.Set(true)
	stored, err := f.repo.Update(ctx, candidate)
	f.Loading.Set(false)

	if err != nil {
		f.logger.Debug("update submission failed", "error", err)
		f.Err.Set(err)
		return core.Recipe{}, err
	}

	f.Success.Set(&stored)
	return stored, nil
}

// SplitLines normalizes a text block into an ordered sequence: split on
// newlines, trim each line, drop empties.
func SplitLines(block string) []string {
	var out []string
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}
