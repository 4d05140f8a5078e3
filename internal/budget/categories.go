package budget

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Rehannah/Pinch-Budget-Companion/internal/model"
)

// NewCategory is the input for creating a category. Limit applies to
// expense categories only; a supplied limit on an income category is
// discarded, and a missing limit on an expense category defaults to 0.
type NewCategory struct {
	Limit *float64
	Name  string
	Type  model.CategoryType
}

// CategoryPatch is a partial category update. Nil fields are left unchanged.
type CategoryPatch struct {
	Name  *string
	Type  *model.CategoryType
	Limit *float64
}

func (c NewCategory) validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: category name is required", ErrValidation)
	}
	if !c.Type.Valid() {
		return fmt.Errorf("%w: category type must be income or expense: %q", ErrValidation, c.Type)
	}
	return nil
}

// build materializes the input as a category with a fresh id, applying the
// limit normalization rules.
func (c NewCategory) build() model.Category {
	if c.Type == model.CategoryTypeIncome {
		return model.NewIncomeCategory(newID(), c.Name)
	}
	limit := 0.0
	if c.Limit != nil {
		limit = *c.Limit
	}
	return model.NewExpenseCategory(newID(), c.Name, limit)
}

// AddCategory validates the input, appends the new category, and persists.
func (s *Service) AddCategory(ctx context.Context, input NewCategory) (model.Category, error) {
	if err := input.validate(); err != nil {
		return model.Category{}, err
	}

	state, err := s.store.Get(ctx)
	if err != nil {
		return model.Category{}, err
	}

	category := input.build()
	state.Categories = append(state.Categories, category)

	if err := s.store.Save(ctx, state); err != nil {
		return model.Category{}, err
	}

	slog.Info("created category", "id", category.ID, "name", category.Name, "type", category.Type)
	return category, nil
}

// UpdateCategory applies a partial update to a category. Changing the type
// to income strips any existing limit; changing it to expense without a
// supplied limit preserves the existing one or defaults to 0. Returns
// (nil, nil) when the id does not exist.
func (s *Service) UpdateCategory(ctx context.Context, id string, patch CategoryPatch) (*model.Category, error) {
	if patch.Type != nil && !patch.Type.Valid() {
		return nil, fmt.Errorf("%w: category type must be income or expense: %q", ErrValidation, *patch.Type)
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, fmt.Errorf("%w: category name is required", ErrValidation)
	}

	state, err := s.store.Get(ctx)
	if err != nil {
		return nil, err
	}

	cat := state.FindCategory(id)
	if cat == nil {
		return nil, nil
	}

	if patch.Name != nil {
		cat.Name = *patch.Name
	}
	if patch.Type != nil {
		cat.Type = *patch.Type
		if cat.Type == model.CategoryTypeIncome {
			cat.Limit = nil
		} else if patch.Limit == nil && cat.Limit == nil {
			zero := 0.0
			cat.Limit = &zero
		}
	}
	if patch.Limit != nil && cat.IsExpense() {
		limit := *patch.Limit
		if limit < 0 {
			limit = 0
		}
		cat.Limit = &limit
	}

	updated := cat.Clone()
	if err := s.store.Save(ctx, state); err != nil {
		return nil, err
	}

	slog.Info("updated category", "id", id, "name", updated.Name)
	return &updated, nil
}

// RemoveCategory deletes the category. Transactions referencing it are left
// in place and render as uncategorized. Removing an absent id is a no-op.
func (s *Service) RemoveCategory(ctx context.Context, id string) error {
	state, err := s.store.Get(ctx)
	if err != nil {
		return err
	}

	kept := state.Categories[:0]
	for _, cat := range state.Categories {
		if cat.ID != id {
			kept = append(kept, cat)
		}
	}
	if len(kept) == len(state.Categories) {
		return nil
	}
	state.Categories = kept

	if err := s.store.Save(ctx, state); err != nil {
		return err
	}

	slog.Info("removed category", "id", id)
	return nil
}

// UpdateCategoryLimit sets the limit of an expense category. It is a no-op
// on income categories and returns (nil, nil) when the id does not exist.
func (s *Service) UpdateCategoryLimit(ctx context.Context, id string, newLimit float64) (*model.Category, error) {
	state, err := s.store.Get(ctx)
	if err != nil {
		return nil, err
	}

	cat := state.FindCategory(id)
	if cat == nil {
		return nil, nil
	}

	if cat.IsExpense() {
		limit := newLimit
		if limit < 0 {
			limit = 0
		}
		cat.Limit = &limit
	}

	updated := cat.Clone()
	if err := s.store.Save(ctx, state); err != nil {
		return nil, err
	}
	return &updated, nil
}
