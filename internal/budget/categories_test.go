package budget

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rehannah/Pinch-Budget-Companion/internal/model"
	"github.com/Rehannah/Pinch-Budget-Companion/internal/storage"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(storage.NewMemoryStore())
}

func floatPtr(v float64) *float64 {
	return &v
}

func TestAddCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("expense category with limit", func(t *testing.T) {
		svc := newTestService(t)

		cat, err := svc.AddCategory(ctx, NewCategory{Name: "Groceries", Type: model.CategoryTypeExpense, Limit: floatPtr(200)})
		require.NoError(t, err)
		assert.NotEmpty(t, cat.ID)
		assert.Equal(t, "Groceries", cat.Name)
		assert.Equal(t, model.CategoryTypeExpense, cat.Type)
		require.NotNil(t, cat.Limit)
		assert.Equal(t, 200.0, *cat.Limit)
	})

	t.Run("expense category defaults limit to zero", func(t *testing.T) {
		svc := newTestService(t)

		cat, err := svc.AddCategory(ctx, NewCategory{Name: "Misc", Type: model.CategoryTypeExpense})
		require.NoError(t, err)
		require.NotNil(t, cat.Limit)
		assert.Equal(t, 0.0, *cat.Limit)
	})

	t.Run("negative limit is clamped to zero", func(t *testing.T) {
		svc := newTestService(t)

		cat, err := svc.AddCategory(ctx, NewCategory{Name: "Misc", Type: model.CategoryTypeExpense, Limit: floatPtr(-50)})
		require.NoError(t, err)
		require.NotNil(t, cat.Limit)
		assert.Equal(t, 0.0, *cat.Limit)
	})

	t.Run("income category never carries a limit", func(t *testing.T) {
		svc := newTestService(t)

		cat, err := svc.AddCategory(ctx, NewCategory{Name: "Salary", Type: model.CategoryTypeIncome, Limit: floatPtr(500)})
		require.NoError(t, err)
		assert.Nil(t, cat.Limit)

		// Also nil in the persisted record
		state, err := svc.State(ctx)
		require.NoError(t, err)
		require.Len(t, state.Categories, 1)
		assert.Nil(t, state.Categories[0].Limit)
	})

	t.Run("empty name is rejected", func(t *testing.T) {
		svc := newTestService(t)

		_, err := svc.AddCategory(ctx, NewCategory{Name: "  ", Type: model.CategoryTypeExpense})
		require.ErrorIs(t, err, ErrValidation)

		state, err := svc.State(ctx)
		require.NoError(t, err)
		assert.Empty(t, state.Categories)
	})

	t.Run("invalid type is rejected", func(t *testing.T) {
		svc := newTestService(t)

		_, err := svc.AddCategory(ctx, NewCategory{Name: "Weird", Type: "savings"})
		require.ErrorIs(t, err, ErrValidation)
	})
}

func TestUpdateCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("rename", func(t *testing.T) {
		svc := newTestService(t)
		cat, err := svc.AddCategory(ctx, NewCategory{Name: "Food", Type: model.CategoryTypeExpense, Limit: floatPtr(100)})
		require.NoError(t, err)

		name := "Groceries"
		updated, err := svc.UpdateCategory(ctx, cat.ID, CategoryPatch{Name: &name})
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, "Groceries", updated.Name)
		require.NotNil(t, updated.Limit)
		assert.Equal(t, 100.0, *updated.Limit)
	})

	t.Run("changing type to income strips the limit", func(t *testing.T) {
		svc := newTestService(t)
		cat, err := svc.AddCategory(ctx, NewCategory{Name: "Side gig", Type: model.CategoryTypeExpense, Limit: floatPtr(300)})
		require.NoError(t, err)

		income := model.CategoryTypeIncome
		updated, err := svc.UpdateCategory(ctx, cat.ID, CategoryPatch{Type: &income})
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, model.CategoryTypeIncome, updated.Type)
		assert.Nil(t, updated.Limit)
	})

	t.Run("changing type to expense without a limit defaults to zero", func(t *testing.T) {
		svc := newTestService(t)
		cat, err := svc.AddCategory(ctx, NewCategory{Name: "Bonus", Type: model.CategoryTypeIncome})
		require.NoError(t, err)

		expense := model.CategoryTypeExpense
		updated, err := svc.UpdateCategory(ctx, cat.ID, CategoryPatch{Type: &expense})
		require.NoError(t, err)
		require.NotNil(t, updated)
		require.NotNil(t, updated.Limit)
		assert.Equal(t, 0.0, *updated.Limit)
	})

	t.Run("limit on an income category is ignored", func(t *testing.T) {
		svc := newTestService(t)
		cat, err := svc.AddCategory(ctx, NewCategory{Name: "Salary", Type: model.CategoryTypeIncome})
		require.NoError(t, err)

		updated, err := svc.UpdateCategory(ctx, cat.ID, CategoryPatch{Limit: floatPtr(80)})
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Nil(t, updated.Limit)
	})

	t.Run("unknown id returns nil without error", func(t *testing.T) {
		svc := newTestService(t)

		updated, err := svc.UpdateCategory(ctx, "missing", CategoryPatch{})
		require.NoError(t, err)
		assert.Nil(t, updated)
	})
}

func TestRemoveCategory(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	cat, err := svc.AddCategory(ctx, NewCategory{Name: "Rent", Type: model.CategoryTypeExpense, Limit: floatPtr(900)})
	require.NoError(t, err)

	_, err = svc.AddTransaction(ctx, NewTransaction{
		Date: "2025-06-01", Amount: 900, Type: model.CategoryTypeExpense, CategoryID: cat.ID,
	})
	require.NoError(t, err)

	require.NoError(t, svc.RemoveCategory(ctx, cat.ID))

	// Transactions keep their dangling reference
	state, err := svc.State(ctx)
	require.NoError(t, err)
	assert.Empty(t, state.Categories)
	require.Len(t, state.Transactions, 1)
	assert.Equal(t, cat.ID, state.Transactions[0].CategoryID)

	// Removing again is a no-op
	require.NoError(t, svc.RemoveCategory(ctx, cat.ID))
}

func TestUpdateCategoryLimit(t *testing.T) {
	ctx := context.Background()

	t.Run("sets an expense limit", func(t *testing.T) {
		svc := newTestService(t)
		cat, err := svc.AddCategory(ctx, NewCategory{Name: "Fun", Type: model.CategoryTypeExpense, Limit: floatPtr(50)})
		require.NoError(t, err)

		updated, err := svc.UpdateCategoryLimit(ctx, cat.ID, 75)
		require.NoError(t, err)
		require.NotNil(t, updated)
		require.NotNil(t, updated.Limit)
		assert.Equal(t, 75.0, *updated.Limit)
	})

	t.Run("no-op on income categories", func(t *testing.T) {
		svc := newTestService(t)
		cat, err := svc.AddCategory(ctx, NewCategory{Name: "Salary", Type: model.CategoryTypeIncome})
		require.NoError(t, err)

		updated, err := svc.UpdateCategoryLimit(ctx, cat.ID, 75)
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Nil(t, updated.Limit)
	})

	t.Run("unknown id returns nil", func(t *testing.T) {
		svc := newTestService(t)

		updated, err := svc.UpdateCategoryLimit(ctx, "missing", 10)
		require.NoError(t, err)
		assert.Nil(t, updated)
	})
}
