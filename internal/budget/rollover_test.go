package budget

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rehannah/Pinch-Budget-Companion/internal/model"
)

func seedMonth(t *testing.T) (*Service, model.Category) {
	t.Helper()
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.RolloverKeepingCategories(ctx, "2025-06", 1000)
	require.NoError(t, err)
	groceries, err := svc.AddCategory(ctx, NewCategory{Name: "Groceries", Type: model.CategoryTypeExpense, Limit: floatPtr(200)})
	require.NoError(t, err)
	_, err = svc.AddCategory(ctx, NewCategory{Name: "Salary", Type: model.CategoryTypeIncome})
	require.NoError(t, err)
	_, err = svc.AddTransaction(ctx, NewTransaction{
		Date: "2025-06-05", Amount: 60, Type: model.CategoryTypeExpense, CategoryID: groceries.ID,
	})
	require.NoError(t, err)
	return svc, groceries
}

func TestRolloverKeepingCategories(t *testing.T) {
	ctx := context.Background()

	t.Run("clears transactions, keeps categories and ids", func(t *testing.T) {
		svc, groceries := seedMonth(t)

		state, err := svc.RolloverKeepingCategories(ctx, "2025-07", 1200)
		require.NoError(t, err)
		assert.Equal(t, "2025-07", state.Meta.Month)
		assert.Equal(t, 1200.0, state.Meta.BaseBudget)
		assert.Empty(t, state.Transactions)

		require.Len(t, state.Categories, 2)
		kept := state.FindCategory(groceries.ID)
		require.NotNil(t, kept)
		assert.Equal(t, 200.0, kept.LimitValue())
	})

	t.Run("rejects a malformed month", func(t *testing.T) {
		svc, _ := seedMonth(t)

		_, err := svc.RolloverKeepingCategories(ctx, "July 2025", 1000)
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("rejects a negative base budget", func(t *testing.T) {
		svc, _ := seedMonth(t)

		_, err := svc.RolloverKeepingCategories(ctx, "2025-07", -1)
		require.ErrorIs(t, err, ErrValidation)
	})
}

func TestRolloverWithCategories(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces categories with fresh ids", func(t *testing.T) {
		svc, groceries := seedMonth(t)

		state, err := svc.RolloverWithCategories(ctx, "2025-07", 1200, []NewCategory{
			{Name: "Rent", Type: model.CategoryTypeExpense, Limit: floatPtr(800)},
			{Name: "Salary", Type: model.CategoryTypeIncome},
		})
		require.NoError(t, err)
		assert.Equal(t, "2025-07", state.Meta.Month)
		assert.Empty(t, state.Transactions)

		require.Len(t, state.Categories, 2)
		assert.Nil(t, state.FindCategory(groceries.ID))
		assert.Equal(t, "Rent", state.Categories[0].Name)
		assert.NotEmpty(t, state.Categories[0].ID)
		assert.Nil(t, state.Categories[1].Limit)
	})

	t.Run("empty list starts the month with no categories", func(t *testing.T) {
		svc, _ := seedMonth(t)

		state, err := svc.RolloverWithCategories(ctx, "2025-07", 1200, []NewCategory{})
		require.NoError(t, err)
		assert.Empty(t, state.Categories)
		assert.Empty(t, state.Transactions)
	})

	t.Run("an invalid replacement category aborts the rollover", func(t *testing.T) {
		svc, groceries := seedMonth(t)

		_, err := svc.RolloverWithCategories(ctx, "2025-07", 1200, []NewCategory{
			{Name: "", Type: model.CategoryTypeExpense},
		})
		require.ErrorIs(t, err, ErrValidation)

		state, err := svc.State(ctx)
		require.NoError(t, err)
		assert.Equal(t, "2025-06", state.Meta.Month)
		require.Len(t, state.Transactions, 1)
		assert.NotNil(t, state.FindCategory(groceries.ID))
	})
}

func TestClearTransactions(t *testing.T) {
	ctx := context.Background()
	svc, groceries := seedMonth(t)

	state, err := svc.ClearTransactions(ctx)
	require.NoError(t, err)
	assert.Empty(t, state.Transactions)
	assert.Equal(t, "2025-06", state.Meta.Month)
	assert.Equal(t, 1000.0, state.Meta.BaseBudget)
	assert.NotNil(t, state.FindCategory(groceries.ID))
}

func TestClearAllData(t *testing.T) {
	ctx := context.Background()
	svc, _ := seedMonth(t)

	require.NoError(t, svc.ClearAllData(ctx))

	state, err := svc.State(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultState(), state)
}
