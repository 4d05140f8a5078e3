package budget

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rehannah/Pinch-Budget-Companion/internal/common"
	"github.com/Rehannah/Pinch-Budget-Companion/internal/model"
)

func TestTransferBetweenCategories(t *testing.T) {
	ctx := context.Background()

	// Rent limit 100, Fun limit 50 with 40 already spent.
	seed := func(t *testing.T) (*Service, model.Category, model.Category) {
		t.Helper()
		svc := newTestService(t)
		rent, err := svc.AddCategory(ctx, NewCategory{Name: "Rent", Type: model.CategoryTypeExpense, Limit: floatPtr(100)})
		require.NoError(t, err)
		fun, err := svc.AddCategory(ctx, NewCategory{Name: "Fun", Type: model.CategoryTypeExpense, Limit: floatPtr(50)})
		require.NoError(t, err)
		_, err = svc.AddTransaction(ctx, NewTransaction{
			Date: "2025-06-05", Amount: 40, Type: model.CategoryTypeExpense, CategoryID: fun.ID,
		})
		require.NoError(t, err)
		return svc, rent, fun
	}

	t.Run("moves capacity within availability", func(t *testing.T) {
		svc, rent, fun := seed(t)

		result, err := svc.TransferBetweenCategories(ctx, fun.ID, rent.ID, 5)
		require.NoError(t, err)
		assert.Equal(t, 45.0, result.From.LimitValue())
		assert.Equal(t, 105.0, result.To.LimitValue())

		state, err := svc.State(ctx)
		require.NoError(t, err)
		assert.Equal(t, 45.0, state.FindCategory(fun.ID).LimitValue())
		assert.Equal(t, 105.0, state.FindCategory(rent.ID).LimitValue())
		// Historical transactions stay where they are
		assert.Equal(t, 40.0, SpentInCategory(state, fun.ID))
	})

	t.Run("availability is limit minus spent, not the raw limit", func(t *testing.T) {
		svc, rent, fun := seed(t)

		// Fun has 50 − 40 = 10 available; 30 must fail even though 30 < 50.
		_, err := svc.TransferBetweenCategories(ctx, fun.ID, rent.ID, 30)
		require.ErrorIs(t, err, ErrInsufficientFunds)

		state, err := svc.State(ctx)
		require.NoError(t, err)
		assert.Equal(t, 50.0, state.FindCategory(fun.ID).LimitValue())
		assert.Equal(t, 100.0, state.FindCategory(rent.ID).LimitValue())
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		svc, rent, fun := seed(t)

		for _, amount := range []float64{0, -10} {
			_, err := svc.TransferBetweenCategories(ctx, fun.ID, rent.ID, amount)
			require.ErrorIs(t, err, ErrValidation)
		}
	})

	t.Run("rejects transfers to the same category", func(t *testing.T) {
		svc, rent, _ := seed(t)

		_, err := svc.TransferBetweenCategories(ctx, rent.ID, rent.ID, 10)
		require.ErrorIs(t, err, ErrInvalidCategory)
	})

	t.Run("rejects income categories on either side", func(t *testing.T) {
		svc, rent, _ := seed(t)
		salary, err := svc.AddCategory(ctx, NewCategory{Name: "Salary", Type: model.CategoryTypeIncome})
		require.NoError(t, err)

		_, err = svc.TransferBetweenCategories(ctx, salary.ID, rent.ID, 10)
		require.ErrorIs(t, err, ErrInvalidCategory)

		_, err = svc.TransferBetweenCategories(ctx, rent.ID, salary.ID, 10)
		require.ErrorIs(t, err, ErrInvalidCategory)
	})

	t.Run("unknown categories are not found", func(t *testing.T) {
		svc, rent, _ := seed(t)

		_, err := svc.TransferBetweenCategories(ctx, "missing", rent.ID, 10)
		require.ErrorIs(t, err, common.ErrNotFound)

		_, err = svc.TransferBetweenCategories(ctx, rent.ID, "missing", 10)
		require.ErrorIs(t, err, common.ErrNotFound)
	})
}
