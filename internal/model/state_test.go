package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryConstructors(t *testing.T) {
	t.Run("expense categories carry a limit", func(t *testing.T) {
		cat := NewExpenseCategory("c1", "Groceries", 200)
		require.NotNil(t, cat.Limit)
		assert.Equal(t, 200.0, *cat.Limit)
		assert.True(t, cat.IsExpense())
		assert.Equal(t, 200.0, cat.LimitValue())
	})

	t.Run("negative limits are clamped", func(t *testing.T) {
		cat := NewExpenseCategory("c1", "Groceries", -5)
		assert.Equal(t, 0.0, cat.LimitValue())
	})

	t.Run("income categories have no limit", func(t *testing.T) {
		cat := NewIncomeCategory("c2", "Salary")
		assert.Nil(t, cat.Limit)
		assert.False(t, cat.IsExpense())
		assert.Equal(t, 0.0, cat.LimitValue())
	})
}

func TestCategoryJSON(t *testing.T) {
	t.Run("income categories omit the limit field", func(t *testing.T) {
		raw, err := json.Marshal(NewIncomeCategory("c1", "Salary"))
		require.NoError(t, err)
		assert.NotContains(t, string(raw), "limit")
	})

	t.Run("expense categories include a zero limit", func(t *testing.T) {
		raw, err := json.Marshal(NewExpenseCategory("c1", "Misc", 0))
		require.NoError(t, err)
		assert.Contains(t, string(raw), `"limit":0`)
	})
}

func TestAppStateClone(t *testing.T) {
	original := DefaultState()
	original.Meta.Month = "2025-06"
	original.Categories = []Category{NewExpenseCategory("c1", "Rent", 500)}
	original.Transactions = []Transaction{
		{ID: "t1", Date: "2025-06-01", Type: CategoryTypeExpense, CategoryID: "c1", Amount: 500},
	}

	clone := original.Clone()
	require.Equal(t, original, clone)

	// Mutating the clone must not leak into the original
	clone.Meta.Month = "2025-07"
	*clone.Categories[0].Limit = 900
	clone.Transactions[0].Amount = 1

	assert.Equal(t, "2025-06", original.Meta.Month)
	assert.Equal(t, 500.0, *original.Categories[0].Limit)
	assert.Equal(t, 500.0, original.Transactions[0].Amount)
}

func TestAppStateFind(t *testing.T) {
	state := DefaultState()
	state.Categories = []Category{NewExpenseCategory("c1", "Rent", 500)}
	state.Transactions = []Transaction{{ID: "t1", Date: "2025-06-01", Type: CategoryTypeExpense, Amount: 10}}

	require.NotNil(t, state.FindCategory("c1"))
	assert.Nil(t, state.FindCategory("missing"))

	require.NotNil(t, state.FindTransaction("t1"))
	assert.Nil(t, state.FindTransaction("missing"))

	// Found pointers alias the state, so edits stick
	state.FindCategory("c1").Name = "Housing"
	assert.Equal(t, "Housing", state.Categories[0].Name)
}
