package budget

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rehannah/Pinch-Budget-Companion/internal/model"
)

func TestSetSaveLocation(t *testing.T) {
	ctx := context.Background()

	t.Run("switches between local and download", func(t *testing.T) {
		svc := newTestService(t)

		meta, err := svc.SetSaveLocation(ctx, model.SaveLocationDownload)
		require.NoError(t, err)
		assert.Equal(t, model.SaveLocationDownload, meta.SaveLocation)

		meta, err = svc.SetSaveLocation(ctx, model.SaveLocationLocal)
		require.NoError(t, err)
		assert.Equal(t, model.SaveLocationLocal, meta.SaveLocation)
	})

	t.Run("rejects unknown locations", func(t *testing.T) {
		svc := newTestService(t)

		_, err := svc.SetSaveLocation(ctx, "cloud")
		require.ErrorIs(t, err, ErrValidation)
	})
}

func TestSetAutoSaveToFile(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	meta, err := svc.SetAutoSaveToFile(ctx, true)
	require.NoError(t, err)
	assert.True(t, meta.AutoSaveToFile)

	state, err := svc.State(ctx)
	require.NoError(t, err)
	assert.True(t, state.Meta.AutoSaveToFile)

	meta, err = svc.SetAutoSaveToFile(ctx, false)
	require.NoError(t, err)
	assert.False(t, meta.AutoSaveToFile)
}

func TestImportState(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces the state wholesale", func(t *testing.T) {
		svc := newTestService(t)
		_, err := svc.AddCategory(ctx, NewCategory{Name: "Old", Type: model.CategoryTypeExpense})
		require.NoError(t, err)

		blob := []byte(`{
			"meta": {"month": "2025-09", "saveLocation": "local", "baseBudget": 750, "autoSaveToFile": false},
			"categories": [{"id": "c1", "name": "Rent", "type": "expense", "limit": 500}],
			"transactions": []
		}`)

		imported, err := svc.ImportState(ctx, blob)
		require.NoError(t, err)
		assert.Equal(t, "2025-09", imported.Meta.Month)
		assert.Equal(t, 750.0, imported.Meta.BaseBudget)

		state, err := svc.State(ctx)
		require.NoError(t, err)
		require.Len(t, state.Categories, 1)
		assert.Equal(t, "Rent", state.Categories[0].Name)
		assert.Nil(t, state.FindCategory("Old"))
	})

	t.Run("rejects malformed JSON without touching the state", func(t *testing.T) {
		svc := newTestService(t)
		cat, err := svc.AddCategory(ctx, NewCategory{Name: "Keep", Type: model.CategoryTypeExpense})
		require.NoError(t, err)

		_, err = svc.ImportState(ctx, []byte(`{not json`))
		require.ErrorIs(t, err, ErrValidation)

		state, err := svc.State(ctx)
		require.NoError(t, err)
		assert.NotNil(t, state.FindCategory(cat.ID))
	})
}
