package export

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rehannah/Pinch-Budget-Companion/internal/model"
)

func sampleState() *model.AppState {
	state := model.DefaultState()
	state.Meta.Month = "2025-06"
	state.Meta.BaseBudget = 1000
	state.Categories = []model.Category{
		model.NewExpenseCategory("c1", "Groceries", 200),
		model.NewIncomeCategory("c2", "Salary"),
	}
	state.Transactions = []model.Transaction{
		{ID: "t1", Date: "2025-06-03", Type: model.CategoryTypeExpense, CategoryID: "c1", Amount: 42.5, Description: "weekly shop"},
		{ID: "t2", Date: "2025-06-15", Type: model.CategoryTypeIncome, CategoryID: "c2", Amount: 2000, Description: "payday"},
		{ID: "t3", Date: "2025-06-20", Type: model.CategoryTypeExpense, CategoryID: "gone", Amount: 5, Description: "mystery"},
	}
	return state
}

func TestJSON(t *testing.T) {
	want := sampleState()

	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, want))

	var got model.AppState
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, want, &got)

	// The dump is indented for humans
	assert.Contains(t, buf.String(), "\n  ")
}

func TestCSV(t *testing.T) {
	t.Run("one row per transaction", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, CSV(&buf, sampleState()))

		lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
		require.Len(t, lines, 4)
		assert.Equal(t, "Date,Amount,Type,Category,Description", string(lines[0]))
		assert.Equal(t, "2025-06-03,42.50,expense,Groceries,weekly shop", string(lines[1]))
		assert.Equal(t, "2025-06-15,2000.00,income,Salary,payday", string(lines[2]))
	})

	t.Run("dangling category references render as Uncategorized", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, CSV(&buf, sampleState()))

		lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
		assert.Equal(t, "2025-06-20,5.00,expense,Uncategorized,mystery", string(lines[3]))
	})

	t.Run("empty state writes just the header", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, CSV(&buf, model.DefaultState()))

		assert.Equal(t, "Date,Amount,Type,Category,Description\n", buf.String())
	})
}

func TestWriteSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "snapshot.json")
	want := sampleState()

	require.NoError(t, WriteSnapshot(path, want))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var got model.AppState
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, want, &got)

	// No temp files left behind
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestSnapshotSubscriber(t *testing.T) {
	t.Run("writes when auto-save is enabled", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "snapshot.json")
		state := sampleState()
		state.Meta.AutoSaveToFile = true

		SnapshotSubscriber(path)(state)

		_, err := os.Stat(path)
		require.NoError(t, err)
	})

	t.Run("does nothing when auto-save is off", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "snapshot.json")
		state := sampleState()
		state.Meta.AutoSaveToFile = false

		SnapshotSubscriber(path)(state)

		_, err := os.Stat(path)
		require.True(t, os.IsNotExist(err))
	})
}
