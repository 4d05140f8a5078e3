package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/Rehannah/Pinch-Budget-Companion/internal/model"
)

// UncategorizedName is how dangling category references are rendered.
const UncategorizedName = "Uncategorized"

// CSV writes the transaction list with one row per transaction: date,
// amount, type, category name, description.
func CSV(w io.Writer, state *model.AppState) error {
	names := make(map[string]string, len(state.Categories))
	for _, cat := range state.Categories {
		names[cat.ID] = cat.Name
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Date", "Amount", "Type", "Category", "Description"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, tx := range state.Transactions {
		name, ok := names[tx.CategoryID]
		if !ok {
			name = UncategorizedName
		}
		record := []string{
			tx.Date,
			strconv.FormatFloat(tx.Amount, 'f', 2, 64),
			string(tx.Type),
			name,
			tx.Description,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}
