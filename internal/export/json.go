// Package export renders the persisted state for collaborators: JSON dumps,
// CSV transaction lists, and the auto-save snapshot subscriber. It reads
// state; it never mutates it.
package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Rehannah/Pinch-Budget-Companion/internal/model"
)

// JSON writes the full state dump, suitable for re-import.
func JSON(w io.Writer, state *model.AppState) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(state); err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}
	return nil
}
