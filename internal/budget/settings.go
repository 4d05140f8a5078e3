package budget

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/Rehannah/Pinch-Budget-Companion/internal/model"
)

// SetSaveLocation changes where exported snapshots go and returns the
// updated metadata.
func (s *Service) SetSaveLocation(ctx context.Context, location model.SaveLocation) (model.Meta, error) {
	if location != model.SaveLocationLocal && location != model.SaveLocationDownload {
		return model.Meta{}, fmt.Errorf("%w: save location must be local or download: %q", ErrValidation, location)
	}

	state, err := s.store.Get(ctx)
	if err != nil {
		return model.Meta{}, err
	}

	state.Meta.SaveLocation = location
	if err := s.store.Save(ctx, state); err != nil {
		return model.Meta{}, err
	}
	return state.Meta, nil
}

// SetAutoSaveToFile toggles snapshot export on every state change.
func (s *Service) SetAutoSaveToFile(ctx context.Context, enabled bool) (model.Meta, error) {
	state, err := s.store.Get(ctx)
	if err != nil {
		return model.Meta{}, err
	}

	state.Meta.AutoSaveToFile = enabled
	if err := s.store.Save(ctx, state); err != nil {
		return model.Meta{}, err
	}
	return state.Meta, nil
}

// ImportState replaces the persisted state wholesale with a parsed JSON
// blob. There is no field-level merge and no schema validation beyond the
// parse; the caller is responsible for sanity-checking the blob first.
func (s *Service) ImportState(ctx context.Context, raw []byte) (*model.AppState, error) {
	var state model.AppState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("%w: state blob is not valid JSON: %v", ErrValidation, err)
	}

	if err := s.store.Save(ctx, &state); err != nil {
		return nil, err
	}

	slog.Info("imported state",
		"month", state.Meta.Month,
		"categories", len(state.Categories),
		"transactions", len(state.Transactions))
	return &state, nil
}
