// Package budget implements the state management and validation engine:
// category management, the transaction ledger, capacity transfers, and
// month rollover over a single persisted AppState record.
package budget

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Rehannah/Pinch-Budget-Companion/internal/model"
	"github.com/Rehannah/Pinch-Budget-Companion/internal/service"
)

// Service owns all mutations of the persisted budget state. Every operation
// re-reads the state, validates, mutates a copy, and persists it with a
// single atomic save, so an interrupted operation never leaves a partial
// write behind.
type Service struct {
	store service.Store
}

// NewService creates a budget engine backed by the given store.
func NewService(store service.Store) *Service {
	return &Service{store: store}
}

// Store exposes the underlying store, for subscribers and collaborators.
func (s *Service) Store() service.Store {
	return s.store
}

// State returns the current persisted state.
func (s *Service) State(ctx context.Context) (*model.AppState, error) {
	return s.store.Get(ctx)
}

// newID generates an opaque unique identifier for categories and transactions.
func newID() string {
	return uuid.NewString()
}

// validateMonth checks a YYYY-MM period string. Empty is allowed and means
// "no period configured yet".
func validateMonth(month string) error {
	if month == "" {
		return nil
	}
	if _, err := time.Parse("2006-01", month); err != nil {
		return fmt.Errorf("%w: month must be in YYYY-MM format: %q", ErrValidation, month)
	}
	return nil
}

// validateDate checks a YYYY-MM-DD date string and, when a period is
// configured, that the day falls inside it.
func validateDate(date, month string) error {
	if date == "" {
		return fmt.Errorf("%w: date is required", ErrValidation)
	}
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("%w: date must be in YYYY-MM-DD format: %q", ErrValidation, date)
	}
	if month != "" && parsed.Format("2006-01") != month {
		return fmt.Errorf("%w: date %s is outside the current month %s", ErrValidation, date, month)
	}
	return nil
}
