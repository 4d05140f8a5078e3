package budget

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Rehannah/Pinch-Budget-Companion/internal/model"
)

// RolloverKeepingCategories starts a new period: sets the month and base
// budget and clears all transactions. Categories carry forward unchanged,
// current limits included.
func (s *Service) RolloverKeepingCategories(ctx context.Context, month string, baseBudget float64) (*model.AppState, error) {
	if err := validateMonth(month); err != nil {
		return nil, err
	}
	if baseBudget < 0 {
		return nil, fmt.Errorf("%w: base budget cannot be negative", ErrValidation)
	}

	state, err := s.store.Get(ctx)
	if err != nil {
		return nil, err
	}

	state.Meta.Month = month
	state.Meta.BaseBudget = baseBudget
	state.Transactions = []model.Transaction{}

	if err := s.store.Save(ctx, state); err != nil {
		return nil, err
	}

	slog.Info("rolled over to new month",
		"month", month,
		"base_budget", baseBudget,
		"categories", len(state.Categories))
	return state, nil
}

// RolloverWithCategories starts a new period with an authoritative category
// list: transactions are cleared and every supplied category gets a fresh
// id. Old category ids do not carry forward; that only breaks references
// held by transactions cleared in the same write. An empty list starts the
// month with no categories at all.
func (s *Service) RolloverWithCategories(ctx context.Context, month string, baseBudget float64, categories []NewCategory) (*model.AppState, error) {
	if err := validateMonth(month); err != nil {
		return nil, err
	}
	if baseBudget < 0 {
		return nil, fmt.Errorf("%w: base budget cannot be negative", ErrValidation)
	}
	for i, input := range categories {
		if err := input.validate(); err != nil {
			return nil, fmt.Errorf("category at index %d: %w", i, err)
		}
	}

	state, err := s.store.Get(ctx)
	if err != nil {
		return nil, err
	}

	state.Meta.Month = month
	state.Meta.BaseBudget = baseBudget
	state.Transactions = []model.Transaction{}
	state.Categories = make([]model.Category, 0, len(categories))
	for _, input := range categories {
		state.Categories = append(state.Categories, input.build())
	}

	if err := s.store.Save(ctx, state); err != nil {
		return nil, err
	}

	slog.Info("rolled over with replacement categories",
		"month", month,
		"base_budget", baseBudget,
		"categories", len(state.Categories))
	return state, nil
}

// ClearTransactions clears the ledger but preserves categories, month, and
// budget, for "restart the same month" flows.
func (s *Service) ClearTransactions(ctx context.Context) (*model.AppState, error) {
	state, err := s.store.Get(ctx)
	if err != nil {
		return nil, err
	}

	state.Transactions = []model.Transaction{}

	if err := s.store.Save(ctx, state); err != nil {
		return nil, err
	}

	slog.Info("cleared transactions", "categories", len(state.Categories))
	return state, nil
}

// ClearAllData wipes the entire persisted record. The next load starts from
// the default state.
func (s *Service) ClearAllData(ctx context.Context) error {
	return s.store.Clear(ctx)
}
