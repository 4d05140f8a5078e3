package budget

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Rehannah/Pinch-Budget-Companion/internal/common"
	"github.com/Rehannah/Pinch-Budget-Companion/internal/model"
)

// TransferResult holds the two categories after a successful transfer.
type TransferResult struct {
	From model.Category
	To   model.Category
}

// TransferBetweenCategories moves budget capacity from one expense category
// to another. The transfer is limited by the source's unspent availability
// (limit − spent this period); historical transactions do not move.
func (s *Service) TransferBetweenCategories(ctx context.Context, fromID, toID string, amount float64) (TransferResult, error) {
	if amount <= 0 {
		return TransferResult{}, fmt.Errorf("%w: transfer amount must be greater than zero", ErrValidation)
	}

	state, err := s.store.Get(ctx)
	if err != nil {
		return TransferResult{}, err
	}

	from, to, err := applyTransfer(state, fromID, toID, amount)
	if err != nil {
		return TransferResult{}, err
	}

	if err := s.store.Save(ctx, state); err != nil {
		return TransferResult{}, err
	}

	slog.Info("transferred category capacity",
		"from", from.Name,
		"to", to.Name,
		"amount", amount)
	return TransferResult{From: from.Clone(), To: to.Clone()}, nil
}

// applyTransfer mutates the in-memory state; the caller persists. It is
// shared with the pre-commit override flow so "transfer then commit" stays
// a single write.
func applyTransfer(state *model.AppState, fromID, toID string, amount float64) (*model.Category, *model.Category, error) {
	if amount <= 0 {
		return nil, nil, fmt.Errorf("%w: transfer amount must be greater than zero", ErrValidation)
	}

	from := state.FindCategory(fromID)
	if from == nil {
		return nil, nil, fmt.Errorf("%w: source category %q", common.ErrNotFound, fromID)
	}
	to := state.FindCategory(toID)
	if to == nil {
		return nil, nil, fmt.Errorf("%w: destination category %q", common.ErrNotFound, toID)
	}
	if fromID == toID {
		return nil, nil, fmt.Errorf("%w: cannot transfer a category to itself", ErrInvalidCategory)
	}
	if !from.IsExpense() || !to.IsExpense() {
		return nil, nil, fmt.Errorf("%w: transfers are only supported between expense categories", ErrInvalidCategory)
	}

	available := from.LimitValue() - SpentInCategory(state, fromID)
	if available < amount {
		return nil, nil, fmt.Errorf("%w: %.2f available, %.2f requested", ErrInsufficientFunds, available, amount)
	}

	fromLimit := from.LimitValue() - amount
	toLimit := to.LimitValue() + amount
	from.Limit = &fromLimit
	to.Limit = &toLimit
	return from, to, nil
}
