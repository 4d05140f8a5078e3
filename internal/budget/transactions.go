package budget

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/Rehannah/Pinch-Budget-Companion/internal/model"
)

// NewTransaction is the input for recording a transaction. CategoryID is
// not hard-validated against existing categories: the ledger tolerates
// dangling references the same way it tolerates them after a category is
// removed.
type NewTransaction struct {
	Date        string
	CategoryID  string
	Description string
	Type        model.CategoryType
	Amount      float64
}

// TransactionPatch is a partial transaction update. Nil fields are left
// unchanged.
type TransactionPatch struct {
	Date        *string
	CategoryID  *string
	Description *string
	Type        *model.CategoryType
	Amount      *float64
}

func (t NewTransaction) validate(month string) error {
	if t.Amount <= 0 {
		return fmt.Errorf("%w: amount must be greater than zero", ErrValidation)
	}
	if !t.Type.Valid() {
		return fmt.Errorf("%w: transaction type must be income or expense: %q", ErrValidation, t.Type)
	}
	return validateDate(t.Date, month)
}

// AddTransaction validates the input, appends the transaction, and
// persists. Limit and budget overruns are not rejected here; use
// PlanTransaction and CommitTransaction for the pre-commit override flow.
func (s *Service) AddTransaction(ctx context.Context, input NewTransaction) (model.Transaction, error) {
	return s.CommitTransaction(ctx, input, nil)
}

// EditTransaction shallow-merges the patch into an existing transaction.
// Returns (nil, nil) when the id does not exist.
func (s *Service) EditTransaction(ctx context.Context, id string, patch TransactionPatch) (*model.Transaction, error) {
	if patch.Amount != nil && *patch.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be greater than zero", ErrValidation)
	}
	if patch.Type != nil && !patch.Type.Valid() {
		return nil, fmt.Errorf("%w: transaction type must be income or expense: %q", ErrValidation, *patch.Type)
	}

	state, err := s.store.Get(ctx)
	if err != nil {
		return nil, err
	}

	if patch.Date != nil {
		if err := validateDate(*patch.Date, state.Meta.Month); err != nil {
			return nil, err
		}
	}

	tx := state.FindTransaction(id)
	if tx == nil {
		return nil, nil
	}

	if patch.Date != nil {
		tx.Date = *patch.Date
	}
	if patch.Amount != nil {
		tx.Amount = *patch.Amount
	}
	if patch.Type != nil {
		tx.Type = *patch.Type
	}
	if patch.CategoryID != nil {
		tx.CategoryID = *patch.CategoryID
	}
	if patch.Description != nil {
		tx.Description = *patch.Description
	}

	updated := *tx
	if err := s.store.Save(ctx, state); err != nil {
		return nil, err
	}

	slog.Debug("edited transaction", "id", id)
	return &updated, nil
}

// DeleteTransaction removes the transaction by id. Deleting an absent id is
// a no-op.
func (s *Service) DeleteTransaction(ctx context.Context, id string) error {
	state, err := s.store.Get(ctx)
	if err != nil {
		return err
	}

	kept := state.Transactions[:0]
	for _, tx := range state.Transactions {
		if tx.ID != id {
			kept = append(kept, tx)
		}
	}
	if len(kept) == len(state.Transactions) {
		return nil
	}
	state.Transactions = kept

	if err := s.store.Save(ctx, state); err != nil {
		return err
	}

	slog.Debug("deleted transaction", "id", id)
	return nil
}

// Donor is an expense category with unspent capacity that could fund an
// overrunning transaction.
type Donor struct {
	Category  model.Category
	Available float64
}

// Plan describes what committing a transaction would do to the soft
// invariants. A plan with no overruns commits cleanly; otherwise the caller
// chooses an override (transfer, budget increase) or cancels, and nothing
// has been persisted yet either way.
type Plan struct {
	Donors               []Donor
	CategoryShortfall    float64
	BudgetShortfall      float64
	ExceedsCategoryLimit bool
	ExceedsBaseBudget    bool
}

// NeedsOverride reports whether committing as-is would break a soft invariant.
func (p Plan) NeedsOverride() bool {
	return p.ExceedsCategoryLimit || p.ExceedsBaseBudget
}

// PlanTransaction evaluates a prospective transaction against the current
// state without mutating anything.
func (s *Service) PlanTransaction(ctx context.Context, input NewTransaction) (Plan, error) {
	state, err := s.store.Get(ctx)
	if err != nil {
		return Plan{}, err
	}
	if err := input.validate(state.Meta.Month); err != nil {
		return Plan{}, err
	}
	return planTransaction(state, input), nil
}

func planTransaction(state *model.AppState, input NewTransaction) Plan {
	var plan Plan
	if input.Type != model.CategoryTypeExpense {
		return plan
	}

	if cat := state.FindCategory(input.CategoryID); cat != nil && cat.IsExpense() {
		spent := SpentInCategory(state, cat.ID)
		if over := spent + input.Amount - cat.LimitValue(); over > 0 {
			plan.ExceedsCategoryLimit = true
			plan.CategoryShortfall = over
		}
	}

	if over := TotalExpense(state) + input.Amount - state.Meta.BaseBudget; over > 0 {
		plan.ExceedsBaseBudget = true
		plan.BudgetShortfall = over
	}

	if plan.ExceedsCategoryLimit {
		for _, cat := range state.Categories {
			if !cat.IsExpense() || cat.ID == input.CategoryID {
				continue
			}
			if available := cat.LimitValue() - SpentInCategory(state, cat.ID); available > 0 {
				plan.Donors = append(plan.Donors, Donor{Category: cat.Clone(), Available: available})
			}
		}
		sort.Slice(plan.Donors, func(i, j int) bool {
			return plan.Donors[i].Available > plan.Donors[j].Available
		})
	}

	return plan
}

// Override is the caller's remediation for an overrunning transaction:
// either move capacity from a donor category into the target, or raise the
// base budget. Cancelling is simply not committing.
type Override struct {
	// TransferFromID moves TransferAmount of capacity from this expense
	// category into the transaction's category before the commit.
	TransferFromID string
	TransferAmount float64
	// IncreaseBudgetBy raises the base budget before the commit.
	IncreaseBudgetBy float64
}

// CommitTransaction validates, applies the optional override, appends the
// transaction, and persists — as one logical operation with a single write.
// If any step fails, nothing is persisted.
func (s *Service) CommitTransaction(ctx context.Context, input NewTransaction, override *Override) (model.Transaction, error) {
	state, err := s.store.Get(ctx)
	if err != nil {
		return model.Transaction{}, err
	}
	if err := input.validate(state.Meta.Month); err != nil {
		return model.Transaction{}, err
	}

	if override != nil {
		if override.TransferFromID != "" {
			if _, _, err := applyTransfer(state, override.TransferFromID, input.CategoryID, override.TransferAmount); err != nil {
				return model.Transaction{}, err
			}
		}
		if override.IncreaseBudgetBy != 0 {
			if override.IncreaseBudgetBy < 0 {
				return model.Transaction{}, fmt.Errorf("%w: budget increase must be positive", ErrValidation)
			}
			state.Meta.BaseBudget += override.IncreaseBudgetBy
		}
	}

	tx := model.Transaction{
		ID:          newID(),
		Date:        input.Date,
		Amount:      input.Amount,
		Type:        input.Type,
		CategoryID:  input.CategoryID,
		Description: input.Description,
	}
	state.Transactions = append(state.Transactions, tx)

	if err := s.store.Save(ctx, state); err != nil {
		return model.Transaction{}, err
	}

	slog.Info("recorded transaction",
		"id", tx.ID,
		"type", tx.Type,
		"amount", tx.Amount,
		"category", tx.CategoryID)
	return tx, nil
}
