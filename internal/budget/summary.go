package budget

import (
	"github.com/Rehannah/Pinch-Budget-Companion/internal/model"
)

// CategorySummary is the derived position of a single category.
type CategorySummary struct {
	Category  model.Category
	Spent     float64
	Available float64 // limit − spent; the ceiling for outgoing transfers
	Percent   float64 // spent / limit, 0 when there is no limit
}

// Summary is the derived aggregate position of the whole budget. All fields
// are computed on read; nothing here is ever persisted.
type Summary struct {
	Categories     []CategorySummary
	TotalIncome    float64
	TotalExpense   float64
	Remaining      float64 // max(0, baseBudget − totalExpense)
	PercentSpent   float64 // totalExpense / baseBudget, 0 when baseBudget is 0
	AllocatedLimit float64 // sum of expense category limits
	Unallocated    float64 // baseBudget − allocated; negative flags over-allocation
}

// Summarize computes the aggregate view of a state.
func Summarize(state *model.AppState) Summary {
	summary := Summary{
		Categories: make([]CategorySummary, 0, len(state.Categories)),
	}

	spentByCategory := make(map[string]float64, len(state.Categories))
	for _, tx := range state.Transactions {
		if tx.IsExpense() {
			summary.TotalExpense += tx.Amount
			spentByCategory[tx.CategoryID] += tx.Amount
		} else {
			summary.TotalIncome += tx.Amount
		}
	}

	for _, cat := range state.Categories {
		spent := spentByCategory[cat.ID]
		cs := CategorySummary{Category: cat.Clone(), Spent: spent}
		if cat.IsExpense() {
			limit := cat.LimitValue()
			summary.AllocatedLimit += limit
			cs.Available = limit - spent
			if limit > 0 {
				cs.Percent = spent / limit
			}
		}
		summary.Categories = append(summary.Categories, cs)
	}

	base := state.Meta.BaseBudget
	summary.Remaining = base - summary.TotalExpense
	if summary.Remaining < 0 {
		summary.Remaining = 0
	}
	if base > 0 {
		summary.PercentSpent = summary.TotalExpense / base
	}
	summary.Unallocated = base - summary.AllocatedLimit

	return summary
}

// SpentInCategory returns the expense total recorded against a category.
func SpentInCategory(state *model.AppState, categoryID string) float64 {
	var spent float64
	for _, tx := range state.Transactions {
		if tx.IsExpense() && tx.CategoryID == categoryID {
			spent += tx.Amount
		}
	}
	return spent
}

// TotalExpense returns the sum of all expense transactions.
func TotalExpense(state *model.AppState) float64 {
	var total float64
	for _, tx := range state.Transactions {
		if tx.IsExpense() {
			total += tx.Amount
		}
	}
	return total
}

// Available returns a category's unspent capacity: limit − spent. Income
// categories have no capacity.
func Available(state *model.AppState, categoryID string) float64 {
	cat := state.FindCategory(categoryID)
	if cat == nil || !cat.IsExpense() {
		return 0
	}
	return cat.LimitValue() - SpentInCategory(state, categoryID)
}

// UnallocatedAmount returns baseBudget minus the sum of expense limits.
// A negative result means limits over-allocate the budget.
func UnallocatedAmount(state *model.AppState) float64 {
	var allocated float64
	for _, cat := range state.Categories {
		if cat.IsExpense() {
			allocated += cat.LimitValue()
		}
	}
	return state.Meta.BaseBudget - allocated
}

// WouldExceedLimit reports whether adding an expense of amount to the
// category would push its spend past its limit.
func WouldExceedLimit(state *model.AppState, categoryID string, amount float64) bool {
	cat := state.FindCategory(categoryID)
	if cat == nil || !cat.IsExpense() {
		return false
	}
	return SpentInCategory(state, categoryID)+amount > cat.LimitValue()
}

// WouldExceedBudget reports whether adding an expense of amount would push
// total expenses past the base budget.
func WouldExceedBudget(state *model.AppState, amount float64) bool {
	return TotalExpense(state)+amount > state.Meta.BaseBudget
}
