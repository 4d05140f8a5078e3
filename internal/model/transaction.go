package model

// Transaction is a single dated income or expense entry. The amount is
// always positive; the direction is carried by Type. CategoryID is a weak
// reference: it may dangle after the category is removed, and readers are
// expected to render such entries as uncategorized.
type Transaction struct {
	ID          string       `json:"id"`
	Date        string       `json:"date"` // YYYY-MM-DD, within the current month
	Type        CategoryType `json:"type"`
	CategoryID  string       `json:"categoryId"`
	Description string       `json:"description,omitempty"`
	Amount      float64      `json:"amount"`
}

// IsExpense reports whether the transaction counts against the budget.
func (t Transaction) IsExpense() bool {
	return t.Type == CategoryTypeExpense
}
