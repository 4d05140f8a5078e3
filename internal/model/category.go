package model

// CategoryType indicates whether a category classifies income or expenses.
type CategoryType string

const (
	// CategoryTypeIncome represents categories for income transactions.
	CategoryTypeIncome CategoryType = "income"
	// CategoryTypeExpense represents categories for expense transactions.
	CategoryTypeExpense CategoryType = "expense"
)

// Valid reports whether the type is one of the known category types.
func (t CategoryType) Valid() bool {
	return t == CategoryTypeIncome || t == CategoryTypeExpense
}

// Category is a named bucket used to classify transactions. Expense
// categories carry a spending limit; income categories never do, so Limit
// is nil exactly when Type is income.
type Category struct {
	Limit *float64     `json:"limit,omitempty"`
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	Type  CategoryType `json:"type"`
}

// NewExpenseCategory creates an expense category with a normalized limit.
// Negative limits are clamped to zero.
func NewExpenseCategory(id, name string, limit float64) Category {
	if limit < 0 {
		limit = 0
	}
	return Category{ID: id, Name: name, Type: CategoryTypeExpense, Limit: &limit}
}

// NewIncomeCategory creates an income category. Income categories have no
// notion of a limit.
func NewIncomeCategory(id, name string) Category {
	return Category{ID: id, Name: name, Type: CategoryTypeIncome}
}

// IsExpense reports whether the category caps spending.
func (c Category) IsExpense() bool {
	return c.Type == CategoryTypeExpense
}

// LimitValue returns the spending limit, or 0 for income categories.
func (c Category) LimitValue() float64 {
	if c.Limit == nil {
		return 0
	}
	return *c.Limit
}

// Clone returns a deep copy of the category.
func (c Category) Clone() Category {
	if c.Limit != nil {
		limit := *c.Limit
		c.Limit = &limit
	}
	return c
}
