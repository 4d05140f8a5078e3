package budget

import "errors"

// Errors surfaced by the budget engine. Soft invariants (category limits vs
// spend, limits vs base budget) are never raised as errors; they are exposed
// through the summary queries for the caller to act on.
var (
	// ErrValidation indicates invalid input shape. State is left untouched.
	ErrValidation = errors.New("invalid input")
	// ErrInvalidCategory indicates a transfer involving an income category
	// or a category and itself.
	ErrInvalidCategory = errors.New("invalid category")
	// ErrInsufficientFunds indicates a transfer exceeding the source
	// category's unspent capacity.
	ErrInsufficientFunds = errors.New("insufficient available funds in source category")
)
