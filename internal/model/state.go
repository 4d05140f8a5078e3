// Package model defines the persisted budget state and its entities.
package model

// SaveLocation selects where exported snapshots of the state go.
type SaveLocation string

const (
	// SaveLocationLocal keeps state in local storage only.
	SaveLocationLocal SaveLocation = "local"
	// SaveLocationDownload also writes snapshot files on save.
	SaveLocationDownload SaveLocation = "download"
)

// Meta holds the period settings for the current budget.
type Meta struct {
	Month          string       `json:"month"` // YYYY-MM, empty until onboarding
	SaveLocation   SaveLocation `json:"saveLocation"`
	BaseBudget     float64      `json:"baseBudget"`
	AutoSaveToFile bool         `json:"autoSaveToFile"`
}

// AppState is the single persisted record: period metadata plus ordered
// category and transaction lists. Insertion order is display order for
// categories and entry order for transactions.
type AppState struct {
	Meta         Meta          `json:"meta"`
	Categories   []Category    `json:"categories"`
	Transactions []Transaction `json:"transactions"`
}

// DefaultState returns the state used before any onboarding has happened.
func DefaultState() *AppState {
	return &AppState{
		Meta: Meta{
			Month:          "",
			BaseBudget:     0,
			SaveLocation:   SaveLocationLocal,
			AutoSaveToFile: false,
		},
		Categories:   []Category{},
		Transactions: []Transaction{},
	}
}

// Clone returns a deep copy, so mutations never leak into a state another
// caller is still reading.
func (s *AppState) Clone() *AppState {
	clone := &AppState{
		Meta:         s.Meta,
		Categories:   make([]Category, len(s.Categories)),
		Transactions: make([]Transaction, len(s.Transactions)),
	}
	for i, cat := range s.Categories {
		clone.Categories[i] = cat.Clone()
	}
	copy(clone.Transactions, s.Transactions)
	return clone
}

// FindCategory returns the category with the given id, or nil.
func (s *AppState) FindCategory(id string) *Category {
	for i := range s.Categories {
		if s.Categories[i].ID == id {
			return &s.Categories[i]
		}
	}
	return nil
}

// FindTransaction returns the transaction with the given id, or nil.
func (s *AppState) FindTransaction(id string) *Transaction {
	for i := range s.Transactions {
		if s.Transactions[i].ID == id {
			return &s.Transactions[i]
		}
	}
	return nil
}
