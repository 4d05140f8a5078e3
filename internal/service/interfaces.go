// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/Rehannah/Pinch-Budget-Companion/internal/model"
)

// Listener receives the new state after every successful save. Delivery is
// synchronous and fire-and-forget; across rapid saves only "last save wins"
// may be assumed.
type Listener func(state *model.AppState)

// Store defines the contract for the persistence layer. The whole AppState
// is one record, and a single Save is the unit of atomicity.
type Store interface {
	// Load returns the persisted state, initializing storage with the
	// default state on first call.
	Load(ctx context.Context) (*model.AppState, error)

	// Get re-reads the current persisted state. It returns the default
	// state when nothing has been persisted yet, without initializing.
	Get(ctx context.Context) (*model.AppState, error)

	// Save persists the full state in a single write, then notifies
	// subscribers with the saved state.
	Save(ctx context.Context, state *model.AppState) error

	// Clear deletes all persisted data. The next Load reinitializes the
	// default state.
	Clear(ctx context.Context) error

	// Subscribe registers a listener and returns a function that removes it.
	Subscribe(fn Listener) (unsubscribe func())

	// Close releases storage resources.
	Close() error
}
