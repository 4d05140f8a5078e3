package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/Rehannah/Pinch-Budget-Companion/internal/common"
	"github.com/Rehannah/Pinch-Budget-Companion/internal/model"
	"github.com/Rehannah/Pinch-Budget-Companion/internal/service"
)

// MemoryStore implements service.Store in memory. It round-trips the state
// through JSON on every save so it behaves like the SQLite store, and is
// used by engine tests and ephemeral runs.
type MemoryStore struct {
	payload     []byte
	subscribers *subscriberList
	mu          sync.RWMutex
}

// NewMemoryStore creates an empty in-memory state store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{subscribers: newSubscriberList()}
}

// Load returns the stored state, initializing it on first call.
func (s *MemoryStore) Load(ctx context.Context) (*model.AppState, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.payload == nil {
		state := model.DefaultState()
		payload, err := json.Marshal(state)
		if err != nil {
			return nil, fmt.Errorf("failed to encode state: %w", err)
		}
		s.payload = payload
		return state, nil
	}
	return s.decode()
}

// Get re-reads the stored state.
func (s *MemoryStore) Get(ctx context.Context) (*model.AppState, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.payload == nil {
		return model.DefaultState(), nil
	}
	return s.decode()
}

// Save stores the full state, then notifies subscribers.
func (s *MemoryStore) Save(ctx context.Context, state *model.AppState) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateState(state); err != nil {
		return err
	}

	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}

	s.mu.Lock()
	s.payload = payload
	s.mu.Unlock()

	s.subscribers.notify(state)
	return nil
}

// Clear deletes the stored state.
func (s *MemoryStore) Clear(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	s.payload = nil
	s.mu.Unlock()
	return nil
}

// Subscribe registers a state-change listener.
func (s *MemoryStore) Subscribe(fn service.Listener) func() {
	return s.subscribers.add(fn)
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error {
	return nil
}

func (s *MemoryStore) decode() (*model.AppState, error) {
	var state model.AppState
	if err := json.Unmarshal(s.payload, &state); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStateCorrupted, err)
	}
	return &state, nil
}
