package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/Rehannah/Pinch-Budget-Companion/internal/common"
	"github.com/Rehannah/Pinch-Budget-Companion/internal/model"
	"github.com/Rehannah/Pinch-Budget-Companion/internal/service"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteStore implements the service.Store interface using SQLite. The
// entire AppState is kept as one JSON record in a single-row table, so a
// save is always a single atomic write.
type SQLiteStore struct {
	db          *sql.DB
	subscribers *subscriberList
	dbPath      string
}

const stateSchema = `
	CREATE TABLE IF NOT EXISTS app_state (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		payload TEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`

// NewSQLiteStore creates a new SQLite-backed state store.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	// Validate input
	if err := validateString(dbPath, "dbPath"); err != nil {
		return nil, err
	}

	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Open database
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Set connection pool settings
	db.SetMaxOpenConns(1) // SQLite doesn't benefit from multiple connections
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	// Test connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.Exec(stateSchema); err != nil {
		return nil, fmt.Errorf("failed to create state table: %w", err)
	}

	return &SQLiteStore{
		db:          db,
		dbPath:      dbPath,
		subscribers: newSubscriberList(),
	}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Load returns the persisted state, writing the default state first if the
// store is empty.
func (s *SQLiteStore) Load(ctx context.Context) (*model.AppState, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	state, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	if state != nil {
		return state, nil
	}

	state = model.DefaultState()
	if err := s.write(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to initialize state: %w", err)
	}

	slog.Debug("initialized default state", "path", s.dbPath)
	return state, nil
}

// Get re-reads the current persisted state. There is no in-memory cache, so
// every caller observes the latest committed record.
func (s *SQLiteStore) Get(ctx context.Context) (*model.AppState, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	state, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return model.DefaultState(), nil
	}
	return state, nil
}

// Save persists the full state atomically, then notifies subscribers.
func (s *SQLiteStore) Save(ctx context.Context, state *model.AppState) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateState(state); err != nil {
		return err
	}

	if err := s.write(ctx, state); err != nil {
		return err
	}

	slog.Debug("saved state",
		"categories", len(state.Categories),
		"transactions", len(state.Transactions))

	s.subscribers.notify(state)
	return nil
}

// Clear deletes all persisted data.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM app_state`); err != nil {
		return fmt.Errorf("failed to clear state: %w", err)
	}

	slog.Info("cleared all persisted data", "path", s.dbPath)
	return nil
}

// Subscribe registers a state-change listener.
func (s *SQLiteStore) Subscribe(fn service.Listener) func() {
	return s.subscribers.add(fn)
}

// read returns the stored state, or nil when nothing has been persisted.
func (s *SQLiteStore) read(ctx context.Context) (*model.AppState, error) {
	var payload string
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM app_state WHERE id = 1`).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read state: %w", err)
	}

	var state model.AppState
	if err := json.Unmarshal([]byte(payload), &state); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStateCorrupted, err)
	}
	return &state, nil
}

// write serializes and upserts the single state row.
func (s *SQLiteStore) write(ctx context.Context, state *model.AppState) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}

	query := `
		INSERT INTO app_state (id, payload, updated_at)
		VALUES (1, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			payload = excluded.payload,
			updated_at = excluded.updated_at`

	if _, err := s.db.ExecContext(ctx, query, string(payload), time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to write state: %w", err)
	}
	return nil
}
