// Package storage provides the data persistence layer for the pinch application.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Rehannah/Pinch-Budget-Companion/internal/model"
)

// Validation errors.
var (
	ErrNilContext  = errors.New("context cannot be nil")
	ErrEmptyString = errors.New("string parameter cannot be empty")
	ErrNilState    = errors.New("state cannot be nil")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateState ensures a state record is safe to persist. The store does
// not police domain invariants; it only refuses records it cannot encode.
func validateState(state *model.AppState) error {
	if state == nil {
		return ErrNilState
	}
	return nil
}
