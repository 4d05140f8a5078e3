package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/Rehannah/Pinch-Budget-Companion/internal/budget"
	"github.com/Rehannah/Pinch-Budget-Companion/internal/config"
	"github.com/Rehannah/Pinch-Budget-Companion/internal/export"
	"github.com/Rehannah/Pinch-Budget-Companion/internal/model"
	"github.com/Rehannah/Pinch-Budget-Companion/internal/service"
	"github.com/Rehannah/Pinch-Budget-Companion/internal/storage"
)

// initStore initializes the state store with proper path expansion.
func initStore() (service.Store, error) {
	// Get database path from config
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "$HOME/.local/share/pinch/pinch.db"
	}

	// Expand tilde and environment variables
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStore(dbPath)
	if err != nil {
		return nil, err
	}

	return store, nil
}

// initService opens the store and wires the auto-save snapshot subscriber.
// The subscriber only fires when the persisted state has autoSaveToFile set.
func initService() (*budget.Service, service.Store, error) {
	store, err := initStore()
	if err != nil {
		return nil, nil, err
	}

	snapshotPath := viper.GetString("export.snapshot_path")
	if snapshotPath == "" {
		snapshotPath = "$HOME/.local/share/pinch/snapshot.json"
	}
	store.Subscribe(export.SnapshotSubscriber(config.ExpandPath(snapshotPath)))

	return budget.NewService(store), store, nil
}

// resolveCategory finds a category by id or by unique name.
func resolveCategory(ctx context.Context, svc *budget.Service, ref string) (*model.Category, error) {
	state, err := svc.State(ctx)
	if err != nil {
		return nil, err
	}

	if cat := state.FindCategory(ref); cat != nil {
		return cat, nil
	}

	var matches []model.Category
	for _, cat := range state.Categories {
		if strings.EqualFold(cat.Name, ref) {
			matches = append(matches, cat)
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("no category matching %q", ref)
	case 1:
		cat := matches[0]
		return &cat, nil
	default:
		return nil, fmt.Errorf("category name %q is ambiguous; use the id", ref)
	}
}

// parseCategorySpec parses the "Name:limit" or "Name::income" shorthand
// used by rollover. The limit part is only meaningful for expense
// categories.
func parseCategorySpec(spec string) (budget.NewCategory, error) {
	parts := strings.Split(spec, ":")
	if strings.TrimSpace(parts[0]) == "" {
		return budget.NewCategory{}, fmt.Errorf("category spec %q has no name", spec)
	}

	input := budget.NewCategory{
		Name: strings.TrimSpace(parts[0]),
		Type: model.CategoryTypeExpense,
	}

	if len(parts) > 2 && parts[2] != "" {
		categoryType := model.CategoryType(parts[2])
		if !categoryType.Valid() {
			return budget.NewCategory{}, fmt.Errorf("category spec %q has invalid type %q", spec, parts[2])
		}
		input.Type = categoryType
	}

	if len(parts) > 1 && parts[1] != "" {
		limit, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return budget.NewCategory{}, fmt.Errorf("category spec %q has invalid limit: %w", spec, err)
		}
		input.Limit = &limit
	}

	return input, nil
}

// formatMoney renders an amount for terminal output.
func formatMoney(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}
