package bootstrap

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/striderush/StrideRush_Go/internal/config"
	"github.com/striderush/StrideRush_Go/internal/database/postgres"
	"github.com/striderush/StrideRush_Go/internal/domain"
	"github.com/striderush/StrideRush_Go/internal/game"
)

// SyncConfigs pushes the DB-backed catalogues (store items and cosmetic
// templates) from their JSON configs into PostgreSQL. Mutable counters on
// those rows (stock, minted count) are left alone.
func SyncConfigs(ctx context.Context, dbPool *pgxpool.Pool) error {
	slog.Info(LogMsgSyncingStoreItems)
	items, err := loadStoreItems(config.ConfigPathStoreItems)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedLoadStoreItems, err)
	}
	if err := postgres.SyncStoreItems(ctx, dbPool, items); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedSyncStoreItems, err)
	}
	slog.Info(LogMsgStoreItemsSynced, "count", len(items))

	slog.Info(LogMsgSyncingCosmeticTemplates)
	templates, err := loadCosmeticTemplates(config.ConfigPathCosmeticTemplates)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedLoadCosmeticTemplates, err)
	}
	if err := postgres.SyncCosmeticTemplates(ctx, dbPool, templates); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedSyncCosmeticTemplates, err)
	}
	slog.Info(LogMsgCosmeticTemplatesSynced, "count", len(templates))

	return nil
}

// LoadAchievements reads the achievement catalogue. It is held in memory
// for the process lifetime; only claims are persisted.
func LoadAchievements(path string) ([]domain.Achievement, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadAchievements, err)
	}
	var cfg struct {
		Achievements []domain.Achievement `json:"achievements"`
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadAchievements, err)
	}
	if len(cfg.Achievements) == 0 {
		return nil, fmt.Errorf("%s: no achievements defined", ErrMsgFailedLoadAchievements)
	}
	return cfg.Achievements, nil
}

// LoadWheel reads the roulette wheel configuration. A missing file falls
// back to the built-in default wheel.
func LoadWheel(path string) (game.Wheel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Info("Roulette wheel config not found, using default", "path", path)
			return game.DefaultWheel(), nil
		}
		return game.Wheel{}, fmt.Errorf("%s: %w", ErrMsgFailedLoadRouletteWheel, err)
	}
	var wheel game.Wheel
	if err := json.Unmarshal(data, &wheel); err != nil {
		return game.Wheel{}, fmt.Errorf("%s: %w", ErrMsgFailedLoadRouletteWheel, err)
	}
	if err := wheel.Validate(); err != nil {
		return game.Wheel{}, fmt.Errorf("%s: %w", ErrMsgFailedLoadRouletteWheel, err)
	}
	return wheel, nil
}

func loadStoreItems(path string) ([]domain.StoreItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg struct {
		Items []domain.StoreItem `json:"items"`
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if len(cfg.Items) == 0 {
		return nil, fmt.Errorf("no store items defined")
	}
	return cfg.Items, nil
}

func loadCosmeticTemplates(path string) ([]domain.CosmeticTemplate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg struct {
		Templates []domain.CosmeticTemplate `json:"templates"`
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if len(cfg.Templates) == 0 {
		return nil, fmt.Errorf("no cosmetic templates defined")
	}
	return cfg.Templates, nil
}
