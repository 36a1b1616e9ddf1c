package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/striderush/StrideRush_Go/internal/database/postgres"
	"github.com/striderush/StrideRush_Go/internal/repository"
)

// Repositories holds all repository implementations used by the application.
// This provides a centralized location for repository initialization and
// makes dependency injection clearer.
type Repositories struct {
	Movement    repository.Movement
	Ledger      repository.Ledger
	Character   repository.Character
	Cosmetic    repository.Cosmetic
	Store       repository.Store
	Achievement repository.Achievement
	Game        repository.Game
	Booster     repository.Booster
}

// InitializeRepositories creates all repository implementations
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Movement:    postgres.NewMovementRepository(dbPool),
		Ledger:      postgres.NewLedgerRepository(dbPool),
		Character:   postgres.NewCharacterRepository(dbPool),
		Cosmetic:    postgres.NewCosmeticRepository(dbPool),
		Store:       postgres.NewStoreRepository(dbPool),
		Achievement: postgres.NewAchievementRepository(dbPool),
		Game:        postgres.NewGameRepository(dbPool),
		Booster:     postgres.NewBoosterRepository(dbPool),
	}
}
