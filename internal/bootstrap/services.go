package bootstrap

import (
	"fmt"

	"github.com/striderush/StrideRush_Go/internal/achievement"
	"github.com/striderush/StrideRush_Go/internal/booster"
	"github.com/striderush/StrideRush_Go/internal/character"
	"github.com/striderush/StrideRush_Go/internal/config"
	"github.com/striderush/StrideRush_Go/internal/cosmetic"
	"github.com/striderush/StrideRush_Go/internal/game"
	"github.com/striderush/StrideRush_Go/internal/geo"
	"github.com/striderush/StrideRush_Go/internal/ledger"
	"github.com/striderush/StrideRush_Go/internal/movement"
	"github.com/striderush/StrideRush_Go/internal/random"
	"github.com/striderush/StrideRush_Go/internal/server"
	"github.com/striderush/StrideRush_Go/internal/store"
	"github.com/striderush/StrideRush_Go/internal/stride"
	"github.com/striderush/StrideRush_Go/internal/transport"
)

// InitializeServices constructs the full service graph from the
// repositories and the static JSON configs.
func InitializeServices(repos *Repositories, cfg *config.Config) (*server.Services, error) {
	modeConfig, err := transport.LoadConfig(config.ConfigPathTransportModes)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadTransportModes, err)
	}
	if err := transport.ValidateConfig(modeConfig); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadTransportModes, err)
	}
	classifier := transport.NewClassifier(modeConfig.Modes)

	achievements, err := LoadAchievements(config.ConfigPathAchievements)
	if err != nil {
		return nil, err
	}

	wheel, err := LoadWheel(config.ConfigPathRouletteWheel)
	if err != nil {
		return nil, err
	}

	ledgerSvc := ledger.NewService(repos.Ledger)
	rnd := random.NewTimeSeededSource()

	return &server.Services{
		Movement: movement.NewService(repos.Movement, classifier,
			stride.NewDefaultEngine(), ledgerSvc, geo.DefaultOptions(), cfg.TxTimeout),
		Ledger:      ledgerSvc,
		Character:   character.NewService(repos.Character),
		Cosmetic:    cosmetic.NewService(repos.Cosmetic, ledgerSvc, rnd),
		Store:       store.NewService(repos.Store, ledgerSvc),
		Achievement: achievement.NewService(repos.Achievement, ledgerSvc, achievements),
		Game:        game.NewService(repos.Game, ledgerSvc, rnd, wheel),
		Booster:     booster.NewService(repos.Booster),
	}, nil
}
