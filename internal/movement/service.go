package movement

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/striderush/StrideRush_Go/internal/character"
	"github.com/striderush/StrideRush_Go/internal/domain"
	"github.com/striderush/StrideRush_Go/internal/geo"
	"github.com/striderush/StrideRush_Go/internal/ledger"
	"github.com/striderush/StrideRush_Go/internal/logger"
	"github.com/striderush/StrideRush_Go/internal/repository"
	"github.com/striderush/StrideRush_Go/internal/reward"
	"github.com/striderush/StrideRush_Go/internal/stride"
	"github.com/striderush/StrideRush_Go/internal/transport"
)

// SegmentInput is one declared stretch of a single transport mode with
// its raw GPS samples.
type SegmentInput struct {
	TransportMode string
	Points        []domain.GpsPoint
}

// CompleteParams carries everything a completion needs beyond the raw
// track: the client's local time context and current weather.
type CompleteParams struct {
	MovementID uuid.UUID
	Segments   []SegmentInput
	// LocalDay is the user's local calendar day, already shifted by the
	// client's timezone offset. Streak updates and the daily cap key on it.
	LocalDay  time.Time
	LocalHour int
	Weather   domain.WeatherCondition
}

// CompleteResult pairs the finished movement with the stride outcome so
// clients can surface streak changes immediately.
type CompleteResult struct {
	Movement      *domain.Movement
	StrideOutcome stride.AdvanceOutcome
	StrideStatus  domain.StrideStatus
}

// Service defines the interface for movement operations
type Service interface {
	// Start opens a movement session, cancelling any prior active one for
	// the user in the same transaction.
	Start(ctx context.Context, userID, transportMode string) (*domain.Movement, error)
	// Complete validates the raw track, runs the reward pipeline, credits
	// the ledger, and finalizes the movement atomically.
	Complete(ctx context.Context, userID string, params CompleteParams) (*CompleteResult, error)
	// Cancel marks an active movement cancelled. No reward is computed.
	Cancel(ctx context.Context, userID string, movementID uuid.UUID) error
	GetActive(ctx context.Context, userID string) (*domain.Movement, error)
	Get(ctx context.Context, userID string, movementID uuid.UUID) (*domain.Movement, error)
	GetStrideStatus(ctx context.Context, userID string) (*domain.StrideStatus, error)
}

type service struct {
	repo       repository.Movement
	classifier *transport.Classifier
	engine     *stride.Engine
	ledgerSvc  ledger.Service
	geoOpts    geo.Options
	txTimeout  time.Duration
	now        func() time.Time
}

// NewService creates a new movement service
func NewService(repo repository.Movement, classifier *transport.Classifier, engine *stride.Engine, ledgerSvc ledger.Service, geoOpts geo.Options, txTimeout time.Duration) Service {
	if txTimeout <= 0 {
		txTimeout = DefaultTxTimeout
	}
	return &service{
		repo:       repo,
		classifier: classifier,
		engine:     engine,
		ledgerSvc:  ledgerSvc,
		geoOpts:    geoOpts,
		txTimeout:  txTimeout,
		now:        time.Now,
	}
}

func (s *service) Start(ctx context.Context, userID, transportMode string) (*domain.Movement, error) {
	log := logger.FromContext(ctx)

	if !s.classifier.Known(transportMode) {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownTransportMode, transportMode)
	}

	ctx, cancel := context.WithTimeout(ctx, s.txTimeout)
	defer cancel()

	tx, err := s.repo.BeginMovementTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	if err := tx.EnsureUser(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to ensure user: %w", err)
	}

	cancelled, err := tx.CancelActiveMovements(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel active movements: %w", err)
	}
	if cancelled > 0 {
		log.Info("Cancelled prior active movement", "user_id", userID, "count", cancelled)
	}

	movement := &domain.Movement{
		ID:            uuid.New(),
		UserID:        userID,
		Status:        domain.MovementStatusActive,
		TransportMode: transportMode,
		StartedAt:     s.now().UTC(),
	}
	if err := tx.CreateMovement(ctx, movement); err != nil {
		return nil, fmt.Errorf("failed to create movement: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Info("Movement started", "user_id", userID, "movement_id", movement.ID, "mode", transportMode)
	return movement, nil
}

func (s *service) Complete(ctx context.Context, userID string, params CompleteParams) (*CompleteResult, error) {
	log := logger.FromContext(ctx)

	if len(params.Segments) == 0 {
		return nil, fmt.Errorf("%w: at least one segment is required", domain.ErrInvalidInput)
	}

	// Validation and classification are pure; run them before touching
	// the database.
	segments, err := s.buildSegments(params.Segments)
	if err != nil {
		return nil, err
	}
	classification, err := s.classifier.ClassifyAll(segments)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.txTimeout)
	defer cancel()

	tx, err := s.repo.BeginMovementTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	movement, err := tx.GetMovementForUpdate(ctx, params.MovementID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock movement: %w", err)
	}
	if movement == nil || movement.UserID != userID {
		return nil, domain.ErrNotFound
	}
	switch movement.Status {
	case domain.MovementStatusCompleted:
		return nil, domain.ErrAlreadyCompleted
	case domain.MovementStatusActive:
	default:
		return nil, domain.ErrMovementNotActive
	}

	// Stride update happens first so the reward uses the post-update tier.
	strideState, err := tx.GetStrideStateForUpdate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock stride state: %w", err)
	}
	if strideState == nil {
		strideState = &domain.StrideState{UserID: userID}
	}
	newState, outcome := s.engine.Advance(*strideState, params.LocalDay)
	newState.TotalDistanceM += classification.TotalDistanceM

	// The daily earning window resets when the first completion of a new
	// local day arrives.
	y, m, d := params.LocalDay.Date()
	localDay := time.Date(y, m, d, 0, 0, 0, 0, params.LocalDay.Location())
	if newState.EarnedOnDate == nil || !sameDay(*newState.EarnedOnDate, params.LocalDay) {
		newState.SCEarnedToday = 0
		newState.EarnedOnDate = &localDay
	}

	tier := s.engine.LevelOf(newState.CurrentStreakDays)

	charState, err := tx.GetCharacterStateForUpdate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock character: %w", err)
	}
	if charState == nil {
		charState = character.NewCharacterState(userID)
		if err := tx.CreateCharacterState(ctx, charState); err != nil {
			return nil, fmt.Errorf("failed to create character: %w", err)
		}
	}

	equipped, err := tx.GetEquippedCosmetics(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get equipped cosmetics: %w", err)
	}

	booster, err := tx.GetActiveBooster(ctx, userID, s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to get active booster: %w", err)
	}
	boosterMult := 1.0
	if booster != nil {
		boosterMult = booster.Multiplier
	}

	breakdown := reward.Compute(reward.Input{
		DistanceM:            classification.TotalDistanceM,
		BaseRatePer100m:      classification.WeightedBaseRate,
		TransportMultiplier:  classification.WeightedMultiplier,
		StrideMultiplier:     tier.Multiplier,
		LocalHour:            params.LocalHour,
		Weather:              params.Weather,
		MultiTransport:       classification.MultiTransport,
		MultiTransportFactor: classification.MultiTransportFactor(),
		EquipmentBonusPct:    character.EquipmentBonusPercent(equipped),
		Condition:            int64(charState.Condition),
		MaxCondition:         int64(charState.MaxCondition),
		FlatBonusSC:          character.FlatBonusSC(charState.Stats),
		BoosterMultiplier:    boosterMult,
	})
	breakdown = reward.ApplyDailyCap(breakdown, newState.SCEarnedToday, tier.DailyCapSC)

	if breakdown.CreditedSC > 0 {
		sourceID := movement.ID.String()
		if _, err := s.ledgerSvc.Apply(ctx, tx, ledger.ApplyParams{
			UserID:      userID,
			CoinType:    domain.CoinSC,
			Amount:      breakdown.CreditedSC,
			SourceType:  domain.SourceMovement,
			SourceID:    &sourceID,
			Description: "movement reward",
		}); err != nil {
			return nil, fmt.Errorf("failed to credit reward: %w", err)
		}
	}

	newState.SCEarnedToday += breakdown.CreditedSC
	if err := tx.UpsertStrideState(ctx, &newState); err != nil {
		return nil, fmt.Errorf("failed to update stride state: %w", err)
	}

	s.applyMovementEffects(charState, classification)
	if err := tx.UpdateCharacterState(ctx, charState); err != nil {
		return nil, fmt.Errorf("failed to update character: %w", err)
	}

	now := s.now().UTC()
	var totalDuration float64
	for i := range segments {
		totalDuration += segments[i].DurationS
	}
	movement.Status = domain.MovementStatusCompleted
	movement.CompletedAt = &now
	movement.TotalDistanceM = classification.TotalDistanceM
	movement.TotalDurationS = totalDuration
	movement.Segments = segments
	movement.RewardBreakdown = &breakdown
	if err := tx.CompleteMovement(ctx, movement); err != nil {
		return nil, fmt.Errorf("failed to complete movement: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Info("Movement completed",
		"user_id", userID,
		"movement_id", movement.ID,
		"distance_m", movement.TotalDistanceM,
		"computed_sc", breakdown.ComputedSC,
		"credited_sc", breakdown.CreditedSC,
		"cap_applied", breakdown.CapApplied,
		"stride_outcome", outcome)

	status := s.engine.Status(newState)
	return &CompleteResult{
		Movement:      movement,
		StrideOutcome: outcome,
		StrideStatus:  status,
	}, nil
}

func (s *service) Cancel(ctx context.Context, userID string, movementID uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, s.txTimeout)
	defer cancel()

	tx, err := s.repo.BeginMovementTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	movement, err := tx.GetMovementForUpdate(ctx, movementID)
	if err != nil {
		return fmt.Errorf("failed to lock movement: %w", err)
	}
	if movement == nil || movement.UserID != userID {
		return domain.ErrNotFound
	}
	if movement.Status != domain.MovementStatusActive {
		return domain.ErrMovementNotActive
	}

	affected, err := tx.CancelMovement(ctx, movementID)
	if err != nil {
		return fmt.Errorf("failed to cancel movement: %w", err)
	}
	if affected == 0 {
		return domain.ErrMovementNotActive
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	logger.FromContext(ctx).Info("Movement cancelled", "user_id", userID, "movement_id", movementID)
	return nil
}

func (s *service) GetActive(ctx context.Context, userID string) (*domain.Movement, error) {
	movement, err := s.repo.GetActiveMovement(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get active movement: %w", err)
	}
	return movement, nil
}

func (s *service) Get(ctx context.Context, userID string, movementID uuid.UUID) (*domain.Movement, error) {
	movement, err := s.repo.GetMovement(ctx, movementID)
	if err != nil {
		return nil, fmt.Errorf("failed to get movement: %w", err)
	}
	if movement == nil || movement.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return movement, nil
}

func (s *service) GetStrideStatus(ctx context.Context, userID string) (*domain.StrideStatus, error) {
	state, err := s.repo.GetStrideState(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get stride state: %w", err)
	}
	if state == nil {
		state = &domain.StrideState{UserID: userID}
	}
	status := s.engine.Status(*state)
	return &status, nil
}

// buildSegments folds each declared segment's raw points into a validated
// aggregate.
func (s *service) buildSegments(inputs []SegmentInput) ([]domain.MovementSegment, error) {
	segments := make([]domain.MovementSegment, 0, len(inputs))
	for _, in := range inputs {
		mode, err := s.classifier.Mode(in.TransportMode)
		if err != nil {
			return nil, err
		}

		summary := geo.ValidateTrack(in.Points, s.geoOpts)
		seg := domain.MovementSegment{
			TransportMode: in.TransportMode,
			DistanceM:     summary.DistanceM,
			DurationS:     summary.DurationS,
			AnomalyCount:  len(summary.Anomalies),
		}
		if summary.DurationS > 0 {
			seg.AvgSpeedKmh = summary.DistanceM / summary.DurationS * 3.6
		}
		seg.SpeedInBand = mode.InBand(seg.AvgSpeedKmh)
		segments = append(segments, seg)
	}
	return segments, nil
}

// applyMovementEffects grants exp and drains condition proportionally to
// the validated distance.
func (s *service) applyMovementEffects(state *domain.CharacterState, c transport.Classification) {
	km := c.TotalDistanceM / 1000
	state.Exp += int64(km * ExpPerKm)

	drain := int(km * ConditionDrainPerKm)
	state.Condition -= drain
	if state.Condition < 0 {
		state.Condition = 0
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
