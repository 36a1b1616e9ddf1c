package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/striderush/StrideRush_Go/internal/domain"
)

// Shared per-user state queries. Stride state, character state, equipped
// cosmetics, and active boosters are read or mutated by several feature
// transactions, so the query code lives here once.

func getStrideState(ctx context.Context, q querier, userID string, forUpdate bool) (*domain.StrideState, error) {
	query := `SELECT user_id, current_streak_days, longest_streak_days, shield_count,
	                 last_active_date, total_distance_m, sc_earned_today, earned_on_date
	          FROM stride_states WHERE user_id = $1`
	if forUpdate {
		query += " FOR UPDATE"
	}

	var state domain.StrideState
	err := q.QueryRow(ctx, query, userID).Scan(&state.UserID, &state.CurrentStreakDays,
		&state.LongestStreakDays, &state.ShieldCount, &state.LastActiveDate,
		&state.TotalDistanceM, &state.SCEarnedToday, &state.EarnedOnDate)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get stride state: %w", err)
	}
	return &state, nil
}

func upsertStrideState(ctx context.Context, q querier, state *domain.StrideState) error {
	if err := ensureUser(ctx, q, state.UserID); err != nil {
		return fmt.Errorf("failed to ensure user: %w", err)
	}
	_, err := q.Exec(ctx,
		`INSERT INTO stride_states
		 (user_id, current_streak_days, longest_streak_days, shield_count,
		  last_active_date, total_distance_m, sc_earned_today, earned_on_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (user_id) DO UPDATE SET
		   current_streak_days = EXCLUDED.current_streak_days,
		   longest_streak_days = EXCLUDED.longest_streak_days,
		   shield_count = EXCLUDED.shield_count,
		   last_active_date = EXCLUDED.last_active_date,
		   total_distance_m = EXCLUDED.total_distance_m,
		   sc_earned_today = EXCLUDED.sc_earned_today,
		   earned_on_date = EXCLUDED.earned_on_date`,
		state.UserID, state.CurrentStreakDays, state.LongestStreakDays,
		state.ShieldCount, state.LastActiveDate, state.TotalDistanceM,
		state.SCEarnedToday, state.EarnedOnDate)
	if err != nil {
		return fmt.Errorf("failed to upsert stride state: %w", err)
	}
	return nil
}

func getCharacterState(ctx context.Context, q querier, userID string, forUpdate bool) (*domain.CharacterState, error) {
	query := `SELECT user_id, level, exp, exp_to_next, condition, max_condition,
	                 stat_points, endurance, efficiency, luck
	          FROM character_states WHERE user_id = $1`
	if forUpdate {
		query += " FOR UPDATE"
	}

	var state domain.CharacterState
	err := q.QueryRow(ctx, query, userID).Scan(&state.UserID, &state.Level, &state.Exp,
		&state.ExpToNext, &state.Condition, &state.MaxCondition, &state.StatPoints,
		&state.Stats.Endurance, &state.Stats.Efficiency, &state.Stats.Luck)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get character state: %w", err)
	}
	return &state, nil
}

func createCharacterState(ctx context.Context, q querier, state *domain.CharacterState) error {
	if err := ensureUser(ctx, q, state.UserID); err != nil {
		return fmt.Errorf("failed to ensure user: %w", err)
	}
	_, err := q.Exec(ctx,
		`INSERT INTO character_states
		 (user_id, level, exp, exp_to_next, condition, max_condition,
		  stat_points, endurance, efficiency, luck)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		state.UserID, state.Level, state.Exp, state.ExpToNext, state.Condition,
		state.MaxCondition, state.StatPoints, state.Stats.Endurance,
		state.Stats.Efficiency, state.Stats.Luck)
	if err != nil {
		return fmt.Errorf("failed to create character state: %w", err)
	}
	return nil
}

func updateCharacterState(ctx context.Context, q querier, state *domain.CharacterState) error {
	_, err := q.Exec(ctx,
		`UPDATE character_states
		 SET level = $2, exp = $3, exp_to_next = $4, condition = $5, max_condition = $6,
		     stat_points = $7, endurance = $8, efficiency = $9, luck = $10
		 WHERE user_id = $1`,
		state.UserID, state.Level, state.Exp, state.ExpToNext, state.Condition,
		state.MaxCondition, state.StatPoints, state.Stats.Endurance,
		state.Stats.Efficiency, state.Stats.Luck)
	if err != nil {
		return fmt.Errorf("failed to update character state: %w", err)
	}
	return nil
}

func getEquippedCosmetics(ctx context.Context, q querier, userID string) ([]domain.EquippedCosmetic, error) {
	rows, err := q.Query(ctx,
		`SELECT i.id, i.template_id, i.owner_id, i.mint_number, i.enhance_level,
		        i.is_equipped, i.equipped_slot, i.minted_at,
		        t.id, t.key, t.name, t.category, t.price_mc, t.base_bonus_pct,
		        t.per_level_bonus_pct, t.max_supply, t.minted_count
		 FROM cosmetic_instances i
		 JOIN cosmetic_templates t ON t.id = i.template_id
		 WHERE i.owner_id = $1 AND i.is_equipped`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query equipped cosmetics: %w", err)
	}
	defer rows.Close()

	var equipped []domain.EquippedCosmetic
	for rows.Next() {
		var e domain.EquippedCosmetic
		if err := rows.Scan(&e.Instance.ID, &e.Instance.TemplateID, &e.Instance.OwnerID,
			&e.Instance.MintNumber, &e.Instance.EnhanceLevel, &e.Instance.IsEquipped,
			&e.Instance.EquippedSlot, &e.Instance.MintedAt,
			&e.Template.ID, &e.Template.Key, &e.Template.Name, &e.Template.Category,
			&e.Template.PriceMC, &e.Template.BaseBonusPct, &e.Template.PerLevelBonusPct,
			&e.Template.MaxSupply, &e.Template.MintedCount); err != nil {
			return nil, fmt.Errorf("failed to scan equipped cosmetic: %w", err)
		}
		equipped = append(equipped, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read equipped cosmetics: %w", err)
	}
	return equipped, nil
}

func getActiveBooster(ctx context.Context, q querier, userID string, now time.Time) (*domain.Booster, error) {
	var booster domain.Booster
	err := q.QueryRow(ctx,
		`SELECT user_id, code, multiplier, expires_at
		 FROM user_boosters WHERE user_id = $1 AND expires_at > $2`,
		userID, now).Scan(&booster.UserID, &booster.Code, &booster.Multiplier,
		&booster.ExpiresAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active booster: %w", err)
	}
	return &booster, nil
}
