package character

import "github.com/striderush/StrideRush_Go/internal/domain"

// EquipmentBonusPercent sums the per-piece bonuses of all equipped
// cosmetics and adds the set bonus for distinct equipped categories.
// Only the highest reached set tier applies.
func EquipmentBonusPercent(equipped []domain.EquippedCosmetic) float64 {
	total := 0.0
	categories := make(map[string]struct{})
	for i := range equipped {
		total += equipped[i].BonusPercent()
		categories[equipped[i].Template.Category] = struct{}{}
	}

	switch {
	case len(categories) >= 3:
		total += ThreePieceSetBonusPct
	case len(categories) == 2:
		total += TwoPieceSetBonusPct
	}
	return total
}

// LuckEnhanceBonus is the additive success probability a character's luck
// contributes to enhancement gambles, capped.
func LuckEnhanceBonus(stats domain.CharacterStats) float64 {
	bonus := float64(stats.Luck) * EnhanceChancePerLuck
	if bonus > MaxLuckEnhanceBonus {
		return MaxLuckEnhanceBonus
	}
	return bonus
}

// FlatBonusSC is the flat SC a character's efficiency adds to each
// movement reward.
func FlatBonusSC(stats domain.CharacterStats) int64 {
	return int64(stats.Efficiency) * FlatBonusPerEfficiency
}
