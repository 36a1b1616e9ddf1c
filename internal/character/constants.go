package character

const (
	// StartingLevel is the level of a freshly created character
	StartingLevel = 1
	// StartingMaxCondition is the stamina pool before endurance bonuses
	StartingMaxCondition = 100
	// BaseExpToNext is the exp cost of the first level-up; each level's
	// cost scales linearly from it
	BaseExpToNext = 100

	// MaxConditionPerEndurance is the stamina gained per endurance point
	MaxConditionPerEndurance = 10
	// FlatBonusPerEfficiency is the flat SC added to each movement reward
	// per efficiency point
	FlatBonusPerEfficiency = 1
	// EnhanceChancePerLuck is the additive enhancement success probability
	// per luck point
	EnhanceChancePerLuck = 0.005
	// MaxLuckEnhanceBonus caps the luck contribution to enhancement rolls
	MaxLuckEnhanceBonus = 0.10
)

// Set bonuses by count of distinct equipped categories. Only the highest
// reached tier applies.
const (
	TwoPieceSetBonusPct   = 5.0
	ThreePieceSetBonusPct = 12.0
)
