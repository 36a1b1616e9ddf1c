package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxEnhanceLevel is the enhancement ceiling for a cosmetic instance
const MaxEnhanceLevel = 5

// CosmeticTemplate describes a mintable cosmetic. MaxSupply of 0 means
// unlimited supply; otherwise MintedCount never exceeds MaxSupply.
type CosmeticTemplate struct {
	ID               int     `json:"id"`
	Key              string  `json:"key"`
	Name             string  `json:"name"`
	Category         string  `json:"category"`
	PriceMC          int64   `json:"price_mc"`
	BaseBonusPct     float64 `json:"base_bonus_pct"`
	PerLevelBonusPct float64 `json:"per_level_bonus_pct"`
	MaxSupply        int     `json:"max_supply"`
	MintedCount      int     `json:"minted_count"`
}

// BonusPercent returns the reward bonus the template contributes at the
// given enhancement level.
func (t *CosmeticTemplate) BonusPercent(enhanceLevel int) float64 {
	return t.BaseBonusPct + float64(enhanceLevel)*t.PerLevelBonusPct
}

// CosmeticInstance is a minted copy of a template owned by a user.
// MintNumber is assigned as the template's minted count after increment and
// is unique per template.
type CosmeticInstance struct {
	ID           uuid.UUID `json:"id"`
	TemplateID   int       `json:"template_id"`
	OwnerID      string    `json:"owner_id"`
	MintNumber   int       `json:"mint_number"`
	EnhanceLevel int       `json:"enhance_level"`
	IsEquipped   bool      `json:"is_equipped"`
	EquippedSlot *string   `json:"equipped_slot,omitempty"`
	MintedAt     time.Time `json:"minted_at"`
}

// EquippedCosmetic pairs an equipped instance with its template so the
// modifier resolver can compute bonuses without a second lookup.
type EquippedCosmetic struct {
	Instance CosmeticInstance `json:"instance"`
	Template CosmeticTemplate `json:"template"`
}

// BonusPercent returns the bonus this equipped piece contributes at its
// current enhancement level.
func (e *EquippedCosmetic) BonusPercent() float64 {
	return e.Template.BonusPercent(e.Instance.EnhanceLevel)
}
