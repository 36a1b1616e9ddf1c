package domain

// CharacterStats are the allocatable stat points of a character
type CharacterStats struct {
	Endurance  int `json:"endurance"`
	Efficiency int `json:"efficiency"`
	Luck       int `json:"luck"`
}

// CharacterState holds a user's character progression and stamina.
// Exp only increases via exp grants; levelling up is an explicit user
// action that spends accumulated exp and allocates one stat point - it
// never happens automatically as a side effect of gaining exp.
type CharacterState struct {
	UserID       string         `json:"user_id"`
	Level        int            `json:"level"`
	Exp          int64          `json:"exp"`
	ExpToNext    int64          `json:"exp_to_next"`
	Condition    int            `json:"condition"`
	MaxCondition int            `json:"max_condition"`
	StatPoints   int            `json:"stat_points"`
	Stats        CharacterStats `json:"stats"`
}

// StatKey identifies an allocatable stat
type StatKey string

const (
	StatEndurance  StatKey = "endurance"
	StatEfficiency StatKey = "efficiency"
	StatLuck       StatKey = "luck"
)

// IsValid reports whether the stat key names a real stat
func (k StatKey) IsValid() bool {
	switch k {
	case StatEndurance, StatEfficiency, StatLuck:
		return true
	}
	return false
}
