package movement

import "time"

// DefaultTxTimeout bounds a movement completion transaction
const DefaultTxTimeout = 10 * time.Second

// ExpPerKm is the character exp granted per validated kilometre
const ExpPerKm = 10

// ConditionDrainPerKm is the stamina consumed per validated kilometre of
// body-powered movement
const ConditionDrainPerKm = 2
