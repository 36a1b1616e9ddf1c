package reward

// MinConditionMultiplier floors the condition penalty so a drained
// character still earns half rewards.
const MinConditionMultiplier = 0.5

// BaseRateDistanceUnitM converts validated metres into base-rate units.
// The transport base rate is expressed per 100 m.
const BaseRateDistanceUnitM = 100.0
