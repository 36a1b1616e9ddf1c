package reward

import "github.com/striderush/StrideRush_Go/internal/domain"

// defaultWeatherMultipliers penalize precipitation and the extreme
// temperature states.
var defaultWeatherMultipliers = map[domain.WeatherCondition]float64{
	domain.WeatherClear:       1.0,
	domain.WeatherCloudy:      1.0,
	domain.WeatherRain:        0.9,
	domain.WeatherSnow:        0.85,
	domain.WeatherExtremeHeat: 0.7,
	domain.WeatherExtremeCold: 0.7,
}

// WeatherMultiplier returns the multiplier for a weather condition.
// Unknown conditions fall back to neutral.
func WeatherMultiplier(cond domain.WeatherCondition) float64 {
	if m, ok := defaultWeatherMultipliers[cond]; ok {
		return m
	}
	return 1.0
}
