package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Sentinel errors for the mode loader
var (
	ErrDuplicateModeKey = errors.New("duplicate transport mode key")
	ErrInvalidConfig    = errors.New("invalid transport mode configuration")
)

// Config represents the JSON configuration for transport modes
type Config struct {
	Version string `json:"version"`
	Modes   []Mode `json:"modes"`
}

// LoadConfig reads and parses a transport modes JSON file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read transport mode config: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse transport mode config: %w", err)
	}

	return &config, nil
}

// ValidateConfig checks the mode configuration for errors
func ValidateConfig(config *Config) error {
	if config == nil || len(config.Modes) == 0 {
		return fmt.Errorf("%w: no modes defined", ErrInvalidConfig)
	}

	seen := make(map[string]bool)
	for _, m := range config.Modes {
		if m.Key == "" {
			return fmt.Errorf("%w: mode with empty key", ErrInvalidConfig)
		}
		if seen[m.Key] {
			return fmt.Errorf("%w: %s", ErrDuplicateModeKey, m.Key)
		}
		seen[m.Key] = true

		if m.SpeedMinKmh < 0 || m.SpeedMaxKmh <= m.SpeedMinKmh {
			return fmt.Errorf("%w: mode %s has invalid speed band [%v, %v]",
				ErrInvalidConfig, m.Key, m.SpeedMinKmh, m.SpeedMaxKmh)
		}
		if m.BaseRatePer100m < 0 {
			return fmt.Errorf("%w: mode %s has negative base rate", ErrInvalidConfig, m.Key)
		}
		if m.Multiplier <= 0 {
			return fmt.Errorf("%w: mode %s has non-positive multiplier", ErrInvalidConfig, m.Key)
		}
		switch m.RewardClass {
		case ClassBodyPowered, ClassVehicleAssisted, ClassPublicTransit:
		default:
			return fmt.Errorf("%w: mode %s has unknown reward class %q",
				ErrInvalidConfig, m.Key, m.RewardClass)
		}
	}
	return nil
}

// DefaultModes returns the built-in mode table, used when no config file is
// provided (tests, local development).
func DefaultModes() []Mode {
	return []Mode{
		{Key: "walking", Name: "Walking", RewardClass: ClassBodyPowered, SpeedMinKmh: 0, SpeedMaxKmh: 8, BaseRatePer100m: 1.0, Multiplier: 1.0},
		{Key: "running", Name: "Running", RewardClass: ClassBodyPowered, SpeedMinKmh: 6, SpeedMaxKmh: 20, BaseRatePer100m: 1.2, Multiplier: 1.1},
		{Key: "cycling", Name: "Cycling", RewardClass: ClassBodyPowered, SpeedMinKmh: 8, SpeedMaxKmh: 35, BaseRatePer100m: 0.8, Multiplier: 1.0},
		{Key: "bus", Name: "Bus", RewardClass: ClassPublicTransit, SpeedMinKmh: 10, SpeedMaxKmh: 80, BaseRatePer100m: 0.3, Multiplier: 0.8},
		{Key: "subway", Name: "Subway", RewardClass: ClassPublicTransit, SpeedMinKmh: 20, SpeedMaxKmh: 100, BaseRatePer100m: 0.3, Multiplier: 0.8},
		{Key: "car", Name: "Car", RewardClass: ClassVehicleAssisted, SpeedMinKmh: 10, SpeedMaxKmh: 130, BaseRatePer100m: 0.1, Multiplier: 0.5},
	}
}
