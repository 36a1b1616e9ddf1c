package config

const (
	// Configuration file paths
	ConfigPathTransportModes    = "configs/transport_modes.json"
	ConfigPathRouletteWheel     = "configs/roulette_wheel.json"
	ConfigPathAchievements      = "configs/achievements.json"
	ConfigPathStoreItems        = "configs/store_items.json"
	ConfigPathCosmeticTemplates = "configs/cosmetic_templates.json"
)
