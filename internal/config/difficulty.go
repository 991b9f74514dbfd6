package config

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyPreset adjusts a SnakeConfig for the given preset. Harder presets
// shave ticks off the starting move interval; "fixed" disables progression.
func ApplyPreset(cfg SnakeConfig, preset DifficultyPreset) SnakeConfig {
	if preset == "" {
		return cfg
	}
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
		return cfg
	}

	level := InitialLevelForPreset(preset)
	cfg.Difficulty.InitialLevel = level

	span := cfg.Speed.MoveEveryTicks - cfg.Speed.MinMoveEveryTicks
	if span > 0 {
		cfg.Speed.MoveEveryTicks -= int(level * float64(span))
		if cfg.Speed.MoveEveryTicks < cfg.Speed.MinMoveEveryTicks {
			cfg.Speed.MoveEveryTicks = cfg.Speed.MinMoveEveryTicks
		}
	}
	return cfg
}
