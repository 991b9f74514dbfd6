// Package config provides YAML-based game configuration loading and
// difficulty management for the snake platform.
package config

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Speed      SpeedConfig      `yaml:"speed"`
	Endless    EndlessConfig    `yaml:"endless"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// SpeedConfig defines how fast the snake moves.
type SpeedConfig struct {
	// MoveEveryTicks is the number of simulation ticks between snake moves
	// at the start of a level. Lower is faster.
	MoveEveryTicks int `yaml:"move_every_ticks"`
	// MinMoveEveryTicks is the fastest the snake is allowed to get.
	MinMoveEveryTicks int `yaml:"min_move_every_ticks"`
}

// EndlessConfig defines endless-mode progression.
type EndlessConfig struct {
	// FoodPerCycle is how much food advances the endless mode to the next
	// level layout.
	FoodPerCycle int `yaml:"food_per_cycle"`
	// SpeedUpPerCycle is the tick-interval reduction applied each time the
	// layouts wrap around.
	SpeedUpPerCycle int `yaml:"speed_up_per_cycle"`
}

// DifficultyConfig defines the starting difficulty.
type DifficultyConfig struct {
	Enabled      bool    `yaml:"enabled"`
	InitialLevel float64 `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
}
