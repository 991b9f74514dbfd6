package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Speed: SpeedConfig{
			MoveEveryTicks:    6,
			MinMoveEveryTicks: 2,
		},
		Endless: EndlessConfig{
			FoodPerCycle:    10,
			SpeedUpPerCycle: 1,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
		},
	}
}
