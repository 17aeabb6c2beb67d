package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default tetris configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: BoardConfig{
			Width:    10,
			Height:   20,
			KeepRows: 4,
			KeepCols: 1,
		},
		Walls: WallsConfig{
			Enabled: true,
			Density: 0.12,
		},
		Speed: SpeedConfig{
			DropEveryTicks:      12,
			PilotMoveEveryTicks: 3,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 40,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.6,
				DensityBoost:    0.1,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "tetris", "tetris_manual":
		return defaultTetrisYAML
	default:
		return nil
	}
}
