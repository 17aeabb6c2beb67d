// Package config provides YAML-based game configuration loading and
// difficulty management for the tetris platform.
package config

// TetrisConfig contains all configuration for the tetris game.
type TetrisConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Walls      WallsConfig      `yaml:"walls"`
	Speed      SpeedConfig      `yaml:"speed"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the playfield dimensions. KeepRows and KeepCols mark
// the top rows and left columns that stay free of generated walls so the
// spawn area and the descent lane are never sealed at start.
type BoardConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	KeepRows int `yaml:"keep_rows"`
	KeepCols int `yaml:"keep_cols"`
}

// WallsConfig defines random obstacle generation.
type WallsConfig struct {
	Enabled bool    `yaml:"enabled"`
	Density float64 `yaml:"density"` // probability per cell, 0.0 to 1.0
}

// SpeedConfig defines pacing in simulation ticks.
type SpeedConfig struct {
	DropEveryTicks      int `yaml:"drop_every_ticks"`       // gravity interval in manual mode
	PilotMoveEveryTicks int `yaml:"pilot_move_every_ticks"` // plan replay interval in pilot mode
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Drop-interval shrink factor at max difficulty
	DensityBoost    float64 `yaml:"density_boost"`    // Wall density added at max difficulty
}

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
