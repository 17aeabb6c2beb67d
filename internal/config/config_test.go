package config

import (
	"math"
	"testing"
)

func TestDifficultyLevelProgression(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 40},
		Scaling:      ScalingConfig{SpeedMultiplier: 0.6, DensityBoost: 0.1},
	}

	d := NewDifficultyManager(cfg)

	tests := []struct {
		name  string
		score int
		want  float64
	}{
		{"at start", 0, 0.0},
		{"halfway", 20, 0.5},
		{"at max", 40, 1.0},
		{"past max clamps", 100, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := d.Level(tt.score, 0)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Level(%d) = %v, expected %v", tt.score, got, tt.want)
			}
		})
	}
}

func TestDifficultyDisabledStaysAtInitial(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.3,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 40},
	}

	d := NewDifficultyManager(cfg)
	if got := d.Level(1000, 1000); got != 0.3 {
		t.Errorf("disabled manager returned level %v, expected the initial 0.3", got)
	}
}

func TestDropIntervalShrinksWithLevel(t *testing.T) {
	cfg := DefaultTetrisConfig().Difficulty
	d := NewDifficultyManager(cfg)

	easy := d.DropInterval(12, 0, 0)
	hard := d.DropInterval(12, cfg.Progression.MaxAt, 0)

	if hard >= easy {
		t.Errorf("drop interval at max difficulty (%d) should be below the base (%d)", hard, easy)
	}
	if hard < 2 {
		t.Errorf("drop interval %d fell below the floor of 2", hard)
	}
}

func TestWallDensityCapped(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 1.0,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 1},
		Scaling:      ScalingConfig{DensityBoost: 0.9},
	}

	d := NewDifficultyManager(cfg)
	if got := d.WallDensity(0.4, 10, 0); got > 0.5 {
		t.Errorf("wall density %v exceeds the 0.5 cap", got)
	}
}

func TestApplyTetrisPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		wantEnabled bool
		wantLevel   float64
	}{
		{DifficultyEasy, true, 0.0},
		{DifficultyNormal, true, 0.3},
		{DifficultyHard, true, 0.7},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultTetrisConfig()
			ApplyTetrisPreset(&cfg, tt.preset)
			if cfg.Difficulty.Enabled != tt.wantEnabled {
				t.Errorf("enabled = %v, expected %v", cfg.Difficulty.Enabled, tt.wantEnabled)
			}
			if cfg.Difficulty.InitialLevel != tt.wantLevel {
				t.Errorf("initial level = %v, expected %v", cfg.Difficulty.InitialLevel, tt.wantLevel)
			}
		})
	}

	cfg := DefaultTetrisConfig()
	ApplyTetrisPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}
}

func TestLoadTetrisEmbeddedDefault(t *testing.T) {
	cfg, err := LoadTetris("")
	if err != nil {
		t.Fatalf("LoadTetris failed: %v", err)
	}
	if cfg.Board.Width <= 0 || cfg.Board.Height <= 0 {
		t.Errorf("embedded default has invalid board %dx%d", cfg.Board.Width, cfg.Board.Height)
	}
	if cfg.Speed.DropEveryTicks <= 0 {
		t.Errorf("embedded default has invalid drop interval %d", cfg.Speed.DropEveryTicks)
	}
}

func TestLoadTetrisMissingCustomPath(t *testing.T) {
	if _, err := LoadTetris("/nonexistent/tetris.yaml"); err == nil {
		t.Error("expected an error for a missing custom config path")
	}
}
