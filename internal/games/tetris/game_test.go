package tetris

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetromino"
	"github.com/vovakirdan/tui-tetris/internal/world"
)

// withTestConfig points the game at a small hermetic config so tests do
// not depend on user configs or the embedded defaults.
func withTestConfig(t *testing.T, walls bool) {
	t.Helper()

	yaml := `
board:
  width: 10
  height: 16
  keep_rows: 4
  keep_cols: 1
walls:
  enabled: ` + boolYAML(walls) + `
  density: 0.1
speed:
  drop_every_ticks: 4
  pilot_move_every_ticks: 1
difficulty:
  enabled: false
  initial_level: 0.0
  progression:
    type: none
    max_at: 0
  scaling:
    speed_multiplier: 0
    density_boost: 0
`
	path := filepath.Join(t.TempDir(), "tetris.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("cannot write test config: %v", err)
	}

	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })
}

func boolYAML(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func TestDeterminism(t *testing.T) {
	withTestConfig(t, true)

	cfg := core.RuntimeConfig{
		Seed:    12345,
		ScreenW: 80,
		ScreenH: 24,
	}

	g1 := New()
	g1.Reset(cfg)

	g2 := New()
	g2.Reset(cfg)

	input := core.NewInputFrame()
	for i := 0; i < 300; i++ {
		input.Clear()
		if i == 50 {
			input.Set(core.ActionPause)
		}
		if i == 60 {
			input.Set(core.ActionPause)
		}

		g1.Step(input)
		g2.Step(input)
	}

	snap1 := g1.Snapshot()
	snap2 := g2.Snapshot()

	if snap1 != snap2 {
		t.Errorf("snapshots diverged with identical seeds:\n%+v\n%+v", snap1, snap2)
	}
}

func TestPilotLocksFigures(t *testing.T) {
	withTestConfig(t, false)

	g := New()
	g.Reset(core.RuntimeConfig{Seed: 7, ScreenW: 80, ScreenH: 24})

	input := core.NewInputFrame()
	for i := 0; i < 2000 && !g.State().GameOver && g.score < 3; i++ {
		g.Step(input)
	}

	if g.score < 3 {
		t.Errorf("autopilot locked %d figures on an empty board, expected at least 3", g.score)
	}
}

func TestPilotReplaysLegalPoses(t *testing.T) {
	withTestConfig(t, true)

	g := New()
	g.Reset(core.RuntimeConfig{Seed: 99, ScreenW: 80, ScreenH: 24})

	input := core.NewInputFrame()
	for i := 0; i < 500 && !g.State().GameOver; i++ {
		g.Step(input)
		if g.hasActive && !g.board.MayPlace(g.active) {
			t.Fatalf("tick %d: replayed pose %s overlaps the board", i, g.active.Key())
		}
	}
}

func TestManualGravityLocksAtFloor(t *testing.T) {
	withTestConfig(t, false)

	g := NewManual()
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 24})

	input := core.NewInputFrame()
	for i := 0; i < 200 && g.score == 0; i++ {
		g.Step(input)
	}

	if g.score != 1 {
		t.Errorf("gravity did not lock the first figure, score = %d", g.score)
	}
	if !g.hasActive && !g.gameOver {
		t.Error("no figure in flight after the first lock")
	}
}

func TestManualHardDrop(t *testing.T) {
	withTestConfig(t, false)

	g := NewManual()
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 24})

	input := core.NewInputFrame()
	input.Set(core.ActionHardDrop)
	g.Step(input)

	if g.score != 1 {
		t.Errorf("hard drop did not lock the figure, score = %d", g.score)
	}
}

func TestManualShiftStaysInBounds(t *testing.T) {
	withTestConfig(t, false)

	g := NewManual()
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 24})

	input := core.NewInputFrame()
	input.Set(core.ActionLeft)
	for i := 0; i < 30; i++ {
		g.Step(input)
		if g.hasActive && !g.board.FigureInBounds(g.active) {
			t.Fatalf("figure left the board after %d shifts: %s", i+1, g.active.Key())
		}
	}
}

func TestPilotToggle(t *testing.T) {
	withTestConfig(t, false)

	g := NewManual()
	g.Reset(core.RuntimeConfig{Seed: 5, ScreenW: 80, ScreenH: 24})

	if g.pilot {
		t.Fatal("manual mode should start with the pilot off")
	}

	input := core.NewInputFrame()
	input.Set(core.ActionPilot)
	g.Step(input)

	if !g.pilot {
		t.Error("pilot toggle did not engage the planner")
	}
	if len(g.plan) == 0 {
		t.Error("engaging the pilot on an empty board produced no plan")
	}

	input.Clear()
	input.Set(core.ActionPilot)
	g.Step(input)

	if g.pilot {
		t.Error("second toggle did not return control to the player")
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	withTestConfig(t, false)

	g := New()
	g.Reset(core.RuntimeConfig{Seed: 3, ScreenW: 80, ScreenH: 24})

	g.gameOver = true
	g.score = 17

	input := core.NewInputFrame()
	input.Set(core.ActionRestart)
	g.Step(input)

	if g.gameOver {
		t.Error("restart did not clear game over")
	}
	if g.score != 0 {
		t.Errorf("restart did not reset the score, got %d", g.score)
	}
}

func TestWallsRespectKeepZone(t *testing.T) {
	withTestConfig(t, true)

	g := New()
	g.Reset(core.RuntimeConfig{Seed: 21, ScreenW: 80, ScreenH: 24})

	// keep_rows: 4 and keep_cols: 1 in the test config
	for y := 0; y < g.board.Height(); y++ {
		for x := 0; x < g.board.Width(); x++ {
			if y > 4 && x > 1 {
				continue
			}
			if g.board.At(tetromino.P(x, y)) == world.CellWall {
				t.Errorf("generated wall inside the keep zone at (%d,%d)", x, y)
			}
		}
	}
}
