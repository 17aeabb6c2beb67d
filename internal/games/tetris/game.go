// Package tetris implements a single-figure tetris variant played on an
// obstacle board. In pilot mode an automated planner chooses the landing
// spot and replays the move sequence; in manual mode the player steers
// the figure and can hand control to the planner at any time.
package tetris

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/planner"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/tetromino"
	"github.com/vovakirdan/tui-tetris/internal/world"
)

// Mode represents the game mode.
type Mode string

const (
	ModePilot  Mode = "pilot"
	ModeManual Mode = "manual"
)

// Game implements the tetris game.
type Game struct {
	mode Mode
	cfg  config.TetrisConfig
	diff *config.DifficultyManager
	rng  *rand.Rand

	tick        uint64
	score       int // figures locked into the board
	plansFailed int

	// Board state
	board     *world.World
	active    tetromino.Figure
	hasActive bool

	// Autopilot state
	pilot    bool
	plan     planner.Plan
	planStep int

	// Pacing
	dropTicker int
	moveTicker int

	// Layout
	boardOffsetX int
	boardOffsetY int
	hudHeight    int
	screenW      int
	screenH      int

	// Game state flags
	gameOver bool
	paused   bool
	tooSmall bool
}

// Package-level overrides applied by the CLI before game creation.
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets a custom config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset used on the next Reset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// New creates a new pilot mode tetris game.
func New() *Game {
	return &Game{
		mode: ModePilot,
	}
}

// NewManual creates a new manual mode tetris game.
func NewManual() *Game {
	return &Game{
		mode: ModeManual,
	}
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
	registry.Register("tetris_manual", func() registry.Game {
		return NewManual()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeManual {
		return "tetris_manual"
	}
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeManual {
		return "Tetris (Manual)"
	}
	return "Tetris (Autopilot)"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.LoadTetris(configPath)
	if err != nil {
		cfg = config.DefaultTetrisConfig()
	}
	if difficultyPreset != "" {
		config.ApplyTetrisPreset(&cfg, config.DifficultyPreset(difficultyPreset))
	}
	g.cfg = cfg
	g.diff = config.NewDifficultyManager(cfg.Difficulty)

	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tick = 0
	g.score = 0
	g.plansFailed = 0
	g.gameOver = false
	g.paused = false
	g.pilot = g.mode == ModePilot
	g.dropTicker = 0
	g.moveTicker = 0
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.hudHeight = 2

	g.board = world.New(cfg.Board.Width, cfg.Board.Height)
	if cfg.Walls.Enabled {
		density := g.diff.WallDensity(cfg.Walls.Density, 0, 0)
		g.board.Resample(g.rng, cfg.Board.KeepRows, cfg.Board.KeepCols, density)
	}

	// Border takes two columns/rows, HUD sits above the board
	requiredW := cfg.Board.Width + 2
	requiredH := cfg.Board.Height + g.hudHeight + 2
	g.tooSmall = g.screenW < requiredW || g.screenH < requiredH
	g.boardOffsetX = (g.screenW - cfg.Board.Width) / 2
	g.boardOffsetY = g.hudHeight + 1

	g.spawn()
}

// spawn introduces the next figure at the top center of the board.
// The board must not contain the in-flight figure while planning.
func (g *Game) spawn() {
	kinds := tetromino.Kinds()
	kind := kinds[g.rng.Intn(len(kinds))]

	f, err := tetromino.New(kind, tetromino.P(g.board.Width()/2, 1))
	if err != nil {
		g.gameOver = true
		return
	}

	if !g.board.FigureInBounds(f) || !g.board.MayPlace(f) {
		g.hasActive = false
		g.gameOver = true
		return
	}

	g.active = f
	g.hasActive = true
	g.plan = nil
	g.planStep = 0

	if g.pilot {
		g.replan()
	}
}

// replan asks the planner for a landing plan for the active figure.
func (g *Game) replan() {
	g.plan = planner.Solve(g.board, g.active)
	g.planStep = 0
	if len(g.plan) == 0 {
		g.plansFailed++
		g.gameOver = true
	}
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionRestart) && g.gameOver {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.gameOver || g.paused || g.tooSmall || !g.hasActive {
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPilot) {
		g.togglePilot()
	}

	if g.pilot {
		g.stepPilot()
	} else {
		g.stepManual(input)
	}

	return core.StepResult{State: g.State()}
}

// togglePilot switches between planner and player control mid-flight.
func (g *Game) togglePilot() {
	g.pilot = !g.pilot
	if g.pilot {
		g.replan()
	} else {
		g.plan = nil
		g.planStep = 0
	}
}

// stepPilot replays the planned move sequence at the pilot interval.
func (g *Game) stepPilot() {
	if len(g.plan) == 0 {
		return
	}

	g.moveTicker++
	if g.moveTicker < g.cfg.Speed.PilotMoveEveryTicks {
		return
	}
	g.moveTicker = 0

	if g.planStep < len(g.plan)-1 {
		g.planStep++
		g.active = g.plan[g.planStep]
	}
	if g.planStep >= len(g.plan)-1 {
		g.lock()
	}
}

// stepManual applies player input, then gravity.
func (g *Game) stepManual(input core.InputFrame) {
	switch {
	case input.Has(core.ActionLeft):
		g.tryShift(tetromino.P(-1, 0))
	case input.Has(core.ActionRight):
		g.tryShift(tetromino.P(1, 0))
	case input.Has(core.ActionRotate):
		g.tryRotate()
	case input.Has(core.ActionDrop):
		if !g.tryShift(tetromino.P(0, 1)) {
			g.lock()
			return
		}
		g.dropTicker = 0
	case input.Has(core.ActionHardDrop):
		for g.tryShift(tetromino.P(0, 1)) {
		}
		g.lock()
		return
	}

	g.dropTicker++
	interval := g.diff.DropInterval(g.cfg.Speed.DropEveryTicks, g.score, int(g.tick))
	if g.dropTicker >= interval {
		g.dropTicker = 0
		if !g.tryShift(tetromino.P(0, 1)) {
			g.lock()
		}
	}
}

// tryShift moves the active figure if the new pose is legal.
func (g *Game) tryShift(delta tetromino.Point) bool {
	shifted := g.active.Shift(delta)
	if !g.board.FigureInBounds(shifted) || !g.board.MayPlace(shifted) {
		return false
	}
	g.active = shifted
	return true
}

// tryRotate rotates the active figure clockwise if the new pose is legal.
func (g *Game) tryRotate() bool {
	rotated, err := g.active.Rotate(90)
	if err != nil {
		return false
	}
	if !g.board.FigureInBounds(rotated) || !g.board.MayPlace(rotated) {
		return false
	}
	g.active = rotated
	return true
}

// lock places the active figure into the board and spawns the next one.
func (g *Game) lock() {
	g.board.Place(g.active)
	g.hasActive = false
	g.score++
	g.dropTicker = 0
	g.moveTicker = 0
	g.spawn()
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	// Board border
	dst.DrawBox(core.NewRect(g.boardOffsetX-1, g.boardOffsetY-1, g.board.Width()+2, g.board.Height()+2))

	g.renderBoard(dst)
	g.renderActive(dst)

	switch {
	case g.gameOver:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Placed: %d  Press R to restart", g.score))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	pilotState := "off"
	if g.pilot {
		pilotState = "on"
	}
	hud := fmt.Sprintf(" %s — Placed: %d  Pilot: %s", g.Title(), g.score, pilotState)
	if g.pilot && len(g.plan) > 0 {
		hud += fmt.Sprintf("  Plan: %d/%d", g.planStep+1, len(g.plan))
	}

	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderBoard draws walls and locked figure cells.
func (g *Game) renderBoard(dst *core.Screen) {
	for y := 0; y < g.board.Height(); y++ {
		for x := 0; x < g.board.Width(); x++ {
			sx := g.boardOffsetX + x
			sy := g.boardOffsetY + y
			switch g.board.At(tetromino.P(x, y)) {
			case world.CellWall:
				dst.SetColored(sx, sy, '▒', core.ColorGray)
			case world.CellFigure:
				dst.SetColored(sx, sy, '█', core.ColorCyan)
			}
		}
	}
}

// renderActive draws the in-flight figure.
func (g *Game) renderActive(dst *core.Screen) {
	if !g.hasActive {
		return
	}
	for _, p := range g.active.Points {
		sx := g.boardOffsetX + p.X
		sy := g.boardOffsetY + p.Y
		if g.board.InBounds(p) {
			dst.SetColored(sx, sy, '█', core.ColorBrightYellow)
		}
	}
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := len([]rune(line1))
	if l := len([]rune(line2)); l > maxLen {
		maxLen = l
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.FillRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Board exposes the obstacle board for tests and debug tooling.
func (g *Game) Board() *world.World {
	return g.board
}
