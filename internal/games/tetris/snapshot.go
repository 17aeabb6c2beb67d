package tetris

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateGameOver    GameStateType = "game_over"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick        uint64
	Mode        string // "pilot" or "manual"
	Pilot       bool   // planner currently in control
	Score       int    // figures locked into the board
	PlansFailed int
	ActiveKind  string // empty when no figure is in flight
	CenterX     int
	CenterY     int
	PlanLen     int
	PlanStep    int
	WallCount   int
	State       GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	s := Snapshot{
		Tick:        g.tick,
		Mode:        string(g.mode),
		Pilot:       g.pilot,
		Score:       g.score,
		PlansFailed: g.plansFailed,
		PlanLen:     len(g.plan),
		PlanStep:    g.planStep,
		State:       state,
	}

	if g.board != nil {
		s.WallCount = g.board.CountWalls()
	}
	if g.hasActive {
		s.ActiveKind = string(g.active.Kind)
		center := g.active.CenterPoint()
		s.CenterX = center.X
		s.CenterY = center.Y
	}

	return s
}
