package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-tetris/internal/planner"
	"github.com/vovakirdan/tui-tetris/internal/storage"
	"github.com/vovakirdan/tui-tetris/internal/tetromino"
	"github.com/vovakirdan/tui-tetris/internal/world"
)

var (
	flagSolveWidth   int
	flagSolveHeight  int
	flagSolveDensity float64
	flagSolveKind    string
	flagSolveLayout  string
	flagSolveNoSave  bool
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Run the planner headlessly and print the plan",
	Long: `Generate an obstacle board, run the planner for a single figure, and
print the resulting move sequence. Useful for inspecting planner behavior
without the TUI.

The board is either sampled randomly (--width/--height/--density with the
global --seed) or loaded from a YAML layout file:

  rows:
    - "........"
    - "..#...#."
    - "##....##"

Each solve is recorded in the database unless --no-save is given.

Examples:
  tetris solve --kind T
  tetris solve --kind I --width 12 --height 18 --density 0.2 --seed 7
  tetris solve --kind O --layout ./board.yaml`,
	Run: runSolve,
}

// layoutFile is the YAML schema for --layout.
type layoutFile struct {
	Rows []string `yaml:"rows"`
}

func init() {
	solveCmd.Flags().IntVar(&flagSolveWidth, "width", 10, "Board width in cells")
	solveCmd.Flags().IntVar(&flagSolveHeight, "height", 20, "Board height in cells")
	solveCmd.Flags().Float64Var(&flagSolveDensity, "density", 0.15, "Wall probability per cell")
	solveCmd.Flags().StringVar(&flagSolveKind, "kind", "T", "Figure kind: I, O, L, J, S, Z, T")
	solveCmd.Flags().StringVar(&flagSolveLayout, "layout", "", "Path to a YAML board layout (overrides width/height/density)")
	solveCmd.Flags().BoolVar(&flagSolveNoSave, "no-save", false, "Do not record the solve in the database")
}

func runSolve(_ *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "solve",
	})

	w, err := solveBoard()
	if err != nil {
		logger.Fatal("cannot build board", "error", err)
	}

	kind := tetromino.Kind(strings.ToUpper(flagSolveKind))
	spawn := tetromino.P(w.Width()/2, 1)
	fig, err := tetromino.New(kind, spawn)
	if err != nil {
		logger.Fatal("cannot create figure", "kind", flagSolveKind, "error", err)
	}

	logger.Info("planning",
		"kind", kind,
		"board", fmt.Sprintf("%dx%d", w.Width(), w.Height()),
		"walls", w.CountWalls(),
		"spawn", spawn,
	)

	started := time.Now()
	plan := planner.Solve(w, fig)
	elapsed := time.Since(started)

	if !flagSolveNoSave {
		saveSolve(logger, kind, w, plan, elapsed)
	}

	if len(plan) == 0 {
		logger.Warn("no placement found", "elapsed", elapsed)
		fmt.Println(renderBoard(w, nil))
		os.Exit(1)
	}

	goal := plan.Goal()
	logger.Info("plan found",
		"steps", len(plan),
		"goal", goal.CenterPoint(),
		"elapsed", elapsed,
	)

	fmt.Println(renderBoard(w, &goal))
	fmt.Println()
	for i, pose := range plan {
		fmt.Printf("  %3d  center=%s  cells=%s\n", i, pose.CenterPoint(), pose.Key())
	}
}

// solveBoard builds the board from --layout or random sampling.
func solveBoard() (*world.World, error) {
	if flagSolveLayout != "" {
		data, err := os.ReadFile(flagSolveLayout)
		if err != nil {
			return nil, fmt.Errorf("read layout: %w", err)
		}
		var lf layoutFile
		if err := yaml.Unmarshal(data, &lf); err != nil {
			return nil, fmt.Errorf("parse layout: %w", err)
		}
		return world.FromRows(lf.Rows)
	}

	if flagSolveWidth < 4 || flagSolveHeight < 4 {
		return nil, fmt.Errorf("board must be at least 4x4, got %dx%d", flagSolveWidth, flagSolveHeight)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	w := world.New(flagSolveWidth, flagSolveHeight)
	// Keep the spawn rows and the left column clear, like the game does
	w.Resample(rand.New(rand.NewSource(seed)), 3, 0, flagSolveDensity)
	return w, nil
}

// saveSolve records the solve outcome, best effort.
func saveSolve(logger *log.Logger, kind tetromino.Kind, w *world.World, plan planner.Plan, elapsed time.Duration) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open database", "error", err)
		return
	}
	defer store.Close()

	entry := storage.SolveEntry{
		Kind:        string(kind),
		BoardWidth:  w.Width(),
		BoardHeight: w.Height(),
		WallCount:   w.CountWalls(),
		PlanLen:     len(plan),
		Solved:      len(plan) > 0,
		DurationUs:  elapsed.Microseconds(),
	}
	if _, err := store.SaveSolve(entry); err != nil {
		logger.Warn("could not record solve", "error", err)
	}
}

// renderBoard draws the board as ASCII, with the goal pose marked '*'.
func renderBoard(w *world.World, goal *tetromino.Figure) string {
	goalCells := make(map[tetromino.Point]bool)
	if goal != nil {
		for _, p := range goal.Points {
			goalCells[p] = true
		}
	}

	var sb strings.Builder
	for y := 0; y < w.Height(); y++ {
		for x := 0; x < w.Width(); x++ {
			p := tetromino.P(x, y)
			switch {
			case goalCells[p]:
				sb.WriteByte('*')
			case w.At(p) == world.CellWall:
				sb.WriteByte('#')
			default:
				sb.WriteByte('.')
			}
		}
		if y < w.Height()-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
