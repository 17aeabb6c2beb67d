// tetris is a terminal tetris variant with an automated figure planner.
//
// Usage:
//
//	tetris list              - List available game modes
//	tetris play <mode>       - Play a mode (pilot or manual)
//	tetris menu              - Start menu to pick a mode interactively
//	tetris solve             - Run the planner headlessly and print the plan
//	tetris serve             - Start SSH server for remote play
//	tetris scores <mode>     - Show high scores for a mode
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.tetris/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import game modes to register them
	_ "github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Terminal tetris with an automated figure planner",
	Long: `tetris is a terminal game where falling figures land on a board of
random obstacles. An A* planner can pilot the figure to the placement it
judges best, or you can steer it yourself and hand over control at any time.

Available commands:
  list     - Show all available game modes
  play     - Play a mode directly
  menu     - Interactive mode picker menu
  solve    - Run the planner headlessly and print the plan
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  tetris list
  tetris play tetris
  tetris play tetris_manual --difficulty hard
  tetris solve --kind T --width 12 --height 18
  tetris serve --ssh :2222
  tetris scores tetris`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tetris/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
