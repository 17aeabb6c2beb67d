package planner

import (
	"sort"

	"github.com/vovakirdan/tui-tetris/internal/tetromino"
	"github.com/vovakirdan/tui-tetris/internal/world"
)

// Plan is an ordered sequence of poses from the search-start pose to the
// chosen resting pose, inclusive. An empty plan means no legal placement
// was reachable; that is a normal outcome, not an error.
type Plan []tetromino.Figure

// Goal returns the final pose of the plan.
// Must not be called on an empty plan.
func (p Plan) Goal() tetromino.Figure {
	return p[len(p)-1]
}

// Solve picks a resting place for the figure and returns the move sequence
// that reaches it. Rows are scanned from the bottom up; within a row,
// legal candidate poses are ranked best-first by Score and searched in
// order until one is reachable. Rows with no legal or no reachable
// candidate are skipped. Returns an empty plan once every row is
// exhausted.
//
// The world must hold only static obstacles: the caller clears the
// in-flight figure's cells before solving.
func Solve(w *world.World, f tetromino.Figure) Plan {
	for y := w.Height() - 1; y >= 0; y-- {
		cells := w.EmptyCells(y)
		if len(cells) == 0 {
			continue
		}

		candidates := LegalSubset(w, PosesAtMany(f, cells))
		if len(candidates) == 0 {
			continue
		}

		for _, goal := range rank(w, f, candidates) {
			if plan := Search(w, f, goal); len(plan) > 0 {
				return plan
			}
		}
	}
	return nil
}

// rank orders candidates by descending score. Scores are computed once per
// candidate; the sort is stable so equal scores keep enumeration order.
func rank(w *world.World, f tetromino.Figure, candidates []tetromino.Figure) []tetromino.Figure {
	type scored struct {
		fig   tetromino.Figure
		score float64
	}
	ranked := make([]scored, len(candidates))
	for i, c := range candidates {
		ranked[i] = scored{fig: c, score: Score(w, f, c)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	out := make([]tetromino.Figure, len(ranked))
	for i, s := range ranked {
		out[i] = s.fig
	}
	return out
}
