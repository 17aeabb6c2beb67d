package planner

import (
	"github.com/vovakirdan/tui-tetris/internal/tetromino"
	"github.com/vovakirdan/tui-tetris/internal/world"
)

// Score rates a candidate resting pose; higher is better. The score adds
// two terms: the fraction of the candidate's in-bounds neighbors that are
// occupied (tight packing against existing cells), and the candidate's
// mean row coordinate (deeper rows score higher). The goal figure is part
// of the signature for symmetry with the other ranking inputs but does not
// currently affect the result.
func Score(w *world.World, goal, candidate tetromino.Figure) float64 {
	neighbors := make(map[tetromino.Point]struct{}, len(candidate.Points)*4)
	for _, p := range candidate.Points {
		for _, n := range [4]tetromino.Point{
			{X: p.X - 1, Y: p.Y},
			{X: p.X + 1, Y: p.Y},
			{X: p.X, Y: p.Y - 1},
			{X: p.X, Y: p.Y + 1},
		} {
			if w.InBounds(n) {
				neighbors[n] = struct{}{}
			}
		}
	}

	// The candidate is placed only for the duration of the neighbor count.
	w.Place(candidate)
	occupied := 0
	for n := range neighbors {
		if w.At(n) != world.CellEmpty {
			occupied++
		}
	}
	w.Clear(candidate)

	var density float64
	if len(neighbors) > 0 {
		density = float64(occupied) / float64(len(neighbors))
	}

	depth := 0
	for _, p := range candidate.Points {
		depth += p.Y
	}

	return density + float64(depth)/float64(len(candidate.Points))
}
