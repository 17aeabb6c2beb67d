// Package planner chooses a resting place for a falling figure and finds a
// legal move sequence that reaches it. Candidate poses are enumerated per
// row, ranked by a packing heuristic, and connected to the figure's current
// pose with an A* search over single-step moves and quarter-turn rotations.
package planner

import (
	"github.com/vovakirdan/tui-tetris/internal/tetromino"
	"github.com/vovakirdan/tui-tetris/internal/world"
)

// rotations is the set of supported quarter-turn angles. The identity pose
// is emitted separately, so 0 is never requested from Rotate.
var rotations = [3]int{90, 180, 270}

// PosesAt returns the four poses of the figure with its center translated
// to `at`: the translated pose itself plus its three quarter-turn
// rotations. Each pose is an independent figure.
func PosesAt(f tetromino.Figure, at tetromino.Point) []tetromino.Figure {
	base := f.Translate(at)
	poses := make([]tetromino.Figure, 0, 4)
	poses = append(poses, base)
	for _, deg := range rotations {
		r, err := base.Rotate(deg)
		if err != nil {
			continue
		}
		poses = append(poses, r)
	}
	return poses
}

// PosesAtMany concatenates PosesAt over every target point and removes
// duplicate poses by point-sequence identity. Survivors keep first
// occurrence order, so the result is deterministic for a given input order.
func PosesAtMany(f tetromino.Figure, points []tetromino.Point) []tetromino.Figure {
	seen := make(map[string]struct{}, len(points)*4)
	var poses []tetromino.Figure
	for _, at := range points {
		for _, pose := range PosesAt(f, at) {
			key := pose.Key()
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			poses = append(poses, pose)
		}
	}
	return poses
}

// LegalSubset filters candidates down to poses that are fully on the grid
// and overlap no occupied cell.
func LegalSubset(w *world.World, candidates []tetromino.Figure) []tetromino.Figure {
	var legal []tetromino.Figure
	for _, c := range candidates {
		if w.FigureInBounds(c) && w.MayPlace(c) {
			legal = append(legal, c)
		}
	}
	return legal
}
