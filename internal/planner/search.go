package planner

import (
	"container/heap"

	"github.com/vovakirdan/tui-tetris/internal/tetromino"
	"github.com/vovakirdan/tui-tetris/internal/world"
)

// node is one state in the search tree: a figure pose, a back-reference to
// the pose it was reached from, and the accumulated step count.
type node struct {
	fig    tetromino.Figure
	key    string
	parent *node
	cost   int
	f      float64 // cost + heuristic, the frontier ordering key
	index  int     // heap index, maintained by frontier
}

// frontier is a priority queue over nodes ordered by ascending f, with a
// secondary index by pose identity so membership tests and in-place
// replacement stay O(1)/O(log n).
type frontier struct {
	nodes []*node
	byKey map[string]*node
}

func newFrontier() *frontier {
	return &frontier{byKey: make(map[string]*node)}
}

func (fr *frontier) Len() int { return len(fr.nodes) }

func (fr *frontier) Less(i, j int) bool { return fr.nodes[i].f < fr.nodes[j].f }

func (fr *frontier) Swap(i, j int) {
	fr.nodes[i], fr.nodes[j] = fr.nodes[j], fr.nodes[i]
	fr.nodes[i].index = i
	fr.nodes[j].index = j
}

func (fr *frontier) Push(x any) {
	n := x.(*node)
	n.index = len(fr.nodes)
	fr.nodes = append(fr.nodes, n)
	fr.byKey[n.key] = n
}

func (fr *frontier) Pop() any {
	old := fr.nodes
	last := len(old) - 1
	n := old[last]
	old[last] = nil
	n.index = -1
	fr.nodes = old[:last]
	delete(fr.byKey, n.key)
	return n
}

// lookup returns the frontier node with the given pose identity, if any.
func (fr *frontier) lookup(key string) (*node, bool) {
	n, ok := fr.byKey[key]
	return n, ok
}

// heuristic estimates the remaining steps to the goal as the mean
// per-point Manhattan distance, matched by point index. It relies on the
// transforms preserving point order; it is not guaranteed admissible, and
// completeness comes from exhaustive frontier expansion, not from the
// estimate.
func heuristic(fig, goal tetromino.Figure) float64 {
	total := 0
	for i, p := range fig.Points {
		total += p.Manhattan(goal.Points[i])
	}
	return float64(total) / float64(len(fig.Points))
}

// Moves a figure may make between poses: descend one row, shift one column
// left or right. Ascending moves are excluded; the bottom-up row scan only
// ever targets poses at or below the spawn, so the search never needs to
// climb.
var shifts = [3]tetromino.Point{
	{X: 0, Y: 1},
	{X: -1, Y: 0},
	{X: 1, Y: 0},
}

// successors generates the legal poses reachable from fig in one step:
// the three single-cell shifts plus the four rotation poses at the
// figure's own center (the identity pose among them is pruned later by the
// explored/frontier checks).
func successors(w *world.World, fig tetromino.Figure) []tetromino.Figure {
	moves := make([]tetromino.Figure, 0, 7)
	for _, d := range shifts {
		moves = append(moves, fig.Shift(d))
	}
	moves = append(moves, PosesAt(fig, fig.CenterPoint())...)
	return LegalSubset(w, moves)
}

// Search finds a sequence of legal single-step poses from start to goal
// against the static world, using A* with the mean-Manhattan heuristic.
// The world must not contain the in-flight figure's own cells. Returns nil
// when the goal is unreachable; the state space is finite, so the search
// always terminates.
func Search(w *world.World, start, goal tetromino.Figure) Plan {
	goalKey := goal.Key()
	root := &node{fig: start, key: start.Key()}
	if root.key == goalKey {
		return Plan{start}
	}
	root.f = heuristic(start, goal)

	open := newFrontier()
	heap.Push(open, root)
	explored := make(map[string]struct{})

	for open.Len() > 0 {
		n := heap.Pop(open).(*node)
		if n.key == goalKey {
			return backtrace(n)
		}
		explored[n.key] = struct{}{}

		for _, succ := range successors(w, n.fig) {
			key := succ.Key()
			if _, done := explored[key]; done {
				continue
			}

			cost := n.cost + 1
			f := float64(cost) + heuristic(succ, goal)

			if existing, ok := open.lookup(key); ok {
				// Keep the cheaper of the two occurrences.
				if f < existing.f {
					existing.parent = n
					existing.cost = cost
					existing.f = f
					heap.Fix(open, existing.index)
				}
				continue
			}

			heap.Push(open, &node{fig: succ, key: key, parent: n, cost: cost, f: f})
		}
	}

	return nil
}

// backtrace follows parent links from the goal node to the root and
// reverses the chain into root-to-goal order.
func backtrace(n *node) Plan {
	var poses Plan
	for cur := n; cur != nil; cur = cur.parent {
		poses = append(poses, cur.fig)
	}
	for i, j := 0, len(poses)-1; i < j; i, j = i+1, j-1 {
		poses[i], poses[j] = poses[j], poses[i]
	}
	return poses
}
