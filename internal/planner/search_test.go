package planner

import (
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/tetromino"
	"github.com/vovakirdan/tui-tetris/internal/world"
)

// assertValidPlan checks that a plan starts at `start`, ends at `goal`,
// and that every transition is a single legal shift or an in-place
// rotation.
func assertValidPlan(t *testing.T, w *world.World, plan Plan, start, goal tetromino.Figure) {
	t.Helper()

	if len(plan) == 0 {
		t.Fatal("plan is empty")
	}
	if plan[0].Key() != start.Key() {
		t.Errorf("plan starts at %s, expected %s", plan[0].Key(), start.Key())
	}
	if plan.Goal().Key() != goal.Key() {
		t.Errorf("plan ends at %s, expected %s", plan.Goal().Key(), goal.Key())
	}

	for i := 1; i < len(plan); i++ {
		prev, cur := plan[i-1], plan[i]

		if !w.FigureInBounds(cur) || !w.MayPlace(cur) {
			t.Errorf("step %d: pose %s is illegal", i, cur.Key())
		}

		if !isSingleStep(prev, cur) {
			t.Errorf("step %d: %s -> %s is not a single move or rotation", i, prev.Key(), cur.Key())
		}
	}
}

// isSingleStep reports whether cur is one shift or one in-place rotation
// away from prev.
func isSingleStep(prev, cur tetromino.Figure) bool {
	for _, d := range shifts {
		if prev.Shift(d).Key() == cur.Key() {
			return true
		}
	}
	for _, pose := range PosesAt(prev, prev.CenterPoint()) {
		if pose.Key() == cur.Key() {
			return true
		}
	}
	return false
}

func TestSearchTrivialGoal(t *testing.T) {
	w := world.New(6, 6)
	f, _ := tetromino.New(tetromino.KindT, tetromino.P(2, 2))

	plan := Search(w, f, f)
	if len(plan) != 1 {
		t.Fatalf("search with start == goal returned %d poses, expected 1", len(plan))
	}
	if plan[0].Key() != f.Key() {
		t.Errorf("plan = %s, expected the start pose", plan[0].Key())
	}
}

func TestSearchStraightDescent(t *testing.T) {
	w := world.New(4, 5)
	start, _ := tetromino.New(tetromino.KindO, tetromino.P(1, 0))
	goal := start.Translate(tetromino.P(1, 3))

	plan := Search(w, start, goal)
	assertValidPlan(t, w, plan, start, goal)

	// Three descents, uniform step cost: four poses total
	if len(plan) != 4 {
		t.Errorf("plan length = %d, expected 4", len(plan))
	}
}

func TestSearchWithRotation(t *testing.T) {
	w := world.New(6, 6)
	start, _ := tetromino.New(tetromino.KindT, tetromino.P(2, 1))

	rotated, err := start.Rotate(90)
	if err != nil {
		t.Fatalf("Rotate failed: %v", err)
	}
	goal := rotated.Translate(tetromino.P(3, 4))

	plan := Search(w, start, goal)
	assertValidPlan(t, w, plan, start, goal)
}

func TestSearchBlockedByWallRow(t *testing.T) {
	w, err := world.FromRows([]string{
		"....",
		"....",
		"####",
		"....",
		"....",
	})
	if err != nil {
		t.Fatalf("FromRows failed: %v", err)
	}

	start, _ := tetromino.New(tetromino.KindO, tetromino.P(1, 0))
	goal := start.Translate(tetromino.P(1, 3))

	if plan := Search(w, start, goal); plan != nil {
		t.Errorf("search across a solid wall row returned a plan of %d poses, expected none", len(plan))
	}
}

func TestSearchRoutesAroundObstacle(t *testing.T) {
	// The descent under the spawn is blocked; the figure has to slide
	// sideways before dropping.
	w, err := world.FromRows([]string{
		"......",
		"......",
		".##...",
		".##...",
		"......",
		"......",
	})
	if err != nil {
		t.Fatalf("FromRows failed: %v", err)
	}

	start, _ := tetromino.New(tetromino.KindO, tetromino.P(1, 0))
	goal := start.Translate(tetromino.P(4, 4))

	plan := Search(w, start, goal)
	assertValidPlan(t, w, plan, start, goal)
}
