// Package tetromino models the seven canonical falling figures as rigid,
// ordered point sets with a designated rotation center. All transforms are
// pure: they return a new figure and never mutate the receiver, and they
// preserve point order, which higher layers rely on for identity and
// distance computations.
package tetromino

import "fmt"

// Point is a cell coordinate on the board.
// X increases to the right, Y increases downward (screen coordinates).
type Point struct {
	X int
	Y int
}

// P is a convenience constructor for Point.
func P(x, y int) Point {
	return Point{X: x, Y: y}
}

// String returns a string representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns the sum of two points.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns the difference of two points.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// Manhattan returns the Manhattan distance to another point.
func (p Point) Manhattan(other Point) int {
	dx := p.X - other.X
	dy := p.Y - other.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}
