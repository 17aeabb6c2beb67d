package tetromino

import (
	"errors"
	"fmt"
	"strings"
)

// Kind identifies one of the seven canonical figure shapes.
type Kind string

const (
	KindI Kind = "I"
	KindO Kind = "O"
	KindL Kind = "L"
	KindJ Kind = "J"
	KindS Kind = "S"
	KindZ Kind = "Z"
	KindT Kind = "T"
)

var (
	// ErrUnknownKind is returned by New for a kind outside the seven
	// canonical shapes.
	ErrUnknownKind = errors.New("tetromino: unknown figure kind")

	// ErrUnsupportedRotation is returned by Rotate for any angle other
	// than 90, 180 or 270 degrees.
	ErrUnsupportedRotation = errors.New("tetromino: unsupported rotation angle")
)

// template describes a kind's cells relative to an arbitrary origin, plus
// the index of the cell that acts as the rotation center.
type template struct {
	points []Point
	center int
}

// Cell offsets per kind. Point order is part of each figure's identity and
// must stay stable, so templates are slices, not sets.
var templates = map[Kind]template{
	KindI: {points: []Point{{-1, 0}, {0, 0}, {1, 0}, {2, 0}}, center: 1},
	KindO: {points: []Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}}, center: 0},
	KindL: {points: []Point{{0, -1}, {0, 0}, {0, 1}, {1, 1}}, center: 1},
	KindJ: {points: []Point{{0, -1}, {0, 0}, {0, 1}, {-1, 1}}, center: 1},
	KindS: {points: []Point{{1, 0}, {0, 0}, {0, 1}, {-1, 1}}, center: 1},
	KindZ: {points: []Point{{-1, 0}, {0, 0}, {0, 1}, {1, 1}}, center: 1},
	KindT: {points: []Point{{-1, 0}, {0, 0}, {1, 0}, {0, 1}}, center: 1},
}

// Kinds returns all seven kinds in a fixed order, for enumeration and
// random selection.
func Kinds() []Kind {
	return []Kind{KindI, KindO, KindL, KindJ, KindS, KindZ, KindT}
}

// Figure is a rigid, ordered collection of cells with a designated rotation
// center. Two figures with identical point sequences are the same pose.
type Figure struct {
	Kind   Kind
	Points []Point
	Center int // Index into Points of the rotation center
}

// New creates a figure of the given kind with its rotation center at `at`.
func New(kind Kind, at Point) (Figure, error) {
	tpl, ok := templates[kind]
	if !ok {
		return Figure{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	points := make([]Point, len(tpl.points))
	for i, p := range tpl.points {
		points[i] = p.Add(at)
	}

	return Figure{Kind: kind, Points: points, Center: tpl.center}, nil
}

// Clone returns a deep copy of the figure.
func (f Figure) Clone() Figure {
	points := make([]Point, len(f.Points))
	copy(points, f.Points)
	return Figure{Kind: f.Kind, Points: points, Center: f.Center}
}

// CenterPoint returns the coordinate of the designated rotation center.
func (f Figure) CenterPoint() Point {
	return f.Points[f.Center]
}

// Key returns the figure's identity: the ordered point sequence as a
// string. It is used as the map key for search frontiers, explored sets
// and candidate de-duplication.
func (f Figure) Key() string {
	var sb strings.Builder
	sb.Grow(len(f.Points) * 8)
	for i, p := range f.Points {
		if i > 0 {
			sb.WriteByte(';')
		}
		fmt.Fprintf(&sb, "%d,%d", p.X, p.Y)
	}
	return sb.String()
}

// Bounds returns the inclusive min/max corners of the figure's cells.
func (f Figure) Bounds() (min, max Point) {
	min = f.Points[0]
	max = f.Points[0]
	for _, p := range f.Points[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	return min, max
}

// Shift returns the figure moved by a constant delta.
func (f Figure) Shift(delta Point) Figure {
	moved := f.Clone()
	for i, p := range moved.Points {
		moved.Points[i] = p.Add(delta)
	}
	return moved
}

// Translate returns the figure shifted so its rotation center lands at
// `target`; all other cells move by the same delta.
func (f Figure) Translate(target Point) Figure {
	return f.Shift(target.Sub(f.CenterPoint()))
}

// Rotate returns the figure rotated clockwise about its center point.
// Only 90, 180 and 270 degrees are supported; any other angle (including 0)
// returns ErrUnsupportedRotation. Rotation uses exact integer matrices so
// cells never drift off the grid.
func (f Figure) Rotate(degrees int) (Figure, error) {
	var rot func(Point) Point
	switch degrees {
	case 90:
		rot = func(p Point) Point { return Point{X: -p.Y, Y: p.X} }
	case 180:
		rot = func(p Point) Point { return Point{X: -p.X, Y: -p.Y} }
	case 270:
		rot = func(p Point) Point { return Point{X: p.Y, Y: -p.X} }
	default:
		return Figure{}, fmt.Errorf("%w: %d", ErrUnsupportedRotation, degrees)
	}

	center := f.CenterPoint()
	rotated := f.Clone()
	for i, p := range rotated.Points {
		rotated.Points[i] = rot(p.Sub(center)).Add(center)
	}
	return rotated, nil
}
