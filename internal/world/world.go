// Package world owns the mutable occupancy grid that figures are placed
// into. The grid is the only shared mutable state in a planning episode;
// Place and Clear must always be called in matching pairs around transient
// evaluations so figure marks never leak into later reads.
package world

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-tetris/internal/tetromino"
)

// Cell is the occupancy state of one grid cell.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellWall
	CellFigure
)

// World is a fixed-size occupancy grid. Cells are stored in row-major
// order: index = y*width + x. Dimensions never change after construction.
type World struct {
	width  int
	height int
	cells  []Cell
}

// New creates an empty world with the given dimensions.
func New(width, height int) *World {
	return &World{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

// FromRows builds a world from a row layout where '#' marks a wall and any
// other character an empty cell. All rows must have equal length.
func FromRows(rows []string) (*World, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("world: empty layout")
	}
	width := len(rows[0])
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("world: row %d has length %d, expected %d", i, len(row), width)
		}
	}

	w := New(width, len(rows))
	for y, row := range rows {
		for x, ch := range row {
			if ch == '#' {
				w.cells[y*width+x] = CellWall
			}
		}
	}
	return w, nil
}

// Width returns the grid width.
func (w *World) Width() int {
	return w.width
}

// Height returns the grid height.
func (w *World) Height() int {
	return w.height
}

func (w *World) index(p tetromino.Point) int {
	return p.Y*w.width + p.X
}

// InBounds returns true if the point lies within the grid.
func (w *World) InBounds(p tetromino.Point) bool {
	return p.X >= 0 && p.X < w.width && p.Y >= 0 && p.Y < w.height
}

// At returns the cell state at the given point.
// Out-of-bounds reads count as solid.
func (w *World) At(p tetromino.Point) Cell {
	if !w.InBounds(p) {
		return CellWall
	}
	return w.cells[w.index(p)]
}

// Set writes the cell state at the given point.
// Out-of-bounds writes are silently ignored.
func (w *World) Set(p tetromino.Point, c Cell) {
	if w.InBounds(p) {
		w.cells[w.index(p)] = c
	}
}

// FigureInBounds returns true if both corners of the figure's bounding box
// lie within the grid. This is the authoritative in-range gate; MayPlace
// deliberately ignores out-of-bounds cells.
func (w *World) FigureInBounds(f tetromino.Figure) bool {
	min, max := f.Bounds()
	return w.InBounds(min) && w.InBounds(max)
}

// MayPlace returns true if every in-bounds cell of the figure reads empty.
// Cells outside the grid are vacuously satisfied; only FigureInBounds
// decides whether the figure as a whole is in range.
func (w *World) MayPlace(f tetromino.Figure) bool {
	for _, p := range f.Points {
		if !w.InBounds(p) {
			continue
		}
		if w.cells[w.index(p)] != CellEmpty {
			return false
		}
	}
	return true
}

// Place marks the figure's in-bounds cells as occupied by a figure.
// Every Place must be paired with a matching Clear.
func (w *World) Place(f tetromino.Figure) {
	for _, p := range f.Points {
		if w.InBounds(p) {
			w.cells[w.index(p)] = CellFigure
		}
	}
}

// Clear resets the figure's in-bounds cells back to empty.
func (w *World) Clear(f tetromino.Figure) {
	for _, p := range f.Points {
		if w.InBounds(p) {
			w.cells[w.index(p)] = CellEmpty
		}
	}
}

// EmptyCells returns the coordinates of all empty cells in the given row,
// in ascending column order.
func (w *World) EmptyCells(y int) []tetromino.Point {
	if y < 0 || y >= w.height {
		return nil
	}
	var cells []tetromino.Point
	for x := 0; x < w.width; x++ {
		p := tetromino.P(x, y)
		if w.cells[w.index(p)] == CellEmpty {
			cells = append(cells, p)
		}
	}
	return cells
}

// CountWalls returns the number of wall cells in the grid.
func (w *World) CountWalls() int {
	count := 0
	for _, c := range w.cells {
		if c == CellWall {
			count++
		}
	}
	return count
}

// Resample replaces the occupancy matrix with freshly sampled walls while
// keeping dimensions fixed. Each cell becomes a wall with probability
// `density`, except cells with row <= keepRows or column <= keepCols, which
// are forced empty so the spawn zone and a routing channel stay clear.
func (w *World) Resample(rng *rand.Rand, keepRows, keepCols int, density float64) {
	for y := 0; y < w.height; y++ {
		for x := 0; x < w.width; x++ {
			i := y*w.width + x
			if y <= keepRows || x <= keepCols {
				w.cells[i] = CellEmpty
				continue
			}
			if rng.Float64() < density {
				w.cells[i] = CellWall
			} else {
				w.cells[i] = CellEmpty
			}
		}
	}
}

// Clone returns a deep copy of the world.
func (w *World) Clone() *World {
	cells := make([]Cell, len(w.cells))
	copy(cells, w.cells)
	return &World{width: w.width, height: w.height, cells: cells}
}

// Equal returns true if two worlds have the same dimensions and contents.
func (w *World) Equal(other *World) bool {
	if w.width != other.width || w.height != other.height {
		return false
	}
	for i, c := range w.cells {
		if c != other.cells[i] {
			return false
		}
	}
	return true
}
