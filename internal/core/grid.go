package core

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrDimensions reports a grid size that cannot be allocated.
	ErrDimensions = errors.New("invalid grid dimensions")
	// ErrOutOfBounds reports coordinates outside [0, rows) x [0, cols).
	ErrOutOfBounds = errors.New("cell out of bounds")
)

// Grid stores a rows x cols board of cells in row-major order: cell (r, c)
// lives at index r*cols + c. The dimensions are fixed at creation.
type Grid struct {
	rows, cols int
	cells      []Cell
}

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrDimensions, rows, cols)
	}
	if rows > math.MaxInt/cols {
		return nil, fmt.Errorf("%w: %dx%d overflows", ErrDimensions, rows, cols)
	}
	return &Grid{rows: rows, cols: cols, cells: make([]Cell, rows*cols)}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{Rows: g.rows, Cols: g.cols} }

// InBounds reports whether (row, col) addresses a cell of the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

func (g *Grid) index(row, col int) int {
	if !g.InBounds(row, col) {
		panic(fmt.Sprintf("core: cell (%d,%d) outside %dx%d grid", row, col, g.rows, g.cols))
	}
	return row*g.cols + col
}

// Get returns the state of the cell at (row, col).
func (g *Grid) Get(row, col int) Cell { return g.cells[g.index(row, col)] }

// Alive reports whether the cell at (row, col) is alive.
func (g *Grid) Alive(row, col int) bool { return g.Get(row, col) == Alive }

// Set writes the state of the cell at (row, col).
func (g *Grid) Set(row, col int, c Cell) { g.cells[g.index(row, col)] = c }

// SetAlive marks a single cell alive. It is meant for initialization from
// external input, so bad coordinates are reported rather than panicking.
func (g *Grid) SetAlive(row, col int) error {
	if !g.InBounds(row, col) {
		return fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfBounds, row, col, g.rows, g.cols)
	}
	g.cells[row*g.cols+col] = Alive
	return nil
}

// Cells exposes the row-major backing slice for read-only scans.
func (g *Grid) Cells() []Cell { return g.cells }

// Snapshot returns an independent copy of the current cell states.
func (g *Grid) Snapshot() Snapshot {
	var s Snapshot
	g.CopyInto(&s)
	return s
}

// CopyInto overwrites dst with the current cell states, reusing its buffer
// when the size matches.
func (g *Grid) CopyInto(dst *Snapshot) {
	if len(dst.cells) != len(g.cells) {
		dst.cells = make([]Cell, len(g.cells))
	}
	dst.rows, dst.cols = g.rows, g.cols
	copy(dst.cells, g.cells)
}

// Snapshot is a frozen copy of a grid's cells taken at a round boundary.
type Snapshot struct {
	rows, cols int
	cells      []Cell
}

// Rows returns the number of rows.
func (s *Snapshot) Rows() int { return s.rows }

// Cols returns the number of columns.
func (s *Snapshot) Cols() int { return s.cols }

// Alive reports whether (row, col) was alive when the snapshot was taken.
// The coordinates must already be in range.
func (s *Snapshot) Alive(row, col int) bool {
	if row < 0 || row >= s.rows || col < 0 || col >= s.cols {
		panic(fmt.Sprintf("core: snapshot cell (%d,%d) outside %dx%d", row, col, s.rows, s.cols))
	}
	return s.cells[row*s.cols+col] == Alive
}
