package life

import "gol-torus/internal/core"

// Stepper advances a grid by one generation. It keeps the previous
// generation in a reusable snapshot so every cell of a round is decided from
// the same data.
type Stepper struct {
	snap core.Snapshot
}

// Step replaces the contents of g with its next generation.
func (s *Stepper) Step(g *core.Grid) {
	g.CopyInto(&s.snap)
	rows, cols := g.Rows(), g.Cols()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			n := CountLiveNeighbors(&s.snap, r, c)
			g.Set(r, c, Next(s.snap.Alive(r, c), n))
		}
	}
}

// Next applies the B3/S23 rule to a single cell.
func Next(alive bool, neighbors int) core.Cell {
	if neighbors == 3 || (alive && neighbors == 2) {
		return core.Alive
	}
	return core.Dead
}
