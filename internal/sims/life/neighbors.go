package life

import "gol-torus/internal/core"

// wrap maps a coordinate that is at most one step outside [0, dim) back onto
// the torus. Larger offsets are not supported.
func wrap(coord, dim int) int {
	if coord < 0 {
		return coord + dim
	}
	if coord >= dim {
		return coord - dim
	}
	return coord
}

// CountLiveNeighbors returns how many of the eight cells surrounding
// (row, col) were alive in snap, wrapping at every edge. Each offset is
// counted once, even on grids small enough for wrapped offsets to coincide.
func CountLiveNeighbors(snap *core.Snapshot, row, col int) int {
	rows, cols := snap.Rows(), snap.Cols()
	n := 0
	for dr := -1; dr <= 1; dr++ {
		r := wrap(row+dr, rows)
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if snap.Alive(r, wrap(col+dc, cols)) {
				n++
			}
		}
	}
	return n
}
