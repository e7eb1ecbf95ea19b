package life

import "gol-torus/internal/core"

// CountLive scans the whole grid and returns the number of live cells.
func CountLive(g *core.Grid) int {
	n := 0
	for _, c := range g.Cells() {
		if c == core.Alive {
			n++
		}
	}
	return n
}
