package render

import (
	"io"
	"strconv"

	"gol-torus/internal/core"
)

const (
	aliveMarker = " @"
	deadMarker  = " ."

	// clearScreen homes the cursor and erases the terminal.
	clearScreen = "\x1b[H\x1b[2J"
)

// AppendText appends a text frame of g to dst: one line per row followed by
// the round number and live-cell count.
func AppendText(dst []byte, g *core.Grid, round, live int) []byte {
	cols := g.Cols()
	for i, c := range g.Cells() {
		if c == core.Alive {
			dst = append(dst, aliveMarker...)
		} else {
			dst = append(dst, deadMarker...)
		}
		if (i+1)%cols == 0 {
			dst = append(dst, '\n')
		}
	}
	dst = append(dst, "Round: "...)
	dst = strconv.AppendInt(dst, int64(round), 10)
	dst = append(dst, "\nLive cells: "...)
	dst = strconv.AppendInt(dst, int64(live), 10)
	return append(dst, "\n\n"...)
}

// TextAnimator writes full-screen text frames to a terminal.
type TextAnimator struct {
	w   io.Writer
	buf []byte
}

// NewTextAnimator returns an animator writing to w.
func NewTextAnimator(w io.Writer) *TextAnimator {
	return &TextAnimator{w: w}
}

// Frame clears the screen and draws g.
func (a *TextAnimator) Frame(g *core.Grid, round, live int) error {
	a.buf = append(a.buf[:0], clearScreen...)
	a.buf = AppendText(a.buf, g, round, live)
	_, err := a.w.Write(a.buf)
	return err
}
