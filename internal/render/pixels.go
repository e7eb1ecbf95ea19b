package render

import (
	"image/color"

	"gol-torus/internal/core"
)

var (
	// AliveColor is the color of a live cell in the color buffer.
	AliveColor = color.RGBA{R: 179, G: 102, B: 255, A: 255}
	// DeadColor is the color of a dead cell in the color buffer.
	DeadColor = color.RGBA{A: 255}
)

// ColorBuffer holds one RGBA pixel per cell. Rows are stored bottom-up:
// grid row i lands in buffer row Rows-1-i, matching viewers whose y axis
// points up.
type ColorBuffer struct {
	Rows, Cols int
	Pix        []byte
}

// NewColorBuffer allocates a buffer for a grid of the given size.
func NewColorBuffer(size core.Size) *ColorBuffer {
	return &ColorBuffer{Rows: size.Rows, Cols: size.Cols, Pix: make([]byte, 4*size.Cells())}
}

// Fill paints every cell of g into the buffer using AliveColor and DeadColor.
// g must have the buffer's dimensions.
func (b *ColorBuffer) Fill(g *core.Grid) {
	if g.Rows() != b.Rows || g.Cols() != b.Cols {
		panic("render: color buffer does not match grid size")
	}
	cells := g.Cells()
	for r := 0; r < b.Rows; r++ {
		src := cells[r*b.Cols : (r+1)*b.Cols]
		dst := b.Pix[(b.Rows-1-r)*b.Cols*4 : (b.Rows-r)*b.Cols*4]
		fillBinaryRGBA(dst, src, AliveColor, DeadColor)
	}
}

// At returns the color stored at buffer coordinates (row, col).
func (b *ColorBuffer) At(row, col int) color.RGBA {
	base := (row*b.Cols + col) * 4
	return color.RGBA{R: b.Pix[base], G: b.Pix[base+1], B: b.Pix[base+2], A: b.Pix[base+3]}
}

// fillBinaryRGBA converts one row of cells into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []core.Cell, on, off color.RGBA) {
	for i, c := range cells {
		col := off
		if c == core.Alive {
			col = on
		}
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
