//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads bottom-up color buffers to an image and draws them
// upright on a top-down ebiten screen.
type GridPainter struct {
	rows, cols int
	img        *ebiten.Image
}

// NewGridPainter allocates a painter for a rows x cols buffer.
func NewGridPainter(rows, cols int) *GridPainter {
	return &GridPainter{rows: rows, cols: cols, img: ebiten.NewImage(cols, rows)}
}

// Upload replaces the painter image with pix, a ColorBuffer's pixels.
func (gp *GridPainter) Upload(pix []byte) {
	if len(pix) != 4*gp.rows*gp.cols {
		return
	}
	gp.img.WritePixels(pix)
}

// Draw paints the last uploaded buffer at the given scale, undoing the
// buffer's vertical flip.
func (gp *GridPainter) Draw(dst *ebiten.Image, scale int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), -float64(scale))
	op.GeoM.Translate(0, float64(gp.rows*scale))
	dst.DrawImage(gp.img, op)
}
