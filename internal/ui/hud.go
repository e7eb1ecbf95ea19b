//go:build ebiten

package ui

import (
	"image/color"

	"gol-torus/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 10
	lineHeight   = 16
)

var (
	panelColor = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	textColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
)

// HUD renders the run statistics in a panel to the right of the grid.
type HUD struct {
	width      int
	panel      *ebiten.Image
	lastHeight int
	lines      []string
}

// NewHUD constructs a HUD with the given panel width. A width of zero or less
// hides the panel.
func NewHUD(width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{width: width, lines: []string{"Waiting for first round"}}
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int { return h.width }

// MinHeight returns the height needed to show the standard run panel.
func (h *HUD) MinHeight() int {
	if h.width <= 0 {
		return 0
	}
	return 2*panelPadding + 8*lineHeight
}

// Update replaces the displayed values.
func (h *HUD) Update(snap core.ParameterSnapshot) {
	h.lines = Lines(snap)
}

// Draw paints the panel at horizontal offset offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(panelColor)
	face := basicfont.Face7x13
	for i, line := range h.lines {
		y := panelPadding + (i+1)*lineHeight
		if y > height {
			break
		}
		text.Draw(h.panel, line, face, panelPadding, y, textColor)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}
