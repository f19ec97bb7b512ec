//go:build ebiten

package ui

import (
	"image/color"

	"lifeterm/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const glyphWidth = 7

// HUD renders the status strip below the simulation view.
type HUD struct {
	sim     *life.Life
	caption string
	paused  bool
	panel   *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation.
func NewHUD(sim *life.Life) *HUD {
	return &HUD{sim: sim}
}

// Update refreshes the cached caption.
func (h *HUD) Update(paused, done bool) {
	h.paused = paused
	h.caption = Caption(h.sim.Generation(), h.sim.Population(), paused, done)
}

// Draw paints the strip anchored under the grid.
func (h *HUD) Draw(screen *ebiten.Image) {
	bounds := screen.Bounds()
	width := bounds.Dx()
	top := bounds.Dy() - PanelHeight
	if width <= 0 || top < 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != width {
		h.panel = ebiten.NewImage(width, PanelHeight)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	line := h.caption
	if h.paused {
		line = Help
	}
	text.Draw(h.panel, clampWidth(line, (width-8)/glyphWidth), basicfont.Face7x13, 4, 14, color.RGBA{R: 90, G: 140, B: 255, A: 255})

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(top))
	screen.DrawImage(h.panel, op)
}
