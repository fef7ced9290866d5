//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the generation counter and live population in the corner of
// the simulation view.
type HUD struct {
	stats StatsProvider
}

// NewHUD constructs a HUD for the provided stats source.
func NewHUD(stats StatsProvider) *HUD {
	return &HUD{stats: stats}
}

// Draw paints the readout on top of the grid.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h.stats == nil {
		return
	}
	msg := fmt.Sprintf("generation %d  population %d", h.stats.Clock(), h.stats.Population())
	text.Draw(screen, msg, basicfont.Face7x13, 8, 16, color.RGBA{R: 40, G: 40, B: 40, A: 255})
}
