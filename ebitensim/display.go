package ebitensim

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/lcdgui"
)

// Display is an in-memory panel presented in an ebiten window. Layer swaps
// requested by the GUI take effect on the next ebiten Draw, which plays the
// role of the vsync interrupt: the layer is uploaded and the swap confirmed.
type Display struct {
	*lcdgui.MemDriver

	gui     *lcdgui.GUI
	img     *ebiten.Image
	shown   int
	pending int
	stale   bool
}

// NewDisplay creates a display sized by cfg.
func NewDisplay(cfg lcdgui.DisplayConfig) *Display {
	d := &Display{
		MemDriver: lcdgui.NewMemDriverFromConfig(cfg),
		pending:   -1,
		stale:     true,
	}
	d.OnActiveLayer = func(layer int) {
		d.pending = layer
	}
	return d
}

// Attach sets the GUI that receives swap confirmations.
func (d *Display) Attach(g *lcdgui.GUI) {
	d.gui = g
}

// Shown returns the layer currently presented.
func (d *Display) Shown() int {
	return d.shown
}

// Present shows the pending layer, if any, confirms the swap, and draws the
// presented layer onto screen scaled by scale.
func (d *Display) Present(screen *ebiten.Image, scale int) {
	if d.pending >= 0 {
		d.shown = d.pending
		d.pending = -1
		d.stale = true
		if d.gui != nil {
			d.gui.ConfirmLayerSwap(d.shown)
		}
	}
	if d.img == nil {
		d.img = ebiten.NewImage(d.Width, d.Height)
	}
	if d.stale {
		d.img.WritePixels(d.Layer(d.shown).Pix)
		d.stale = false
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(d.img, op)
}
