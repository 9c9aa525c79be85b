package ebitensim

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// overlay draws FPS, TPS and the last redraw count in the top-left corner.
// The text is refreshed every half second.
type overlay struct {
	img     *ebiten.Image
	elapsed float64
	redrawn int
}

func newOverlay() *overlay {
	return &overlay{elapsed: 1}
}

// update accumulates dt and redraws the text when due. redrawn is the
// result of the last GUI.Process.
func (o *overlay) update(dt float64, redrawn int) {
	if redrawn > 0 {
		o.redrawn = redrawn
	}
	o.elapsed += dt
	if o.elapsed < 0.5 {
		return
	}
	o.elapsed = 0

	if o.img == nil {
		// 120x48 fits three DebugPrint lines.
		o.img = ebiten.NewImage(120, 48)
	}
	o.img.Clear()
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nredrawn: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(), o.redrawn))
}

func (o *overlay) draw(screen *ebiten.Image) {
	if o.img != nil {
		screen.DrawImage(o.img, nil)
	}
}
