package ebitensim

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/lcdgui"
)

// Touch turns the left mouse button, or the first finger on a touch screen,
// into touch samples in panel coordinates. Like a resistive panel it reports
// nothing while released, so hovering produces no samples.
type Touch struct {
	scale    int
	last     lcdgui.TouchData
	touchIDs []ebiten.TouchID
	queue    lcdgui.TouchQueue
}

// NewTouch creates a touch source for a window scaled by scale.
func NewTouch(scale int) *Touch {
	return &Touch{scale: max(scale, 1)}
}

// Poll samples the pointer once. Call it every Update before GUI.Process.
func (t *Touch) Poll() {
	x, y := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	t.touchIDs = ebiten.AppendTouchIDs(t.touchIDs[:0])
	if len(t.touchIDs) > 0 {
		x, y = ebiten.TouchPosition(t.touchIDs[0])
		pressed = true
	}

	t.sample(x, y, pressed)
}

// sample converts a window position to panel coordinates and queues it when
// the press state changes or a held press moves.
func (t *Touch) sample(x, y int, pressed bool) {
	s := lcdgui.TouchData{X: x / t.scale, Y: y / t.scale, Pressed: pressed}
	switch {
	case s.Pressed != t.last.Pressed:
	case s.Pressed && (s.X != t.last.X || s.Y != t.last.Y):
	default:
		return
	}
	t.queue.Push(s)
	t.last = s
}

// ReadTouch implements lcdgui.TouchSource.
func (t *Touch) ReadTouch() (lcdgui.TouchData, bool) {
	return t.queue.ReadTouch()
}
