package lcdgui

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to two integer properties of a Widget together.
// Create one via TweenPosition or TweenSize and call Update(dt) from the
// main loop before Process. The group writes rounded values through the
// widget's setters, so the old and new areas are invalidated. If the target
// widget is removed, the group stops immediately.
//
// There is no global animation manager: callers own and update their groups.
type TweenGroup struct {
	tweens [2]*gween.Tween
	apply  func(a, b int)
	target *Widget
	Done   bool
}

// Update advances the tweens by dt seconds and applies the values.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target == nil || g.target.IsDisposed() {
		g.Done = true
		return
	}

	a, doneA := g.tweens[0].Update(dt)
	b, doneB := g.tweens[1].Update(dt)
	g.Done = doneA && doneB
	g.apply(round(a), round(b))
}

// TweenPosition creates a TweenGroup that moves the widget to (toX, toY),
// relative to its parent, over duration seconds.
func TweenPosition(w *Widget, toX, toY int, duration float32, fn ease.TweenFunc) *TweenGroup {
	return &TweenGroup{
		tweens: [2]*gween.Tween{
			gween.New(float32(w.X), float32(toX), duration, fn),
			gween.New(float32(w.Y), float32(toY), duration, fn),
		},
		apply:  w.SetPosition,
		target: w,
	}
}

// TweenSize creates a TweenGroup that resizes the widget to
// width x height over duration seconds.
func TweenSize(w *Widget, width, height int, duration float32, fn ease.TweenFunc) *TweenGroup {
	return &TweenGroup{
		tweens: [2]*gween.Tween{
			gween.New(float32(w.Width), float32(width), duration, fn),
			gween.New(float32(w.Height), float32(height), duration, fn),
		},
		apply:  w.SetSize,
		target: w,
	}
}

func round(v float32) int {
	return int(math.Round(float64(v)))
}
