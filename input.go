package lcdgui

// TouchSource is the non-blocking input collaborator. ReadTouch returns the
// next queued sample, or false when there is none.
type TouchSource interface {
	ReadTouch() (TouchData, bool)
}

// TouchQueue is a slice-backed TouchSource. Drivers that sample touch from an
// interrupt can Push into it and let the frame loop drain it.
type TouchQueue struct {
	samples []TouchData
}

// Push appends a sample.
func (q *TouchQueue) Push(t TouchData) {
	q.samples = append(q.samples, t)
}

// Len returns the number of queued samples.
func (q *TouchQueue) Len() int {
	return len(q.samples)
}

// ReadTouch pops the oldest sample.
func (q *TouchQueue) ReadTouch() (TouchData, bool) {
	if len(q.samples) == 0 {
		return TouchData{}, false
	}
	t := q.samples[0]
	copy(q.samples, q.samples[1:])
	q.samples = q.samples[:len(q.samples)-1]
	return t, true
}

// --- Dispatch ---

// processSample runs the touch state machine for one sample.
func (g *GUI) processSample(t TouchData) {
	last := g.touchLast

	if a := g.active; a != nil && t.Pressed && last.Pressed {
		// Captured drag: no hit test.
		if a.Kind != nil && a.Kind.TouchMove != nil {
			a.Kind.TouchMove(a, t)
		}
	} else {
		g.processTouch(g.root, t, last)
	}

	// Released: nothing can stay captured, whatever edges were missed.
	if !t.Pressed && g.active != nil {
		g.releaseActive()
	}
	g.touchLast = t
}

// processTouch hit-tests parent's children topmost first, giving a
// container's children priority over the container itself.
func (g *GUI) processTouch(parent *Widget, t, last TouchData) TouchStatus {
	if parent == nil || parent.disposed {
		return TouchContinue
	}
	for w := range parent.Children(Reverse) {
		if w.IsContainer() {
			if st := g.processTouch(w, t, last); st != TouchContinue {
				return st
			}
			if w.disposed {
				continue
			}
		}

		if !w.AbsRect().Contains(t.X, t.Y) {
			continue
		}

		switch {
		case t.Pressed && !last.Pressed:
			if w.Kind == nil || w.Kind.TouchDown == nil {
				continue
			}
			st := w.Kind.TouchDown(w, t)
			switch st {
			case TouchContinue:
				continue
			case TouchHandled:
				g.takeTouch(w)
			default:
				g.dropFocus()
			}
			return st

		case !t.Pressed && last.Pressed:
			if w.Kind != nil && w.Kind.TouchUp != nil {
				w.Kind.TouchUp(w, t)
			}
			if w == g.active {
				g.releaseActive()
			}
		}
	}
	return TouchContinue
}

// takeTouch makes w the active widget. The focused widget loses focus and the
// previously active widget becomes focused.
func (g *GUI) takeTouch(w *Widget) {
	if f := g.focused; f != nil {
		f.Flags &^= FlagFocus
		f.Invalidate()
	}
	g.focused = g.active
	if f := g.focused; f != nil {
		f.Flags &^= FlagActive
		f.Flags |= FlagFocus
		f.Invalidate()
	}
	g.active = nil

	if w.disposed {
		// The handler removed its own widget.
		return
	}
	g.active = w
	w.MoveToEnd()
	w.Flags |= FlagActive
	w.Invalidate()
}

// dropFocus clears both the focused and the active widget.
func (g *GUI) dropFocus() {
	if f := g.focused; f != nil {
		f.Flags &^= FlagFocus
		f.Invalidate()
	}
	g.focused = nil
	if a := g.active; a != nil {
		a.Flags &^= FlagActive
		a.Invalidate()
	}
	g.active = nil
}

func (g *GUI) releaseActive() {
	a := g.active
	a.Flags &^= FlagActive
	a.Invalidate()
	g.active = nil
}
