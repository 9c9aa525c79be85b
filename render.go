package lcdgui

// redrawWidgets walks parent's subtree in z-order and draws every dirty
// widget that intersects the clip region. It returns the number of leaf
// widgets redrawn.
//
// A dirty container clears its flag, marks its direct children dirty (which
// cascades down the recursion) and draws itself before any child. Clean
// containers are still descended, since a child may be dirty on its own.
func (g *GUI) redrawWidgets(s *Surface, parent *Widget) int {
	if parent.Flags&FlagRedraw != 0 {
		parent.Flags &^= FlagRedraw
		for _, c := range parent.children {
			c.Flags |= FlagRedraw
		}
		g.drawWidget(s, parent)
	}

	n := 0
	for c := range parent.Children(Forward) {
		if c.IsContainer() {
			n += g.redrawWidgets(s, c)
			continue
		}
		if c.Flags&FlagRedraw != 0 {
			c.Flags &^= FlagRedraw
			g.drawWidget(s, c)
			n++
		}
	}
	return n
}

// drawWidget calls the kind's draw callback when the widget is inside the
// clip region.
func (g *GUI) drawWidget(s *Surface, w *Widget) {
	if w.Kind == nil || w.Kind.Draw == nil {
		return
	}
	if !s.clip.Intersects(w.AbsRect()) {
		return
	}
	w.Kind.Draw(s, w)
	g.stats.drawCalls++
}

// carryPending grows the fresh clip region by every widget still marked
// after a pass. Those were invalidated from a draw callback after the walk
// had passed them, and are drawn by the next pass.
func (g *GUI) carryPending(w *Widget) {
	if w.Flags&FlagRedraw != 0 {
		g.clip.grow(w.AbsRect())
	}
	for _, c := range w.children {
		g.carryPending(c)
	}
}

// render runs one full pass: copy the visible layer into the back buffer,
// redraw, reset the clip region and hand the back buffer to the driver.
func (g *GUI) render() int {
	lcd := &g.lcd
	active, drawing := lcd.ActiveLayer, lcd.DrawingLayer

	g.driver.Copy(drawing, active)

	t0 := g.now()
	s := newSurface(g.driver, lcd, &g.clip)
	g.stats.drawCalls = 0
	n := g.redrawWidgets(s, g.root)
	if g.debug {
		g.stats.redrawTime = g.now().Sub(t0)
		g.stats.redrawn = n
		g.stats.clip = g.clip
		g.debugLog()
	}

	g.clip = emptyClip()
	g.carryPending(g.root)

	// Swap indices before the request so a driver that confirms from inside
	// SetActiveLayer sees the new active layer.
	lcd.Layers[drawing].Pending = true
	lcd.waitConfirm = true
	lcd.ActiveLayer = drawing
	lcd.DrawingLayer = active
	g.driver.SetActiveLayer(drawing)

	return n
}
