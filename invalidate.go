package lcdgui

// clipEmpty is the inverted bound an empty clip region starts from.
const clipEmpty = 0xFFFF

// ClipRegion is the rectangle, in absolute screen coordinates with inclusive
// bounds, outside which drawing is suppressed during one redraw pass. It is
// grown by invalidation and reset to empty after every frame.
type ClipRegion struct {
	X1, Y1, X2, Y2 int
}

// emptyClip returns the inverted region that any grow replaces.
func emptyClip() ClipRegion {
	return ClipRegion{X1: clipEmpty, Y1: clipEmpty, X2: 0, Y2: 0}
}

// Empty reports whether no area has been added since the last reset.
func (c ClipRegion) Empty() bool {
	return c.X1 > c.X2 || c.Y1 > c.Y2
}

// Rect returns the region as a Rect.
func (c ClipRegion) Rect() Rect {
	return Rect{X: c.X1, Y: c.Y1, Width: c.X2 - c.X1, Height: c.Y2 - c.Y1}
}

// Intersects reports whether r overlaps the region.
func (c ClipRegion) Intersects(r Rect) bool {
	if c.Empty() {
		return false
	}
	return c.Rect().Intersects(r)
}

func (c *ClipRegion) grow(r Rect) {
	c.X1 = min(c.X1, r.X)
	c.Y1 = min(c.Y1, r.Y)
	c.X2 = max(c.X2, r.X+r.Width)
	c.Y2 = max(c.Y2, r.Y+r.Height)
}

// Invalidate schedules the widget for redraw and adds its area to the clip
// region. Invalidating a container also marks every descendant, since a
// container repaint clears its whole subtree.
func (w *Widget) Invalidate() {
	if !w.valid("Invalidate") {
		return
	}
	w.gui.clip.grow(w.AbsRect())
	w.markRedraw()
}

// InvalidateWithParent is Invalidate plus a redraw of the parent, for changes
// that alter which parent pixels show through (shape or position changes).
// Only the widget's own area is added to the clip region, so the parent
// repaints just around it.
func (w *Widget) InvalidateWithParent() {
	if !w.valid("InvalidateWithParent") {
		return
	}
	w.Invalidate()
	if w.parent != nil {
		w.parent.markRedraw()
	}
}

// markRedraw sets FlagRedraw on w and, for containers, on all descendants.
// The clip region is left alone.
func (w *Widget) markRedraw() {
	w.Flags |= FlagRedraw
	for _, c := range w.children {
		c.markRedraw()
	}
}

// CountPending returns how many widgets the next pass would redraw, without
// touching any flag. A dirty widget counts as one without descending: its
// subtree is handled by the draw pass.
func CountPending(root *Widget) int {
	if root == nil || root.disposed {
		return 0
	}
	if root.Flags&FlagRedraw != 0 {
		return 1
	}
	n := 0
	for _, c := range root.children {
		if c.IsContainer() {
			n += CountPending(c)
		} else if c.Flags&FlagRedraw != 0 {
			n++
		}
	}
	return n
}
