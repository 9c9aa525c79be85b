package lcdgui

import (
	"errors"
	"iter"
)

var (
	// ErrNoActiveWindow is returned by Create when there is no window to
	// attach the new widget to (Init has not run, or the window was removed).
	ErrNoActiveWindow = errors.New("lcdgui: no active window")

	// ErrNilKind is returned by Create when called without a widget kind.
	ErrNilKind = errors.New("lcdgui: nil widget kind")
)

// Kind describes one widget type. A Kind is defined once as a package-level
// value and shared by every widget of that type; it must not be mutated after
// the first widget is created from it.
//
// All callbacks are optional. A nil TouchDown behaves like one that returns
// TouchContinue.
type Kind struct {
	Name string

	// AllowChildren marks the kind as a container.
	AllowChildren bool

	// NewState returns the zero-initialized per-instance state block.
	NewState func() any

	Draw      func(s *Surface, w *Widget)
	TouchDown func(w *Widget, t TouchData) TouchStatus
	TouchUp   func(w *Widget, t TouchData)
	TouchMove func(w *Widget, t TouchData)
}

// Widget is one node of the on-screen tree. X and Y are relative to the
// parent; the absolute position is recomputed on demand from the ancestor
// chain and never cached.
type Widget struct {
	ID            uint32
	Kind          *Kind
	X, Y          int
	Width, Height int
	Flags         Flags

	// State is the per-kind state block created by Kind.NewState.
	State any

	// UserData is free for the application.
	UserData any

	gui      *GUI
	parent   *Widget
	children []*Widget
	disposed bool
}

// Create allocates a widget of the given kind inside the active window and
// schedules it for drawing. Ownership passes to the tree: the widget lives
// until Remove is called on it or on one of its ancestors.
func (g *GUI) Create(kind *Kind, id uint32, x, y, width, height int) (*Widget, error) {
	if kind == nil {
		g.debugf("create: %v", ErrNilKind)
		return nil, ErrNilKind
	}
	win := g.windowActive
	if win == nil || win.disposed {
		g.debugf("create %s (id %d): %v", kind.Name, id, ErrNoActiveWindow)
		return nil, ErrNoActiveWindow
	}
	w := &Widget{
		ID:     id,
		Kind:   kind,
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
		gui:    g,
	}
	if kind.NewState != nil {
		w.State = kind.NewState()
	}
	win.addChild(w)
	w.Invalidate()
	return w, nil
}

// CreateWindow creates a nested window container inside the active window.
// Use SetActiveWindow to create widgets inside it.
func (g *GUI) CreateWindow(id uint32, x, y, width, height int) (*Widget, error) {
	return g.Create(WindowKind, id, x, y, width, height)
}

// --- Accessors ---

// GUI returns the context that owns w.
func (w *Widget) GUI() *GUI {
	return w.gui
}

// Parent returns the parent widget, or nil for the root.
func (w *Widget) Parent() *Widget {
	return w.parent
}

// IsContainer reports whether the widget's kind allows children.
func (w *Widget) IsContainer() bool {
	return w.Kind != nil && w.Kind.AllowChildren
}

// Has reports whether all bits of f are set on the widget.
func (w *Widget) Has(f Flags) bool {
	return w.Flags&f == f
}

// IsDisposed returns true if the widget has been removed.
func (w *Widget) IsDisposed() bool {
	return w.disposed
}

// AbsX returns the widget's absolute X position on screen.
func (w *Widget) AbsX() int {
	x := 0
	for p := w; p != nil; p = p.parent {
		x += p.X
	}
	return x
}

// AbsY returns the widget's absolute Y position on screen.
func (w *Widget) AbsY() int {
	y := 0
	for p := w; p != nil; p = p.parent {
		y += p.Y
	}
	return y
}

// AbsRect returns the widget's bounding rectangle in screen coordinates.
func (w *Widget) AbsRect() Rect {
	return Rect{X: w.AbsX(), Y: w.AbsY(), Width: w.Width, Height: w.Height}
}

// SetPosition moves the widget relative to its parent. Both the old and the
// new area are repainted.
func (w *Widget) SetPosition(x, y int) {
	if !w.valid("SetPosition") || (w.X == x && w.Y == y) {
		return
	}
	w.gui.clip.grow(w.AbsRect())
	w.X, w.Y = x, y
	w.InvalidateWithParent()
}

// SetSize resizes the widget. Both the old and the new area are repainted.
func (w *Widget) SetSize(width, height int) {
	if !w.valid("SetSize") || (w.Width == width && w.Height == height) {
		return
	}
	w.gui.clip.grow(w.AbsRect())
	w.Width, w.Height = width, height
	w.InvalidateWithParent()
}

// --- Tree manipulation ---

// NumChildren returns the number of children.
func (w *Widget) NumChildren() int {
	return len(w.children)
}

// ChildAt returns the child at the given index.
// Panics if index is out of range.
func (w *Widget) ChildAt(index int) *Widget {
	return w.children[index]
}

// Children returns a lazy sequence over the direct children in z-order
// (Forward) or reverse z-order (Reverse). The sequence is restartable.
//
// Each step looks the next child up again from the live child list, so the
// yielded widget may be removed by the caller without derailing the walk, and
// a Reverse walk also survives the yielded widget being moved to the end.
// Other structural changes during the walk may skip or repeat siblings.
func (w *Widget) Children(order Order) iter.Seq[*Widget] {
	return func(yield func(*Widget) bool) {
		if order == Reverse {
			for i := len(w.children) - 1; i >= 0; {
				c := w.children[i]
				if !yield(c) || w.disposed {
					return
				}
				if k := w.indexOf(c); k >= 0 && k <= i {
					i = k - 1
				} else {
					i--
				}
				if i >= len(w.children) {
					i = len(w.children) - 1
				}
			}
			return
		}
		for i := 0; i < len(w.children); {
			c := w.children[i]
			if !yield(c) || w.disposed {
				return
			}
			if k := w.indexOf(c); k >= 0 && k <= i {
				i = k + 1
			}
		}
	}
}

// MoveToEnd moves the widget to the end of its parent's children, so it is
// drawn on top of its siblings and hit-tested before them.
func (w *Widget) MoveToEnd() {
	if !w.valid("MoveToEnd") || w.parent == nil {
		return
	}
	p := w.parent
	i := p.indexOf(w)
	last := len(p.children) - 1
	if i < 0 || i == last {
		return
	}
	copy(p.children[i:], p.children[i+1:])
	p.children[last] = w
}

// Remove detaches the widget from its parent, removes its children first if
// it is a container, and releases its state. Focused and active pointers into
// the removed subtree are cleared. The area the widget covered is repainted
// by the parent. No-op on a nil or already removed widget, and on the root
// window, which lives until the next Init.
func (w *Widget) Remove() {
	if !w.valid("Remove") {
		return
	}
	g := w.gui
	if w == g.root {
		g.debugf("Remove on root window ignored")
		return
	}
	parent := w.parent
	if parent != nil {
		area := w.AbsRect()
		parent.removeChildByPtr(w)
		w.parent = nil
		g.clip.grow(area)
		parent.markRedraw()
	}
	w.dispose()
	if g.windowActive != nil && g.windowActive.disposed {
		g.windowActive = parent
	}
}

func (w *Widget) dispose() {
	for len(w.children) > 0 {
		c := w.children[len(w.children)-1]
		w.children = w.children[:len(w.children)-1]
		c.parent = nil
		c.dispose()
	}
	if g := w.gui; g != nil {
		if g.focused == w {
			g.focused = nil
		}
		if g.active == w {
			g.active = nil
		}
	}
	w.disposed = true
	w.children = nil
	w.State = nil
	w.UserData = nil
	w.Flags = 0
}

// addChild appends child to w's children.
// Panics if w is not a container or child is an ancestor of w (cycle).
func (w *Widget) addChild(child *Widget) {
	if !w.IsContainer() {
		panic("lcdgui: parent widget does not allow children")
	}
	if isAncestor(child, w) {
		panic("lcdgui: adding child would create a cycle")
	}
	if child.parent != nil {
		child.parent.removeChildByPtr(child)
	}
	child.parent = w
	w.children = append(w.children, child)
	if w.gui != nil && w.gui.debug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(w)
	}
}

// valid reports whether w can be operated on, logging the rejected call in
// debug mode.
func (w *Widget) valid(op string) bool {
	if w == nil {
		return false
	}
	if w.disposed || w.gui == nil {
		if w.gui != nil {
			w.gui.debugf("%s on removed widget (id %d)", op, w.ID)
		}
		return false
	}
	return true
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Widget) bool {
	for p := node; p != nil; p = p.parent {
		if p == candidate {
			return true
		}
	}
	return false
}

func (w *Widget) indexOf(child *Widget) int {
	for i, c := range w.children {
		if c == child {
			return i
		}
	}
	return -1
}

// removeChildByPtr removes child from w.children without clearing child.parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (w *Widget) removeChildByPtr(child *Widget) {
	if i := w.indexOf(child); i >= 0 {
		copy(w.children[i:], w.children[i+1:])
		w.children[len(w.children)-1] = nil
		w.children = w.children[:len(w.children)-1]
	}
}
