package lcdgui

import (
	"slices"
	"testing"
)

func ids(seq func(func(*Widget) bool)) []uint32 {
	var out []uint32
	for w := range seq {
		out = append(out, w.ID)
	}
	return out
}

func childIDs(w *Widget) []uint32 {
	return ids(w.Children(Forward))
}

func TestCreateAppendsInZOrder(t *testing.T) {
	g, _ := newTestGUI(t)
	for id := uint32(1); id <= 3; id++ {
		if _, err := g.NewLED(id, 0, 0, 5, 5); err != nil {
			t.Fatal(err)
		}
	}
	if got := childIDs(g.Root()); !slices.Equal(got, []uint32{1, 2, 3}) {
		t.Errorf("children = %v, want [1 2 3]", got)
	}
	if g.Root().ChildAt(2).ID != 3 {
		t.Error("ChildAt(2) should be the last created")
	}
}

func TestCreateRemoveRoundTrip(t *testing.T) {
	g, _ := newTestGUI(t)
	a, _ := newRecorder(t, g, recorderKind, 1, 0, 0, 50, 50, TouchHandled)
	g.processSample(TouchData{X: 5, Y: 5, Pressed: true})

	count, focused, active := g.Root().NumChildren(), g.Focused(), g.Active()
	w, err := g.NewLED(2, 0, 0, 5, 5)
	if err != nil {
		t.Fatal(err)
	}
	w.Remove()

	if g.Root().NumChildren() != count {
		t.Errorf("child count = %d, want %d", g.Root().NumChildren(), count)
	}
	if g.Focused() != focused || g.Active() != active || g.Active() != a {
		t.Error("focused/active pointers changed")
	}
}

func TestRemoveSubtree(t *testing.T) {
	g, _ := newTestGUI(t)
	win, _ := g.CreateWindow(1, 0, 0, 50, 50)
	g.SetActiveWindow(win)
	a, _ := newRecorder(t, g, recorderKind, 2, 0, 0, 10, 10, TouchHandled)
	b, _ := newRecorder(t, g, recorderKind, 3, 20, 20, 10, 10, TouchHandled)
	g.focused, g.active = a, b

	win.Remove()

	for _, w := range []*Widget{win, a, b} {
		if !w.IsDisposed() {
			t.Errorf("widget %d not disposed", w.ID)
		}
		if w.State != nil || w.Parent() != nil {
			t.Errorf("widget %d still holds state or parent", w.ID)
		}
	}
	if g.Root().NumChildren() != 0 {
		t.Errorf("root children = %d, want 0", g.Root().NumChildren())
	}
	if g.Focused() != nil || g.Active() != nil {
		t.Error("focused/active should be cleared")
	}

	// Removed widgets ignore further calls.
	win.Remove()
	a.SetPosition(5, 5)
	a.Invalidate()
	LEDOn(a)
	if a.X != 0 {
		t.Error("SetPosition on a removed widget should be a no-op")
	}
	var nilWidget *Widget
	nilWidget.Remove()
}

func TestRemoveRepaintsParent(t *testing.T) {
	g, _ := newTestGUI(t)
	led, _ := g.NewLED(1, 10, 10, 10, 10)
	other, _ := g.NewLED(2, 50, 50, 10, 10)
	flush(t, g)

	led.Remove()
	if !g.Root().Has(FlagRedraw) || !other.Has(FlagRedraw) {
		t.Error("parent subtree should be marked for redraw")
	}
	if c := g.Clip(); c != (ClipRegion{10, 10, 20, 20}) {
		t.Errorf("clip = %+v, want the removed area", c)
	}
}

func TestMoveToEnd(t *testing.T) {
	g, _ := newTestGUI(t)
	a, _ := g.NewLED(1, 0, 0, 5, 5)
	g.NewLED(2, 0, 0, 5, 5)
	c, _ := g.NewLED(3, 0, 0, 5, 5)

	a.MoveToEnd()
	if got := childIDs(g.Root()); !slices.Equal(got, []uint32{2, 3, 1}) {
		t.Errorf("after a.MoveToEnd = %v, want [2 3 1]", got)
	}
	a.MoveToEnd()
	if got := childIDs(g.Root()); !slices.Equal(got, []uint32{2, 3, 1}) {
		t.Errorf("MoveToEnd on last changed order: %v", got)
	}
	c.MoveToEnd()
	if got := childIDs(g.Root()); !slices.Equal(got, []uint32{2, 1, 3}) {
		t.Errorf("after c.MoveToEnd = %v, want [2 1 3]", got)
	}
	g.Root().MoveToEnd()
}

func TestChildrenOrder(t *testing.T) {
	g, _ := newTestGUI(t)
	for id := uint32(1); id <= 4; id++ {
		g.NewLED(id, 0, 0, 5, 5)
	}
	root := g.Root()

	tests := []struct {
		name  string
		order Order
		want  []uint32
	}{
		{"forward", Forward, []uint32{1, 2, 3, 4}},
		{"reverse", Reverse, []uint32{4, 3, 2, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq := root.Children(tt.order)
			if got := ids(seq); !slices.Equal(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
			// Restartable.
			if got := ids(seq); !slices.Equal(got, tt.want) {
				t.Errorf("second walk got %v, want %v", got, tt.want)
			}
		})
	}

	var first []uint32
	for w := range root.Children(Forward) {
		first = append(first, w.ID)
		if len(first) == 2 {
			break
		}
	}
	if !slices.Equal(first, []uint32{1, 2}) {
		t.Errorf("early break got %v", first)
	}
}

func TestChildrenRemoveYielded(t *testing.T) {
	for _, order := range []Order{Forward, Reverse} {
		g, _ := newTestGUI(t)
		for id := uint32(1); id <= 3; id++ {
			g.NewLED(id, 0, 0, 5, 5)
		}
		var seen []uint32
		for w := range g.Root().Children(order) {
			seen = append(seen, w.ID)
			w.Remove()
		}
		want := []uint32{1, 2, 3}
		if order == Reverse {
			want = []uint32{3, 2, 1}
		}
		if !slices.Equal(seen, want) {
			t.Errorf("order %d: visited %v, want %v", order, seen, want)
		}
		if g.Root().NumChildren() != 0 {
			t.Errorf("order %d: %d children left", order, g.Root().NumChildren())
		}
	}
}

func TestChildrenReverseMoveToEnd(t *testing.T) {
	g, _ := newTestGUI(t)
	g.NewLED(1, 0, 0, 5, 5)
	b, _ := g.NewLED(2, 0, 0, 5, 5)
	g.NewLED(3, 0, 0, 5, 5)

	var seen []uint32
	for w := range g.Root().Children(Reverse) {
		seen = append(seen, w.ID)
		if w == b {
			w.MoveToEnd()
		}
	}
	if !slices.Equal(seen, []uint32{3, 2, 1}) {
		t.Errorf("visited %v, want [3 2 1]", seen)
	}
}

func TestAbsolutePosition(t *testing.T) {
	g, _ := newTestGUI(t)
	outer, _ := g.CreateWindow(1, 10, 20, 80, 60)
	g.SetActiveWindow(outer)
	inner, _ := g.CreateWindow(2, 5, 6, 40, 30)
	g.SetActiveWindow(inner)
	led, _ := g.NewLED(3, 1, 2, 4, 4)

	if got := led.AbsRect(); got != (Rect{X: 16, Y: 28, Width: 4, Height: 4}) {
		t.Errorf("AbsRect = %+v", got)
	}

	outer.X = 0
	if led.AbsX() != 6 {
		t.Errorf("AbsX = %d after moving ancestor, want 6", led.AbsX())
	}
}

func TestSetPositionInvalidatesOldAndNew(t *testing.T) {
	g, _ := newTestGUI(t)
	led, _ := g.NewLED(1, 10, 10, 10, 10)
	flush(t, g)

	led.SetPosition(30, 30)
	if c := g.Clip(); c != (ClipRegion{10, 10, 40, 40}) {
		t.Errorf("clip = %+v, want old and new area", c)
	}
	if !g.Root().Has(FlagRedraw) || !led.Has(FlagRedraw) {
		t.Error("widget and parent should be marked")
	}

	flush(t, g)
	led.SetPosition(30, 30)
	if !g.Clip().Empty() {
		t.Error("unchanged position should not invalidate")
	}

	led.SetSize(20, 5)
	if c := g.Clip(); c != (ClipRegion{30, 30, 50, 40}) {
		t.Errorf("clip after SetSize = %+v", c)
	}
}

func TestAddChildPanics(t *testing.T) {
	g, _ := newTestGUI(t)
	led, _ := g.NewLED(1, 0, 0, 5, 5)
	win, _ := g.CreateWindow(2, 0, 0, 5, 5)

	tests := []struct {
		name   string
		parent *Widget
		child  *Widget
	}{
		{"leaf parent", led, &Widget{Kind: LEDKind}},
		{"cycle", win, g.Root()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tt.parent.addChild(tt.child)
		})
	}
}
