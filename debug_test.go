package lcdgui

import "testing"

func TestDebugStats(t *testing.T) {
	g, _ := newTestGUI(t)
	g.SetDebugMode(true)
	g.NewLED(1, 0, 0, 10, 10)
	g.NewLED(2, 20, 0, 10, 10)

	flush(t, g)
	if g.stats.frames != 1 {
		t.Errorf("frames = %d, want 1", g.stats.frames)
	}
	// Root plus two LEDs.
	if g.stats.drawCalls != 3 {
		t.Errorf("draw calls = %d, want 3", g.stats.drawCalls)
	}
	if g.stats.clip != (ClipRegion{0, 0, 100, 80}) {
		t.Errorf("clip = %+v, want full display", g.stats.clip)
	}
}

func TestDebugfNilSafe(t *testing.T) {
	var g *GUI
	g.debugf("no panic %d", 1)

	removed := &Widget{disposed: true}
	if removed.valid("test") {
		t.Error("disposed widget should be invalid")
	}
}
