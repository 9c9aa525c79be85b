package lcdgui

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-frame redraw metrics.
// Only populated when GUI.debug is true.
type debugStats struct {
	redrawTime time.Duration
	redrawn    int
	drawCalls  int
	clip       ClipRegion
	frames     int
}

// debugLog prints the stats of the pass that just ran to stderr.
func (g *GUI) debugLog() {
	if !g.debug {
		return
	}
	g.stats.frames++
	c := g.stats.clip
	_, _ = fmt.Fprintf(os.Stderr,
		"[lcdgui] frame %d: redrawn: %d | draw calls: %d | clip: (%d,%d)-(%d,%d) | time: %v | layer: %d -> %d\n",
		g.stats.frames, g.stats.redrawn, g.stats.drawCalls, c.X1, c.Y1, c.X2, c.Y2,
		g.stats.redrawTime, g.lcd.ActiveLayer, g.lcd.DrawingLayer)
}

// debugf prints a diagnostic line when debug mode is on.
func (g *GUI) debugf(format string, args ...any) {
	if g == nil || !g.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[lcdgui] "+format+"\n", args...)
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
const debugMaxTreeDepth = 16

func debugCheckTreeDepth(w *Widget) {
	depth := 0
	for p := w; p != nil; p = p.parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[lcdgui] warning: tree depth %d exceeds %d (widget id %d)\n",
			depth, debugMaxTreeDepth, w.ID)
	}
}

// debugCheckChildCount warns on stderr if a widget has more than 64 children.
const debugMaxChildCount = 64

func debugCheckChildCount(w *Widget) {
	if len(w.children) > debugMaxChildCount {
		_, _ = fmt.Fprintf(os.Stderr, "[lcdgui] warning: widget id %d has %d children (threshold %d)\n",
			w.ID, len(w.children), debugMaxChildCount)
	}
}
