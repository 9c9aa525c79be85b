package lcdgui

// InjectPress queues a synthetic touch press at the given screen
// coordinates. The sample is consumed on the next Process call.
func (g *GUI) InjectPress(x, y int) {
	g.injectQueue = append(g.injectQueue, TouchData{X: x, Y: y, Pressed: true})
}

// InjectMove queues a synthetic move with the touch held down. Use this
// between InjectPress and InjectRelease to simulate a drag.
func (g *GUI) InjectMove(x, y int) {
	g.injectQueue = append(g.injectQueue, TouchData{X: x, Y: y, Pressed: true})
}

// InjectRelease queues a synthetic release at the given screen coordinates.
func (g *GUI) InjectRelease(x, y int) {
	g.injectQueue = append(g.injectQueue, TouchData{X: x, Y: y})
}

// InjectClick is a convenience that queues a press followed by a release
// at the same coordinates. Consumes two Process calls.
func (g *GUI) InjectClick(x, y int) {
	g.InjectPress(x, y)
	g.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate calls, and release at
// (toX, toY). Minimum frames is 2 (press + release).
func (g *GUI) InjectDrag(fromX, fromY, toX, toY, frames int) {
	if frames < 2 {
		frames = 2
	}
	g.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		x := fromX + (toX-fromX)*i/(steps+1)
		y := fromY + (toY-fromY)*i/(steps+1)
		g.InjectMove(x, y)
	}
	g.InjectRelease(toX, toY)
}

// processInjectedInput pops one sample from the inject queue and feeds it
// through the touch state machine. Returns true if a sample was consumed, in
// which case the real touch source is not polled this call.
func (g *GUI) processInjectedInput() bool {
	if len(g.injectQueue) == 0 {
		return false
	}
	t := g.injectQueue[0]
	copy(g.injectQueue, g.injectQueue[1:])
	g.injectQueue = g.injectQueue[:len(g.injectQueue)-1]
	g.processSample(t)
	return true
}
