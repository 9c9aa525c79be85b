package lcdgui

import (
	"errors"
	"fmt"
	"image"
	"time"
)

// ErrNoLayers is returned by Init when the driver reports no framebuffer.
var ErrNoLayers = errors.New("lcdgui: display has no layers")

// GUI is the context that owns the widget tree, the touch and focus state,
// and the double-buffered layer handoff. Every entry point is a method on
// it; there is no package-level state, so independent GUIs can coexist.
//
// A GUI is not safe for concurrent use. Create, Remove, Process and
// ConfirmLayerSwap must all run in the same cooperative context.
type GUI struct {
	root         *Widget
	windowActive *Widget
	focused      *Widget
	active       *Widget

	driver Driver
	input  TouchSource
	lcd    LCD
	clip   ClipRegion

	touchLast TouchData

	// Background is the color the first layer is cleared to and the root
	// window paints. Set it before Init.
	Background Color

	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	debug bool
	stats debugStats
	now   func() time.Time

	injectQueue     []TouchData
	testRunner      *TestRunner
	screenshotQueue []string
}

// New creates a GUI drawing through driver and reading touch from input.
// input may be nil when touch is only injected. Call Init before use.
func New(driver Driver, input TouchSource) *GUI {
	return &GUI{
		driver:        driver,
		input:         input,
		clip:          emptyClip(),
		Background:    ColorWhite,
		ScreenshotDir: "screenshots",
		now:           time.Now,
	}
}

// Init initializes the driver, clears the first layer and creates the root
// window covering the whole display. The root window becomes the active
// window for Create. Init may be called again to start over: the previous
// tree is disposed, so its widgets reject further calls, and the inject
// queue, screenshot queue and test runner are cleared.
func (g *GUI) Init() error {
	if g.root != nil {
		g.root.dispose()
	}
	g.lcd = LCD{}
	g.root, g.windowActive, g.focused, g.active = nil, nil, nil, nil
	g.touchLast = TouchData{}
	g.clip = emptyClip()
	g.injectQueue = g.injectQueue[:0]
	g.screenshotQueue = g.screenshotQueue[:0]
	g.testRunner = nil

	if err := g.driver.Init(&g.lcd); err != nil {
		return fmt.Errorf("init display: %w", err)
	}
	if len(g.lcd.Layers) == 0 {
		return ErrNoLayers
	}

	lcd := &g.lcd
	lcd.ActiveLayer = 0
	lcd.DrawingLayer = 0
	g.driver.Fill(lcd.DrawingLayer, image.Rect(0, 0, lcd.Width, lcd.Height), g.Background)
	if len(lcd.Layers) > 1 {
		lcd.DrawingLayer = 1
	}

	g.root = &Widget{
		Kind:   WindowKind,
		Width:  lcd.Width,
		Height: lcd.Height,
		State:  &WindowState{Background: g.Background},
		gui:    g,
	}
	g.windowActive = g.root
	g.root.Invalidate()
	return nil
}

// Process runs one tick of the frame loop: it drains touch input, then, if
// no layer swap is outstanding and something is dirty, redraws into the back
// buffer and requests the swap. It returns the number of widgets redrawn.
func (g *GUI) Process() int {
	if g.root == nil {
		return 0
	}
	if g.testRunner != nil {
		g.testRunner.step(g)
	}

	if !g.processInjectedInput() && g.input != nil {
		for {
			t, ok := g.input.ReadTouch()
			if !ok {
				break
			}
			g.processSample(t)
		}
	}

	n := 0
	if !g.lcd.waitConfirm && CountPending(g.root) > 0 {
		n = g.render()
	}

	g.flushScreenshots()
	return n
}

// ConfirmLayerSwap is called by the driver once the layer requested through
// SetActiveLayer is on screen. Confirmations for any other layer, or with no
// swap outstanding, are ignored.
func (g *GUI) ConfirmLayerSwap(layer int) {
	lcd := &g.lcd
	if !lcd.waitConfirm {
		return
	}
	if layer != lcd.ActiveLayer {
		g.debugf("confirm for layer %d ignored, waiting for %d", layer, lcd.ActiveLayer)
		return
	}
	lcd.Layers[layer].Pending = false
	lcd.waitConfirm = false
}

// Root returns the root window, or nil before Init.
func (g *GUI) Root() *Widget {
	return g.root
}

// Focused returns the focused widget, or nil.
func (g *GUI) Focused() *Widget {
	return g.focused
}

// Active returns the widget that has captured touch, or nil.
func (g *GUI) Active() *Widget {
	return g.active
}

// ActiveWindow returns the container new widgets are created in.
func (g *GUI) ActiveWindow() *Widget {
	return g.windowActive
}

// SetActiveWindow selects the container Create attaches new widgets to.
// Widgets that do not allow children, or that were removed, are rejected.
func (g *GUI) SetActiveWindow(w *Widget) {
	if !w.valid("SetActiveWindow") || w.gui != g || !w.IsContainer() {
		return
	}
	g.windowActive = w
}

// LCD returns the display and layer state.
func (g *GUI) LCD() *LCD {
	return &g.lcd
}

// Clip returns the clip region accumulated since the last pass.
func (g *GUI) Clip() ClipRegion {
	return g.clip
}

// Driver returns the display driver.
func (g *GUI) Driver() Driver {
	return g.driver
}

// SetTouchSource replaces the touch input.
func (g *GUI) SetTouchSource(input TouchSource) {
	g.input = input
}

// SetDebugMode enables or disables debug mode. When enabled, rejected calls
// on removed widgets, tree depth and child count warnings, and per-frame
// redraw stats are printed to stderr.
func (g *GUI) SetDebugMode(enabled bool) {
	g.debug = enabled
}
