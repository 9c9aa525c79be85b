// Package lcdgui is a retained-mode widget library for small touch displays
// driven by a microcontroller or a framebuffer device.
//
// It keeps a tree of widgets, dispatches touch samples to them, and redraws
// only what changed into the back buffer of a double-buffered display.
//
// # Quick start
//
// Provide a [Driver] for the panel and a [TouchSource] for the touch
// controller, then call [GUI.Process] from the main loop:
//
//	g := lcdgui.New(driver, touch)
//	if err := g.Init(); err != nil {
//		return err
//	}
//	led, _ := g.NewLED(1, 10, 10, 24, 24)
//	btn, _ := g.NewButton(2, 50, 10, 80, 30, "Toggle")
//	lcdgui.ButtonOnClick(btn, func(*lcdgui.Widget) { lcdgui.LEDToggle(led) })
//	for {
//		g.Process()
//	}
//
// The driver calls [GUI.ConfirmLayerSwap] once the layer it was asked to show
// is on screen. Until then no new frame is drawn.
//
// # Widget tree
//
// Every element is a [Widget]. Widgets are created by [GUI.Create] inside
// the active window ([GUI.SetActiveWindow]) and keep positions relative to
// their parent. Children are ordered: later children draw on top and are
// hit-tested first. Behavior comes from a shared [Kind] descriptor holding
// the draw and touch callbacks; [WindowKind], [LEDKind] and [ButtonKind] are
// built in.
//
// # Redraw
//
// Changing a widget calls [Widget.Invalidate], which flags it and grows the
// clip region. [GUI.Process] copies the visible layer into the back buffer,
// runs the draw callbacks of dirty widgets inside the clip region, and asks
// the driver to show the back buffer.
//
// # Touch
//
// Samples are hit-tested topmost first, children before their container.
// A widget whose TouchDown returns [TouchHandled] becomes the active widget,
// is raised to the top, and receives TouchMove for the rest of the press.
//
// Subpackage ebitensim runs a GUI in a desktop window; tinydisplay adapts a
// TinyGo display driver.
package lcdgui
