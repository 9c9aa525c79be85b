// Package tinydisplay drives an lcdgui GUI on any TinyGo display that
// implements drivers.Displayer, such as the ST7789 or ILI9341 drivers.
//
// Frames are composed in RAM and pushed to the panel when the GUI asks for a
// layer swap. Only the rows touched since the last push are sent, and the
// swap is confirmed as soon as Display returns.
package tinydisplay

import (
	"fmt"
	"image"
	"os"

	"tinygo.org/x/drivers"

	"github.com/phanxgames/lcdgui"
)

// Display adapts a drivers.Displayer to lcdgui.Driver.
type Display struct {
	*lcdgui.MemDriver

	dev     drivers.Displayer
	gui     *lcdgui.GUI
	shown   int
	rows    []bool
	pushErr error
}

// New creates a driver for dev. Two layers are kept in RAM so the GUI can
// compose a frame while the previous one is being transferred.
func New(dev drivers.Displayer) *Display {
	w, h := dev.Size()
	d := &Display{
		MemDriver: lcdgui.NewMemDriver(int(w), int(h), 2),
		dev:       dev,
		shown:     -1,
		rows:      make([]bool, int(h)),
	}
	d.OnActiveLayer = d.present
	return d
}

// Attach sets the GUI that receives swap confirmations.
func (d *Display) Attach(g *lcdgui.GUI) {
	d.gui = g
}

// Err returns the last error reported by the device, if any.
func (d *Display) Err() error {
	return d.pushErr
}

func (d *Display) Fill(layer int, r image.Rectangle, c lcdgui.Color) {
	d.MemDriver.Fill(layer, r, c)
	d.touchRows(r.Min.Y, r.Max.Y)
}

func (d *Display) SetPixel(layer, x, y int, c lcdgui.Color) {
	d.MemDriver.SetPixel(layer, x, y, c)
	d.touchRows(y, y+1)
}

func (d *Display) HLine(layer, x, y, length int, c lcdgui.Color) {
	d.MemDriver.HLine(layer, x, y, length, c)
	d.touchRows(y, y+1)
}

func (d *Display) VLine(layer, x, y, length int, c lcdgui.Color) {
	d.MemDriver.VLine(layer, x, y, length, c)
	d.touchRows(y, y+length)
}

func (d *Display) touchRows(y1, y2 int) {
	y1, y2 = max(y1, 0), min(y2, len(d.rows))
	for y := y1; y < y2; y++ {
		d.rows[y] = true
	}
}

// present pushes the dirty rows of layer to the device and confirms the swap.
// The first push sends the whole frame.
func (d *Display) present(layer int) {
	img := d.Layer(layer)
	full := d.shown < 0
	for y := 0; y < d.Height; y++ {
		if !full && !d.rows[y] {
			continue
		}
		d.rows[y] = false
		for x := 0; x < d.Width; x++ {
			d.dev.SetPixel(int16(x), int16(y), img.RGBAAt(x, y))
		}
	}
	if err := d.dev.Display(); err != nil {
		d.pushErr = fmt.Errorf("tinydisplay: display: %w", err)
		_, _ = fmt.Fprintf(os.Stderr, "[lcdgui] %v\n", d.pushErr)
	}
	d.shown = layer
	if d.gui != nil {
		d.gui.ConfirmLayerSwap(layer)
	}
}
