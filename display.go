package lcdgui

import (
	"fmt"
	"image"
	"image/draw"
)

// Layer is one framebuffer of the display.
type Layer struct {
	// Pending is set while the layer has been requested as the visible layer
	// and the driver has not yet confirmed the switch.
	Pending bool
}

// LCD is the display configuration shared between the GUI and its driver.
// The driver fills Width, Height and Layers during Init.
type LCD struct {
	Width, Height int
	Layers        []Layer

	// ActiveLayer is the layer on screen; DrawingLayer is the back buffer.
	// With a single layer both are 0.
	ActiveLayer  int
	DrawingLayer int

	waitConfirm bool
}

// WaitingForConfirm reports whether a layer swap is outstanding.
func (l *LCD) WaitingForConfirm() bool {
	return l.waitConfirm
}

// Driver is the low-level display collaborator. All drawing calls receive
// already clipped coordinates inside the display.
//
// SetActiveLayer is asynchronous: the driver makes the layer visible when the
// hardware allows (vsync, DMA complete) and then calls GUI.ConfirmLayerSwap.
// Calling it from inside SetActiveLayer is allowed.
type Driver interface {
	Init(lcd *LCD) error
	Fill(layer int, r image.Rectangle, c Color)
	Copy(dst, src int)
	SetPixel(layer, x, y int, c Color)
	GetPixel(layer, x, y int) Color
	HLine(layer, x, y, length int, c Color)
	VLine(layer, x, y, length int, c Color)
	SetActiveLayer(layer int)
}

// MemDriver is a Driver backed by in-memory RGBA framebuffers. It is used
// by the simulator and by tests, and is the base for hardware adapters that
// push a finished frame over a bus.
type MemDriver struct {
	Width, Height int
	NumLayers     int

	// OnActiveLayer, if set, is called from SetActiveLayer. Adapters use it to
	// present the layer and confirm the swap.
	OnActiveLayer func(layer int)

	layers    []*image.RGBA
	requested int
	requests  int
}

// NewMemDriver creates a driver with n layers of the given size.
func NewMemDriver(width, height, layers int) *MemDriver {
	return &MemDriver{Width: width, Height: height, NumLayers: layers, requested: -1}
}

// Init allocates the framebuffers and reports the geometry to the GUI.
func (d *MemDriver) Init(lcd *LCD) error {
	if d.Width <= 0 || d.Height <= 0 {
		return fmt.Errorf("mem driver: invalid size %dx%d", d.Width, d.Height)
	}
	d.layers = make([]*image.RGBA, d.NumLayers)
	for i := range d.layers {
		d.layers[i] = image.NewRGBA(image.Rect(0, 0, d.Width, d.Height))
	}
	d.requested = -1
	lcd.Width = d.Width
	lcd.Height = d.Height
	lcd.Layers = make([]Layer, d.NumLayers)
	return nil
}

// Layer returns the framebuffer of the given layer.
func (d *MemDriver) Layer(layer int) *image.RGBA {
	return d.layers[layer]
}

// Requested returns the last layer passed to SetActiveLayer, or -1.
func (d *MemDriver) Requested() int {
	return d.requested
}

// Requests returns how many times SetActiveLayer has been called.
func (d *MemDriver) Requests() int {
	return d.requests
}

func (d *MemDriver) Fill(layer int, r image.Rectangle, c Color) {
	draw.Draw(d.layers[layer], r, image.NewUniform(c.RGBA8()), image.Point{}, draw.Src)
}

func (d *MemDriver) Copy(dst, src int) {
	if dst == src {
		return
	}
	copy(d.layers[dst].Pix, d.layers[src].Pix)
}

func (d *MemDriver) SetPixel(layer, x, y int, c Color) {
	d.layers[layer].SetRGBA(x, y, c.RGBA8())
}

func (d *MemDriver) GetPixel(layer, x, y int) Color {
	return ColorFromRGBA(d.layers[layer].RGBAAt(x, y))
}

func (d *MemDriver) HLine(layer, x, y, length int, c Color) {
	d.Fill(layer, image.Rect(x, y, x+length, y+1), c)
}

func (d *MemDriver) VLine(layer, x, y, length int, c Color) {
	d.Fill(layer, image.Rect(x, y, x+1, y+length), c)
}

func (d *MemDriver) SetActiveLayer(layer int) {
	d.requested = layer
	d.requests++
	if d.OnActiveLayer != nil {
		d.OnActiveLayer(layer)
	}
}
