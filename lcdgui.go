package lcdgui

import "image/color"

// Color is a 32-bit ARGB color as stored by most LCD controllers
// (0xAARRGGBB). Alpha is carried but drivers are free to ignore it.
type Color uint32

// Common colors.
const (
	ColorWhite     Color = 0xFFFFFFFF
	ColorBlack     Color = 0xFF000000
	ColorRed       Color = 0xFFFF0000
	ColorGreen     Color = 0xFF00FF00
	ColorBlue      Color = 0xFF0000FF
	ColorYellow    Color = 0xFFFFFF00
	ColorCyan      Color = 0xFF00FFFF
	ColorGray      Color = 0xFF808080
	ColorLightGray Color = 0xFFD3D3D3
	ColorDarkGray  Color = 0xFF404040
	ColorLightBlue Color = 0xFF8080FF
	ColorDarkBlue  Color = 0xFF000080
)

// RGBA8 converts c to a straight-alpha color.RGBA.
func (c Color) RGBA8() color.RGBA {
	return color.RGBA{
		R: uint8(c >> 16),
		G: uint8(c >> 8),
		B: uint8(c),
		A: uint8(c >> 24),
	}
}

// ColorFromRGBA packs a color.RGBA into a Color.
func ColorFromRGBA(c color.RGBA) Color {
	return Color(uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B))
}

// Rect is an axis-aligned rectangle in display units. The coordinate system
// has its origin at the top-left, with Y increasing downward.
//
// Like the LCD controllers this library targets, edges are inclusive: a Rect
// covers X..X+Width and Y..Y+Height.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return !(r.X > other.X+other.Width ||
		other.X > r.X+r.Width ||
		r.Y > other.Y+other.Height ||
		other.Y > r.Y+r.Height)
}

// Flags is the per-widget state bitset.
type Flags uint32

const (
	FlagRedraw Flags = 1 << iota // widget must be drawn on the next pass
	FlagActive                   // widget has captured the touch pointer
	FlagFocus                    // widget is the keyboard / alternate input target
)

// TouchStatus is returned by a widget's touch-down handler.
type TouchStatus uint8

const (
	TouchContinue       TouchStatus = iota // not for this widget, keep searching
	TouchHandled                           // widget takes the touch and becomes active
	TouchHandledNoFocus                    // touch consumed, focus and active are cleared
)

func (s TouchStatus) String() string {
	switch s {
	case TouchContinue:
		return "continue"
	case TouchHandled:
		return "handled"
	case TouchHandledNoFocus:
		return "handled-no-focus"
	default:
		return "unknown"
	}
}

// TouchData is one touch sample.
type TouchData struct {
	X, Y    int
	Pressed bool
}

// Order selects the direction of a child walk.
type Order uint8

const (
	Forward Order = iota // z-order: bottom first
	Reverse              // reverse z-order: topmost first
)
