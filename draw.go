package lcdgui

import (
	"image"
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// DefaultFont is used by widgets that have no font set.
var DefaultFont tinyfont.Fonter = &tinyfont.TomThumb

// Surface is what draw callbacks paint on: the current drawing layer of the
// display, restricted to the clip region of the pass. The region is live: an
// invalidation made from a draw callback widens it for the rest of the pass. All coordinates are
// absolute screen coordinates; sizes are in pixels.
type Surface struct {
	driver Driver
	layer  int
	clip   *ClipRegion
	width  int
	height int
}

func newSurface(d Driver, lcd *LCD, clip *ClipRegion) *Surface {
	return &Surface{driver: d, layer: lcd.DrawingLayer, clip: clip, width: lcd.Width, height: lcd.Height}
}

// Clip returns the clip region of the pass.
func (s *Surface) Clip() ClipRegion {
	return *s.clip
}

// Layer returns the layer being drawn.
func (s *Surface) Layer() int {
	return s.layer
}

// bounds returns the clip region limited to the display, inclusive.
func (s *Surface) bounds() (x1, y1, x2, y2 int) {
	return max(s.clip.X1, 0), max(s.clip.Y1, 0),
		min(s.clip.X2, s.width-1), min(s.clip.Y2, s.height-1)
}

// Fill paints the width x height block at (x, y).
func (s *Surface) Fill(x, y, width, height int, c Color) {
	if width <= 0 || height <= 0 {
		return
	}
	cx1, cy1, cx2, cy2 := s.bounds()
	x1, y1 := max(x, cx1), max(y, cy1)
	x2, y2 := min(x+width-1, cx2), min(y+height-1, cy2)
	if x1 > x2 || y1 > y2 {
		return
	}
	s.driver.Fill(s.layer, image.Rect(x1, y1, x2+1, y2+1), c)
}

// FilledRectangle is Fill.
func (s *Surface) FilledRectangle(x, y, width, height int, c Color) {
	s.Fill(x, y, width, height, c)
}

// SetPixel paints one pixel if it is inside the clip region.
func (s *Surface) SetPixel(x, y int, c Color) {
	cx1, cy1, cx2, cy2 := s.bounds()
	if x < cx1 || x > cx2 || y < cy1 || y > cy2 {
		return
	}
	s.driver.SetPixel(s.layer, x, y, c)
}

// GetPixel reads one pixel of the drawing layer. Outside the display it
// returns 0.
func (s *Surface) GetPixel(x, y int) Color {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return 0
	}
	return s.driver.GetPixel(s.layer, x, y)
}

// HLine paints a horizontal line of length pixels starting at (x, y).
func (s *Surface) HLine(x, y, length int, c Color) {
	cx1, cy1, cx2, cy2 := s.bounds()
	if length <= 0 || y < cy1 || y > cy2 {
		return
	}
	x1, x2 := max(x, cx1), min(x+length-1, cx2)
	if x1 > x2 {
		return
	}
	s.driver.HLine(s.layer, x1, y, x2-x1+1, c)
}

// VLine paints a vertical line of length pixels starting at (x, y).
func (s *Surface) VLine(x, y, length int, c Color) {
	cx1, cy1, cx2, cy2 := s.bounds()
	if length <= 0 || x < cx1 || x > cx2 {
		return
	}
	y1, y2 := max(y, cy1), min(y+length-1, cy2)
	if y1 > y2 {
		return
	}
	s.driver.VLine(s.layer, x, y1, y2-y1+1, c)
}

// Rectangle paints a one pixel outline.
func (s *Surface) Rectangle(x, y, width, height int, c Color) {
	if width <= 0 || height <= 0 {
		return
	}
	s.HLine(x, y, width, c)
	s.HLine(x, y+height-1, width, c)
	s.VLine(x, y, height, c)
	s.VLine(x+width-1, y, height, c)
}

// Bevel selects the look of Rectangle3D.
type Bevel uint8

const (
	BevelRaised  Bevel = iota // light top-left, dark bottom-right
	BevelLowered              // dark top-left, light bottom-right
)

// Rectangle3D paints a two pixel beveled frame.
func (s *Surface) Rectangle3D(x, y, width, height int, b Bevel) {
	light, dark := ColorWhite, ColorDarkGray
	if b == BevelLowered {
		light, dark = dark, light
	}
	s.HLine(x, y, width, light)
	s.VLine(x, y, height, light)
	s.HLine(x+1, y+1, width-2, light)
	s.VLine(x+1, y+1, height-2, light)
	s.HLine(x, y+height-1, width, dark)
	s.VLine(x+width-1, y, height, dark)
	s.HLine(x+1, y+height-2, width-2, dark)
	s.VLine(x+width-2, y+1, height-2, dark)
}

// corner bits for circleCorner.
const (
	cornerTopLeft = 1 << iota
	cornerTopRight
	cornerBottomRight
	cornerBottomLeft
	cornerAll = cornerTopLeft | cornerTopRight | cornerBottomRight | cornerBottomLeft
)

// circleCorner walks the midpoint circle of radius r around (x0, y0) and
// paints the selected quarters, either as outline pixels or as spans.
func (s *Surface) circleCorner(x0, y0, r int, corners uint8, filled bool, c Color) {
	if r <= 0 {
		s.SetPixel(x0, y0, c)
		return
	}
	f := 1 - r
	ddx, ddy := 1, -2*r
	x, y := 0, r
	for x <= y {
		if filled {
			if corners&cornerTopLeft != 0 {
				s.HLine(x0-x, y0-y, x+1, c)
				s.HLine(x0-y, y0-x, y+1, c)
			}
			if corners&cornerTopRight != 0 {
				s.HLine(x0, y0-y, x+1, c)
				s.HLine(x0, y0-x, y+1, c)
			}
			if corners&cornerBottomRight != 0 {
				s.HLine(x0, y0+y, x+1, c)
				s.HLine(x0, y0+x, y+1, c)
			}
			if corners&cornerBottomLeft != 0 {
				s.HLine(x0-x, y0+y, x+1, c)
				s.HLine(x0-y, y0+x, y+1, c)
			}
		} else {
			if corners&cornerTopLeft != 0 {
				s.SetPixel(x0-x, y0-y, c)
				s.SetPixel(x0-y, y0-x, c)
			}
			if corners&cornerTopRight != 0 {
				s.SetPixel(x0+x, y0-y, c)
				s.SetPixel(x0+y, y0-x, c)
			}
			if corners&cornerBottomRight != 0 {
				s.SetPixel(x0+x, y0+y, c)
				s.SetPixel(x0+y, y0+x, c)
			}
			if corners&cornerBottomLeft != 0 {
				s.SetPixel(x0-x, y0+y, c)
				s.SetPixel(x0-y, y0+x, c)
			}
		}
		if f >= 0 {
			y--
			ddy += 2
			f += ddy
		}
		x++
		ddx += 2
		f += ddx
	}
}

// Circle paints a one pixel circle outline.
func (s *Surface) Circle(cx, cy, r int, c Color) {
	s.circleCorner(cx, cy, r, cornerAll, false, c)
}

// FilledCircle paints a solid disc.
func (s *Surface) FilledCircle(cx, cy, r int, c Color) {
	s.circleCorner(cx, cy, r, cornerAll, true, c)
}

// RoundedRectangle paints an outline with corners of radius r.
func (s *Surface) RoundedRectangle(x, y, width, height, r int, c Color) {
	r = clampRadius(width, height, r)
	if r == 0 {
		s.Rectangle(x, y, width, height, c)
		return
	}
	s.HLine(x+r, y, width-2*r, c)
	s.HLine(x+r, y+height-1, width-2*r, c)
	s.VLine(x, y+r, height-2*r, c)
	s.VLine(x+width-1, y+r, height-2*r, c)
	s.circleCorner(x+r, y+r, r, cornerTopLeft, false, c)
	s.circleCorner(x+width-1-r, y+r, r, cornerTopRight, false, c)
	s.circleCorner(x+width-1-r, y+height-1-r, r, cornerBottomRight, false, c)
	s.circleCorner(x+r, y+height-1-r, r, cornerBottomLeft, false, c)
}

// FilledRoundedRectangle paints a solid rectangle with corners of radius r.
func (s *Surface) FilledRoundedRectangle(x, y, width, height, r int, c Color) {
	r = clampRadius(width, height, r)
	if r == 0 {
		s.Fill(x, y, width, height, c)
		return
	}
	s.Fill(x+r, y, width-2*r, height, c)
	s.Fill(x, y+r, r, height-2*r, c)
	s.Fill(x+width-r, y+r, r, height-2*r, c)
	s.circleCorner(x+r, y+r, r, cornerTopLeft, true, c)
	s.circleCorner(x+width-1-r, y+r, r, cornerTopRight, true, c)
	s.circleCorner(x+width-1-r, y+height-1-r, r, cornerBottomRight, true, c)
	s.circleCorner(x+r, y+height-1-r, r, cornerBottomLeft, true, c)
}

func clampRadius(width, height, r int) int {
	return max(0, min(r, width/2, height/2))
}

// Text paints str with its baseline at y, starting at x. A nil font selects
// DefaultFont.
func (s *Surface) Text(font tinyfont.Fonter, x, y int, str string, c Color) {
	if font == nil {
		font = DefaultFont
	}
	tinyfont.WriteLine(displayer{s}, font, int16(x), int16(y), str, c.RGBA8())
}

// TextWidth returns the advance width of str in pixels.
func TextWidth(font tinyfont.Fonter, str string) int {
	if font == nil {
		font = DefaultFont
	}
	_, w := tinyfont.LineWidth(font, str)
	return int(w)
}

// TextHeight returns the line height of font in pixels.
func TextHeight(font tinyfont.Fonter) int {
	if font == nil {
		font = DefaultFont
	}
	return int(font.GetYAdvance())
}

// displayer lets tinyfont rasterize glyphs through the clipped surface.
type displayer struct {
	s *Surface
}

var _ drivers.Displayer = displayer{}

func (d displayer) Size() (x, y int16) {
	return int16(d.s.width), int16(d.s.height)
}

func (d displayer) SetPixel(x, y int16, c color.RGBA) {
	d.s.SetPixel(int(x), int(y), ColorFromRGBA(c))
}

func (d displayer) Display() error {
	return nil
}
