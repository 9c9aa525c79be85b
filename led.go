package lcdgui

// LEDShape selects how an LED is drawn.
type LEDShape uint8

const (
	LEDRect   LEDShape = iota // filled rectangle with a border
	LEDCircle                 // filled circle with a border
)

// LED color slots.
const (
	LEDColorOn = iota
	LEDColorOff
	LEDColorOnBorder
	LEDColorOffBorder
)

// LEDState is the state block of an LED.
type LEDState struct {
	On     bool
	Shape  LEDShape
	Colors [4]Color
}

// LEDKind is a two-state indicator. Touching it is consumed without taking
// focus.
var LEDKind = &Kind{
	Name: "LED",
	NewState: func() any {
		return &LEDState{Colors: [4]Color{
			LEDColorOn:        ColorLightBlue,
			LEDColorOff:       ColorDarkBlue,
			LEDColorOnBorder:  ColorGray,
			LEDColorOffBorder: ColorBlack,
		}}
	},
	Draw: drawLED,
	TouchDown: func(*Widget, TouchData) TouchStatus {
		return TouchHandledNoFocus
	},
}

// NewLED creates an LED in the active window.
func (g *GUI) NewLED(id uint32, x, y, width, height int) (*Widget, error) {
	return g.Create(LEDKind, id, x, y, width, height)
}

func ledState(w *Widget, op string) *LEDState {
	if !w.valid(op) {
		return nil
	}
	st, _ := w.State.(*LEDState)
	return st
}

func drawLED(s *Surface, w *Widget) {
	st, ok := w.State.(*LEDState)
	if !ok {
		return
	}
	x, y := w.AbsX(), w.AbsY()
	fill, border := st.Colors[LEDColorOff], st.Colors[LEDColorOffBorder]
	if st.On {
		fill, border = st.Colors[LEDColorOn], st.Colors[LEDColorOnBorder]
	}
	if st.Shape == LEDRect {
		s.FilledRectangle(x+1, y+1, w.Width-2, w.Height-2, fill)
		s.Rectangle(x, y, w.Width, w.Height, border)
		return
	}
	cx, cy, r := x+w.Width/2, y+w.Height/2, w.Width/2
	s.FilledCircle(cx, cy, r, fill)
	s.Circle(cx, cy, r, border)
}

// LEDOn switches the LED on.
func LEDOn(w *Widget) {
	LEDSet(w, true)
}

// LEDOff switches the LED off.
func LEDOff(w *Widget) {
	LEDSet(w, false)
}

// LEDToggle flips the LED state.
func LEDToggle(w *Widget) {
	if st := ledState(w, "LEDToggle"); st != nil {
		st.On = !st.On
		w.Invalidate()
	}
}

// LEDSet sets the LED state, redrawing only on change.
func LEDSet(w *Widget, on bool) {
	if st := ledState(w, "LEDSet"); st != nil && st.On != on {
		st.On = on
		w.Invalidate()
	}
}

// LEDIsOn reports the LED state.
func LEDIsOn(w *Widget) bool {
	st := ledState(w, "LEDIsOn")
	return st != nil && st.On
}

// LEDSetColor sets one of the LEDColor* slots.
func LEDSetColor(w *Widget, slot int, c Color) {
	st := ledState(w, "LEDSetColor")
	if st == nil || slot < 0 || slot >= len(st.Colors) || st.Colors[slot] == c {
		return
	}
	st.Colors[slot] = c
	w.Invalidate()
}

// LEDSetShape changes the shape. The parent repaints too, since a circle
// uncovers pixels a rectangle hid.
func LEDSetShape(w *Widget, shape LEDShape) {
	if st := ledState(w, "LEDSetShape"); st != nil && st.Shape != shape {
		st.Shape = shape
		w.InvalidateWithParent()
	}
}
