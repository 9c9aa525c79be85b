package lcdgui

import "tinygo.org/x/tinyfont"

// Button color slots.
const (
	ButtonColorFG = iota
	ButtonColorBG
	ButtonColorBorder
)

// ButtonState is the state block of a Button.
type ButtonState struct {
	Text         string
	Colors       [3]Color
	BorderWidth  int
	BorderRadius int
	Font         tinyfont.Fonter

	// OnClick fires when a press that started on the button is released on it.
	OnClick func(w *Widget)

	// outside is set while a captured drag has left the button.
	outside bool
}

// ButtonKind is a push button. It takes focus on touch and draws itself
// pressed while it holds the touch.
var ButtonKind = &Kind{
	Name: "Button",
	NewState: func() any {
		return &ButtonState{
			Colors: [3]Color{
				ButtonColorFG:     ColorBlack,
				ButtonColorBG:     ColorLightGray,
				ButtonColorBorder: ColorDarkGray,
			},
			BorderWidth: 1,
		}
	},
	Draw:      drawButton,
	TouchDown: buttonTouchDown,
	TouchUp:   buttonTouchUp,
	TouchMove: buttonTouchMove,
}

// NewButton creates a button with the given label in the active window.
func (g *GUI) NewButton(id uint32, x, y, width, height int, text string) (*Widget, error) {
	w, err := g.Create(ButtonKind, id, x, y, width, height)
	if err != nil {
		return nil, err
	}
	w.State.(*ButtonState).Text = text
	return w, nil
}

func buttonState(w *Widget, op string) *ButtonState {
	if !w.valid(op) {
		return nil
	}
	st, _ := w.State.(*ButtonState)
	return st
}

func drawButton(s *Surface, w *Widget) {
	st, ok := w.State.(*ButtonState)
	if !ok {
		return
	}
	x, y := w.AbsX(), w.AbsY()
	fg, bg := st.Colors[ButtonColorFG], st.Colors[ButtonColorBG]
	pressed := w.Has(FlagActive) && !st.outside
	if pressed {
		fg, bg = bg, fg
	}

	s.FilledRoundedRectangle(x, y, w.Width, w.Height, st.BorderRadius, bg)
	for i := 0; i < st.BorderWidth; i++ {
		s.RoundedRectangle(x+i, y+i, w.Width-2*i, w.Height-2*i, st.BorderRadius-i, st.Colors[ButtonColorBorder])
	}
	if st.BorderRadius == 0 && st.BorderWidth == 0 {
		bevel := BevelRaised
		if pressed {
			bevel = BevelLowered
		}
		s.Rectangle3D(x, y, w.Width, w.Height, bevel)
	}
	if w.Has(FlagFocus) {
		s.Rectangle(x+st.BorderWidth+1, y+st.BorderWidth+1, w.Width-2*st.BorderWidth-2, w.Height-2*st.BorderWidth-2, fg)
	}

	if st.Text == "" {
		return
	}
	tw, th := TextWidth(st.Font, st.Text), TextHeight(st.Font)
	s.Text(st.Font, x+(w.Width-tw)/2, y+(w.Height+th)/2-1, st.Text, fg)
}

func buttonTouchDown(w *Widget, _ TouchData) TouchStatus {
	if st, ok := w.State.(*ButtonState); ok {
		st.outside = false
	}
	return TouchHandled
}

func buttonTouchMove(w *Widget, t TouchData) {
	st, ok := w.State.(*ButtonState)
	if !ok {
		return
	}
	if outside := !w.AbsRect().Contains(t.X, t.Y); outside != st.outside {
		st.outside = outside
		w.Invalidate()
	}
}

func buttonTouchUp(w *Widget, _ TouchData) {
	st, ok := w.State.(*ButtonState)
	if !ok {
		return
	}
	st.outside = false
	if w.Has(FlagActive) && st.OnClick != nil {
		st.OnClick(w)
	}
}

// ButtonSetText changes the label.
func ButtonSetText(w *Widget, text string) {
	if st := buttonState(w, "ButtonSetText"); st != nil && st.Text != text {
		st.Text = text
		w.Invalidate()
	}
}

// ButtonSetColor sets one of the ButtonColor* slots.
func ButtonSetColor(w *Widget, slot int, c Color) {
	st := buttonState(w, "ButtonSetColor")
	if st == nil || slot < 0 || slot >= len(st.Colors) || st.Colors[slot] == c {
		return
	}
	st.Colors[slot] = c
	w.Invalidate()
}

// ButtonSetBorderWidth sets the border width in pixels.
func ButtonSetBorderWidth(w *Widget, width int) {
	if st := buttonState(w, "ButtonSetBorderWidth"); st != nil && st.BorderWidth != width {
		st.BorderWidth = max(width, 0)
		w.Invalidate()
	}
}

// ButtonSetBorderRadius sets the corner radius. The parent repaints too, as
// rounder corners uncover its background.
func ButtonSetBorderRadius(w *Widget, r int) {
	if st := buttonState(w, "ButtonSetBorderRadius"); st != nil && st.BorderRadius != r {
		st.BorderRadius = max(r, 0)
		w.InvalidateWithParent()
	}
}

// ButtonSetFont sets the label font. nil selects DefaultFont.
func ButtonSetFont(w *Widget, font tinyfont.Fonter) {
	if st := buttonState(w, "ButtonSetFont"); st != nil && st.Font != font {
		st.Font = font
		w.Invalidate()
	}
}

// ButtonOnClick sets the click callback.
func ButtonOnClick(w *Widget, fn func(w *Widget)) {
	if st := buttonState(w, "ButtonOnClick"); st != nil {
		st.OnClick = fn
	}
}
