package lcdgui

// WindowState is the state block of a Window.
type WindowState struct {
	Background Color
}

// WindowKind is the container kind. A window paints its background and holds
// child widgets; it does not react to touch itself.
var WindowKind = &Kind{
	Name:          "Window",
	AllowChildren: true,
	NewState: func() any {
		return &WindowState{Background: ColorWhite}
	},
	Draw: drawWindow,
}

func drawWindow(s *Surface, w *Widget) {
	bg := ColorWhite
	if st, ok := w.State.(*WindowState); ok {
		bg = st.Background
	}
	s.Fill(w.AbsX(), w.AbsY(), w.Width, w.Height, bg)
}

// SetWindowBackground changes a window's background color.
func SetWindowBackground(w *Widget, c Color) {
	st, ok := w.State.(*WindowState)
	if !ok || !w.valid("SetWindowBackground") || st.Background == c {
		return
	}
	st.Background = c
	w.Invalidate()
}
