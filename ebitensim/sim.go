// Package ebitensim runs an lcdgui GUI in a desktop window, so screens can
// be built and scripted without the target hardware.
package ebitensim

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/lcdgui"
)

// Sim wires a GUI to an ebiten window. It implements ebiten.Game.
type Sim struct {
	GUI     *lcdgui.GUI
	Display *Display
	Touch   *Touch
	Config  lcdgui.Config

	// OnUpdate, if set, runs every tick before GUI.Process with the tick
	// duration in seconds. Use it to drive tweens and application state.
	OnUpdate func(dt float32)

	overlay *overlay
}

// New creates and initializes a simulator from cfg. If cfg names a test
// script it is loaded and attached.
func New(cfg lcdgui.Config) (*Sim, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	bg, _ := cfg.Display.BackgroundColor()

	d := NewDisplay(cfg.Display)
	t := NewTouch(cfg.Simulator.Scale)
	g := lcdgui.New(d, t)
	g.Background = bg
	g.ScreenshotDir = cfg.Simulator.ScreenshotDir
	g.SetDebugMode(cfg.Debug)
	d.Attach(g)

	if err := g.Init(); err != nil {
		return nil, fmt.Errorf("simulator: %w", err)
	}

	if cfg.Simulator.Script != "" {
		data, err := os.ReadFile(cfg.Simulator.Script)
		if err != nil {
			return nil, fmt.Errorf("simulator: read script: %w", err)
		}
		runner, err := lcdgui.LoadTestScript(data)
		if err != nil {
			return nil, fmt.Errorf("simulator: %w", err)
		}
		g.SetTestRunner(runner)
	}

	s := &Sim{GUI: g, Display: d, Touch: t, Config: cfg}
	if cfg.Simulator.ShowFPS {
		s.overlay = newOverlay()
	}
	return s, nil
}

// Run opens the window and blocks until it is closed.
func (s *Sim) Run() error {
	sc := s.Config.Simulator
	ebiten.SetWindowTitle(sc.Title)
	ebiten.SetWindowSize(s.Config.Display.Width*sc.Scale, s.Config.Display.Height*sc.Scale)
	if sc.TPS > 0 {
		ebiten.SetTPS(sc.TPS)
	}
	return ebiten.RunGame(s)
}

// Update implements ebiten.Game.
func (s *Sim) Update() error {
	dt := 1.0 / float64(ebiten.TPS())
	s.Touch.Poll()
	if s.OnUpdate != nil {
		s.OnUpdate(float32(dt))
	}
	n := s.GUI.Process()
	if s.overlay != nil {
		s.overlay.update(dt, n)
	}
	return nil
}

// Draw implements ebiten.Game. It is the simulated vsync: the pending layer
// is presented and confirmed here.
func (s *Sim) Draw(screen *ebiten.Image) {
	s.Display.Present(screen, s.Config.Simulator.Scale)
	if s.overlay != nil {
		s.overlay.draw(screen)
	}
}

// Layout implements ebiten.Game.
func (s *Sim) Layout(int, int) (int, int) {
	sc := s.Config.Simulator.Scale
	return s.Config.Display.Width * sc, s.Config.Display.Height * sc
}
