package lcdgui

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config describes the display and the desktop simulator. It is usually
// loaded from an lcdgui.toml file.
type Config struct {
	Debug     bool            `toml:"debug"`
	Display   DisplayConfig   `toml:"display"`
	Simulator SimulatorConfig `toml:"simulator"`
}

// DisplayConfig is the panel geometry.
type DisplayConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
	// Layers is the number of framebuffers; 2 enables double buffering.
	Layers int `toml:"layers"`
	// Background is a #RRGGBB or #AARRGGBB color.
	Background string `toml:"background"`
}

// SimulatorConfig configures the ebiten window of the simulator.
type SimulatorConfig struct {
	Title         string `toml:"title"`
	Scale         int    `toml:"scale"`
	ShowFPS       bool   `toml:"show_fps"`
	TPS           int    `toml:"tps"`
	ScreenshotDir string `toml:"screenshot_dir"`
	// Script is an optional JSON test script run on start.
	Script string `toml:"script"`
}

// DefaultConfig returns a 480x272 double-buffered display, the panel size of
// common STM32 discovery boards.
func DefaultConfig() Config {
	return Config{
		Display: DisplayConfig{
			Width:      480,
			Height:     272,
			Layers:     2,
			Background: "#FFFFFF",
		},
		Simulator: SimulatorConfig{
			Title:         "lcdgui",
			Scale:         2,
			ShowFPS:       false,
			TPS:           60,
			ScreenshotDir: "screenshots",
		},
	}
}

// ParseConfig decodes TOML over DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadConfig reads a TOML config file. A missing file yields DefaultConfig.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return DefaultConfig(), fmt.Errorf("read config %s: %w", path, err)
	}
	return ParseConfig(data)
}

// Validate checks the config for values no display can use.
func (c Config) Validate() error {
	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		return fmt.Errorf("config: invalid display size %dx%d", c.Display.Width, c.Display.Height)
	}
	if c.Display.Layers < 1 {
		return fmt.Errorf("config: %w", ErrNoLayers)
	}
	if c.Simulator.Scale < 1 {
		return fmt.Errorf("config: simulator scale must be at least 1, got %d", c.Simulator.Scale)
	}
	if _, err := c.Display.BackgroundColor(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// BackgroundColor parses Background. An empty string is white.
func (d DisplayConfig) BackgroundColor() (Color, error) {
	return ParseColor(d.Background)
}

// ParseColor parses "#RRGGBB" or "#AARRGGBB". An empty string is white.
func ParseColor(s string) (Color, error) {
	if s == "" {
		return ColorWhite, nil
	}
	hex := strings.TrimPrefix(s, "#")
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil || (len(hex) != 6 && len(hex) != 8) {
		return 0, fmt.Errorf("invalid color %q", s)
	}
	if len(hex) == 6 {
		v |= 0xFF000000
	}
	return Color(v), nil
}

// NewMemDriverFromConfig creates an in-memory driver sized by the config.
func NewMemDriverFromConfig(c DisplayConfig) *MemDriver {
	return NewMemDriver(c.Width, c.Height, c.Layers)
}
