package lcdgui

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"after-click", "after-click"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"special!@#", "special___"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
	}
	for _, tt := range tests {
		if got := sanitizeLabel(tt.in); got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScreenshotWritesVisibleLayer(t *testing.T) {
	d := NewMemDriver(16, 8, 2)
	g := New(d, nil)
	g.Background = ColorGreen
	g.ScreenshotDir = t.TempDir()
	g.now = func() time.Time { return time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC) }
	if err := g.Init(); err != nil {
		t.Fatal(err)
	}

	g.Screenshot("boot screen")
	g.Process()

	path := filepath.Join(g.ScreenshotDir, "20240501_123000_boot_screen.png")
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("screenshot not written: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 8 {
		t.Errorf("size = %v, want 16x8", b)
	}
	r, gr, b, _ := img.At(3, 3).RGBA()
	if r != 0 || gr != 0xFFFF || b != 0 {
		t.Errorf("pixel = (%d,%d,%d), want green", r, gr, b)
	}
}

func TestSnapshot(t *testing.T) {
	g, _ := newTestGUI(t)
	img := g.Snapshot(0)
	if img.Bounds().Dx() != 100 || img.Bounds().Dy() != 80 {
		t.Errorf("bounds = %v", img.Bounds())
	}
	if got := img.RGBAAt(0, 0); got != ColorWhite.RGBA8() {
		t.Errorf("pixel = %v, want white", got)
	}
}
