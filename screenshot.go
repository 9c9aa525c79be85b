package lcdgui

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
)

// Screenshot queues a labeled capture of the visible layer, taken at the end
// of the next Process call. The PNG is written to ScreenshotDir with a
// timestamped filename.
func (g *GUI) Screenshot(label string) {
	g.screenshotQueue = append(g.screenshotQueue, label)
}

// Snapshot reads the given layer back from the driver.
func (g *GUI) Snapshot(layer int) *image.RGBA {
	lcd := &g.lcd
	img := image.NewRGBA(image.Rect(0, 0, lcd.Width, lcd.Height))
	for y := 0; y < lcd.Height; y++ {
		for x := 0; x < lcd.Width; x++ {
			img.SetRGBA(x, y, g.driver.GetPixel(layer, x, y).RGBA8())
		}
	}
	return img
}

// flushScreenshots writes every queued capture of the visible layer.
// Called at the end of Process.
func (g *GUI) flushScreenshots() {
	if len(g.screenshotQueue) == 0 {
		return
	}
	defer func() { g.screenshotQueue = g.screenshotQueue[:0] }()

	if err := os.MkdirAll(g.ScreenshotDir, 0o755); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[lcdgui] screenshot: mkdir %s: %v\n", g.ScreenshotDir, err)
		return
	}

	img := g.Snapshot(g.lcd.ActiveLayer)
	stamp := g.now().Format("20060102_150405")
	for _, label := range g.screenshotQueue {
		path := filepath.Join(g.ScreenshotDir, fmt.Sprintf("%s_%s.png", stamp, sanitizeLabel(label)))
		if err := writePNG(path, img); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[lcdgui] screenshot: %v\n", err)
		}
	}
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
