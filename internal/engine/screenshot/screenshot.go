// Package screenshot saves framebuffer contents as PNG files.
package screenshot

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/Faultbox/glstudio/internal/engine/texture"
)

const stampLayout = "2006-01-02_15-04-05.000"

// Capture writes screenshots into a directory.
type Capture struct {
	dir    string
	prefix string
	now    func() time.Time
}

// New creates a capture writing prefix_<timestamp>.png files into dir.
// An empty dir writes into the working directory.
func New(dir, prefix string) *Capture {
	return &Capture{dir: dir, prefix: prefix, now: time.Now}
}

// Filename returns the path the next capture would be written to.
func (c *Capture) Filename() string {
	name := fmt.Sprintf("%s_%s.png", c.prefix, c.now().Format(stampLayout))
	if c.dir != "" {
		name = filepath.Join(c.dir, name)
	}
	return name
}

// SavePixels saves bottom-up RGBA rows as read back from the GL framebuffer
// and returns the file written.
func (c *Capture) SavePixels(pixels []byte, width, height int) (string, error) {
	if width <= 0 || height <= 0 || len(pixels) != width*height*4 {
		return "", fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	copy(img.Pix, pixels)
	return c.Save(texture.FlipVertical(img))
}

// Save encodes img and returns the file written.
func (c *Capture) Save(img image.Image) (string, error) {
	if c.dir != "" {
		if err := os.MkdirAll(c.dir, 0o755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	filename := c.Filename()
	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("encoding PNG: %w", err)
	}
	return filename, nil
}
