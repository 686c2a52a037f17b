// Package texture decodes images for upload as GL textures and builds the
// flat-color substitutes used when a file cannot be loaded.
package texture

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"

	"github.com/Faultbox/glstudio/internal/logger"
)

var (
	// ErrUnsupportedFormat is returned for file types and encodings that
	// cannot be decoded.
	ErrUnsupportedFormat = errors.New("unsupported image format")
	// ErrTruncated is returned when image data ends early.
	ErrTruncated = errors.New("truncated image data")
)

type decoder func(data []byte) (image.Image, error)

func std(dec func(r *bytes.Reader) (image.Image, error)) decoder {
	return func(data []byte) (image.Image, error) {
		return dec(bytes.NewReader(data))
	}
}

var decoders = map[string]decoder{
	".png":  std(func(r *bytes.Reader) (image.Image, error) { return png.Decode(r) }),
	".jpg":  std(func(r *bytes.Reader) (image.Image, error) { return jpeg.Decode(r) }),
	".jpeg": std(func(r *bytes.Reader) (image.Image, error) { return jpeg.Decode(r) }),
	".bmp":  std(func(r *bytes.Reader) (image.Image, error) { return bmp.Decode(r) }),
	".tif":  std(func(r *bytes.Reader) (image.Image, error) { return tiff.Decode(r) }),
	".tiff": std(func(r *bytes.Reader) (image.Image, error) { return tiff.Decode(r) }),
	".webp": std(func(r *bytes.Reader) (image.Image, error) { return webp.Decode(r) }),
	".tga":  func(data []byte) (image.Image, error) { return DecodeTGA(data) },
}

// Supported reports whether files named like name can be decoded.
func Supported(name string) bool {
	_, ok := decoders[strings.ToLower(filepath.Ext(name))]
	return ok
}

// Decode decodes data using the decoder picked by the extension of name.
// The result is flipped so that row 0 is the bottom row, matching GL
// texture coordinates.
func Decode(name string, data []byte) (*image.RGBA, error) {
	ext := strings.ToLower(filepath.Ext(name))
	dec, ok := decoders[ext]
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, ErrUnsupportedFormat)
	}
	img, err := dec(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return FlipVertical(ToRGBA(img)), nil
}

// Load reads and decodes an image file.
func Load(path string) (*image.RGBA, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read texture: %w", err)
	}
	return Decode(path, data)
}

// LoadWithFallback loads path, or returns a 1x1 image of fallback when the
// file is missing or cannot be decoded. The boolean reports whether the
// fallback was used.
func LoadWithFallback(path string, fallback color.RGBA) (*image.RGBA, bool) {
	if path != "" {
		img, err := Load(path)
		if err == nil {
			return img, false
		}
		logger.Warn("texture load failed, using fallback color",
			zap.String("path", path),
			zap.Error(err),
		)
	}
	return Solid(fallback, 1), true
}

// Solid returns a size x size image filled with c.
func Solid(c color.RGBA, size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
	return img
}

// ToRGBA converts any image.Image to *image.RGBA with its origin at (0, 0).
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}

// FlipVertical reverses the row order of img in place and returns it.
func FlipVertical(img *image.RGBA) *image.RGBA {
	h := img.Bounds().Dy()
	row := make([]byte, img.Stride)
	for y := 0; y < h/2; y++ {
		top := img.Pix[y*img.Stride : (y+1)*img.Stride]
		bot := img.Pix[(h-1-y)*img.Stride : (h-y)*img.Stride]
		copy(row, top)
		copy(top, bot)
		copy(bot, row)
	}
	return img
}

// ParseHexColor parses "#rrggbb" or "rrggbb" into an opaque color.
func ParseHexColor(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return color.RGBA{}, fmt.Errorf("color %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

// Float4 converts c to normalized RGBA floats.
func Float4(c color.RGBA) [4]float32 {
	return [4]float32{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255}
}
