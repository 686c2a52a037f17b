package texture

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tgaHeader builds an 18-byte header for a true-color image.
func tgaHeader(imageType byte, w, h int, bpp byte, descriptor byte) []byte {
	hdr := make([]byte, 18)
	hdr[2] = imageType
	hdr[12] = byte(w)
	hdr[13] = byte(w >> 8)
	hdr[14] = byte(h)
	hdr[15] = byte(h >> 8)
	hdr[16] = bpp
	hdr[17] = descriptor
	return hdr
}

func TestDecodeTGAUncompressedBottomUp(t *testing.T) {
	// Rows stored bottom first, pixels as BGR.
	data := tgaHeader(TGATypeUncompressed, 2, 2, 24, 0)
	data = append(data,
		0, 0, 255, 0, 255, 0, // bottom row: red, green
		255, 0, 0, 255, 255, 255, // top row: blue, white
	)

	img, err := DecodeTGA(data)
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, img.RGBAAt(0, 1))
	assert.Equal(t, color.RGBA{0, 255, 0, 255}, img.RGBAAt(1, 1))
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, img.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, img.RGBAAt(1, 0))
}

func TestDecodeTGARLE(t *testing.T) {
	data := tgaHeader(TGATypeRLE, 3, 1, 32, 0x20)
	data = append(data,
		0x81, 10, 20, 30, 128, // run of 2
		0x00, 1, 2, 3, 4, // raw 1
	)

	img, err := DecodeTGA(data)
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{30, 20, 10, 128}, img.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{30, 20, 10, 128}, img.RGBAAt(1, 0))
	assert.Equal(t, color.RGBA{3, 2, 1, 4}, img.RGBAAt(2, 0))
}

func TestDecodeTGAErrors(t *testing.T) {
	_, err := DecodeTGA([]byte{1, 2, 3})
	assert.ErrorIs(t, err, ErrTruncated)

	_, err = DecodeTGA(tgaHeader(1, 1, 1, 24, 0))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = DecodeTGA(tgaHeader(TGATypeUncompressed, 1, 1, 16, 0))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = DecodeTGA(tgaHeader(TGATypeUncompressed, 2, 2, 24, 0))
	assert.ErrorIs(t, err, ErrTruncated)
}

func encodePNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 1, 2))
	img.SetRGBA(0, 0, color.RGBA{255, 0, 0, 255})
	img.SetRGBA(0, 1, color.RGBA{0, 0, 255, 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDecodeFlipsRows(t *testing.T) {
	img, err := Decode("earth.PNG", encodePNG(t))
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, img.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, img.RGBAAt(0, 1))
}

func TestDecodeUnsupported(t *testing.T) {
	_, err := Decode("notes.txt", []byte("hello"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.False(t, Supported("notes.txt"))
	assert.True(t, Supported("mars.webp"))
	assert.True(t, Supported("sun.JPEG"))
}

func TestDecodeCorrupt(t *testing.T) {
	_, err := Decode("broken.png", []byte("not a png"))
	assert.Error(t, err)
}

func TestLoadWithFallback(t *testing.T) {
	fallback := color.RGBA{0x34, 0x98, 0xdb, 255}

	img, used := LoadWithFallback(filepath.Join(t.TempDir(), "missing.png"), fallback)
	assert.True(t, used)
	assert.Equal(t, 1, img.Bounds().Dx())
	assert.Equal(t, fallback, img.RGBAAt(0, 0))

	img, used = LoadWithFallback("", fallback)
	assert.True(t, used)
	assert.Equal(t, fallback, img.RGBAAt(0, 0))

	path := filepath.Join(t.TempDir(), "ok.png")
	require.NoError(t, os.WriteFile(path, encodePNG(t), 0o644))
	img, used = LoadWithFallback(path, fallback)
	assert.False(t, used)
	assert.Equal(t, 2, img.Bounds().Dy())
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#e39e1c")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0xe3, 0x9e, 0x1c, 0xff}, c)

	c, err = ParseHexColor("a6a6a6")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0xa6, 0xa6, 0xa6, 0xff}, c)

	_, err = ParseHexColor("#fff")
	assert.Error(t, err)
	_, err = ParseHexColor("#gggggg")
	assert.Error(t, err)
}

func TestFloat4(t *testing.T) {
	f := Float4(color.RGBA{255, 0, 51, 255})
	assert.InDelta(t, 1.0, f[0], 1e-6)
	assert.InDelta(t, 0.2, f[2], 1e-6)
}

func TestSolid(t *testing.T) {
	img := Solid(color.RGBA{1, 2, 3, 4}, 4)
	assert.Equal(t, 4, img.Bounds().Dx())
	assert.Equal(t, color.RGBA{1, 2, 3, 4}, img.RGBAAt(3, 3))
}
