package texture

import (
	"fmt"
	"image"
	"image/color"
)

// TGA image type constants.
const (
	TGATypeUncompressed = 2  // Uncompressed true-color
	TGATypeRLE          = 10 // RLE compressed true-color
)

// tgaReader walks TGA pixel data and writes pixels in file order.
type tgaReader struct {
	img         *image.RGBA
	data        []byte
	pos         int
	bpp         int
	width       int
	height      int
	topToBottom bool
	written     int
}

func (t *tgaReader) next() (color.RGBA, bool) {
	if t.pos+t.bpp > len(t.data) {
		return color.RGBA{}, false
	}
	p := t.data[t.pos : t.pos+t.bpp]
	t.pos += t.bpp
	c := color.RGBA{R: p[2], G: p[1], B: p[0], A: 255}
	if t.bpp == 4 {
		c.A = p[3]
	}
	return c, true
}

func (t *tgaReader) put(c color.RGBA) {
	x := t.written % t.width
	y := t.written / t.width
	if !t.topToBottom {
		y = t.height - 1 - y
	}
	t.img.SetRGBA(x, y, c)
	t.written++
}

func (t *tgaReader) full() bool {
	return t.written >= t.width*t.height
}

// DecodeTGA decodes uncompressed (type 2) and RLE (type 10) true-color TGA
// images with 24 or 32 bits per pixel.
func DecodeTGA(data []byte) (*image.RGBA, error) {
	if len(data) < 18 {
		return nil, fmt.Errorf("tga: %w: header", ErrTruncated)
	}

	idLength := int(data[0])
	colorMapType := data[1]
	imageType := int(data[2])
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	descriptor := data[17]

	if colorMapType != 0 {
		return nil, fmt.Errorf("tga: color-mapped images: %w", ErrUnsupportedFormat)
	}
	if imageType != TGATypeUncompressed && imageType != TGATypeRLE {
		return nil, fmt.Errorf("tga: image type %d: %w", imageType, ErrUnsupportedFormat)
	}
	if bpp != 24 && bpp != 32 {
		return nil, fmt.Errorf("tga: %d bits per pixel: %w", bpp, ErrUnsupportedFormat)
	}

	offset := 18 + idLength
	if offset > len(data) {
		return nil, fmt.Errorf("tga: %w: id field", ErrTruncated)
	}

	t := &tgaReader{
		img:         image.NewRGBA(image.Rect(0, 0, width, height)),
		data:        data[offset:],
		bpp:         bpp / 8,
		width:       width,
		height:      height,
		topToBottom: descriptor&0x20 != 0,
	}

	if imageType == TGATypeUncompressed {
		if len(t.data) < width*height*t.bpp {
			return nil, fmt.Errorf("tga: %w: pixel data", ErrTruncated)
		}
		for !t.full() {
			c, _ := t.next()
			t.put(c)
		}
		return t.img, nil
	}

	for !t.full() && t.pos < len(t.data) {
		packet := t.data[t.pos]
		t.pos++
		count := int(packet&0x7F) + 1

		if packet&0x80 != 0 {
			c, ok := t.next()
			if !ok {
				break
			}
			for i := 0; i < count && !t.full(); i++ {
				t.put(c)
			}
			continue
		}
		for i := 0; i < count && !t.full(); i++ {
			c, ok := t.next()
			if !ok {
				break
			}
			t.put(c)
		}
	}
	return t.img, nil
}
