package renderer

import (
	"image"
	"image/color"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/glstudio/internal/engine/texture"
	"github.com/Faultbox/glstudio/internal/logger"
)

// Texture is a 2D GL texture.
type Texture struct {
	ID     uint32
	Width  int
	Height int
}

// UploadTexture creates a mipmapped, repeating RGBA texture from img.
func UploadTexture(img *image.RGBA) *Texture {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(w), int32(h), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return &Texture{ID: id, Width: w, Height: h}
}

// LoadTexture loads path as a texture, substituting a 1x1 texture of
// fallback when the file cannot be used.
func LoadTexture(path string, fallback color.RGBA) *Texture {
	img, usedFallback := texture.LoadWithFallback(path, fallback)
	tex := UploadTexture(img)
	if !usedFallback {
		logger.Debug("texture loaded",
			zap.String("path", path),
			zap.Int("width", tex.Width),
			zap.Int("height", tex.Height),
		)
	}
	return tex
}

// Bind binds the texture to the given texture unit.
func (t *Texture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)
}

// Delete releases the GL texture.
func (t *Texture) Delete() {
	if t.ID != 0 {
		gl.DeleteTextures(1, &t.ID)
		t.ID = 0
	}
}
