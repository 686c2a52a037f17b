package app

import (
	"image/color"

	"github.com/Faultbox/glstudio/internal/app/states"
	"github.com/Faultbox/glstudio/internal/engine/renderer"
	"github.com/Faultbox/glstudio/internal/engine/shader"
)

// programs serves exercise programs from a shader set, compiling each on
// first use.
type programs struct {
	set *shader.Set
}

func (p programs) Program(name string) (states.Program, error) {
	prog, err := p.set.Program(name)
	if err != nil {
		return nil, err
	}
	return prog, nil
}

// textures uploads textures to the current GL context.
type textures struct{}

func (textures) Texture(path string, fallback color.RGBA) states.Texture {
	return renderer.LoadTexture(path, fallback)
}
