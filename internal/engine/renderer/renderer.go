// Package renderer provides OpenGL rendering functionality.
package renderer

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/glstudio/internal/logger"
	"github.com/Faultbox/glstudio/pkg/geom"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	ClearColor [4]float32
	DepthTest  bool
	// SquareViewport keeps the drawing area square and centered.
	SquareViewport bool
}

// Renderer owns global GL state: viewport, clear color and depth test.
type Renderer struct {
	config   Config
	viewport geom.Rect
	device   *GLDevice
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.String("glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))),
	)

	// Point sprites take their size from the vertex shader.
	gl.Enable(gl.PROGRAM_POINT_SIZE)

	r := &Renderer{config: cfg, device: &GLDevice{}}
	r.Configure(cfg)
	return r, nil
}

// Configure applies per-exercise state. The window size is kept.
func (r *Renderer) Configure(cfg Config) {
	cfg.Width, cfg.Height = r.config.Width, r.config.Height
	r.config = cfg

	if cfg.DepthTest {
		gl.Enable(gl.DEPTH_TEST)
		gl.DepthFunc(gl.LESS)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}
	r.SetClearColor(cfg.ClearColor)
	r.Resize(cfg.Width, cfg.Height)
}

// Device returns the gpu.Device backed by this context.
func (r *Renderer) Device() *GLDevice {
	return r.device
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	if r.config.SquareViewport {
		r.viewport = geom.FitSquare(width, height)
	} else {
		r.viewport = geom.Rect{W: width, H: height}
	}
	r.applyViewport(r.viewport)
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Int("viewport_w", r.viewport.W),
		zap.Int("viewport_h", r.viewport.H),
	)
}

// Viewport returns the current drawing area.
func (r *Renderer) Viewport() geom.Rect {
	return r.viewport
}

// Size returns the window size in pixels.
func (r *Renderer) Size() (int, int) {
	return r.config.Width, r.config.Height
}

// Aspect returns the viewport width/height ratio.
func (r *Renderer) Aspect() float32 {
	return r.viewport.Aspect()
}

// SetClearColor changes the background color.
func (r *Renderer) SetClearColor(c [4]float32) {
	r.config.ClearColor = c
	gl.ClearColor(c[0], c[1], c[2], c[3])
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	r.applyViewport(r.viewport)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// ClearRect fills one rectangle of the window with color using the scissor
// test. The clear color is restored afterwards.
func (r *Renderer) ClearRect(rect geom.Rect, color [4]float32) {
	gl.Enable(gl.SCISSOR_TEST)
	r.applyViewport(rect)
	gl.Scissor(int32(rect.X), int32(rect.Y), int32(rect.W), int32(rect.H))
	gl.ClearColor(color[0], color[1], color[2], color[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.Disable(gl.SCISSOR_TEST)

	c := r.config.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])
}

// ReadPixels returns the window contents as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	if len(pixels) == 0 {
		return pixels, w, h
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}

// End finishes the current frame.
func (r *Renderer) End() {
	// Nothing to do for now - batched draws would be flushed here
}

func (r *Renderer) applyViewport(v geom.Rect) {
	gl.Viewport(int32(v.X), int32(v.Y), int32(v.W), int32(v.H))
}
