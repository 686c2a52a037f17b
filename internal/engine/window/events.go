package window

import (
	"github.com/Faultbox/glstudio/internal/engine/input"
	"github.com/veandco/go-sdl2/sdl"
)

var scancodes = map[sdl.Scancode]input.Key{
	sdl.SCANCODE_ESCAPE: input.KeyEscape,
	sdl.SCANCODE_SPACE:  input.KeySpace,
	sdl.SCANCODE_LEFT:   input.KeyLeft,
	sdl.SCANCODE_RIGHT:  input.KeyRight,
	sdl.SCANCODE_UP:     input.KeyUp,
	sdl.SCANCODE_DOWN:   input.KeyDown,
	sdl.SCANCODE_TAB:    input.KeyTab,
	sdl.SCANCODE_F12:    input.KeyF12,
}

// PollEvents drains the SDL queue into dst and returns it.
// The second result is true when the window was asked to close.
func (w *Window) PollEvents(dst []input.Event) ([]input.Event, bool) {
	dst = dst[:0]
	quit := false

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			dst = append(dst, input.Event{Type: input.EventQuit})
			quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				width, height := w.DrawableSize()
				dst = append(dst, input.Event{
					Type:   input.EventWindowResize,
					Width:  width,
					Height: height,
				})
			}

		case *sdl.KeyboardEvent:
			ev := keyEvent(e)
			if e.Type == sdl.KEYDOWN {
				ev.Type = input.EventKeyDown
			} else {
				ev.Type = input.EventKeyUp
			}
			dst = append(dst, ev)

		case *sdl.MouseMotionEvent:
			dst = append(dst, input.Event{
				Type:   input.EventMouseMove,
				MouseX: int(e.X),
				MouseY: int(e.Y),
				DX:     int(e.XRel),
				DY:     int(e.YRel),
			})

		case *sdl.MouseButtonEvent:
			t := input.EventMouseDown
			if e.Type == sdl.MOUSEBUTTONUP {
				t = input.EventMouseUp
			}
			dst = append(dst, input.Event{
				Type:   t,
				MouseX: int(e.X),
				MouseY: int(e.Y),
				Button: e.Button,
			})

		case *sdl.MouseWheelEvent:
			dst = append(dst, input.Event{
				Type:  input.EventMouseWheel,
				Wheel: float32(e.Y),
			})
		}
	}

	return dst, quit
}

func keyEvent(e *sdl.KeyboardEvent) input.Event {
	if k, ok := scancodes[e.Keysym.Scancode]; ok {
		ev := input.Event{Key: k}
		if k == input.KeySpace {
			ev.Rune = ' '
		}
		return ev
	}
	sym := rune(e.Keysym.Sym)
	if sym >= ' ' && sym < 0x7f {
		return input.Event{Key: input.KeyRune, Rune: sym}
	}
	return input.Event{Key: input.KeyUnknown}
}
