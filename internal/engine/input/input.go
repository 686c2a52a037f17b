// Package input defines the window-system independent input events and a
// small tracker for held keys and mouse drags.
package input

// EventType is the kind of an Event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseDown
	EventMouseUp
	EventMouseWheel
)

// Key identifies a non-printable key. Printable keys arrive as KeyRune with
// the character in Event.Rune.
type Key int

const (
	KeyUnknown Key = iota
	KeyRune
	KeyEscape
	KeySpace
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyTab
	KeyF12
)

// Mouse buttons, numbered like SDL.
const (
	ButtonLeft   uint8 = 1
	ButtonMiddle uint8 = 2
	ButtonRight  uint8 = 3
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    Key
	Rune   rune
	Width  int
	Height int
	MouseX int
	MouseY int
	// DX, DY hold the relative motion of mouse moves.
	DX, DY int
	Button uint8
	Wheel  float32
}

// Press returns a key press event.
func Press(k Key) Event {
	return Event{Type: EventKeyDown, Key: k}
}

// RuneDown returns a key press event for a printable character.
func RuneDown(r rune) Event {
	if r == ' ' {
		return Event{Type: EventKeyDown, Key: KeySpace, Rune: r}
	}
	return Event{Type: EventKeyDown, Key: KeyRune, Rune: r}
}

// Tracker keeps the held keys, the mouse position and the current drag.
type Tracker struct {
	held     map[Key]bool
	mouseX   int
	mouseY   int
	dragging uint8
	dragX    int
	dragY    int
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{held: make(map[Key]bool)}
}

// Apply updates the tracker with one frame of events.
func (t *Tracker) Apply(events []Event) {
	for _, e := range events {
		switch e.Type {
		case EventKeyDown:
			t.held[e.Key] = true
		case EventKeyUp:
			delete(t.held, e.Key)
		case EventMouseMove:
			t.mouseX, t.mouseY = e.MouseX, e.MouseY
		case EventMouseDown:
			t.mouseX, t.mouseY = e.MouseX, e.MouseY
			if t.dragging == 0 {
				t.dragging = e.Button
				t.dragX, t.dragY = e.MouseX, e.MouseY
			}
		case EventMouseUp:
			t.mouseX, t.mouseY = e.MouseX, e.MouseY
			if t.dragging == e.Button {
				t.dragging = 0
			}
		}
	}
}

// Held reports whether k is currently down.
func (t *Tracker) Held(k Key) bool {
	return t.held[k]
}

// Mouse returns the last known mouse position.
func (t *Tracker) Mouse() (int, int) {
	return t.mouseX, t.mouseY
}

// Dragging returns the button being dragged, or 0.
func (t *Tracker) Dragging() uint8 {
	return t.dragging
}

// DragStart returns where the current drag began.
func (t *Tracker) DragStart() (int, int) {
	return t.dragX, t.dragY
}
