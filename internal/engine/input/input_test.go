package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRuneDown(t *testing.T) {
	assert.Equal(t, Event{Type: EventKeyDown, Key: KeyRune, Rune: 's'}, RuneDown('s'))
	assert.Equal(t, KeySpace, RuneDown(' ').Key)
}

func TestTrackerKeys(t *testing.T) {
	tr := NewTracker()
	tr.Apply([]Event{Press(KeyLeft), Press(KeyUp)})
	assert.True(t, tr.Held(KeyLeft))
	assert.True(t, tr.Held(KeyUp))

	tr.Apply([]Event{{Type: EventKeyUp, Key: KeyLeft}})
	assert.False(t, tr.Held(KeyLeft))
	assert.True(t, tr.Held(KeyUp))
}

func TestTrackerDrag(t *testing.T) {
	tr := NewTracker()
	tr.Apply([]Event{
		{Type: EventMouseDown, Button: ButtonLeft, MouseX: 10, MouseY: 20},
		{Type: EventMouseMove, MouseX: 30, MouseY: 40},
		{Type: EventMouseDown, Button: ButtonRight, MouseX: 30, MouseY: 40},
	})
	assert.Equal(t, ButtonLeft, tr.Dragging())
	x, y := tr.DragStart()
	assert.Equal(t, []int{10, 20}, []int{x, y})
	x, y = tr.Mouse()
	assert.Equal(t, []int{30, 40}, []int{x, y})

	// Releasing another button does not end the drag.
	tr.Apply([]Event{{Type: EventMouseUp, Button: ButtonRight}})
	assert.Equal(t, ButtonLeft, tr.Dragging())

	tr.Apply([]Event{{Type: EventMouseUp, Button: ButtonLeft, MouseX: 50, MouseY: 60}})
	assert.Equal(t, uint8(0), tr.Dragging())
}
