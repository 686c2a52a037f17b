package frame

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestTickOrder(t *testing.T) {
	s := NewScheduler()
	var calls []string
	s.Register("input", func(Frame) error { calls = append(calls, "input"); return nil })
	s.Register("update", func(Frame) error { calls = append(calls, "update"); return nil })
	s.Register("draw", func(Frame) error { calls = append(calls, "draw"); return nil })

	require.NoError(t, s.Tick(t0))
	assert.Equal(t, []string{"input", "update", "draw"}, calls)
}

func TestTickDelta(t *testing.T) {
	s := NewScheduler()
	var frames []Frame
	s.Register("rec", func(f Frame) error { frames = append(frames, f); return nil })

	require.NoError(t, s.Tick(t0))
	require.NoError(t, s.Tick(t0.Add(16*time.Millisecond)))
	require.NoError(t, s.Tick(t0.Add(50*time.Millisecond)))

	require.Len(t, frames, 3)
	assert.Equal(t, uint64(0), frames[0].Number)
	assert.Zero(t, frames[0].Delta)
	assert.Equal(t, 16*time.Millisecond, frames[1].Delta)
	assert.Equal(t, 34*time.Millisecond, frames[2].Delta)
	assert.InDelta(t, 0.034, frames[2].Seconds(), 1e-6)
	assert.Equal(t, uint64(2), frames[2].Number)
}

func TestTickClockGoingBack(t *testing.T) {
	s := NewScheduler()
	var last Frame
	s.Register("rec", func(f Frame) error { last = f; return nil })
	require.NoError(t, s.Tick(t0))
	require.NoError(t, s.Tick(t0.Add(-time.Second)))
	assert.Zero(t, last.Delta)
}

func TestUnregister(t *testing.T) {
	s := NewScheduler()
	n := 0
	id := s.Register("count", func(Frame) error { n++; return nil })
	require.NoError(t, s.Tick(t0))

	assert.False(t, s.Unregister(id+100), "never registered")
	assert.True(t, s.Unregister(id))
	assert.False(t, s.Unregister(id), "already removed")
	require.NoError(t, s.Tick(t0))
	assert.Equal(t, 1, n)
	assert.Zero(t, s.Len())
}

func TestUnregisterDuringTick(t *testing.T) {
	s := NewScheduler()
	var id ID
	var calls []string
	id = s.Register("once", func(Frame) error {
		calls = append(calls, "once")
		s.Unregister(id)
		return nil
	})
	s.Register("always", func(Frame) error { calls = append(calls, "always"); return nil })

	require.NoError(t, s.Tick(t0))
	require.NoError(t, s.Tick(t0))
	assert.Equal(t, []string{"once", "always", "always"}, calls)
}

func TestTickError(t *testing.T) {
	s := NewScheduler()
	boom := errors.New("boom")
	ran := false
	s.Register("bad", func(Frame) error { return boom })
	s.Register("after", func(Frame) error { ran = true; return nil })

	err := s.Tick(t0)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "bad")
	assert.False(t, ran)
}

func TestStats(t *testing.T) {
	s := NewScheduler()
	for i := 0; i < 100; i++ {
		require.NoError(t, s.Tick(t0.Add(time.Duration(i)*10*time.Millisecond)))
	}
	assert.Zero(t, s.Stats().FPS)

	require.NoError(t, s.Tick(t0.Add(time.Second)))
	st := s.Stats()
	assert.Equal(t, 100, st.FPS)
	assert.Equal(t, uint64(101), st.Frames)
	assert.Equal(t, 10*time.Millisecond, st.LastDelta)
}
