// Package frame runs per-frame callbacks in a fixed order and keeps frame
// timing statistics.
package frame

import (
	"fmt"
	"time"
)

// Frame describes one tick.
type Frame struct {
	Number uint64
	Time   time.Time
	// Delta is the time since the previous tick; zero on the first one.
	Delta time.Duration
}

// Seconds returns Delta in seconds.
func (f Frame) Seconds() float32 {
	return float32(f.Delta.Seconds())
}

// Func is called once per tick.
type Func func(f Frame) error

// ID identifies a registered callback.
type ID uint64

type entry struct {
	id   ID
	name string
	fn   Func
}

// Stats reports frame rate over the last full second.
type Stats struct {
	FPS       int
	LastDelta time.Duration
	Frames    uint64
}

// Scheduler calls registered callbacks once per Tick, in registration order.
type Scheduler struct {
	entries []entry
	nextID  ID

	number uint64
	last   time.Time

	windowStart time.Time
	windowCount int
	stats       Stats
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{nextID: 1}
}

// Register adds fn and returns its ID.
func (s *Scheduler) Register(name string, fn Func) ID {
	id := s.nextID
	s.nextID++
	s.entries = append(s.entries, entry{id: id, name: name, fn: fn})
	return id
}

// Unregister removes a callback and reports whether id was registered.
func (s *Scheduler) Unregister(id ID) bool {
	for i, e := range s.entries {
		if e.id == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of registered callbacks.
func (s *Scheduler) Len() int {
	return len(s.entries)
}

// Tick runs every callback with the frame for now. The first error stops the
// tick and is returned with the callback name.
func (s *Scheduler) Tick(now time.Time) error {
	f := Frame{Number: s.number, Time: now}
	if s.number > 0 {
		f.Delta = now.Sub(s.last)
		if f.Delta < 0 {
			f.Delta = 0
		}
	}
	s.number++
	s.last = now
	s.record(f)

	// Callbacks may unregister themselves.
	entries := append([]entry(nil), s.entries...)
	for _, e := range entries {
		if err := e.fn(f); err != nil {
			return fmt.Errorf("frame %d %s: %w", f.Number, e.name, err)
		}
	}
	return nil
}

func (s *Scheduler) record(f Frame) {
	s.stats.Frames = s.number
	s.stats.LastDelta = f.Delta
	if s.windowStart.IsZero() {
		s.windowStart = f.Time
		return
	}
	s.windowCount++
	if f.Time.Sub(s.windowStart) >= time.Second {
		s.stats.FPS = s.windowCount
		s.windowCount = 0
		s.windowStart = f.Time
	}
}

// Stats returns the current statistics.
func (s *Scheduler) Stats() Stats {
	return s.stats
}
