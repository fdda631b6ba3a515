package clock

import (
	"sync"
	"time"
)

// Clock supplies the current time to the game loop.
// Tests inject a Manual clock so decay and autosave are deterministic.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

// NewReal returns a Clock backed by time.Now.
func NewReal() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now()
}

// Manual is a virtual clock that only moves when told to.
type Manual struct {
	lock sync.Mutex
	now  time.Time
}

func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

func (m *Manual) Now() time.Time {
	m.lock.Lock()
	defer m.lock.Unlock()
	return m.now
}

// Advance moves the clock forward by d and returns the new time.
func (m *Manual) Advance(d time.Duration) time.Time {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.now = m.now.Add(d)
	return m.now
}

// Set moves the clock to t.
func (m *Manual) Set(t time.Time) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.now = t
}
