package clock

import (
	"sync"
	"time"
)

// Mock is a Clock that only moves when told to. Tests drive it with Set and
// Advance; it is safe to read from other goroutines while being driven.
type Mock struct {
	mu  sync.RWMutex
	now time.Time
}

// NewMock returns a Mock frozen at start
func NewMock(start time.Time) *Mock {
	return &Mock{now: start}
}

func (m *Mock) Now() time.Time {
	m.mu.RLock()
	t := m.now
	m.mu.RUnlock()
	return t
}

// Set jumps to t, backwards included
func (m *Mock) Set(t time.Time) {
	m.mu.Lock()
	m.now = t
	m.mu.Unlock()
}

// Advance moves the clock forward by d and returns the new reading
func (m *Mock) Advance(d time.Duration) time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
	return m.now
}

// AdvanceSeconds is Advance for fractional seconds
func (m *Mock) AdvanceSeconds(s float64) time.Time {
	return m.Advance(Duration(s))
}
