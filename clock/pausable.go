package clock

import (
	"sync"
	"sync/atomic"
	"time"
)

// Pausable provides pausable game time derived from a source clock
type Pausable struct {
	mu sync.RWMutex

	source Clock

	// Pause state
	isPaused        atomic.Bool
	pauseStartTime  time.Time     // When current pause started (source time)
	totalPausedTime time.Duration // Cumulative pause duration
}

// NewPausable creates a pausable clock over source, nil selects Default
func NewPausable(source Clock) *Pausable {
	if source == nil {
		source = Default
	}
	return &Pausable{source: source}
}

// Now returns current game time (frozen while paused)
func (pc *Pausable) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.isPaused.Load() {
		return pc.pauseStartTime.Add(-pc.totalPausedTime)
	}
	return pc.source.Now().Add(-pc.totalPausedTime)
}

// RealTime returns source time, unaffected by pause
func (pc *Pausable) RealTime() time.Time {
	return pc.source.Now()
}

// Pause stops game time advancement
func (pc *Pausable) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pc.isPaused.CompareAndSwap(false, true) {
		pc.pauseStartTime = pc.source.Now()
	}
}

// Resume continues game time advancement
func (pc *Pausable) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pc.isPaused.CompareAndSwap(true, false) {
		pc.totalPausedTime += pc.source.Now().Sub(pc.pauseStartTime)
		pc.pauseStartTime = time.Time{}
	}
}

// Toggle flips the pause state and returns the new state
func (pc *Pausable) Toggle() bool {
	if pc.IsPaused() {
		pc.Resume()
		return false
	}
	pc.Pause()
	return true
}

// IsPaused returns current pause state
func (pc *Pausable) IsPaused() bool {
	return pc.isPaused.Load()
}

// TotalPauseDuration returns cumulative pause time, including an ongoing pause
func (pc *Pausable) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPausedTime
	if pc.isPaused.Load() {
		total += pc.source.Now().Sub(pc.pauseStartTime)
	}
	return total
}

// CurrentPauseDuration returns duration of current pause (0 if not paused)
func (pc *Pausable) CurrentPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if !pc.isPaused.Load() {
		return 0
	}
	return pc.source.Now().Sub(pc.pauseStartTime)
}
