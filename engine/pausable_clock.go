package engine

import (
	"sync"
	"time"
)

// PausableClock provides game time that freezes while paused. Animations
// read Now() through the Clock interface, so pausing the clock suspends
// every frame and phase timer at once without touching animator state.
type PausableClock struct {
	mu sync.RWMutex

	paused      bool
	pausedAt    time.Time     // real time when the current pause began
	totalPaused time.Duration // cumulative pause duration
}

// NewPausableClock creates a running (unpaused) clock
func NewPausableClock() *PausableClock {
	return &PausableClock{}
}

// Now returns current game time: real time minus all paused intervals.
// While paused it returns the frozen instant the pause began.
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.paused {
		return pc.pausedAt.Add(-pc.totalPaused)
	}
	return time.Now().Add(-pc.totalPaused)
}

// RealTime returns actual wall clock time, unaffected by pause
func (pc *PausableClock) RealTime() time.Time {
	return time.Now()
}

// Pause stops game time advancement. Pausing an already paused clock is a no-op.
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pc.paused {
		return
	}
	pc.paused = true
	pc.pausedAt = time.Now()
}

// Resume continues game time advancement. Resuming a running clock is a no-op.
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if !pc.paused {
		return
	}
	pc.totalPaused += time.Since(pc.pausedAt)
	pc.paused = false
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.paused
}

// TotalPaused returns cumulative pause time, including the current pause
func (pc *PausableClock) TotalPaused() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPaused
	if pc.paused {
		total += time.Since(pc.pausedAt)
	}
	return total
}
