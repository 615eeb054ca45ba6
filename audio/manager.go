package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Manager owns the speaker and the mixer every effect plays through.
// The mixer runs for the life of the process; effects are short
// streamers added to it and dropped by the mixer once drained.
type Manager struct {
	mu          sync.Mutex
	cfg         *Config
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewManager creates a manager around the given config.
func NewManager(cfg *Config) *Manager {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Manager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer. Safe to call more
// than once; later calls are no-ops. With audio disabled in config it
// does nothing and Play becomes a no-op too.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized || !m.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(m.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Play queues one effect. Silently does nothing before Initialize,
// after Cleanup, or while muted; sound is best-effort flavor and must
// never block the game loop.
func (m *Manager) Play(soundType SoundType) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized || m.muted {
		return
	}
	streamer := GetSoundEffect(soundType, m.cfg)
	if streamer == nil {
		return
	}

	speaker.Lock()
	m.mixer.Add(streamer)
	speaker.Unlock()
}

// SetMuted toggles effect playback without touching the speaker.
func (m *Manager) SetMuted(muted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muted = muted
}

// Muted reports the current mute state.
func (m *Manager) Muted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.muted
}

// Cleanup drops all pending sound. beep offers no speaker close;
// clearing the mixer is the whole teardown.
func (m *Manager) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Lock()
	m.mixer.Clear()
	speaker.Unlock()
	m.initialized = false
}
