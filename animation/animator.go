// Package animation is the event animation engine: each ambient pond
// event (a butterfly drifting in, a bird landing, a gust of wind) gets a
// short-lived Animator that walks a sprite through arrival, interaction
// and departure phases against the wall clock. Animators are plain
// values owned by the caller; they hold no reference to the game world
// and learn the duck's position only through Update parameters.
package animation

import (
	"time"

	"github.com/lixenwraith/duckpond/engine"
)

const (
	// offscreenMargin is how far past the playfield edge a leaving
	// animator may drift before it is considered gone.
	offscreenMargin = 10

	// defaultInteract is the hold time for kinds without their own
	// interaction routine.
	defaultInteract = 2 * time.Second
)

// Animator runs one event animation. The zero value is not usable;
// construct through New or NewWithClock.
type Animator struct {
	eventID string
	kind    Kind
	width   int
	height  int
	clk     engine.Clock

	phase      Phase
	x, y       float64
	startTime  time.Time
	phaseStart time.Time

	spriteKey  string
	frameIndex int
	lastFrame  time.Time

	speed      float64
	wobbleAmp  float64
	wobbleFreq float64
	path       []Waypoint
	pathIndex  int

	color      Color
	colorIndex int
	pendingCue Cue

	// Per-kind scratch state. Only the fields the kind's behavior
	// touches are ever meaningful.
	orbitAngle  float64
	orbitCX     float64
	orbitCY     float64
	nextHop     time.Time
	hopCount    int
	script      []Keyframe
	scriptIndex int
	particles   []Particle
	lastSpawn   time.Time
	duration    time.Duration
	bad         bool
}

// EventID returns the event identifier this animator was created for.
func (a *Animator) EventID() string { return a.eventID }

// Kind returns the variant tag.
func (a *Animator) Kind() Kind { return a.kind }

// Phase returns the current lifecycle phase.
func (a *Animator) Phase() Phase { return a.phase }

// Position returns the cell the sprite's top-left row should be drawn
// at, truncated to ints with any in-flight wobble applied.
func (a *Animator) Position() (int, int) {
	return int(a.x), int(a.y + a.wobbleOffset())
}

// Sprite returns the rows of ASCII art for the current frame, or nil
// when there is nothing to draw (waiting, finished, or a particle kind).
func (a *Animator) Sprite() []string {
	if a.phase == PhaseWaiting || a.phase == PhaseFinished {
		return nil
	}
	if a.spriteKey == "" {
		return nil
	}
	return spriteRows(a.spriteKey)
}

// SpriteKey returns the current frame key. Empty while waiting.
func (a *Animator) SpriteKey() string { return a.spriteKey }

// Color returns the semantic color token for the current frame.
func (a *Animator) Color() Color { return a.color }

// Particles returns the live particle set for particle-driven kinds,
// nil for every sprite kind. Renderers branch on nil.
func (a *Animator) Particles() []Particle {
	if a.kind != KindBreeze {
		return nil
	}
	return a.particles
}

// TakeCue returns the pending sound cue and clears it. CueNone means
// nothing happened since the last call.
func (a *Animator) TakeCue() Cue {
	cue := a.pendingCue
	a.pendingCue = CueNone
	return cue
}

// raiseCue records a cue for the host to collect. A later cue in the
// same tick wins; cues are best-effort flavor, not a reliable queue.
func (a *Animator) raiseCue(cue Cue) {
	if cue != CueNone {
		a.pendingCue = cue
	}
}

// Start begins the animation: the phase moves to Arriving and the
// kind's arrival path is built. Starting an already started animator is
// a no-op.
func (a *Animator) Start() {
	if a.phase != PhaseWaiting {
		return
	}
	now := a.clk.Now()
	a.startTime = now
	a.phaseStart = now
	a.lastFrame = now
	a.phase = PhaseArriving

	b := a.behavior()
	if b.buildArrival != nil {
		b.buildArrival(a)
	}
}

// Update advances the animation one tick. duckX and duckY are the
// resident duck's current cell; kinds whose interaction targets the
// duck read them, the rest ignore them. Returns false once the
// animation has finished, on that call and every call after; the caller
// drops the animator then. Never returns an error and never panics on
// degenerate geometry.
func (a *Animator) Update(duckX, duckY int) bool {
	switch a.phase {
	case PhaseWaiting:
		return true
	case PhaseFinished:
		return false
	}

	b := a.behavior()
	if b.update != nil {
		b.update(a, duckX, duckY)
		return a.phase != PhaseFinished
	}

	a.advanceFrame(b)

	switch a.phase {
	case PhaseArriving:
		arrived := false
		if b.arrive != nil {
			arrived = b.arrive(a)
		} else {
			arrived = a.moveAlongPath()
		}
		if arrived {
			a.setPhase(PhaseInteracting)
			if b.beginInteract != nil {
				b.beginInteract(a, duckX, duckY)
			}
		}

	case PhaseInteracting:
		if b.interact != nil {
			b.interact(a, duckX, duckY)
		} else if a.phaseElapsed() >= b.interactFor {
			a.leave(duckX, duckY)
		}

	case PhaseLeaving:
		done := false
		if b.leaveStep != nil {
			done = b.leaveStep(a)
		} else {
			done = a.moveAlongPath()
		}
		if done || a.offscreen() {
			a.setPhase(PhaseFinished)
		}
	}

	return a.phase != PhaseFinished
}

// leave transitions into the Leaving phase and builds the departure
// path. Kinds call this from their interaction routines.
func (a *Animator) leave(duckX, duckY int) {
	a.setPhase(PhaseLeaving)
	b := a.behavior()
	if b.buildLeave != nil {
		b.buildLeave(a, duckX, duckY)
	}
}

func (a *Animator) setPhase(p Phase) {
	a.phase = p
	a.phaseStart = a.clk.Now()
}

// phaseElapsed is real clock time spent in the current phase.
func (a *Animator) phaseElapsed() time.Duration {
	return a.clk.Now().Sub(a.phaseStart)
}

// elapsed is real clock time since Start.
func (a *Animator) elapsed() time.Duration {
	return a.clk.Now().Sub(a.startTime)
}

// advanceFrame ticks the frame counter at the kind's frame duration,
// then lets the kind pick the sprite for the new state of the world.
func (a *Animator) advanceFrame(b *behavior) {
	now := a.clk.Now()
	if now.Sub(a.lastFrame) >= b.frameDur {
		a.frameIndex++
		a.lastFrame = now
	}
	if b.frame != nil {
		b.frame(a)
	}
}

// offscreen reports whether the position has drifted far enough past
// the horizontal playfield edges to count as departed.
func (a *Animator) offscreen() bool {
	return a.x < -offscreenMargin || a.x > float64(a.width+offscreenMargin)
}

func (a *Animator) behavior() *behavior {
	return &behaviors[a.kind]
}
