package animation

import (
	"time"

	"github.com/lixenwraith/duckpond/engine"
	"github.com/lixenwraith/duckpond/sprite"
)

// behavior is the per-kind function table. All entries are optional
// except frameDur; nil hooks fall back to the shared defaults in
// Animator.Update (path-following arrival and departure, fixed-hold
// interaction).
type behavior struct {
	frameDur    time.Duration
	speed       float64
	wobbleAmp   float64
	wobbleFreq  float64
	interactFor time.Duration
	tint        Color

	buildArrival  func(a *Animator)
	arrive        func(a *Animator) bool
	beginInteract func(a *Animator, duckX, duckY int)
	interact      func(a *Animator, duckX, duckY int)
	buildLeave    func(a *Animator, duckX, duckY int)
	leaveStep     func(a *Animator) bool
	frame         func(a *Animator)

	// update replaces the whole per-tick routine including phase
	// bookkeeping. Only the breeze uses it.
	update func(a *Animator, duckX, duckY int)
}

// behaviors is the static dispatch table, indexed by Kind. Populated in
// init from the per-kind files (the hooks reach back into the table
// through Animator, so it cannot be a composite literal); never mutated
// afterwards.
var behaviors [kindCount]behavior

func init() {
	behaviors = [kindCount]behavior{
		KindButterfly: butterflyBehavior,
		KindBird:      birdBehavior,
		KindVisitor:   visitorBehavior,
		KindShiny:     shinyBehavior,
		KindBreeze:    breezeBehavior,
		KindCrumbs:    crumbsBehavior,
		KindNoise:     noiseBehavior,
		KindDream:     dreamBehavior,
	}
}

// newAnimator builds a waiting animator with its kind's tuning applied.
func newAnimator(eventID string, kind Kind, width, height int, clk engine.Clock) *Animator {
	b := &behaviors[kind]
	return &Animator{
		eventID:    eventID,
		kind:       kind,
		width:      width,
		height:     height,
		clk:        clk,
		phase:      PhaseWaiting,
		speed:      b.speed,
		wobbleAmp:  b.wobbleAmp,
		wobbleFreq: b.wobbleFreq,
		color:      b.tint,
	}
}

// spriteRows resolves a frame key against the sprite registry.
func spriteRows(key string) []string {
	return sprite.Get(key)
}

// setScript installs a keyframe script and rewinds the step cursor so
// the first step's cue fires on entry.
func (a *Animator) setScript(script []Keyframe) {
	a.script = script
	a.scriptIndex = -1
}

// scriptStep drives a keyframe-script interaction: the sprite key
// follows the step active at the phase's elapsed time, each step's cue
// fires once on entry, and the animator leaves once the script runs
// out. Shared by the visitor, crumbs, noise and dream kinds.
func scriptStep(a *Animator, duckX, duckY int) {
	kf, index, ok := keyframeAt(a.script, a.phaseElapsed())
	if !ok {
		a.leave(duckX, duckY)
		return
	}
	a.spriteKey = kf.SpriteKey
	if index != a.scriptIndex {
		a.scriptIndex = index
		a.x += kf.X
		a.y += kf.Y
		a.raiseCue(kf.Cue)
	}
}
