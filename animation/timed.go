package animation

import (
	"math/rand"
	"time"
)

// The timer-only kinds: crumbs, loud noise and the dream cloud never
// move. Each appears in place and plays a fixed keyframe script; their
// "arrival" is instantaneous (an empty path reports arrived at once)
// and "leaving" is simply being done.

var crumbsBehavior = behavior{
	frameDur: 250 * time.Millisecond,

	buildArrival:  crumbsArrival,
	beginInteract: crumbsBeginScript,
	interact:      scriptStep,
	leaveStep:     finishInPlace,
}

// crumbsScript: crumbs on the water 0-2s, eating 2-3s, gone after 3s.
var crumbsScript = []Keyframe{
	{SpriteKey: "crumbs_1", Duration: 1 * time.Second},
	{SpriteKey: "crumbs_2", Duration: 1 * time.Second},
	{SpriteKey: "crumbs_eat_1", Duration: 500 * time.Millisecond, Cue: CueMunch},
	{SpriteKey: "crumbs_eat_2", Duration: 500 * time.Millisecond},
}

func crumbsArrival(a *Animator) {
	a.x = 4 + rand.Float64()*float64(a.width-10)
	a.y = float64(a.height - 2)
	a.spriteKey = "crumbs_1"
	a.setPath(nil)
}

func crumbsBeginScript(a *Animator, duckX, duckY int) {
	a.setScript(crumbsScript)
}

var noiseBehavior = behavior{
	frameDur: 150 * time.Millisecond,
	tint:     ColorRed,

	buildArrival:  noiseArrival,
	beginInteract: noiseBeginScript,
	interact:      scriptStep,
	leaveStep:     finishInPlace,
}

// noiseScript: the bang, then the rattle dying off.
var noiseScript = []Keyframe{
	{SpriteKey: "noise_bang", Duration: 500 * time.Millisecond, Cue: CueBang},
	{SpriteKey: "noise_shake_1", Duration: 400 * time.Millisecond, X: 1},
	{SpriteKey: "noise_shake_2", Duration: 400 * time.Millisecond, X: -2},
	{SpriteKey: "noise_shake_1", Duration: 400 * time.Millisecond, X: 2},
	{SpriteKey: "noise_shake_2", Duration: 400 * time.Millisecond, X: -1},
}

func noiseArrival(a *Animator) {
	a.x = float64(a.width)/2 - 3
	a.y = 2
	a.spriteKey = "noise_bang"
	a.setPath(nil)
}

func noiseBeginScript(a *Animator, duckX, duckY int) {
	a.setScript(noiseScript)
}

var dreamBehavior = behavior{
	frameDur: 300 * time.Millisecond,
	tint:     ColorBlue,

	buildArrival:  dreamArrival,
	beginInteract: dreamBeginScript,
	interact:      scriptStep,
	leaveStep:     finishInPlace,
}

var (
	dreamScript = []Keyframe{
		{SpriteKey: "dream_1", Duration: 1 * time.Second},
		{SpriteKey: "dream_2", Duration: 1 * time.Second},
		{SpriteKey: "dream_1", Duration: 1 * time.Second},
		{SpriteKey: "dream_2", Duration: 1 * time.Second},
	}
	badDreamScript = []Keyframe{
		{SpriteKey: "dream_bad_1", Duration: 800 * time.Millisecond},
		{SpriteKey: "dream_bad_2", Duration: 800 * time.Millisecond},
		{SpriteKey: "dream_bad_1", Duration: 800 * time.Millisecond},
		{SpriteKey: "dream_bad_2", Duration: 800 * time.Millisecond},
	}
)

func dreamArrival(a *Animator) {
	// Position is refined once the duck's location is known.
	a.x = float64(a.width) / 2
	a.y = 2
	a.spriteKey = "dream_1"
	if a.bad {
		a.spriteKey = "dream_bad_1"
		a.color = ColorGray
	}
	a.setPath(nil)
}

func dreamBeginScript(a *Animator, duckX, duckY int) {
	// Hover just above the dozing duck.
	a.x = float64(duckX + 1)
	a.y = float64(duckY - 3)
	if a.y < 1 {
		a.y = 1
	}
	if a.bad {
		a.setScript(badDreamScript)
	} else {
		a.setScript(dreamScript)
	}
}

// finishInPlace is the leave step for kinds with nowhere to go.
func finishInPlace(a *Animator) bool {
	return true
}
