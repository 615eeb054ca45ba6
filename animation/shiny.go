package animation

import (
	"math/rand"
	"time"
)

// Shiny object: never moves horizontally. A half-second appear fade,
// an in-place three-frame shine cycle with a rolling color, then the
// glint floats straight up and winks out past a height threshold.
var shinyBehavior = behavior{
	frameDur:    200 * time.Millisecond,
	speed:       0.5,
	interactFor: 2500 * time.Millisecond,
	tint:        ColorYellow,

	buildArrival: shinyArrival,
	arrive:       shinyAppear,
	interact:     shinyShine,
	buildLeave:   shinyBeginFloat,
	leaveStep:    shinyFloatUp,
	frame:        shinyFrame,
}

const (
	shinyAppearFor = 500 * time.Millisecond
	shinyExitY     = 2.0
)

var (
	shinyFrames  = []string{"shiny_shine_1", "shiny_shine_2", "shiny_shine_3"}
	shinyPalette = []Color{ColorYellow, ColorWhite, ColorCyan}
)

func shinyArrival(a *Animator) {
	// Somewhere on the bank, clear of the playfield margins.
	a.x = 4 + rand.Float64()*float64(a.width-8)
	a.y = float64(a.height - 2)
	a.spriteKey = "shiny_appear"
}

// shinyAppear replaces path-following arrival with a timed fade-in.
func shinyAppear(a *Animator) bool {
	return a.phaseElapsed() >= shinyAppearFor
}

func shinyShine(a *Animator, duckX, duckY int) {
	b := a.behavior()
	if a.phaseElapsed() >= b.interactFor {
		a.raiseCue(CueSparkle)
		a.leave(duckX, duckY)
	}
}

func shinyBeginFloat(a *Animator, duckX, duckY int) {
	a.spriteKey = "shiny_pickup"
}

// shinyFloatUp drifts the glint straight up; done past the threshold.
func shinyFloatUp(a *Animator) bool {
	a.y -= a.speed
	return a.y < shinyExitY
}

func shinyFrame(a *Animator) {
	switch a.phase {
	case PhaseArriving:
		a.spriteKey = "shiny_appear"
	case PhaseInteracting:
		a.spriteKey = shinyFrames[a.frameIndex%len(shinyFrames)]
		a.color = shinyPalette[a.frameIndex%len(shinyPalette)]
	case PhaseLeaving:
		a.spriteKey = "shiny_pickup"
	}
}
