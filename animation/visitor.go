package animation

import (
	"math/rand"
	"time"
)

// Visiting duck: the slowest animator. Paddles in on four waypoints and
// stops short of center so the two ducks face each other, then runs a
// fixed quack/happy/gift script before paddling back out.
var visitorBehavior = behavior{
	frameDur: 250 * time.Millisecond,
	speed:    0.3,

	buildArrival:  visitorArrival,
	beginInteract: visitorBeginScript,
	interact:      scriptStep,
	buildLeave:    visitorLeave,
	frame:         visitorFrame,
}

// visitorScript is the time-boxed interaction: quack 0-1.5s, happy
// 1.5-3.0s, gift 3.0-4.0s.
var visitorScript = []Keyframe{
	{SpriteKey: "visitor_quack", Duration: 1500 * time.Millisecond, Cue: CueQuack},
	{SpriteKey: "visitor_happy", Duration: 1500 * time.Millisecond},
	{SpriteKey: "visitor_gift", Duration: 1000 * time.Millisecond, Cue: CueChime},
}

func visitorArrival(a *Animator) {
	fromLeft := rand.Intn(2) == 0
	water := float64(a.height - 2)
	startX := -3.0
	dir := 1.0
	if !fromLeft {
		startX = float64(a.width + 2)
		dir = -1.0
	}
	// The last waypoint stops a third short of center.
	stopX := float64(a.width)/2 - dir*float64(a.width)/6

	a.setPath([]Waypoint{
		{X: startX, Y: water},
		{X: startX + dir*float64(a.width)/5, Y: water - 1},
		{X: startX + dir*float64(a.width)/3, Y: water},
		{X: stopX, Y: water},
	})
}

func visitorBeginScript(a *Animator, duckX, duckY int) {
	a.setScript(visitorScript)
}

func visitorLeave(a *Animator, duckX, duckY int) {
	exitX := -4.0
	if a.x > float64(a.width)/2 {
		exitX = float64(a.width + 3)
	}
	a.setPath([]Waypoint{
		{X: a.x, Y: a.y},
		{X: exitX, Y: a.y},
	})
}

func visitorFrame(a *Animator) {
	// The interaction script owns the sprite key while interacting.
	if a.phase == PhaseInteracting {
		return
	}
	if a.frameIndex%2 == 0 {
		a.spriteKey = "visitor_swim_1"
	} else {
		a.spriteKey = "visitor_swim_2"
	}
}
