package animation

import (
	"math/rand"
	"time"
)

// Bird: descends from above on a four-point path, hops toward the duck
// on a half-second cadence while cycling chirp/hop/peck poses, then
// climbs back out.
var birdBehavior = behavior{
	frameDur:    120 * time.Millisecond,
	speed:       0.7,
	wobbleAmp:   0.6,
	wobbleFreq:  4.0,
	interactFor: 4 * time.Second,
	tint:        ColorOrange,

	buildArrival:  birdArrival,
	beginInteract: birdBeginHopping,
	interact:      birdHop,
	buildLeave:    birdLeave,
	frame:         birdFrame,
}

const (
	birdHopEvery = 500 * time.Millisecond
	birdHopStep  = 2.0
)

// birdGroundSprites is the modulo-4 pose schedule while grounded.
var birdGroundSprites = []string{"bird_chirp", "bird_hop", "bird_peck", "bird_hop"}

func birdArrival(a *Animator) {
	fromLeft := rand.Intn(2) == 0
	startX := -2.0
	dir := 1.0
	if !fromLeft {
		startX = float64(a.width + 1)
		dir = -1.0
	}
	ground := float64(a.height - 3)
	landX := float64(a.width)/2 + dir*(rand.Float64()*8-10)

	// Altitude steps down waypoint by waypoint: a glide, not a dive.
	a.setPath([]Waypoint{
		{X: startX, Y: 1},
		{X: startX + dir*float64(a.width)/4, Y: ground / 3},
		{X: startX + dir*float64(a.width)/2, Y: ground * 2 / 3},
		{X: landX, Y: ground},
	})
}

func birdBeginHopping(a *Animator, duckX, duckY int) {
	a.nextHop = a.clk.Now()
	a.hopCount = 0
	a.raiseCue(CueChirp)
}

func birdHop(a *Animator, duckX, duckY int) {
	b := a.behavior()
	if a.phaseElapsed() >= b.interactFor {
		a.leave(duckX, duckY)
		return
	}

	now := a.clk.Now()
	if now.Before(a.nextHop) {
		return
	}
	a.nextHop = now.Add(birdHopEvery)
	a.hopCount++

	// Discrete hop toward the duck's column, never past it.
	dx := float64(duckX) - a.x
	switch {
	case dx > birdHopStep:
		a.x += birdHopStep
	case dx < -birdHopStep:
		a.x -= birdHopStep
	default:
		a.x = float64(duckX)
	}

	if a.hopCount%4 == 0 {
		a.raiseCue(CueChirp)
	}
}

func birdLeave(a *Animator, duckX, duckY int) {
	exitX := -3.0
	dir := -1.0
	if a.x > float64(a.width)/2 {
		exitX = float64(a.width + 2)
		dir = 1.0
	}
	// Ascend first, then out.
	a.setPath([]Waypoint{
		{X: a.x, Y: a.y},
		{X: a.x + dir*5, Y: 2},
		{X: exitX, Y: 1},
	})
}

func birdFrame(a *Animator) {
	if a.phase == PhaseInteracting {
		a.spriteKey = birdGroundSprites[a.hopCount%len(birdGroundSprites)]
		return
	}
	if a.frameIndex%2 == 0 {
		a.spriteKey = "bird_fly_1"
	} else {
		a.spriteKey = "bird_fly_2"
	}
}
