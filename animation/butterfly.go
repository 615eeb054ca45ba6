package animation

import (
	"math"
	"math/rand"
	"time"
)

// Butterfly: drifts in on a wavy path, orbits a point near the duck
// with a breathing radius, then flutters out the nearer edge. Its wing
// frames and its color cycle advance independently.
var butterflyBehavior = behavior{
	frameDur:    150 * time.Millisecond,
	speed:       0.8,
	wobbleAmp:   1.0,
	wobbleFreq:  3.0,
	interactFor: 4 * time.Second,
	tint:        ColorYellow,

	buildArrival:  butterflyArrival,
	beginInteract: butterflyBeginOrbit,
	interact:      butterflyOrbit,
	buildLeave:    butterflyLeave,
	frame:         butterflyFrame,
}

// butterflyPalette is the independent color cycle; the frame key never
// consults it.
var butterflyPalette = []Color{ColorYellow, ColorMagenta, ColorCyan, ColorOrange}

const (
	butterflyOrbitStep    = 0.18 // radians per update call
	butterflyOrbitRadius  = 2.0
	butterflyOrbitBreathe = 1.0
)

// wavyPath lays waypoints on a straight line from start to end with a
// sine offset on y, so path-following alone produces a winding course.
func wavyPath(start, end Waypoint, segments int, amplitude float64) []Waypoint {
	points := make([]Waypoint, 0, segments+1)
	for i := 0; i <= segments; i++ {
		t := float64(i) / float64(segments)
		points = append(points, Waypoint{
			X: start.X + (end.X-start.X)*t,
			Y: start.Y + (end.Y-start.Y)*t + amplitude*math.Sin(t*math.Pi*2),
		})
	}
	return points
}

func butterflyArrival(a *Animator) {
	fromLeft := rand.Intn(2) == 0
	startX := -2.0
	if !fromLeft {
		startX = float64(a.width + 1)
	}
	start := Waypoint{X: startX, Y: 2 + rand.Float64()*3}
	end := Waypoint{
		X: float64(a.width)/2 + rand.Float64()*6 - 3,
		Y: float64(a.height)/2 - 2,
	}
	a.setPath(wavyPath(start, end, 6, 1.5))
	a.raiseCue(CueFlutter)
}

func butterflyBeginOrbit(a *Animator, duckX, duckY int) {
	a.orbitCX = float64(duckX) + 2
	a.orbitCY = float64(duckY) - 1
	if a.orbitCY < 1 {
		a.orbitCY = 1
	}
	a.orbitAngle = 0
}

func butterflyOrbit(a *Animator, duckX, duckY int) {
	b := a.behavior()
	if a.phaseElapsed() >= b.interactFor {
		a.leave(duckX, duckY)
		return
	}

	a.orbitAngle += butterflyOrbitStep
	// The radius itself breathes, so the orbit widens and tightens.
	radius := butterflyOrbitRadius + butterflyOrbitBreathe*math.Sin(a.phaseElapsed().Seconds()*2)
	// Terminal cells are taller than wide; stretch x to look circular.
	a.x = a.orbitCX + math.Cos(a.orbitAngle)*radius*2
	a.y = a.orbitCY + math.Sin(a.orbitAngle)*radius*0.5
}

func butterflyLeave(a *Animator, duckX, duckY int) {
	exitX := -3.0
	if a.x > float64(a.width)/2 {
		exitX = float64(a.width + 2)
	}
	start := Waypoint{X: a.x, Y: a.y}
	end := Waypoint{X: exitX, Y: 1 + rand.Float64()*2}
	a.setPath(wavyPath(start, end, 5, 2.0))
}

func butterflyFrame(a *Animator) {
	if a.frameIndex%2 == 0 {
		a.spriteKey = "butterfly_1"
	} else {
		a.spriteKey = "butterfly_2"
	}
	a.colorIndex = a.frameIndex / 2
	a.color = butterflyPalette[a.colorIndex%len(butterflyPalette)]
}
