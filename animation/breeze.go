package animation

import (
	"math"
	"math/rand"
	"time"
)

// Breeze: the one kind that is not a sprite. It keeps a capped set of
// drifting particles spawned at the right edge and pruned past the
// left, and replaces the whole update routine: the shared phase
// machinery does not fit a swarm with no single position.
var breezeBehavior = behavior{
	frameDur: 100 * time.Millisecond,
	tint:     ColorCyan,

	buildArrival: breezeArrival,
	update:       breezeUpdate,
}

const (
	breezeDuration    = 6 * time.Second
	breezeParticleCap = 20
	breezeSpawnEvery  = 150 * time.Millisecond
	breezeFadeCount   = 3 // fewer live particles than this counts as died down
	breezeWobbleAmp   = 1.0
)

var breezeChars = []rune{'~', '-', '.', '\''}

func breezeArrival(a *Animator) {
	a.duration = breezeDuration
	a.lastSpawn = a.clk.Now()
	a.particles = a.particles[:0]
	a.raiseCue(CueWhoosh)
}

func breezeUpdate(a *Animator, duckX, duckY int) {
	now := a.clk.Now()
	elapsed := a.elapsed()

	// Spawn while the gust is still blowing, at a fixed cadence and
	// never past the cap.
	if elapsed < a.duration && len(a.particles) < breezeParticleCap &&
		now.Sub(a.lastSpawn) >= breezeSpawnEvery {
		a.lastSpawn = now
		a.particles = append(a.particles, newBreezeParticle(a.width, a.height))
	}

	// Drift and prune. Particles carry no identity; the live set is
	// rebuilt in place each tick.
	live := a.particles[:0]
	for _, p := range a.particles {
		p.X -= p.vx
		p.Y = p.baseY + breezeWobbleAmp*math.Sin(elapsed.Seconds()*2+p.phase)
		if p.X > -2 {
			live = append(live, p)
		}
	}
	a.particles = live

	// Phase bookkeeping is purely descriptive for the breeze: arriving
	// on the first tick, leaving once spawning has stopped.
	switch {
	case elapsed >= a.duration && len(a.particles) < breezeFadeCount:
		a.setPhase(PhaseFinished)
		a.particles = a.particles[:0]
	case elapsed >= a.duration:
		if a.phase != PhaseLeaving {
			a.setPhase(PhaseLeaving)
		}
	default:
		if a.phase == PhaseArriving {
			a.setPhase(PhaseInteracting)
		}
	}
}

func newBreezeParticle(width, height int) Particle {
	baseY := 1 + rand.Float64()*float64(height-3)
	return Particle{
		X:     float64(width + 1),
		Y:     baseY,
		Char:  breezeChars[rand.Intn(len(breezeChars))],
		vx:    0.5 + rand.Float64()*0.6,
		baseY: baseY,
		phase: rand.Float64() * math.Pi * 2,
	}
}
