package events

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/duckpond/engine"
)

const (
	// rollEvery is the cadence of chance rolls.
	rollEvery = 5 * time.Second

	// fireChance is the probability that any event fires on a roll.
	fireChance = 0.35
)

// Scheduler rolls the event table on a fixed cadence, honoring
// per-event cooldowns. At most one event fires per poll; the caller
// decides what to do with it. Single-goroutine use only.
type Scheduler struct {
	clk       engine.Clock
	rng       *rand.Rand
	lastRoll  time.Time
	lastFired map[string]time.Time
}

// NewScheduler creates a scheduler on the given clock. The seed fixes
// the roll sequence; pass something time-derived in production and a
// constant in tests.
func NewScheduler(clk engine.Clock, seed int64) *Scheduler {
	return &Scheduler{
		clk:       clk,
		rng:       rand.New(rand.NewSource(seed)),
		lastRoll:  clk.Now(),
		lastFired: make(map[string]time.Time),
	}
}

// Poll rolls for an event if a roll is due. Returns the fired event and
// true, or a zero Definition and false when nothing happened. Events on
// cooldown never fire; when every event is cooling down the roll is
// simply lost.
func (s *Scheduler) Poll() (Definition, bool) {
	now := s.clk.Now()
	if now.Sub(s.lastRoll) < rollEvery {
		return Definition{}, false
	}
	s.lastRoll = now

	if s.rng.Float64() >= fireChance {
		return Definition{}, false
	}

	candidates := s.eligible(now)
	if len(candidates) == 0 {
		return Definition{}, false
	}

	def := s.pickWeighted(candidates)
	s.lastFired[def.ID] = now
	return def, true
}

// eligible filters the table down to events off cooldown.
func (s *Scheduler) eligible(now time.Time) []Definition {
	out := make([]Definition, 0, len(Table))
	for _, def := range Table {
		if fired, ok := s.lastFired[def.ID]; ok && now.Sub(fired) < def.Cooldown {
			continue
		}
		out = append(out, def)
	}
	return out
}

// pickWeighted draws one definition proportionally to Weight.
func (s *Scheduler) pickWeighted(defs []Definition) Definition {
	var total float64
	for _, def := range defs {
		total += def.Weight
	}
	roll := s.rng.Float64() * total
	for _, def := range defs {
		roll -= def.Weight
		if roll < 0 {
			return def
		}
	}
	return defs[len(defs)-1]
}
