package animation

import (
	"sort"

	"github.com/lixenwraith/duckpond/engine"
)

// constructor builds a waiting animator for one event id.
type constructor func(eventID string, width, height int, clk engine.Clock) *Animator

// registry maps event ids to constructors. bad_dream wraps the dream
// constructor with the nightmare flag set; everything else is a plain
// kind binding. Static after init, never mutated.
var registry = map[string]constructor{
	"butterfly":    kindConstructor(KindButterfly),
	"bird":         kindConstructor(KindBird),
	"duck_visitor": kindConstructor(KindVisitor),
	"shiny_object": kindConstructor(KindShiny),
	"breeze":       kindConstructor(KindBreeze),
	"crumbs":       kindConstructor(KindCrumbs),
	"loud_noise":   kindConstructor(KindNoise),
	"dream":        kindConstructor(KindDream),
	"bad_dream": func(eventID string, width, height int, clk engine.Clock) *Animator {
		a := newAnimator(eventID, KindDream, width, height, clk)
		a.bad = true
		return a
	},
}

// New returns a fresh animator for the event id, in phase Waiting, or
// nil when the event has no animation. A nil result is not an error:
// the host falls back to text-only presentation.
func New(eventID string, width, height int) *Animator {
	return NewWithClock(eventID, width, height, engine.NewMonotonicTimeProvider())
}

// NewWithClock is New with an injected time source. Tests drive it with
// engine.MockTimeProvider to step animations deterministically.
func NewWithClock(eventID string, width, height int, clk engine.Clock) *Animator {
	build, ok := registry[eventID]
	if !ok {
		return nil
	}
	return build(eventID, width, height, clk)
}

// AnimatedEvents returns the sorted event ids that have animations.
func AnimatedEvents() []string {
	ids := make([]string, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func kindConstructor(kind Kind) constructor {
	return func(eventID string, width, height int, clk engine.Clock) *Animator {
		return newAnimator(eventID, kind, width, height, clk)
	}
}
