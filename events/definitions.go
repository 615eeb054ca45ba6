// Package events defines the ambient pond events and the scheduler
// that fires them. Events are flavor: each one carries a message for
// the status area and, for most of them, an animation the game runs
// through the animation factory. Events without an animation fall back
// to the message alone.
package events

import "time"

// Definition describes one ambient event.
type Definition struct {
	// ID keys the event; animated ids match the animation registry.
	ID string

	// Message is shown in the message row when the event fires.
	Message string

	// Weight is the relative chance of this event winning a roll.
	Weight float64

	// Cooldown is the minimum gap between two firings of this event.
	Cooldown time.Duration
}

// Table is the full event bank. Static configuration, never mutated.
var Table = []Definition{
	{ID: "butterfly", Message: "A butterfly flutters over the pond!", Weight: 1.5, Cooldown: 45 * time.Second},
	{ID: "bird", Message: "A little bird lands on the bank.", Weight: 1.2, Cooldown: 60 * time.Second},
	{ID: "duck_visitor", Message: "Another duck paddles over to say hello!", Weight: 0.6, Cooldown: 3 * time.Minute},
	{ID: "shiny_object", Message: "Something shiny glints on the bank...", Weight: 0.8, Cooldown: 90 * time.Second},
	{ID: "breeze", Message: "A breeze ripples across the water.", Weight: 1.5, Cooldown: 40 * time.Second},
	{ID: "crumbs", Message: "Someone scattered bread crumbs!", Weight: 1.0, Cooldown: 75 * time.Second},
	{ID: "loud_noise", Message: "A loud noise startles the pond!", Weight: 0.5, Cooldown: 2 * time.Minute},
	{ID: "dream", Message: "Cheese dozes off and starts to dream...", Weight: 0.7, Cooldown: 2 * time.Minute},
	{ID: "bad_dream", Message: "Cheese twitches in a bad dream!", Weight: 0.3, Cooldown: 4 * time.Minute},

	// Message-only events: no entry in the animation registry, so the
	// game shows the text and nothing else.
	{ID: "distant_quack", Message: "A quack echoes from across the water.", Weight: 0.8, Cooldown: 50 * time.Second},
	{ID: "ripple", Message: "Rings spread quietly across the pond.", Weight: 1.0, Cooldown: 35 * time.Second},
	{ID: "frog_croak", Message: "A frog croaks somewhere in the reeds.", Weight: 0.8, Cooldown: 55 * time.Second},
}

// Lookup returns the definition for an id.
func Lookup(id string) (Definition, bool) {
	for _, def := range Table {
		if def.ID == id {
			return def, true
		}
	}
	return Definition{}, false
}
