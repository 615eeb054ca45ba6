// Package pet is Cheese, the resident duck: a small wandering sprite
// that picks spots around the pond and waddles to them. The duck is the
// single position the animation engine targets; it knows nothing about
// events or animators.
package pet

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/lixenwraith/duckpond/engine"
	"github.com/lixenwraith/duckpond/sprite"
)

const (
	stepEvery  = 350 * time.Millisecond
	idleEvery  = 4 * time.Second
	frameEvery = 400 * time.Millisecond

	// The duck keeps off the playfield border and out of the top sky
	// rows where fliers live.
	marginX = 2
	minY    = 6
)

// Duck is the player's pond resident.
type Duck struct {
	X, Y int

	width, height int
	clk           engine.Clock

	targetX, targetY int
	facingLeft       bool
	walking          bool

	lastStep  time.Time
	restUntil time.Time
	frame     int
	lastFrame time.Time
}

// New places a duck at the pond center.
func New(width, height int, clk engine.Clock) *Duck {
	now := clk.Now()
	d := &Duck{
		width:     width,
		height:    height,
		clk:       clk,
		lastStep:  now,
		lastFrame: now,
	}
	d.X = width / 2
	d.Y = height - 4
	d.targetX = d.X
	d.targetY = d.Y
	return d
}

// Update advances the waddle: one cell toward the target per step
// interval, a rest once the target is reached, a fresh target once the
// rest is over.
func (d *Duck) Update() {
	now := d.clk.Now()

	if now.Sub(d.lastFrame) >= frameEvery {
		d.frame++
		d.lastFrame = now
	}

	if d.X == d.targetX && d.Y == d.targetY {
		d.walking = false
		if now.After(d.restUntil) {
			d.pickTarget(now)
		}
		return
	}

	if now.Sub(d.lastStep) < stepEvery {
		return
	}
	d.lastStep = now
	d.walking = true

	switch {
	case d.X < d.targetX:
		d.X++
		d.facingLeft = false
	case d.X > d.targetX:
		d.X--
		d.facingLeft = true
	case d.Y < d.targetY:
		d.Y++
	case d.Y > d.targetY:
		d.Y--
	}
}

// pickTarget chooses a new in-pond destination and schedules the rest
// after it is reached.
func (d *Duck) pickTarget(now time.Time) {
	d.targetX = marginX + rand.Intn(max(1, d.width-2*marginX))
	d.targetY = minY + rand.Intn(max(1, d.height-2-minY))
	d.restUntil = now.Add(idleEvery + time.Duration(rand.Intn(3000))*time.Millisecond)
}

// Resize clamps the duck and its target into a new playfield.
func (d *Duck) Resize(width, height int) {
	d.width = width
	d.height = height
	d.X = clamp(d.X, marginX, width-marginX-1)
	d.Y = clamp(d.Y, minY, height-2)
	d.targetX = clamp(d.targetX, marginX, width-marginX-1)
	d.targetY = clamp(d.targetY, minY, height-2)
}

// SpriteKey returns the current frame key, derived from facing,
// walking state and the frame counter.
func (d *Duck) SpriteKey() string {
	pose := "idle"
	if d.walking {
		pose = "walk"
	}
	dir := "right"
	if d.facingLeft {
		dir = "left"
	}
	return fmt.Sprintf("duck_%s_%s_%d", pose, dir, d.frame%2+1)
}

// Sprite returns the duck's current art rows.
func (d *Duck) Sprite() []string {
	return sprite.Get(d.SpriteKey())
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
