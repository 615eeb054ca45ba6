package animation

import (
	"testing"
	"time"

	"github.com/lixenwraith/duckpond/engine"
)

func TestBreezeParticleCap(t *testing.T) {
	clk := engine.NewMockTimeProvider(time.Unix(1000, 0))
	a := NewWithClock("breeze", 60, 15, clk)
	a.Start()

	for i := 0; i < 4000 && a.Update(30, 12); i++ {
		clk.Advance(50 * time.Millisecond)
		if n := len(a.Particles()); n > breezeParticleCap {
			t.Fatalf("Particle count %d exceeds cap %d", n, breezeParticleCap)
		}
	}
}

func TestBreezeFinishCondition(t *testing.T) {
	start := time.Unix(1000, 0)
	clk := engine.NewMockTimeProvider(start)
	a := NewWithClock("breeze", 60, 15, clk)
	a.Start()

	for i := 0; i < 4000 && a.Update(30, 12); i++ {
		clk.Advance(50 * time.Millisecond)
	}

	if a.Phase() != PhaseFinished {
		t.Fatalf("Expected breeze to finish, got %v", a.Phase())
	}
	// Finishing requires both the elapsed duration and a near-empty
	// particle set; the clock check alone proves the first half, the
	// live set the second.
	if elapsed := clk.Now().Sub(start); elapsed < breezeDuration {
		t.Errorf("Expected finish only after %v, finished at %v", breezeDuration, elapsed)
	}
	if n := len(a.Particles()); n >= breezeFadeCount {
		t.Errorf("Expected fewer than %d particles at finish, got %d", breezeFadeCount, n)
	}
}

func TestBreezeParticlesDriftLeft(t *testing.T) {
	clk := engine.NewMockTimeProvider(time.Unix(1000, 0))
	a := NewWithClock("breeze", 60, 15, clk)
	a.Start()

	// Let a few particles spawn.
	for i := 0; i < 10; i++ {
		a.Update(30, 12)
		clk.Advance(100 * time.Millisecond)
	}
	before := append([]Particle(nil), a.Particles()...)
	if len(before) == 0 {
		t.Fatal("Expected particles to have spawned")
	}

	a.Update(30, 12)
	after := a.Particles()
	for i := range after {
		if i < len(before) && after[i].X >= before[i].X {
			t.Errorf("Expected particle %d to drift left, went %v -> %v", i, before[i].X, after[i].X)
		}
	}
}

func TestBreezeHasNoSprite(t *testing.T) {
	clk := engine.NewMockTimeProvider(time.Unix(1000, 0))
	a := NewWithClock("breeze", 60, 15, clk)
	a.Start()
	a.Update(30, 12)

	if rows := a.Sprite(); rows != nil {
		t.Errorf("Expected nil sprite for the particle kind, got %v", rows)
	}

	// And conversely, sprite kinds report no particles.
	b := NewWithClock("bird", 60, 15, clk)
	b.Start()
	b.Update(30, 12)
	if p := b.Particles(); p != nil {
		t.Errorf("Expected nil particles for a sprite kind, got %v", p)
	}
}
