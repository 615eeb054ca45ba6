package animation

import (
	"testing"
	"time"

	"github.com/lixenwraith/duckpond/engine"
)

func TestStartEntersArriving(t *testing.T) {
	for _, id := range AnimatedEvents() {
		t.Run(id, func(t *testing.T) {
			clk := engine.NewMockTimeProvider(time.Unix(1000, 0))
			a := NewWithClock(id, 60, 15, clk)
			if a == nil {
				t.Fatalf("Expected animator for %q", id)
			}
			if a.Phase() != PhaseWaiting {
				t.Errorf("Expected Waiting before Start, got %v", a.Phase())
			}
			a.Start()
			if a.Phase() != PhaseArriving {
				t.Errorf("Expected Arriving after Start, got %v", a.Phase())
			}
		})
	}
}

// The dispatch table is populated in init rather than a composite
// literal; an empty entry would silently degrade that kind to zero-value
// tuning instead of failing loudly.
func TestBehaviorTablePopulated(t *testing.T) {
	for k := Kind(0); k < kindCount; k++ {
		b := behaviors[k]
		if b.frameDur <= 0 {
			t.Errorf("Expected a frame duration for kind %v, got %v", k, b.frameDur)
		}
		if b.update == nil && b.buildArrival == nil && b.arrive == nil {
			t.Errorf("Expected kind %v to define an arrival hook", k)
		}
	}
}

func TestStartTwiceIsNoOp(t *testing.T) {
	a, clk := testAnimator(t, KindButterfly)
	a.Start()
	first := a.path

	clk.Advance(time.Second)
	a.Start()
	if a.Phase() != PhaseArriving {
		t.Errorf("Expected Arriving after second Start, got %v", a.Phase())
	}
	if len(a.path) != len(first) {
		t.Error("Expected second Start to leave the arrival path alone")
	}
}

func TestUpdateWhileWaiting(t *testing.T) {
	a, _ := testAnimator(t, KindBird)
	for i := 0; i < 3; i++ {
		if alive := a.Update(30, 12); !alive {
			t.Fatal("Expected Update to report alive while waiting")
		}
	}
	if a.Phase() != PhaseWaiting {
		t.Errorf("Expected Update before Start to be a no-op, got phase %v", a.Phase())
	}
}

// Every kind must run to Finished within a bounded number of polls, and
// Update must flip to false exactly when the phase first reaches
// Finished and stay false afterward.
func TestEveryKindTerminates(t *testing.T) {
	const maxCalls = 4000

	for _, id := range AnimatedEvents() {
		t.Run(id, func(t *testing.T) {
			clk := engine.NewMockTimeProvider(time.Unix(1000, 0))
			a := NewWithClock(id, 60, 15, clk)
			a.Start()

			calls := 0
			for a.Update(30, 12) {
				clk.Advance(50 * time.Millisecond)
				calls++
				if calls > maxCalls {
					t.Fatalf("Animator still running after %d calls, phase %v", maxCalls, a.Phase())
				}
			}

			if a.Phase() != PhaseFinished {
				t.Errorf("Expected Finished when Update returned false, got %v", a.Phase())
			}
			for i := 0; i < 3; i++ {
				if alive := a.Update(30, 12); alive {
					t.Error("Expected Update to keep returning false after Finished")
				}
			}
		})
	}
}

// Phases only ever move forward through the fixed sequence.
func TestPhaseOrderIsForwardOnly(t *testing.T) {
	for _, id := range AnimatedEvents() {
		t.Run(id, func(t *testing.T) {
			clk := engine.NewMockTimeProvider(time.Unix(1000, 0))
			a := NewWithClock(id, 60, 15, clk)
			a.Start()

			last := a.Phase()
			for i := 0; i < 4000 && a.Update(30, 12); i++ {
				clk.Advance(50 * time.Millisecond)
				if a.Phase() < last {
					t.Fatalf("Phase moved backward: %v after %v", a.Phase(), last)
				}
				last = a.Phase()
			}
		})
	}
}

func TestTakeCueClearsPending(t *testing.T) {
	a, _ := testAnimator(t, KindBird)
	a.Start()
	// Walk until the bird lands; landing raises the first chirp.
	clk := a.clk.(*engine.MockTimeProvider)
	for i := 0; i < 500 && a.Phase() == PhaseArriving; i++ {
		a.Update(30, 12)
		clk.Advance(50 * time.Millisecond)
	}
	if a.Phase() != PhaseInteracting {
		t.Fatalf("Expected bird to land, stuck in %v", a.Phase())
	}

	if cue := a.TakeCue(); cue != CueChirp {
		t.Errorf("Expected chirp on landing, got %v", cue)
	}
	if cue := a.TakeCue(); cue != CueNone {
		t.Errorf("Expected second TakeCue to return none, got %v", cue)
	}
}

func TestBirdHopsTowardDuck(t *testing.T) {
	a, clk := testAnimator(t, KindBird)
	a.Start()
	for i := 0; i < 500 && a.Phase() == PhaseArriving; i++ {
		a.Update(30, 12)
		clk.Advance(50 * time.Millisecond)
	}
	if a.Phase() != PhaseInteracting {
		t.Fatalf("Expected bird to land, stuck in %v", a.Phase())
	}

	duckX := 30
	before := a.x
	gapBefore := abs(duckX - int(before))
	// One hop cadence worth of updates.
	for i := 0; i < 12 && a.Phase() == PhaseInteracting; i++ {
		a.Update(duckX, 12)
		clk.Advance(50 * time.Millisecond)
	}
	gapAfter := abs(duckX - int(a.x))
	if gapAfter > gapBefore {
		t.Errorf("Expected bird to close on the duck, gap went %d -> %d", gapBefore, gapAfter)
	}
}

func TestVisitorScriptOrder(t *testing.T) {
	a, clk := testAnimator(t, KindVisitor)
	a.Start()
	for i := 0; i < 2000 && a.Phase() == PhaseArriving; i++ {
		a.Update(30, 12)
		clk.Advance(50 * time.Millisecond)
	}
	if a.Phase() != PhaseInteracting {
		t.Fatalf("Expected visitor to arrive, stuck in %v", a.Phase())
	}

	var keys []string
	for a.Phase() == PhaseInteracting {
		a.Update(30, 12)
		clk.Advance(100 * time.Millisecond)
		if n := len(keys); n == 0 || keys[n-1] != a.SpriteKey() {
			if a.Phase() == PhaseInteracting {
				keys = append(keys, a.SpriteKey())
			}
		}
	}

	want := []string{"visitor_quack", "visitor_happy", "visitor_gift"}
	if len(keys) != len(want) {
		t.Fatalf("Expected script keys %v, got %v", want, keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("Expected script step %d to be %q, got %q", i, want[i], keys[i])
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
