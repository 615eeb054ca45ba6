package animation

import (
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/duckpond/engine"
)

// End-to-end shiny object run with the clock stepped in 0.1s
// increments: the sprite must pass through appear, shine and pickup in
// that order, and the whole animation must outlast five seconds.
func TestShinyObjectLifecycle(t *testing.T) {
	start := time.Unix(1000, 0)
	clk := engine.NewMockTimeProvider(start)
	a := NewWithClock("shiny_object", 60, 15, clk)
	if a == nil {
		t.Fatal("Expected animator for shiny_object")
	}
	a.Start()

	var stages []string
	for i := 0; i < 4000 && a.Update(30, 12); i++ {
		clk.Advance(100 * time.Millisecond)

		stage := ""
		switch key := a.SpriteKey(); {
		case key == "shiny_appear":
			stage = "appear"
		case strings.HasPrefix(key, "shiny_shine"):
			stage = "shine"
		case key == "shiny_pickup":
			stage = "pickup"
		}
		if stage != "" && (len(stages) == 0 || stages[len(stages)-1] != stage) {
			stages = append(stages, stage)
		}
	}

	want := []string{"appear", "shine", "pickup"}
	if len(stages) != len(want) {
		t.Fatalf("Expected stages %v, got %v", want, stages)
	}
	for i := range want {
		if stages[i] != want[i] {
			t.Errorf("Expected stage %d to be %q, got %q", i, want[i], stages[i])
		}
	}

	if a.Phase() != PhaseFinished {
		t.Errorf("Expected Finished, got %v", a.Phase())
	}
	if elapsed := clk.Now().Sub(start); elapsed < 5*time.Second {
		t.Errorf("Expected shiny run to last at least 5s, finished after %v", elapsed)
	}
}

func TestShinyStaysPut(t *testing.T) {
	clk := engine.NewMockTimeProvider(time.Unix(1000, 0))
	a := NewWithClock("shiny_object", 60, 15, clk)
	a.Start()

	startX, _ := a.Position()
	for i := 0; i < 4000 && a.Update(30, 12); i++ {
		clk.Advance(100 * time.Millisecond)
		if x, _ := a.Position(); x != startX {
			t.Fatalf("Expected no horizontal movement, drifted %d -> %d", startX, x)
		}
	}
}

func TestShinyColorCycles(t *testing.T) {
	clk := engine.NewMockTimeProvider(time.Unix(1000, 0))
	a := NewWithClock("shiny_object", 60, 15, clk)
	a.Start()

	seen := map[Color]bool{}
	for i := 0; i < 4000 && a.Update(30, 12); i++ {
		clk.Advance(100 * time.Millisecond)
		if a.Phase() == PhaseInteracting {
			seen[a.Color()] = true
		}
	}
	if len(seen) < 2 {
		t.Errorf("Expected the shine to cycle colors, saw %d", len(seen))
	}
}
