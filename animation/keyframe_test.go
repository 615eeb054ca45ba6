package animation

import (
	"testing"
	"time"
)

func TestKeyframeAt(t *testing.T) {
	script := []Keyframe{
		{SpriteKey: "a", Duration: 1 * time.Second},
		{SpriteKey: "b", Duration: 500 * time.Millisecond},
		{SpriteKey: "c", Duration: 2 * time.Second},
	}

	tests := []struct {
		name      string
		elapsed   time.Duration
		wantKey   string
		wantIndex int
		wantOK    bool
	}{
		{"Start of script", 0, "a", 0, true},
		{"Inside first step", 999 * time.Millisecond, "a", 0, true},
		{"Boundary enters next step", 1 * time.Second, "b", 1, true},
		{"Inside last step", 3 * time.Second, "c", 2, true},
		{"Past the end", 3500 * time.Millisecond, "", -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kf, index, ok := keyframeAt(script, tt.elapsed)
			if ok != tt.wantOK {
				t.Fatalf("Expected ok=%v, got %v", tt.wantOK, ok)
			}
			if index != tt.wantIndex {
				t.Errorf("Expected index %d, got %d", tt.wantIndex, index)
			}
			if kf.SpriteKey != tt.wantKey {
				t.Errorf("Expected key %q, got %q", tt.wantKey, kf.SpriteKey)
			}
		})
	}
}

func TestKeyframeAtEmptyScript(t *testing.T) {
	if _, _, ok := keyframeAt(nil, 0); ok {
		t.Error("Expected miss for an empty script")
	}
}

func TestScriptTotals(t *testing.T) {
	tests := []struct {
		name   string
		script []Keyframe
		want   time.Duration
	}{
		{"Visitor", visitorScript, 4 * time.Second},
		{"Crumbs", crumbsScript, 3 * time.Second},
		{"Noise", noiseScript, 2100 * time.Millisecond},
		{"Dream", dreamScript, 4 * time.Second},
		{"Bad dream", badDreamScript, 3200 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scriptTotal(tt.script); got != tt.want {
				t.Errorf("Expected total %v, got %v", tt.want, got)
			}
		})
	}
}
