package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain pulls a streamer dry and returns every sample.
func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

func TestEverySoundHasAStreamer(t *testing.T) {
	cfg := DefaultConfig()
	for _, s := range AllSounds {
		t.Run(s.String(), func(t *testing.T) {
			streamer := GetSoundEffect(s, cfg)
			if streamer == nil {
				t.Fatalf("Expected streamer for %v", s)
			}
			samples := drain(streamer)
			if len(samples) == 0 {
				t.Error("Expected nonzero samples")
			}
			for i, sm := range samples {
				if math.IsNaN(sm[0]) || math.IsNaN(sm[1]) {
					t.Fatalf("NaN sample at %d", i)
				}
				if math.Abs(sm[0]) > 1.0 || math.Abs(sm[1]) > 1.0 {
					t.Fatalf("Sample %d clips: %v", i, sm)
				}
			}
		})
	}
}

func TestGetSoundEffectUnknown(t *testing.T) {
	if s := GetSoundEffect(SoundType(99), DefaultConfig()); s != nil {
		t.Error("Expected nil streamer for unknown sound type")
	}
}

func TestOscillatorDuration(t *testing.T) {
	rate := beep.SampleRate(48000)
	tests := []struct {
		name     string
		duration time.Duration
	}{
		{"Short", 10 * time.Millisecond},
		{"Typical", 200 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			osc := NewOscillator(440, tt.duration, WaveSine, rate)
			got := len(drain(osc))
			want := rate.N(tt.duration)
			if got != want {
				t.Errorf("Expected %d samples, got %d", want, got)
			}
		})
	}
}

func TestEnvelopeShapesAttack(t *testing.T) {
	rate := beep.SampleRate(48000)
	duration := 100 * time.Millisecond

	osc := NewOscillator(0, duration, WaveSquare, rate) // constant +1 input
	env := NewEnvelope(osc, duration, 50*time.Millisecond, 10*time.Millisecond, rate)
	samples := drain(env)

	if len(samples) == 0 {
		t.Fatal("Expected samples from enveloped stream")
	}
	// Early in the attack the level must sit well below the sustain.
	early := math.Abs(samples[10][0])
	mid := math.Abs(samples[len(samples)/2][0])
	if early >= mid {
		t.Errorf("Expected attack ramp, early %v >= mid %v", early, mid)
	}
}

func TestZeroVolumeIsSilent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MasterVolume = 0

	samples := drain(CreateQuackSound(cfg))
	for i, sm := range samples {
		if sm[0] != 0 || sm[1] != 0 {
			t.Fatalf("Expected silence at zero volume, sample %d is %v", i, sm)
		}
	}
}
