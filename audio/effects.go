package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// Effect timing. Every sound is short: these accompany one-shot
// animation cues, not music.
const (
	chirpNoteDuration = 70 * time.Millisecond
	chirpAttack       = 5 * time.Millisecond
	chirpRelease      = 40 * time.Millisecond

	quackDuration = 180 * time.Millisecond
	quackAttack   = 10 * time.Millisecond
	quackRelease  = 80 * time.Millisecond

	flutterDuration = 250 * time.Millisecond
	flutterAttack   = 60 * time.Millisecond
	flutterRelease  = 120 * time.Millisecond

	sparkleNoteDuration = 90 * time.Millisecond
	sparkleAttack       = 5 * time.Millisecond
	sparkleRelease      = 70 * time.Millisecond

	whooshDuration = 500 * time.Millisecond
	whooshAttack   = 200 * time.Millisecond
	whooshRelease  = 250 * time.Millisecond

	bangDuration = 220 * time.Millisecond
	bangAttack   = 2 * time.Millisecond
	bangRelease  = 180 * time.Millisecond

	munchDuration = 120 * time.Millisecond
	munchAttack   = 10 * time.Millisecond
	munchRelease  = 60 * time.Millisecond

	chimeNote1Duration = 100 * time.Millisecond
	chimeNote2Duration = 300 * time.Millisecond
	chimeAttack        = 5 * time.Millisecond
	chimeNote1Release  = 60 * time.Millisecond
	chimeNote2Release  = 220 * time.Millisecond
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope over a stream
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		var vol float64 = 1.0

		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps a streamer in a volume effect.
// math.Log2(0) is -Inf, so zero volume becomes silence instead.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Sound effect generators

// CreateChirpSound generates a rising two-note tweet for the bird
func CreateChirpSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// Two quick notes a fifth apart (E6 then B6)
	n1 := NewOscillator(1318.51, chirpNoteDuration, WaveSine, rate)
	n1Shaped := NewEnvelope(n1, chirpNoteDuration, chirpAttack, chirpRelease, rate)
	n2 := NewOscillator(1975.53, chirpNoteDuration, WaveSine, rate)
	n2Shaped := NewEnvelope(n2, chirpNoteDuration, chirpAttack, chirpRelease, rate)

	sequence := beep.Seq(n1Shaped, n2Shaped)
	return newVolume(sequence, cfg.EffectVolumes[SoundChirp]*cfg.MasterVolume)
}

// CreateQuackSound generates a low nasal honk for the visiting duck
func CreateQuackSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// A saw fundamental with a detuned octave gives the nasal edge
	fund := NewOscillator(220.0, quackDuration, WaveSaw, rate)
	fundShaped := NewEnvelope(fund, quackDuration, quackAttack, quackRelease, rate)
	over := NewOscillator(446.0, quackDuration, WaveSaw, rate)
	overShaped := NewEnvelope(over, quackDuration, quackAttack, quackRelease, rate)

	mixed := beep.Mix(
		newVolume(fundShaped, 0.7),
		newVolume(overShaped, 0.3),
	)
	return newVolume(mixed, cfg.EffectVolumes[SoundQuack]*cfg.MasterVolume)
}

// CreateFlutterSound generates a soft noise puff for butterfly wings
func CreateFlutterSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	noise := NewOscillator(0, flutterDuration, WaveNoise, rate)
	shaped := NewEnvelope(noise, flutterDuration, flutterAttack, flutterRelease, rate)

	return newVolume(shaped, cfg.EffectVolumes[SoundFlutter]*cfg.MasterVolume*0.4)
}

// CreateSparkleSound generates a quick ascending glissando for the shiny object
func CreateSparkleSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// Three sine notes stepping up an arpeggio (C7, E7, G7)
	freqs := []float64{2093.00, 2637.02, 3135.96}
	notes := make([]beep.Streamer, 0, len(freqs))
	for _, f := range freqs {
		osc := NewOscillator(f, sparkleNoteDuration, WaveSine, rate)
		notes = append(notes, NewEnvelope(osc, sparkleNoteDuration, sparkleAttack, sparkleRelease, rate))
	}

	return newVolume(beep.Seq(notes...), cfg.EffectVolumes[SoundSparkle]*cfg.MasterVolume)
}

// CreateWhooshSound generates a slow noise swell for the breeze
func CreateWhooshSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	noise := NewOscillator(0, whooshDuration, WaveNoise, rate)
	shaped := NewEnvelope(noise, whooshDuration, whooshAttack, whooshRelease, rate)

	return newVolume(shaped, cfg.EffectVolumes[SoundWhoosh]*cfg.MasterVolume*0.6)
}

// CreateBangSound generates a harsh burst for the loud noise event
func CreateBangSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	noise := NewOscillator(0, bangDuration, WaveNoise, rate)
	noiseShaped := NewEnvelope(noise, bangDuration, bangAttack, bangRelease, rate)
	thump := NewOscillator(70.0, bangDuration, WaveSine, rate)
	thumpShaped := NewEnvelope(thump, bangDuration, bangAttack, bangRelease, rate)

	mixed := beep.Mix(
		newVolume(noiseShaped, 0.6),
		newVolume(thumpShaped, 0.4),
	)
	return newVolume(mixed, cfg.EffectVolumes[SoundBang]*cfg.MasterVolume)
}

// CreateMunchSound generates a low square-wave nibble for eating crumbs
func CreateMunchSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	n1 := NewOscillator(160.0, munchDuration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, munchDuration, munchAttack, munchRelease, rate)
	n2 := NewOscillator(130.0, munchDuration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, munchDuration, munchAttack, munchRelease, rate)

	sequence := beep.Seq(n1Shaped, n2Shaped)
	return newVolume(sequence, cfg.EffectVolumes[SoundMunch]*cfg.MasterVolume)
}

// CreateChimeSound generates a two-note bell for the visitor's gift
func CreateChimeSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// First note (A5), second note (E6)
	n1 := NewOscillator(880.0, chimeNote1Duration, WaveSine, rate)
	n1Shaped := NewEnvelope(n1, chimeNote1Duration, chimeAttack, chimeNote1Release, rate)
	n2 := NewOscillator(1318.51, chimeNote2Duration, WaveSine, rate)
	n2Shaped := NewEnvelope(n2, chimeNote2Duration, chimeAttack, chimeNote2Release, rate)

	sequence := beep.Seq(n1Shaped, n2Shaped)
	return newVolume(sequence, cfg.EffectVolumes[SoundChime]*cfg.MasterVolume)
}

// GetSoundEffect returns the streamer for the given effect type
func GetSoundEffect(soundType SoundType, cfg *Config) beep.Streamer {
	switch soundType {
	case SoundChirp:
		return CreateChirpSound(cfg)
	case SoundQuack:
		return CreateQuackSound(cfg)
	case SoundFlutter:
		return CreateFlutterSound(cfg)
	case SoundSparkle:
		return CreateSparkleSound(cfg)
	case SoundWhoosh:
		return CreateWhooshSound(cfg)
	case SoundBang:
		return CreateBangSound(cfg)
	case SoundMunch:
		return CreateMunchSound(cfg)
	case SoundChime:
		return CreateChimeSound(cfg)
	default:
		return nil
	}
}
