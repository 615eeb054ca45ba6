package audio

import (
	"encoding/json"
	"os"
	"strconv"
)

// Config holds audio tuning. Defaults are sensible; env variables
// override them for players who want a quieter pond.
type Config struct {
	Enabled       bool
	MasterVolume  float64 // 0.0 to 1.0
	EffectVolumes map[SoundType]float64
	SampleRate    int
}

// DefaultConfig returns the stock audio configuration.
func DefaultConfig() *Config {
	effects := make(map[SoundType]float64, len(AllSounds))
	for _, s := range AllSounds {
		effects[s] = 0.8
	}
	// The bang is startling on purpose but still shy of full volume.
	effects[SoundBang] = 0.6

	return &Config{
		Enabled:       true,
		MasterVolume:  0.7,
		EffectVolumes: effects,
		SampleRate:    48000,
	}
}

// LoadConfig builds a Config from defaults plus environment overrides:
// DUCKPOND_AUDIO_ENABLED, DUCKPOND_MASTER_VOLUME (0-100) and
// DUCKPOND_SFX_VOLUMES (a JSON map of effect name to 0.0-1.0).
func LoadConfig() *Config {
	cfg := DefaultConfig()

	if enabled := os.Getenv("DUCKPOND_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	if volume := os.Getenv("DUCKPOND_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = float64(val) / 100.0
			if cfg.MasterVolume < 0 {
				cfg.MasterVolume = 0
			}
			if cfg.MasterVolume > 1 {
				cfg.MasterVolume = 1
			}
		}
	}

	if effectVols := os.Getenv("DUCKPOND_SFX_VOLUMES"); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for _, s := range AllSounds {
				if v, ok := volumes[s.String()]; ok {
					cfg.EffectVolumes[s] = v
				}
			}
		}
	}

	if sampleRate := os.Getenv("DUCKPOND_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}
