// Package audio synthesizes the pond's sound effects with beep: short
// oscillator-plus-envelope streams mixed into a single speaker. There
// are no audio assets; every sound is generated.
package audio

// SoundType identifies a synthesized effect. The set mirrors the
// animation cues one to one.
type SoundType int

const (
	SoundChirp SoundType = iota
	SoundQuack
	SoundFlutter
	SoundSparkle
	SoundWhoosh
	SoundBang
	SoundMunch
	SoundChime
)

// String returns the lowercase effect name, as used in volume config.
func (s SoundType) String() string {
	switch s {
	case SoundChirp:
		return "chirp"
	case SoundQuack:
		return "quack"
	case SoundFlutter:
		return "flutter"
	case SoundSparkle:
		return "sparkle"
	case SoundWhoosh:
		return "whoosh"
	case SoundBang:
		return "bang"
	case SoundMunch:
		return "munch"
	case SoundChime:
		return "chime"
	default:
		return "unknown"
	}
}

// AllSounds lists every effect, in declaration order.
var AllSounds = []SoundType{
	SoundChirp, SoundQuack, SoundFlutter, SoundSparkle,
	SoundWhoosh, SoundBang, SoundMunch, SoundChime,
}
