package animation

// Cue is a semantic sound token raised by animator behaviors (a bird
// chirping, a visitor quacking). The host maps cues to actual audio;
// this package never touches the speaker.
type Cue uint8

const (
	CueNone Cue = iota
	CueChirp
	CueQuack
	CueFlutter
	CueSparkle
	CueWhoosh
	CueBang
	CueMunch
	CueChime
)

// String returns the lowercase cue name.
func (c Cue) String() string {
	switch c {
	case CueChirp:
		return "chirp"
	case CueQuack:
		return "quack"
	case CueFlutter:
		return "flutter"
	case CueSparkle:
		return "sparkle"
	case CueWhoosh:
		return "whoosh"
	case CueBang:
		return "bang"
	case CueMunch:
		return "munch"
	case CueChime:
		return "chime"
	default:
		return "none"
	}
}
