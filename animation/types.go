package animation

// Phase is the lifecycle of an event animation. Transitions run strictly
// forward; once Finished the animator never mutates again.
type Phase uint8

const (
	PhaseWaiting Phase = iota
	PhaseArriving
	PhaseInteracting
	PhaseLeaving
	PhaseFinished
)

// String returns the lowercase phase name.
func (p Phase) String() string {
	switch p {
	case PhaseWaiting:
		return "waiting"
	case PhaseArriving:
		return "arriving"
	case PhaseInteracting:
		return "interacting"
	case PhaseLeaving:
		return "leaving"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Kind tags the creature or effect variant an Animator runs. Per-kind
// behavior lives in a static function table rather than subclassing.
type Kind uint8

const (
	KindButterfly Kind = iota
	KindBird
	KindVisitor
	KindShiny
	KindBreeze
	KindCrumbs
	KindNoise
	KindDream
	kindCount
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case KindButterfly:
		return "butterfly"
	case KindBird:
		return "bird"
	case KindVisitor:
		return "visitor"
	case KindShiny:
		return "shiny"
	case KindBreeze:
		return "breeze"
	case KindCrumbs:
		return "crumbs"
	case KindNoise:
		return "noise"
	case KindDream:
		return "dream"
	default:
		return "unknown"
	}
}

// Waypoint is one stop on an animator's path, in playfield cells.
// Positions are floats so sub-cell movement accumulates between frames.
type Waypoint struct {
	X, Y float64
}

// Particle is one drifting glyph of a particle-based animator (breeze).
// Particles have no identity: the set is rebuilt by spawn/prune each tick.
type Particle struct {
	X, Y  float64
	Char  rune
	vx    float64 // leftward drift per update call
	baseY float64 // wobble centerline
	phase float64 // per-particle wobble phase offset
}
