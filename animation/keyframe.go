package animation

import "time"

// Keyframe is one step of a timed sprite script: hold SpriteKey at an
// optional position offset for Duration, raising Cue on entry. Visitor
// and crumbs interactions are keyframe scripts; movement-driven kinds
// use paths instead.
type Keyframe struct {
	X, Y      float64
	SpriteKey string
	Duration  time.Duration
	Cue       Cue
}

// keyframeAt returns the script step active at elapsed time and its
// index. ok is false once elapsed runs past the script's total duration
// (or for an empty script).
func keyframeAt(script []Keyframe, elapsed time.Duration) (kf Keyframe, index int, ok bool) {
	var acc time.Duration
	for i, step := range script {
		acc += step.Duration
		if elapsed < acc {
			return step, i, true
		}
	}
	return Keyframe{}, -1, false
}

// scriptTotal returns the summed duration of a script.
func scriptTotal(script []Keyframe) time.Duration {
	var acc time.Duration
	for _, step := range script {
		acc += step.Duration
	}
	return acc
}
