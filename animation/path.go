package animation

import "math"

// setPath installs a new path and places the animator on its first
// waypoint. Path builders pick the spawn point as waypoint zero, so the
// cursor starts at index one.
func (a *Animator) setPath(points []Waypoint) {
	a.path = points
	a.pathIndex = 0
	if len(points) == 0 {
		return
	}
	a.x = points[0].X
	a.y = points[0].Y
	a.pathIndex = 1
}

// moveAlongPath advances the position toward the current waypoint by the
// animator's speed, in a straight line. When the remaining distance is
// within one step the position snaps to the waypoint and the cursor
// advances. Returns true once the cursor has passed the last waypoint.
//
// The step is a fixed distance per call, not scaled by elapsed time, so
// a faster-polling host moves animators faster. Frame and phase timers
// read the clock instead; the mismatch is a deliberate compatibility
// choice, not an oversight.
func (a *Animator) moveAlongPath() bool {
	if a.pathIndex >= len(a.path) {
		return true
	}

	target := a.path[a.pathIndex]
	dx := target.X - a.x
	dy := target.Y - a.y
	dist := math.Hypot(dx, dy)

	// Snapping on dist == 0 before dividing keeps degenerate segments
	// (identical consecutive waypoints) from producing NaN positions.
	if dist <= a.speed {
		a.x = target.X
		a.y = target.Y
		a.pathIndex++
		return a.pathIndex >= len(a.path)
	}

	a.x += dx / dist * a.speed
	a.y += dy / dist * a.speed
	return false
}

// wobbleOffset is the sinusoidal vertical drift applied to the rendered
// position while a kind is in flight. It never feeds back into waypoint
// arithmetic; only the displayed row moves.
func (a *Animator) wobbleOffset() float64 {
	if a.wobbleAmp == 0 {
		return 0
	}
	if a.phase != PhaseArriving && a.phase != PhaseLeaving {
		return 0
	}
	elapsed := a.clk.Now().Sub(a.startTime).Seconds()
	return a.wobbleAmp * math.Sin(elapsed*a.wobbleFreq)
}
