// Package game is the host loop: a tcell ticker frame loop with a
// separate input-polling goroutine. It owns the pausable clock, the
// resident duck, the event scheduler and at most one live event
// animator at a time, and wires animation cues to synth sounds.
package game

import (
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/duckpond/animation"
	"github.com/lixenwraith/duckpond/audio"
	"github.com/lixenwraith/duckpond/config"
	"github.com/lixenwraith/duckpond/engine"
	"github.com/lixenwraith/duckpond/events"
	"github.com/lixenwraith/duckpond/pet"
	"github.com/lixenwraith/duckpond/render"
)

const (
	messageFor = 6 * time.Second
	statusText = "q quit · p pause · m mute"
)

// Game runs the pond.
type Game struct {
	screen tcell.Screen
	scene  *render.Scene
	cfg    *config.Config

	clock *engine.PausableClock
	duck  *pet.Duck
	sched *events.Scheduler
	sound *audio.Manager

	// anim is the single live event animation, nil between events.
	anim *animation.Animator

	width, height int // playfield cells

	message      string
	messageUntil time.Time
	paused       bool
}

// New wires a game onto an initialized screen. sound may be a manager
// that was never Initialized; playing through it is a no-op then.
func New(screen tcell.Screen, cfg *config.Config, sound *audio.Manager) *Game {
	g := &Game{
		screen: screen,
		scene:  render.NewScene(screen),
		cfg:    cfg,
		clock:  engine.NewPausableClock(),
		sound:  sound,
	}
	g.scene.SetMonochrome(!cfg.Color)
	g.sched = events.NewScheduler(g.clock, time.Now().UnixNano())
	g.fitPlayfield()
	g.duck = pet.New(g.width, g.height, g.clock)
	return g
}

// fitPlayfield sizes the playfield to the smaller of the configured
// pond and what the terminal offers, minus the message/status rows.
func (g *Game) fitPlayfield() {
	sw, sh := g.screen.Size()
	g.width = min(g.cfg.Width, sw)
	g.height = min(g.cfg.Height, sh-2)
	if g.width < 20 {
		g.width = 20
	}
	if g.height < 10 {
		g.height = 10
	}
	g.scene.Resize(sw, sh)
}

// Run drives the frame loop until the player quits. Input is polled on
// its own goroutine feeding a channel: PollEvent blocks, the ticker
// must not.
func (g *Game) Run() error {
	frame := time.Duration(g.cfg.FrameMillis) * time.Millisecond
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				// Screen finalized; the loop below is already gone.
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !g.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			g.Tick()
		}
	}
}

// Tick advances one frame: duck waddle, live animation or scheduler
// roll, message expiry, then a full scene draw. While paused the clock
// is frozen, so updates run but nothing time-driven moves; drawing
// continues.
func (g *Game) Tick() {
	if !g.paused {
		g.duck.Update()

		if g.anim != nil {
			alive := g.anim.Update(g.duck.X, g.duck.Y)
			if cue := g.anim.TakeCue(); cue != animation.CueNone {
				g.sound.Play(soundFor(cue))
			}
			if !alive {
				slog.Debug("animation finished", "event", g.anim.EventID())
				g.anim = nil
			}
		} else if def, ok := g.sched.Poll(); ok {
			g.fireEvent(def)
		}

		if g.message != "" && g.clock.Now().After(g.messageUntil) {
			g.message = ""
		}
	}

	g.scene.Draw(g.duck, g.anim, g.message, statusText, g.paused)
}

// fireEvent shows the event message and starts its animation if one
// exists. A nil factory result means a text-only event; that is the
// designed fallback, not a failure.
func (g *Game) fireEvent(def events.Definition) {
	slog.Debug("event fired", "event", def.ID)
	g.message = def.Message
	g.messageUntil = g.clock.Now().Add(messageFor)

	if a := animation.NewWithClock(def.ID, g.width, g.height, g.clock); a != nil {
		a.Start()
		g.anim = a
	}
}

// TriggerEvent fires an event by id immediately, bypassing the
// scheduler. Unknown ids fall back to a plain message. Used by the
// preview tooling.
func (g *Game) TriggerEvent(id string) {
	def, ok := events.Lookup(id)
	if !ok {
		def = events.Definition{ID: id, Message: id}
	}
	g.fireEvent(def)
}

// Animating reports whether an event animation is currently live.
func (g *Game) Animating() bool {
	return g.anim != nil
}

// HandleEvent processes one input or resize event. Returns false when
// the player quits.
func (g *Game) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return false
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'p' || ev.Rune() == ' '):
			g.togglePause()
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'm':
			g.sound.SetMuted(!g.sound.Muted())
		}
	case *tcell.EventResize:
		g.fitPlayfield()
		g.duck.Resize(g.width, g.height)
		g.screen.Sync()
	}
	return true
}

// Paused reports whether the pond is frozen.
func (g *Game) Paused() bool {
	return g.paused
}

// togglePause freezes or thaws the game clock. Every animator and the
// scheduler read time through it, so one call suspends them all.
func (g *Game) togglePause() {
	g.paused = !g.paused
	if g.paused {
		g.clock.Pause()
	} else {
		g.clock.Resume()
	}
}

// soundFor maps an animation cue to its synth effect. The animation
// package raises semantic cues and never touches audio; this is the
// single point where the two meet.
func soundFor(cue animation.Cue) audio.SoundType {
	switch cue {
	case animation.CueChirp:
		return audio.SoundChirp
	case animation.CueQuack:
		return audio.SoundQuack
	case animation.CueFlutter:
		return audio.SoundFlutter
	case animation.CueSparkle:
		return audio.SoundSparkle
	case animation.CueWhoosh:
		return audio.SoundWhoosh
	case animation.CueBang:
		return audio.SoundBang
	case animation.CueMunch:
		return audio.SoundMunch
	default:
		return audio.SoundChime
	}
}
