// Package render composites the pond scene onto a tcell screen: the
// water and reeds backdrop, the resident duck, whichever event
// animation is live, and the message and status rows. It consumes
// semantic color tokens from the animation package and owns their
// mapping to terminal styles.
package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/muesli/reflow/wordwrap"

	"github.com/lixenwraith/duckpond/animation"
	"github.com/lixenwraith/duckpond/pet"
)

// Scene draws frames. It holds no game state beyond the screen and its
// current size; everything drawn is passed into Draw each frame.
type Scene struct {
	screen tcell.Screen
	width  int
	height int
	mono   bool
}

// NewScene wraps an initialized screen.
func NewScene(screen tcell.Screen) *Scene {
	s := &Scene{screen: screen}
	s.width, s.height = screen.Size()
	return s
}

// Resize records a new screen size.
func (s *Scene) Resize(width, height int) {
	s.width = width
	s.height = height
}

// SetMonochrome switches drawing to the terminal's default colors.
func (s *Scene) SetMonochrome(on bool) {
	s.mono = on
}

// style builds a palette style, or the terminal default in monochrome.
func (s *Scene) style(fg tcell.Color) tcell.Style {
	if s.mono {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Background(RgbBackground).Foreground(fg)
}

func (s *Scene) animStyle(c animation.Color) tcell.Style {
	if s.mono {
		return tcell.StyleDefault
	}
	return StyleFor(c)
}

// PlayfieldSize returns the cell area available to the duck and the
// animators: the screen minus the message and status rows.
func (s *Scene) PlayfieldSize() (int, int) {
	return s.width, s.height - 2
}

// Draw composites one frame. anim may be nil (no live event animation);
// message may be empty.
func (s *Scene) Draw(duck *pet.Duck, anim *animation.Animator, message, status string, paused bool) {
	s.screen.Clear()

	s.drawBackdrop()
	s.drawDuck(duck)
	if anim != nil {
		s.drawAnimator(anim)
	}
	s.drawMessageRow(message)
	s.drawStatusRow(status, paused)

	s.screen.Show()
}

// drawBackdrop paints the pond: open sky above, rippled water below,
// a bank at the bottom edge, reeds at both sides of the waterline.
func (s *Scene) drawBackdrop() {
	_, ph := s.PlayfieldSize()
	if ph < 4 {
		return
	}
	waterTop := ph * 2 / 3

	waterStyle := s.style(RgbWater)
	bankStyle := s.style(RgbBank)
	reedStyle := s.style(RgbReeds)

	for y := waterTop; y < ph-1; y++ {
		for x := 0; x < s.width; x++ {
			// A sparse tilted ripple pattern, stable frame to frame.
			if (x+y*3)%7 == 0 {
				s.screen.SetContent(x, y, '~', nil, waterStyle)
			}
		}
	}
	for x := 0; x < s.width; x++ {
		s.screen.SetContent(x, ph-1, '=', nil, bankStyle)
	}

	for _, x := range []int{0, 1, s.width - 2, s.width - 1} {
		if x < 0 || x >= s.width {
			continue
		}
		s.screen.SetContent(x, waterTop-1, ')', nil, reedStyle)
		s.screen.SetContent(x, waterTop, '|', nil, reedStyle)
	}
}

func (s *Scene) drawDuck(duck *pet.Duck) {
	if duck == nil {
		return
	}
	s.blit(duck.Sprite(), duck.X, duck.Y, s.style(RgbDuck))
}

func (s *Scene) drawAnimator(anim *animation.Animator) {
	if particles := anim.Particles(); particles != nil {
		style := s.animStyle(anim.Color())
		for _, p := range particles {
			s.set(int(p.X), int(p.Y), p.Char, style)
		}
		return
	}

	x, y := anim.Position()
	s.blit(anim.Sprite(), x, y, s.animStyle(anim.Color()))
}

// blit overlays sprite rows at a cell position. Spaces are transparent
// and anything off screen is clipped, never an error.
func (s *Scene) blit(rows []string, x, y int, style tcell.Style) {
	for dy, row := range rows {
		for dx, ch := range row {
			if ch == ' ' {
				continue
			}
			s.set(x+dx, y+dy, ch, style)
		}
	}
}

func (s *Scene) set(x, y int, ch rune, style tcell.Style) {
	_, ph := s.PlayfieldSize()
	if x < 0 || x >= s.width || y < 0 || y >= ph {
		return
	}
	s.screen.SetContent(x, y, ch, nil, style)
}

// drawMessageRow prints the current event message, word-wrapped down
// to one row of the screen width.
func (s *Scene) drawMessageRow(message string) {
	if message == "" || s.height < 2 {
		return
	}
	row := s.height - 2

	wrapped := wordwrap.String(message, s.width-2)
	line := wrapped
	if i := strings.IndexByte(wrapped, '\n'); i >= 0 {
		line = wrapped[:i]
	}

	style := s.style(RgbMessage)
	for i, ch := range line {
		if i+1 >= s.width {
			break
		}
		s.screen.SetContent(i+1, row, ch, nil, style)
	}
}

// drawStatusRow prints the key hints, with a pause marker when frozen.
func (s *Scene) drawStatusRow(status string, paused bool) {
	if s.height < 1 {
		return
	}
	row := s.height - 1

	style := s.style(RgbStatus)
	text := status
	if paused {
		text = "[PAUSED] " + text
		if !s.mono {
			style = style.Foreground(RgbPaused)
		}
	}
	for i, ch := range text {
		if i >= s.width {
			break
		}
		s.screen.SetContent(i, row, ch, nil, style)
	}
}
