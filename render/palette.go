package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/duckpond/animation"
)

// RGB palette for the pond scene.
var (
	RgbBackground = tcell.NewRGBColor(16, 24, 32)   // deep night blue
	RgbWater      = tcell.NewRGBColor(40, 90, 140)  // pond surface
	RgbBank       = tcell.NewRGBColor(90, 75, 50)   // muddy bank
	RgbReeds      = tcell.NewRGBColor(60, 120, 60)  // reed green
	RgbDuck       = tcell.NewRGBColor(240, 220, 90) // Cheese is yellow
	RgbMessage    = tcell.NewRGBColor(230, 230, 230)
	RgbStatus     = tcell.NewRGBColor(150, 150, 150)
	RgbPaused     = tcell.NewRGBColor(255, 165, 0)

	rgbWhite   = tcell.NewRGBColor(235, 235, 235)
	rgbYellow  = tcell.NewRGBColor(250, 220, 60)
	rgbOrange  = tcell.NewRGBColor(255, 160, 40)
	rgbRed     = tcell.NewRGBColor(255, 80, 80)
	rgbMagenta = tcell.NewRGBColor(220, 100, 220)
	rgbCyan    = tcell.NewRGBColor(80, 210, 220)
	rgbBlue    = tcell.NewRGBColor(110, 150, 255)
	rgbGreen   = tcell.NewRGBColor(90, 220, 90)
	rgbGray    = tcell.NewRGBColor(140, 140, 140)
)

// StyleFor maps a semantic animation color token to a terminal style.
// The animation package stays free of tcell this way; only the
// renderer knows what "yellow" is on screen.
func StyleFor(c animation.Color) tcell.Style {
	base := tcell.StyleDefault.Background(RgbBackground)
	switch c {
	case animation.ColorYellow:
		return base.Foreground(rgbYellow)
	case animation.ColorOrange:
		return base.Foreground(rgbOrange)
	case animation.ColorRed:
		return base.Foreground(rgbRed)
	case animation.ColorMagenta:
		return base.Foreground(rgbMagenta)
	case animation.ColorCyan:
		return base.Foreground(rgbCyan)
	case animation.ColorBlue:
		return base.Foreground(rgbBlue)
	case animation.ColorGreen:
		return base.Foreground(rgbGreen)
	case animation.ColorGray:
		return base.Foreground(rgbGray)
	default:
		return base.Foreground(rgbWhite)
	}
}
