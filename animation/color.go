package animation

// Color is the semantic color token an animator reports for its sprite.
// The render layer maps tokens to terminal styles; keeping the enum here
// avoids a dependency from animation onto the renderer.
type Color uint8

const (
	ColorWhite Color = iota
	ColorYellow
	ColorOrange
	ColorRed
	ColorMagenta
	ColorCyan
	ColorBlue
	ColorGreen
	ColorGray
)

// String returns the color-name token.
func (c Color) String() string {
	switch c {
	case ColorWhite:
		return "white"
	case ColorYellow:
		return "yellow"
	case ColorOrange:
		return "orange"
	case ColorRed:
		return "red"
	case ColorMagenta:
		return "magenta"
	case ColorCyan:
		return "cyan"
	case ColorBlue:
		return "blue"
	case ColorGreen:
		return "green"
	case ColorGray:
		return "gray"
	default:
		return "white"
	}
}
