package render

// Color is a palette entry; each canvas maps it to its own color model
type Color uint8

const (
	ColorDefault Color = iota
	ColorCurve
	ColorControl
	ColorSeparator
	ColorBall
	ColorBasket
	ColorText
	ColorHighlight
	ColorToolbar
	ColorDebug
)

// RGB returns the 8-bit channels of a palette entry
func (c Color) RGB() (r, g, b uint8) {
	switch c {
	case ColorCurve:
		return 191, 85, 64 // hsl(10, 50%, 50%)
	case ColorControl:
		return 0, 128, 0
	case ColorSeparator:
		return 255, 0, 0
	case ColorBall:
		return 255, 140, 0
	case ColorBasket:
		return 160, 110, 60
	case ColorHighlight:
		return 64, 96, 255
	case ColorToolbar:
		return 180, 180, 180
	case ColorDebug:
		return 128, 128, 128
	}
	return 230, 230, 230
}

// Style is a color with a stroke weight; Bold marks pressed/selected states
type Style struct {
	Color Color
	Width float64
	Bold  bool
}
