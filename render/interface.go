package render

import (
	"honnef.co/go/curve"

	"github.com/lixenwraith/ramp-basket/game"
)

// Canvas is a drawing surface measured in surface pixels, Y pointing down
type Canvas interface {
	Size() (width, height float64)
	Clear()
	Line(a, b curve.Point, style Style)
	Circle(center curve.Point, radius float64, style Style)
	FillCircle(center curve.Point, radius float64, style Style)
	Rect(r curve.Rect, style Style)
	Text(at curve.Point, text string, style Style)
	TextWidth(text string) float64
}

// SystemRenderer draws one layer of a frame
type SystemRenderer interface {
	Render(snap game.Snapshot, c Canvas)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}
