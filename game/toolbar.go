package game

import (
	"math"

	"honnef.co/go/curve"

	"github.com/lixenwraith/ramp-basket/constants"
)

// ToolbarCell is the vertical pitch of one toolbar icon
const ToolbarCell = constants.IconSize + constants.UIMargin

// ToolbarModes lists the icons top to bottom
var ToolbarModes = [constants.ToolbarButtons]InputMode{ModeCurve, ModeControl, ModePlay}

// InToolbar reports whether p lands on the toolbar column
func InToolbar(p curve.Point) bool {
	width := constants.UIMargin + constants.IconSize
	height := constants.ToolbarButtons * ToolbarCell
	return p.X <= width && p.Y <= height
}

// ToolbarMode maps a toolbar click height to the icon's mode
func ToolbarMode(y float64) InputMode {
	row := int(math.Floor(y / ToolbarCell))
	row = max(0, min(row, len(ToolbarModes)-1))
	return ToolbarModes[row]
}

// InBasketArea reports whether p falls in the drop exclusion zone next to the basket
func InBasketArea(p curve.Point, width float64) bool {
	return p.X > width-constants.BasketSize-constants.IconSize/2
}
