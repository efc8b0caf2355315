package input

import (
	"github.com/gdamore/tcell/v2"
	"honnef.co/go/curve"
)

// PointerAction is the phase of a pointer event
type PointerAction uint8

const (
	PointerNone PointerAction = iota
	PointerDown
	PointerMove
	PointerUp
)

func (a PointerAction) String() string {
	switch a {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	}
	return "none"
}

// PointerEvent is a primary-button pointer event in surface pixels
type PointerEvent struct {
	Action PointerAction
	Pos    curve.Point
}

// Decoder turns tcell mouse reports, which carry button state rather than edges,
// into down/move/up events on a surface measured in pixels
type Decoder struct {
	surface    *Node
	cellWidth  float64
	cellHeight float64
	pressed    bool
}

// NewDecoder maps cells of the given pixel size onto surface, whose offsets are in cells
func NewDecoder(surface *Node, cellWidth, cellHeight float64) *Decoder {
	return &Decoder{
		surface:    surface,
		cellWidth:  cellWidth,
		cellHeight: cellHeight,
	}
}

// Pressed reports whether the primary button is held
func (d *Decoder) Pressed() bool {
	return d.pressed
}

// Decode converts one mouse event; ok is false for wheel-only or secondary button reports
func (d *Decoder) Decode(ev *tcell.EventMouse) (PointerEvent, bool) {
	cx, cy := ev.Position()
	pos := d.ToSurface(cx, cy)
	down := ev.Buttons()&tcell.Button1 != 0

	switch {
	case down && !d.pressed:
		d.pressed = true
		return PointerEvent{Action: PointerDown, Pos: pos}, true
	case !down && d.pressed:
		d.pressed = false
		return PointerEvent{Action: PointerUp, Pos: pos}, true
	case ev.Buttons()&^tcell.Button1 != 0 && !down:
		return PointerEvent{}, false
	}
	return PointerEvent{Action: PointerMove, Pos: pos}, true
}

// ToSurface maps a terminal cell to the surface pixel at the cell's center
func (d *Decoder) ToSurface(col, row int) curve.Point {
	lx, ly := d.surface.ToLocal(float64(col), float64(row))
	return curve.Pt((lx+0.5)*d.cellWidth, (ly+0.5)*d.cellHeight)
}
