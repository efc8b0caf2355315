package render

import (
	"fmt"
	"math"
	"strconv"

	"honnef.co/go/curve"

	"github.com/lixenwraith/ramp-basket/constants"
	"github.com/lixenwraith/ramp-basket/game"
	"github.com/lixenwraith/ramp-basket/status"
)

// curveSegments is the flattening resolution of the drawn ramp
const curveSegments = 64

// IconLabels names the toolbar icon of each mode
var IconLabels = map[game.InputMode]string{
	game.ModeCurve:   "+",
	game.ModeControl: "Arrow+",
	game.ModePlay:    "Play",
}

// CheckIcons fails when a toolbar mode has no icon
func CheckIcons() error {
	for _, m := range game.ToolbarModes {
		if IconLabels[m] == "" {
			return fmt.Errorf("missing toolbar icon for mode %s", m)
		}
	}
	return nil
}

// CurveRenderer draws the ramp and its sample points. Hidden until the ramp leaves the toolbar
type CurveRenderer struct{}

func (CurveRenderer) Render(snap game.Snapshot, c Canvas) {
	h := snap.Handles
	if snap.Session.Mode == game.ModeCurve && snap.PendingClicks == 1 && !game.InToolbar(h.P1) {
		c.Circle(h.P1, 4, Style{Color: ColorCurve, Width: 2})
	}
	if game.InToolbar(h.C2) {
		return
	}

	cubic := h.Cubic()
	prev := cubic.Eval(0)
	for i := 1; i <= curveSegments; i++ {
		next := cubic.Eval(float64(i) / curveSegments)
		c.Line(prev, next, Style{Color: ColorCurve, Width: 2})
		prev = next
	}

	for _, p := range snap.Points {
		c.FillCircle(curve.Pt(p.X, -p.Y), 3, Style{Color: ColorControl})
	}
}

// ControlsRenderer draws both handles with stems while editing
type ControlsRenderer struct{}

func (ControlsRenderer) Render(snap game.Snapshot, c Canvas) {
	h := snap.Handles
	if snap.Session.Mode != game.ModeControl || game.InToolbar(h.C2) {
		return
	}
	drawControl(c, h.P1, h.C1, snap.Selected == game.Control1)
	drawControl(c, h.P2, h.C2, snap.Selected == game.Control2)
}

func drawControl(c Canvas, anchor, handle curve.Point, pressed bool) {
	if game.InToolbar(anchor) {
		return
	}
	style := Style{Color: ColorControl, Width: 1}
	if pressed {
		style.Width = 5
		style.Bold = true
	}
	c.Circle(handle, constants.ControlRadius, style)
	c.Line(anchor, handle, Style{Color: ColorControl, Width: 1})
}

// BasketRenderer draws the basket walls and the dashed separator left of the drop exclusion zone
type BasketRenderer struct{}

func (BasketRenderer) Render(snap game.Snapshot, c Canvas) {
	outline := snap.Basket.Outline()
	for i := 0; i < len(outline)-1; i++ {
		c.Line(outline[i], outline[i+1], Style{Color: ColorBasket, Width: 3})
	}

	x := snap.Basket.X - constants.UIMargin
	step := snap.Height / constants.SeparatorDashes
	for i := 0; i < constants.SeparatorDashes; i += 2 {
		c.Line(curve.Pt(x, step*float64(i)), curve.Pt(x, step*float64(i+1)), Style{Color: ColorSeparator, Width: 5})
	}
}

// BallRenderer draws the ball with a spoke showing its rotation
type BallRenderer struct{}

func (BallRenderer) Render(snap game.Snapshot, c Canvas) {
	if snap.Session.Mode != game.ModePlay || !snap.HasBall || game.InToolbar(snap.Ball) {
		return
	}
	c.FillCircle(snap.Ball, constants.BallRadius, Style{Color: ColorBall})

	// physics angles turn counter-clockwise with Y up
	spoke := curve.Pt(
		snap.Ball.X+constants.BallRadius*math.Cos(snap.BallAngle),
		snap.Ball.Y-constants.BallRadius*math.Sin(snap.BallAngle),
	)
	c.Line(snap.Ball, spoke, Style{Color: ColorText, Width: 2})
}

// HUDRenderer draws score lines and the round banner
type HUDRenderer struct{}

func (HUDRenderer) Render(snap game.Snapshot, c Canvas) {
	s := snap.Session
	h := snap.Height

	c.Text(curve.Pt(constants.HUDTextLeft, h-constants.ScoreTextOffset), "Score: "+strconv.Itoa(s.Score), Style{Color: ColorText})
	c.Text(curve.Pt(constants.HUDTextLeft, h-constants.HighScoreTextOffset), "High Score: "+strconv.Itoa(s.HighScore), Style{Color: ColorText})

	banner := curve.Pt(snap.Width/2, h-constants.HighScoreTextOffset)
	switch {
	case s.HighScored:
		const text = "High Score!"
		box := curve.Rect{X0: banner.X - 5, Y0: h - 90, X1: banner.X + c.TextWidth(text) + 5, Y1: h - 50}
		c.Rect(box, Style{Color: ColorHighlight, Width: 1})
		c.Text(banner, text, Style{Color: ColorHighlight, Bold: true})
	case s.Scored:
		c.Text(banner, "Score!", Style{Color: ColorText, Bold: true})
	}
}

// ToolbarRenderer draws the mode icons, the active one pressed
type ToolbarRenderer struct{}

func (ToolbarRenderer) Render(snap game.Snapshot, c Canvas) {
	for i, m := range game.ToolbarModes {
		top := constants.UIMargin + float64(i)*game.ToolbarCell
		box := curve.Rect{
			X0: constants.UIMargin,
			Y0: top,
			X1: constants.UIMargin + constants.IconSize,
			Y1: top + constants.IconSize,
		}
		pressed := snap.Session.Mode == m
		style := Style{Color: ColorToolbar, Width: 1, Bold: pressed}
		if pressed {
			style.Color = ColorHighlight
			style.Width = 3
		}
		c.Rect(box, style)

		label := IconLabels[m]
		at := curve.Pt(box.Center().X-c.TextWidth(label)/2, box.Center().Y)
		c.Text(at, label, style)
	}
}

// DebugRenderer lists runtime metrics in the top-right corner
type DebugRenderer struct {
	metrics *status.Registry
	visible bool
}

func NewDebugRenderer(metrics *status.Registry, visible bool) *DebugRenderer {
	return &DebugRenderer{metrics: metrics, visible: visible}
}

func (d *DebugRenderer) IsVisible() bool { return d.visible }

// Toggle flips visibility
func (d *DebugRenderer) Toggle() { d.visible = !d.visible }

func (d *DebugRenderer) Render(snap game.Snapshot, c Canvas) {
	lines := d.metrics.Lines()
	lines = append(lines, "mode "+snap.Session.Mode.String())

	width := 0.0
	for _, l := range lines {
		width = max(width, c.TextWidth(l))
	}
	x := snap.Width - snap.Basket.Size - width - 2*constants.UIMargin
	for i, l := range lines {
		c.Text(curve.Pt(x, constants.UIMargin+float64(i)*constants.CellHeight), l, Style{Color: ColorDebug})
	}
}
