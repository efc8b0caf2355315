package game

import (
	"honnef.co/go/curve"

	"github.com/lixenwraith/ramp-basket/bezier"
	"github.com/lixenwraith/ramp-basket/scene"
)

// Snapshot is a read-only copy of everything a renderer draws, in screen space
type Snapshot struct {
	Width, Height float64

	Session  Session
	Handles  bezier.Handles
	Points   []curve.Point // physics space, as sampled
	Selected ControlID

	// PendingClicks is 1 between the two clicks of a Curve-mode entry
	PendingClicks int

	Basket scene.Basket

	HasBall   bool
	Ball      curve.Point
	BallAngle float64
	Animating bool
}

// Snapshot copies the current state for drawing
func (c *Controller) Snapshot() Snapshot {
	s := Snapshot{
		Width:         c.width,
		Height:        c.height,
		Session:       c.session,
		Handles:       c.handles,
		Points:        append([]curve.Point(nil), c.points.Points()...),
		Selected:      c.selected,
		PendingClicks: c.numInputs,
		Basket:        c.basket,
		Animating:     c.animating,
	}
	if c.ball != nil {
		p := c.ball.Position()
		s.HasBall = true
		s.Ball = curve.Pt(p.X, -p.Y)
		s.BallAngle = c.ball.Angle()
	}
	return s
}

func (c *Controller) Session() Session { return c.session }

func (c *Controller) Handles() bezier.Handles { return c.handles }

func (c *Controller) Basket() scene.Basket { return c.basket }

func (c *Controller) Selected() ControlID { return c.selected }

func (c *Controller) Animating() bool { return c.animating }

// Regenerations counts ramp resamples since start
func (c *Controller) Regenerations() int { return c.regenerations }

// PendingClicks is the Curve-mode click counter
func (c *Controller) PendingClicks() int { return c.numInputs }
