// Package game holds the session state machine: it routes pointer input by mode,
// keeps the ramp and basket geometry in sync with the physics world, and runs the
// frame loop that scores a dropped ball.
package game

import (
	"math/rand"
	"sync/atomic"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"honnef.co/go/curve"

	"github.com/lixenwraith/ramp-basket/bezier"
	"github.com/lixenwraith/ramp-basket/config"
	"github.com/lixenwraith/ramp-basket/constants"
	"github.com/lixenwraith/ramp-basket/physics"
	"github.com/lixenwraith/ramp-basket/scene"
	"github.com/lixenwraith/ramp-basket/status"
)

// FrameRequester schedules a callback on the host's next display frame
type FrameRequester interface {
	RequestFrame(fn func())
}

// Options wires a Controller to its collaborators
type Options struct {
	Config  config.Config
	World   physics.World
	Frames  FrameRequester
	Log     *zap.Logger
	Metrics *status.Registry
	Rand    *rand.Rand
}

// Controller is the single writer of all game state. Every method must be called
// from the host's one input/frame goroutine
type Controller struct {
	physics config.PhysicsConfig
	world   physics.World
	scene   *scene.Builder
	frames  FrameRequester
	log     *zap.Logger
	rng     *rand.Rand

	session       Session
	handles       bezier.Handles
	points        *bezier.PointSet
	numInputs     int
	selected      ControlID
	regenerations int

	basket        scene.Basket
	width, height float64

	ball      physics.Body
	round     uuid.UUID
	animating bool

	stats controllerStats
}

type controllerStats struct {
	frames         *atomic.Int64
	drops          *atomic.Int64
	regenerations  *atomic.Int64
	steps          *atomic.Int64
	basketContacts *atomic.Int64
	groundContacts *atomic.Int64
	ballSpeed      *status.AtomicFloat
	animating      *atomic.Bool
}

func newControllerStats(r *status.Registry) controllerStats {
	return controllerStats{
		frames:         r.Ints.Get("frames"),
		drops:          r.Ints.Get("drops"),
		regenerations:  r.Ints.Get("curve.regenerations"),
		steps:          r.Ints.Get("physics.steps"),
		basketContacts: r.Ints.Get("contacts.basket"),
		groundContacts: r.Ints.Get("contacts.ground"),
		ballSpeed:      r.Floats.Get("ball.speed"),
		animating:      r.Bools.Get("animating"),
	}
}

// NewController creates a controller in Curve mode with an unplaced basket.
// Call Resize before routing input
func NewController(opts Options) *Controller {
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}
	if opts.Metrics == nil {
		opts.Metrics = status.NewRegistry()
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(1))
	}

	c := &Controller{
		physics: opts.Config.Physics,
		world:   opts.World,
		scene:   scene.NewBuilder(opts.World, opts.Log),
		frames:  opts.Frames,
		log:     opts.Log,
		rng:     opts.Rand,
		points:  bezier.NewPointSet(opts.Config.Curve.Points),
		basket:  scene.NewBasket(),
		session: Session{Mode: ModeCurve},
		stats:   newControllerStats(opts.Metrics),
	}
	c.world.OnBeginContact(c.onContact)
	return c
}

// Resize adopts new surface dimensions, keeps the basket on screen and rebuilds the boundary
func (c *Controller) Resize(width, height float64) bool {
	c.width, c.height = width, height

	moved := scene.Reposition(&c.basket, width, height, c.rng)
	c.scene.BuildBasket(c.basket)
	c.scene.BuildGround(width, height)

	c.log.Debug("surface resized",
		zap.Float64("width", width),
		zap.Float64("height", height),
		zap.Float64("basket_y", c.basket.Y),
		zap.Bool("basket_moved", moved),
	)
	return true
}

// PointerDown routes a press to the toolbar or the active mode. Returns true when a redraw is due
func (c *Controller) PointerDown(p curve.Point) bool {
	if InToolbar(p) {
		return c.SelectMode(ToolbarMode(p.Y))
	}
	return c.Press(p)
}

// PointerMove drags the selected handle; moves over the toolbar are ignored
func (c *Controller) PointerMove(p curve.Point) bool {
	if InToolbar(p) {
		return false
	}
	return c.Drag(p)
}

// PointerUp releases any selected handle
func (c *Controller) PointerUp() bool {
	old := c.selected
	c.selected = ControlNone
	return old != ControlNone
}

// SelectMode switches mode unconditionally and restarts curve point entry
func (c *Controller) SelectMode(m InputMode) bool {
	if !m.Valid() {
		return false
	}
	old := c.session.Mode
	c.session.Mode = m
	c.numInputs = 0

	if old != m {
		c.log.Debug("mode changed", zap.Stringer("from", old), zap.Stringer("to", m))
	}
	return old != m
}

// Press handles a press on the drawing area in the current mode
func (c *Controller) Press(p curve.Point) bool {
	switch c.session.Mode {
	case ModeCurve:
		if c.numInputs == 0 {
			c.handles.P1, c.handles.C1 = p, p
			c.numInputs = 1
			return false
		}
		c.handles.P2, c.handles.C2 = p, p
		c.numInputs = 0
		c.regenerate()
		return true

	case ModeControl:
		c.selected = ControlNone
		if p.Distance(c.handles.C1) <= constants.ControlRadius {
			c.selected = Control1
		}
		if p.Distance(c.handles.C2) <= constants.ControlRadius {
			c.selected = Control2
		}
		return c.selected != ControlNone

	case ModePlay:
		if InBasketArea(p, c.width) {
			return false
		}
		c.dropBall(p)
		return true
	}
	return false
}

// Drag moves the selected control handle and rebuilds the ramp live
func (c *Controller) Drag(p curve.Point) bool {
	if c.session.Mode != ModeControl {
		return false
	}
	switch c.selected {
	case Control1:
		c.handles.C1 = p
	case Control2:
		c.handles.C2 = p
	default:
		return false
	}
	c.regenerate()
	return true
}

// regenerate resamples the whole ramp and replaces its collision geometry
func (c *Controller) regenerate() {
	c.points.Regenerate(c.handles)
	built := c.scene.BuildCurve(c.handles, c.points.Points())
	c.regenerations++
	c.stats.regenerations.Add(1)

	c.log.Debug("curve regenerated",
		zap.Uint64("fingerprint", c.points.Fingerprint()),
		zap.Bool("geometry", built),
		zap.Int("regenerations", c.regenerations),
	)
}

// dropBall replaces the ball and starts the frame loop if it is idle
func (c *Controller) dropBall(p curve.Point) {
	c.session.Score = 0
	c.session.Scored = false
	c.session.HighScored = false

	if c.ball != nil {
		c.world.DestroyBody(c.ball)
	}
	c.ball = c.world.CreateBody(
		physics.BodyDef{
			Type:           physics.BodyDynamic,
			Position:       curve.Pt(p.X, -p.Y),
			AngularDamping: constants.BallAngularDamping,
			Tag:            physics.TagBall,
		},
		physics.FixtureDef{
			Shape:       physics.Circle{Radius: constants.BallRadius},
			Density:     constants.BallDensity,
			Friction:    constants.SurfaceFriction,
			Restitution: constants.SurfaceRestitution,
			Category:    physics.CategoryPhysics,
		},
	)
	c.round = uuid.New()
	c.stats.drops.Add(1)

	c.log.Info("ball dropped",
		zap.Stringer("round", c.round),
		zap.Float64("x", p.X),
		zap.Float64("y", p.Y),
	)

	if !c.animating {
		c.animating = true
		c.stats.animating.Store(true)
		c.frames.RequestFrame(c.animate)
	}
}
