// Package physicstest provides a recording physics.World for tests that need to see
// exactly which bodies exist without running a simulation.
package physicstest

import (
	"honnef.co/go/curve"

	"github.com/lixenwraith/ramp-basket/physics"
)

// StepCall records the arguments of one World.Step
type StepCall struct {
	DT                 float64
	VelocityIterations int
	PositionIterations int
}

// World records body lifecycle and steps; OnStep lets a test script the simulation
type World struct {
	Bodies    []*Body
	Created   int
	Destroyed int
	Steps     []StepCall

	// OnStep runs after each recorded step
	OnStep func(w *World)

	contact physics.ContactFunc
}

func New() *World {
	return &World{}
}

func (w *World) CreateBody(def physics.BodyDef, fixtures ...physics.FixtureDef) physics.Body {
	b := &Body{
		Def:      def,
		position: def.Position,
		awake:    true,
		active:   true,
	}
	for _, fd := range fixtures {
		b.CreateFixture(fd)
	}
	w.Bodies = append(w.Bodies, b)
	w.Created++
	return b
}

func (w *World) DestroyBody(b physics.Body) {
	for i, live := range w.Bodies {
		if live == b {
			w.Bodies = append(w.Bodies[:i], w.Bodies[i+1:]...)
			w.Destroyed++
			return
		}
	}
}

func (w *World) Step(dt float64, velocityIterations, positionIterations int) {
	w.Steps = append(w.Steps, StepCall{DT: dt, VelocityIterations: velocityIterations, PositionIterations: positionIterations})
	if w.OnStep != nil {
		w.OnStep(w)
	}
}

func (w *World) OnBeginContact(fn physics.ContactFunc) {
	w.contact = fn
}

func (w *World) BodyCount() int {
	return len(w.Bodies)
}

// Contact fires the registered begin-contact callback
func (w *World) Contact(a, b physics.Tag) {
	if w.contact != nil {
		w.contact(a, b)
	}
}

// Tagged returns the live bodies carrying tag
func (w *World) Tagged(tag physics.Tag) []*Body {
	var out []*Body
	for _, b := range w.Bodies {
		if b.Def.Tag == tag {
			out = append(out, b)
		}
	}
	return out
}

// Dynamic returns the live dynamic bodies
func (w *World) Dynamic() []*Body {
	var out []*Body
	for _, b := range w.Bodies {
		if b.Def.Type == physics.BodyDynamic {
			out = append(out, b)
		}
	}
	return out
}

// Body is a recorded body whose state tests may set directly
type Body struct {
	Def      physics.BodyDef
	Fixtures []physics.FixtureDef

	position curve.Point
	angle    float64
	velocity curve.Vec2
	awake    bool
	active   bool
}

func (b *Body) Tag() physics.Tag                    { return b.Def.Tag }
func (b *Body) Position() curve.Point               { return b.position }
func (b *Body) Angle() float64                      { return b.angle }
func (b *Body) LinearVelocity() curve.Vec2          { return b.velocity }
func (b *Body) SetLinearVelocity(v curve.Vec2)      { b.velocity = v }
func (b *Body) SetAwake(awake bool)                 { b.awake = awake }
func (b *Body) SetActive(active bool)               { b.active = active }
func (b *Body) CreateFixture(def physics.FixtureDef) { b.Fixtures = append(b.Fixtures, def) }

func (b *Body) SetTransform(p curve.Point, angle float64) {
	b.position = p
	b.angle = angle
}

func (b *Body) Awake() bool  { return b.awake }
func (b *Body) Active() bool { return b.active }

// Edges returns the body's edge fixtures in creation order
func (b *Body) Edges() []physics.Edge {
	var out []physics.Edge
	for _, fd := range b.Fixtures {
		if e, ok := fd.Shape.(physics.Edge); ok {
			out = append(out, e)
		}
	}
	return out
}
