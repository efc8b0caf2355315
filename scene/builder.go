// Package scene turns the ramp, the surface bounds and the basket into static
// collision bodies, keeping at most one live body per role.
package scene

import (
	"go.uber.org/zap"
	"honnef.co/go/curve"

	"github.com/lixenwraith/ramp-basket/bezier"
	"github.com/lixenwraith/ramp-basket/constants"
	"github.com/lixenwraith/ramp-basket/physics"
)

// Role is the purpose of a static body
type Role int

const (
	RoleGround Role = iota
	RoleCurve
	RoleBasket
	RoleBasketSensor
	roleCount
)

func (r Role) String() string {
	switch r {
	case RoleGround:
		return "ground"
	case RoleCurve:
		return "curve"
	case RoleBasket:
		return "basket"
	case RoleBasketSensor:
		return "basket-sensor"
	}
	return "unknown"
}

// Builder owns the static bodies of one world
type Builder struct {
	world  physics.World
	log    *zap.Logger
	bodies [roleCount]physics.Body
}

func NewBuilder(world physics.World, log *zap.Logger) *Builder {
	return &Builder{world: world, log: log}
}

// Body returns the live body for role, or nil
func (b *Builder) Body(role Role) physics.Body {
	return b.bodies[role]
}

// Clear destroys the body of role if present
func (b *Builder) Clear(role Role) {
	if b.bodies[role] == nil {
		return
	}
	b.world.DestroyBody(b.bodies[role])
	b.bodies[role] = nil
}

func (b *Builder) replace(role Role, def physics.BodyDef, fixtures []physics.FixtureDef) physics.Body {
	b.Clear(role)
	b.bodies[role] = b.world.CreateBody(def, fixtures...)
	b.log.Debug("scene body rebuilt",
		zap.Stringer("role", role),
		zap.Int("fixtures", len(fixtures)),
		zap.Int("bodies", b.world.BodyCount()),
	)
	return b.bodies[role]
}

// BuildGround encloses the surface with a left wall, a floor one pixel below the bottom, and a right wall
func (b *Builder) BuildGround(width, height float64) {
	vertices := []curve.Point{
		curve.Pt(0, 0),
		curve.Pt(0, -height-1),
		curve.Pt(width, -height-1),
		curve.Pt(width, 0),
	}
	fixtures := chain(vertices, physics.FixtureDef{
		Friction:    constants.SurfaceFriction,
		Restitution: constants.SurfaceRestitution,
		Category:    physics.CategoryPhysics,
	})
	b.replace(RoleGround, physics.BodyDef{Type: physics.BodyStatic, Tag: physics.TagGround}, fixtures)
}

// BuildCurve replaces the ramp with one edge per consecutive sample pair.
// A degenerate ramp only removes the stale one and reports false
func (b *Builder) BuildCurve(h bezier.Handles, points []curve.Point) bool {
	if h.Degenerate() || len(points) < 2 {
		b.Clear(RoleCurve)
		return false
	}

	fixtures := chain(points, physics.FixtureDef{
		Friction: constants.SurfaceFriction,
		Category: physics.CategoryPhysics,
	})
	b.replace(RoleCurve, physics.BodyDef{Type: physics.BodyStatic, Tag: physics.TagCurve}, fixtures)
	return true
}

// BuildBasket replaces the basket walls and its center sensor
func (b *Builder) BuildBasket(basket Basket) {
	outline := basket.Outline()
	walls := make([]curve.Point, len(outline))
	for i, p := range outline {
		walls[i] = flip(p)
	}
	fixtures := chain(walls, physics.FixtureDef{
		Restitution: constants.SurfaceRestitution,
		Category:    physics.CategoryPhysics,
	})
	b.replace(RoleBasket, physics.BodyDef{Type: physics.BodyStatic, Tag: physics.TagRim}, fixtures)

	sensor := physics.FixtureDef{
		Shape:       physics.Circle{Center: flip(basket.Center()), Radius: constants.SensorRadius},
		Restitution: constants.SurfaceRestitution,
		Sensor:      true,
		Category:    physics.CategoryLogic,
	}
	b.replace(RoleBasketSensor, physics.BodyDef{Type: physics.BodyStatic, Tag: physics.TagBasket}, []physics.FixtureDef{sensor})
}

// chain emits one edge fixture per consecutive vertex pair, sharing the template's material
func chain(vertices []curve.Point, template physics.FixtureDef) []physics.FixtureDef {
	segments := bezier.Segments(vertices)
	fixtures := make([]physics.FixtureDef, len(segments))
	for i, seg := range segments {
		fd := template
		fd.Shape = physics.Edge{Line: seg}
		fixtures[i] = fd
	}
	return fixtures
}

// flip maps screen space to physics space
func flip(p curve.Point) curve.Point {
	return curve.Pt(p.X, -p.Y)
}
