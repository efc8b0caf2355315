package physics

import (
	"github.com/ByteArena/box2d"
	"honnef.co/go/curve"
)

// Box2DWorld implements World on the ByteArena Box2D port
type Box2DWorld struct {
	world     box2d.B2World
	onContact ContactFunc
}

// NewBox2DWorld creates a world with vertical gravity (negative pulls down)
func NewBox2DWorld(gravity float64) *Box2DWorld {
	w := &Box2DWorld{
		world: box2d.MakeB2World(box2d.MakeB2Vec2(0, gravity)),
	}
	w.world.SetContactListener(&contactListener{owner: w})
	return w
}

func (w *Box2DWorld) CreateBody(def BodyDef, fixtures ...FixtureDef) Body {
	bd := box2d.MakeB2BodyDef()
	switch def.Type {
	case BodyDynamic:
		bd.Type = box2d.B2BodyType.B2_dynamicBody
	default:
		bd.Type = box2d.B2BodyType.B2_staticBody
	}
	bd.Position = toVec(def.Position)
	bd.AngularDamping = def.AngularDamping
	bd.UserData = def.Tag

	b := &box2dBody{body: w.world.CreateBody(&bd), tag: def.Tag}
	for _, fd := range fixtures {
		b.CreateFixture(fd)
	}
	return b
}

func (w *Box2DWorld) DestroyBody(b Body) {
	bb, ok := b.(*box2dBody)
	if !ok || bb.body == nil {
		return
	}
	w.world.DestroyBody(bb.body)
	bb.body = nil
}

func (w *Box2DWorld) Step(dt float64, velocityIterations, positionIterations int) {
	w.world.Step(dt, velocityIterations, positionIterations)
	w.world.ClearForces()
}

func (w *Box2DWorld) OnBeginContact(fn ContactFunc) {
	w.onContact = fn
}

func (w *Box2DWorld) BodyCount() int {
	return w.world.GetBodyCount()
}

type box2dBody struct {
	body *box2d.B2Body
	tag  Tag
}

func (b *box2dBody) Tag() Tag { return b.tag }

func (b *box2dBody) Position() curve.Point {
	return toPoint(b.body.GetPosition())
}

func (b *box2dBody) Angle() float64 {
	return b.body.GetAngle()
}

func (b *box2dBody) LinearVelocity() curve.Vec2 {
	v := b.body.GetLinearVelocity()
	return curve.Vec(v.X, v.Y)
}

func (b *box2dBody) SetLinearVelocity(v curve.Vec2) {
	b.body.SetLinearVelocity(box2d.MakeB2Vec2(v.X, v.Y))
}

func (b *box2dBody) SetTransform(p curve.Point, angle float64) {
	b.body.SetTransform(toVec(p), angle)
}

func (b *box2dBody) SetAwake(awake bool) {
	b.body.SetAwake(awake)
}

func (b *box2dBody) SetActive(active bool) {
	b.body.SetActive(active)
}

func (b *box2dBody) CreateFixture(def FixtureDef) {
	fd := box2d.MakeB2FixtureDef()
	fd.Density = def.Density
	fd.Friction = def.Friction
	fd.Restitution = def.Restitution
	fd.IsSensor = def.Sensor
	fd.Filter.CategoryBits = uint16(def.Category)

	switch s := def.Shape.(type) {
	case Edge:
		shape := box2d.MakeB2EdgeShape()
		shape.Set(toVec(s.P0), toVec(s.P1))
		fd.Shape = &shape
	case Circle:
		shape := box2d.MakeB2CircleShape()
		shape.M_radius = s.Radius
		shape.M_p = toVec(s.Center)
		fd.Shape = &shape
	case Polygon:
		vertices := make([]box2d.B2Vec2, len(s.Vertices))
		for i, v := range s.Vertices {
			vertices[i] = toVec(v)
		}
		shape := box2d.MakeB2PolygonShape()
		shape.Set(vertices, len(vertices))
		fd.Shape = &shape
	default:
		return
	}

	b.body.CreateFixtureFromDef(&fd)
}

// contactListener forwards begin-contact events as body tags
type contactListener struct {
	owner *Box2DWorld
}

func (l *contactListener) BeginContact(contact box2d.B2ContactInterface) {
	if l.owner.onContact == nil {
		return
	}
	l.owner.onContact(fixtureTag(contact.GetFixtureA()), fixtureTag(contact.GetFixtureB()))
}

func (l *contactListener) EndContact(contact box2d.B2ContactInterface) {}

func (l *contactListener) PreSolve(contact box2d.B2ContactInterface, oldManifold box2d.B2Manifold) {}

func (l *contactListener) PostSolve(contact box2d.B2ContactInterface, impulse *box2d.B2ContactImpulse) {}

func fixtureTag(f *box2d.B2Fixture) Tag {
	if f == nil || f.GetBody() == nil {
		return TagNone
	}
	tag, _ := f.GetBody().GetUserData().(Tag)
	return tag
}

func toVec(p curve.Point) box2d.B2Vec2 {
	return box2d.MakeB2Vec2(p.X, p.Y)
}

func toPoint(v box2d.B2Vec2) curve.Point {
	return curve.Pt(v.X, v.Y)
}
