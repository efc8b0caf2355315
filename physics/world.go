// Package physics is the narrow capability surface the game needs from a rigid-body engine.
// Coordinates are physics space: surface pixels with Y pointing up.
package physics

import "honnef.co/go/curve"

// BodyType selects static or simulated bodies
type BodyType uint8

const (
	BodyStatic BodyType = iota
	BodyDynamic
)

// Category is a collision filter category bit
type Category uint16

const (
	// CategoryPhysics marks fixtures that produce a collision response
	CategoryPhysics Category = 0x0001
	// CategoryLogic marks sensors that only report contact
	CategoryLogic Category = 0x0002
)

// Tag identifies a body's role in contact callbacks
type Tag string

const (
	TagNone   Tag = ""
	TagGround Tag = "ground"
	TagBasket Tag = "basket"
	TagCurve  Tag = "curve"
	TagRim    Tag = "rim"
	TagBall   Tag = "ball"
)

// Shape is one of Edge, Circle or Polygon
type Shape interface {
	shape()
}

// Edge is a two-sided line segment
type Edge struct {
	curve.Line
}

// Circle is centered at Center in body-local coordinates
type Circle struct {
	Center curve.Point
	Radius float64
}

// Polygon is a convex polygon in body-local coordinates
type Polygon struct {
	Vertices []curve.Point
}

func (Edge) shape()    {}
func (Circle) shape()  {}
func (Polygon) shape() {}

// FixtureDef attaches a shape and its material to a body
type FixtureDef struct {
	Shape       Shape
	Density     float64
	Friction    float64
	Restitution float64
	Sensor      bool
	Category    Category
}

// BodyDef describes a body at creation
type BodyDef struct {
	Type           BodyType
	Position       curve.Point
	AngularDamping float64
	Tag            Tag
}

// Body is a live body owned by a World
type Body interface {
	Tag() Tag
	Position() curve.Point
	Angle() float64
	LinearVelocity() curve.Vec2
	SetLinearVelocity(v curve.Vec2)
	SetTransform(p curve.Point, angle float64)
	SetAwake(awake bool)
	SetActive(active bool)
	CreateFixture(def FixtureDef)
}

// ContactFunc receives the tags of the two bodies whose fixtures started touching
type ContactFunc func(a, b Tag)

// World owns one simulation instance
type World interface {
	CreateBody(def BodyDef, fixtures ...FixtureDef) Body
	DestroyBody(b Body)
	// Step advances the simulation once; contact callbacks fire synchronously inside it
	Step(dt float64, velocityIterations, positionIterations int)
	OnBeginContact(fn ContactFunc)
	BodyCount() int
}

// Involves reports whether either side of a contact carries tag
func Involves(a, b, tag Tag) bool {
	return a == tag || b == tag
}
