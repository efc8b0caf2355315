package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"honnef.co/go/curve"
)

func floorEdge(width, y float64) FixtureDef {
	return FixtureDef{
		Shape:       Edge{curve.Line{P0: curve.Pt(0, y), P1: curve.Pt(width, y)}},
		Friction:    0.5,
		Restitution: 0.5,
		Category:    CategoryPhysics,
	}
}

func TestBox2DBodyLifecycle(t *testing.T) {
	w := NewBox2DWorld(-10)
	require.Equal(t, 0, w.BodyCount())

	ground := w.CreateBody(BodyDef{Type: BodyStatic, Tag: TagGround}, floorEdge(800, -600))
	ball := w.CreateBody(
		BodyDef{Type: BodyDynamic, Position: curve.Pt(100, -100), AngularDamping: 0.1, Tag: TagBall},
		FixtureDef{Shape: Circle{Radius: 32}, Density: 1, Friction: 0.5, Restitution: 0.5, Category: CategoryPhysics},
	)
	assert.Equal(t, 2, w.BodyCount())
	assert.Equal(t, TagGround, ground.Tag())
	assert.Equal(t, curve.Pt(100, -100), ball.Position())

	ball.SetTransform(curve.Pt(120, -90), 0)
	assert.Equal(t, curve.Pt(120, -90), ball.Position())

	ball.SetLinearVelocity(curve.Vec(3, 4))
	assert.Equal(t, curve.Vec(3, 4), ball.LinearVelocity())

	w.DestroyBody(ball)
	assert.Equal(t, 1, w.BodyCount())

	// second destroy of the same handle is ignored
	w.DestroyBody(ball)
	assert.Equal(t, 1, w.BodyCount())
}

func TestBox2DFallingBallHitsGround(t *testing.T) {
	w := NewBox2DWorld(-10)

	var contacts [][2]Tag
	w.OnBeginContact(func(a, b Tag) {
		contacts = append(contacts, [2]Tag{a, b})
	})

	w.CreateBody(BodyDef{Type: BodyStatic, Tag: TagGround}, floorEdge(800, -200))
	ball := w.CreateBody(
		BodyDef{Type: BodyDynamic, Position: curve.Pt(400, -100), Tag: TagBall},
		FixtureDef{Shape: Circle{Radius: 32}, Density: 1, Friction: 0.5, Restitution: 0.5, Category: CategoryPhysics},
	)

	for i := 0; i < 2000 && len(contacts) == 0; i++ {
		w.Step(1.0/60.0, 10, 10)
	}

	require.NotEmpty(t, contacts, "ball never reached the ground")
	assert.True(t, Involves(contacts[0][0], contacts[0][1], TagGround))
	assert.True(t, Involves(contacts[0][0], contacts[0][1], TagBall))
	assert.Less(t, ball.Position().Y, -100.0)
}

func TestBox2DSensorReportsContact(t *testing.T) {
	w := NewBox2DWorld(-10)

	var basketHits int
	w.OnBeginContact(func(a, b Tag) {
		if Involves(a, b, TagBasket) {
			basketHits++
		}
	})

	w.CreateBody(BodyDef{Type: BodyStatic, Tag: TagBasket}, FixtureDef{
		Shape:    Circle{Center: curve.Pt(400, -150), Radius: 1},
		Sensor:   true,
		Category: CategoryLogic,
	})
	w.CreateBody(
		BodyDef{Type: BodyDynamic, Position: curve.Pt(400, -100), Tag: TagBall},
		FixtureDef{Shape: Circle{Radius: 32}, Density: 1, Category: CategoryPhysics},
	)

	for i := 0; i < 600 && basketHits == 0; i++ {
		w.Step(1.0/60.0, 10, 10)
	}
	assert.Equal(t, 1, basketHits)
}

func TestInvolves(t *testing.T) {
	assert.True(t, Involves(TagGround, TagBall, TagGround))
	assert.True(t, Involves(TagBall, TagGround, TagGround))
	assert.False(t, Involves(TagBall, TagCurve, TagGround))
}
