package scene

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"honnef.co/go/curve"

	"github.com/lixenwraith/ramp-basket/constants"
)

func TestRepositionKeepsYInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	sizes := [][2]float64{{800, 600}, {1024, 300}, {400, 193}, {1920, 1000}, {640, 480}}
	b := NewBasket()
	for i := 0; i < 200; i++ {
		size := sizes[i%len(sizes)]
		Reposition(&b, size[0], size[1], rng)

		assert.Equal(t, size[0]-constants.BasketSize, b.X)
		assert.GreaterOrEqual(t, b.Y, constants.IconSize)
		assert.LessOrEqual(t, b.Y, size[1]-constants.BasketSize)
	}
}

func TestRepositionStableWhenInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	b := NewBasket()

	assert.True(t, Reposition(&b, 800, 600, rng), "unplaced basket is randomized")
	y := b.Y

	for i := 0; i < 10; i++ {
		assert.False(t, Reposition(&b, 800, 600, rng))
		assert.Equal(t, y, b.Y)
	}

	// a wider surface only moves X
	Reposition(&b, 1200, 600, rng)
	assert.Equal(t, y, b.Y)
	assert.Equal(t, 1200-constants.BasketSize, b.X)
}

func TestRepositionShrinkForcesNewY(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	b := Basket{X: 0, Y: 450, Size: constants.BasketSize}

	Reposition(&b, 800, 400, rng)
	assert.GreaterOrEqual(t, b.Y, constants.IconSize)
	assert.LessOrEqual(t, b.Y, 400-constants.BasketSize)
}

func TestRepositionTinySurface(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	b := NewBasket()

	Reposition(&b, 300, 150, rng)
	assert.Equal(t, constants.IconSize, b.Y)
}

func TestBasketGeometry(t *testing.T) {
	b := Basket{X: 100, Y: 200, Size: 128}

	assert.Equal(t, curve.Pt(164, 264), b.Center())
	assert.Equal(t, -(200 - constants.IconSize/2), b.ScoreLevel())
	assert.Equal(t, curve.Rect{X0: 100, Y0: 200, X1: 228, Y1: 328}, b.Bounds())
	assert.True(t, b.InRange(600))
	assert.False(t, b.InRange(300))
}
