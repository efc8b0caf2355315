package scene

import (
	"math/rand"

	"honnef.co/go/curve"

	"github.com/lixenwraith/ramp-basket/constants"
)

// Basket is the square target placement, top-left corner in screen space
type Basket struct {
	X, Y float64
	Size float64
}

// NewBasket returns an unplaced basket; the first Reposition randomizes its height
func NewBasket() Basket {
	return Basket{Size: constants.BasketSize}
}

// Bounds is the placement rectangle in screen space
func (b Basket) Bounds() curve.Rect {
	return curve.Rect{X0: b.X, Y0: b.Y, X1: b.X + b.Size, Y1: b.Y + b.Size}
}

// Center is the sensor position in screen space
func (b Basket) Center() curve.Point {
	return curve.Pt(b.X+b.Size/2, b.Y+b.Size/2)
}

// Outline returns the rim-to-floor-to-rim polyline in screen space
func (b Basket) Outline() [4]curve.Point {
	floor := b.Y + b.Size - constants.BasketFloorLift
	return [4]curve.Point{
		curve.Pt(b.X, b.Y),
		curve.Pt(b.X+constants.BasketWallInset, floor),
		curve.Pt(b.X+b.Size-constants.BasketWallInset, floor),
		curve.Pt(b.X+b.Size, b.Y),
	}
}

// ScoreLevel is the physics-space height the ball center must reach to accrue score
func (b Basket) ScoreLevel() float64 {
	return -(b.Y - constants.IconSize/2)
}

// InRange reports whether Y is a valid height on a surface of the given height
func (b Basket) InRange(height float64) bool {
	return b.Y >= constants.IconSize && b.Y <= height-b.Size
}

// Reposition pins the basket to the right edge and re-randomizes Y only when it is out of range.
// Returns true when Y changed
func Reposition(b *Basket, width, height float64, rng *rand.Rand) bool {
	b.X = width - b.Size
	if b.InRange(height) {
		return false
	}

	old := b.Y
	span := int(height - b.Size - constants.IconSize)
	if span <= 0 {
		b.Y = constants.IconSize
	} else {
		b.Y = float64(rng.Intn(span)) + constants.IconSize
	}
	return b.Y != old
}
