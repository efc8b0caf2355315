package bezier

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"honnef.co/go/curve"
)

var sampleHandles = []Handles{
	{P1: curve.Pt(10, 10), C1: curve.Pt(10, 10), P2: curve.Pt(200, 80), C2: curve.Pt(200, 80)},
	{P1: curve.Pt(100, 50), C1: curve.Pt(150, 400), P2: curve.Pt(700, 300), C2: curve.Pt(500, 20)},
	{P1: curve.Pt(0.1, 0.3), C1: curve.Pt(-7.7, 3.3), P2: curve.Pt(1234.5, 987.25), C2: curve.Pt(33.3, 0.7)},
	{P1: curve.Pt(-20, 640), C1: curve.Pt(900, -80), P2: curve.Pt(17, 17), C2: curve.Pt(3, 999)},
}

// coefficientSample is the textbook power-basis expansion the sampler must agree with
func coefficientSample(h Handles, t float64) curve.Point {
	x1, y1 := h.P1.X, h.P1.Y
	x2, y2 := h.C1.X, h.C1.Y
	x3, y3 := h.P2.X, h.P2.Y
	x4, y4 := h.C2.X, h.C2.Y

	t2 := t * t
	t3 := t2 * t

	cx := 3 * (x2 - x1)
	bx := 3*(x4-x2) - cx
	ax := x3 - x1 - cx - bx
	cy := 3 * (y2 - y1)
	by := 3*(y4-y2) - cy
	ay := y3 - y1 - cy - by

	return curve.Pt(t3*ax+t2*bx+t*cx+x1, -(t3*ay + t2*by + t*cy + y1))
}

func TestSampleEndpointsExact(t *testing.T) {
	for _, n := range []int{2, 30, 37, 50} {
		for _, h := range sampleHandles {
			pts := make([]curve.Point, n)
			Sample(pts, h)

			require.Len(t, pts, n)
			assert.Equal(t, curve.Pt(h.P1.X, -h.P1.Y), pts[0])
			assert.Equal(t, curve.Pt(h.P2.X, -h.P2.Y), pts[n-1])
		}
	}
}

func TestSampleMatchesCoefficientExpansion(t *testing.T) {
	const n = 30
	for _, h := range sampleHandles {
		pts := make([]curve.Point, n)
		Sample(pts, h)

		for i, p := range pts {
			want := coefficientSample(h, float64(i)/float64(n-1))
			assert.InDelta(t, want.X, p.X, 1e-9, "x at %d", i)
			assert.InDelta(t, want.Y, p.Y, 1e-9, "y at %d", i)
		}
	}
}

func TestRegenerateDeterministic(t *testing.T) {
	h := sampleHandles[1]

	a := NewPointSet(40)
	b := NewPointSet(40)
	a.Regenerate(h)
	b.Regenerate(h)
	if diff := cmp.Diff(a.Points(), b.Points()); diff != "" {
		t.Errorf("regeneration differs (-a +b):\n%s", diff)
	}
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())

	first := append([]curve.Point(nil), a.Points()...)
	a.Regenerate(h)
	if diff := cmp.Diff(first, a.Points()); diff != "" {
		t.Errorf("regenerating in place changed output:\n%s", diff)
	}
}

func TestRegenerateOverwritesWholesale(t *testing.T) {
	s := NewPointSet(30)
	s.Regenerate(sampleHandles[1])
	before := s.Fingerprint()

	s.Regenerate(sampleHandles[2])
	assert.Equal(t, 30, s.Len())
	assert.NotEqual(t, before, s.Fingerprint())

	want := make([]curve.Point, 30)
	Sample(want, sampleHandles[2])
	if diff := cmp.Diff(want, s.Points()); diff != "" {
		t.Errorf("stale samples left behind:\n%s", diff)
	}
}

func TestSampleDegenerateHasNoNaN(t *testing.T) {
	h := Handles{P1: curve.Pt(50, 50), C1: curve.Pt(50, 50), P2: curve.Pt(50, 50), C2: curve.Pt(50, 50)}
	require.True(t, h.Degenerate())

	pts := make([]curve.Point, 30)
	Sample(pts, h)
	for _, p := range pts {
		assert.False(t, math.IsNaN(p.X) || math.IsNaN(p.Y))
		assert.InDelta(t, 50, p.X, 1e-9)
		assert.InDelta(t, -50, p.Y, 1e-9)
	}

	h.C1 = curve.Pt(300, 10)
	assert.True(t, h.Degenerate(), "control handles do not make a ramp")
	assert.False(t, sampleHandles[1].Degenerate())
}

func TestSampleSmallBuffers(t *testing.T) {
	Sample(nil, sampleHandles[1])

	one := make([]curve.Point, 1)
	Sample(one, sampleHandles[1])
	assert.Equal(t, curve.Pt(100, -50), one[0])

	assert.Panics(t, func() { NewPointSet(1) })
}

func TestSegments(t *testing.T) {
	s := NewPointSet(30)
	s.Regenerate(sampleHandles[1])

	lines := Segments(s.Points())
	require.Len(t, lines, 29)
	for i, l := range lines {
		assert.Equal(t, s.Points()[i], l.P0)
		assert.Equal(t, s.Points()[i+1], l.P1)
	}
	assert.Nil(t, Segments(s.Points()[:1]))
}

func TestCubicOrdering(t *testing.T) {
	h := sampleHandles[1]
	c := h.Cubic()
	opt := cmpopts.EquateApprox(0, 1e-12)
	if diff := cmp.Diff(h.P1, c.Eval(0), opt); diff != "" {
		t.Error(diff)
	}
	if diff := cmp.Diff(h.P2, c.Eval(1), opt); diff != "" {
		t.Error(diff)
	}
}
