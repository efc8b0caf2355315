// Package bezier samples the player's ramp: a cubic bezier defined by two endpoints
// and their control handles, given in screen space and emitted in physics space.
package bezier

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
	"honnef.co/go/curve"
)

// Handles are the four screen-space points of the ramp.
// C1 steers the tangent leaving P1, C2 the tangent arriving at P2
type Handles struct {
	P1, C1 curve.Point
	P2, C2 curve.Point
}

// Cubic returns the curve in screen space
func (h Handles) Cubic() curve.CubicBez {
	return curve.CubicBez{P0: h.P1, P1: h.C1, P2: h.C2, P3: h.P2}
}

// Degenerate reports a zero-length ramp, for which no geometry may be built
func (h Handles) Degenerate() bool {
	return h.P1 == h.P2
}

// Sample overwrites every slot of dst with the curve position at t = i/(len(dst)-1),
// with Y negated into physics space. A single-slot dst receives P1
func Sample(dst []curve.Point, h Handles) {
	n := len(dst)
	if n == 0 {
		return
	}
	if n == 1 {
		dst[0] = curve.Pt(h.P1.X, -h.P1.Y)
		return
	}

	c := h.Cubic()
	last := float64(n - 1)
	for i := range dst {
		p := c.Eval(float64(i) / last)
		dst[i] = curve.Pt(p.X, -p.Y)
	}
}

// PointSet is the fixed-length sampled ramp. It is only ever regenerated wholesale
type PointSet struct {
	points []curve.Point
}

// NewPointSet allocates n zeroed samples; n must be at least 2
func NewPointSet(n int) *PointSet {
	if n < 2 {
		panic("bezier: point set needs at least two samples")
	}
	return &PointSet{points: make([]curve.Point, n)}
}

func (s *PointSet) Len() int { return len(s.points) }

// Points returns the live backing slice; callers must not retain it across Regenerate
func (s *PointSet) Points() []curve.Point { return s.points }

// Regenerate resamples every slot from h
func (s *PointSet) Regenerate(h Handles) {
	Sample(s.points, h)
}

// Fingerprint hashes the sampled coordinates; equal inputs give equal fingerprints
func (s *PointSet) Fingerprint() uint64 {
	d := xxhash.New()
	var buf [16]byte
	for _, p := range s.points {
		binary.LittleEndian.PutUint64(buf[:8], math.Float64bits(p.X))
		binary.LittleEndian.PutUint64(buf[8:], math.Float64bits(p.Y))
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}

// Segments returns the n-1 straight pieces joining consecutive samples
func Segments(points []curve.Point) []curve.Line {
	if len(points) < 2 {
		return nil
	}
	lines := make([]curve.Line, 0, len(points)-1)
	for i := 0; i < len(points)-1; i++ {
		lines = append(lines, curve.Line{P0: points[i], P1: points[i+1]})
	}
	return lines
}
