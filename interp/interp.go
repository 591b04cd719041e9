// Package interp densifies point sequences for smooth chart rendering.
package interp

import (
	"slices"

	"github.com/kpumuk/lazychart/chartdata"
)

// Curve selects the interpolation shape between consecutive points.
type Curve int

const (
	// Linear connects points with straight segments.
	Linear Curve = iota
	// Monotone is a cubic Hermite blend with Catmull-Rom tangents.
	Monotone
	// Cardinal shares the Monotone implementation.
	Cardinal
	// Natural shares the Monotone implementation.
	Natural
	// Step holds each y value until the next point.
	Step
)

// String returns the curve name.
func (c Curve) String() string {
	switch c {
	case Linear:
		return "linear"
	case Monotone:
		return "monotone"
	case Cardinal:
		return "cardinal"
	case Natural:
		return "natural"
	case Step:
		return "step"
	default:
		return "unknown"
	}
}

// Interpolate returns points densified with resolution-1 samples between each
// consecutive pair. The input is first copied and stably sorted by x, so the
// output is always in ascending x order regardless of input order; the input
// slice itself is never touched. A resolution of 1 or less inserts no samples.
// Sequences of one point or fewer are returned as-is.
//
// Monotone, Cardinal and Natural all use the same cubic Hermite blend: x
// advances linearly while y follows Catmull-Rom style tangents estimated from
// the neighboring points, falling back to the segment slope at the ends.
func Interpolate(points []chartdata.Point, resolution int, curve Curve) []chartdata.Point {
	if len(points) <= 1 {
		return points
	}

	sorted := make([]chartdata.Point, len(points))
	copy(sorted, points)
	slices.SortStableFunc(sorted, func(a, b chartdata.Point) int {
		switch {
		case a.X < b.X:
			return -1
		case a.X > b.X:
			return 1
		default:
			return 0
		}
	})

	samples := max(resolution, 1)
	out := make([]chartdata.Point, 0, (len(sorted)-1)*samples+1)

	for i := 0; i < len(sorted)-1; i++ {
		p0, p1 := sorted[i], sorted[i+1]
		out = append(out, p0)

		for j := 1; j < resolution; j++ {
			t := float64(j) / float64(resolution)
			x := lerp(p0.X, p1.X, t)

			var y float64
			switch curve {
			case Step:
				y = p0.Y
			case Monotone, Cardinal, Natural:
				m0, m1 := tangents(sorted, i)
				y = hermite(p0.Y, p1.Y, m0, m1, t)
			default:
				y = lerp(p0.Y, p1.Y, t)
			}

			out = append(out, chartdata.Point{X: x, Y: y})
		}
	}

	return append(out, sorted[len(sorted)-1])
}

// lerp linearly interpolates between a and b.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// hermite evaluates the cubic Hermite basis for the segment y0..y1 with
// tangents m0, m1 at parametric position t in [0, 1].
func hermite(y0, y1, m0, m1, t float64) float64 {
	t2 := t * t
	t3 := t2 * t
	return (2*t3-3*t2+1)*y0 + (t3-2*t2+t)*m0 + (-2*t3+3*t2)*y1 + (t3-t2)*m1
}

// tangents estimates Catmull-Rom tangents for the segment starting at index
// i. Interior points average the slopes to both neighbors; the first and last
// segments fall back to their own secant slope.
func tangents(sorted []chartdata.Point, i int) (m0, m1 float64) {
	p0, p1 := sorted[i], sorted[i+1]
	secant := p1.Y - p0.Y

	m0 = secant
	if i > 0 {
		m0 = (p1.Y - sorted[i-1].Y) / 2
	}

	m1 = secant
	if i+2 < len(sorted) {
		m1 = (sorted[i+2].Y - p0.Y) / 2
	}

	return m0, m1
}
