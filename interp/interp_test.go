package interp_test

import (
	"math"
	"reflect"
	"testing"

	"github.com/kpumuk/lazychart/chartdata"
	"github.com/kpumuk/lazychart/interp"
)

func TestInterpolateLinear(t *testing.T) {
	t.Parallel()

	points := []chartdata.Point{{X: 0, Y: 0}, {X: 1, Y: 10}}
	got := interp.Interpolate(points, 4, interp.Linear)

	want := []chartdata.Point{
		{X: 0, Y: 0},
		{X: 0.25, Y: 2.5},
		{X: 0.5, Y: 5},
		{X: 0.75, Y: 7.5},
		{X: 1, Y: 10},
	}
	if len(got) != len(want) {
		t.Fatalf("Interpolate() returned %d points, want %d", len(got), len(want))
	}
	for i := range got {
		if math.Abs(got[i].X-want[i].X) > 1e-9 || math.Abs(got[i].Y-want[i].Y) > 1e-9 {
			t.Errorf("point %d = (%v, %v), want (%v, %v)", i, got[i].X, got[i].Y, want[i].X, want[i].Y)
		}
	}
}

func TestInterpolateResolutionOne(t *testing.T) {
	t.Parallel()

	points := []chartdata.Point{{X: 0, Y: 0}, {X: 1, Y: 10}}
	got := interp.Interpolate(points, 1, interp.Linear)
	if len(got) != 2 {
		t.Fatalf("resolution 1 inserted samples: %d points", len(got))
	}
	if !reflect.DeepEqual(got[0], points[0]) || !reflect.DeepEqual(got[1], points[1]) {
		t.Errorf("resolution 1 altered points: %v", got)
	}
}

func TestInterpolateFewPoints(t *testing.T) {
	t.Parallel()

	if got := interp.Interpolate(nil, 10, interp.Linear); len(got) != 0 {
		t.Errorf("empty input produced %d points", len(got))
	}

	single := []chartdata.Point{{X: 3, Y: 4}}
	got := interp.Interpolate(single, 10, interp.Monotone)
	if len(got) != 1 || !reflect.DeepEqual(got[0], single[0]) {
		t.Errorf("single point altered: %v", got)
	}
}

func TestInterpolateSortsByX(t *testing.T) {
	t.Parallel()

	points := []chartdata.Point{{X: 5, Y: 1}, {X: 1, Y: 2}, {X: 3, Y: 7}}
	got := interp.Interpolate(points, 2, interp.Linear)

	for i := 1; i < len(got); i++ {
		if got[i].X < got[i-1].X {
			t.Fatalf("output not sorted by x at %d: %v after %v", i, got[i].X, got[i-1].X)
		}
	}
	if got[0].X != 1 || got[len(got)-1].X != 5 {
		t.Errorf("endpoints = %v..%v, want 1..5", got[0].X, got[len(got)-1].X)
	}

	// The input must be left untouched.
	if points[0].X != 5 || points[1].X != 1 || points[2].X != 3 {
		t.Errorf("input mutated: %v", points)
	}
}

func TestInterpolateStableTies(t *testing.T) {
	t.Parallel()

	points := []chartdata.Point{
		{X: 1, Y: 10, Label: "first"},
		{X: 1, Y: 20, Label: "second"},
	}
	got := interp.Interpolate(points, 3, interp.Linear)
	if got[0].Label != "first" {
		t.Errorf("tie order not stable: first point is %q", got[0].Label)
	}
	if got[len(got)-1].Label != "second" {
		t.Errorf("tie order not stable: last point is %q", got[len(got)-1].Label)
	}
}

func TestInterpolateStep(t *testing.T) {
	t.Parallel()

	points := []chartdata.Point{{X: 0, Y: 2}, {X: 10, Y: 8}, {X: 20, Y: 4}}
	got := interp.Interpolate(points, 10, interp.Step)

	for _, p := range got[:len(got)-1] {
		var wantY float64
		switch {
		case p.X < 10:
			wantY = 2
		default:
			wantY = 8
		}
		if p.Y != wantY {
			t.Errorf("step sample at x=%v has y=%v, want %v", p.X, p.Y, wantY)
		}
	}
	last := got[len(got)-1]
	if last.X != 20 || last.Y != 4 {
		t.Errorf("final point = %+v, want (20, 4)", last)
	}
}

func TestInterpolateHermitePassesThroughPoints(t *testing.T) {
	t.Parallel()

	points := []chartdata.Point{{X: 0, Y: 0}, {X: 1, Y: 5}, {X: 2, Y: 3}, {X: 3, Y: 9}}
	for _, curve := range []interp.Curve{interp.Monotone, interp.Cardinal, interp.Natural} {
		got := interp.Interpolate(points, 8, curve)

		// Original points must appear, in order, among the samples.
		idx := 0
		for _, p := range got {
			if idx < len(points) && p.X == points[idx].X && p.Y == points[idx].Y {
				idx++
			}
		}
		if idx != len(points) {
			t.Errorf("curve %v: only %d of %d original points preserved", curve, idx, len(points))
		}

		wantLen := (len(points)-1)*8 + 1
		if len(got) != wantLen {
			t.Errorf("curve %v: %d points, want %d", curve, len(got), wantLen)
		}
	}
}

func TestInterpolateHermiteMatchesLinearForStraightLine(t *testing.T) {
	t.Parallel()

	// On collinear input the Hermite blend must reproduce the straight line.
	points := []chartdata.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}}
	got := interp.Interpolate(points, 4, interp.Monotone)
	for _, p := range got {
		if math.Abs(p.Y-p.X) > 1e-9 {
			t.Errorf("sample (%v, %v) deviates from the line y=x", p.X, p.Y)
		}
	}
}

func TestCurveString(t *testing.T) {
	t.Parallel()

	names := map[interp.Curve]string{
		interp.Linear:   "linear",
		interp.Monotone: "monotone",
		interp.Cardinal: "cardinal",
		interp.Natural:  "natural",
		interp.Step:     "step",
	}
	for curve, want := range names {
		if got := curve.String(); got != want {
			t.Errorf("Curve(%d).String() = %q, want %q", curve, got, want)
		}
	}
}

// BenchmarkInterpolate benchmarks Hermite interpolation over a typical series.
func BenchmarkInterpolate(b *testing.B) {
	points := make([]chartdata.Point, 100)
	for i := range points {
		points[i] = chartdata.Point{X: float64(i), Y: float64((i * 7) % 13)}
	}
	b.ResetTimer()
	for range b.N {
		_ = interp.Interpolate(points, 10, interp.Monotone)
	}
}
