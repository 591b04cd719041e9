// Package scale maps values between data domains and display ranges.
package scale

import "errors"

// ErrTickCount is returned by Ticks when fewer than two ticks are requested.
var ErrTickCount = errors.New("scale: tick count must be at least 2")

// Domain is an inclusive interval of data values. Lower must not exceed Upper.
type Domain struct {
	Lower float64
	Upper float64
}

// Range is an inclusive interval in display units (columns, rows, pixels).
type Range struct {
	Lower float64
	Upper float64
}

// Degenerate reports whether the domain has zero extent.
func (d Domain) Degenerate() bool {
	return d.Lower == d.Upper
}

// Widened returns the domain expanded by 0.5 on each side when degenerate,
// unchanged otherwise. Callers use it before tick generation to avoid a
// zero-extent step.
func (d Domain) Widened() Domain {
	if !d.Degenerate() {
		return d
	}
	return Domain{Lower: d.Lower - 0.5, Upper: d.Upper + 0.5}
}

// Scale maps v from the source domain onto the target range using linear
// interpolation. Values outside the domain extrapolate; nothing is clamped.
// A degenerate domain maps every value to r.Lower.
func Scale(v float64, d Domain, r Range) float64 {
	if d.Degenerate() {
		return r.Lower
	}
	return r.Lower + ((v-d.Lower)/(d.Upper-d.Lower))*(r.Upper-r.Lower)
}

// Ticks returns count evenly spaced values from d.Lower to d.Upper inclusive.
// count must be at least 2; ErrTickCount is returned otherwise.
func Ticks(d Domain, count int) ([]float64, error) {
	if count < 2 {
		return nil, ErrTickCount
	}
	step := (d.Upper - d.Lower) / float64(count-1)
	ticks := make([]float64, count)
	for i := range count {
		ticks[i] = d.Lower + float64(i)*step
	}
	return ticks, nil
}
