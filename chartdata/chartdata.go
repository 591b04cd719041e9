// Package chartdata holds the data model shared by all chart components:
// points, series, summary statistics, and the default domain policy.
package chartdata

import "charm.land/lipgloss/v2"

// Point is a single chart sample. Points are plain values; components never
// mutate them.
type Point struct {
	X        float64
	Y        float64
	Label    string
	Metadata map[string]any
}

// Series is an ordered collection of points under one name. Hidden series are
// skipped by domain defaulting and by chart components (a legend toggles the
// flag, the data stays put).
type Series struct {
	Name   string
	Points []Point
	Style  lipgloss.Style
	Hidden bool
}

// Xs returns the x values of all points in the series.
func (s Series) Xs() []float64 {
	out := make([]float64, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.X
	}
	return out
}

// Ys returns the y values of all points in the series.
func (s Series) Ys() []float64 {
	out := make([]float64, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.Y
	}
	return out
}
