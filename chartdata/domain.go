package chartdata

import (
	"github.com/kpumuk/lazychart/format"
	"github.com/kpumuk/lazychart/scale"
)

// zeroBaselineRatio controls when DefaultYDomain snaps the lower bound to
// zero: all values positive and the minimum below this fraction of the
// maximum reads better starting from a zero baseline.
const zeroBaselineRatio = 0.2

// defaultTickCount is the tick count used by DefaultTicks and DefaultLabels.
const defaultTickCount = 5

// DefaultXDomain derives an x domain covering every point of every visible
// series. With no data it returns [0, 1]; a zero-extent result is widened by
// 0.5 on each side.
func DefaultXDomain(series []Series) scale.Domain {
	lo, hi, ok := extent(series, func(p Point) float64 { return p.X })
	if !ok {
		return scale.Domain{Lower: 0, Upper: 1}
	}
	return scale.Domain{Lower: lo, Upper: hi}.Widened()
}

// DefaultYDomain derives a y domain covering every point of every visible
// series, with the same empty and zero-extent handling as DefaultXDomain.
// When all values are positive and the minimum sits below zeroBaselineRatio
// of the maximum, the lower bound is forced to zero.
func DefaultYDomain(series []Series) scale.Domain {
	lo, hi, ok := extent(series, func(p Point) float64 { return p.Y })
	if !ok {
		return scale.Domain{Lower: 0, Upper: 1}
	}
	if lo > 0 && lo < hi*zeroBaselineRatio {
		lo = 0
	}
	return scale.Domain{Lower: lo, Upper: hi}.Widened()
}

// DefaultTicks returns the standard five ticks spanning the domain.
func DefaultTicks(d scale.Domain) []float64 {
	ticks, err := scale.Ticks(d.Widened(), defaultTickCount)
	if err != nil {
		// Unreachable: the count is a constant >= 2.
		return nil
	}
	return ticks
}

// DefaultLabels returns the default ticks formatted with no fraction digits.
func DefaultLabels(d scale.Domain) []string {
	ticks := DefaultTicks(d)
	labels := make([]string, len(ticks))
	for i, tick := range ticks {
		labels[i] = format.Number(tick, format.WithMaxFractionDigits(0))
	}
	return labels
}

// extent scans all points of all visible series with at least one point and
// returns the min and max of the selected coordinate. ok is false when no
// point contributed.
func extent(series []Series, coord func(Point) float64) (lo, hi float64, ok bool) {
	for _, s := range series {
		if s.Hidden {
			continue
		}
		for _, p := range s.Points {
			v := coord(p)
			if !ok {
				lo, hi, ok = v, v, true
				continue
			}
			lo = min(lo, v)
			hi = max(hi, v)
		}
	}
	return lo, hi, ok
}
