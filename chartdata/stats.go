package chartdata

import (
	"math"
	"sort"
)

// Statistics summarizes a sequence of values. Variance is the population
// variance (divide by count, not count-1); StdDev is its square root.
type Statistics struct {
	Count    int
	Sum      float64
	Mean     float64
	Median   float64
	Min      float64
	Max      float64
	Variance float64
	StdDev   float64
}

// Calculate computes summary statistics over values. The second return value
// is false when values is empty; the zero Statistics returned in that case
// carries no meaning and must not be used.
func Calculate(values []float64) (Statistics, bool) {
	n := len(values)
	if n == 0 {
		return Statistics{}, false
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	sum := 0.0
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(n)

	variance := 0.0
	for _, v := range values {
		d := v - mean
		variance += d * d
	}
	variance /= float64(n)

	var median float64
	if n%2 == 0 {
		median = (sorted[n/2-1] + sorted[n/2]) / 2
	} else {
		median = sorted[n/2]
	}

	return Statistics{
		Count:    n,
		Sum:      sum,
		Mean:     mean,
		Median:   median,
		Min:      sorted[0],
		Max:      sorted[n-1],
		Variance: variance,
		StdDev:   math.Sqrt(variance),
	}, true
}
