package source

import (
	"context"
	"math"
	"math/rand/v2"

	"github.com/kpumuk/lazychart/chartdata"
)

const staticPoints = 60

// Static is an in-memory source that synthesizes two series: a sine wave and
// a seeded random walk. Each Fetch shifts the wave phase and extends the walk
// so the gallery animates without any external backend.
type Static struct {
	rng   *rand.Rand
	phase float64
	walk  []float64
}

// NewStatic creates a Static source. The same seed always produces the same
// sequence of frames.
func NewStatic(seed uint64) *Static {
	s := &Static{
		rng:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		walk: make([]float64, 0, staticPoints),
	}
	value := 50.0
	for range staticPoints {
		value += s.rng.Float64()*10 - 5
		s.walk = append(s.walk, value)
	}
	return s
}

// Name implements Source.
func (s *Static) Name() string {
	return "static"
}

// Fetch implements Source.
func (s *Static) Fetch(_ context.Context) ([]chartdata.Series, error) {
	s.phase += 0.3
	last := s.walk[len(s.walk)-1]
	s.walk = append(s.walk[1:], last+s.rng.Float64()*10-5)

	wave := make([]chartdata.Point, staticPoints)
	walk := make([]chartdata.Point, staticPoints)
	for i := range staticPoints {
		x := float64(i)
		wave[i] = chartdata.Point{
			X: x,
			Y: 50 + 40*math.Sin(s.phase+x/6),
		}
		walk[i] = chartdata.Point{
			X: x,
			Y: s.walk[i],
			Metadata: map[string]any{
				"sample": i,
				"source": "walk",
			},
		}
	}

	return []chartdata.Series{
		{Name: "wave", Points: wave},
		{Name: "walk", Points: walk},
	}, nil
}
