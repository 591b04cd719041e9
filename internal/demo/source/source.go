// Package source provides pluggable series providers for the demo gallery.
package source

import (
	"context"

	"github.com/kpumuk/lazychart/chartdata"
)

// Source produces the series rendered by the gallery. Implementations are
// polled on every refresh tick.
type Source interface {
	// Name identifies the source in the footer.
	Name() string

	// Fetch returns the current set of series. Implementations may advance
	// internal state between calls to animate the charts.
	Fetch(ctx context.Context) ([]chartdata.Series, error)
}
