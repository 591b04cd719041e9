// Package sparkline provides a one-line inline chart component.
package sparkline

import (
	"math"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/kpumuk/lazychart/internal/chartutil"
	"github.com/kpumuk/lazychart/scale"
)

// levels are the block runes used for the bars, lowest to highest.
var levels = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Styles holds the visual styles for the sparkline.
type Styles struct {
	Line lipgloss.Style // Style for the sparkline runes
}

// DefaultStyles returns sensible default styles.
func DefaultStyles() Styles {
	return Styles{
		Line: lipgloss.NewStyle(),
	}
}

// Model holds the sparkline state.
type Model struct {
	styles Styles
	width  int
	values []float64
	domain *scale.Domain
}

// Option is a functional option for configuring the sparkline.
type Option func(*Model)

// New creates a new sparkline model with functional options.
func New(opts ...Option) Model {
	m := Model{
		styles: DefaultStyles(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// WithStyles sets custom styles for the sparkline.
func WithStyles(s Styles) Option {
	return func(m *Model) { m.styles = s }
}

// WithWidth sets the width of the sparkline.
func WithWidth(w int) Option {
	return func(m *Model) { m.width = w }
}

// WithValues sets the values to display.
func WithValues(values []float64) Option {
	return func(m *Model) { m.values = values }
}

// WithDomain sets an explicit value domain (overrides auto-detection).
func WithDomain(d scale.Domain) Option {
	return func(m *Model) { m.domain = &d }
}

// SetStyles updates the sparkline styles.
func (m *Model) SetStyles(s Styles) {
	m.styles = s
}

// SetWidth updates the sparkline width.
func (m *Model) SetWidth(w int) {
	m.width = w
}

// SetValues updates the sparkline values.
func (m *Model) SetValues(values []float64) {
	m.values = values
}

// SetDomain sets an explicit value domain (overrides auto-detection).
func (m *Model) SetDomain(d scale.Domain) {
	m.domain = &d
}

// Width returns the current width.
func (m Model) Width() int {
	return m.width
}

// View renders the sparkline to a string.
func (m Model) View() string {
	if m.width < 1 {
		return ""
	}
	if len(m.values) == 0 {
		return m.styles.Line.Render(strings.Repeat(" ", m.width))
	}

	values := m.values
	if len(values) > m.width {
		values = chartutil.Resample(values, m.width)
	}

	d := m.detectDomain(values)
	r := scale.Range{Lower: 0, Upper: float64(len(levels) - 1)}

	var sb strings.Builder
	for _, v := range values {
		level := int(math.Round(scale.Scale(v, d, r)))
		level = chartutil.Clamp(level, 0, len(levels)-1)
		sb.WriteRune(levels[level])
	}
	if pad := m.width - len(values); pad > 0 {
		sb.WriteString(strings.Repeat(" ", pad))
	}

	return m.styles.Line.Render(sb.String())
}

// detectDomain determines the value domain from the data or uses the override.
func (m Model) detectDomain(values []float64) scale.Domain {
	if m.domain != nil {
		return *m.domain
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return scale.Domain{Lower: lo, Upper: hi}
}
