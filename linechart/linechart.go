// Package linechart provides a reusable multi-series line chart component.
package linechart

import (
	"charm.land/lipgloss/v2"
	"github.com/NimbleMarkets/ntcharts/v2/canvas"
	ntlc "github.com/NimbleMarkets/ntcharts/v2/linechart"

	"github.com/kpumuk/lazychart/chartdata"
	"github.com/kpumuk/lazychart/format"
	"github.com/kpumuk/lazychart/internal/chartutil"
	"github.com/kpumuk/lazychart/interp"
	"github.com/kpumuk/lazychart/scale"
)

// Styles holds the visual styles for the line chart.
type Styles struct {
	Axis  lipgloss.Style // Style for chart axes
	Label lipgloss.Style // Style for axis labels
}

// DefaultStyles returns sensible default styles.
func DefaultStyles() Styles {
	return Styles{
		Axis:  lipgloss.NewStyle(),
		Label: lipgloss.NewStyle(),
	}
}

// Model holds the line chart state.
type Model struct {
	styles       Styles
	width        int
	height       int
	series       []chartdata.Series
	curve        interp.Curve
	resolution   int
	xDomain      *scale.Domain
	yDomain      *scale.Domain
	xSteps       int
	ySteps       int
	xFormatter   func(int, float64) string
	yFormatter   func(int, float64) string
	emptyMessage string
}

// Option is a functional option for configuring the line chart.
type Option func(*Model)

// New creates a new line chart model with functional options.
func New(opts ...Option) Model {
	m := Model{
		styles:     DefaultStyles(),
		curve:      interp.Linear,
		resolution: 4,
		xSteps:     2,
		ySteps:     2,
		xFormatter: defaultFormatter,
		yFormatter: defaultFormatter,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

func defaultFormatter(_ int, v float64) string {
	return format.Number(v, format.WithMaxFractionDigits(1), format.WithoutGrouping())
}

// WithStyles sets custom styles for the chart.
func WithStyles(s Styles) Option {
	return func(m *Model) { m.styles = s }
}

// WithSize sets the dimensions of the chart.
func WithSize(w, h int) Option {
	return func(m *Model) { m.width, m.height = w, h }
}

// WithSeries sets the data series to display.
func WithSeries(series ...chartdata.Series) Option {
	return func(m *Model) { m.series = series }
}

// WithCurve sets the interpolation curve used between points.
func WithCurve(c interp.Curve) Option {
	return func(m *Model) { m.curve = c }
}

// WithResolution sets the number of interpolation samples per segment.
func WithResolution(r int) Option {
	return func(m *Model) { m.resolution = r }
}

// WithXDomain sets an explicit x domain (overrides auto-detection).
func WithXDomain(d scale.Domain) Option {
	return func(m *Model) { m.xDomain = &d }
}

// WithYDomain sets an explicit y domain (overrides auto-detection).
func WithYDomain(d scale.Domain) Option {
	return func(m *Model) { m.yDomain = &d }
}

// WithXYSteps sets the number of label steps for X and Y axes.
func WithXYSteps(xSteps, ySteps int) Option {
	return func(m *Model) { m.xSteps, m.ySteps = xSteps, ySteps }
}

// WithXFormatter sets the X-axis label formatter.
func WithXFormatter(formatter func(int, float64) string) Option {
	return func(m *Model) { m.xFormatter = formatter }
}

// WithYFormatter sets the Y-axis label formatter.
func WithYFormatter(formatter func(int, float64) string) Option {
	return func(m *Model) { m.yFormatter = formatter }
}

// WithEmptyMessage sets the message to display when there's no data.
func WithEmptyMessage(msg string) Option {
	return func(m *Model) { m.emptyMessage = msg }
}

// SetStyles updates the chart styles.
func (m *Model) SetStyles(s Styles) {
	m.styles = s
}

// SetSize updates the chart dimensions.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// SetSeries updates the data series.
func (m *Model) SetSeries(series ...chartdata.Series) {
	m.series = series
}

// SetCurve updates the interpolation curve.
func (m *Model) SetCurve(c interp.Curve) {
	m.curve = c
}

// SetResolution updates the interpolation resolution.
func (m *Model) SetResolution(r int) {
	m.resolution = r
}

// SetXDomain sets an explicit x domain (overrides auto-detection).
func (m *Model) SetXDomain(d scale.Domain) {
	m.xDomain = &d
}

// SetYDomain sets an explicit y domain (overrides auto-detection).
func (m *Model) SetYDomain(d scale.Domain) {
	m.yDomain = &d
}

// SetEmptyMessage updates the empty state message.
func (m *Model) SetEmptyMessage(msg string) {
	m.emptyMessage = msg
}

// Width returns the current width.
func (m Model) Width() int {
	return m.width
}

// Height returns the current height.
func (m Model) Height() int {
	return m.height
}

// Curve returns the configured interpolation curve.
func (m Model) Curve() interp.Curve {
	return m.curve
}

// View renders the line chart to a string.
func (m Model) View() string {
	if m.width < 1 || m.height < 1 {
		return ""
	}

	visible := m.visibleSeries()
	if len(visible) == 0 {
		return chartutil.CenterMessage(m.width, m.height, m.emptyMessage)
	}

	xd := m.detectXDomain(visible)
	yd := m.detectYDomain(visible)

	chart := ntlc.New(m.width, m.height,
		xd.Lower, xd.Upper,
		yd.Lower, yd.Upper,
		ntlc.WithXYSteps(m.xSteps, m.ySteps),
		ntlc.WithStyles(m.styles.Axis, m.styles.Label, lipgloss.NewStyle()),
		ntlc.WithXLabelFormatter(m.xFormatter),
		ntlc.WithYLabelFormatter(m.yFormatter),
	)
	chart.DrawXYAxisAndLabel()

	for _, s := range visible {
		points := interp.Interpolate(s.Points, m.resolution, m.curve)
		for i := 1; i < len(points); i++ {
			chart.DrawBrailleLineWithStyle(
				canvas.Float64Point{X: points[i-1].X, Y: points[i-1].Y},
				canvas.Float64Point{X: points[i].X, Y: points[i].Y},
				s.Style,
			)
		}
		if len(points) == 1 {
			chart.DrawRuneWithStyle(canvas.Float64Point{X: points[0].X, Y: points[0].Y}, '•', s.Style)
		}
	}

	return chart.View()
}

// visibleSeries returns the series that should be plotted.
func (m Model) visibleSeries() []chartdata.Series {
	out := make([]chartdata.Series, 0, len(m.series))
	for _, s := range m.series {
		if s.Hidden || len(s.Points) == 0 {
			continue
		}
		out = append(out, s)
	}
	return out
}

// detectXDomain determines the x domain from the data or uses the override.
func (m Model) detectXDomain(visible []chartdata.Series) scale.Domain {
	if m.xDomain != nil {
		return m.xDomain.Widened()
	}
	return chartdata.DefaultXDomain(visible)
}

// detectYDomain determines the y domain from the data or uses the override.
func (m Model) detectYDomain(visible []chartdata.Series) scale.Domain {
	if m.yDomain != nil {
		return m.yDomain.Widened()
	}
	return chartdata.DefaultYDomain(visible)
}
