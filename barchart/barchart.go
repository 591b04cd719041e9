// Package barchart provides a reusable column chart component.
package barchart

import (
	"slices"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/NimbleMarkets/ntcharts/v2/canvas"
	"github.com/NimbleMarkets/ntcharts/v2/canvas/graph"

	"github.com/kpumuk/lazychart/internal/chartutil"
)

// Styles holds the visual styles for the bar chart.
type Styles struct {
	Axis  lipgloss.Style // Style for chart axes
	Bar   lipgloss.Style // Style for bars
	Muted lipgloss.Style // Style for labels and secondary text
}

// DefaultStyles returns sensible default styles.
func DefaultStyles() Styles {
	return Styles{
		Axis:  lipgloss.NewStyle(),
		Bar:   lipgloss.NewStyle(),
		Muted: lipgloss.NewStyle(),
	}
}

// Model holds the bar chart state.
type Model struct {
	styles       Styles
	width        int
	height       int
	values       []float64
	labels       []string
	emptyMessage string
}

// Option is a functional option for configuring the bar chart.
type Option func(*Model)

// New creates a new bar chart model with functional options.
func New(opts ...Option) Model {
	m := Model{
		styles: DefaultStyles(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// WithStyles sets custom styles for the bar chart.
func WithStyles(s Styles) Option {
	return func(m *Model) { m.styles = s }
}

// WithSize sets the dimensions of the bar chart.
func WithSize(w, h int) Option {
	return func(m *Model) { m.width, m.height = w, h }
}

// WithData sets the values and their bucket labels.
func WithData(values []float64, labels []string) Option {
	return func(m *Model) { m.values, m.labels = values, labels }
}

// WithEmptyMessage sets the message to display when there's no data.
func WithEmptyMessage(msg string) Option {
	return func(m *Model) { m.emptyMessage = msg }
}

// SetStyles updates the bar chart styles.
func (m *Model) SetStyles(s Styles) {
	m.styles = s
}

// SetSize updates the bar chart dimensions.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// SetData updates the bar chart data.
func (m *Model) SetData(values []float64, labels []string) {
	m.values = values
	m.labels = labels
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

// View renders the bar chart to a string.
func (m Model) View() string {
	if m.width < 2 || m.height < 2 {
		return ""
	}
	empty := func() string {
		return chartutil.CenterMessage(m.width, m.height, m.emptyMessage)
	}
	if len(m.values) == 0 {
		return empty()
	}
	maxValue := slices.Max(m.values)
	if maxValue <= 0 {
		return empty()
	}

	labels := m.labels
	if len(labels) > len(m.values) {
		labels = labels[:len(m.values)]
	}

	showLabels := m.height >= 3
	chartHeight := m.height
	if showLabels {
		chartHeight--
	}
	chartHeight = max(chartHeight, 1)

	yLabels := chartutil.YAxisLabels(maxValue, chartHeight)
	labelWidth := chartutil.MaxLabelWidth(yLabels)
	chartWidth := max(m.width-labelWidth-1, 1)
	if chartWidth < 2 {
		return empty()
	}

	plotWidth := max(chartWidth-1, 1)
	series := chartutil.Resample(m.values, plotWidth)
	if len(series) == 0 {
		return empty()
	}
	maxVal := slices.Max(series)
	if maxVal <= 0 {
		return empty()
	}

	maxHeight := float64(max(chartHeight-1, 1))
	scaled := make([]float64, len(series))
	for i, v := range series {
		scaled[i] = v * maxHeight / maxVal
	}

	canvasWidth := len(series) + 1
	c := canvas.New(canvasWidth, chartHeight, canvas.WithViewWidth(canvasWidth), canvas.WithViewHeight(chartHeight))
	origin := canvas.Point{X: 0, Y: chartHeight - 1}
	graph.DrawXYAxis(&c, origin, m.styles.Axis)
	baseline := max(chartHeight-2, 0)
	graph.DrawColumns(&c, canvas.Point{X: 1, Y: baseline}, scaled, m.styles.Bar)

	chartLines := strings.Split(c.View(), "\n")
	chartLines = chartutil.ApplyYAxisLabels(chartLines, yLabels, labelWidth, m.styles.Muted)

	if showLabels {
		labelLine := m.styles.Muted.Render(chartutil.LabelLine(canvasWidth, labels))
		chartLines = append(chartLines, strings.Repeat(" ", labelWidth)+" "+labelLine)
	}
	return strings.Join(chartLines, "\n")
}
