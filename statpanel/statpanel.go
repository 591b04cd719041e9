// Package statpanel renders a summary statistics block for a value series.
package statpanel

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/kpumuk/lazychart/chartdata"
	"github.com/kpumuk/lazychart/format"
	"github.com/kpumuk/lazychart/internal/chartutil"
)

// Styles holds the visual styles for the stat panel.
type Styles struct {
	Label lipgloss.Style // Style for stat names
	Value lipgloss.Style // Style for stat values
}

// DefaultStyles returns sensible default styles.
func DefaultStyles() Styles {
	return Styles{
		Label: lipgloss.NewStyle().Faint(true),
		Value: lipgloss.NewStyle().Bold(true),
	}
}

// Model holds the stat panel state.
type Model struct {
	styles       Styles
	width        int
	height       int
	stats        chartdata.Statistics
	hasStats     bool
	emptyMessage string
}

// Option is a functional option for configuring the stat panel.
type Option func(*Model)

// New creates a new stat panel model with functional options.
func New(opts ...Option) Model {
	m := Model{
		styles: DefaultStyles(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// WithStyles sets custom styles for the stat panel.
func WithStyles(s Styles) Option {
	return func(m *Model) { m.styles = s }
}

// WithSize sets the dimensions of the stat panel.
func WithSize(w, h int) Option {
	return func(m *Model) { m.width, m.height = w, h }
}

// WithValues computes and sets the statistics for the given values.
func WithValues(values []float64) Option {
	return func(m *Model) { m.SetValues(values) }
}

// WithEmptyMessage sets the message to display when there's no data.
func WithEmptyMessage(msg string) Option {
	return func(m *Model) { m.emptyMessage = msg }
}

// SetStyles updates the stat panel styles.
func (m *Model) SetStyles(s Styles) {
	m.styles = s
}

// SetSize updates the stat panel dimensions.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// SetValues computes statistics over values. Empty input clears the panel;
// the empty state renders instead of zeroed stats.
func (m *Model) SetValues(values []float64) {
	m.stats, m.hasStats = chartdata.Calculate(values)
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

// Statistics returns the current statistics. ok is false when the panel has
// no data.
func (m Model) Statistics() (chartdata.Statistics, bool) {
	return m.stats, m.hasStats
}

// View renders the stat panel to a string.
func (m Model) View() string {
	if m.width < 1 || m.height < 1 {
		return ""
	}
	if !m.hasStats {
		return chartutil.CenterMessage(m.width, m.height, m.emptyMessage)
	}

	two := []format.Option{format.WithMaxFractionDigits(2)}
	rows := []struct {
		label string
		value string
	}{
		{"count", format.Number(float64(m.stats.Count), format.WithMaxFractionDigits(0))},
		{"sum", format.Number(m.stats.Sum, two...)},
		{"mean", format.Number(m.stats.Mean, two...)},
		{"median", format.Number(m.stats.Median, two...)},
		{"min", format.Number(m.stats.Min, two...)},
		{"max", format.Number(m.stats.Max, two...)},
		{"variance", format.Number(m.stats.Variance, two...)},
		{"stddev", format.Number(m.stats.StdDev, two...)},
	}

	labelWidth := 0
	for _, row := range rows {
		labelWidth = max(labelWidth, len(row.label))
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		if len(lines) >= m.height {
			break
		}
		label := m.styles.Label.Render(padRight(row.label, labelWidth))
		value := m.styles.Value.Render(row.value)
		line := label + " " + value
		if lipgloss.Width(line) > m.width {
			line = lipgloss.NewStyle().MaxWidth(m.width).Render(line)
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
