// Package chartutil provides shared rendering helpers for chart components.
package chartutil

import (
	"cmp"
	"math"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/kpumuk/lazychart/format"
)

// Clamp restricts a value to be within a specified range.
// Returns low if val < low, high if val > high, otherwise returns val.
func Clamp[T cmp.Ordered](val, low, high T) T {
	if val < low {
		return low
	}
	if val > high {
		return high
	}
	return val
}

// IndexMap creates a mapping from source indices to target indices.
// Used to remap data series to fit available space.
func IndexMap(total, target int) []int {
	if total <= 0 || target <= 0 {
		return nil
	}
	mapping := make([]int, total)
	if total == 1 {
		return mapping
	}
	maxIdx := float64(target - 1)
	denom := float64(total - 1)
	for i := range total {
		mapping[i] = int(math.Round(float64(i) * maxIdx / denom))
	}
	return mapping
}

// Resample aggregates values into a target number of buckets. Values landing
// in the same bucket are summed when the target is smaller than the source.
func Resample(values []float64, target int) []float64 {
	if len(values) == 0 || target <= 0 {
		return nil
	}
	mapping := IndexMap(len(values), target)
	out := make([]float64, target)
	for i, v := range values {
		out[mapping[i]] += v
	}
	return out
}

// ValueLabel formats a y-axis value label. Large magnitudes use the compact
// K/M/B form; everything else keeps one fraction digit.
func ValueLabel(v float64) string {
	if math.Abs(v) >= 10_000 {
		return format.ShortCompact(int64(math.Round(v)))
	}
	return format.Number(v, format.WithMaxFractionDigits(1), format.WithoutGrouping())
}

// YAxisLabels creates y-axis labels for values from 0 up to maxVal.
// Returns a map of row index to label string.
func YAxisLabels(maxVal float64, height int) map[int]string {
	labels := make(map[int]string)
	if height <= 0 {
		return labels
	}
	if maxVal < 0 {
		maxVal = 0
	}
	tickCount := min(4, height)
	if tickCount < 2 {
		labels[height-1] = ValueLabel(0)
		return labels
	}
	for i := range tickCount {
		row := int(math.Round(float64(i) * float64(height-1) / float64(tickCount-1)))
		val := maxVal * float64(tickCount-1-i) / float64(tickCount-1)
		labels[row] = ValueLabel(val)
	}
	return labels
}

// MaxLabelWidth returns the maximum display width of labels in a map.
func MaxLabelWidth(labels map[int]string) int {
	maxWidth := 0
	for _, label := range labels {
		maxWidth = max(maxWidth, lipgloss.Width(label))
	}
	return maxWidth
}

// MaxLabelWidthFromSlice returns the maximum display width of labels in a slice.
func MaxLabelWidthFromSlice(labels []string) int {
	maxWidth := 0
	for _, label := range labels {
		maxWidth = max(maxWidth, lipgloss.Width(label))
	}
	return maxWidth
}

// ApplyYAxisLabels prepends y-axis labels to chart lines.
// Each line gets a label if present in the labels map, or spacing otherwise.
func ApplyYAxisLabels(lines []string, labels map[int]string, width int, style lipgloss.Style) []string {
	if width <= 0 {
		return lines
	}
	out := make([]string, 0, len(lines))
	for i, line := range lines {
		raw := labels[i]
		padWidth := max(width-lipgloss.Width(raw), 0)
		prefix := strings.Repeat(" ", padWidth)
		if raw != "" {
			raw = style.Render(raw)
		}
		out = append(out, prefix+raw+" "+line)
	}
	return out
}

// LabelLine creates a horizontal label line with evenly spaced labels.
// Labels are centered at their positions and non-overlapping.
func LabelLine(width int, labels []string) string {
	if width <= 0 {
		return ""
	}
	line := make([]rune, width)
	for i := range line {
		line[i] = ' '
	}
	if len(labels) == 0 || width < 2 {
		return string(line)
	}

	plotWidth := max(width-1, 1)
	positions := IndexMap(len(labels), plotWidth)
	lastEnd := -1
	for i, label := range labels {
		if label == "" {
			continue
		}
		pos := positions[i] + 1
		labelRunes := []rune(label)
		start := pos - len(labelRunes)/2
		start = max(start, 0)
		end := start + len(labelRunes)
		end = min(end, width)
		if start <= lastEnd+1 {
			continue
		}
		length := end - start
		if length <= 0 {
			continue
		}
		if length < len(labelRunes) {
			labelRunes = labelRunes[:length]
		}
		for j, r := range labelRunes {
			line[start+j] = r
		}
		lastEnd = start + len(labelRunes) - 1
	}
	return string(line)
}

// CenterMessage centers content within a given width and height.
// Handles multi-line content by centering vertically and horizontally.
func CenterMessage(width, height int, value string) string {
	if height < 1 {
		return ""
	}
	lines := make([]string, height)
	for i := range lines {
		lines[i] = strings.Repeat(" ", width)
	}
	if width <= 0 {
		return strings.Join(lines, "\n")
	}

	contentLines := strings.Split(value, "\n")
	contentHeight := len(contentLines)
	startLine := max((height-contentHeight)/2, 0)

	maxWidthStyle := lipgloss.NewStyle()
	for i, contentLine := range contentLines {
		lineIdx := startLine + i
		if lineIdx >= height {
			break
		}
		trimmed := maxWidthStyle.MaxWidth(width).Render(contentLine)
		pad := max((width-lipgloss.Width(trimmed))/2, 0)
		lines[lineIdx] = strings.Repeat(" ", pad) + trimmed
	}

	return strings.Join(lines, "\n")
}
