package chartutil

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

func TestIndexMap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		total  int
		target int
		want   []int
	}{
		{name: "identity", total: 3, target: 3, want: []int{0, 1, 2}},
		{name: "downsample", total: 4, target: 2, want: []int{0, 0, 1, 1}},
		{name: "single source", total: 1, target: 5, want: []int{0}},
		{name: "zero total", total: 0, target: 5, want: nil},
		{name: "zero target", total: 5, target: 0, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := IndexMap(tt.total, tt.target)
			if len(got) != len(tt.want) {
				t.Fatalf("IndexMap(%d, %d) = %v, want %v", tt.total, tt.target, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("IndexMap(%d, %d)[%d] = %d, want %d", tt.total, tt.target, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestResample(t *testing.T) {
	t.Parallel()

	got := Resample([]float64{1, 2, 3, 4}, 2)
	if len(got) != 2 || got[0] != 3 || got[1] != 7 {
		t.Errorf("Resample() = %v, want [3 7]", got)
	}

	if got := Resample(nil, 3); got != nil {
		t.Errorf("Resample(nil) = %v, want nil", got)
	}
}

func TestValueLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		v    float64
		want string
	}{
		{v: 0, want: "0"},
		{v: 2.5, want: "2.5"},
		{v: 999.94, want: "999.9"},
		{v: 25_000, want: "25K"},
		{v: 2_500_000, want: "2.5M"},
	}

	for _, tt := range tests {
		if got := ValueLabel(tt.v); got != tt.want {
			t.Errorf("ValueLabel(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestYAxisLabels(t *testing.T) {
	t.Parallel()

	labels := YAxisLabels(100, 5)
	if labels[0] != "100" {
		t.Errorf("top label = %q, want 100", labels[0])
	}
	if labels[4] != "0" {
		t.Errorf("bottom label = %q, want 0", labels[4])
	}

	if got := YAxisLabels(50, 0); len(got) != 0 {
		t.Errorf("zero height produced labels: %v", got)
	}

	short := YAxisLabels(50, 1)
	if short[0] != "0" {
		t.Errorf("single-row labels = %v", short)
	}
}

func TestApplyYAxisLabels(t *testing.T) {
	t.Parallel()

	lines := []string{"a", "b"}
	labels := map[int]string{0: "10"}
	out := ApplyYAxisLabels(lines, labels, 2, lipgloss.NewStyle())
	if len(out) != 2 {
		t.Fatalf("ApplyYAxisLabels() returned %d lines", len(out))
	}
	if ansi.Strip(out[0]) != "10 a" {
		t.Errorf("labeled line = %q", ansi.Strip(out[0]))
	}
	if ansi.Strip(out[1]) != "   b" {
		t.Errorf("padded line = %q", ansi.Strip(out[1]))
	}
}

func TestLabelLine(t *testing.T) {
	t.Parallel()

	line := LabelLine(20, []string{"a", "b", "c"})
	if len([]rune(line)) != 20 {
		t.Fatalf("LabelLine width = %d, want 20", len([]rune(line)))
	}
	for _, want := range []string{"a", "b", "c"} {
		if !strings.Contains(line, want) {
			t.Errorf("LabelLine missing %q: %q", want, line)
		}
	}

	if got := LabelLine(0, []string{"a"}); got != "" {
		t.Errorf("LabelLine(0) = %q", got)
	}
}

func TestCenterMessage(t *testing.T) {
	t.Parallel()

	out := CenterMessage(10, 3, "hi")
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("CenterMessage() returned %d lines, want 3", len(lines))
	}
	if !strings.Contains(lines[1], "hi") {
		t.Errorf("message not centered vertically: %q", out)
	}
	for i, line := range lines {
		if w := ansi.StringWidth(line); w > 10 {
			t.Errorf("line %d width = %d, want <= 10", i, w)
		}
	}
}

func TestClamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		val  int
		low  int
		high int
		want int
	}{
		{name: "within range", val: 5, low: 0, high: 10, want: 5},
		{name: "below minimum", val: -5, low: 0, high: 10, want: 0},
		{name: "above maximum", val: 15, low: 0, high: 10, want: 10},
		{name: "equals minimum", val: 0, low: 0, high: 10, want: 0},
		{name: "equals maximum", val: 10, low: 0, high: 10, want: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Clamp(tt.val, tt.low, tt.high)
			if got != tt.want {
				t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tt.val, tt.low, tt.high, got, tt.want)
			}
		})
	}

	if got := Clamp(2.5, 0.0, 2.0); got != 2.0 {
		t.Errorf("Clamp(2.5, 0.0, 2.0) = %v, want 2.0", got)
	}
}
