package format_test

import (
	"testing"

	"github.com/kpumuk/lazychart/format"
)

func TestNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		v    float64
		opts []format.Option
		want string
	}{
		{
			name: "default rounds to one fraction digit",
			v:    2.34,
			want: "2.3",
		},
		{
			name: "default rounds up",
			v:    2.36,
			want: "2.4",
		},
		{
			name: "integer keeps no fraction by default",
			v:    42,
			want: "42",
		},
		{
			name: "grouping separators",
			v:    1234567.89,
			want: "1,234,567.9",
		},
		{
			name: "grouping disabled",
			v:    1234567,
			opts: []format.Option{format.WithoutGrouping()},
			want: "1234567",
		},
		{
			name: "zero fraction digits truncates",
			v:    99.9,
			opts: []format.Option{format.WithMaxFractionDigits(0)},
			want: "100",
		},
		{
			name: "min fraction digits pads",
			v:    5,
			opts: []format.Option{format.WithMinFractionDigits(2), format.WithMaxFractionDigits(2)},
			want: "5.00",
		},
		{
			name: "negative value",
			v:    -1234.5,
			want: "-1,234.5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := format.Number(tt.v, tt.opts...); got != tt.want {
				t.Errorf("Number(%v) = %q, want %q", tt.v, got, tt.want)
			}
		})
	}
}

func TestNumberRoundingIsConsistent(t *testing.T) {
	t.Parallel()

	// Exact tie-breaking is locale machinery; what matters is that the same
	// input always formats the same way.
	first := format.Number(0.25, format.WithMaxFractionDigits(1))
	for range 10 {
		if got := format.Number(0.25, format.WithMaxFractionDigits(1)); got != first {
			t.Fatalf("Number(0.25) varied between calls: %q then %q", first, got)
		}
	}
}

func TestPercentage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		v      float64
		digits int
		want   string
	}{
		{name: "half", v: 0.5, digits: 1, want: "50%"},
		{name: "fraction digit retained", v: 0.123, digits: 1, want: "12.3%"},
		{name: "rounded to whole", v: 0.678, digits: 0, want: "68%"},
		{name: "over 100", v: 1.5, digits: 0, want: "150%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := format.Percentage(tt.v, tt.digits); got != tt.want {
				t.Errorf("Percentage(%v, %d) = %q, want %q", tt.v, tt.digits, got, tt.want)
			}
		})
	}
}

func TestCompact(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n    int64
		want string
	}{
		{n: 0, want: "0"},
		{n: 999, want: "999"},
		{n: 1_500, want: "1.5K"},
		{n: 2_500_000, want: "2.5M"},
		{n: 3_100_000_000, want: "3.1B"},
	}

	for _, tt := range tests {
		if got := format.Compact(tt.n); got != tt.want {
			t.Errorf("Compact(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestShortCompact(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n    int64
		want string
	}{
		{n: 999, want: "999"},
		{n: 9_900, want: "9.9K"},
		{n: 120_000, want: "120K"},
		{n: 9_500_000, want: "9.5M"},
		{n: 120_000_000, want: "120M"},
		{n: 9_800_000_000, want: "9.8B"},
		{n: 120_000_000_000, want: "120B"},
	}

	for _, tt := range tests {
		if got := format.ShortCompact(tt.n); got != tt.want {
			t.Errorf("ShortCompact(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
