// Package format provides number formatting helpers for chart labels.
package format

import (
	"fmt"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// printer renders locale-aware numbers. English grouping ("1,234.5") matches
// the axis labels the components expect.
var printer = message.NewPrinter(language.English)

// Options controls Number output.
type Options struct {
	MaxFractionDigits int
	MinFractionDigits int
	Grouping          bool
}

// Option mutates Options.
type Option func(*Options)

// WithMaxFractionDigits caps the number of digits after the decimal point.
func WithMaxFractionDigits(n int) Option {
	return func(o *Options) { o.MaxFractionDigits = n }
}

// WithMinFractionDigits pads the fraction to at least n digits.
func WithMinFractionDigits(n int) Option {
	return func(o *Options) { o.MinFractionDigits = n }
}

// WithoutGrouping disables thousands separators.
func WithoutGrouping() Option {
	return func(o *Options) { o.Grouping = false }
}

// Number formats v with at most one fraction digit and thousands separators
// by default. Options adjust fraction digits and grouping.
func Number(v float64, opts ...Option) string {
	o := Options{MaxFractionDigits: 1, MinFractionDigits: 0, Grouping: true}
	for _, opt := range opts {
		opt(&o)
	}

	if printer == nil {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	numOpts := []number.Option{
		number.MaxFractionDigits(o.MaxFractionDigits),
		number.MinFractionDigits(o.MinFractionDigits),
	}
	if !o.Grouping {
		numOpts = append(numOpts, number.NoSeparator())
	}
	return printer.Sprint(number.Decimal(v, numOpts...))
}

// Percentage formats v as a percentage: the value is multiplied by 100 and a
// percent sign appended, with at most maxFractionDigits after the point.
func Percentage(v float64, maxFractionDigits int) string {
	if printer == nil {
		return strconv.FormatFloat(v*100, 'f', -1, 64) + "%"
	}
	return printer.Sprint(number.Percent(v, number.MaxFractionDigits(maxFractionDigits)))
}

// Compact formats a number with K/M suffixes for readability.
func Compact(n int64) string {
	switch {
	case n >= 1_000_000_000:
		return fmt.Sprintf("%.1fB", float64(n)/1_000_000_000)
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	default:
		return fmt.Sprintf("%d", n)
	}
}

// ShortCompact formats a number into a compact 4-char max string (e.g., 999, 9.9K, 120K).
func ShortCompact(n int64) string {
	switch {
	case n < 1_000:
		return fmt.Sprintf("%d", n)
	case n < 10_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	case n < 1_000_000:
		return fmt.Sprintf("%dK", n/1_000)
	case n < 10_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n < 1_000_000_000:
		return fmt.Sprintf("%dM", n/1_000_000)
	case n < 10_000_000_000:
		return fmt.Sprintf("%.1fB", float64(n)/1_000_000_000)
	default:
		return fmt.Sprintf("%dB", n/1_000_000_000)
	}
}
