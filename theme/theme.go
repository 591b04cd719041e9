// Package theme defines adaptive color themes and the lipgloss styles
// derived from them. Themes are plain values: style resolution is an explicit
// function of the theme, and applications own their theme Registry instead of
// sharing process-wide state.
package theme

import "charm.land/lipgloss/v2"
import "charm.land/lipgloss/v2/compat"

// Theme defines all colors used by the chart components.
type Theme struct {
	// Base colors
	Primary compat.CompleteAdaptiveColor

	// Text colors
	Text      compat.CompleteAdaptiveColor
	TextMuted compat.CompleteAdaptiveColor

	// Background colors
	Bg compat.AdaptiveColor

	// Border colors
	Border      compat.AdaptiveColor
	BorderFocus compat.CompleteAdaptiveColor

	// Accent colors
	Success compat.AdaptiveColor
	Error   compat.AdaptiveColor

	// SeriesPalette colors series in declaration order, wrapping around when
	// a chart plots more series than the palette holds.
	SeriesPalette []compat.AdaptiveColor
}

// SeriesColor returns the palette color for series index i, wrapping around
// the palette. An empty palette falls back to the border color.
func (t Theme) SeriesColor(i int) compat.AdaptiveColor {
	if len(t.SeriesPalette) == 0 {
		return t.Border
	}
	if i < 0 {
		i = 0
	}
	return t.SeriesPalette[i%len(t.SeriesPalette)]
}

// Default is the adaptive color scheme used when no theme is registered.
// Use Open Color palette when possible to define colors: https://yeun.github.io/open-color/
var Default = Theme{
	Primary: compat.CompleteAdaptiveColor{
		Light: compat.CompleteColor{TrueColor: lipgloss.Color("#1971C2"), ANSI256: lipgloss.Color("25"), ANSI: lipgloss.Color("4")},
		Dark:  compat.CompleteColor{TrueColor: lipgloss.Color("#4DABF7"), ANSI256: lipgloss.Color("75"), ANSI: lipgloss.Color("12")},
	},

	// Text
	Text: compat.CompleteAdaptiveColor{
		Light: compat.CompleteColor{TrueColor: lipgloss.Color("#111827"), ANSI256: lipgloss.Color("0"), ANSI: lipgloss.Color("0")},
		Dark:  compat.CompleteColor{TrueColor: lipgloss.Color("#F9FAFB"), ANSI256: lipgloss.Color("15"), ANSI: lipgloss.Color("15")},
	},
	TextMuted: compat.CompleteAdaptiveColor{
		Light: compat.CompleteColor{TrueColor: lipgloss.Color("#6B7280"), ANSI256: lipgloss.Color("240"), ANSI: lipgloss.Color("8")},
		Dark:  compat.CompleteColor{TrueColor: lipgloss.Color("#9CA3AF"), ANSI256: lipgloss.Color("250"), ANSI: lipgloss.Color("7")},
	},

	// Backgrounds
	Bg: compat.AdaptiveColor{
		Light: lipgloss.Color("15"),
		Dark:  lipgloss.Color("0"),
	},

	// Borders
	Border: compat.AdaptiveColor{
		Light: lipgloss.Color("#D1D5DB"), // Gray-300
		Dark:  lipgloss.Color("#374151"), // Gray-700
	},
	BorderFocus: compat.CompleteAdaptiveColor{
		Light: compat.CompleteColor{TrueColor: lipgloss.Color("#1971C2"), ANSI256: lipgloss.Color("25"), ANSI: lipgloss.Color("4")},
		Dark:  compat.CompleteColor{TrueColor: lipgloss.Color("#4DABF7"), ANSI256: lipgloss.Color("75"), ANSI: lipgloss.Color("12")},
	},

	// Accents
	Success: compat.AdaptiveColor{
		Light: lipgloss.Color("#16A34A"),
		Dark:  lipgloss.Color("#22C55E"),
	},
	Error: compat.AdaptiveColor{
		Light: lipgloss.Color("#FF0000"),
		Dark:  lipgloss.Color("#FF0000"),
	},

	SeriesPalette: []compat.AdaptiveColor{
		{Light: lipgloss.Color("#1C7ED6"), Dark: lipgloss.Color("#4DABF7")}, // blue
		{Light: lipgloss.Color("#E8590C"), Dark: lipgloss.Color("#FF922B")}, // orange
		{Light: lipgloss.Color("#2F9E44"), Dark: lipgloss.Color("#51CF66")}, // green
		{Light: lipgloss.Color("#9C36B5"), Dark: lipgloss.Color("#CC5DE8")}, // grape
		{Light: lipgloss.Color("#E03131"), Dark: lipgloss.Color("#FF6B6B")}, // red
		{Light: lipgloss.Color("#0C8599"), Dark: lipgloss.Color("#22B8CF")}, // cyan
	},
}

// Styles holds all lipgloss styles derived from a theme
type Styles struct {
	// Charts
	Axis       lipgloss.Style
	AxisLabel  lipgloss.Style
	ChartTitle lipgloss.Style
	Series     []lipgloss.Style

	// Stat panel
	StatLabel lipgloss.Style
	StatValue lipgloss.Style

	// Inspector
	JSONKey         lipgloss.Style
	JSONString      lipgloss.Style
	JSONNumber      lipgloss.Style
	JSONBool        lipgloss.Style
	JSONNull        lipgloss.Style
	JSONPunctuation lipgloss.Style

	// Content
	Text  lipgloss.Style
	Muted lipgloss.Style

	// Layout helpers
	BoxPadding  lipgloss.Style
	BorderStyle lipgloss.Style
	FocusBorder lipgloss.Style

	// Status
	Success lipgloss.Style
	Failure lipgloss.Style
}

// NewStyles creates a Styles instance from the given theme. The theme is an
// explicit parameter: two apps with different themes never share styles.
func NewStyles(t Theme) Styles {
	seriesStyles := make([]lipgloss.Style, len(t.SeriesPalette))
	for i := range t.SeriesPalette {
		seriesStyles[i] = lipgloss.NewStyle().Foreground(t.SeriesColor(i))
	}

	return Styles{
		// Charts
		Axis: lipgloss.NewStyle().
			Foreground(t.Border),

		AxisLabel: lipgloss.NewStyle().
			Foreground(t.TextMuted),

		ChartTitle: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),

		Series: seriesStyles,

		// Stat panel
		StatLabel: lipgloss.NewStyle().
			Foreground(t.TextMuted),

		StatValue: lipgloss.NewStyle().
			Foreground(t.Text).
			Bold(true),

		// Inspector
		JSONKey: lipgloss.NewStyle().
			Foreground(t.Primary),

		JSONString: lipgloss.NewStyle().
			Foreground(t.Success),

		JSONNumber: lipgloss.NewStyle().
			Foreground(t.Text),

		JSONBool: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),

		JSONNull: lipgloss.NewStyle().
			Foreground(t.TextMuted).
			Italic(true),

		JSONPunctuation: lipgloss.NewStyle().
			Foreground(t.TextMuted),

		// Content
		Text: lipgloss.NewStyle().
			Foreground(t.Text),

		Muted: lipgloss.NewStyle().
			Foreground(t.TextMuted),

		// Layout helpers
		BoxPadding: lipgloss.NewStyle().
			Padding(0, 1),

		BorderStyle: lipgloss.NewStyle().
			Foreground(t.Border),

		FocusBorder: lipgloss.NewStyle().
			Foreground(t.BorderFocus),

		Success: lipgloss.NewStyle().
			Foreground(t.Success),

		Failure: lipgloss.NewStyle().
			Foreground(t.Error),
	}
}
