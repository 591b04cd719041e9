// Package demo renders the Bubble Tea gallery application.
package demo

import (
	"context"
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/kpumuk/lazychart/barchart"
	"github.com/kpumuk/lazychart/chartdata"
	"github.com/kpumuk/lazychart/format"
	"github.com/kpumuk/lazychart/inspector"
	"github.com/kpumuk/lazychart/internal/demo/source"
	"github.com/kpumuk/lazychart/interp"
	"github.com/kpumuk/lazychart/linechart"
	"github.com/kpumuk/lazychart/sparkline"
	"github.com/kpumuk/lazychart/statpanel"
	"github.com/kpumuk/lazychart/theme"
)

// View indices for the gallery.
const (
	viewLine = iota
	viewBars
	viewStats
	viewInspect
	viewCount
)

var viewNames = [viewCount]string{"Line", "Bars", "Stats", "Inspect"}

// tickMsg is sent on every refresh interval to trigger a series update.
type tickMsg time.Time

// seriesMsg carries a fresh set of series from the data source.
type seriesMsg struct {
	series []chartdata.Series
}

// sourceErrorMsg indicates the data source failed to produce series.
type sourceErrorMsg struct {
	err error
}

// App is the main application model.
type App struct {
	keys       KeyMap
	width      int
	height     int
	ready      bool
	activeView int

	source    source.Source
	series    []chartdata.Series
	selected  int
	sourceErr error

	line   linechart.Model
	bars   barchart.Model
	sparks []sparkline.Model
	stats  statpanel.Model
	insp   inspector.Model

	styles theme.Styles
}

// New creates a new App instance backed by the given data source.
func New(src source.Source) App {
	styles := theme.NewStyles(theme.Default)

	return App{
		keys:   DefaultKeyMap(),
		source: src,
		line: linechart.New(
			linechart.WithStyles(linechart.Styles{
				Axis:  styles.Axis,
				Label: styles.AxisLabel,
			}),
			linechart.WithCurve(interp.Monotone),
		),
		bars: barchart.New(
			barchart.WithStyles(barchart.Styles{
				Axis:  styles.Axis,
				Bar:   styles.Success,
				Muted: styles.Muted,
			}),
		),
		stats: statpanel.New(
			statpanel.WithStyles(statpanel.Styles{
				Label: styles.StatLabel,
				Value: styles.StatValue,
			}),
		),
		insp: inspector.New(
			inspector.WithStyles(inspector.Styles{
				Title:       styles.ChartTitle,
				Text:        styles.Text,
				Key:         styles.JSONKey,
				String:      styles.JSONString,
				Number:      styles.JSONNumber,
				Bool:        styles.JSONBool,
				Null:        styles.JSONNull,
				Punctuation: styles.JSONPunctuation,
				Muted:       styles.Muted,
			}),
		),
		styles: styles,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg { return a.fetchSeriesCmd() }, // Fetch series immediately
		tickCmd(), // Start the ticker for subsequent updates
	)
}

// tickCmd returns a command that sends a tick message after 2 seconds.
func tickCmd() tea.Cmd {
	return tea.Tick(2*time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// fetchSeriesCmd polls the data source and returns a seriesMsg or
// sourceErrorMsg.
func (a App) fetchSeriesCmd() tea.Msg {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	series, err := a.source.Fetch(ctx)
	if err != nil {
		return sourceErrorMsg{err: err}
	}
	return seriesMsg{series: series}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tickMsg:
		cmds = append(cmds, func() tea.Msg {
			return a.fetchSeriesCmd()
		})
		cmds = append(cmds, tickCmd())

	case seriesMsg:
		a.sourceErr = nil
		a.applySeries(msg.series)

	case sourceErrorMsg:
		a.sourceErr = msg.err

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit

		case key.Matches(msg, a.keys.View1):
			a.activeView = viewLine

		case key.Matches(msg, a.keys.View2):
			a.activeView = viewBars

		case key.Matches(msg, a.keys.View3):
			a.activeView = viewStats

		case key.Matches(msg, a.keys.View4):
			a.activeView = viewInspect

		case key.Matches(msg, a.keys.Tab):
			a.activeView = (a.activeView + 1) % viewCount

		case key.Matches(msg, a.keys.ShiftTab):
			a.activeView = (a.activeView + viewCount - 1) % viewCount

		case key.Matches(msg, a.keys.Curve):
			a.line.SetCurve(nextCurve(a.line.Curve()))

		case key.Matches(msg, a.keys.PrevPoint):
			a.selectPoint(a.selected - 1)

		case key.Matches(msg, a.keys.NextPoint):
			a.selectPoint(a.selected + 1)
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true

		// Content fills everything between the title and the footer.
		contentWidth := msg.Width
		contentHeight := max(msg.Height-2, 1)
		a.line.SetSize(contentWidth, contentHeight)
		a.bars.SetSize(contentWidth, contentHeight)
		a.stats.SetSize(contentWidth/2, contentHeight)
		a.insp.SetSize(contentWidth, contentHeight)
		for i := range a.sparks {
			a.sparks[i].SetWidth(contentWidth / 2)
		}
	}

	return a, tea.Batch(cmds...)
}

// applySeries distributes fresh series across all gallery components.
func (a *App) applySeries(series []chartdata.Series) {
	for i := range series {
		series[i].Style = a.styles.Series[i%len(a.styles.Series)]
	}
	a.series = series

	a.line.SetSeries(series...)

	if len(series) > 0 {
		first := series[0]
		values := first.Ys()
		labels := make([]string, len(first.Points))
		for i, p := range first.Points {
			if p.Label != "" {
				labels[i] = p.Label
			} else {
				labels[i] = format.Number(p.X, format.WithMaxFractionDigits(0))
			}
		}
		a.bars.SetData(values, labels)
		a.stats.SetValues(values)
	}

	if len(a.sparks) != len(series) {
		a.sparks = make([]sparkline.Model, len(series))
		for i := range a.sparks {
			a.sparks[i] = sparkline.New(
				sparkline.WithStyles(sparkline.Styles{Line: a.styles.Series[i%len(a.styles.Series)]}),
				sparkline.WithWidth(max(a.width/2, 1)),
			)
		}
	}
	for i := range series {
		a.sparks[i].SetValues(series[i].Ys())
	}

	a.selectPoint(a.selected)
}

// selectPoint clamps the requested index to the inspected series and updates
// the inspector.
func (a *App) selectPoint(index int) {
	if len(a.series) == 0 || len(a.series[len(a.series)-1].Points) == 0 {
		return
	}
	points := a.series[len(a.series)-1].Points
	a.selected = min(max(index, 0), len(points)-1)
	a.insp.SetPoint(points[a.selected])
}

func nextCurve(c interp.Curve) interp.Curve {
	switch c {
	case interp.Linear:
		return interp.Monotone
	case interp.Monotone:
		return interp.Cardinal
	case interp.Cardinal:
		return interp.Natural
	case interp.Natural:
		return interp.Step
	default:
		return interp.Linear
	}
}

// View implements tea.Model.
func (a App) View() tea.View {
	var v tea.View
	v.AltScreen = true

	if !a.ready {
		v.SetContent("Initializing...")
		return v
	}

	var content string
	switch a.activeView {
	case viewLine:
		content = a.line.View()
	case viewBars:
		content = a.bars.View()
	case viewStats:
		content = a.statsView()
	case viewInspect:
		content = a.insp.View()
	}

	v.SetContent(lipgloss.JoinVertical(
		lipgloss.Left,
		a.titleView(),
		content,
		a.footerView(),
	))

	return v
}

// statsView renders one sparkline per series next to the stat panel.
func (a App) statsView() string {
	rows := make([]string, 0, len(a.sparks)*2)
	for i, spark := range a.sparks {
		rows = append(rows, a.styles.Muted.Render(a.series[i].Name))
		rows = append(rows, spark.View())
	}
	left := lipgloss.JoinVertical(lipgloss.Left, rows...)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, a.stats.View())
}

func (a App) titleView() string {
	title := a.styles.ChartTitle.Render(viewNames[a.activeView])
	sub := a.styles.Muted.Render(" · " + a.source.Name() + " · " + a.line.Curve().String())
	return title + sub
}

func (a App) footerView() string {
	if a.sourceErr != nil {
		return a.styles.Failure.Render("source error: " + a.sourceErr.Error())
	}

	var b strings.Builder
	for i, binding := range a.keys.ShortHelp() {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(a.styles.Text.Render(binding.Help().Key))
		b.WriteString(a.styles.Muted.Render(" " + binding.Help().Desc))
	}
	return b.String()
}
