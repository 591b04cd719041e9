// Package inspector renders a chart point with its metadata as
// syntax-highlighted JSON.
package inspector

import (
	"encoding/json"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/charmbracelet/x/ansi"

	"github.com/kpumuk/lazychart/chartdata"
	"github.com/kpumuk/lazychart/format"
)

// Styles holds styles for the inspector.
type Styles struct {
	Title       lipgloss.Style
	Text        lipgloss.Style
	Key         lipgloss.Style
	String      lipgloss.Style
	Number      lipgloss.Style
	Bool        lipgloss.Style
	Null        lipgloss.Style
	Punctuation lipgloss.Style
	Muted       lipgloss.Style
}

// DefaultStyles returns default styles.
func DefaultStyles() Styles {
	return Styles{
		Title:       lipgloss.NewStyle().Bold(true),
		Text:        lipgloss.NewStyle(),
		Key:         lipgloss.NewStyle(),
		String:      lipgloss.NewStyle(),
		Number:      lipgloss.NewStyle(),
		Bool:        lipgloss.NewStyle(),
		Null:        lipgloss.NewStyle(),
		Punctuation: lipgloss.NewStyle(),
		Muted:       lipgloss.NewStyle(),
	}
}

// Model is the inspector component state.
type Model struct {
	styles Styles
	width  int
	height int

	header string
	lines  []string
	tokens [][]chroma.Token
	offset int
}

// Option is used to set options in New.
type Option func(*Model)

// New creates a new inspector model.
func New(opts ...Option) Model {
	m := Model{
		styles: DefaultStyles(),
	}

	for _, opt := range opts {
		opt(&m)
	}

	return m
}

// WithStyles sets the styles.
func WithStyles(s Styles) Option {
	return func(m *Model) {
		m.styles = s
	}
}

// WithSize sets the dimensions.
func WithSize(width, height int) Option {
	return func(m *Model) {
		m.width = width
		m.height = height
	}
}

// WithPoint sets the point to inspect.
func WithPoint(p chartdata.Point) Option {
	return func(m *Model) {
		m.SetPoint(p)
	}
}

// SetStyles sets the styles.
func (m *Model) SetStyles(s Styles) {
	m.styles = s
}

// SetSize sets the dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Width returns the width.
func (m Model) Width() int {
	return m.width
}

// Height returns the height.
func (m Model) Height() int {
	return m.height
}

// LineCount returns the number of metadata lines.
func (m Model) LineCount() int {
	return len(m.lines)
}

// ScrollTo sets the first visible metadata line.
func (m *Model) ScrollTo(offset int) {
	m.offset = max(offset, 0)
}

// SetPoint formats and tokenizes the point for display. The header carries
// the label (when present) and the coordinates; the body is the metadata
// serialized as indented JSON.
func (m *Model) SetPoint(p chartdata.Point) {
	m.lines = nil
	m.tokens = nil
	m.offset = 0

	coords := "(" + format.Number(p.X, format.WithMaxFractionDigits(2)) +
		", " + format.Number(p.Y, format.WithMaxFractionDigits(2)) + ")"
	if p.Label != "" {
		m.header = p.Label + " " + coords
	} else {
		m.header = coords
	}

	if len(p.Metadata) == 0 {
		return
	}

	b, err := json.MarshalIndent(p.Metadata, "", "  ")
	if err != nil {
		m.lines = []string{"{}", "  Error formatting JSON"}
		return
	}

	jsonText := string(b)
	m.lines = strings.Split(jsonText, "\n")
	m.tokens = tokenizeJSONLines(jsonText)
	if len(m.tokens) != len(m.lines) {
		m.tokens = nil
	}
}

// View renders the inspector to a string.
func (m Model) View() string {
	if m.width < 1 || m.height < 1 {
		return ""
	}

	out := make([]string, 0, m.height)
	out = append(out, clip(m.styles.Title.Render(m.header), m.width))

	for i := m.offset; i < len(m.lines) && len(out) < m.height; i++ {
		out = append(out, m.renderLine(i))
	}

	return strings.Join(out, "\n")
}

// renderLine renders a single metadata line with syntax highlighting.
func (m Model) renderLine(index int) string {
	if index < 0 || index >= len(m.lines) {
		return ""
	}
	if len(m.tokens) == len(m.lines) {
		return m.renderTokens(m.tokens[index])
	}
	return m.styles.Text.Render(clip(m.lines[index], m.width))
}

func (m Model) renderTokens(tokens []chroma.Token) string {
	var builder strings.Builder
	col := 0

	for _, token := range tokens {
		if token.Type == chroma.EOFType {
			break
		}

		tokenWidth := lipgloss.Width(token.Value)
		if tokenWidth == 0 {
			continue
		}
		if col >= m.width {
			break
		}

		segment := token.Value
		if col+tokenWidth > m.width {
			segment = ansi.Cut(segment, 0, m.width-col)
		}
		builder.WriteString(m.styleForToken(token).Render(segment))
		col += tokenWidth
	}

	return builder.String()
}

func (m Model) styleForToken(token chroma.Token) lipgloss.Style {
	switch {
	case token.Type == chroma.NameTag:
		return m.styles.Key
	case token.Type.InSubCategory(chroma.LiteralString):
		return m.styles.String
	case token.Type.InSubCategory(chroma.LiteralNumber):
		return m.styles.Number
	case token.Type.InCategory(chroma.Keyword):
		if token.Value == "null" {
			return m.styles.Null
		}
		return m.styles.Bool
	case token.Type.InCategory(chroma.Comment):
		return m.styles.Muted
	case token.Type == chroma.Punctuation:
		return m.styles.Punctuation
	default:
		return m.styles.Text
	}
}

func clip(line string, width int) string {
	if lipgloss.Width(line) <= width {
		return line
	}
	return ansi.Cut(line, 0, width)
}

func tokenizeJSONLines(jsonText string) [][]chroma.Token {
	if jsonLexer == nil {
		return nil
	}

	iterator, err := jsonLexer.Tokenise(nil, jsonText)
	if err != nil {
		return nil
	}

	lines := [][]chroma.Token{{}}
	for _, token := range iterator.Tokens() {
		if token.Type == chroma.EOFType {
			break
		}
		if token.Value == "" {
			continue
		}

		parts := strings.Split(token.Value, "\n")
		for i, part := range parts {
			if i > 0 {
				lines = append(lines, []chroma.Token{})
			}
			if part == "" {
				continue
			}
			lines[len(lines)-1] = append(lines[len(lines)-1], chroma.Token{Type: token.Type, Value: part})
		}
	}

	return lines
}

var jsonLexer = func() chroma.Lexer {
	lexer := lexers.Get("json")
	if lexer == nil {
		return nil
	}
	return chroma.Coalesce(lexer)
}()
