// Package bubbletea provides an interactive pager for content sections.
package bubbletea

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gitbutlerapp/butdiff"
	dv "github.com/gitbutlerapp/butdiff/lipgloss"
)

// headerHeight is the number of rows above the viewport.
const headerHeight = 1

type keyMap struct {
	Quit key.Binding
	Top  key.Binding
	End  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c", "esc")),
		Top:  key.NewBinding(key.WithKeys("g", "home")),
		End:  key.NewBinding(key.WithKeys("G", "end")),
	}
}

// Model is a scrollable view of content sections, which may span several
// files.
type Model struct {
	title    string
	sections []butdiff.ContentSection

	theme     dv.Theme
	renderer  *lipgloss.Renderer
	tokenizer butdiff.Tokenizer
	keys      keyMap

	viewport viewport.Model
	ready    bool
}

// Option configures a Model.
type Option func(*Model)

// WithTheme sets the color theme.
func WithTheme(t dv.Theme) Option {
	return func(m *Model) {
		m.theme = t
	}
}

// WithRenderer sets the lipgloss renderer used for styling.
func WithRenderer(r *lipgloss.Renderer) Option {
	return func(m *Model) {
		m.renderer = r
	}
}

// WithTokenizer enables syntax highlighting of sections that carry a Path.
func WithTokenizer(t butdiff.Tokenizer) Option {
	return func(m *Model) {
		m.tokenizer = t
	}
}

// NewModel creates a Model showing sections under title.
func NewModel(title string, sections []butdiff.ContentSection, opts ...Option) Model {
	m := Model{
		title:    title,
		sections: sections,
		theme:    dv.DarkTheme(),
		keys:     defaultKeyMap(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		height := max(msg.Height-headerHeight, 1)
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.viewport.SetContent(m.content())
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Top):
			m.viewport.GotoTop()
			return m, nil
		case key.Matches(msg, m.keys.End):
			m.viewport.GotoBottom()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return ""
	}
	header := dv.NewRenderer(m.theme, m.renderer).Title("── " + m.title)
	return header + "\n" + m.viewport.View()
}

// YOffset returns the index of the first visible content line.
func (m Model) YOffset() int {
	return m.viewport.YOffset
}

func (m Model) content() string {
	if len(m.sections) == 0 {
		return "(no changes)"
	}
	var opts []dv.Option
	if m.tokenizer != nil {
		opts = append(opts, dv.WithTokenizer(m.tokenizer))
	}
	return dv.NewRenderer(m.theme, m.renderer, opts...).Sections(m.sections)
}
