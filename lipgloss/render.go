package lipgloss

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gitbutlerapp/butdiff"
)

// Renderer turns content sections into styled text.
type Renderer struct {
	lg        *lipgloss.Renderer
	tokenizer butdiff.Tokenizer

	title   lipgloss.Style
	added   lipgloss.Style
	removed lipgloss.Style
	context lipgloss.Style
	gutter  lipgloss.Style
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithTokenizer highlights the content of sections that carry a Path.
func WithTokenizer(t butdiff.Tokenizer) Option {
	return func(r *Renderer) {
		r.tokenizer = t
	}
}

// NewRenderer creates a Renderer drawing with theme. If r is nil, the
// default lipgloss renderer is used.
func NewRenderer(theme Theme, r *lipgloss.Renderer, opts ...Option) *Renderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	p := theme.Palette()
	out := &Renderer{
		lg:      r,
		title:   r.NewStyle().Foreground(p.Title).Bold(true),
		added:   r.NewStyle().Foreground(p.Added),
		removed: r.NewStyle().Foreground(p.Removed),
		context: r.NewStyle().Foreground(p.Context),
		gutter:  r.NewStyle().Foreground(p.Gutter),
	}
	for _, opt := range opts {
		opt(out)
	}
	return out
}

// Title renders a heading line.
func (r *Renderer) Title(s string) string {
	return r.title.Render(s)
}

// Sections renders every line of sections as
// "<before> <after> <sigil><content>", one per output line.
func (r *Renderer) Sections(sections []butdiff.ContentSection) string {
	width := gutterWidth(sections)
	var lines []string
	for _, s := range sections {
		style, sigil := r.context, " "
		switch s.SectionType {
		case butdiff.SectionAddedLines:
			style, sigil = r.added, "+"
		case butdiff.SectionRemovedLines:
			style, sigil = r.removed, "-"
		}
		for _, l := range s.Lines {
			gutter := pad(l.BeforeLineNumber, width) + " " + pad(l.AfterLineNumber, width) + " "
			content := ExpandTabs(l.Content, DisplayWidth(gutter)+1)
			lines = append(lines, r.gutter.Render(gutter)+r.line(s.Path, sigil, content, style))
		}
	}
	return strings.Join(lines, "\n")
}

// line renders the sigil and content in the line style, or with syntax
// colors when a tokenizer knows the file's language.
func (r *Renderer) line(path, sigil, content string, style lipgloss.Style) string {
	if r.tokenizer == nil || path == "" {
		return style.Render(sigil + content)
	}
	tokens := r.tokenizer.Tokenize(path, content)
	if tokens == nil {
		return style.Render(sigil + content)
	}

	var b strings.Builder
	b.WriteString(style.Render(sigil))
	for _, tok := range tokens {
		if tok.Style.Foreground == "" && !tok.Style.Bold {
			b.WriteString(style.Render(tok.Text))
			continue
		}
		ts := style
		if tok.Style.Foreground != "" {
			ts = r.lg.NewStyle().Foreground(lipgloss.Color(tok.Style.Foreground))
		}
		b.WriteString(ts.Bold(tok.Style.Bold).Render(tok.Text))
	}
	return b.String()
}

func gutterWidth(sections []butdiff.ContentSection) int {
	width := 1
	for _, s := range sections {
		for _, l := range s.Lines {
			for _, n := range []*int{l.BeforeLineNumber, l.AfterLineNumber} {
				if n != nil {
					width = max(width, len(strconv.Itoa(*n)))
				}
			}
		}
	}
	return width
}

func pad(n *int, width int) string {
	if n == nil {
		return strings.Repeat(" ", width)
	}
	s := strconv.Itoa(*n)
	return strings.Repeat(" ", width-len(s)) + s
}
