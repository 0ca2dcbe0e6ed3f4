package bubbletea

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gitbutlerapp/butdiff"
)

// Compile-time interface verification.
var _ butdiff.Viewer = (*Viewer)(nil)

// Viewer runs a Model as a full-screen program.
type Viewer struct {
	Input   io.Reader // nil for the terminal
	Output  io.Writer // nil for the terminal
	Options []Option
}

// View shows sections and blocks until the user quits or ctx is done.
func (v *Viewer) View(ctx context.Context, title string, sections []butdiff.ContentSection) error {
	opts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}
	if v.Input != nil {
		opts = append(opts, tea.WithInput(v.Input))
	}
	if v.Output != nil {
		opts = append(opts, tea.WithOutput(v.Output))
	}

	p := tea.NewProgram(NewModel(title, sections, v.Options...), opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run viewer: %w", err)
	}
	return nil
}
