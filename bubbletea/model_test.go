package bubbletea_test

import (
	"bytes"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/gitbutlerapp/butdiff"
	"github.com/gitbutlerapp/butdiff/bubbletea"
	dv "github.com/gitbutlerapp/butdiff/lipgloss"
	"github.com/gitbutlerapp/butdiff/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModel_RendersTitleAndLines(t *testing.T) {
	t.Parallel()

	sections := []butdiff.ContentSection{
		{SectionType: butdiff.SectionContext, Lines: []butdiff.SectionLine{
			{Content: "package auth", BeforeLineNumber: ptr(1), AfterLineNumber: ptr(1)},
		}},
		{SectionType: butdiff.SectionAddedLines, Lines: []butdiff.SectionLine{
			{Content: "func login() {}", AfterLineNumber: ptr(2)},
		}},
	}

	m := bubbletea.NewModel("src/auth.go", sections)
	tm := teatest.NewTestModel(t, m,
		teatest.WithInitialTermSize(80, 24),
	)

	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("src/auth.go")) &&
			bytes.Contains(out, []byte("+func login() {}"))
	})

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	tm.WaitFinished(t, teatest.WithFinalTimeout(time.Second))
}

func TestModel_UsesThemeColors(t *testing.T) {
	t.Parallel()

	sections := []butdiff.ContentSection{
		{SectionType: butdiff.SectionRemovedLines, Lines: []butdiff.SectionLine{
			{Content: "gone", BeforeLineNumber: ptr(3)},
		}},
	}

	m := bubbletea.NewModel("x.go", sections,
		bubbletea.WithTheme(dv.TestTheme()),
		bubbletea.WithRenderer(trueColorRenderer()),
	)
	tm := teatest.NewTestModel(t, m,
		teatest.WithInitialTermSize(80, 24),
	)

	// TestTheme draws removed lines in pure red.
	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("38;2;255;0;0"))
	})

	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
	tm.WaitFinished(t, teatest.WithFinalTimeout(time.Second))
}

func TestModel_ShowsPlaceholderWithoutSections(t *testing.T) {
	t.Parallel()

	m := bubbletea.NewModel("empty.go", nil)
	tm := teatest.NewTestModel(t, m,
		teatest.WithInitialTermSize(80, 24),
	)

	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("(no changes)"))
	})

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	tm.WaitFinished(t, teatest.WithFinalTimeout(time.Second))
}

func TestModel_Scrolls(t *testing.T) {
	t.Parallel()

	m := bubbletea.NewModel("long.go", numberedSections(100))
	tm := teatest.NewTestModel(t, m,
		teatest.WithInitialTermSize(80, 10),
	)

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'G'}})
	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	tm.WaitFinished(t, teatest.WithFinalTimeout(time.Second))

	final, ok := tm.FinalModel(t).(bubbletea.Model)
	require.True(t, ok)
	// 100 lines in a 9-row viewport.
	assert.Equal(t, 91, final.YOffset())
}

func TestModel_Update_WindowResize(t *testing.T) {
	t.Parallel()

	m := bubbletea.NewModel("a.go", numberedSections(3))
	assert.Empty(t, m.View(), "view is empty before the first size message")

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 5})
	view := updated.(bubbletea.Model).View()
	assert.Contains(t, view, "a.go")
	assert.Contains(t, view, "line")

	updated, _ = updated.Update(tea.WindowSizeMsg{Width: 20, Height: 3})
	assert.Contains(t, updated.(bubbletea.Model).View(), "a.go")
}

func TestModel_HighlightsSyntax(t *testing.T) {
	t.Parallel()

	sections := []butdiff.ContentSection{
		{SectionType: butdiff.SectionAddedLines, Path: "src/auth.go", Lines: []butdiff.SectionLine{
			{Content: "func login() {}", AfterLineNumber: ptr(2)},
		}},
	}
	tokenizer := &mock.Tokenizer{
		TokenizeFn: func(name, source string) []butdiff.Token {
			assert.Equal(t, "src/auth.go", name)
			return []butdiff.Token{{Text: source, Style: butdiff.Style{Foreground: "#abcdef"}}}
		},
	}

	m := bubbletea.NewModel("src/auth.go", sections,
		bubbletea.WithTheme(dv.TestTheme()),
		bubbletea.WithRenderer(trueColorRenderer()),
		bubbletea.WithTokenizer(tokenizer),
	)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 10})

	// #abcdef
	assert.Contains(t, updated.(bubbletea.Model).View(), "38;2;171;205;239")
}
