package bubbletea_test

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/gitbutlerapp/butdiff"
	"github.com/muesli/termenv"
)

// trueColorRenderer creates a lipgloss renderer that outputs true colors.
// This is useful for testing color output without affecting global state.
func trueColorRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	return r
}

func ptr(n int) *int { return &n }

// numberedSections returns one context section with n numbered lines.
func numberedSections(n int) []butdiff.ContentSection {
	lines := make([]butdiff.SectionLine, n)
	for i := range lines {
		lines[i] = butdiff.SectionLine{
			Content:          "line",
			BeforeLineNumber: ptr(i + 1),
			AfterLineNumber:  ptr(i + 1),
		}
	}
	return []butdiff.ContentSection{{SectionType: butdiff.SectionContext, Lines: lines}}
}
