package lipgloss

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// tabWidth is the standard terminal tab stop interval.
const tabWidth = 8

// DisplayWidth calculates the display width of a string, correctly handling
// tab characters which expand to the next 8-column boundary.
// lipgloss.Width alone counts tabs as zero columns.
func DisplayWidth(s string) int {
	return displayWidthFrom(s, 0)
}

// displayWidthFrom calculates the display width of s starting from column
// startCol, since tab expansion depends on the current column.
func displayWidthFrom(s string, startCol int) int {
	col := startCol
	for _, r := range s {
		if r == '\t' {
			col = nextTabStop(col)
		} else {
			col += lipgloss.Width(string(r))
		}
	}
	return col
}

// ExpandTabs replaces tabs in s with spaces up to the next tab stop,
// assuming s is printed starting at column startCol.
func ExpandTabs(s string, startCol int) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	var b strings.Builder
	col := startCol
	for _, r := range s {
		if r == '\t' {
			next := nextTabStop(col)
			b.WriteString(strings.Repeat(" ", next-col))
			col = next
			continue
		}
		b.WriteRune(r)
		col += lipgloss.Width(string(r))
	}
	return b.String()
}

func nextTabStop(col int) int {
	return ((col / tabWidth) + 1) * tabWidth
}
