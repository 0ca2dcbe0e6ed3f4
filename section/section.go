// Package section groups classified diff lines into display sections and
// reconstructs either side of a patch.
package section

import (
	"strings"

	"github.com/gitbutlerapp/butdiff"
)

// Build groups lines into runs of the same type in a single pass. Added and
// removed content loses its sigil; context content is kept as is.
func Build(lines []butdiff.DiffPatchLine) []butdiff.ContentSection {
	var sections []butdiff.ContentSection
	var current *butdiff.ContentSection
	for i, l := range lines {
		typ := sectionType(l.Type)
		if i == 0 || l.Type != lines[i-1].Type {
			sections = append(sections, butdiff.ContentSection{SectionType: typ})
			current = &sections[len(sections)-1]
		}
		current.Lines = append(current.Lines, butdiff.SectionLine{
			Content:          content(l),
			BeforeLineNumber: l.Left,
			AfterLineNumber:  l.Right,
		})
	}
	return sections
}

// Before reconstructs the text as it was before the change.
func Before(lines []butdiff.DiffPatchLine) string {
	return side(lines, butdiff.LineAdded)
}

// After reconstructs the text as it is after the change.
func After(lines []butdiff.DiffPatchLine) string {
	return side(lines, butdiff.LineRemoved)
}

func side(lines []butdiff.DiffPatchLine, drop butdiff.LineType) string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if l.Type == drop {
			continue
		}
		out = append(out, content(l))
	}
	return strings.Join(out, "\n")
}

func content(l butdiff.DiffPatchLine) string {
	switch l.Type {
	case butdiff.LineAdded:
		return strings.TrimPrefix(l.Line, "+")
	case butdiff.LineRemoved:
		return strings.TrimPrefix(l.Line, "-")
	default:
		return l.Line
	}
}

func sectionType(t butdiff.LineType) butdiff.SectionType {
	switch t {
	case butdiff.LineAdded:
		return butdiff.SectionAddedLines
	case butdiff.LineRemoved:
		return butdiff.SectionRemovedLines
	default:
		return butdiff.SectionContext
	}
}
