package unified

import (
	"strings"

	"github.com/gitbutlerapp/butdiff"
)

// ParsePatch parses patch text as git writes it. Unlike ParseHunks it
// drops "\ No newline at end of file" markers, which annotate the previous
// line rather than being lines themselves, and a single trailing newline
// does not produce an extra context line.
func ParsePatch(text string) []butdiff.UnifiedHunk {
	return NewParser().ParseHunks(dropMarkers(strings.TrimSuffix(text, "\n")))
}

// dropMarkers removes lines starting with a backslash.
func dropMarkers(text string) string {
	if !strings.Contains(text, "\\") {
		return text
	}
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if !strings.HasPrefix(line, "\\") {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

// ParseDiffHunk parses the raw text of a wire hunk the way ParsePatch does.
// When the text carries no "@@" header the wire numbers are used for it.
func ParseDiffHunk(h butdiff.DiffHunk) butdiff.UnifiedHunk {
	text := strings.TrimSuffix(h.Diff, "\n")
	if !strings.HasPrefix(text, "@@") {
		header := butdiff.HunkHeader{
			OldStart:  h.OldStart,
			OldLength: h.OldLines,
			NewStart:  h.NewStart,
			NewLength: h.NewLines,
		}
		text = header.String() + "\n" + text
	}

	hunks := ParsePatch(text)
	if len(hunks) == 0 {
		return butdiff.UnifiedHunk{}
	}
	out := hunks[0]
	for _, extra := range hunks[1:] {
		out.Lines = append(out.Lines, extra.Lines...)
	}
	return out
}

// PatchLines flattens hunks into classified lines numbered on both sides.
// Added and removed lines keep their sigil; context lines are bare. A side
// whose start is unknown gets no numbers.
func PatchLines(hunks []butdiff.UnifiedHunk) butdiff.DiffPatch {
	var out butdiff.DiffPatch
	for _, h := range hunks {
		left, right := h.Header.OldStart, h.Header.NewStart
		leftKnown := left != butdiff.Unknown
		rightKnown := right != butdiff.Unknown

		for _, l := range h.Lines {
			pl := butdiff.DiffPatchLine{Type: l.Type}
			switch l.Type {
			case butdiff.LineAdded:
				pl.Line = "+" + l.Line
				if rightKnown {
					pl.Right = intPtr(right)
				}
				right++
			case butdiff.LineRemoved:
				pl.Line = "-" + l.Line
				if leftKnown {
					pl.Left = intPtr(left)
				}
				left++
			default:
				pl.Line = l.Line
				if leftKnown {
					pl.Left = intPtr(left)
				}
				if rightKnown {
					pl.Right = intPtr(right)
				}
				left++
				right++
			}
			out = append(out, pl)
		}
	}
	return out
}

// CountChanges returns the number of added and removed lines in hunks.
func CountChanges(hunks []butdiff.UnifiedHunk) (added, removed int) {
	for _, h := range hunks {
		for _, l := range h.Lines {
			switch l.Type {
			case butdiff.LineAdded:
				added++
			case butdiff.LineRemoved:
				removed++
			}
		}
	}
	return added, removed
}

// Format renders hunks back into unified-diff text, one header line per
// hunk and a sigil on every body line.
func Format(hunks []butdiff.UnifiedHunk) string {
	var b strings.Builder
	for _, h := range hunks {
		b.WriteString(h.Header.String())
		b.WriteByte('\n')
		for _, l := range h.Lines {
			switch l.Type {
			case butdiff.LineAdded:
				b.WriteByte('+')
			case butdiff.LineRemoved:
				b.WriteByte('-')
			default:
				b.WriteByte(' ')
			}
			b.WriteString(l.Line)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func intPtr(n int) *int {
	return &n
}
