package myers

import (
	"strings"

	"github.com/gitbutlerapp/butdiff"
)

// Compile-time interface verification.
var _ butdiff.LineDiffer = (*LineDiffer)(nil)

// LineDiffer diffs sequences of lines by interning each line as a token.
type LineDiffer struct{}

// NewLineDiffer creates a new LineDiffer.
func NewLineDiffer() *LineDiffer {
	return &LineDiffer{}
}

// DiffLines returns the line edit script turning a into b. Identical inputs
// yield a single Equal group; two empty inputs yield an empty script.
func (d *LineDiffer) DiffLines(a, b []string) butdiff.DiffArray[string] {
	mapper := NewMapper[string]()
	tokensA := encode(mapper, a)
	tokensB := encode(mapper, b)

	script := Diff(tokensA, tokensB)
	out := make(butdiff.DiffArray[string], 0, len(script))
	for _, g := range script {
		lines := make([]string, 0, len(g.Items))
		for _, tok := range g.Items {
			if line, ok := mapper.FromToken(tok); ok {
				lines = append(lines, line)
			}
		}
		out = append(out, butdiff.Group[string]{Op: g.Op, Items: lines})
	}
	return out
}

// DiffText splits both texts into lines and diffs them.
func (d *LineDiffer) DiffText(a, b string) butdiff.DiffArray[string] {
	return d.DiffLines(SplitLines(a), SplitLines(b))
}

func encode(m *Mapper[string], lines []string) []Token {
	tokens := make([]Token, len(lines))
	for i, line := range lines {
		tokens[i] = m.ToToken(line)
	}
	return tokens
}

// SplitLines splits text on newlines. A trailing newline does not produce an
// empty final line, and empty text produces no lines.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
