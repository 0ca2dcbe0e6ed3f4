// Package dmp provides free-text character diffs using diff-match-patch.
package dmp

import (
	"slices"

	"github.com/gitbutlerapp/butdiff"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Compile-time interface verification.
var _ butdiff.TextDiffer = (*TextDiffer)(nil)

// maxCleanupPasses bounds the semantic cleanup loop. Scripts settle within
// a handful of passes.
const maxCleanupPasses = 64

// TextDiffer diffs arbitrary text character by character.
type TextDiffer struct {
	dmp *diffmatchpatch.DiffMatchPatch
}

// NewTextDiffer creates a TextDiffer. The diff timeout is disabled so every
// result is a shortest edit script.
func NewTextDiffer() *TextDiffer {
	d := diffmatchpatch.New()
	d.DiffTimeout = 0
	return &TextDiffer{dmp: d}
}

// Diff returns the edits turning a into b. With cleanup set, the script is
// passed through Cleanup.
func (t *TextDiffer) Diff(a, b string, cleanup bool) []butdiff.TextEdit {
	diffs := t.dmp.DiffMain(a, b, false)
	if cleanup {
		diffs = t.settle(diffs)
	}
	return fromDMP(diffs)
}

// Cleanup merges fragmented, low-signal edits into coherent runs. The
// reconstructed texts are unchanged, and cleaning an already clean script is
// a no-op. Do not use it on token streams standing in for lines.
func (t *TextDiffer) Cleanup(edits []butdiff.TextEdit) []butdiff.TextEdit {
	return fromDMP(t.settle(toDMP(edits)))
}

// settle repeats semantic cleanup until a pass leaves the script unchanged.
// A single pass can expose new equalities for the next one to absorb.
func (t *TextDiffer) settle(diffs []diffmatchpatch.Diff) []diffmatchpatch.Diff {
	cur := dropEmpty(diffs)
	for range maxCleanupPasses {
		next := dropEmpty(t.dmp.DiffCleanupSemantic(slices.Clone(cur)))
		if slices.Equal(next, cur) {
			break
		}
		cur = next
	}
	return cur
}

func dropEmpty(diffs []diffmatchpatch.Diff) []diffmatchpatch.Diff {
	out := make([]diffmatchpatch.Diff, 0, len(diffs))
	for _, d := range diffs {
		if d.Text != "" {
			out = append(out, d)
		}
	}
	return out
}

// Old reconstructs the first text of an edit script.
func Old(edits []butdiff.TextEdit) string {
	return join(edits, butdiff.OpDelete)
}

// New reconstructs the second text of an edit script.
func New(edits []butdiff.TextEdit) string {
	return join(edits, butdiff.OpInsert)
}

func join(edits []butdiff.TextEdit, side butdiff.Op) string {
	var n int
	for _, e := range edits {
		n += len(e.Text)
	}
	buf := make([]byte, 0, n)
	for _, e := range edits {
		if e.Op == butdiff.OpEqual || e.Op == side {
			buf = append(buf, e.Text...)
		}
	}
	return string(buf)
}

func fromDMP(diffs []diffmatchpatch.Diff) []butdiff.TextEdit {
	edits := make([]butdiff.TextEdit, 0, len(diffs))
	for _, d := range diffs {
		if d.Text == "" {
			continue
		}
		var op butdiff.Op
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			op = butdiff.OpInsert
		case diffmatchpatch.DiffDelete:
			op = butdiff.OpDelete
		default:
			op = butdiff.OpEqual
		}
		edits = append(edits, butdiff.TextEdit{Op: op, Text: d.Text})
	}
	return edits
}

func toDMP(edits []butdiff.TextEdit) []diffmatchpatch.Diff {
	diffs := make([]diffmatchpatch.Diff, 0, len(edits))
	for _, e := range edits {
		var typ diffmatchpatch.Operation
		switch e.Op {
		case butdiff.OpInsert:
			typ = diffmatchpatch.DiffInsert
		case butdiff.OpDelete:
			typ = diffmatchpatch.DiffDelete
		default:
			typ = diffmatchpatch.DiffEqual
		}
		diffs = append(diffs, diffmatchpatch.Diff{Type: typ, Text: e.Text})
	}
	return diffs
}
