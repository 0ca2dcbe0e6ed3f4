package butdiff

import "io"

// PatchParser parses unified-diff text into hunks.
type PatchParser interface {
	// ParseHunks returns the hunks of text in encounter order. Malformed
	// input yields partial output rather than an error.
	ParseHunks(text string) []UnifiedHunk
}

// LineDiffer computes line-granularity edit scripts.
type LineDiffer interface {
	DiffLines(a, b []string) DiffArray[string]
}

// TextDiffer computes character-granularity edit scripts over free text.
type TextDiffer interface {
	// Diff returns the edits turning a into b. When cleanup is set,
	// fragmented edits are merged into coherent runs.
	Diff(a, b string, cleanup bool) []TextEdit
}

// RangeCodec turns selected diff-line positions into an opaque reference.
type RangeCodec interface {
	Encode(indices []int) string
	// Decode returns nil for a reference it does not recognize.
	Decode(ref string) []int
}

// ChangeParser reads version-control diff output into per-file results.
type ChangeParser interface {
	Parse(r io.Reader) ([]FileChange, error)
}
