package butdiff

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// LineType classifies a line within a hunk.
type LineType int

// Line types.
const (
	LineContext LineType = iota
	LineAdded
	LineRemoved
)

func (t LineType) String() string {
	switch t {
	case LineAdded:
		return "added"
	case LineRemoved:
		return "removed"
	default:
		return "context"
	}
}

// MarshalJSON encodes the type as "context", "added" or "removed".
func (t LineType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes "context", "added" or "removed".
func (t *LineType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "context":
		*t = LineContext
	case "added":
		*t = LineAdded
	case "removed":
		*t = LineRemoved
	default:
		return fmt.Errorf("unknown line type %q", s)
	}
	return nil
}

// HunkHeader holds the numbers from an "@@ -a,b +c,d @@" line. Any field may
// be Unknown.
type HunkHeader struct {
	OldStart  int
	OldLength int
	NewStart  int
	NewLength int
}

// Known reports whether every field of the header was parsed.
func (h HunkHeader) Known() bool {
	return h.OldStart != Unknown && h.OldLength != Unknown &&
		h.NewStart != Unknown && h.NewLength != Unknown
}

// String renders the header line. Unknown fields render as "NaN".
func (h HunkHeader) String() string {
	return fmt.Sprintf("@@ -%s,%s +%s,%s @@",
		formatNum(h.OldStart), formatNum(h.OldLength),
		formatNum(h.NewStart), formatNum(h.NewLength))
}

func formatNum(n int) string {
	if n == Unknown {
		return "NaN"
	}
	return strconv.Itoa(n)
}

// HunkLine is a classified body line of a hunk with its sigil removed.
type HunkLine struct {
	Type LineType
	Line string
}

// UnifiedHunk is a parsed hunk. The header counts are not checked against
// the body.
type UnifiedHunk struct {
	Header HunkHeader
	Lines  []HunkLine
}

// DiffHunk is the wire form of a hunk: its header numbers plus raw text.
type DiffHunk struct {
	OldStart int    `json:"oldStart"`
	OldLines int    `json:"oldLines"`
	NewStart int    `json:"newStart"`
	NewLines int    `json:"newLines"`
	Diff     string `json:"diff"`
}

// DiffPatchLine is a classified line carrying its original line numbers.
// Left is the line number before the change, Right after it.
type DiffPatchLine struct {
	Type  LineType `json:"type"`
	Left  *int     `json:"left,omitempty"`
	Right *int     `json:"right,omitempty"`
	Line  string   `json:"line"`
}

// DiffPatch is an ordered list of classified lines, as quoted in chat.
type DiffPatch []DiffPatchLine
