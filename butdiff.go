// Package butdiff provides domain types for computing, parsing and quoting diffs.
package butdiff

import "math"

// Unknown marks a hunk header number that was absent or could not be parsed.
const Unknown = math.MinInt

// Op represents the operation applied to a run of items in an edit script.
type Op int

// Edit script operations.
const (
	OpEqual Op = iota
	OpInsert
	OpDelete
	OpEdit // reserved; no differ produces it
)

func (o Op) String() string {
	switch o {
	case OpEqual:
		return "equal"
	case OpInsert:
		return "insert"
	case OpDelete:
		return "delete"
	case OpEdit:
		return "edit"
	default:
		return "unknown"
	}
}

// Group is a contiguous run of items sharing one operation.
type Group[T any] struct {
	Op    Op
	Items []T
}

// DiffArray is an ordered edit script. Adjacent groups never share an Op.
type DiffArray[T any] []Group[T]

// Old returns the items of the Equal and Delete groups, which reconstruct
// the first input.
func (d DiffArray[T]) Old() []T {
	return d.collect(OpDelete)
}

// New returns the items of the Equal and Insert groups, which reconstruct
// the second input.
func (d DiffArray[T]) New() []T {
	return d.collect(OpInsert)
}

func (d DiffArray[T]) collect(side Op) []T {
	var out []T
	for _, g := range d {
		if g.Op == OpEqual || g.Op == side {
			out = append(out, g.Items...)
		}
	}
	return out
}

// Distance returns the number of inserted and deleted items.
func (d DiffArray[T]) Distance() int {
	var n int
	for _, g := range d {
		if g.Op != OpEqual {
			n += len(g.Items)
		}
	}
	return n
}

// TextEdit is one operation of a free-text edit script.
type TextEdit struct {
	Op   Op
	Text string
}
