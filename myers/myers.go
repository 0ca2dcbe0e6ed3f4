// Package myers computes shortest edit scripts with the Myers O((N+M)D)
// algorithm and builds line diffs on top of it.
package myers

import "github.com/gitbutlerapp/butdiff"

// Diff returns a shortest edit script turning a into b. Within each changed
// region deletions are emitted before insertions.
//
// The search is the linear-space variant: each step finds the middle of a
// shortest path by running the greedy search from both ends at once, then
// recurses on the two halves. Memory stays O(N+M) whatever the distance.
func Diff[T comparable](a, b []T) butdiff.DiffArray[T] {
	var s script[T]
	s.diff(a, b)
	s.flush()
	return s.out
}

// script accumulates groups, merging runs that share an Op. Deletions and
// insertions are held back until the next equal run so that a changed
// region always reads deletions first.
type script[T comparable] struct {
	out  butdiff.DiffArray[T]
	dels []T
	ins  []T
}

func (s *script[T]) equal(items []T) {
	if len(items) == 0 {
		return
	}
	s.flush()
	s.add(butdiff.OpEqual, items)
}

func (s *script[T]) flush() {
	s.add(butdiff.OpDelete, s.dels)
	s.add(butdiff.OpInsert, s.ins)
	s.dels, s.ins = nil, nil
}

func (s *script[T]) add(op butdiff.Op, items []T) {
	if len(items) == 0 {
		return
	}
	if n := len(s.out); n > 0 && s.out[n-1].Op == op {
		s.out[n-1].Items = append(s.out[n-1].Items, items...)
		return
	}
	s.out = append(s.out, butdiff.Group[T]{Op: op, Items: append([]T(nil), items...)})
}

func (s *script[T]) diff(a, b []T) {
	var prefix int
	for prefix < len(a) && prefix < len(b) && a[prefix] == b[prefix] {
		prefix++
	}
	s.equal(a[:prefix])
	a, b = a[prefix:], b[prefix:]

	var suffix int
	for suffix < len(a) && suffix < len(b) && a[len(a)-1-suffix] == b[len(b)-1-suffix] {
		suffix++
	}
	tail := a[len(a)-suffix:]
	a, b = a[:len(a)-suffix], b[:len(b)-suffix]

	switch {
	case len(a) == 0:
		s.ins = append(s.ins, b...)
	case len(b) == 0:
		s.dels = append(s.dels, a...)
	default:
		if x, y, ok := bisect(a, b); ok {
			s.diff(a[:x], b[:y])
			s.diff(a[x:], b[y:])
		} else {
			s.dels = append(s.dels, a...)
			s.ins = append(s.ins, b...)
		}
	}
	s.equal(tail)
}

// bisect returns a point (x, y) on a shortest path from (0, 0) to
// (len(a), len(b)) where the forward and reverse searches meet. ok is false
// when a and b share no items, in which case the path is every deletion
// followed by every insertion. a and b must be non-empty and differ in both
// their first and last items.
func bisect[T comparable](a, b []T) (x, y int, ok bool) {
	n, m := len(a), len(b)
	maxD := (n + m + 1) / 2
	offset := maxD
	size := 2 * maxD

	// fwd[offset+k] is the furthest x reached on diagonal k = x - y from the
	// start; rev holds the same for the search from the end, measured from
	// the end. -1 marks a diagonal not reached yet.
	fwd := make([]int, size)
	rev := make([]int, size)
	for i := range fwd {
		fwd[i], rev[i] = -1, -1
	}
	fwd[offset+1], rev[offset+1] = 0, 0

	delta := n - m
	// With an odd delta the paths meet during a forward round, otherwise
	// during a reverse round.
	front := delta%2 != 0

	// Diagonals whose paths left the grid are trimmed from later rounds.
	var fwdLo, fwdHi, revLo, revHi int

	for d := 0; d < maxD; d++ {
		for k := -d + fwdLo; k <= d-fwdHi; k += 2 {
			i := offset + k
			var x1 int
			if k == -d || (k != d && fwd[i-1] < fwd[i+1]) {
				x1 = fwd[i+1]
			} else {
				x1 = fwd[i-1] + 1
			}
			y1 := x1 - k
			for x1 < n && y1 < m && a[x1] == b[y1] {
				x1++
				y1++
			}
			fwd[i] = x1
			switch {
			case x1 > n:
				fwdHi += 2
			case y1 > m:
				fwdLo += 2
			case front:
				j := offset + delta - k
				if j >= 0 && j < size && rev[j] != -1 && x1 >= n-rev[j] {
					return x1, y1, true
				}
			}
		}

		for k := -d + revLo; k <= d-revHi; k += 2 {
			i := offset + k
			var x2 int
			if k == -d || (k != d && rev[i-1] < rev[i+1]) {
				x2 = rev[i+1]
			} else {
				x2 = rev[i-1] + 1
			}
			y2 := x2 - k
			for x2 < n && y2 < m && a[n-x2-1] == b[m-y2-1] {
				x2++
				y2++
			}
			rev[i] = x2
			switch {
			case x2 > n:
				revHi += 2
			case y2 > m:
				revLo += 2
			case !front:
				j := offset + delta - k
				if j >= 0 && j < size && fwd[j] != -1 {
					x1 := fwd[j]
					y1 := x1 - (delta - k)
					if x1 >= n-x2 {
						return x1, y1, true
					}
				}
			}
		}
	}
	return 0, 0, false
}
