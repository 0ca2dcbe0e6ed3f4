// Package rangeref encodes selected diff-line positions as opaque,
// versioned reference strings.
package rangeref

import (
	"encoding/base64"
	"encoding/binary"
	"slices"
	"strings"

	"github.com/gitbutlerapp/butdiff"
)

// Compile-time interface verification.
var _ butdiff.RangeCodec = (*Codec)(nil)

// prefix identifies version 1 references.
const prefix = "r1."

// Codec encodes and decodes range references. A reference depends only on
// positions, so it stays valid while the diff is unchanged.
type Codec struct{}

// NewCodec creates a new Codec.
func NewCodec() *Codec {
	return &Codec{}
}

// Encode sorts a copy of indices and returns its reference: the first index
// as a signed varint followed by the gaps between neighbors as unsigned
// varints, base64url encoded.
func (c *Codec) Encode(indices []int) string {
	sorted := slices.Clone(indices)
	slices.Sort(sorted)

	buf := make([]byte, 0, len(sorted)*2)
	for i, n := range sorted {
		if i == 0 {
			buf = binary.AppendVarint(buf, int64(n))
			continue
		}
		buf = binary.AppendUvarint(buf, uint64(n-sorted[i-1]))
	}
	return prefix + base64.RawURLEncoding.EncodeToString(buf)
}

// Decode returns the indices behind ref, or nil if ref is not a reference
// this Codec produced.
func (c *Codec) Decode(ref string) []int {
	payload, ok := strings.CutPrefix(ref, prefix)
	if !ok {
		return nil
	}
	buf, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return nil
	}

	indices := []int{}
	for len(buf) > 0 {
		if len(indices) == 0 {
			first, n := binary.Varint(buf)
			if n <= 0 {
				return nil
			}
			indices = append(indices, int(first))
			buf = buf[n:]
			continue
		}
		gap, n := binary.Uvarint(buf)
		if n <= 0 {
			return nil
		}
		indices = append(indices, indices[len(indices)-1]+int(gap))
		buf = buf[n:]
	}
	return indices
}

// Spans collapses sorted indices into inclusive [first, last] runs of
// consecutive positions.
func Spans(indices []int) [][2]int {
	var spans [][2]int
	for _, n := range indices {
		if k := len(spans); k > 0 && (n == spans[k-1][1] || n == spans[k-1][1]+1) {
			spans[k-1][1] = n
			continue
		}
		spans = append(spans, [2]int{n, n})
	}
	return spans
}
