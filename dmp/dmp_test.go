package dmp_test

import (
	"math/rand"
	"testing"

	"github.com/gitbutlerapp/butdiff"
	"github.com/gitbutlerapp/butdiff/dmp"
	"github.com/stretchr/testify/assert"
)

func TestTextDiffer_Diff(t *testing.T) {
	t.Parallel()

	t.Run("identical text is one equal edit", func(t *testing.T) {
		t.Parallel()

		edits := dmp.NewTextDiffer().Diff("same", "same", false)
		assert.Equal(t, []butdiff.TextEdit{{Op: butdiff.OpEqual, Text: "same"}}, edits)
	})

	t.Run("empty inputs yield no edits", func(t *testing.T) {
		t.Parallel()

		edits := dmp.NewTextDiffer().Diff("", "", true)
		assert.Empty(t, edits)
	})

	t.Run("reconstructs both texts", func(t *testing.T) {
		t.Parallel()

		pairs := [][2]string{
			{"hello world", "hello universe"},
			{"mouse", "sofas"},
			{"The cat sat on the mat.", "The dog sat on a mat!"},
			{"日本語テキスト", "日本のテキスト"},
		}
		differ := dmp.NewTextDiffer()
		for _, p := range pairs {
			for _, cleanup := range []bool{false, true} {
				edits := differ.Diff(p[0], p[1], cleanup)
				assert.Equal(t, p[0], dmp.Old(edits), "cleanup=%v", cleanup)
				assert.Equal(t, p[1], dmp.New(edits), "cleanup=%v", cleanup)
			}
		}
	})

	t.Run("cleanup merges fragmented edits", func(t *testing.T) {
		t.Parallel()

		differ := dmp.NewTextDiffer()
		raw := differ.Diff("mouse", "sofas", false)
		clean := differ.Diff("mouse", "sofas", true)

		assert.Greater(t, len(raw), 2, "raw script should be fragmented")
		assert.Equal(t, []butdiff.TextEdit{
			{Op: butdiff.OpDelete, Text: "mouse"},
			{Op: butdiff.OpInsert, Text: "sofas"},
		}, clean)
	})
}

func TestTextDiffer_Cleanup(t *testing.T) {
	t.Parallel()

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		differ := dmp.NewTextDiffer()
		for i, p := range randomPairs(rand.New(rand.NewSource(3)), 2000) {
			clean := differ.Diff(p[0], p[1], true)
			assert.Equal(t, clean, differ.Cleanup(clean), "pair %d: %q -> %q", i, p[0], p[1])
			assert.Equal(t, p[0], dmp.Old(clean))
			assert.Equal(t, p[1], dmp.New(clean))
		}
	})

	t.Run("settles fragmented scripts", func(t *testing.T) {
		t.Parallel()

		differ := dmp.NewTextDiffer()
		clean := differ.Diff("cb\nb", "ca\nac\naccb\n\nbb   c", true)
		assert.Equal(t, clean, differ.Cleanup(clean))
		assert.Equal(t, clean, differ.Cleanup(differ.Diff("cb\nb", "ca\nac\naccb\n\nbb   c", false)))
	})

	t.Run("does not modify its input", func(t *testing.T) {
		t.Parallel()

		differ := dmp.NewTextDiffer()
		raw := differ.Diff("mouse", "sofas", false)
		snapshot := append([]butdiff.TextEdit(nil), raw...)

		differ.Cleanup(raw)
		assert.Equal(t, snapshot, raw)
	})
}

// randomPairs returns n text pairs over a small alphabet with spaces and
// newlines, which is where semantic cleanup finds the most to merge.
func randomPairs(rng *rand.Rand, n int) [][2]string {
	const alphabet = "ab c\n"
	gen := func() string {
		b := make([]byte, rng.Intn(16))
		for i := range b {
			b[i] = alphabet[rng.Intn(len(alphabet))]
		}
		return string(b)
	}
	pairs := make([][2]string, n)
	for i := range pairs {
		pairs[i] = [2]string{gen(), gen()}
	}
	return pairs
}
