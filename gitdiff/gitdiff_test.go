package gitdiff_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gitbutlerapp/butdiff"
	"github.com/gitbutlerapp/butdiff/gitdiff"
	"github.com/gitbutlerapp/butdiff/logging"
	"github.com/gitbutlerapp/butdiff/section"
	"github.com/gitbutlerapp/butdiff/unified"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const modifiedDiff = `diff --git a/src/auth.go b/src/auth.go
index 0000001..0000002 100644
--- a/src/auth.go
+++ b/src/auth.go
@@ -1,3 +1,4 @@
 package auth
 
+func login() {}
 func logout() {}
`

const binaryDiff = `diff --git a/logo.png b/logo.png
index 0000001..0000002 100644
Binary files a/logo.png and b/logo.png differ
`

const newFileDiff = `diff --git a/hello.go b/hello.go
new file mode 100644
index 0000000..e69de29
--- /dev/null
+++ b/hello.go
@@ -0,0 +1,2 @@
+package main
+func hello() {}
`

func TestParser_Parse(t *testing.T) {
	t.Parallel()

	t.Run("classifies a text change as a patch", func(t *testing.T) {
		t.Parallel()

		changes, err := gitdiff.NewParser().Parse(strings.NewReader(modifiedDiff))
		require.NoError(t, err)
		require.Len(t, changes, 1)

		assert.Equal(t, "src/auth.go", changes[0].Path())
		patch, ok := changes[0].Diff.(butdiff.Patch)
		require.True(t, ok, "expected Patch, got %T", changes[0].Diff)
		require.Len(t, patch.Hunks, 1)

		h := patch.Hunks[0]
		assert.Equal(t, butdiff.DiffHunk{OldStart: 1, OldLines: 3, NewStart: 1, NewLines: 4, Diff: h.Diff}, h)
		assert.True(t, strings.HasPrefix(h.Diff, "@@ -1,3 +1,4 @@\n"))
		require.NotNil(t, patch.LinesAdded)
		require.NotNil(t, patch.LinesRemoved)
		assert.Equal(t, 1, *patch.LinesAdded)
		assert.Equal(t, 0, *patch.LinesRemoved)
		assert.False(t, patch.IsResultOfBinaryToTextConversion)
	})

	t.Run("hunk text parses back", func(t *testing.T) {
		t.Parallel()

		changes, err := gitdiff.NewParser().Parse(strings.NewReader(modifiedDiff))
		require.NoError(t, err)
		patch := changes[0].Diff.(butdiff.Patch)

		hunk := unified.ParseDiffHunk(patch.Hunks[0])
		assert.Equal(t, []butdiff.HunkLine{
			{Type: butdiff.LineContext, Line: "package auth"},
			{Type: butdiff.LineContext, Line: ""},
			{Type: butdiff.LineAdded, Line: "func login() {}"},
			{Type: butdiff.LineContext, Line: "func logout() {}"},
		}, hunk.Lines)
	})

	t.Run("classifies binary files", func(t *testing.T) {
		t.Parallel()

		changes, err := gitdiff.NewParser().Parse(strings.NewReader(binaryDiff))
		require.NoError(t, err)
		require.Len(t, changes, 1)

		assert.Equal(t, butdiff.Binary{}, changes[0].Diff)
		assert.Equal(t, "logo.png", changes[0].Path())
	})

	t.Run("classifies oversized patches", func(t *testing.T) {
		t.Parallel()

		var logs bytes.Buffer
		logger, err := logging.New(&logs, "info", "text")
		require.NoError(t, err)

		parser := gitdiff.NewParser(gitdiff.WithMaxPatchBytes(10), gitdiff.WithLogger(logger))
		changes, err := parser.Parse(strings.NewReader(modifiedDiff))
		require.NoError(t, err)
		require.Len(t, changes, 1)

		tooLarge, ok := changes[0].Diff.(butdiff.TooLarge)
		require.True(t, ok, "expected TooLarge, got %T", changes[0].Diff)
		assert.Greater(t, tooLarge.SizeInBytes, uint64(10))
		assert.Contains(t, logs.String(), "patch too large")
	})

	t.Run("reports new files without an old path", func(t *testing.T) {
		t.Parallel()

		changes, err := gitdiff.NewParser().Parse(strings.NewReader(newFileDiff))
		require.NoError(t, err)
		require.Len(t, changes, 1)

		assert.Empty(t, changes[0].OldPath)
		assert.Equal(t, "hello.go", changes[0].NewPath)
	})

	t.Run("handles several files", func(t *testing.T) {
		t.Parallel()

		changes, err := gitdiff.NewParser().Parse(strings.NewReader(modifiedDiff + binaryDiff))
		require.NoError(t, err)
		require.Len(t, changes, 2)

		assert.IsType(t, butdiff.Patch{}, changes[0].Diff)
		assert.IsType(t, butdiff.Binary{}, changes[1].Diff)
	})

	t.Run("empty input has no changes", func(t *testing.T) {
		t.Parallel()

		changes, err := gitdiff.NewParser().Parse(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, changes)
	})
}

const noNewlineDiff = `diff --git a/f.txt b/f.txt
index 1111111..2222222 100644
--- a/f.txt
+++ b/f.txt
@@ -1,2 +1,2 @@
 a
-b
\ No newline at end of file
+c
\ No newline at end of file
`

func TestParser_Parse_NoNewlineAtEndOfFile(t *testing.T) {
	t.Parallel()

	changes, err := gitdiff.NewParser().Parse(strings.NewReader(noNewlineDiff))
	require.NoError(t, err)
	require.Len(t, changes, 1)
	patch, ok := changes[0].Diff.(butdiff.Patch)
	require.True(t, ok, "expected Patch, got %T", changes[0].Diff)
	require.Len(t, patch.Hunks, 1)
	assert.Contains(t, patch.Hunks[0].Diff, "\\ No newline at end of file")

	lines := unified.PatchLines([]butdiff.UnifiedHunk{unified.ParseDiffHunk(patch.Hunks[0])})
	require.Len(t, lines, 3)
	assert.Equal(t, butdiff.DiffPatchLine{Type: butdiff.LineContext, Left: ptr(1), Right: ptr(1), Line: "a"}, lines[0])
	assert.Equal(t, butdiff.DiffPatchLine{Type: butdiff.LineRemoved, Left: ptr(2), Line: "-b"}, lines[1])
	assert.Equal(t, butdiff.DiffPatchLine{Type: butdiff.LineAdded, Right: ptr(2), Line: "+c"}, lines[2])
	assert.Equal(t, "a\nb", section.Before(lines))
	assert.Equal(t, "a\nc", section.After(lines))
}

func ptr(n int) *int { return &n }
