package jsonl

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/gitbutlerapp/butdiff"
)

// maxLineSize bounds a single JSON line.
const maxLineSize = 10 * 1024 * 1024

// Loader reads quoted diffs from JSONL files, one DiffPatch array per line.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads every quoted diff in the file at path. Blank lines are skipped.
func (l *Loader) Load(path string) ([]butdiff.DiffPatch, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return l.Read(f)
}

// Read reads quoted diffs from r.
func (l *Loader) Read(r io.Reader) ([]butdiff.DiffPatch, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var patches []butdiff.DiffPatch
	var lineNum int
	for scanner.Scan() {
		lineNum++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var patch butdiff.DiffPatch
		if err := json.Unmarshal(line, &patch); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		patches = append(patches, patch)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("line %d: %w", lineNum+1, err)
	}
	return patches, nil
}

// WritePatches writes each patch as one JSON line.
func WritePatches(w io.Writer, patches []butdiff.DiffPatch) error {
	enc := json.NewEncoder(w)
	for _, p := range patches {
		if p == nil {
			p = butdiff.DiffPatch{}
		}
		if err := enc.Encode(p); err != nil {
			return fmt.Errorf("write patch: %w", err)
		}
	}
	return nil
}

type fileChangeRecord struct {
	OldPath string          `json:"oldPath,omitempty"`
	NewPath string          `json:"newPath,omitempty"`
	Diff    json.RawMessage `json:"diff"`
}

// WriteFileChanges writes each change as one JSON line with its diff in
// wire form.
func WriteFileChanges(w io.Writer, changes []butdiff.FileChange) error {
	enc := json.NewEncoder(w)
	for _, c := range changes {
		diff, err := MarshalUnifiedDiff(c.Diff)
		if err != nil {
			return fmt.Errorf("write %s: %w", c.Path(), err)
		}
		if err := enc.Encode(fileChangeRecord{OldPath: c.OldPath, NewPath: c.NewPath, Diff: diff}); err != nil {
			return fmt.Errorf("write %s: %w", c.Path(), err)
		}
	}
	return nil
}
