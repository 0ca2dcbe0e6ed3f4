// Package gitdiff reads git diff output into per-file butdiff results using
// go-gitdiff.
package gitdiff

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/bluekeyes/go-gitdiff/gitdiff"
	"github.com/gitbutlerapp/butdiff"
	"github.com/gitbutlerapp/butdiff/logging"
)

// Compile-time interface verification.
var _ butdiff.ChangeParser = (*Parser)(nil)

// Parser classifies each file of a git diff as Binary, TooLarge or Patch.
type Parser struct {
	maxPatchBytes int
	logger        *slog.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithMaxPatchBytes reports patches whose text exceeds n bytes as TooLarge.
// Zero disables the limit.
func WithMaxPatchBytes(n int) Option {
	return func(p *Parser) {
		p.maxPatchBytes = n
	}
}

// WithLogger sets the logger used for per-file diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(p *Parser) {
		if l != nil {
			p.logger = l
		}
	}
}

// NewParser creates a Parser.
func NewParser(opts ...Option) *Parser {
	p := &Parser{logger: logging.Nop()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse reads git diff output from r.
func (p *Parser) Parse(r io.Reader) ([]butdiff.FileChange, error) {
	files, _, err := gitdiff.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse git diff: %w", err)
	}

	changes := make([]butdiff.FileChange, 0, len(files))
	for _, f := range files {
		changes = append(changes, p.change(f))
	}
	return changes, nil
}

func (p *Parser) change(f *gitdiff.File) butdiff.FileChange {
	fc := butdiff.FileChange{OldPath: f.OldName, NewPath: f.NewName}
	if f.IsNew {
		fc.OldPath = ""
	}
	if f.IsDelete {
		fc.NewPath = ""
	}

	if f.IsBinary {
		p.logger.Debug("binary file", "path", fc.Path())
		fc.Diff = butdiff.Binary{}
		return fc
	}

	var size, added, removed int
	hunks := make([]butdiff.DiffHunk, 0, len(f.TextFragments))
	for _, frag := range f.TextFragments {
		text := fragmentText(frag)
		size += len(text)
		added += int(frag.LinesAdded)
		removed += int(frag.LinesDeleted)
		hunks = append(hunks, butdiff.DiffHunk{
			OldStart: int(frag.OldPosition),
			OldLines: int(frag.OldLines),
			NewStart: int(frag.NewPosition),
			NewLines: int(frag.NewLines),
			Diff:     text,
		})
	}

	if p.maxPatchBytes > 0 && size > p.maxPatchBytes {
		p.logger.Info("patch too large", "path", fc.Path(), "bytes", size, "limit", p.maxPatchBytes)
		fc.Diff = butdiff.TooLarge{SizeInBytes: uint64(size)}
		return fc
	}

	p.logger.Debug("patch", "path", fc.Path(), "hunks", len(hunks), "added", added, "removed", removed)
	fc.Diff = butdiff.Patch{
		Hunks:        hunks,
		LinesAdded:   &added,
		LinesRemoved: &removed,
	}
	return fc
}

// fragmentText renders a fragment as its header line followed by its body.
func fragmentText(frag *gitdiff.TextFragment) string {
	var b strings.Builder
	header := butdiff.HunkHeader{
		OldStart:  int(frag.OldPosition),
		OldLength: int(frag.OldLines),
		NewStart:  int(frag.NewPosition),
		NewLength: int(frag.NewLines),
	}
	b.WriteString(header.String())
	if frag.Comment != "" {
		b.WriteString(" " + frag.Comment)
	}
	b.WriteByte('\n')

	for _, line := range frag.Lines {
		switch line.Op {
		case gitdiff.OpAdd:
			b.WriteByte('+')
		case gitdiff.OpDelete:
			b.WriteByte('-')
		default:
			b.WriteByte(' ')
		}
		b.WriteString(line.Line)
		if !strings.HasSuffix(line.Line, "\n") {
			b.WriteString("\n\\ No newline at end of file\n")
		}
	}
	return b.String()
}
