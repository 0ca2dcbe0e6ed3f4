// Package unified parses and formats unified-diff text.
//
// The parser is deliberately literal so that hunks stored or quoted by
// earlier versions parse identically: every body line loses its first
// character, context lines included, and header numbers that are missing
// become butdiff.Unknown instead of failing the parse.
package unified

import (
	"strings"
	"unicode/utf8"

	"github.com/gitbutlerapp/butdiff"
)

// Compile-time interface verification.
var _ butdiff.PatchParser = (*Parser)(nil)

// metadataPrefixes start lines that carry file metadata rather than content.
var metadataPrefixes = []string{
	"diff",
	"---",
	"+++",
	"index",
	"rename",
	"similarity",
	"new",
	"deleted",
	"old",
	"copy",
	"dissimilarity",
}

// Parser parses unified-diff text into hunks.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// ParseHunks splits text on newlines and returns its hunks in encounter
// order. Lines before the first "@@" header are ignored.
func (p *Parser) ParseHunks(text string) []butdiff.UnifiedHunk {
	var hunks []butdiff.UnifiedHunk
	for _, line := range strings.Split(text, "\n") {
		if isMetadata(line) {
			continue
		}
		if strings.HasPrefix(line, "@@") {
			hunks = append(hunks, butdiff.UnifiedHunk{Header: ParseHeader(line)})
			continue
		}
		if len(hunks) == 0 {
			continue
		}
		last := &hunks[len(hunks)-1]
		last.Lines = append(last.Lines, classify(line))
	}
	return hunks
}

func isMetadata(line string) bool {
	for _, prefix := range metadataPrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

// classify types a body line by its first character and strips that
// character whatever it is.
func classify(line string) butdiff.HunkLine {
	typ := butdiff.LineContext
	switch {
	case strings.HasPrefix(line, "+"):
		typ = butdiff.LineAdded
	case strings.HasPrefix(line, "-"):
		typ = butdiff.LineRemoved
	}
	_, size := utf8.DecodeRuneInString(line)
	return butdiff.HunkLine{Type: typ, Line: line[size:]}
}
