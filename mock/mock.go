// Package mock provides function-field implementations of butdiff
// interfaces for tests.
package mock

import (
	"context"
	"io"

	"github.com/gitbutlerapp/butdiff"
)

var (
	_ butdiff.Viewer       = (*Viewer)(nil)
	_ butdiff.ChangeParser = (*ChangeParser)(nil)
	_ butdiff.Tokenizer    = (*Tokenizer)(nil)
)

// Viewer implements butdiff.Viewer.
type Viewer struct {
	ViewFn func(ctx context.Context, title string, sections []butdiff.ContentSection) error
}

func (m *Viewer) View(ctx context.Context, title string, sections []butdiff.ContentSection) error {
	return m.ViewFn(ctx, title, sections)
}

// ChangeParser implements butdiff.ChangeParser.
type ChangeParser struct {
	ParseFn func(r io.Reader) ([]butdiff.FileChange, error)
}

func (m *ChangeParser) Parse(r io.Reader) ([]butdiff.FileChange, error) {
	return m.ParseFn(r)
}

// Tokenizer implements butdiff.Tokenizer.
type Tokenizer struct {
	TokenizeFn func(name, source string) []butdiff.Token
}

func (m *Tokenizer) Tokenize(name, source string) []butdiff.Token {
	return m.TokenizeFn(name, source)
}
