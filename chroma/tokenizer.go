// Package chroma provides syntax tokens for display using the chroma
// library.
package chroma

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/gitbutlerapp/butdiff"
)

// Compile-time interface verification.
var _ butdiff.Tokenizer = (*Tokenizer)(nil)

// Tokenizer extracts syntax tokens using chroma lexers.
type Tokenizer struct{}

// NewTokenizer creates a new chroma-based Tokenizer.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{}
}

// Tokenize picks a lexer by file name first and by language name second.
// The returned texts concatenate back to source exactly. Empty source
// yields an empty, non-nil slice.
func (t *Tokenizer) Tokenize(name, source string) []butdiff.Token {
	if name == "" {
		return nil
	}
	if source == "" {
		return []butdiff.Token{}
	}

	lexer := lexers.Match(name)
	if lexer == nil {
		lexer = lexers.Get(name)
	}
	if lexer == nil {
		return nil
	}

	iterator, err := chroma.Coalesce(lexer).Tokenise(nil, source)
	if err != nil {
		return nil
	}

	var tokens []butdiff.Token
	for tok := iterator(); tok != chroma.EOF; tok = iterator() {
		tokens = append(tokens, butdiff.Token{Text: tok.Value, Style: styleOf(tok.Type)})
	}
	return trimAddedNewline(tokens, source)
}

// trimAddedNewline removes the newline some lexers append to source that
// does not end in one.
func trimAddedNewline(tokens []butdiff.Token, source string) []butdiff.Token {
	if strings.HasSuffix(source, "\n") || len(tokens) == 0 {
		return tokens
	}
	last := &tokens[len(tokens)-1]
	if !strings.HasSuffix(last.Text, "\n") {
		return tokens
	}
	last.Text = strings.TrimSuffix(last.Text, "\n")
	if last.Text == "" {
		tokens = tokens[:len(tokens)-1]
	}
	return tokens
}

// styleOf maps a token type to a One Dark inspired color.
func styleOf(tt chroma.TokenType) butdiff.Style {
	switch tt {
	case chroma.NameFunction, chroma.NameFunctionMagic:
		return butdiff.Style{Foreground: "#61afef"}
	case chroma.NameBuiltin, chroma.NameBuiltinPseudo:
		return butdiff.Style{Foreground: "#e5c07b"}
	}

	switch {
	case tt.InCategory(chroma.Keyword):
		return butdiff.Style{Foreground: "#c678dd", Bold: true}
	case tt.InCategory(chroma.Comment):
		return butdiff.Style{Foreground: "#5c6370"}
	case tt.InSubCategory(chroma.LiteralString):
		return butdiff.Style{Foreground: "#98c379"}
	case tt.InSubCategory(chroma.LiteralNumber):
		return butdiff.Style{Foreground: "#d19a66"}
	case tt.InCategory(chroma.Operator):
		return butdiff.Style{Foreground: "#56b6c2"}
	case tt.InCategory(chroma.Name):
		return butdiff.Style{Foreground: "#e06c75"}
	default:
		return butdiff.Style{}
	}
}
