package butdiff

// Style is the visual style of a syntax token. An empty Foreground leaves
// the line's own color in place.
type Style struct {
	Foreground string // hex color such as "#c678dd"
	Bold       bool
}

// Token is a run of source text with one syntax style.
type Token struct {
	Text  string
	Style Style
}

// Tokenizer splits source text into syntax tokens. Highlighting is
// presentation only: diffs are computed on the raw text.
type Tokenizer interface {
	// Tokenize returns the tokens of source, choosing the language from
	// name, which is a file path or a language name. It returns nil when
	// no language matches.
	Tokenize(name, source string) []Token
}
