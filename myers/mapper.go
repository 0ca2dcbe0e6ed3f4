package myers

// Token is a compact stand-in for one distinct value.
type Token int

// Mapper interns values into dense tokens. Tokens are only meaningful to the
// Mapper that issued them.
type Mapper[T comparable] struct {
	index  map[T]Token
	values []T
}

// NewMapper creates an empty Mapper.
func NewMapper[T comparable]() *Mapper[T] {
	return &Mapper[T]{index: make(map[T]Token)}
}

// ToToken returns the token for v, allocating one on first sight.
func (m *Mapper[T]) ToToken(v T) Token {
	if tok, ok := m.index[v]; ok {
		return tok
	}
	tok := Token(len(m.values))
	m.values = append(m.values, v)
	m.index[v] = tok
	return tok
}

// FromToken returns the value behind tok. The second result is false for a
// token this Mapper never issued.
func (m *Mapper[T]) FromToken(tok Token) (T, bool) {
	if tok < 0 || int(tok) >= len(m.values) {
		var zero T
		return zero, false
	}
	return m.values[tok], true
}

// Len returns the number of distinct values seen.
func (m *Mapper[T]) Len() int {
	return len(m.values)
}
