package sentence

// Tree is the dependency parse of a single sentence. Tokens are ordered by
// Index; Token.Head holds the Index of the head token and the root points
// to itself.
type Tree struct {
	Tokens []Token
}

// NewTree returns a Tree over tokens. Token.Index is rewritten to the
// position in the slice so that lookups by index are always valid.
func NewTree(tokens []Token) *Tree {
	tks := make([]Token, len(tokens))
	copy(tks, tokens)
	for i := range tks {
		tks[i].Index = i
	}
	return &Tree{Tokens: tks}
}

func (t *Tree) Len() int {
	return len(t.Tokens)
}

// Token returns the token at index i.
func (t *Tree) Token(i int) (Token, bool) {
	if i < 0 || i >= len(t.Tokens) {
		return Token{}, false
	}
	return t.Tokens[i], true
}

// Lemma returns the lemma of the token at i, falling back to its text when
// the parser did not set one.
func (t *Tree) Lemma(i int) string {
	tk, ok := t.Token(i)
	if !ok {
		return ""
	}
	if tk.Lemma == "" {
		return tk.Text
	}
	return tk.Lemma
}

// Root returns the first token heading itself.
func (t *Tree) Root() (Token, bool) {
	for _, tk := range t.Tokens {
		if tk.Head == tk.Index {
			return tk, true
		}
	}
	return Token{}, false
}

// Text returns the words of the inclusive token range [start, end].
func (t *Tree) Text(start, end int) string {
	if start < 0 {
		start = 0
	}
	if end >= len(t.Tokens) {
		end = len(t.Tokens) - 1
	}
	if start > end {
		return ""
	}
	return Words(t.Tokens[start : end+1])
}

// Words returns the token texts.
func (t *Tree) Words() []string {
	words := make([]string, len(t.Tokens))
	for i, tk := range t.Tokens {
		words[i] = tk.Text
	}
	return words
}
