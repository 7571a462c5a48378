package sentence

import "strings"

type Doc struct {
	Id int

	Title string

	Labels    []string
	Sentences []Sentence `json:"sentences"`
}

// Sentence is one parsed sentence of a Doc, plus the optional upstream
// annotations (predicted senses and labeled propositions) the offline
// pipeline collaborators serve back.
type Sentence struct {
	// Id is the index of the sentence inside of the doc.
	Id    int `json:"id"`
	DocId int `json:"doc"`

	Tokens []Token `json:"tokens"`

	Senses []SenseMark `json:"senses,omitempty"`
	Props  []PropMark  `json:"props,omitempty"`
}

// Text returns the surface text of the sentence, tokens separated by a
// single space.
func (s Sentence) Text() string {
	return Words(s.Tokens)
}

// SenseMark is a coarse sense prediction for the token at Index.
type SenseMark struct {
	Index int    `json:"index"`
	Id    string `json:"id"`
}

// PropMark is the shallow role labeling of the predicate at Index.
type PropMark struct {
	Index int        `json:"index"`
	Spans []SpanMark `json:"spans"`
}

// SpanMark is a labeled argument span, End inclusive.
type SpanMark struct {
	Label string `json:"label"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// Token represents a word of the sentence, with POS and metadata.
type Token struct {
	Id         int    `json:"id"`
	Head       int    `json:"head"`
	SentenceId int    `json:"sent"`
	Pos        string `json:"pos"`
	Dep        string `json:"dep"`

	// A string containing detailed POS data
	Tag string `json:"tag"`

	// the index of the start character of the token in the original doc (set by spacy, stanza)
	Idx int `json:"idx"`

	// The unmodified word
	Text string `json:"text"`

	// The lemma of the word
	Lemma string `json:"lemma"`

	// The index of the word in the sentence, starting at 0.
	Index int `json:"index"`
}

// Words joins the text of the tokens with a single space.
func Words(tokens []Token) string {
	words := make([]string, len(tokens))
	for i, t := range tokens {
		words[i] = t.Text
	}
	return strings.Join(words, " ")
}
