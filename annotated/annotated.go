// Package annotated serves the pipeline collaborators from a corpus of
// pre-annotated sentences: tokens with their dependency heads, predicted
// senses and labeled propositions. Sentences are looked up by their text.
package annotated

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/revelaction/semparse/parser"
	"github.com/revelaction/semparse/propbank"
	"github.com/revelaction/semparse/sentence"
)

var ErrUnknownSentence = errors.New("sentence not in corpus")

// Corpus is read-only after construction.
type Corpus struct {
	sentences map[string]sentence.Sentence
}

var (
	_ parser.Segmenter        = (*Corpus)(nil)
	_ parser.Tokenizer        = (*Corpus)(nil)
	_ parser.DependencyParser = (*Corpus)(nil)
	_ parser.SenseClassifier  = (*Corpus)(nil)
	_ parser.RoleLabeler      = (*Corpus)(nil)
)

// NewCorpus indexes the sentences of docs. A later sentence with the same
// text replaces an earlier one.
func NewCorpus(docs ...sentence.Doc) *Corpus {
	c := &Corpus{sentences: map[string]sentence.Sentence{}}
	for _, doc := range docs {
		for _, s := range doc.Sentences {
			c.sentences[key(s.Text())] = s
		}
	}
	return c
}

func (c *Corpus) Len() int {
	return len(c.sentences)
}

// key ignores whitespace, so that "table." and "table ." match.
func key(text string) string {
	return strings.Join(strings.Fields(text), "")
}

func (c *Corpus) lookup(text string) (sentence.Sentence, error) {
	s, ok := c.sentences[key(text)]
	if !ok {
		return sentence.Sentence{}, fmt.Errorf("%w: %q", ErrUnknownSentence, text)
	}
	return s, nil
}

func (c *Corpus) Segment(ctx context.Context, doc string) ([]string, error) {
	return Segment(doc), nil
}

func (c *Corpus) Tokenize(ctx context.Context, text string) ([]string, error) {
	s, err := c.lookup(text)
	if err != nil {
		return nil, err
	}
	return sentence.NewTree(s.Tokens).Words(), nil
}

func (c *Corpus) Parse(ctx context.Context, words []string) (*sentence.Tree, error) {
	s, err := c.lookup(strings.Join(words, " "))
	if err != nil {
		return nil, err
	}
	return sentence.NewTree(s.Tokens), nil
}

func (c *Corpus) Predict(ctx context.Context, tree *sentence.Tree) ([]propbank.SensePrediction, error) {
	s, err := c.lookup(sentence.Words(tree.Tokens))
	if err != nil {
		return nil, err
	}

	preds := make([]propbank.SensePrediction, 0, len(s.Senses))
	for _, m := range s.Senses {
		tk, ok := tree.Token(m.Index)
		if !ok {
			return nil, fmt.Errorf("sense %s: token %d out of range", m.Id, m.Index)
		}
		preds = append(preds, propbank.SensePrediction{Index: m.Index, Text: tk.Text, Id: m.Id})
	}
	return preds, nil
}

// Label returns the propositions of the corpus sentence. The predicate of
// each one is taken from preds when present at the same index.
func (c *Corpus) Label(ctx context.Context, tree *sentence.Tree, preds []propbank.SensePrediction) ([]propbank.Proposition, error) {
	s, err := c.lookup(sentence.Words(tree.Tokens))
	if err != nil {
		return nil, err
	}

	byIndex := make(map[int]propbank.SensePrediction, len(preds))
	for _, p := range preds {
		byIndex[p.Index] = p
	}

	props := make([]propbank.Proposition, 0, len(s.Props))
	for _, m := range s.Props {
		pred, ok := byIndex[m.Index]
		if !ok {
			tk, _ := tree.Token(m.Index)
			pred = propbank.SensePrediction{Index: m.Index, Text: tk.Text}
		}

		spans := make([]propbank.Span[propbank.Arg], len(m.Spans))
		for i, sm := range m.Spans {
			if sm.Start > sm.End || !contains(tree, sm.Start) || !contains(tree, sm.End) {
				return nil, fmt.Errorf("span %s[%d:%d] out of range", sm.Label, sm.Start, sm.End)
			}
			spans[i] = propbank.NewSpan(propbank.ArgFromLabel(sm.Label), sm.Start, sm.End)
		}
		props = append(props, propbank.Proposition{Predicate: pred, Arguments: spans})
	}
	return props, nil
}

func contains(tree *sentence.Tree, i int) bool {
	_, ok := tree.Token(i)
	return ok
}
