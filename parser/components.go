package parser

import (
	"context"

	"github.com/revelaction/semparse/propbank"
	"github.com/revelaction/semparse/semlink"
	"github.com/revelaction/semparse/sentence"
	"github.com/revelaction/semparse/storage"
)

// Segmenter splits a document into sentences.
type Segmenter interface {
	Segment(ctx context.Context, doc string) ([]string, error)
}

// Tokenizer splits a sentence into words.
type Tokenizer interface {
	Tokenize(ctx context.Context, text string) ([]string, error)
}

// DependencyParser returns the dependency tree of a tokenized sentence.
type DependencyParser interface {
	Parse(ctx context.Context, words []string) (*sentence.Tree, error)
}

// SenseClassifier predicts a coarse sense id for each predicate token.
type SenseClassifier interface {
	Predict(ctx context.Context, tree *sentence.Tree) ([]propbank.SensePrediction, error)
}

// RoleLabeler labels the arguments of each predicate with PropBank spans.
type RoleLabeler interface {
	Label(ctx context.Context, tree *sentence.Tree, preds []propbank.SensePrediction) ([]propbank.Proposition, error)
}

// Components are the collaborators of a Parser. Segmenter is only needed
// by ParseDocument; without an Aligner no proposition is aligned.
type Components struct {
	Segmenter  Segmenter
	Tokenizer  Tokenizer
	Parser     DependencyParser
	Classifier SenseClassifier
	Labeler    RoleLabeler
	Aligner    semlink.Aligner

	Senses storage.SenseReader
}

func (c Components) validate() error {
	switch {
	case c.Tokenizer == nil:
		return missing("tokenizer")
	case c.Parser == nil:
		return missing("dependency parser")
	case c.Classifier == nil:
		return missing("sense classifier")
	case c.Labeler == nil:
		return missing("role labeler")
	case c.Senses == nil:
		return missing("sense store")
	}
	return nil
}
