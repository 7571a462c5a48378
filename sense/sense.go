// Package sense resolves coarse sense predictions to lexicon entries.
package sense

import (
	"errors"
	"fmt"

	"github.com/revelaction/semparse/propbank"
	"github.com/revelaction/semparse/sentence"
	"github.com/revelaction/semparse/storage"
)

var (
	ErrNilTree    = errors.New("nil dependency tree")
	ErrTokenIndex = errors.New("token index out of range")
)

// Resolver attaches a verbnet.Sense to sense predictions. A prediction with
// no matching sense is returned unresolved; that is not an error.
type Resolver struct {
	Store storage.SenseReader
}

func NewResolver(store storage.SenseReader) *Resolver {
	return &Resolver{Store: store}
}

// Resolve looks up the senses of raw.Id having the lemma of the predicate
// token as member. The first one, by ascending Sense Id, is attached.
func (r *Resolver) Resolve(tree *sentence.Tree, raw propbank.SensePrediction) (propbank.SensePrediction, error) {
	if tree == nil {
		return raw, ErrNilTree
	}

	raw.Sense = nil
	if raw.Id == "" {
		return raw, nil
	}

	if _, ok := tree.Token(raw.Index); !ok {
		return raw, fmt.Errorf("sense %s at %d (sentence length %d): %w", raw.Id, raw.Index, tree.Len(), ErrTokenIndex)
	}

	senses, err := r.Store.ByBaseIdAndLemma(raw.Id, tree.Lemma(raw.Index))
	if err != nil {
		return raw, fmt.Errorf("lookup of sense %s: %w", raw.Id, err)
	}
	if len(senses) == 0 {
		return raw, nil
	}

	s := senses[0]
	raw.Sense = &s
	return raw, nil
}

// ResolveAll resolves every prediction, keeping their order.
func (r *Resolver) ResolveAll(tree *sentence.Tree, raws []propbank.SensePrediction) ([]propbank.SensePrediction, error) {
	out := make([]propbank.SensePrediction, len(raws))
	for i, raw := range raws {
		p, err := r.Resolve(tree, raw)
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}
