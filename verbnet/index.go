package verbnet

import (
	"fmt"
	"sort"
)

type lemmaKey struct {
	base  string
	lemma string
}

// Index is an in-memory, read-only lexicon. It is safe for concurrent use
// once built.
type Index struct {
	senses map[string]Sense
	ids    []string

	byBaseLemma map[lemmaKey][]string
}

// NewIndex indexes senses by id and by (base id, member lemma). Sense ids
// must be unique.
func NewIndex(senses []Sense) (*Index, error) {
	x := &Index{
		senses:      make(map[string]Sense, len(senses)),
		byBaseLemma: map[lemmaKey][]string{},
	}

	for _, s := range senses {
		if s.Id == "" {
			return nil, fmt.Errorf("sense without id (members %v)", s.Members)
		}
		if _, ok := x.senses[s.Id]; ok {
			return nil, fmt.Errorf("duplicate sense id: %s", s.Id)
		}
		x.senses[s.Id] = s
		x.ids = append(x.ids, s.Id)

		for _, m := range s.Members {
			k := lemmaKey{base: s.Base(), lemma: m}
			x.byBaseLemma[k] = append(x.byBaseLemma[k], s.Id)
		}
	}

	// lowest id first: the stable tie-break of ByBaseIdAndLemma
	sort.Strings(x.ids)
	for _, ids := range x.byBaseLemma {
		sort.Strings(ids)
	}

	return x, nil
}

// ByBaseIdAndLemma returns the senses with coarse id `id` having `lemma` as
// member, ordered by sense id.
func (x *Index) ByBaseIdAndLemma(id, lemma string) []Sense {
	ids := x.byBaseLemma[lemmaKey{base: id, lemma: lemma}]
	senses := make([]Sense, 0, len(ids))
	for _, sid := range ids {
		senses = append(senses, x.senses[sid])
	}
	return senses
}

func (x *Index) Sense(id string) (Sense, bool) {
	s, ok := x.senses[id]
	return s, ok
}

// Senses returns all senses ordered by id.
func (x *Index) Senses() []Sense {
	senses := make([]Sense, 0, len(x.ids))
	for _, id := range x.ids {
		senses = append(senses, x.senses[id])
	}
	return senses
}

func (x *Index) Len() int {
	return len(x.ids)
}
