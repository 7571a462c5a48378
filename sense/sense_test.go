package sense

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revelaction/semparse/propbank"
	"github.com/revelaction/semparse/sentence"
	"github.com/revelaction/semparse/verbnet"
)

type indexStore struct {
	*verbnet.Index
	calls int
}

func (s *indexStore) ByBaseIdAndLemma(id, lemma string) ([]verbnet.Sense, error) {
	s.calls++
	return s.Index.ByBaseIdAndLemma(id, lemma), nil
}

func (s *indexStore) Read(id string) (verbnet.Sense, error) {
	sn, _ := s.Index.Sense(id)
	return sn, nil
}

func (s *indexStore) List() ([]verbnet.Sense, error) {
	return s.Index.Senses(), nil
}

type failingStore struct{ indexStore }

func (s *failingStore) ByBaseIdAndLemma(id, lemma string) ([]verbnet.Sense, error) {
	return nil, errors.New("disk on fire")
}

func newStore(t *testing.T) *indexStore {
	idx, err := verbnet.NewIndex([]verbnet.Sense{
		{Id: "put-9.1-2", Members: []string{"put"}},
		{Id: "put-9.1", Members: []string{"put", "place"}},
		{Id: "put-9.1-1", Members: []string{"place"}},
	})
	require.NoError(t, err)
	return &indexStore{Index: idx}
}

func tree() *sentence.Tree {
	return sentence.NewTree([]sentence.Token{
		{Text: "John", Lemma: "John"},
		{Text: "placed", Lemma: "place"},
		{Text: "it", Lemma: "it"},
	})
}

func TestResolve(t *testing.T) {
	st := newStore(t)
	r := NewResolver(st)

	p, err := r.Resolve(tree(), propbank.SensePrediction{Index: 1, Text: "placed", Id: "put-9.1"})
	require.NoError(t, err)
	require.True(t, p.Resolved())
	assert.Equal(t, "put-9.1", p.Sense.Id)
	assert.Equal(t, "placed", p.Text)
}

func TestResolveLowestId(t *testing.T) {
	st := newStore(t)
	tr := sentence.NewTree([]sentence.Token{{Text: "put", Lemma: "put"}})

	p, err := NewResolver(st).Resolve(tr, propbank.SensePrediction{Index: 0, Id: "put-9.1"})
	require.NoError(t, err)
	assert.Equal(t, "put-9.1", p.Sense.Id)
}

func TestResolveUnresolved(t *testing.T) {
	st := newStore(t)
	r := NewResolver(st)

	p, err := r.Resolve(tree(), propbank.SensePrediction{Index: 1, Id: ""})
	require.NoError(t, err)
	assert.False(t, p.Resolved())
	assert.Zero(t, st.calls)

	p, err = r.Resolve(tree(), propbank.SensePrediction{Index: 1, Id: "give-13.1"})
	require.NoError(t, err)
	assert.False(t, p.Resolved())
	assert.Equal(t, 1, st.calls)
}

func TestResolveContractViolations(t *testing.T) {
	r := NewResolver(newStore(t))

	_, err := r.Resolve(nil, propbank.SensePrediction{Id: "put-9.1"})
	assert.ErrorIs(t, err, ErrNilTree)

	_, err = r.Resolve(tree(), propbank.SensePrediction{Index: 3, Id: "put-9.1"})
	assert.ErrorIs(t, err, ErrTokenIndex)

	_, err = r.Resolve(tree(), propbank.SensePrediction{Index: -1, Id: "put-9.1"})
	assert.ErrorIs(t, err, ErrTokenIndex)
}

func TestResolveStoreError(t *testing.T) {
	r := NewResolver(&failingStore{})
	_, err := r.Resolve(tree(), propbank.SensePrediction{Index: 1, Id: "put-9.1"})
	assert.ErrorContains(t, err, "disk on fire")
}

func TestResolveAll(t *testing.T) {
	r := NewResolver(newStore(t))
	out, err := r.ResolveAll(tree(), []propbank.SensePrediction{
		{Index: 1, Id: "put-9.1"},
		{Index: 2, Id: ""},
	})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.True(t, out[0].Resolved())
	assert.False(t, out[1].Resolved())
}
