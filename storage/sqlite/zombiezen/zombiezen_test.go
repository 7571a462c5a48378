package zombiezen

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sent "github.com/revelaction/semparse/sentence"
	"github.com/revelaction/semparse/storage"
	"github.com/revelaction/semparse/verbnet"
)

func newTestPool(t *testing.T, schemas ...string) *SenseStore {
	t.Helper()
	pool, err := NewPool(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { pool.Close() })

	for _, s := range schemas {
		require.NoError(t, CreateSchemas(pool, s))
	}
	return NewSenseStore(pool)
}

func TestSenseStore(t *testing.T) {
	st := newTestPool(t, LexiconSchema)

	put := verbnet.Sense{
		Id:      "put-9.1",
		Members: []string{"put", "place"},
		Frames: []verbnet.Frame{{
			Description: "NP V NP",
			Roles:       []verbnet.RoleSlot{{Type: verbnet.Agent}, {Type: verbnet.Theme}},
			Predicates: []verbnet.PredicateTemplate{{
				Type: verbnet.PredicateTypeFromString("motion"),
				Args: []verbnet.ArgTemplate{{Kind: verbnet.ArgThemRole, Value: "Theme"}},
			}},
		}},
	}
	require.NoError(t, st.Write(put))
	require.NoError(t, st.Write(verbnet.Sense{Id: "put-9.1-1", Members: []string{"put"}}))
	require.NoError(t, st.Write(verbnet.Sense{Id: "give-13.1", Members: []string{"give"}}))

	senses, err := st.ByBaseIdAndLemma("put-9.1", "put")
	require.NoError(t, err)
	require.Len(t, senses, 2)
	assert.Equal(t, "put-9.1", senses[0].Id)
	assert.Equal(t, put.Frames, senses[0].Frames)

	senses, err = st.ByBaseIdAndLemma("put-9.1", "give")
	require.NoError(t, err)
	assert.Empty(t, senses)

	// rewrite replaces members
	put.Members = []string{"place"}
	require.NoError(t, st.Write(put))
	senses, err = st.ByBaseIdAndLemma("put-9.1", "put")
	require.NoError(t, err)
	require.Len(t, senses, 1)
	assert.Equal(t, "put-9.1-1", senses[0].Id)

	all, err := st.List()
	require.NoError(t, err)
	assert.Len(t, all, 3)

	s, err := st.Read("give-13.1")
	require.NoError(t, err)
	assert.Equal(t, "give-13.1", s.Base())

	_, err = st.Read("nope-1")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	assert.Error(t, st.Write(verbnet.Sense{}))
}

func TestDocStore(t *testing.T) {
	pool, err := NewPool(filepath.Join(t.TempDir(), "docs.db"))
	require.NoError(t, err)
	defer pool.Close()
	require.NoError(t, CreateSchemas(pool, DocsSchema))

	st := NewDocStore(pool)
	doc := sent.Doc{
		Title:  "put",
		Labels: []string{"a", "b"},
		Sentences: []sent.Sentence{
			{Tokens: []sent.Token{{Index: 0, Text: "John"}, {Index: 1, Text: "put", Lemma: "put"}}},
			{Tokens: []sent.Token{{Index: 0, Text: "Stop"}}, Senses: []sent.SenseMark{{Index: 0, Id: "stop-55.4"}}},
		},
	}
	require.NoError(t, st.Write(doc))

	docs, err := st.List()
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, []string{"a", "b"}, docs[0].Labels)

	got, err := st.Read(docs[0].Id)
	require.NoError(t, err)
	assert.Equal(t, "put", got.Title)
	require.Len(t, got.Sentences, 2)
	assert.Equal(t, 1, got.Sentences[1].Id)
	assert.Equal(t, "John put", got.Sentences[0].Text())
	assert.Equal(t, "stop-55.4", got.Sentences[1].Senses[0].Id)

	_, err = st.Read(99)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestCreateSchemasUnknown(t *testing.T) {
	pool, err := NewPool(filepath.Join(t.TempDir(), "x.db"))
	require.NoError(t, err)
	defer pool.Close()
	assert.Error(t, CreateSchemas(pool, "nope.sql"))
}
