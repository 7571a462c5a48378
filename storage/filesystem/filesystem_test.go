package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revelaction/semparse/storage"
	"github.com/revelaction/semparse/verbnet"
)

const lexiconYAML = `
id: put-9.1-1
members: [put]
frames: []
---
id: put-9.1
members: [put, place]
frames:
  - description: NP V NP PP.destination
    roles:
      - type: Agent
      - type: Theme
      - type: Destination
    predicates:
      - type: motion
        args:
          - {kind: Event, value: during(E)}
          - {kind: ThemRole, value: Theme}
`

const giveYAML = `
id: give-13.1
members: [give]
`

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestSenseStore(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "put.yaml", lexiconYAML)
	writeFile(t, dir, "give.yml", giveYAML)
	writeFile(t, dir, "README.md", "not a lexicon file")

	st, err := NewSenseStore(dir)
	require.NoError(t, err)

	all, err := st.List()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "give-13.1", all[0].Id)

	senses, err := st.ByBaseIdAndLemma("put-9.1", "put")
	require.NoError(t, err)
	require.Len(t, senses, 2)
	assert.Equal(t, "put-9.1", senses[0].Id)
	assert.Equal(t, verbnet.Destination, senses[0].Frames[0].Roles[2].Type)

	senses, err = st.ByBaseIdAndLemma("put-9.1", "give")
	require.NoError(t, err)
	assert.Empty(t, senses)

	_, err = st.Read("nope-1")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	assert.Error(t, st.Write(verbnet.Sense{Id: "x-1"}))
}

func TestSenseStoreBadFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bad.yaml", "id: [unclosed")
	_, err := NewSenseStore(dir)
	assert.Error(t, err)

	dup := t.TempDir()
	writeFile(t, dup, "a.yaml", giveYAML)
	writeFile(t, dup, "b.yaml", giveYAML)
	_, err = NewSenseStore(dup)
	assert.Error(t, err)
}

const docJSON = `{
	"Title": "put",
	"Labels": ["test"],
	"sentences": [
		{
			"tokens": [
				{"index": 0, "text": "John", "lemma": "John", "head": 1},
				{"index": 1, "text": "put", "lemma": "put", "head": 1}
			],
			"senses": [{"index": 1, "id": "put-9.1"}],
			"props": [{"index": 1, "spans": [{"label": "A0", "start": 0, "end": 0}, {"label": "V", "start": 1, "end": 1}]}]
		}
	]
}`

func TestDocStore(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.json", docJSON)
	writeFile(t, dir, "notes.txt", "skip")

	st, err := NewDocStore(dir)
	require.NoError(t, err)

	docs, err := st.List()
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "a.json", docs[0].Title)
	assert.Nil(t, docs[0].Sentences)

	doc, err := st.Read(0)
	require.NoError(t, err)
	require.Len(t, doc.Sentences, 1)
	s := doc.Sentences[0]
	assert.Equal(t, "John put", s.Text())
	assert.Equal(t, []string{"test"}, doc.Labels)
	assert.Equal(t, "put-9.1", s.Senses[0].Id)
	assert.Equal(t, "V", s.Props[0].Spans[1].Label)

	_, err = st.Read(3)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	var seen []string
	require.NoError(t, st.LoadAll(func(total int, name string) { seen = append(seen, name) }))
	assert.Equal(t, []string{"a.json"}, seen)
}
