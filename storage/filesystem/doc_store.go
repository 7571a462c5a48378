package filesystem

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	sent "github.com/revelaction/semparse/sentence"
	"github.com/revelaction/semparse/storage"
)

// DocStore serves annotated documents from a directory of JSON files.
type DocStore struct {
	docDir string

	// In-memory cache
	docs []sent.Doc
}

var _ storage.DocRepository = (*DocStore)(nil)

// NewDocStore creates a filesystem document handler. Only the document
// names are read; contents load on Read or LoadAll.
func NewDocStore(docDir string) (*DocStore, error) {
	files, err := os.ReadDir(docDir)
	if err != nil {
		return nil, err
	}

	docs := make([]sent.Doc, 0, len(files))

	idx := 0
	for _, file := range files {
		if filepath.Ext(file.Name()) == ".json" {
			docs = append(docs, sent.Doc{
				Id:    idx,
				Title: file.Name(),
			})
			idx++
		}
	}

	return &DocStore{
		docDir: docDir,
		docs:   docs,
	}, nil
}

// LoadAll preloads all docs into memory.
func (h *DocStore) LoadAll(cb func(total int, name string)) error {
	total := len(h.docs)
	for i := range h.docs {
		if cb != nil {
			cb(total, h.docs[i].Title)
		}

		if err := h.load(i); err != nil {
			return err
		}
	}

	return nil
}

func (h *DocStore) load(i int) error {
	doc := &h.docs[i] // pointer to modify in place
	if doc.Sentences != nil {
		return nil
	}

	fullDoc, err := ReadDoc(filepath.Join(h.docDir, doc.Title))
	if err != nil {
		return err
	}

	// Copy loaded content into existing metadata struct
	doc.Sentences = fullDoc.Sentences
	doc.Labels = fullDoc.Labels
	for j := range doc.Sentences {
		doc.Sentences[j].Id = j
		doc.Sentences[j].DocId = doc.Id
	}
	return nil
}

func (h *DocStore) List() ([]sent.Doc, error) {
	docs := make([]sent.Doc, len(h.docs))
	for i, d := range h.docs {
		docs[i] = sent.Doc{Id: d.Id, Title: d.Title, Labels: d.Labels}
	}
	return docs, nil
}

func (h *DocStore) Read(id int) (sent.Doc, error) {
	if id < 0 || id >= len(h.docs) {
		return sent.Doc{}, fmt.Errorf("doc %d: %w", id, storage.ErrNotFound)
	}
	if err := h.load(id); err != nil {
		return sent.Doc{}, err
	}
	return h.docs[id], nil
}

func (h *DocStore) Write(doc sent.Doc) error {
	return fmt.Errorf("read-only storage")
}

// ReadDoc reads a Doc JSON from the given path and unmarshals it.
func ReadDoc(path string) (sent.Doc, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return sent.Doc{}, fmt.Errorf("IO error: %w", err)
	}

	var doc sent.Doc
	err = json.Unmarshal(f, &doc)
	if err != nil {
		return sent.Doc{}, fmt.Errorf("JSON decoding error: %w", err)
	}

	if doc.Title == "" {
		doc.Title = filepath.Base(path)
	}

	return doc, nil
}
