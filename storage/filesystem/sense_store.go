package filesystem

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/revelaction/semparse/storage"
	"github.com/revelaction/semparse/verbnet"
)

// SenseStore is a read-only lexicon loaded from a directory of YAML files.
// Each file holds one or more senses as separate YAML documents.
type SenseStore struct {
	dir   string
	index *verbnet.Index
}

var _ storage.SenseRepository = (*SenseStore)(nil)

// NewSenseStore loads every .yaml/.yml file of dir, in file name order.
func NewSenseStore(dir string) (*SenseStore, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	names := []string{}
	for _, file := range files {
		ext := filepath.Ext(file.Name())
		if file.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		names = append(names, file.Name())
	}
	sort.Strings(names)

	var senses []verbnet.Sense
	for _, name := range names {
		s, err := ReadSenses(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		senses = append(senses, s...)
	}

	index, err := verbnet.NewIndex(senses)
	if err != nil {
		return nil, fmt.Errorf("lexicon %s: %w", dir, err)
	}

	return &SenseStore{dir: dir, index: index}, nil
}

// ReadSenses decodes all YAML documents of the file at path.
func ReadSenses(path string) ([]verbnet.Sense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var senses []verbnet.Sense
	dec := yaml.NewDecoder(f)
	for {
		var s verbnet.Sense
		err := dec.Decode(&s)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("YAML decoding error in %s: %w", path, err)
		}
		senses = append(senses, s)
	}

	return senses, nil
}

func (h *SenseStore) ByBaseIdAndLemma(id, lemma string) ([]verbnet.Sense, error) {
	return h.index.ByBaseIdAndLemma(id, lemma), nil
}

func (h *SenseStore) Read(id string) (verbnet.Sense, error) {
	s, ok := h.index.Sense(id)
	if !ok {
		return verbnet.Sense{}, fmt.Errorf("sense %s: %w", id, storage.ErrNotFound)
	}
	return s, nil
}

func (h *SenseStore) List() ([]verbnet.Sense, error) {
	return h.index.Senses(), nil
}

func (h *SenseStore) Write(s verbnet.Sense) error {
	return fmt.Errorf("read-only storage")
}
