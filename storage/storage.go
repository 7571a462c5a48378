package storage

import (
	"errors"

	sent "github.com/revelaction/semparse/sentence"
	"github.com/revelaction/semparse/verbnet"
)

// ErrNotFound is returned by Read methods for unknown ids.
var ErrNotFound = errors.New("not found")

// SenseReader defines read operations for the lexicon (the frame store)
type SenseReader interface {
	// ByBaseIdAndLemma returns the senses with the given coarse id that
	// list lemma as member, ordered by sense id. No match is an empty
	// result, not an error.
	ByBaseIdAndLemma(id, lemma string) ([]verbnet.Sense, error)

	// Read returns a sense by its full id
	Read(id string) (verbnet.Sense, error)

	// List returns all senses ordered by id
	List() ([]verbnet.Sense, error)
}

// SenseWriter defines write operations for the lexicon
type SenseWriter interface {
	// Write persists a sense, replacing any sense with the same id
	Write(s verbnet.Sense) error
}

// SenseRepository combines read and write operations
type SenseRepository interface {
	SenseReader
	SenseWriter
}

// DocReader defines read operations for annotated document storage
type DocReader interface {
	// List returns the metadata (Id, Title, Labels) of documents.
	// Content (Sentences) is not loaded.
	List() ([]sent.Doc, error)

	// Read returns a document by ID
	Read(id int) (sent.Doc, error)
}

// DocWriter defines write operations for document storage
type DocWriter interface {
	// Write persists a document and its sentences to storage
	Write(doc sent.Doc) error
}

// DocRepository combines read and write operations
type DocRepository interface {
	DocReader
	DocWriter
}
