package main

import (
	"fmt"
	"os"

	"github.com/revelaction/semparse/storage"
	"github.com/revelaction/semparse/storage/filesystem"
	"github.com/revelaction/semparse/storage/sqlite/zombiezen"
)

// NewSenseRepository opens a YAML lexicon directory or a SQLite lexicon file.
func NewSenseRepository(p *Pool, path string) (storage.SenseRepository, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("lexicon not found: %s", path)
	}

	if info.IsDir() {
		return filesystem.NewSenseStore(path)
	}

	pool, err := p.Open(path)
	if err != nil {
		return nil, err
	}
	return zombiezen.NewSenseStore(pool), nil
}

// NewDocRepository opens a JSON corpus directory or a SQLite corpus file.
func NewDocRepository(p *Pool, path string) (storage.DocRepository, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("corpus not found: %s", path)
	}

	if info.IsDir() {
		return filesystem.NewDocStore(path)
	}

	pool, err := p.Open(path)
	if err != nil {
		return nil, err
	}
	return zombiezen.NewDocStore(pool), nil
}
