package main

import (
	"fmt"

	"github.com/revelaction/semparse/storage/filesystem"
	"github.com/revelaction/semparse/storage/sqlite/zombiezen"
)

type ImportOptions struct {
	From string
	To   string

	Progress bool
}

func importLexiconCommand(opts ImportOptions, ui UI) error {
	src, err := filesystem.NewSenseStore(opts.From)
	if err != nil {
		return err
	}

	pool, err := zombiezen.NewPool(opts.To)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := zombiezen.CreateSchemas(pool, zombiezen.LexiconSchema); err != nil {
		return fmt.Errorf("failed to create lexicon tables: %w", err)
	}

	dst := zombiezen.NewSenseStore(pool)

	fmt.Fprintf(ui.Out, "Reading senses from %s...\n", opts.From)
	senses, err := src.List()
	if err != nil {
		return err
	}

	bar := newProgress(ui.Err, len(senses), opts.Progress)
	defer bar.Stop()

	for _, s := range senses {
		if err := dst.Write(s); err != nil {
			return fmt.Errorf("failed to write sense %s: %w", s.Id, err)
		}
		bar.Incr(s.Id)
	}

	fmt.Fprintf(ui.Out, "Successfully imported %d senses from %s to %s\n", len(senses), opts.From, opts.To)
	return nil
}

func importDocCommand(opts ImportOptions, ui UI) error {
	src, err := filesystem.NewDocStore(opts.From)
	if err != nil {
		return err
	}

	pool, err := zombiezen.NewPool(opts.To)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := zombiezen.CreateSchemas(pool, zombiezen.DocsSchema); err != nil {
		return fmt.Errorf("failed to create docs tables: %w", err)
	}

	dst := zombiezen.NewDocStore(pool)

	fmt.Fprintf(ui.Out, "Reading docs from %s...\n", opts.From)
	docs, err := src.List()
	if err != nil {
		return err
	}

	bar := newProgress(ui.Err, len(docs), opts.Progress)
	defer bar.Stop()

	count := 0
	for _, meta := range docs {
		doc, err := src.Read(meta.Id)
		if err != nil {
			return fmt.Errorf("failed to read doc %s: %w", meta.Title, err)
		}

		if err := dst.Write(doc); err != nil {
			return fmt.Errorf("failed to write doc %s: %w", meta.Title, err)
		}
		count++
		bar.Incr(meta.Title)
	}

	fmt.Fprintf(ui.Out, "Successfully imported %d docs from %s to %s\n", count, opts.From, opts.To)
	return nil
}
