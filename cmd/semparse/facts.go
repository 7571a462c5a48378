package main

import (
	"context"

	"go.uber.org/zap"

	"github.com/revelaction/semparse/kb"
)

type FactsOptions struct {
	// Predicate restricts the output to one predicate
	Predicate string

	// Program holds Mangle rules evaluated after the facts are loaded
	Program string
}

func factsCommand(ctx context.Context, e *env, opts FactsOptions, first string, ui UI) error {
	docs, err := e.corpus(ui)
	if err != nil {
		return err
	}

	doc, err := findDoc(docs, first)
	if err != nil {
		return err
	}

	results, err := parseDoc(ctx, e, docs, doc, ui)
	if err != nil {
		return err
	}

	base := kb.New()
	n := 0
	for _, res := range results {
		if res.Err != nil {
			continue
		}
		n += base.Add(res.Index, res.Parse)
	}
	e.logger.Debug("facts loaded", zap.String("doc", doc.Title), zap.Int("facts", n))

	if opts.Program != "" {
		if err := base.Eval(opts.Program); err != nil {
			return err
		}
	}

	names := base.Predicates()
	if opts.Predicate != "" {
		names = []string{opts.Predicate}
	}

	r := e.renderer(ui)
	for _, name := range names {
		facts, err := base.Query(name)
		if err != nil {
			return err
		}
		r.Facts(facts)
	}

	return nil
}
