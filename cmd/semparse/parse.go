package main

import (
	"context"

	"github.com/revelaction/semparse/annotated"
	"github.com/revelaction/semparse/query"
)

// parseCommand parses each argument as a document. Without arguments it
// opens the interactive prompt.
func parseCommand(ctx context.Context, e *env, args []string, ui UI) error {
	docs, err := e.corpus(ui)
	if err != nil {
		return err
	}
	corpus := annotated.NewCorpus(docs...)

	p, err := e.newParser(corpus)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		var sentences []string
		for _, doc := range docs {
			for _, s := range doc.Sentences {
				sentences = append(sentences, s.Text())
			}
		}

		h := query.NewHandler(p, e.renderer(ui), sentences)
		h.Logger = e.logger
		h.Err = ui.Err
		return h.Run(ctx)
	}

	for _, arg := range args {
		results, err := p.ParseDocument(ctx, arg)
		if err != nil {
			return err
		}
		if err := e.output(results, ui); err != nil {
			return err
		}
	}

	return nil
}
