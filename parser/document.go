package parser

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// SentenceResult is the outcome of one sentence of a document. Err is set
// when the sentence could not be parsed; Parse is then partial.
type SentenceResult struct {
	Index int
	Parse Parse
	Err   error
}

// ParseDocument segments doc and parses its sentences concurrently.
// Results are in sentence order. A failed sentence does not fail the
// document; cancellation of ctx does.
func (p *Parser) ParseDocument(ctx context.Context, doc string) ([]SentenceResult, error) {
	if p.c.Segmenter == nil {
		return nil, ErrNoSegmenter
	}

	sentences, err := p.c.Segmenter.Segment(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("segment: %w", err)
	}

	return p.ParseSentences(ctx, sentences)
}

// ParseSentences parses already segmented sentences concurrently, with the
// same ordering and failure rules as ParseDocument.
func (p *Parser) ParseSentences(ctx context.Context, sentences []string) ([]SentenceResult, error) {
	results := make([]SentenceResult, len(sentences))

	var mu sync.Mutex
	done := 0

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)

	for i, text := range sentences {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			parse, err := p.ParseSentence(gctx, text)
			if err != nil {
				if ctxErr := gctx.Err(); ctxErr != nil {
					return ctxErr
				}
				p.logger.Warn("skipping sentence",
					zap.Int("sentence", i),
					zap.String("text", text),
					zap.Error(err))
			}
			results[i] = SentenceResult{Index: i, Parse: parse, Err: err}

			if p.progress != nil {
				mu.Lock()
				done++
				p.progress(done, len(sentences))
				mu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
