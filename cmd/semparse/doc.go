package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/revelaction/semparse/annotated"
	"github.com/revelaction/semparse/parser"
	sent "github.com/revelaction/semparse/sentence"
)

func docCommand(ctx context.Context, e *env, first string, ui UI) error {
	docs, err := e.corpus(ui)
	if err != nil {
		return err
	}

	if first == "" {
		for _, doc := range docs {
			fmt.Fprintf(ui.Out, "📖 %d %s \n", doc.Id, doc.Title)
		}
		return nil
	}

	doc, err := findDoc(docs, first)
	if err != nil {
		return err
	}

	results, err := parseDoc(ctx, e, docs, doc, ui)
	if err != nil {
		return err
	}
	return e.output(results, ui)
}

// parseDoc runs the pipeline over the sentences of doc with a progress bar.
func parseDoc(ctx context.Context, e *env, docs []sent.Doc, doc sent.Doc, ui UI) ([]parser.SentenceResult, error) {
	bar := newProgress(ui.Err, len(doc.Sentences), e.progress)
	defer bar.Stop()

	p, err := e.newParser(annotated.NewCorpus(docs...), parser.WithProgress(func(done, total int) {
		bar.Set(done)
	}))
	if err != nil {
		return nil, err
	}

	return p.ParseSentences(ctx, sentenceTexts(doc))
}

// findDoc takes first as a document id, or else as part of a document
// title.
func findDoc(docs []sent.Doc, first string) (sent.Doc, error) {
	if id, err := strconv.Atoi(first); err == nil {
		for _, doc := range docs {
			if doc.Id == id {
				return doc, nil
			}
		}
		return sent.Doc{}, fmt.Errorf("no doc with id %d", id)
	}

	for _, doc := range docs {
		if strings.Contains(doc.Title, first) {
			return doc, nil
		}
	}
	return sent.Doc{}, fmt.Errorf("no doc matches %q", first)
}

// sentenceTexts keeps the sentence boundaries recorded in the corpus.
func sentenceTexts(doc sent.Doc) []string {
	texts := make([]string, len(doc.Sentences))
	for i, s := range doc.Sentences {
		texts[i] = s.Text()
	}
	return texts
}
