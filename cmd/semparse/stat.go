package main

import (
	"context"

	"github.com/revelaction/semparse/stat"
)

func statCommand(ctx context.Context, e *env, first string, ui UI) error {
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

	hdl := stat.NewHandler()
	hdl.Aggregate(results)

	e.renderer(ui).Stats(hdl.Get())
	return nil
}
