package main

import (
	"io"

	"github.com/gosuri/uiprogress"
)

// progress is a single uiprogress bar. The zero value draws nothing, so
// commands call it the same way with --no-progress.
type progress struct {
	p   *uiprogress.Progress
	bar *uiprogress.Bar

	name string
}

func newProgress(w io.Writer, total int, enabled bool) *progress {
	if !enabled {
		return &progress{}
	}

	p := uiprogress.New()
	p.SetOut(w)
	p.Start()

	pr := &progress{p: p, bar: p.AddBar(total)}
	pr.bar.AppendCompleted()
	pr.bar.PrependElapsed()
	// Append the current item name to the progress bar
	pr.bar.AppendFunc(func(b *uiprogress.Bar) string {
		return pr.name
	})
	return pr
}

func (pr *progress) Incr(name string) {
	if pr.bar == nil {
		return
	}
	pr.name = name
	pr.bar.Incr()
}

func (pr *progress) Set(n int) {
	if pr.bar == nil {
		return
	}
	_ = pr.bar.Set(n)
}

func (pr *progress) Stop() {
	if pr.p != nil {
		pr.p.Stop()
	}
}
