package parser

import (
	"runtime"

	"go.uber.org/zap"
)

// Progress is called after each sentence of a document is parsed, with the
// number of parsed sentences so far. Calls are serialized.
type Progress func(done, total int)

type Option func(*Parser)

func WithLogger(l *zap.Logger) Option {
	return func(p *Parser) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithWorkers bounds the sentences of a document parsed at the same time.
// n < 1 means one per CPU.
func WithWorkers(n int) Option {
	return func(p *Parser) {
		if n < 1 {
			n = runtime.NumCPU()
		}
		p.workers = n
	}
}

func WithProgress(fn Progress) Option {
	return func(p *Parser) {
		p.progress = fn
	}
}
