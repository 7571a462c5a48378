package main

import (
	"errors"
	"fmt"
	"slices"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/revelaction/semparse/annotated"
	"github.com/revelaction/semparse/config"
	"github.com/revelaction/semparse/parser"
	"github.com/revelaction/semparse/render"
	sent "github.com/revelaction/semparse/sentence"
	"github.com/revelaction/semparse/semlink"
	"github.com/revelaction/semparse/storage"
)

// env holds what the commands share: the effective configuration, the
// logger and the open sqlite pools.
type env struct {
	cfg    *config.Config
	logger *zap.Logger
	pool   *Pool

	progress bool
}

func withEnv(c *cli.Context, ui UI, fn func(*env) error) (err error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	applyFlags(c, cfg)

	if err := cfg.Validate(); err != nil {
		return err
	}
	if !slices.Contains(render.SupportedFormats(), cfg.Output.View) {
		return fmt.Errorf("unknown view %q, supported: %v", cfg.Output.View, render.SupportedFormats())
	}

	logger, err := cfg.Logging.Logger(c.Bool("verbose"))
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	e := &env{cfg: cfg, logger: logger, pool: &Pool{}, progress: !c.Bool("no-progress")}
	defer func() {
		err = errors.Join(err, e.pool.Close())
	}()

	return fn(e)
}

func applyFlags(c *cli.Context, cfg *config.Config) {
	if c.IsSet("lexicon") {
		cfg.LexiconPath = c.String("lexicon")
	}
	if c.IsSet("corpus") {
		cfg.CorpusPath = c.String("corpus")
	}
	if c.IsSet("mappings") {
		cfg.MappingsPath = c.String("mappings")
	}
	if c.IsSet("format") {
		cfg.Output.Format = c.String("format")
	}
	if c.IsSet("view") {
		cfg.Output.View = c.String("view")
	}
	if c.IsSet("no-color") {
		cfg.Output.NoColor = c.Bool("no-color")
	}
	if c.IsSet("workers") {
		cfg.Workers = c.Int("workers")
	}
}

func (e *env) senses() (storage.SenseRepository, error) {
	if e.cfg.LexiconPath == "" {
		return nil, errors.New("no lexicon given (--lexicon or lexicon_path)")
	}
	return NewSenseRepository(e.pool, e.cfg.LexiconPath)
}

func (e *env) docs() (storage.DocRepository, error) {
	if e.cfg.CorpusPath == "" {
		return nil, errors.New("no corpus given (--corpus or corpus_path)")
	}
	return NewDocRepository(e.pool, e.cfg.CorpusPath)
}

// corpus reads every document of the corpus repository.
func (e *env) corpus(ui UI) ([]sent.Doc, error) {
	repo, err := e.docs()
	if err != nil {
		return nil, err
	}

	list, err := repo.List()
	if err != nil {
		return nil, err
	}

	bar := newProgress(ui.Err, len(list), e.progress)
	defer bar.Stop()

	docs := make([]sent.Doc, 0, len(list))
	for _, meta := range list {
		doc, err := repo.Read(meta.Id)
		if err != nil {
			return nil, fmt.Errorf("doc %s: %w", meta.Title, err)
		}
		docs = append(docs, doc)
		bar.Incr(meta.Title)
	}

	e.logger.Debug("corpus loaded", zap.String("path", e.cfg.CorpusPath), zap.Int("docs", len(docs)))
	return docs, nil
}

// newParser wires the pipeline to the annotated corpus, the lexicon and,
// when a mappings file is configured, the role aligner.
func (e *env) newParser(corpus *annotated.Corpus, opts ...parser.Option) (*parser.Parser, error) {
	senses, err := e.senses()
	if err != nil {
		return nil, err
	}

	c := parser.Components{
		Segmenter:  corpus,
		Tokenizer:  corpus,
		Parser:     corpus,
		Classifier: corpus,
		Labeler:    corpus,
		Senses:     senses,
	}

	if e.cfg.MappingsPath != "" {
		m, err := semlink.ReadMappings(e.cfg.MappingsPath)
		if err != nil {
			return nil, err
		}
		c.Aligner = semlink.NewMappingAligner(m)
	} else {
		e.logger.Info("no mappings file, propositions stay unaligned")
	}

	opts = append([]parser.Option{
		parser.WithLogger(e.logger),
		parser.WithWorkers(e.cfg.Workers),
	}, opts...)

	return parser.New(c, opts...)
}

func (e *env) renderer(ui UI) *render.Renderer {
	r := render.NewRenderer(ui.Out)
	r.HasColor = !e.cfg.Output.NoColor
	r.HasPrefix = true
	r.Format = e.cfg.Output.View
	return r
}

// output writes results as text or JSON, per the configured format.
func (e *env) output(results []parser.SentenceResult, ui UI) error {
	if e.cfg.Output.Format == config.OutputJSON {
		return render.NewJSONRenderer(ui.Out).Render(results)
	}
	e.renderer(ui).Document(results)
	return nil
}
