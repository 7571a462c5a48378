// Package parser assembles VerbNet propositions from the output of its
// collaborators: tokenizer, dependency parser, sense classifier, role
// labeler and structural aligner.
package parser

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"go.uber.org/zap"

	"github.com/revelaction/semparse/align"
	"github.com/revelaction/semparse/propbank"
	"github.com/revelaction/semparse/semantics"
	"github.com/revelaction/semparse/sense"
	"github.com/revelaction/semparse/sentence"
	"github.com/revelaction/semparse/verbnet"
)

var (
	ErrMissingComponent = errors.New("missing component")
	ErrNoSegmenter      = errors.New("no segmenter")
)

func missing(name string) error {
	return fmt.Errorf("%w: %s", ErrMissingComponent, name)
}

type Parser struct {
	c        Components
	resolver *sense.Resolver

	logger   *zap.Logger
	workers  int
	progress Progress
}

func New(c Components, opts ...Option) (*Parser, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}

	p := &Parser{
		c:        c,
		resolver: sense.NewResolver(c.Senses),
		logger:   zap.NewNop(),
		workers:  runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// SkipReason tells why a predicate occurrence produced no Proposition.
type SkipReason int

const (
	// SkipUnresolved: the predicted sense is not in the lexicon.
	SkipUnresolved SkipReason = iota
	// SkipInconsistent: the alignment does not match the labeled spans.
	SkipInconsistent
)

func (r SkipReason) String() string {
	if r == SkipInconsistent {
		return "inconsistent alignment"
	}
	return "unresolved sense"
}

// SkippedOccurrence is a predicate occurrence left out of Parse.Props.
type SkippedOccurrence struct {
	Index  int        `json:"index"`
	Text   string     `json:"text"`
	Sense  string     `json:"sense"`
	Reason SkipReason `json:"reason"`
	Err    error      `json:"-"`
}

// Proposition is the analysis of one predicate occurrence. Without an
// alignment only PropBank is set: Roles, Predicates and events stay empty.
type Proposition struct {
	Predicate propbank.SensePrediction
	Sense     verbnet.Sense
	Frame     *verbnet.Frame

	PropBank []propbank.Span[propbank.Arg]
	Roles    align.Bindings

	Predicates []semantics.Predicate
	MainEvent  *semantics.Event
	SubEvents  []semantics.Event

	Aligned bool
}

// Parse is the analysis of one sentence.
type Parse struct {
	Text   string
	Tokens []string
	Tree   *sentence.Tree

	Props   []Proposition
	Skipped []SkippedOccurrence
}

// ParseSentence analyzes text as a single sentence. Collaborator errors
// fail the call; unresolved senses, missing alignments and inconsistent
// alignments only affect their own predicate occurrence.
func (p *Parser) ParseSentence(ctx context.Context, text string) (Parse, error) {
	parse := Parse{Text: text}

	words, err := p.c.Tokenizer.Tokenize(ctx, text)
	if err != nil {
		return parse, fmt.Errorf("tokenize: %w", err)
	}
	parse.Tokens = words

	tree, err := p.c.Parser.Parse(ctx, words)
	if err != nil {
		return parse, fmt.Errorf("dependency parse: %w", err)
	}
	parse.Tree = tree

	raws, err := p.c.Classifier.Predict(ctx, tree)
	if err != nil {
		return parse, fmt.Errorf("sense prediction: %w", err)
	}

	preds, err := p.resolver.ResolveAll(tree, raws)
	if err != nil {
		return parse, fmt.Errorf("sense resolution: %w", err)
	}

	props, err := p.c.Labeler.Label(ctx, tree, preds)
	if err != nil {
		return parse, fmt.Errorf("role labeling: %w", err)
	}

	byIndex := make(map[int]propbank.SensePrediction, len(preds))
	for _, pr := range preds {
		byIndex[pr.Index] = pr
	}

	for _, prop := range props {
		if pr, ok := byIndex[prop.Predicate.Index]; ok {
			prop.Predicate = pr
		} else if prop.Predicate, err = p.resolver.Resolve(tree, prop.Predicate); err != nil {
			return parse, fmt.Errorf("sense resolution: %w", err)
		}

		if !prop.Predicate.Resolved() {
			p.logger.Debug("unresolved sense",
				zap.String("sense", prop.Predicate.Id),
				zap.Int("index", prop.Predicate.Index))
			parse.Skipped = append(parse.Skipped, skipped(prop, SkipUnresolved, nil))
			continue
		}

		vp, err := p.assemble(prop, tree)
		if err != nil {
			p.logger.Warn("skipping predicate occurrence",
				zap.String("sentence", text),
				zap.String("sense", prop.Predicate.Id),
				zap.Int("index", prop.Predicate.Index),
				zap.Error(err))
			parse.Skipped = append(parse.Skipped, skipped(prop, SkipInconsistent, err))
			continue
		}
		parse.Props = append(parse.Props, vp)
	}

	return parse, nil
}

func skipped(prop propbank.Proposition, r SkipReason, err error) SkippedOccurrence {
	return SkippedOccurrence{
		Index:  prop.Predicate.Index,
		Text:   prop.Predicate.Text,
		Sense:  prop.Predicate.Id,
		Reason: r,
		Err:    err,
	}
}

// assemble aligns a proposition with a resolved sense and instantiates the
// predicates of the aligned frame.
func (p *Parser) assemble(prop propbank.Proposition, tree *sentence.Tree) (Proposition, error) {
	vp := Proposition{
		Predicate: prop.Predicate,
		Sense:     *prop.Predicate.Sense,
		PropBank:  prop.Arguments,
	}

	if p.c.Aligner == nil {
		return vp, nil
	}

	a, ok := p.c.Aligner.Align(prop, tree)
	if !ok {
		p.logger.Debug("no alignment", zap.String("sense", vp.Sense.Id), zap.Int("index", prop.RelIndex()))
		return vp, nil
	}

	bindings, err := align.Roles(prop.Arguments, a)
	if err != nil {
		return Proposition{}, err
	}

	frame := a.Frame
	vp.Frame = &frame
	vp.Roles = bindings
	vp.Aligned = true

	ctx := semantics.Context{
		Roles: spanRefs(vp.Roles, tree),
		Event: semantics.EventRef{Name: semantics.MainEvent, SenseId: vp.Sense.Id},
	}
	vp.Predicates = semantics.Instantiate(frame.Predicates, ctx)

	main, subs := semantics.Events(vp.Predicates)
	vp.MainEvent = &main
	vp.SubEvents = subs

	return vp, nil
}

func spanRefs(bs align.Bindings, tree *sentence.Tree) map[verbnet.RoleType]semantics.SpanRef {
	refs := map[verbnet.RoleType]semantics.SpanRef{}
	for role, b := range bs.ByRole() {
		if role == verbnet.Verb {
			continue
		}
		refs[role] = semantics.SpanRef{
			Start: b.Span.Start,
			End:   b.Span.End,
			Text:  tree.Text(b.Span.Start, b.Span.End),
			Label: b.Span.Label.String(),
		}
	}
	return refs
}
