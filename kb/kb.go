// Package kb loads parse results into a Mangle fact base, so that they can
// be queried with Datalog rules.
package kb

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/mangle/analysis"
	"github.com/google/mangle/ast"
	"github.com/google/mangle/engine"
	"github.com/google/mangle/factstore"
	"github.com/google/mangle/parse"

	"github.com/revelaction/semparse/parser"
)

var ErrUnknownPredicate = errors.New("unknown predicate")

// Schema declares the facts Add emits. Negated and Bound are /true or
// /false.
const Schema = `
Decl proposition(Sentence, Prop, Sense, Lemma).
Decl role_span(Sentence, Prop, Role, Text, Start, End).
Decl unaligned_span(Sentence, Prop, Label, Text).
Decl semantic_predicate(Sentence, Prop, Index, Type, Negated).
Decl predicate_arg(Sentence, Prop, Index, Pos, Kind, Value, Bound).
`

// Fact is a stored atom with its arguments converted to Go values: string
// for strings and names, int64 for numbers.
type Fact struct {
	Predicate string
	Args      []interface{}
}

func (f Fact) String() string {
	args := make([]string, len(f.Args))
	for i, a := range f.Args {
		if s, ok := a.(string); ok && !strings.HasPrefix(s, "/") {
			args[i] = fmt.Sprintf("%q", s)
			continue
		}
		args[i] = fmt.Sprint(a)
	}
	return fmt.Sprintf("%s(%s).", f.Predicate, strings.Join(args, ", "))
}

type Base struct {
	store factstore.ConcurrentFactStore

	mu    sync.RWMutex
	preds map[string]ast.PredicateSym
}

func New() *Base {
	b := &Base{
		store: factstore.NewConcurrentFactStore(factstore.NewSimpleInMemoryStore()),
		preds: map[string]ast.PredicateSym{},
	}
	for name, arity := range map[string]int{
		"proposition":        4,
		"role_span":          6,
		"unaligned_span":     4,
		"semantic_predicate": 5,
		"predicate_arg":      7,
	} {
		b.preds[name] = ast.PredicateSym{Symbol: name, Arity: arity}
	}
	return b
}

func boolConst(v bool) ast.Constant {
	if v {
		return ast.TrueConstant
	}
	return ast.FalseConstant
}

func num(i int) ast.Constant {
	return ast.Number(int64(i))
}

// Add emits the facts of every proposition of p. Propositions are numbered
// by their position in p.Props.
func (b *Base) Add(sentence int, p parser.Parse) int {
	n := 0
	add := func(pred string, args ...ast.BaseTerm) {
		if b.store.Add(ast.NewAtom(pred, args...)) {
			n++
		}
	}

	s := num(sentence)
	for pi, prop := range p.Props {
		pr := num(pi)
		add("proposition", s, pr, ast.String(prop.Sense.Id), ast.String(p.Tree.Lemma(prop.Predicate.Index)))

		if !prop.Aligned {
			for _, span := range prop.PropBank {
				add("unaligned_span", s, pr, ast.String(span.Label.String()), ast.String(p.Tree.Text(span.Start, span.End)))
			}
			continue
		}

		for _, rb := range prop.Roles {
			text := ast.String(p.Tree.Text(rb.Span.Start, rb.Span.End))
			if !rb.Aligned {
				add("unaligned_span", s, pr, ast.String(rb.Span.Label.String()), text)
				continue
			}
			add("role_span", s, pr, ast.String(rb.Role.String()), text, num(rb.Span.Start), num(rb.Span.End))
		}

		for i, sp := range prop.Predicates {
			add("semantic_predicate", s, pr, num(i), ast.String(sp.Type.String()), boolConst(sp.Negated))
			for j, arg := range sp.Args {
				value := arg.Value
				if arg.Variable != nil {
					value = arg.Variable.String()
				}
				add("predicate_arg", s, pr, num(i), num(j), ast.String(arg.Kind.String()), ast.String(value), boolConst(arg.Bound()))
			}
		}
	}
	return n
}

// Query returns the facts of predicate name, sorted by their text.
func (b *Base) Query(name string) ([]Fact, error) {
	b.mu.RLock()
	sym, ok := b.preds[name]
	b.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPredicate, name)
	}

	var facts []Fact
	err := b.store.GetFacts(ast.NewQuery(sym), func(a ast.Atom) error {
		args := make([]interface{}, len(a.Args))
		for i, t := range a.Args {
			args[i] = value(t)
		}
		facts = append(facts, Fact{Predicate: name, Args: args})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(facts, func(i, j int) bool { return facts[i].String() < facts[j].String() })
	return facts, nil
}

// Predicates returns the names of the declared and derived predicates.
func (b *Base) Predicates() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	names := make([]string, 0, len(b.preds))
	for name := range b.preds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Eval evaluates the rules of program over the stored facts to fixed
// point. Derived predicates can then be queried.
func (b *Base) Eval(program string) error {
	unit, err := parse.Unit(strings.NewReader(Schema + "\n" + program))
	if err != nil {
		return fmt.Errorf("parse error: %w", err)
	}

	info, err := analysis.AnalyzeOneUnit(unit, nil)
	if err != nil {
		return fmt.Errorf("analysis error: %w", err)
	}

	if _, err := engine.EvalProgramWithStats(info, b.store); err != nil {
		return fmt.Errorf("evaluation error: %w", err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for sym := range info.Decls {
		if _, ok := b.preds[sym.Symbol]; !ok {
			b.preds[sym.Symbol] = sym
		}
	}
	for _, r := range info.Rules {
		b.preds[r.Head.Predicate.Symbol] = r.Head.Predicate
	}
	return nil
}

func value(t ast.BaseTerm) interface{} {
	c, ok := t.(ast.Constant)
	if !ok {
		return fmt.Sprint(t)
	}
	switch c.Type {
	case ast.StringType, ast.NameType:
		return c.Symbol
	case ast.NumberType:
		return c.NumValue
	}
	return c.String()
}
