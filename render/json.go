package render

import (
	"encoding/json"
	"io"

	"github.com/revelaction/semparse/parser"
	"github.com/revelaction/semparse/semantics"
	"github.com/revelaction/semparse/sentence"
	"github.com/revelaction/semparse/verbnet"
)

// JSONRenderer writes parse results as JSON to a writer.
type JSONRenderer struct {
	W io.Writer
}

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{W: w}
}

type SentenceModel struct {
	Index  int         `json:"index"`
	Text   string      `json:"text"`
	Tokens []string    `json:"tokens"`
	Props  []PropModel `json:"props"`
	Error  string      `json:"error,omitempty"`
}

// PropModel is the serialized form of a proposition.
type PropModel struct {
	Sense     string       `json:"sense"`
	Lemma     string       `json:"lemma"`
	Index     int          `json:"index"`
	MainEvent *EventModel  `json:"mainEvent"`
	Events    []EventModel `json:"events"`
	Spans     []SpanModel  `json:"spans"`
}

type EventModel struct {
	Name       string           `json:"name"`
	EventIndex int              `json:"eventIndex"`
	Predicates []PredicateModel `json:"predicates"`
}

type PredicateModel struct {
	Type     string     `json:"type"`
	Polarity bool       `json:"polarity"`
	Args     []ArgModel `json:"args"`
}

type ArgModel struct {
	Type       string `json:"type"`
	Value      string `json:"value"`
	Binding    string `json:"binding,omitempty"`
	EventIndex int    `json:"eventIndex"`
}

type SpanModel struct {
	Label       string `json:"label"`
	Text        string `json:"text"`
	Start       int    `json:"start"`
	End         int    `json:"end"`
	IsPredicate bool   `json:"isPredicate"`
	Aligned     bool   `json:"aligned"`
}

// Render serializes the results as a JSON array.
func (r *JSONRenderer) Render(results []parser.SentenceResult) error {
	models := make([]SentenceModel, len(results))
	for i, res := range results {
		models[i] = NewSentenceModel(res.Index, res.Parse)
		if res.Err != nil {
			models[i].Error = res.Err.Error()
		}
	}
	return json.NewEncoder(r.W).Encode(models)
}

func (r *JSONRenderer) RenderParse(p parser.Parse) error {
	return json.NewEncoder(r.W).Encode(NewSentenceModel(0, p))
}

func NewSentenceModel(index int, p parser.Parse) SentenceModel {
	m := SentenceModel{Index: index, Text: p.Text, Tokens: p.Tokens, Props: []PropModel{}}
	if m.Tokens == nil {
		m.Tokens = []string{}
	}
	for _, prop := range p.Props {
		m.Props = append(m.Props, NewPropModel(prop, p.Tree))
	}
	return m
}

func NewPropModel(prop parser.Proposition, tree *sentence.Tree) PropModel {
	m := PropModel{
		Sense:  prop.Sense.Id,
		Index:  prop.Predicate.Index,
		Events: []EventModel{},
		Spans:  []SpanModel{},
	}
	if tree != nil {
		m.Lemma = tree.Lemma(prop.Predicate.Index)
	}

	if prop.MainEvent != nil {
		main := newEventModel(*prop.MainEvent)
		m.MainEvent = &main
	}
	for _, e := range prop.SubEvents {
		m.Events = append(m.Events, newEventModel(e))
	}

	text := func(start, end int) string {
		if tree == nil {
			return ""
		}
		return tree.Text(start, end)
	}

	if prop.Aligned {
		for _, b := range prop.Roles {
			label := b.Role.String()
			if !b.Aligned {
				label = b.Span.Label.String()
			}
			m.Spans = append(m.Spans, SpanModel{
				Label:       label,
				Text:        text(b.Span.Start, b.Span.End),
				Start:       b.Span.Start,
				End:         b.Span.End,
				IsPredicate: b.Role == verbnet.Verb,
				Aligned:     b.Aligned,
			})
		}
		return m
	}

	for _, s := range prop.PropBank {
		m.Spans = append(m.Spans, SpanModel{
			Label:       s.Label.String(),
			Text:        text(s.Start, s.End),
			Start:       s.Start,
			End:         s.End,
			IsPredicate: s.Label.IsVerb(),
		})
	}
	return m
}

func newEventModel(e semantics.Event) EventModel {
	m := EventModel{Name: e.Name, EventIndex: e.Index, Predicates: []PredicateModel{}}
	for _, p := range e.Predicates {
		pm := PredicateModel{Type: string(p.Type), Polarity: !p.Negated, Args: []ArgModel{}}
		for _, a := range p.Args {
			am := ArgModel{Type: a.Kind.String(), Value: a.Value, EventIndex: a.EventIndex}
			if a.Bound() {
				am.Binding = a.Variable.String()
			}
			pm.Args = append(pm.Args, am)
		}
		m.Predicates = append(m.Predicates, pm)
	}
	return m
}
