// Package semantics instantiates the semantic predicate templates of a
// frame against the spans and event of one proposition.
package semantics

import (
	"fmt"
	"strings"

	"github.com/revelaction/semparse/verbnet"
)

const (
	// MainEvent is the event variable of the predicate occurrence itself.
	MainEvent = "E"

	// NotFound is the EventIndex of arguments naming no sub-event.
	NotFound = -1
)

// SpanRef points to an argument span of the sentence, End inclusive.
type SpanRef struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Text  string `json:"text"`
	Label string `json:"label"`
}

// EventRef points to an event of the proposition of sense SenseId.
type EventRef struct {
	Name    string `json:"name"`
	SenseId string `json:"sense"`
}

// Variable is what a predicate argument is bound to: a span or an event.
// Exactly one of the fields is set.
type Variable struct {
	Span  *SpanRef  `json:"span,omitempty"`
	Event *EventRef `json:"event,omitempty"`
}

func (v *Variable) String() string {
	switch {
	case v == nil:
		return "?"
	case v.Span != nil:
		return v.Span.Text
	case v.Event != nil:
		return v.Event.Name
	}
	return "?"
}

// Argument is an instantiated ArgTemplate. Variable is nil when nothing in
// the sentence binds it.
type Argument struct {
	Kind       verbnet.ArgKind  `json:"type"`
	Value      string           `json:"value"`
	Role       verbnet.RoleType `json:"role,omitempty"`
	Variable   *Variable        `json:"variable,omitempty"`
	EventIndex int              `json:"eventIndex"`
}

func (a Argument) Bound() bool {
	return a.Variable != nil
}

func (a Argument) String() string {
	if a.Variable == nil || a.Kind == verbnet.ArgEvent {
		return a.Value
	}
	return a.Value + "=" + a.Variable.String()
}

// Predicate is an instantiated PredicateTemplate.
type Predicate struct {
	Type    verbnet.PredicateType `json:"type"`
	Negated bool                  `json:"negated"`
	Args    []Argument            `json:"args"`
}

func (p Predicate) String() string {
	args := make([]string, len(p.Args))
	for i, a := range p.Args {
		args[i] = a.String()
	}
	neg := ""
	if p.Negated {
		neg = "!"
	}
	return fmt.Sprintf("%s%s(%s)", neg, p.Type, strings.Join(args, ", "))
}

// Event returns the name of the first event argument.
func (p Predicate) Event() (string, bool) {
	for _, a := range p.Args {
		if a.Kind == verbnet.ArgEvent {
			return EventName(a.Value), true
		}
	}
	return "", false
}

// Context holds what variables resolve to: the span bound to each role and
// the event of the predicate occurrence.
type Context struct {
	Roles map[verbnet.RoleType]SpanRef
	Event EventRef
}

// EventName returns the event variable of an event argument value, without
// a temporal function wrapper: during(E) and E both name E.
func EventName(value string) string {
	v := strings.TrimSpace(value)
	if open := strings.IndexByte(v, '('); open > 0 && strings.HasSuffix(v, ")") {
		v = strings.TrimSpace(v[open+1 : len(v)-1])
	}
	return v
}

// Instantiate returns one Predicate per template, in template order.
// Unbound variables are left nil.
func Instantiate(templates []verbnet.PredicateTemplate, ctx Context) []Predicate {
	preds := make([]Predicate, len(templates))
	for i, tpl := range templates {
		p := Predicate{
			Type:    tpl.Type,
			Negated: tpl.Negated,
			Args:    make([]Argument, len(tpl.Args)),
		}
		for j, at := range tpl.Args {
			p.Args[j] = instantiateArg(at, ctx)
		}
		preds[i] = p
	}
	return preds
}

func instantiateArg(at verbnet.ArgTemplate, ctx Context) Argument {
	arg := Argument{Kind: at.Kind, Value: at.Value, EventIndex: NotFound}

	switch at.Kind {
	case verbnet.ArgThemRole:
		arg.Role = at.Role()
		if span, ok := ctx.Roles[arg.Role]; ok && arg.Role.IsKnown() {
			arg.Variable = &Variable{Span: &span}
		}
	case verbnet.ArgEvent:
		if ctx.Event.SenseId != "" {
			arg.Variable = &Variable{Event: &EventRef{Name: EventName(at.Value), SenseId: ctx.Event.SenseId}}
		}
	}
	return arg
}
