// Package align turns a structural alignment into thematic role bindings,
// one per labeled argument span.
package align

import (
	"errors"
	"fmt"

	"github.com/revelaction/semparse/propbank"
	"github.com/revelaction/semparse/semlink"
	"github.com/revelaction/semparse/verbnet"
)

var ErrInconsistentAlignment = errors.New("inconsistent alignment")

// SubBinding is a role bound to a constituent nested inside an argument
// span, f.ex. the object of a prepositional argument.
type SubBinding struct {
	Start int              `json:"start"`
	End   int              `json:"end"`
	Role  verbnet.RoleType `json:"role"`
}

// Binding is the thematic role of an argument span. Unaligned spans carry
// UnknownRole and keep their PropBank label in Span.
type Binding struct {
	Span    propbank.Span[propbank.Arg] `json:"span"`
	Role    verbnet.RoleType            `json:"role"`
	Aligned bool                        `json:"aligned"`
	Sub     []SubBinding                `json:"sub,omitempty"`
}

func (b Binding) String() string {
	if !b.Aligned {
		return b.Span.String()
	}
	return propbank.ConvertSpan(b.Span, b.Role).String()
}

// Roles binds each span to the role of the first noun phrase aligned to
// it. The predicate span is always bound to verbnet.Verb.
func Roles(spans []propbank.Span[propbank.Arg], a *semlink.Alignment) ([]Binding, error) {
	if a == nil {
		return nil, fmt.Errorf("%w: nil alignment", ErrInconsistentAlignment)
	}
	if len(spans) != len(a.Sources) {
		return nil, fmt.Errorf("%w: %d spans, %d source phrases", ErrInconsistentAlignment, len(spans), len(a.Sources))
	}

	bindings := make([]Binding, len(spans))
	for i, span := range spans {
		b := Binding{Span: span, Role: verbnet.UnknownRole}

		if span.Label.IsVerb() {
			b.Role = verbnet.Verb
			b.Aligned = true
			bindings[i] = b
			continue
		}

		for _, fp := range a.AlignedPhrases(i) {
			if fp.Kind != semlink.NounPhrase {
				continue
			}
			if !b.Aligned {
				b.Role = fp.Role
				b.Aligned = true
			}
			if fp.Sub != nil {
				b.Sub = append(b.Sub, SubBinding{Start: fp.Sub.Start, End: fp.Sub.End, Role: fp.Role})
			}
		}
		bindings[i] = b
	}

	return bindings, nil
}

// Bindings is the ordered result of Roles.
type Bindings []Binding

// ByRole returns the first aligned binding of each role, the verb
// included.
func (bs Bindings) ByRole() map[verbnet.RoleType]Binding {
	m := map[verbnet.RoleType]Binding{}
	for _, b := range bs {
		if !b.Aligned {
			continue
		}
		if _, ok := m[b.Role]; !ok {
			m[b.Role] = b
		}
	}
	return m
}

func (bs Bindings) Unaligned() int {
	n := 0
	for _, b := range bs {
		if !b.Aligned {
			n++
		}
	}
	return n
}
