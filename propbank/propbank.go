// Package propbank holds the output of a shallow semantic role labeler:
// predicates with their predicted sense and flat argument spans carrying
// generic PropBank labels (A0, A1, AM-LOC, V, ...).
package propbank

import (
	"fmt"
	"strings"

	"github.com/revelaction/semparse/verbnet"
)

// ArgNumber is the numbered part of a PropBank label.
type ArgNumber string

const (
	A0 ArgNumber = "0"
	A1 ArgNumber = "1"
	A2 ArgNumber = "2"
	A3 ArgNumber = "3"
	A4 ArgNumber = "4"
	A5 ArgNumber = "5"
	AA ArgNumber = "A"
	AM ArgNumber = "M"
	V  ArgNumber = "V"

	UnknownNumber ArgNumber = "?"
)

// Arg is a parsed PropBank argument label.
type Arg struct {
	// Number is the argument number, AM for modifiers and V for the
	// predicate itself.
	Number ArgNumber `json:"number"`

	// Function is the modifier function tag (LOC, TMP, DIR, ...), or a
	// numbered argument's function when the labeler emits one (A1-PPT).
	Function string `json:"function,omitempty"`

	// Prefix is C for continuation and R for reference arguments.
	Prefix string `json:"prefix,omitempty"`
}

// ArgFromLabel parses labels in both short and long spellings: A0, ARG0,
// AM-LOC, ARGM-LOC, C-A1, R-ARG0, V, rel.
func ArgFromLabel(label string) Arg {
	l := strings.ToUpper(strings.TrimSpace(label))
	if l == "V" || l == "REL" {
		return Arg{Number: V}
	}

	var a Arg
	if len(l) > 2 && (l[:2] == "C-" || l[:2] == "R-") {
		a.Prefix = l[:1]
		l = l[2:]
	}

	l = strings.TrimPrefix(l, "ARG")
	l = strings.TrimPrefix(l, "A")
	if l == "" {
		a.Number = UnknownNumber
		return a
	}

	num, fn, _ := strings.Cut(l, "-")
	switch ArgNumber(num) {
	case A0, A1, A2, A3, A4, A5, AA, AM:
		a.Number = ArgNumber(num)
	default:
		a.Number = UnknownNumber
	}
	a.Function = fn
	return a
}

func (a Arg) IsVerb() bool {
	return a.Number == V
}

func (a Arg) IsModifier() bool {
	return a.Number == AM
}

// String returns the canonical short label.
func (a Arg) String() string {
	if a.Number == V {
		return "V"
	}
	var b strings.Builder
	if a.Prefix != "" {
		b.WriteString(a.Prefix + "-")
	}
	b.WriteString("A" + string(a.Number))
	if a.Function != "" {
		b.WriteString("-" + a.Function)
	}
	return b.String()
}

// Span is a contiguous token range [Start, End] (End inclusive) with a
// label of type T.
type Span[T any] struct {
	Label T   `json:"label"`
	Start int `json:"start"`
	End   int `json:"end"`
}

func NewSpan[T any](label T, start, end int) Span[T] {
	return Span[T]{Label: label, Start: start, End: end}
}

// ConvertSpan returns s relabeled with label.
func ConvertSpan[T, U any](s Span[T], label U) Span[U] {
	return Span[U]{Label: label, Start: s.Start, End: s.End}
}

func (s Span[T]) Len() int {
	return s.End - s.Start + 1
}

func (s Span[T]) Contains(i int) bool {
	return i >= s.Start && i <= s.End
}

func (s Span[T]) String() string {
	return fmt.Sprintf("%v[%d:%d]", s.Label, s.Start, s.End)
}

// SensePrediction is a sense classifier output for the predicate token at
// Index. Sense stays nil until the prediction resolves to a lexicon entry.
type SensePrediction struct {
	Index int    `json:"index"`
	Text  string `json:"text"`

	// Id is the coarse sense id the classifier predicted.
	Id    string         `json:"id"`
	Sense *verbnet.Sense `json:"-"`
}

func (p SensePrediction) Resolved() bool {
	return p.Sense != nil
}

// Proposition is one labeled predicate occurrence.
type Proposition struct {
	Predicate SensePrediction `json:"predicate"`
	Arguments []Span[Arg]     `json:"arguments"`
}

// RelIndex returns the token index of the predicate.
func (p Proposition) RelIndex() int {
	return p.Predicate.Index
}

// VerbSpan returns the span labeled V, if any.
func (p Proposition) VerbSpan() (Span[Arg], bool) {
	for _, s := range p.Arguments {
		if s.Label.IsVerb() {
			return s, true
		}
	}
	return Span[Arg]{}, false
}
