// Package semlink aligns PropBank propositions with VerbNet frames.
package semlink

import (
	"fmt"

	"github.com/revelaction/semparse/propbank"
	"github.com/revelaction/semparse/sentence"
	"github.com/revelaction/semparse/verbnet"
)

// PhraseKind discriminates FramePhrase.
type PhraseKind int

const (
	NounPhrase PhraseKind = iota
	VerbPhrase
	PrepPhrase
	AdvPhrase
	LexPhrase
)

func (k PhraseKind) String() string {
	switch k {
	case NounPhrase:
		return "NP"
	case VerbPhrase:
		return "VERB"
	case PrepPhrase:
		return "PREP"
	case AdvPhrase:
		return "ADV"
	case LexPhrase:
		return "LEX"
	}
	return fmt.Sprintf("PhraseKind(%d)", int(k))
}

// Constituent is a token range [Start, End] nested inside an argument span.
type Constituent struct {
	Start int
	End   int
}

// FramePhrase is an element of a frame's syntax aligned to a PropBank
// argument. Role is only meaningful for NounPhrase, Prep for PrepPhrase.
type FramePhrase struct {
	Kind PhraseKind
	Role verbnet.RoleType
	Prep verbnet.PrepType

	// Sub is the nested constituent the phrase covers, nil when the phrase
	// covers the whole argument span.
	Sub *Constituent
}

func (p FramePhrase) String() string {
	switch p.Kind {
	case NounPhrase:
		return "NP." + string(p.Role)
	case PrepPhrase:
		return "PREP." + string(p.Prep)
	}
	return p.Kind.String()
}

// SourcePhrase is a PropBank argument with the frame phrases aligned to it.
type SourcePhrase struct {
	Span    propbank.Span[propbank.Arg]
	Aligned []FramePhrase
}

func (p SourcePhrase) Number() propbank.ArgNumber {
	return p.Span.Label.Number
}

// NounPhrase returns the first aligned noun phrase.
func (p SourcePhrase) NounPhrase() (FramePhrase, bool) {
	for _, fp := range p.Aligned {
		if fp.Kind == NounPhrase {
			return fp, true
		}
	}
	return FramePhrase{}, false
}

// Alignment pairs a proposition's arguments, one SourcePhrase per span and
// in the same order, with the phrases of the selected Frame of Sense.
type Alignment struct {
	Sense      verbnet.Sense
	Frame      verbnet.Frame
	FrameIndex int

	Sources []SourcePhrase
}

// AlignedPhrases returns the frame phrases aligned to the source at i.
func (a *Alignment) AlignedPhrases(i int) []FramePhrase {
	if i < 0 || i >= len(a.Sources) {
		return nil
	}
	return a.Sources[i].Aligned
}

// ByRole returns the first source phrase whose noun phrase carries role r.
func (a *Alignment) ByRole(r verbnet.RoleType) (SourcePhrase, bool) {
	for _, src := range a.Sources {
		if np, ok := src.NounPhrase(); ok && np.Role == r {
			return src, true
		}
	}
	return SourcePhrase{}, false
}

// Aligner aligns a labeled proposition with a frame of its resolved sense.
// A false return means no alignment could be found, which is not an error.
type Aligner interface {
	Align(prop propbank.Proposition, tree *sentence.Tree) (*Alignment, bool)
}
