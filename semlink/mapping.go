package semlink

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/revelaction/semparse/propbank"
	"github.com/revelaction/semparse/sentence"
	"github.com/revelaction/semparse/verbnet"
)

// Mappings maps a sense id (or its base id) to the thematic role each
// PropBank argument label takes in that sense.
type Mappings map[string]map[string]verbnet.RoleType

// ReadMappings reads a YAML mappings file:
//
//	put-9.1:
//	  A0: Agent
//	  A1: Theme
//	  A2: Destination
func ReadMappings(path string) (Mappings, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := DecodeMappings(f)
	if err != nil {
		return nil, fmt.Errorf("mappings %s: %w", path, err)
	}
	return m, nil
}

func DecodeMappings(r io.Reader) (Mappings, error) {
	raw := map[string]map[string]string{}
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil && err != io.EOF {
		return nil, err
	}

	m := make(Mappings, len(raw))
	for id, args := range raw {
		roles := make(map[string]verbnet.RoleType, len(args))
		for label, role := range args {
			rt := verbnet.RoleTypeFromString(role)
			if !rt.IsKnown() {
				return nil, fmt.Errorf("%s: unknown role %q for %s", id, role, label)
			}
			roles[propbank.ArgFromLabel(label).String()] = rt
		}
		m[id] = roles
	}
	return m, nil
}

// MappingAligner is an Aligner driven by Mappings. It selects the frame
// realizing most of the mapped roles and aligns each argument to a noun
// phrase of that role. Prepositional arguments get a PrepPhrase and their
// noun phrase covers the object of the preposition only.
type MappingAligner struct {
	mappings Mappings
}

var _ Aligner = (*MappingAligner)(nil)

func NewMappingAligner(m Mappings) *MappingAligner {
	return &MappingAligner{mappings: m}
}

func (a *MappingAligner) roles(s *verbnet.Sense) (map[string]verbnet.RoleType, bool) {
	if r, ok := a.mappings[s.Id]; ok {
		return r, true
	}
	r, ok := a.mappings[s.Base()]
	return r, ok
}

func (a *MappingAligner) Align(prop propbank.Proposition, tree *sentence.Tree) (*Alignment, bool) {
	s := prop.Predicate.Sense
	if s == nil || len(s.Frames) == 0 || tree == nil {
		return nil, false
	}

	roles, ok := a.roles(s)
	if !ok {
		return nil, false
	}

	fi := selectFrame(s.Frames, prop.Arguments, roles)
	frame := s.Frames[fi]

	sources := make([]SourcePhrase, len(prop.Arguments))
	taken := map[verbnet.RoleType]bool{}
	var unmapped []int

	for i, span := range prop.Arguments {
		src := SourcePhrase{Span: span}
		if span.Label.IsVerb() {
			src.Aligned = []FramePhrase{{Kind: VerbPhrase}}
			sources[i] = src
			continue
		}

		prep, isPP := leadingPrep(tree, span)
		if isPP {
			src.Aligned = append(src.Aligned, FramePhrase{Kind: PrepPhrase, Prep: prep})
		}

		role, ok := roles[span.Label.String()]
		if ok && frame.HasRole(role) && !taken[role] {
			src.Aligned = append(src.Aligned, nounPhrase(role, span, isPP))
			taken[role] = true
		} else if isPP {
			unmapped = append(unmapped, i)
		}
		sources[i] = src
	}

	// prepositional arguments without a mapping fall back to the roles
	// their preposition may introduce
	for _, i := range unmapped {
		src := &sources[i]
		prep := src.Aligned[0].Prep
		for _, role := range prepRoles(prep) {
			if frame.HasRole(role) && !taken[role] {
				src.Aligned = append(src.Aligned, nounPhrase(role, src.Span, true))
				taken[role] = true
				break
			}
		}
	}

	return &Alignment{
		Sense:      *s,
		Frame:      frame,
		FrameIndex: fi,
		Sources:    sources,
	}, true
}

func nounPhrase(role verbnet.RoleType, span propbank.Span[propbank.Arg], isPP bool) FramePhrase {
	np := FramePhrase{Kind: NounPhrase, Role: role}
	if isPP {
		np.Sub = &Constituent{Start: span.Start + 1, End: span.End}
	}
	return np
}

// selectFrame returns the index of the frame realizing most mapped roles of
// the arguments; the first such frame on ties.
func selectFrame(frames []verbnet.Frame, args []propbank.Span[propbank.Arg], roles map[string]verbnet.RoleType) int {
	best, bestScore := 0, -1
	for fi, f := range frames {
		score := 0
		for _, arg := range args {
			if r, ok := roles[arg.Label.String()]; ok && f.HasRole(r) {
				score++
			}
		}
		if score > bestScore {
			best, bestScore = fi, score
		}
	}
	return best
}

// leadingPrep reports whether span starts with an adposition followed by
// more tokens. An infinitival "to" is not one.
func leadingPrep(tree *sentence.Tree, span propbank.Span[propbank.Arg]) (verbnet.PrepType, bool) {
	if span.Len() < 2 {
		return verbnet.UnknownPrep, false
	}
	tk, ok := tree.Token(span.Start)
	if !ok {
		return verbnet.UnknownPrep, false
	}
	switch {
	case tk.Pos == "ADP" || tk.Tag == "IN":
	case tk.Tag == "TO":
		// "to" before a verb opens an infinitival clause
		if next, ok := tree.Token(span.Start + 1); ok && (next.Pos == "VERB" || next.Pos == "AUX") {
			return verbnet.UnknownPrep, false
		}
	default:
		return verbnet.UnknownPrep, false
	}
	return verbnet.PrepTypeFromString(tk.Text), true
}

func prepRoles(p verbnet.PrepType) []verbnet.RoleType {
	var roles []verbnet.RoleType
	if p.MaybeDestination() {
		roles = append(roles, verbnet.Destination, verbnet.Goal, verbnet.Recipient)
	}
	if p.MaybeSource() {
		roles = append(roles, verbnet.Source, verbnet.InitialLocation)
	}
	if p.IsTrajectory() {
		roles = append(roles, verbnet.Trajectory)
	}
	if p.MaybeLocation() {
		roles = append(roles, verbnet.Location)
	}
	return roles
}
