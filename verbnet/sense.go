package verbnet

import (
	"fmt"
	"regexp"
	"strings"
)

// Sense is a VerbNet class (or subclass): the lexicon entry a predicted
// verb sense resolves to. Senses are immutable once loaded.
type Sense struct {
	// Id is the full class id, f.ex. put-9.1-2
	Id string `yaml:"id" json:"id"`

	// BaseId is the coarse id the sense classifier predicts, f.ex.
	// put-9.1. Derived from Id when empty.
	BaseId string `yaml:"base,omitempty" json:"base,omitempty"`

	// Members are the verb lemmas of the class.
	Members []string `yaml:"members" json:"members"`

	Frames []Frame `yaml:"frames" json:"frames"`
}

// baseIdRegex matches <name>-<number> and drops subclass suffixes (-1, -1-2).
var baseIdRegex = regexp.MustCompile(`^(.+?-\d+(?:\.\d+)*)(?:-\d+)*$`)

// BaseIdOf returns the coarse class id of a full class id.
func BaseIdOf(id string) string {
	m := baseIdRegex.FindStringSubmatch(id)
	if m == nil {
		return id
	}
	return m[1]
}

// Base returns BaseId, or derives it from Id.
func (s Sense) Base() string {
	if s.BaseId != "" {
		return s.BaseId
	}
	return BaseIdOf(s.Id)
}

func (s Sense) HasMember(lemma string) bool {
	for _, m := range s.Members {
		if m == lemma {
			return true
		}
	}
	return false
}

func (s Sense) String() string {
	return s.Id
}

// Frame is a syntactic/semantic pattern of a Sense: the thematic role slots
// it realizes and the semantic predicate templates over those slots.
type Frame struct {
	Description string `yaml:"description" json:"description"`
	Primary     string `yaml:"primary,omitempty" json:"primary,omitempty"`
	Example     string `yaml:"example,omitempty" json:"example,omitempty"`

	Roles      []RoleSlot          `yaml:"roles" json:"roles"`
	Predicates []PredicateTemplate `yaml:"predicates" json:"predicates"`
}

func (f Frame) HasRole(r RoleType) bool {
	for _, slot := range f.Roles {
		if slot.Type == r {
			return true
		}
	}
	return false
}

// RoleSlot is a thematic role of a Frame, with optional selectional or
// syntactic restrictions (+animate, -concrete, ...).
type RoleSlot struct {
	Type         RoleType `yaml:"type" json:"type"`
	Restrictions []string `yaml:"restrictions,omitempty" json:"restrictions,omitempty"`
}

// PredicateTemplate is a semantic predicate of a Frame with unbound
// arguments.
type PredicateTemplate struct {
	Type    PredicateType `yaml:"type" json:"type"`
	Negated bool          `yaml:"negated,omitempty" json:"negated,omitempty"`
	Args    []ArgTemplate `yaml:"args" json:"args"`
}

func (p PredicateTemplate) String() string {
	args := make([]string, len(p.Args))
	for i, a := range p.Args {
		args[i] = a.Value
	}
	neg := ""
	if p.Negated {
		neg = "!"
	}
	return fmt.Sprintf("%s%s(%s)", neg, p.Type, strings.Join(args, ", "))
}

// ArgTemplate is one argument slot of a PredicateTemplate. Kind selects how
// Value is read: a role name, an event variable name or a literal.
type ArgTemplate struct {
	Kind  ArgKind `yaml:"kind" json:"kind"`
	Value string  `yaml:"value" json:"value"`
}

// Role returns the thematic role a ThemRole argument refers to.
func (a ArgTemplate) Role() RoleType {
	if a.Kind != ArgThemRole {
		return UnknownRole
	}
	return RoleTypeFromString(a.Value)
}

// ArgKind discriminates predicate arguments.
type ArgKind int

const (
	ArgConstant ArgKind = iota
	ArgThemRole
	ArgEvent
	ArgVerbSpecific
)

var argKindNames = map[ArgKind]string{
	ArgConstant:     "Constant",
	ArgThemRole:     "ThemRole",
	ArgEvent:        "Event",
	ArgVerbSpecific: "VerbSpecific",
}

func (k ArgKind) String() string {
	if s, ok := argKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ArgKind(%d)", int(k))
}

// ArgKindFromString is case insensitive and accepts both ThemRole and
// Them_Role spellings.
func ArgKindFromString(s string) (ArgKind, error) {
	key := strings.ToLower(strings.NewReplacer("_", "", "-", "", " ", "").Replace(s))
	for k, name := range argKindNames {
		if strings.ToLower(name) == key {
			return k, nil
		}
	}
	return ArgConstant, fmt.Errorf("unknown predicate argument kind: %q", s)
}

func (k ArgKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *ArgKind) UnmarshalText(text []byte) error {
	v, err := ArgKindFromString(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}
