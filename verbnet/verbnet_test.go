package verbnet

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestRoleTypeFromString(t *testing.T) {
	cases := map[string]RoleType{
		"Agent":            Agent,
		"agent":            Agent,
		" THEME ":          Theme,
		"?Theme":           Theme,
		"co-agent":         CoAgent,
		"Co_Agent":         CoAgent,
		"initial-location": InitialLocation,
		"VERB":             Verb,
		"frobnicator":      UnknownRole,
		"":                 UnknownRole,
	}
	for in, want := range cases {
		assert.Equal(t, want, RoleTypeFromString(in), "input %q", in)
	}
}

func TestPredicateTypeFromString(t *testing.T) {
	assert.Equal(t, PredicateType("HAS_LOCATION"), PredicateTypeFromString("has_location"))
	assert.Equal(t, PredicateType("HAS_LOCATION"), PredicateTypeFromString("Has-Location"))
	assert.Equal(t, PredicateType("MOTION"), PredicateTypeFromString(" motion "))
	assert.Equal(t, UnknownPredicate, PredicateTypeFromString("teleport"))
}

func TestPrepType(t *testing.T) {
	assert.Equal(t, OutOf, PrepTypeFromString("out of"))
	assert.Equal(t, On, PrepTypeFromString("on"))
	assert.Equal(t, UnknownPrep, PrepTypeFromString("amid"))

	assert.True(t, On.MaybeDestination())
	assert.True(t, On.MaybeLocation())
	assert.False(t, On.MaybeSource())
	assert.True(t, From.MaybeSource())
	assert.True(t, Through.IsTrajectory())
	assert.False(t, With.MaybeLocation())
}

func TestBaseIdOf(t *testing.T) {
	assert.Equal(t, "put-9.1", BaseIdOf("put-9.1"))
	assert.Equal(t, "put-9.1", BaseIdOf("put-9.1-2"))
	assert.Equal(t, "spray-9.7", BaseIdOf("spray-9.7-1-1"))
	assert.Equal(t, "free-80", BaseIdOf("free-80-1"))
	assert.Equal(t, "noclass", BaseIdOf("noclass"))

	assert.Equal(t, "given", Sense{Id: "put-9.1-2", BaseId: "given"}.Base())
}

func TestArgKindText(t *testing.T) {
	for _, in := range []string{"ThemRole", "themrole", "Them_Role", "THEMROLE"} {
		k, err := ArgKindFromString(in)
		require.NoError(t, err, in)
		assert.Equal(t, ArgThemRole, k)
	}

	_, err := ArgKindFromString("Frame")
	assert.Error(t, err)

	b, err := json.Marshal(ArgTemplate{Kind: ArgVerbSpecific, Value: "fast"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"VerbSpecific","value":"fast"}`, string(b))
}

const putYAML = `
id: put-9.1
members: [put, place]
frames:
  - description: NP V NP PP.destination
    roles:
      - type: agent
        restrictions: [+animate]
      - type: Theme
      - type: destination
    predicates:
      - type: motion
        args:
          - {kind: Event, value: e1}
          - {kind: ThemRole, value: Theme}
      - type: has_location
        negated: true
        args:
          - {kind: Event, value: e1}
          - {kind: ThemRole, value: Theme}
          - {kind: ThemRole, value: "?Initial_Location"}
`

func TestSenseYAML(t *testing.T) {
	var s Sense
	require.NoError(t, yaml.Unmarshal([]byte(putYAML), &s))

	assert.Equal(t, "put-9.1", s.Base())
	require.Len(t, s.Frames, 1)

	f := s.Frames[0]
	assert.True(t, f.HasRole(Agent))
	assert.True(t, f.HasRole(Destination))
	assert.False(t, f.HasRole(Source))
	assert.Equal(t, []string{"+animate"}, f.Roles[0].Restrictions)

	require.Len(t, f.Predicates, 2)
	assert.Equal(t, PredicateType("MOTION"), f.Predicates[0].Type)
	assert.True(t, f.Predicates[1].Negated)
	assert.Equal(t, InitialLocation, f.Predicates[1].Args[2].Role())
	assert.Equal(t, UnknownRole, f.Predicates[1].Args[0].Role())
	assert.Equal(t, "!HAS_LOCATION(e1, Theme, ?Initial_Location)", f.Predicates[1].String())
}

func TestIndex(t *testing.T) {
	senses := []Sense{
		{Id: "put-9.1-2", Members: []string{"put"}},
		{Id: "put-9.1", Members: []string{"put", "place"}},
		{Id: "put-9.1-1", Members: []string{"place"}},
		{Id: "give-13.1", Members: []string{"give"}},
	}
	x, err := NewIndex(senses)
	require.NoError(t, err)
	assert.Equal(t, 4, x.Len())

	got := x.ByBaseIdAndLemma("put-9.1", "put")
	require.Len(t, got, 2)
	assert.Equal(t, "put-9.1", got[0].Id)
	assert.Equal(t, "put-9.1-2", got[1].Id)

	assert.Empty(t, x.ByBaseIdAndLemma("put-9.1", "give"))
	assert.Empty(t, x.ByBaseIdAndLemma("give-13.1", "Give"))

	s, ok := x.Sense("give-13.1")
	require.True(t, ok)
	assert.True(t, s.HasMember("give"))

	ids := []string{}
	for _, s := range x.Senses() {
		ids = append(ids, s.Id)
	}
	assert.Equal(t, []string{"give-13.1", "put-9.1", "put-9.1-1", "put-9.1-2"}, ids)
}

func TestIndexDuplicate(t *testing.T) {
	_, err := NewIndex([]Sense{{Id: "a-1"}, {Id: "a-1"}})
	assert.Error(t, err)

	_, err = NewIndex([]Sense{{Members: []string{"x"}}})
	assert.Error(t, err)
}
