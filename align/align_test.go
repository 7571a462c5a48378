package align

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revelaction/semparse/propbank"
	"github.com/revelaction/semparse/semlink"
	"github.com/revelaction/semparse/verbnet"
)

func span(label string, start, end int) propbank.Span[propbank.Arg] {
	return propbank.NewSpan(propbank.ArgFromLabel(label), start, end)
}

// John put the book on the table yesterday .
func putSpans() []propbank.Span[propbank.Arg] {
	return []propbank.Span[propbank.Arg]{
		span("A0", 0, 0),
		span("V", 1, 1),
		span("A1", 2, 3),
		span("A2", 4, 6),
		span("AM-TMP", 7, 7),
	}
}

func putAlignment() *semlink.Alignment {
	spans := putSpans()
	return &semlink.Alignment{
		Sources: []semlink.SourcePhrase{
			{Span: spans[0], Aligned: []semlink.FramePhrase{{Kind: semlink.NounPhrase, Role: verbnet.Agent}}},
			{Span: spans[1], Aligned: []semlink.FramePhrase{{Kind: semlink.VerbPhrase}}},
			{Span: spans[2], Aligned: []semlink.FramePhrase{{Kind: semlink.NounPhrase, Role: verbnet.Theme}}},
			{Span: spans[3], Aligned: []semlink.FramePhrase{
				{Kind: semlink.PrepPhrase, Prep: verbnet.On},
				{Kind: semlink.NounPhrase, Role: verbnet.Destination, Sub: &semlink.Constituent{Start: 5, End: 6}},
			}},
			{Span: spans[4]},
		},
	}
}

func TestRoles(t *testing.T) {
	bs, err := Roles(putSpans(), putAlignment())
	require.NoError(t, err)
	require.Len(t, bs, 5)

	roles := make([]verbnet.RoleType, len(bs))
	for i, b := range bs {
		roles[i] = b.Role
		assert.Equal(t, putSpans()[i], b.Span)
	}
	assert.Equal(t, []verbnet.RoleType{verbnet.Agent, verbnet.Verb, verbnet.Theme, verbnet.Destination, verbnet.UnknownRole}, roles)

	assert.False(t, bs[4].Aligned)
	assert.Equal(t, "AM-TMP[7:7]", bs[4].String())
	assert.Equal(t, "Destination[4:6]", bs[3].String())

	require.Len(t, bs[3].Sub, 1)
	assert.Equal(t, SubBinding{Start: 5, End: 6, Role: verbnet.Destination}, bs[3].Sub[0])
	assert.Empty(t, bs[0].Sub)
}

func TestRolesVerbIgnoresFrame(t *testing.T) {
	a := putAlignment()
	// a frame schema aligning a noun phrase to the predicate span
	a.Sources[1].Aligned = []semlink.FramePhrase{{Kind: semlink.NounPhrase, Role: verbnet.Theme, Sub: &semlink.Constituent{Start: 1, End: 1}}}

	bs, err := Roles(putSpans(), a)
	require.NoError(t, err)
	assert.Equal(t, verbnet.Verb, bs[1].Role)
	assert.True(t, bs[1].Aligned)
	assert.Empty(t, bs[1].Sub)
}

func TestRolesFirstNounPhrase(t *testing.T) {
	a := putAlignment()
	a.Sources[2].Aligned = []semlink.FramePhrase{
		{Kind: semlink.LexPhrase},
		{Kind: semlink.NounPhrase, Role: verbnet.Patient},
		{Kind: semlink.NounPhrase, Role: verbnet.Theme},
	}

	bs, err := Roles(putSpans(), a)
	require.NoError(t, err)
	assert.Equal(t, verbnet.Patient, bs[2].Role)
}

func TestRolesSubBindingsBounded(t *testing.T) {
	a := putAlignment()
	for i, b := range mustRoles(t, putSpans(), a) {
		assert.LessOrEqual(t, len(b.Sub), len(a.AlignedPhrases(i)))
	}
}

func mustRoles(t *testing.T, spans []propbank.Span[propbank.Arg], a *semlink.Alignment) Bindings {
	t.Helper()
	bs, err := Roles(spans, a)
	require.NoError(t, err)
	return bs
}

func TestRolesInconsistent(t *testing.T) {
	a := putAlignment()
	a.Sources = a.Sources[:4]

	_, err := Roles(putSpans(), a)
	assert.ErrorIs(t, err, ErrInconsistentAlignment)
	assert.ErrorContains(t, err, "5 spans, 4 source phrases")

	_, err = Roles(putSpans(), nil)
	assert.ErrorIs(t, err, ErrInconsistentAlignment)
}

func TestBindingsHelpers(t *testing.T) {
	bs := mustRoles(t, putSpans(), putAlignment())

	assert.Equal(t, 1, bs.Unaligned())

	m := bs.ByRole()
	assert.Len(t, m, 4)
	assert.Equal(t, 2, m[verbnet.Theme].Span.Start)
	_, ok := m[verbnet.UnknownRole]
	assert.False(t, ok)
}
