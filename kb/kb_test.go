package kb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revelaction/semparse/align"
	"github.com/revelaction/semparse/parser"
	"github.com/revelaction/semparse/propbank"
	"github.com/revelaction/semparse/semantics"
	"github.com/revelaction/semparse/sentence"
	"github.com/revelaction/semparse/verbnet"
)

func span(label string, start, end int) propbank.Span[propbank.Arg] {
	return propbank.NewSpan(propbank.ArgFromLabel(label), start, end)
}

func putParse() parser.Parse {
	words := []string{"John", "put", "the", "book", "on", "the", "table", "yesterday", "."}
	tks := make([]sentence.Token, len(words))
	for i, w := range words {
		tks[i] = sentence.Token{Text: w, Lemma: w}
	}
	tree := sentence.NewTree(tks)

	sense := verbnet.Sense{Id: "put-9.1", Members: []string{"put"}}
	spans := []propbank.Span[propbank.Arg]{span("A0", 0, 0), span("V", 1, 1), span("A1", 2, 3), span("AM-TMP", 7, 7)}

	preds := semantics.Instantiate([]verbnet.PredicateTemplate{
		{Type: "MOTION", Negated: true, Args: []verbnet.ArgTemplate{
			{Kind: verbnet.ArgEvent, Value: "e1"},
			{Kind: verbnet.ArgThemRole, Value: "Theme"},
			{Kind: verbnet.ArgThemRole, Value: "Trajectory"},
		}},
	}, semantics.Context{
		Roles: map[verbnet.RoleType]semantics.SpanRef{verbnet.Theme: {Start: 2, End: 3, Text: "the book"}},
		Event: semantics.EventRef{Name: "E", SenseId: "put-9.1"},
	})

	return parser.Parse{
		Text: "John put the book on the table yesterday.",
		Tree: tree,
		Props: []parser.Proposition{
			{
				Predicate: propbank.SensePrediction{Index: 1, Text: "put", Id: "put-9.1", Sense: &sense},
				Sense:     sense,
				PropBank:  spans,
				Roles: align.Bindings{
					{Span: spans[0], Role: verbnet.Agent, Aligned: true},
					{Span: spans[1], Role: verbnet.Verb, Aligned: true},
					{Span: spans[2], Role: verbnet.Theme, Aligned: true},
					{Span: spans[3], Role: verbnet.UnknownRole},
				},
				Predicates: preds,
				Aligned:    true,
			},
			{
				Predicate: propbank.SensePrediction{Index: 1, Text: "put", Id: "put-9.1", Sense: &sense},
				Sense:     sense,
				PropBank:  spans[:2],
			},
		},
	}
}

func TestAdd(t *testing.T) {
	b := New()
	assert.Equal(t, 12, b.Add(3, putParse()))

	facts, err := b.Query("proposition")
	require.NoError(t, err)
	require.Len(t, facts, 2)
	assert.Equal(t, []interface{}{int64(3), int64(0), "put-9.1", "put"}, facts[0].Args)

	facts, err = b.Query("role_span")
	require.NoError(t, err)
	assert.Len(t, facts, 3)

	facts, err = b.Query("unaligned_span")
	require.NoError(t, err)
	require.Len(t, facts, 3)
	assert.Equal(t, `unaligned_span(3, 0, "AM-TMP", "yesterday").`, facts[0].String())

	facts, err = b.Query("semantic_predicate")
	require.NoError(t, err)
	require.Len(t, facts, 1)
	assert.Equal(t, "/true", facts[0].Args[4])

	facts, err = b.Query("predicate_arg")
	require.NoError(t, err)
	require.Len(t, facts, 3)
	assert.Equal(t, []interface{}{int64(3), int64(0), int64(0), int64(1), "ThemRole", "the book", "/true"}, facts[1].Args)
	assert.Equal(t, "/false", facts[2].Args[6])
}

func TestAddIdempotent(t *testing.T) {
	b := New()
	b.Add(0, putParse())
	assert.Zero(t, b.Add(0, putParse()))
}

func TestEval(t *testing.T) {
	b := New()
	b.Add(0, putParse())

	require.NoError(t, b.Eval(`moved(Text) :- role_span(_, _, "Theme", Text, _, _).`))

	facts, err := b.Query("moved")
	require.NoError(t, err)
	require.Len(t, facts, 1)
	assert.Equal(t, "the book", facts[0].Args[0])
	assert.Contains(t, b.Predicates(), "moved")
}

func TestEvalErrors(t *testing.T) {
	b := New()
	assert.ErrorContains(t, b.Eval(`broken(`), "parse error")

	_, err := b.Query("nope")
	assert.ErrorIs(t, err, ErrUnknownPredicate)
}
