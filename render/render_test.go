package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
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

	sense := verbnet.Sense{Id: "put-9.1"}
	spans := []propbank.Span[propbank.Arg]{span("A0", 0, 0), span("V", 1, 1), span("A1", 2, 3), span("A2", 4, 6), span("AM-TMP", 7, 7)}

	preds := semantics.Instantiate([]verbnet.PredicateTemplate{
		{Type: "MOTION", Args: []verbnet.ArgTemplate{{Kind: verbnet.ArgEvent, Value: "e1"}, {Kind: verbnet.ArgThemRole, Value: "Theme"}}},
		{Type: "CAUSE", Negated: true, Args: []verbnet.ArgTemplate{{Kind: verbnet.ArgEvent, Value: "e1"}, {Kind: verbnet.ArgEvent, Value: "e7"}}},
	}, semantics.Context{
		Roles: map[verbnet.RoleType]semantics.SpanRef{verbnet.Theme: {Start: 2, End: 3, Text: "the book"}},
		Event: semantics.EventRef{Name: "E", SenseId: "put-9.1"},
	})
	main, subs := semantics.Events(preds)

	return parser.Parse{
		Text:   "John put the book on the table yesterday.",
		Tokens: words,
		Tree:   sentence.NewTree(tks),
		Props: []parser.Proposition{{
			Predicate: propbank.SensePrediction{Index: 1, Text: "put", Id: "put-9.1", Sense: &sense},
			Sense:     sense,
			Frame:     &verbnet.Frame{Description: "NP V NP PP.destination"},
			PropBank:  spans,
			Roles: align.Bindings{
				{Span: spans[0], Role: verbnet.Agent, Aligned: true},
				{Span: spans[1], Role: verbnet.Verb, Aligned: true},
				{Span: spans[2], Role: verbnet.Theme, Aligned: true},
				{Span: spans[3], Role: verbnet.Destination, Aligned: true},
				{Span: spans[4], Role: verbnet.UnknownRole},
			},
			Predicates: preds,
			MainEvent:  &main,
			SubEvents:  subs,
			Aligned:    true,
		}},
		Skipped: []parser.SkippedOccurrence{{Index: 7, Text: "yesterday", Sense: "zzz-1", Reason: parser.SkipUnresolved}},
	}
}

func TestRendererParse(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)
	r.Parse(putParse(), "")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "John put the book on the table yesterday.", lines[0])
	assert.Equal(t, "  put-9.1 NP V NP PP.destination", lines[1])
	assert.Equal(t, "    [Agent John] [VERB put] [Theme the book] [Destination on the table] [AM-TMP yesterday] .", lines[2])
	assert.Equal(t, "    MOTION(e1, Theme=the book)", lines[3])
	assert.Equal(t, "    !CAUSE(e1, e7)", lines[4])
	assert.Equal(t, "  skipped yesterday[7] zzz-1: unresolved sense", lines[5])
}

func TestRendererFormats(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)

	r.NextFormat()
	assert.Equal(t, "roles", r.Format)
	r.Parse(putParse(), "")
	assert.NotContains(t, buf.String(), "MOTION")

	buf.Reset()
	r.NextFormat()
	assert.Equal(t, "semantics", r.Format)
	r.Parse(putParse(), "")
	assert.NotContains(t, buf.String(), "[Agent")
	assert.Contains(t, buf.String(), "MOTION")

	r.NextFormat()
	assert.Equal(t, "all", r.Format)
}

func TestRendererDocument(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)
	r.HasPrefix = true
	r.HasColor = true

	r.Document([]parser.SentenceResult{
		{Index: 0, Parse: parser.Parse{Text: "Hello."}},
		{Index: 1, Err: errors.New("sentence not in corpus")},
	})

	out := buf.String()
	assert.Contains(t, out, "[  0] Hello.")
	assert.Contains(t, out, "[  1] "+Red+"sentence not in corpus"+Off)
}

func TestJSONRendererRenderEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONRenderer(&buf).Render(nil))

	var results []SentenceModel
	require.NoError(t, json.Unmarshal(buf.Bytes(), &results))
	assert.Empty(t, results)
}

func TestJSONRendererRender(t *testing.T) {
	var buf bytes.Buffer
	err := NewJSONRenderer(&buf).Render([]parser.SentenceResult{
		{Index: 0, Parse: putParse()},
		{Index: 1, Err: errors.New("boom")},
	})
	require.NoError(t, err)

	var results []SentenceModel
	require.NoError(t, json.Unmarshal(buf.Bytes(), &results))
	require.Len(t, results, 2)
	assert.Equal(t, "boom", results[1].Error)

	require.Len(t, results[0].Props, 1)
	prop := results[0].Props[0]
	assert.Equal(t, "put-9.1", prop.Sense)
	assert.Equal(t, "put", prop.Lemma)

	require.Len(t, prop.Spans, 5)
	assert.Equal(t, SpanModel{Label: "Destination", Text: "on the table", Start: 4, End: 6, Aligned: true}, prop.Spans[3])
	assert.True(t, prop.Spans[1].IsPredicate)
	assert.Equal(t, "AM-TMP", prop.Spans[4].Label)

	require.NotNil(t, prop.MainEvent)
	assert.Equal(t, -1, prop.MainEvent.EventIndex)
	require.Len(t, prop.Events, 1)
	assert.Equal(t, "e1", prop.Events[0].Name)

	cause := prop.MainEvent.Predicates[1]
	assert.False(t, cause.Polarity)
	assert.Equal(t, 0, cause.Args[0].EventIndex)
	assert.Equal(t, -1, cause.Args[1].EventIndex)
	assert.Equal(t, "the book", prop.MainEvent.Predicates[0].Args[1].Binding)
}
