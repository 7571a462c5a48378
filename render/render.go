package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/revelaction/semparse/kb"
	"github.com/revelaction/semparse/parser"
	"github.com/revelaction/semparse/semantics"
	"github.com/revelaction/semparse/sentence"
	"github.com/revelaction/semparse/stat"
	"github.com/revelaction/semparse/verbnet"
)

const (
	Defaultformat = "all"
)

var (
	Red     = "\033[1;31m"
	Green   = "\033[1;32m"
	Yellow  = "\033[0;33m"
	Purple  = "\033[1;34m"
	Magenta = "\033[1;35m"
	Teal    = "\033[1;36m"
	Gray    = "\033[0;37m"
	Off     = "\033[0m"
	//Yellow256  = "\033[1;38;5;202m"
	Yellow256 = "\033[1;38;5;130m"
	Grey256   = "\033[1;38;5;145m"
	Green256  = "\033[1;38;5;70m"
)

func SupportedFormats() []string {
	return []string{"all", "roles", "semantics"}
}

type Renderer struct {
	W io.Writer

	HasColor bool

	// HasPrefix prints the sentence number before each sentence.
	HasPrefix bool

	// Format determines what is printed of each proposition
	//
	// all: the labeled sentence and the semantic predicates
	// roles: only the labeled sentence
	// semantics: only the semantic predicates
	Format string
}

func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{W: w, Format: Defaultformat}
}

// Document renders the results of a parsed document in sentence order.
func (r *Renderer) Document(results []parser.SentenceResult) {
	for _, res := range results {
		prefix := ""
		if r.HasPrefix {
			prefix = fmt.Sprintf("[%3d] ", res.Index)
		}

		if res.Err != nil {
			fmt.Fprintf(r.W, "%s%s\n", prefix, r.color(Red, res.Err.Error()))
			continue
		}
		r.Parse(res.Parse, prefix)
	}
}

// Parse renders every proposition of p, then the skipped occurrences.
func (r *Renderer) Parse(p parser.Parse, prefix string) {
	fmt.Fprintf(r.W, "%s%s\n", prefix, p.Text)

	if len(p.Props) == 0 && len(p.Skipped) == 0 {
		fmt.Fprintf(r.W, "  %s\n", r.color(Gray, "no propositions"))
		return
	}

	for _, prop := range p.Props {
		r.proposition(prop, p.Tree)
	}

	for _, s := range p.Skipped {
		line := fmt.Sprintf("skipped %s[%d] %s: %s", s.Text, s.Index, s.Sense, s.Reason)
		fmt.Fprintf(r.W, "  %s\n", r.color(Gray, line))
	}
}

func (r *Renderer) proposition(prop parser.Proposition, tree *sentence.Tree) {
	header := prop.Sense.Id
	if prop.Frame != nil {
		header += " " + r.color(Grey256, prop.Frame.Description)
	}
	fmt.Fprintf(r.W, "  %s\n", r.color(Yellow256, header))

	if r.Format != "semantics" && tree != nil {
		fmt.Fprintf(r.W, "    %s\n", r.labeled(prop, tree))
	}

	if r.Format == "roles" {
		return
	}

	for _, p := range prop.Predicates {
		fmt.Fprintf(r.W, "    %s\n", r.predicate(p))
	}
}

type labeledSpan struct {
	start, end int
	label      string
	color      string
}

// labeled returns the sentence with the spans of prop in brackets:
// [Agent John] [VERB put] [Theme the book] ...
func (r *Renderer) labeled(prop parser.Proposition, tree *sentence.Tree) string {
	var spans []labeledSpan
	if prop.Aligned {
		for _, b := range prop.Roles {
			switch {
			case b.Role == verbnet.Verb:
				spans = append(spans, labeledSpan{b.Span.Start, b.Span.End, b.Role.String(), Green256})
			case b.Aligned:
				spans = append(spans, labeledSpan{b.Span.Start, b.Span.End, b.Role.String(), Teal})
			default:
				spans = append(spans, labeledSpan{b.Span.Start, b.Span.End, b.Span.Label.String(), Gray})
			}
		}
	} else {
		for _, s := range prop.PropBank {
			c := Gray
			if s.Label.IsVerb() {
				c = Green256
			}
			spans = append(spans, labeledSpan{s.Start, s.End, s.Label.String(), c})
		}
	}

	sort.SliceStable(spans, func(i, j int) bool { return spans[i].start < spans[j].start })

	words := tree.Words()
	var out []string
	i := 0
	for _, s := range spans {
		if s.start < i || s.end >= len(words) {
			continue
		}
		out = append(out, words[i:s.start]...)
		text := strings.Join(words[s.start:s.end+1], " ")
		out = append(out, "["+r.color(s.color, s.label)+" "+text+"]")
		i = s.end + 1
	}
	out = append(out, words[i:]...)

	return strings.Join(out, " ")
}

func (r *Renderer) predicate(p semantics.Predicate) string {
	args := make([]string, len(p.Args))
	for i, a := range p.Args {
		switch {
		case a.Kind == verbnet.ArgEvent:
			args[i] = r.color(Purple, a.Value)
		case a.Bound():
			args[i] = a.Value + "=" + r.color(Teal, a.Variable.String())
		default:
			args[i] = a.Value
		}
	}

	name := string(p.Type)
	if p.Negated {
		name = "!" + name
	}
	return r.color(Magenta, name) + "(" + strings.Join(args, ", ") + ")"
}

// Senses renders one lexicon sense per line.
func (r *Renderer) Senses(senses []verbnet.Sense) {
	for _, s := range senses {
		fmt.Fprintf(r.W, "%-20s %s %s\n", r.color(Yellow256, s.Id), strings.Join(s.Members, " "), r.color(Gray, fmt.Sprintf("(%d frames)", len(s.Frames))))
	}
}

func (r *Renderer) Facts(facts []kb.Fact) {
	for _, f := range facts {
		fmt.Fprintln(r.W, f.String())
	}
}

func (r *Renderer) Stats(s stat.Stats) {
	fmt.Fprintf(r.W, "sentences: %d (failed %d)\n", s.NumSentences, s.NumFailed)
	fmt.Fprintf(r.W, "tokens: %d (mean %d per sentence)\n", s.NumTokens, s.TokensPerSentenceMean)
	fmt.Fprintf(r.W, "propositions: %d (aligned %d, skipped %d)\n", s.NumProps, s.NumAligned, s.NumSkipped)
	fmt.Fprintf(r.W, "unaligned spans: %d\n", s.NumUnalignedSpans)

	roles := make([]string, 0, len(s.RoleDis))
	for role := range s.RoleDis {
		roles = append(roles, string(role))
	}
	sort.Strings(roles)
	for _, role := range roles {
		fmt.Fprintf(r.W, "  %-20s %5d\n", role, s.RoleDis[verbnet.RoleType(role)])
	}
}

func (r *Renderer) color(c, s string) string {
	if !r.HasColor {
		return s
	}
	return c + s + Off
}

// NextFormat sets the Renderer Format option to a different one, following
// the SupportedFormats() order.
func (r *Renderer) NextFormat() {

	supported := SupportedFormats()
	for i, format := range supported {
		if format == r.Format {
			switch i {
			case len(supported) - 1:
				r.Format = supported[0]
			default:
				r.Format = supported[i+1]
			}

			break
		}
	}
}

func (r *Renderer) NextPrefix() {

	// toggle
	r.HasPrefix = !r.HasPrefix
}
