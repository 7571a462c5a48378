// Package query runs the interactive parse loop: every line is parsed as a
// document and its propositions rendered.
package query

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/c-bata/go-prompt"
	"go.uber.org/zap"

	"github.com/revelaction/semparse/parser"
	"github.com/revelaction/semparse/render"
)

const (
	completionThreshold = 2

	quitCommand = "quit"
)

// DocumentParser is the part of parser.Parser the loop needs.
type DocumentParser interface {
	ParseDocument(ctx context.Context, doc string) ([]parser.SentenceResult, error)
}

type Handler struct {
	Parser   DocumentParser
	Renderer *render.Renderer

	// Sentences are offered as completions.
	Sentences []string

	Logger *zap.Logger
	Err    io.Writer
}

func NewHandler(p DocumentParser, r *render.Renderer, sentences []string) *Handler {
	return &Handler{
		Parser:    p,
		Renderer:  r,
		Sentences: sentences,
		Logger:    zap.NewNop(),
		Err:       io.Discard,
	}
}

func (h *Handler) Run(ctx context.Context) error {

	fmt.Fprintln(h.Renderer.W, "🔑 Ctrl+X: Toggle prefix, Ctrl+F: next Format, 🔧 quit")

	// initialize prompt history
	history := []string{}

	for {

		in := prompt.Input(">> ", h.completer,
			prompt.OptionTitle("semparse"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionHistory(history),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlF,
				Fn: func(buf *prompt.Buffer) {
					h.Renderer.NextFormat()
					fmt.Fprintln(h.Renderer.W, "Format set to: "+h.Renderer.Format)
				}}),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlX,
				Fn: func(buf *prompt.Buffer) {
					h.Renderer.NextPrefix()
					fmt.Fprintln(h.Renderer.W, "Prefix set to "+fmt.Sprintf("%t", h.Renderer.HasPrefix))
				}}),
		)

		quit, err := h.Eval(ctx, in)
		if quit {
			return nil
		}
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			continue
		}

		history = append(history, in)
	}
}

// Eval parses and renders one input line. Errors are reported and
// returned, but never stop the loop.
func (h *Handler) Eval(ctx context.Context, in string) (quit bool, err error) {
	line := strings.TrimSpace(in)
	if strings.EqualFold(line, quitCommand) {
		return true, nil
	}
	if line == "" {
		return false, nil
	}

	results, err := h.Parser.ParseDocument(ctx, line)
	if err != nil {
		h.Logger.Warn("parse failed", zap.String("input", line), zap.Error(err))
		fmt.Fprintf(h.Err, "error: %v\n", err)
		return false, err
	}

	h.Renderer.Document(results)
	return false, nil
}

func (h *Handler) completer(in prompt.Document) []prompt.Suggest {
	s := []prompt.Suggest{}
	befCursor := in.TextBeforeCursor()

	if len(befCursor) < completionThreshold {
		return s
	}

	if strings.HasPrefix(quitCommand, befCursor) {
		s = append(s, prompt.Suggest{Text: quitCommand, Description: "exit"})
	}

	for _, sentence := range h.Sentences {
		if strings.HasPrefix(strings.ToLower(sentence), strings.ToLower(befCursor)) {
			s = append(s, prompt.Suggest{Text: sentence, Description: "corpus"})
		}
	}

	return s
}
