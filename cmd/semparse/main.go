package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/semparse/config"
	"github.com/revelaction/semparse/render"
)

// UI contains the output streams for the application.
// Used for injecting buffers during testing.
type UI struct {
	Out io.Writer
	Err io.Writer
}

func main() {
	ui := UI{Out: os.Stdout, Err: os.Stderr}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newApp(ui).RunContext(ctx, os.Args); err != nil {
		fprintErr(ui.Err, err)
		stop()
		os.Exit(1)
	}
}

func fprintErr(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "semparse: %v\n", err)
}

func newApp(ui UI) *cli.App {
	return &cli.App{
		Name:      "semparse",
		Usage:     "semantic parsing of annotated sentences into VerbNet frames",
		Writer:    ui.Out,
		ErrWriter: ui.Err,
		// errors are printed once, by main
		ExitErrHandler: func(*cli.Context, error) {},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "YAML config file",
				Value: config.DefaultPath(),
			},
			&cli.StringFlag{
				Name:    "lexicon",
				Aliases: []string{"l"},
				Usage:   "directory of YAML senses or SQLite lexicon file",
			},
			&cli.StringFlag{
				Name:    "corpus",
				Aliases: []string{"c"},
				Usage:   "directory of annotated JSON docs or SQLite corpus file",
			},
			&cli.StringFlag{
				Name:    "mappings",
				Aliases: []string{"m"},
				Usage:   "YAML file of PropBank to VerbNet role mappings",
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "output format: text or json",
			},
			&cli.StringFlag{
				Name:  "view",
				Usage: fmt.Sprintf("text view: %v", render.SupportedFormats()),
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "disable colored output",
			},
			&cli.IntFlag{
				Name:  "workers",
				Usage: "sentences parsed concurrently",
			},
			&cli.BoolFlag{
				Name:  "no-progress",
				Usage: "do not draw progress bars",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "debug logging",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "parse",
				Usage:     "parse sentences, or open the interactive prompt when none are given",
				ArgsUsage: "[sentence...]",
				Action: func(c *cli.Context) error {
					return withEnv(c, ui, func(e *env) error {
						return parseCommand(c.Context, e, c.Args().Slice(), ui)
					})
				},
			},
			{
				Name:      "doc",
				Usage:     "parse every sentence of a corpus document, or list documents",
				ArgsUsage: "[<id|name>]",
				Action: func(c *cli.Context) error {
					return withEnv(c, ui, func(e *env) error {
						return docCommand(c.Context, e, c.Args().First(), ui)
					})
				},
			},
			{
				Name:      "senses",
				Usage:     "list lexicon senses, all or those of a lemma",
				ArgsUsage: "[lemma]",
				Action: func(c *cli.Context) error {
					return withEnv(c, ui, func(e *env) error {
						return sensesCommand(e, c.Args().First(), ui)
					})
				},
			},
			{
				Name:      "facts",
				Usage:     "parse a document into the fact base and print its facts",
				ArgsUsage: "<id|name>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "predicate",
						Usage: "print only the facts of this predicate",
					},
					&cli.StringFlag{
						Name:  "query",
						Usage: "Mangle rules evaluated over the facts",
					},
				},
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return fmt.Errorf("facts needs one document id or name")
					}
					opts := FactsOptions{Predicate: c.String("predicate"), Program: c.String("query")}
					return withEnv(c, ui, func(e *env) error {
						return factsCommand(c.Context, e, opts, c.Args().First(), ui)
					})
				},
			},
			{
				Name:      "stat",
				Usage:     "print parse statistics of a document",
				ArgsUsage: "<id|name>",
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return fmt.Errorf("stat needs one document id or name")
					}
					return withEnv(c, ui, func(e *env) error {
						return statCommand(c.Context, e, c.Args().First(), ui)
					})
				},
			},
			{
				Name:  "import-lexicon",
				Usage: "copy a YAML lexicon directory into a SQLite file",
				Flags: importFlags(),
				Action: func(c *cli.Context) error {
					return importLexiconCommand(importOptions(c), ui)
				},
			},
			{
				Name:  "import-docs",
				Usage: "copy a JSON corpus directory into a SQLite file",
				Flags: importFlags(),
				Action: func(c *cli.Context) error {
					return importDocCommand(importOptions(c), ui)
				},
			},
		},
	}
}

func importOptions(c *cli.Context) ImportOptions {
	return ImportOptions{
		From:     c.String("from"),
		To:       c.String("to"),
		Progress: !c.Bool("no-progress"),
	}
}

func importFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "from", Usage: "source directory", Required: true},
		&cli.StringFlag{Name: "to", Usage: "SQLite file", Required: true},
	}
}
