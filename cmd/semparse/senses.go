package main

import (
	"github.com/revelaction/semparse/verbnet"
)

// sensesCommand lists the lexicon, or the senses having lemma as member.
func sensesCommand(e *env, lemma string, ui UI) error {
	repo, err := e.senses()
	if err != nil {
		return err
	}

	all, err := repo.List()
	if err != nil {
		return err
	}

	senses := all
	if lemma != "" {
		senses = []verbnet.Sense{}
		for _, s := range all {
			if s.HasMember(lemma) {
				senses = append(senses, s)
			}
		}
	}

	e.renderer(ui).Senses(senses)
	return nil
}
