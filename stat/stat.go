package stat

import (
	"github.com/revelaction/semparse/parser"
	"github.com/revelaction/semparse/verbnet"
)

type Handler struct {
	stats Stats
}

type Stats struct {
	NumSentences int
	NumFailed    int
	NumTokens    int

	TokensPerSentenceMean int
	TokensPerSentenceDis  map[int]int

	NumProps          int
	NumAligned        int
	NumSkipped        int
	NumUnalignedSpans int

	RoleDis  map[verbnet.RoleType]int
	SenseDis map[string]int
}

func (h *Handler) Get() Stats {
	return h.stats
}

func NewHandler() *Handler {
	stats := Stats{
		TokensPerSentenceDis: map[int]int{},
		RoleDis:              map[verbnet.RoleType]int{},
		SenseDis:             map[string]int{},
	}
	return &Handler{
		stats: stats,
	}
}

// Aggregate adds the results of a parsed document. It can be called once
// per document.
func (h *Handler) Aggregate(results []parser.SentenceResult) {
	h.stats.NumSentences += len(results)

	for _, r := range results {
		if r.Err != nil {
			h.stats.NumFailed++
			continue
		}

		n := len(r.Parse.Tokens)
		h.stats.NumTokens += n
		h.stats.TokensPerSentenceDis[n]++
		h.stats.NumSkipped += len(r.Parse.Skipped)

		for _, prop := range r.Parse.Props {
			h.stats.NumProps++
			h.stats.SenseDis[prop.Sense.Id]++
			if !prop.Aligned {
				h.stats.NumUnalignedSpans += len(prop.PropBank)
				continue
			}

			h.stats.NumAligned++
			for _, b := range prop.Roles {
				if !b.Aligned {
					h.stats.NumUnalignedSpans++
					continue
				}
				h.stats.RoleDis[b.Role]++
			}
		}
	}

	if parsed := h.stats.NumSentences - h.stats.NumFailed; parsed > 0 {
		h.stats.TokensPerSentenceMean = h.stats.NumTokens / parsed
	}
}
