package annotated

import (
	"regexp"
	"strings"
)

// sentenceEnd matches terminal punctuation followed by whitespace or the
// end of the text.
var sentenceEnd = regexp.MustCompile(`[.!?]+(?:\s+|$)`)

// Segment splits text into sentences after '.', '!' or '?' runs followed
// by whitespace. Trailing text without terminal punctuation is a sentence
// too.
func Segment(text string) []string {
	var sentences []string
	start := 0
	for _, loc := range sentenceEnd.FindAllStringIndex(text, -1) {
		if s := strings.TrimSpace(text[start:loc[1]]); s != "" {
			sentences = append(sentences, s)
		}
		start = loc[1]
	}
	if s := strings.TrimSpace(text[start:]); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}
