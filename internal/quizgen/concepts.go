package quizgen

import (
	"sort"

	"github.com/zombar/studyassist/internal/models"
)

// extractConcepts ranks noun and proper-noun surface forms by frequency,
// excluding stop words. Ties are broken by first occurrence so the ordering
// is stable across runs.
func extractConcepts(doc *models.Document, topN int) []string {
	freq := make(map[string]int)
	firstSeen := make(map[string]int)

	position := 0
	for _, sentence := range doc.Sentences {
		for _, tok := range sentence.Tokens {
			position++
			if tok.Stop || (tok.Tag != "NOUN" && tok.Tag != "PROPN") {
				continue
			}
			freq[tok.Text]++
			if _, ok := firstSeen[tok.Text]; !ok {
				firstSeen[tok.Text] = position
			}
		}
	}

	concepts := make([]string, 0, len(freq))
	for word := range freq {
		concepts = append(concepts, word)
	}

	sort.SliceStable(concepts, func(i, j int) bool {
		if freq[concepts[i]] != freq[concepts[j]] {
			return freq[concepts[i]] > freq[concepts[j]]
		}
		return firstSeen[concepts[i]] < firstSeen[concepts[j]]
	})

	if len(concepts) > topN {
		concepts = concepts[:topN]
	}
	return concepts
}
