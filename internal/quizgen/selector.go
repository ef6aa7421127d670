package quizgen

import "github.com/zombar/studyassist/internal/models"

// Sentence length band for question candidates: long enough to carry a fact,
// short enough to read as a single quiz item.
const (
	minSentenceLen = 8
	maxSentenceLen = 180
)

// selectSentences returns the candidate pool: sentences whose trimmed text
// length lies strictly between the band limits, in document order. An empty
// pool is valid and means no questions can be built from this document.
func selectSentences(doc *models.Document) []models.Sentence {
	var pool []models.Sentence
	for _, s := range doc.Sentences {
		if len(s.Text) > minSentenceLen && len(s.Text) < maxSentenceLen {
			pool = append(pool, s)
		}
	}
	return pool
}
