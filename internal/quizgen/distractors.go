package quizgen

import (
	"math/rand"
	"strings"

	"github.com/zombar/studyassist/internal/models"
)

// fallbackAnswers pads the distractor set when the document does not contain
// enough same-category entities. The pool covers the common category shapes
// (person name, place name, year) so padded options stay superficially
// plausible for any question.
var fallbackAnswers = []string{"John Smith", "London", "2020", "Jane Doe", "Paris", "1999"}

// synthesizeDistractors produces exactly three plausible wrong answers for
// the given correct entity. Real distractors come from other same-category
// entities in the document, deduplicated case-insensitively; any shortfall is
// padded from fallbackAnswers, never duplicating an existing option.
func synthesizeDistractors(correct models.Entity, entities []models.Entity, rng *rand.Rand) []string {
	seen := map[string]bool{strings.ToLower(correct.Text): true}

	var distractors []string
	for _, e := range entities {
		if e.Category != correct.Category {
			continue
		}
		key := strings.ToLower(e.Text)
		if seen[key] {
			continue
		}
		seen[key] = true
		distractors = append(distractors, e.Text)
		if len(distractors) == 3 {
			return distractors
		}
	}

	pool := append([]string(nil), fallbackAnswers...)
	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	for _, v := range pool {
		if len(distractors) == 3 {
			break
		}
		key := strings.ToLower(v)
		if seen[key] {
			continue
		}
		seen[key] = true
		distractors = append(distractors, v)
	}

	return distractors
}
