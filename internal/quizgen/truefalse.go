package quizgen

import (
	"math/rand"
	"strings"

	"github.com/zombar/studyassist/internal/models"
)

// falseReplacements are the implausible values substituted for an entity when
// falsifying a sentence
var falseReplacements = []string{"XYZ", "1999", "Unknown Corp"}

// buildTrueFalse samples up to 2x the target from the candidate pool without
// replacement and flips a fair coin per sentence: heads keeps the sentence
// verbatim as a true statement, tails falsifies it by substituting the first
// document entity that occurs in the sentence. Sentences that cannot be
// falsified are skipped, not retried. A falsified question's explanation
// carries the original sentence so the answer key stays verifiable.
func buildTrueFalse(pool []models.Sentence, entities []models.Entity, target int, rng *rand.Rand) []models.Question {
	questions := []models.Question{}
	if target <= 0 || len(pool) == 0 {
		return questions
	}

	sampleSize := target * 2
	if sampleSize > len(pool) {
		sampleSize = len(pool)
	}

	perm := rng.Perm(len(pool))
	for _, idx := range perm[:sampleSize] {
		sentence := pool[idx].Text

		if rng.Float64() > 0.5 {
			questions = append(questions, models.Question{
				Question:      "True or False: " + sentence,
				Type:          models.TypeTrueFalse,
				Options:       []string{"True", "False"},
				CorrectAnswer: "True",
				Explanation:   "Directly from the source.",
			})
		} else if falsified, ok := falsify(sentence, entities, rng); ok {
			questions = append(questions, models.Question{
				Question:      "True or False: " + falsified,
				Type:          models.TypeTrueFalse,
				Options:       []string{"True", "False"},
				CorrectAnswer: "False",
				Explanation:   "Original: " + sentence,
			})
		}

		if len(questions) >= target {
			break
		}
	}

	return questions
}

// falsify substitutes the first entity whose surface text occurs in the
// sentence with a random implausible value. Returns false when no entity
// occurs in the sentence at all.
func falsify(sentence string, entities []models.Entity, rng *rand.Rand) (string, bool) {
	for _, e := range entities {
		if strings.Contains(sentence, e.Text) {
			fake := falseReplacements[rng.Intn(len(falseReplacements))]
			return strings.ReplaceAll(sentence, e.Text, fake), true
		}
	}
	return "", false
}
