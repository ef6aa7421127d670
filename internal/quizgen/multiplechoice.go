package quizgen

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/zombar/studyassist/internal/models"
)

// blankMarker replaces the answer entity in a fill-in-the-blank stem
const blankMarker = "_____"

// buildMultipleChoice walks the candidate pool in order and turns each
// sentence with a qualifying entity into a fill-in-the-blank question. The
// first PERSON/ORG/GPE/DATE entity in the sentence becomes the answer; its
// first textual occurrence is blanked out. A per-call used-term set prevents
// two questions from testing the identical entity term. Sentences without a
// qualifying entity are skipped and do not count against the target.
func buildMultipleChoice(pool []models.Sentence, entities []models.Entity, target int, rng *rand.Rand) []models.Question {
	questions := []models.Question{}
	if target <= 0 {
		return questions
	}

	usedTerms := make(map[string]bool)

	for _, sentence := range pool {
		var answer *models.Entity
		for i := range sentence.Entities {
			switch sentence.Entities[i].Category {
			case models.CategoryPerson, models.CategoryOrg, models.CategoryGPE, models.CategoryDate:
				answer = &sentence.Entities[i]
			}
			if answer != nil {
				break
			}
		}
		if answer == nil {
			continue
		}

		term := strings.ToLower(answer.Text)
		if usedTerms[term] {
			continue
		}
		usedTerms[term] = true

		stem := strings.Replace(sentence.Text, answer.Text, blankMarker, 1)

		options := append([]string{answer.Text}, synthesizeDistractors(*answer, entities, rng)...)
		rng.Shuffle(len(options), func(i, j int) {
			options[i], options[j] = options[j], options[i]
		})

		questions = append(questions, models.Question{
			Question:      "Fill in the blank: " + stem,
			Type:          models.TypeMultipleChoice,
			Options:       options,
			CorrectAnswer: answer.Text,
			Explanation:   fmt.Sprintf("The correct answer is %s.", answer.Text),
		})

		if len(questions) >= target {
			break
		}
	}

	return questions
}
