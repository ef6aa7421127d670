package quizgen

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/zombar/studyassist/internal/models"
)

// titleScanWindow is how far into the text the title derivation looks
const titleScanWindow = 300

// Analyzer is the linguistic analysis capability the generator depends on
type Analyzer interface {
	Analyze(text string) *models.Document
}

// Generator builds quizzes from raw text. All randomness flows through the
// rand source factory so a seeded factory makes output fully deterministic.
type Generator struct {
	analyzer Analyzer
	newRand  func() *rand.Rand
}

// New creates a Generator with a time-seeded random source per call
func New(analyzer Analyzer) *Generator {
	return &Generator{
		analyzer: analyzer,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
	}
}

// NewWithRand creates a Generator with an explicit random source factory,
// used for deterministic output in tests
func NewWithRand(analyzer Analyzer, newRand func() *rand.Rand) *Generator {
	return &Generator{
		analyzer: analyzer,
		newRand:  newRand,
	}
}

// Generate runs the full pipeline: analyze, select the candidate pool,
// extract concepts, build the requested question types, merge, and finalize.
// Sparse input degrades to fewer or zero questions; it never fails.
//
// Each requested builder is asked for num_questions/2 items, even when only
// one type is requested. That halving is intentional pass-through of observed
// behavior; see DESIGN.md before changing it.
func (g *Generator) Generate(req models.QuizRequest) *models.Quiz {
	numQuestions := req.NumQuestions
	if numQuestions <= 0 {
		numQuestions = 10
	}
	questionTypes := req.QuestionTypes
	if len(questionTypes) == 0 {
		questionTypes = []string{models.TypeMultipleChoice, models.TypeTrueFalse}
	}

	rng := g.newRand()

	doc := g.analyzer.Analyze(req.Text)
	pool := selectSentences(doc)
	entities := doc.Entities()
	concepts := extractConcepts(doc, 10)

	perBuilder := numQuestions / 2

	questions := []models.Question{}
	if containsType(questionTypes, models.TypeMultipleChoice) {
		questions = append(questions, buildMultipleChoice(pool, entities, perBuilder, rng)...)
	}
	if containsType(questionTypes, models.TypeTrueFalse) {
		questions = append(questions, buildTrueFalse(pool, entities, perBuilder, rng)...)
	}

	// Interleave question types so the quiz order carries no signal
	rng.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})
	if len(questions) > numQuestions {
		questions = questions[:numQuestions]
	}

	tags := concepts
	if len(tags) > 5 {
		tags = tags[:5]
	}

	return &models.Quiz{
		Title:       g.deriveTitle(req.Text),
		Description: fmt.Sprintf("Quiz with %d questions.", len(questions)),
		Questions:   questions,
		Tags:        tags,
	}
}

// deriveTitle scans the opening of the text for a headline entity, falls back
// to the first reasonably sized noun chunk, and finally to a generic title
func (g *Generator) deriveTitle(text string) string {
	doc := g.analyzer.Analyze(truncateAtRune(text, titleScanWindow))

	for _, sentence := range doc.Sentences {
		for _, e := range sentence.Entities {
			switch e.Category {
			case models.CategoryOrg, models.CategoryPerson, models.CategoryGPE:
				return "Quiz: " + e.Text
			}
		}
	}

	for _, sentence := range doc.Sentences {
		for _, chunk := range sentence.NounChunks {
			if len(chunk) > 5 && len(chunk) < 30 {
				return "Quiz: " + titleCase(chunk)
			}
		}
	}

	return "Generated Quiz"
}

func containsType(types []string, t string) bool {
	for _, v := range types {
		if v == t {
			return true
		}
	}
	return false
}

// truncateAtRune cuts text at the byte limit without splitting a rune
func truncateAtRune(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	for limit > 0 && !utf8.RuneStart(text[limit]) {
		limit--
	}
	return text[:limit]
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
