package flashcards

import (
	"math/rand"
	"strings"
	"time"

	"github.com/zombar/studyassist/internal/models"
)

// titleScanWindow is how far into the text the title derivation looks
const titleScanWindow = 300

// Analyzer is the linguistic analysis capability the generator depends on
type Analyzer interface {
	Analyze(text string) *models.Document
}

// Generator builds flashcards by pairing each entity term with the sentence
// that contains it
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

// NewWithRand creates a Generator with an explicit random source factory
func NewWithRand(analyzer Analyzer, newRand func() *rand.Rand) *Generator {
	return &Generator{
		analyzer: analyzer,
		newRand:  newRand,
	}
}

// Generate produces up to req.Count flashcards. Every entity becomes one card
// at most: a per-call used-term set keyed on the lowercased surface text
// prevents duplicate cards for the same term. Cards are shuffled before the
// count cap so the selection is not biased toward the start of the text.
func (g *Generator) Generate(req models.FlashcardRequest) *models.FlashcardSet {
	count := req.Count
	if count <= 0 {
		count = 10
	}

	doc := g.analyzer.Analyze(req.Text)
	cards := cardsFromEntities(doc)

	rng := g.newRand()
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})

	if len(cards) > count {
		cards = cards[:count]
	}

	return &models.FlashcardSet{
		Title: deriveTitle(g.analyzer, req.Text),
		Cards: cards,
	}
}

// cardsFromEntities maps each first-seen entity term to its containing
// sentence: term on the front, sentence on the back
func cardsFromEntities(doc *models.Document) []models.Flashcard {
	cards := []models.Flashcard{}
	usedTerms := make(map[string]bool)

	for _, sentence := range doc.Sentences {
		for _, e := range sentence.Entities {
			term := strings.TrimSpace(e.Text)
			key := strings.ToLower(term)
			if term == "" || usedTerms[key] {
				continue
			}
			usedTerms[key] = true
			cards = append(cards, models.Flashcard{
				Front: term,
				Back:  sentence.Text,
			})
		}
	}

	return cards
}

// deriveTitle uses the first headline entity in the opening of the text
func deriveTitle(analyzer Analyzer, text string) string {
	window := text
	if len(window) > titleScanWindow {
		window = window[:titleScanWindow]
	}

	doc := analyzer.Analyze(window)
	for _, sentence := range doc.Sentences {
		for _, e := range sentence.Entities {
			switch e.Category {
			case models.CategoryOrg, models.CategoryPerson, models.CategoryGPE:
				return "Flashcards: " + e.Text
			}
		}
	}

	return "Generated Flashcards"
}
