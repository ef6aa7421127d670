package nlp

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/zombar/studyassist/internal/models"
)

// Analyzer performs rule-based linguistic analysis: sentence segmentation,
// entity extraction, coarse part-of-speech tagging, and noun chunking.
// Its lexicons are built once and read-only afterwards, so a single Analyzer
// is safe for concurrent use across requests.
type Analyzer struct {
	stopWords  map[string]bool
	places     map[string]bool
	orgMarkers map[string]bool
}

// New creates a new Analyzer
func New() *Analyzer {
	return &Analyzer{
		stopWords:  getStopWords(),
		places:     getPlaceNames(),
		orgMarkers: getOrgMarkers(),
	}
}

var (
	capitalizedSpanRe = regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*\b`)
	monthDateRe       = regexp.MustCompile(`\b(?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2},?\s+\d{4}\b`)
	numericDateRe     = regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b`)
	yearRe            = regexp.MustCompile(`\b(?:1[0-9]{3}|2[0-9]{3})\b`)
	wordRe            = regexp.MustCompile(`[A-Za-z][A-Za-z']*|\d+`)
)

// Analyze segments text into sentences and annotates each with entities,
// tagged tokens, and noun chunks. Rule-based analysis cannot fail; empty or
// degenerate input yields a document with no sentences.
func (a *Analyzer) Analyze(text string) *models.Document {
	doc := &models.Document{}

	for _, span := range segmentSentences(text) {
		raw := text[span.start:span.end]
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			continue
		}

		// Adjust offsets to the trimmed sentence
		start := span.start + strings.Index(raw, trimmed[:1])
		end := start + len(trimmed)

		tokens := a.tagTokens(trimmed)
		sentence := models.Sentence{
			Text:       trimmed,
			Start:      start,
			End:        end,
			Entities:   a.extractEntities(trimmed),
			Tokens:     tokens,
			NounChunks: nounChunks(tokens),
		}
		doc.Sentences = append(doc.Sentences, sentence)
	}

	return doc
}

// ExtractKeywords returns the most frequent non-stop-word tokens longer than
// three characters, ties broken by first occurrence
func (a *Analyzer) ExtractKeywords(text string, limit int) []string {
	freq := make(map[string]int)
	firstSeen := make(map[string]int)

	for i, word := range wordRe.FindAllString(strings.ToLower(text), -1) {
		if len(word) <= 3 || a.stopWords[word] || !isAlnum(word) {
			continue
		}
		freq[word]++
		if _, ok := firstSeen[word]; !ok {
			firstSeen[word] = i
		}
	}

	words := make([]string, 0, len(freq))
	for word := range freq {
		words = append(words, word)
	}

	sort.SliceStable(words, func(i, j int) bool {
		if freq[words[i]] != freq[words[j]] {
			return freq[words[i]] > freq[words[j]]
		}
		return firstSeen[words[i]] < firstSeen[words[j]]
	})

	if len(words) > limit {
		words = words[:limit]
	}
	return words
}

type sentenceSpan struct {
	start, end int
}

// segmentSentences splits text on terminal punctuation followed by whitespace
// or end of input. Offsets index into the original text.
func segmentSentences(text string) []sentenceSpan {
	var spans []sentenceSpan
	start := 0

	for i := 0; i < len(text); i++ {
		c := text[i]
		if c != '.' && c != '!' && c != '?' {
			continue
		}
		// Consume runs of terminal punctuation ("?!", "...")
		j := i
		for j+1 < len(text) && (text[j+1] == '.' || text[j+1] == '!' || text[j+1] == '?') {
			j++
		}
		// A period inside a number or abbreviation is not a boundary
		if j+1 < len(text) && !isSpaceByte(text[j+1]) {
			i = j
			continue
		}
		spans = append(spans, sentenceSpan{start, j + 1})
		start = j + 1
		i = j
	}

	if start < len(text) && strings.TrimSpace(text[start:]) != "" {
		spans = append(spans, sentenceSpan{start, len(text)})
	}

	return spans
}

type entityCandidate struct {
	start, end int
	text       string
	category   string
}

// extractEntities finds date expressions and capitalized spans in a sentence,
// classifies them, and resolves overlaps in favor of the longer match
func (a *Analyzer) extractEntities(sentence string) []models.Entity {
	var candidates []entityCandidate

	for _, re := range []*regexp.Regexp{monthDateRe, numericDateRe, yearRe} {
		for _, loc := range re.FindAllStringIndex(sentence, -1) {
			candidates = append(candidates, entityCandidate{
				start:    loc[0],
				end:      loc[1],
				text:     sentence[loc[0]:loc[1]],
				category: models.CategoryDate,
			})
		}
	}

	for _, loc := range capitalizedSpanRe.FindAllStringIndex(sentence, -1) {
		span := sentence[loc[0]:loc[1]]
		category, ok := a.classifySpan(span)
		if !ok {
			continue
		}
		candidates = append(candidates, entityCandidate{
			start:    loc[0],
			end:      loc[1],
			text:     span,
			category: category,
		})
	}

	// Longer candidates win overlaps: "January 5, 2020" beats "January"
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].start != candidates[j].start {
			return candidates[i].start < candidates[j].start
		}
		return candidates[i].end > candidates[j].end
	})

	var entities []models.Entity
	lastEnd := -1
	for _, c := range candidates {
		if c.start < lastEnd {
			continue
		}
		entities = append(entities, models.Entity{Text: c.text, Category: c.category})
		lastEnd = c.end
	}

	return entities
}

// classifySpan assigns a category to a capitalized span. Single stop words
// ("The", "It") are rejected outright.
func (a *Analyzer) classifySpan(span string) (string, bool) {
	words := strings.Fields(span)
	lower := strings.ToLower(span)

	if len(words) == 1 && a.stopWords[lower] {
		return "", false
	}

	for _, word := range words {
		if a.orgMarkers[strings.ToLower(word)] {
			return models.CategoryOrg, true
		}
	}

	if a.places[lower] {
		return models.CategoryGPE, true
	}

	if len(words) >= 2 {
		return models.CategoryPerson, true
	}

	return models.CategoryOther, true
}

// tagTokens assigns coarse tags: PROPN for capitalized non-stop words, NOUN
// for lowercase non-stop words longer than three characters, OTHER for the
// rest. This is a frequency-oriented heuristic, not a real tagger.
func (a *Analyzer) tagTokens(sentence string) []models.Token {
	var tokens []models.Token

	for _, word := range wordRe.FindAllString(sentence, -1) {
		lower := strings.ToLower(word)
		stop := a.stopWords[lower]

		tag := "OTHER"
		switch {
		case stop:
		case unicode.IsUpper(rune(word[0])) && len(word) > 1:
			tag = "PROPN"
		case word == lower && len(word) > 3 && !isDigits(word):
			tag = "NOUN"
		}

		tokens = append(tokens, models.Token{Text: word, Tag: tag, Stop: stop})
	}

	return tokens
}

// nounChunks joins consecutive runs of NOUN/PROPN tokens
func nounChunks(tokens []models.Token) []string {
	var chunks []string
	var run []string

	flush := func() {
		if len(run) > 0 {
			chunks = append(chunks, strings.Join(run, " "))
			run = nil
		}
	}

	for _, tok := range tokens {
		if tok.Tag == "NOUN" || tok.Tag == "PROPN" {
			run = append(run, tok.Text)
		} else {
			flush()
		}
	}
	flush()

	return chunks
}

func isSpaceByte(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(s) > 0
}

func isAlnum(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return len(s) > 0
}
