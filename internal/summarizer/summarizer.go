package summarizer

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/zombar/studyassist/internal/models"
)

// maxChunkSize is the largest chunk (in characters) handed to the engine in
// one call; splits happen on word boundaries only
const maxChunkSize = 1024

// numKeywords is how many keywords accompany every summary
const numKeywords = 5

// Engine is the abstractive summarization capability. A failure here is
// fatal for the request; the summarizer does not retry or degrade.
type Engine interface {
	Summarize(ctx context.Context, text string, maxWords, minWords int) (string, error)
}

// KeywordExtractor supplies frequency-ranked keywords for the summary payload
type KeywordExtractor interface {
	ExtractKeywords(text string, limit int) []string
}

// lengthPreset bounds the summary size in words
type lengthPreset struct {
	maxWords int
	minWords int
}

var lengthPresets = map[string]lengthPreset{
	"short":  {maxWords: 100, minWords: 30},
	"medium": {maxWords: 200, minWords: 50},
	"long":   {maxWords: 400, minWords: 100},
}

// Summarizer orchestrates chunked abstractive summarization
type Summarizer struct {
	engine   Engine
	keywords KeywordExtractor
}

// New creates a new Summarizer
func New(engine Engine, keywords KeywordExtractor) *Summarizer {
	return &Summarizer{
		engine:   engine,
		keywords: keywords,
	}
}

// Summarize splits the text into word-boundary chunks, summarizes each
// independently, concatenates the parts, and re-summarizes the concatenation
// once if its word count exceeds 1.5x the length preset's maximum. Unknown
// length names fall back to the medium preset.
func (s *Summarizer) Summarize(ctx context.Context, req models.SummaryRequest) (*models.Summary, error) {
	preset, ok := lengthPresets[req.Length]
	if !ok {
		preset = lengthPresets["medium"]
	}

	text := preprocess(req.Text)

	parts := []string{}
	for _, chunk := range splitText(text, maxChunkSize) {
		part, err := s.engine.Summarize(ctx, chunk, preset.maxWords, preset.minWords)
		if err != nil {
			return nil, fmt.Errorf("summarization engine: %w", err)
		}
		parts = append(parts, part)
	}

	summary := strings.Join(parts, " ")

	if float64(wordCount(summary)) > 1.5*float64(preset.maxWords) {
		resummarized, err := s.engine.Summarize(ctx, summary, preset.maxWords, preset.minWords)
		if err != nil {
			return nil, fmt.Errorf("summarization engine: %w", err)
		}
		summary = resummarized
	}

	return &models.Summary{
		Summary:        summary,
		Keywords:       s.keywords.ExtractKeywords(req.Text, numKeywords),
		OriginalLength: wordCount(req.Text),
		SummaryLength:  wordCount(summary),
	}, nil
}

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	specialsRe   = regexp.MustCompile(`[^\w\s.,!?-]`)
)

// preprocess collapses whitespace and strips characters that are neither
// word characters nor basic punctuation
func preprocess(text string) string {
	text = whitespaceRe.ReplaceAllString(text, " ")
	text = specialsRe.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// splitText splits text into chunks of at most maxSize characters, breaking
// only between words
func splitText(text string, maxSize int) []string {
	words := strings.Fields(text)

	var chunks []string
	var current []string
	size := 0

	for _, word := range words {
		size += len(word) + 1
		if size > maxSize && len(current) > 0 {
			chunks = append(chunks, strings.Join(current, " "))
			current = []string{word}
			size = len(word)
		} else {
			current = append(current, word)
		}
	}
	if len(current) > 0 {
		chunks = append(chunks, strings.Join(current, " "))
	}

	return chunks
}

func wordCount(text string) int {
	return len(strings.Fields(text))
}
