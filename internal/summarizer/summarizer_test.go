package summarizer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zombar/studyassist/internal/models"
)

type engineCall struct {
	text     string
	maxWords int
	minWords int
}

// mockEngine returns queued responses in order, repeating the last one
type mockEngine struct {
	calls     []engineCall
	responses []string
	err       error
}

func (m *mockEngine) Summarize(ctx context.Context, text string, maxWords, minWords int) (string, error) {
	m.calls = append(m.calls, engineCall{text: text, maxWords: maxWords, minWords: minWords})
	if m.err != nil {
		return "", m.err
	}
	idx := len(m.calls) - 1
	if idx >= len(m.responses) {
		idx = len(m.responses) - 1
	}
	return m.responses[idx], nil
}

type mockKeywords struct{}

func (mockKeywords) ExtractKeywords(text string, limit int) []string {
	return []string{"solar", "power"}
}

func TestSummarizeSingleChunk(t *testing.T) {
	engine := &mockEngine{responses: []string{"A short summary."}}
	s := New(engine, mockKeywords{})

	req := models.SummaryRequest{
		Text:   "Solar power converts sunlight into electricity using photovoltaic panels.",
		Length: "medium",
	}

	summary, err := s.Summarize(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "A short summary.", summary.Summary)
	require.Len(t, engine.calls, 1)
	assert.Equal(t, 200, engine.calls[0].maxWords)
	assert.Equal(t, 50, engine.calls[0].minWords)
	assert.Equal(t, 3, summary.SummaryLength)
	assert.Equal(t, len(strings.Fields(req.Text)), summary.OriginalLength)
	assert.Equal(t, []string{"solar", "power"}, summary.Keywords)
}

func TestSummarizeLengthPresets(t *testing.T) {
	tests := []struct {
		length   string
		maxWords int
		minWords int
	}{
		{"short", 100, 30},
		{"medium", 200, 50},
		{"long", 400, 100},
		{"", 200, 50},
		{"gigantic", 200, 50},
	}

	for _, tt := range tests {
		t.Run("length_"+tt.length, func(t *testing.T) {
			engine := &mockEngine{responses: []string{"Summary text."}}
			s := New(engine, mockKeywords{})

			_, err := s.Summarize(context.Background(), models.SummaryRequest{
				Text:   "Some source text to summarize for the preset check.",
				Length: tt.length,
			})
			require.NoError(t, err)

			assert.Equal(t, tt.maxWords, engine.calls[0].maxWords)
			assert.Equal(t, tt.minWords, engine.calls[0].minWords)
		})
	}
}

func TestSummarizeChunksLongText(t *testing.T) {
	engine := &mockEngine{responses: []string{"Chunk summary."}}
	s := New(engine, mockKeywords{})

	// Around 1800 characters, so the text splits into two chunks
	text := strings.TrimSpace(strings.Repeat("science ", 225))

	summary, err := s.Summarize(context.Background(), models.SummaryRequest{Text: text, Length: "medium"})
	require.NoError(t, err)

	assert.Len(t, engine.calls, 2)
	assert.Equal(t, "Chunk summary. Chunk summary.", summary.Summary)
}

func TestSummarizeResummarizesLongOutput(t *testing.T) {
	long := strings.TrimSpace(strings.Repeat("word ", 200))
	engine := &mockEngine{responses: []string{long, "Condensed."}}
	s := New(engine, mockKeywords{})

	summary, err := s.Summarize(context.Background(), models.SummaryRequest{
		Text:   "A single chunk of source text.",
		Length: "short",
	})
	require.NoError(t, err)

	// 200 words exceeds 1.5x the short preset's 100-word cap, forcing a
	// second pass over the concatenated output
	assert.Len(t, engine.calls, 2)
	assert.Equal(t, "Condensed.", summary.Summary)
}

func TestSummarizeEngineError(t *testing.T) {
	engine := &mockEngine{err: errors.New("connection refused")}
	s := New(engine, mockKeywords{})

	_, err := s.Summarize(context.Background(), models.SummaryRequest{Text: "Some text.", Length: "short"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "summarization engine")
}

func TestPreprocessStripsSpecials(t *testing.T) {
	engine := &mockEngine{responses: []string{"Clean."}}
	s := New(engine, mockKeywords{})

	_, err := s.Summarize(context.Background(), models.SummaryRequest{
		Text:   "Email me @ example * [brackets]   and   spaces.",
		Length: "short",
	})
	require.NoError(t, err)

	got := engine.calls[0].text
	for _, bad := range []string{"@", "*", "[", "]"} {
		assert.NotContains(t, got, bad)
	}
}

func TestSplitTextWordBoundaries(t *testing.T) {
	chunks := splitText("alpha beta gamma delta", 11)

	require.Len(t, chunks, 2)
	assert.Equal(t, "alpha beta", chunks[0])
	assert.Equal(t, "gamma delta", chunks[1])
}
