package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/zombar/studyassist/internal/flashcards"
	"github.com/zombar/studyassist/internal/models"
	"github.com/zombar/studyassist/internal/nlp"
	"github.com/zombar/studyassist/internal/quizgen"
	"github.com/zombar/studyassist/internal/summarizer"
	"github.com/zombar/studyassist/pkg/metrics"
)

const quizText = "Marie Curie was born in Warsaw in 1867. " +
	"She moved to Paris to study physics and chemistry. " +
	"Albert Einstein praised her groundbreaking work on radioactivity. " +
	"The Nobel Committee honored her twice for physics and chemistry."

// mockEngine implements summarizer.Engine for handler tests
type mockEngine struct {
	err error
}

func (m *mockEngine) Summarize(ctx context.Context, text string, maxWords, minWords int) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return "A concise summary of the text.", nil
}

func setupTestHandler(t *testing.T, summ *summarizer.Summarizer) *Handler {
	t.Helper()

	// Reset Prometheus registry to avoid metric registration conflicts between tests
	prometheus.DefaultRegisterer = prometheus.NewRegistry()

	analyzer := nlp.New()
	handler := &Handler{
		quiz:       quizgen.New(analyzer),
		flashcards: flashcards.New(analyzer),
		summarizer: summ,
		metrics:    metrics.NewBusinessMetrics("studyassist_test"),
		mux:        http.NewServeMux(),
	}
	handler.setupRoutes()

	return handler
}

func postJSON(handler *Handler, path string, payload interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler.mux.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	handler := setupTestHandler(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	handler.mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response map[string]string
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response["status"] != "ok" {
		t.Errorf("Expected status 'ok', got '%s'", response["status"])
	}
}

func TestQuizEndpoint(t *testing.T) {
	handler := setupTestHandler(t, nil)

	w := postJSON(handler, "/api/quiz/generate", models.QuizRequest{
		Text:         quizText,
		NumQuestions: 6,
	})

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var quiz models.Quiz
	if err := json.NewDecoder(w.Body).Decode(&quiz); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if quiz.Title == "" {
		t.Error("Expected non-empty quiz title")
	}
	if len(quiz.Questions) == 0 {
		t.Error("Expected questions from entity-rich text")
	}
	if len(quiz.Questions) > 6 {
		t.Errorf("Expected at most 6 questions, got %d", len(quiz.Questions))
	}
	for _, q := range quiz.Questions {
		if q.CorrectAnswer == "" {
			t.Error("Expected non-empty correct answer")
		}
	}
}

func TestQuizEndpointTextTooShort(t *testing.T) {
	handler := setupTestHandler(t, nil)

	w := postJSON(handler, "/api/quiz/generate", models.QuizRequest{Text: "Too short."})

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}

	var response map[string]string
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response["error"] != "Text too short for quiz generation" {
		t.Errorf("Unexpected error message: %q", response["error"])
	}
}

func TestQuizEndpointInvalidJSON(t *testing.T) {
	handler := setupTestHandler(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/quiz/generate", strings.NewReader("{not json"))
	w := httptest.NewRecorder()
	handler.mux.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

func TestQuizEndpointMethodNotAllowed(t *testing.T) {
	handler := setupTestHandler(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/quiz/generate", nil)
	w := httptest.NewRecorder()
	handler.mux.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected status 405, got %d", w.Code)
	}
}

func TestFlashcardsEndpoint(t *testing.T) {
	handler := setupTestHandler(t, nil)

	w := postJSON(handler, "/api/flashcards/generate", models.FlashcardRequest{
		Text:  quizText,
		Count: 5,
	})

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var set models.FlashcardSet
	if err := json.NewDecoder(w.Body).Decode(&set); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if set.Title == "" {
		t.Error("Expected non-empty flashcard set title")
	}
	if len(set.Cards) == 0 || len(set.Cards) > 5 {
		t.Errorf("Expected 1-5 cards, got %d", len(set.Cards))
	}
}

func TestFlashcardsEndpointTextTooShort(t *testing.T) {
	handler := setupTestHandler(t, nil)

	w := postJSON(handler, "/api/flashcards/generate", models.FlashcardRequest{Text: "Short."})

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

func TestSummarizeEndpoint(t *testing.T) {
	summ := summarizer.New(&mockEngine{}, nlp.New())
	handler := setupTestHandler(t, summ)

	w := postJSON(handler, "/api/summarize", models.SummaryRequest{
		Text:   quizText,
		Length: "short",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var summary models.Summary
	if err := json.NewDecoder(w.Body).Decode(&summary); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if summary.Summary != "A concise summary of the text." {
		t.Errorf("Unexpected summary: %q", summary.Summary)
	}
	if len(summary.Keywords) == 0 {
		t.Error("Expected keywords alongside the summary")
	}
	if summary.OriginalLength == 0 || summary.SummaryLength == 0 {
		t.Error("Expected non-zero word counts")
	}
}

func TestSummarizeEndpointUnavailable(t *testing.T) {
	handler := setupTestHandler(t, nil)

	w := postJSON(handler, "/api/summarize", models.SummaryRequest{Text: quizText})

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected status 503, got %d", w.Code)
	}
}

func TestSummarizeEndpointEngineFailure(t *testing.T) {
	summ := summarizer.New(&mockEngine{err: context.DeadlineExceeded}, nlp.New())
	handler := setupTestHandler(t, summ)

	w := postJSON(handler, "/api/summarize", models.SummaryRequest{Text: quizText})

	if w.Code != http.StatusBadGateway {
		t.Errorf("Expected status 502, got %d", w.Code)
	}
}

func TestSummarizeEndpointTextTooShort(t *testing.T) {
	summ := summarizer.New(&mockEngine{}, nlp.New())
	handler := setupTestHandler(t, summ)

	w := postJSON(handler, "/api/summarize", models.SummaryRequest{Text: "Tiny."})

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}
