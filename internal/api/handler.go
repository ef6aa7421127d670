package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.opentelemetry.io/otel/attribute"

	"github.com/zombar/studyassist/internal/flashcards"
	"github.com/zombar/studyassist/internal/models"
	"github.com/zombar/studyassist/internal/quizgen"
	"github.com/zombar/studyassist/internal/summarizer"
	"github.com/zombar/studyassist/pkg/metrics"
	"github.com/zombar/studyassist/pkg/tracing"
)

// Minimum input lengths in characters, measured after trimming whitespace.
// Shorter texts cannot yield meaningful study material.
const (
	minQuizTextLen      = 100
	minFlashcardTextLen = 50
	minSummaryTextLen   = 50
)

// Handler handles HTTP requests
type Handler struct {
	quiz       *quizgen.Generator
	flashcards *flashcards.Generator
	summarizer *summarizer.Summarizer // nil when no summarization engine is configured
	metrics    *metrics.BusinessMetrics
	mux        *http.ServeMux
}

// NewHandler creates a new API handler with CORS support and metrics
func NewHandler(quiz *quizgen.Generator, cards *flashcards.Generator, summ *summarizer.Summarizer, m *metrics.BusinessMetrics) http.Handler {
	h := &Handler{
		quiz:       quiz,
		flashcards: cards,
		summarizer: summ,
		metrics:    m,
		mux:        http.NewServeMux(),
	}

	h.setupRoutes()

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	return c.Handler(h.mux)
}

// setupRoutes configures all API routes
func (h *Handler) setupRoutes() {
	h.mux.Handle("/metrics", promhttp.Handler())
	h.mux.HandleFunc("/api/quiz/generate", h.handleGenerateQuiz)
	h.mux.HandleFunc("/api/flashcards/generate", h.handleGenerateFlashcards)
	h.mux.HandleFunc("/api/summarize", h.handleSummarize)
	h.mux.HandleFunc("/health", h.handleHealth)
}

// handleHealth handles health check requests
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}

// handleGenerateQuiz handles quiz generation requests
func (h *Handler) handleGenerateQuiz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.QuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if len(strings.TrimSpace(req.Text)) < minQuizTextLen {
		respondError(w, "Text too short for quiz generation", http.StatusBadRequest)
		return
	}

	tracing.SetSpanAttributes(r.Context(),
		attribute.Int("text.length", len(req.Text)),
		attribute.Int("quiz.num_questions", req.NumQuestions))

	start := time.Now()
	quiz := h.quiz.Generate(req)
	h.metrics.GenerationDuration.WithLabelValues("quiz").Observe(time.Since(start).Seconds())
	h.metrics.QuizzesTotal.WithLabelValues("success").Inc()
	for _, q := range quiz.Questions {
		h.metrics.QuestionsTotal.WithLabelValues(q.Type).Inc()
	}

	tracing.SetSpanAttributes(r.Context(),
		attribute.Int("quiz.questions_generated", len(quiz.Questions)))

	slog.Info("quiz generated",
		"questions", len(quiz.Questions),
		"text_length", len(req.Text),
		"trace_id", tracing.TraceIDFromContext(r.Context()))

	respondJSON(w, quiz, http.StatusOK)
}

// handleGenerateFlashcards handles flashcard generation requests
func (h *Handler) handleGenerateFlashcards(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.FlashcardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if len(strings.TrimSpace(req.Text)) < minFlashcardTextLen {
		respondError(w, "Text too short for flashcard generation", http.StatusBadRequest)
		return
	}

	tracing.SetSpanAttributes(r.Context(),
		attribute.Int("text.length", len(req.Text)),
		attribute.Int("flashcards.count", req.Count))

	start := time.Now()
	set := h.flashcards.Generate(req)
	h.metrics.GenerationDuration.WithLabelValues("flashcards").Observe(time.Since(start).Seconds())
	h.metrics.FlashcardsTotal.WithLabelValues("success").Inc()

	slog.Info("flashcards generated",
		"cards", len(set.Cards),
		"text_length", len(req.Text),
		"trace_id", tracing.TraceIDFromContext(r.Context()))

	respondJSON(w, set, http.StatusOK)
}

// handleSummarize handles summarization requests
func (h *Handler) handleSummarize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if h.summarizer == nil {
		respondError(w, "Summarization engine not configured", http.StatusServiceUnavailable)
		return
	}

	var req models.SummaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if len(strings.TrimSpace(req.Text)) < minSummaryTextLen {
		respondError(w, "Text too short for summarization", http.StatusBadRequest)
		return
	}

	tracing.SetSpanAttributes(r.Context(),
		attribute.Int("text.length", len(req.Text)),
		attribute.String("summary.length", req.Length))

	start := time.Now()
	summary, err := h.summarizer.Summarize(r.Context(), req)
	if err != nil {
		h.metrics.SummariesTotal.WithLabelValues("error").Inc()
		slog.Error("summarization failed",
			"error", err,
			"trace_id", tracing.TraceIDFromContext(r.Context()))
		respondError(w, "Summarization failed", http.StatusBadGateway)
		return
	}
	h.metrics.GenerationDuration.WithLabelValues("summary").Observe(time.Since(start).Seconds())
	h.metrics.SummariesTotal.WithLabelValues("success").Inc()

	slog.Info("summary generated",
		"original_words", summary.OriginalLength,
		"summary_words", summary.SummaryLength,
		"trace_id", tracing.TraceIDFromContext(r.Context()))

	respondJSON(w, summary, http.StatusOK)
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func respondError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	})
}
