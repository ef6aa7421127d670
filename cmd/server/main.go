package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/zombar/studyassist/internal/api"
	"github.com/zombar/studyassist/internal/flashcards"
	"github.com/zombar/studyassist/internal/nlp"
	"github.com/zombar/studyassist/internal/ollama"
	"github.com/zombar/studyassist/internal/quizgen"
	"github.com/zombar/studyassist/internal/summarizer"
	"github.com/zombar/studyassist/pkg/logging"
	"github.com/zombar/studyassist/pkg/metrics"
	"github.com/zombar/studyassist/pkg/tracing"
)

func main() {
	// Local overrides from .env, if present
	_ = godotenv.Load()

	// Setup structured logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	logger.Info("studyassist service initializing", "version", "1.0.0")

	// Initialize tracing
	tp, err := tracing.InitTracer("studyassist")
	if err != nil {
		logger.Warn("failed to initialize tracer, continuing without tracing", "error", err)
	} else {
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				logger.Error("error shutting down tracer", "error", err)
			}
		}()
		logger.Info("tracing initialized successfully")
	}

	// Get default values from environment variables, with fallbacks
	portDefault := getEnv("PORT", "8080")
	ollamaURLDefault := getEnv("OLLAMA_URL", "http://localhost:11434")
	ollamaModelDefault := getEnv("OLLAMA_MODEL", ollama.DefaultModel)
	useOllamaDefault := getEnvBool("USE_OLLAMA", true)

	var (
		port        = flag.String("port", portDefault, "Server port (env: PORT)")
		ollamaURL   = flag.String("ollama-url", ollamaURLDefault, "Ollama API URL (env: OLLAMA_URL)")
		ollamaModel = flag.String("ollama-model", ollamaModelDefault, "Ollama model to use (env: OLLAMA_MODEL)")
		useOllama   = flag.Bool("use-ollama", useOllamaDefault, "Enable Ollama for summarization (env: USE_OLLAMA)")
	)
	flag.Parse()

	// Shared linguistic analyzer behind both generators
	analyzer := nlp.New()
	quizGen := quizgen.New(analyzer)
	cardGen := flashcards.New(analyzer)

	// Summarization needs the Ollama engine; without it the endpoint is
	// unavailable but quiz and flashcard generation still work.
	var summ *summarizer.Summarizer
	if *useOllama {
		ollamaClient, err := ollama.New(*ollamaURL, *ollamaModel)
		if err != nil {
			logger.Warn("failed to initialize Ollama client, summarization disabled",
				"error", err,
				"ollama_url", *ollamaURL,
				"ollama_model", *ollamaModel,
			)
		} else {
			logger.Info("Ollama client initialized", "model", *ollamaModel, "url", *ollamaURL)
			summ = summarizer.New(ollamaClient, analyzer)
		}
	} else {
		logger.Info("Ollama disabled, summarization endpoint unavailable")
	}

	businessMetrics := metrics.NewBusinessMetrics("studyassist")

	// Initialize API handler
	apiHandler := api.NewHandler(quizGen, cardGen, summ, businessMetrics)

	// Wrap handler with middleware chain: HTTP logging -> tracing -> handlers
	handler := logging.HTTPLoggingMiddleware(logger)(
		tracing.HTTPMiddleware("studyassist")(apiHandler),
	)

	// Create server with extended timeouts for AI summarization
	srv := &http.Server{
		Addr:         ":" + *port,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 420 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("studyassist service starting",
			"port", *port,
			"ollama_enabled", *useOllama,
			"ollama_url", *ollamaURL,
			"ollama_model", *ollamaModel,
		)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool retrieves a boolean environment variable or returns a default value
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	return defaultValue
}
