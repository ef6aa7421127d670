package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// BusinessMetrics tracks artifact generation outcomes for the service
type BusinessMetrics struct {
	QuizzesTotal       *prometheus.CounterVec
	QuestionsTotal     *prometheus.CounterVec
	FlashcardsTotal    *prometheus.CounterVec
	SummariesTotal     *prometheus.CounterVec
	GenerationDuration *prometheus.HistogramVec
}

// NewBusinessMetrics creates and registers the business metrics on the
// default registerer
func NewBusinessMetrics(namespace string) *BusinessMetrics {
	return &BusinessMetrics{
		QuizzesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quizzes_generated_total",
			Help:      "Total number of quiz generation requests by status",
		}, []string{"status"}),
		QuestionsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "questions_generated_total",
			Help:      "Total number of questions generated by question type",
		}, []string{"type"}),
		FlashcardsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "flashcards_generated_total",
			Help:      "Total number of flashcard generation requests by status",
		}, []string{"status"}),
		SummariesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "summaries_generated_total",
			Help:      "Total number of summarization requests by status",
		}, []string{"status"}),
		GenerationDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "generation_duration_seconds",
			Help:      "Time spent generating an artifact",
			Buckets:   prometheus.DefBuckets,
		}, []string{"artifact"}),
	}
}
