// Package metrics declares the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Quiz selection outcomes.
const (
	OutcomeServed    = "served"
	OutcomeExhausted = "exhausted"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "trivia",
		Name:      "http_requests_total",
		Help:      "HTTP requests by route pattern, method and status code.",
	}, []string{"route", "method", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "trivia",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route pattern.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route"})

	QuizSelections = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "trivia",
		Name:      "quiz_selections_total",
		Help:      "Quiz question picks, split by whether a question was served or the pool was exhausted.",
	}, []string{"outcome"})

	SearchResults = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "trivia",
		Name:      "search_results",
		Help:      "Number of questions matched per search request.",
		Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100},
	})
)
