// Package metrics registers the Prometheus collectors used by the
// recommendation pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pathwise_cache_hits_total",
		Help: "Recommendation requests answered from the response cache",
	})

	CacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pathwise_cache_misses_total",
		Help: "Recommendation requests that missed the response cache",
	})

	InflightJoins = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pathwise_inflight_joins_total",
		Help: "Requests that joined an identical in-flight computation",
	})

	Recommendations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pathwise_recommendations_total",
			Help: "Computed recommendation sets by platform and outcome (ranked, fallback, empty)",
		},
		[]string{"platform", "outcome"},
	)

	GenerationAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pathwise_generation_attempts_total",
			Help: "Generation model calls by tier (primary, fallback) and result",
		},
		[]string{"tier", "result"},
	)
)

// RecordRecommendation counts one computed recommendation set.
func RecordRecommendation(platform, outcome string) {
	Recommendations.WithLabelValues(platform, outcome).Inc()
}

// RecordGeneration counts one generation model call.
func RecordGeneration(tier string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	GenerationAttempts.WithLabelValues(tier, result).Inc()
}
