package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Request-level and engine-level counters for the scoring pipeline.
var (
	CacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "trendscore_cache_hits_total",
		Help: "Keyword scores served from the in-memory cache",
	})

	CacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "trendscore_cache_misses_total",
		Help: "Keyword lookups that required fresh analysis",
	})

	SuggestFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "trendscore_suggest_failures_total",
		Help: "Suggestion fetches that degraded to an empty result",
	})

	FallbackScores = promauto.NewCounter(prometheus.CounterOpts{
		Name: "trendscore_fallback_scores_total",
		Help: "Keywords that received a fallback score after a failed analysis",
	})

	AnalyzeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "trendscore_analyze_duration_seconds",
		Help:    "Wall-clock duration of a full keyword analysis request",
		Buckets: prometheus.DefBuckets,
	})
)
