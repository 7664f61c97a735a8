package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrorRate counts Redis errors by operation type.
	RedisErrorRate = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "brewvibe_redis_error_rate_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "brewvibe_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// RecipeViewsTracked counts tracked recipe views.
	RecipeViewsTracked = promauto.NewCounter(prometheus.CounterOpts{
		Name: "brewvibe_recipe_views_tracked_total",
		Help: "Total number of recipe views recorded by the statistics endpoint",
	})

	// VisitorsTracked counts tracked site visits.
	VisitorsTracked = promauto.NewCounter(prometheus.CounterOpts{
		Name: "brewvibe_visitors_tracked_total",
		Help: "Total number of site visits recorded by the statistics endpoint",
	})

	// RatingRecomputes counts rating aggregator runs by outcome.
	RatingRecomputes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "brewvibe_rating_recomputes_total",
		Help: "Total number of recipe rating recomputations by outcome",
	}, []string{"outcome"})
)

// ObserveQuery records the latency of a database query.
func ObserveQuery(operation, table string, start time.Time) {
	DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
}
