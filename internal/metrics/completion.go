package metrics

import "github.com/prometheus/client_golang/prometheus"

// Completion Prometheus metrics. The operation label distinguishes the four
// provider call sites: classify, extract, synthesize, health.
var (
	CompletionRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lexdex",
			Name:      "completion_requests_total",
			Help:      "Total number of completion requests",
		},
		[]string{"operation", "model", "status"},
	)

	CompletionRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "lexdex",
			Name:      "completion_request_duration_seconds",
			Help:      "Completion request duration in seconds",
			Buckets:   []float64{0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"operation", "model"},
	)

	CompletionTokensTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lexdex",
			Name:      "completion_tokens_total",
			Help:      "Total completion tokens consumed",
		},
		[]string{"operation", "model", "type"}, // type: "prompt" / "completion"
	)

	QueryClassificationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lexdex",
			Name:      "query_classifications_total",
			Help:      "Query classifier verdicts by routing tag",
		},
		[]string{"query_type", "fallback"}, // fallback: "true" when the fail-open default was used
	)
)

var complMetricsRegistered bool

// RegisterCompletionMetrics registers Prometheus completion metrics. Must be called once from main.
func RegisterCompletionMetrics() {
	if complMetricsRegistered {
		return
	}
	prometheus.MustRegister(CompletionRequestsTotal)
	prometheus.MustRegister(CompletionRequestDuration)
	prometheus.MustRegister(CompletionTokensTotal)
	prometheus.MustRegister(QueryClassificationsTotal)
	complMetricsRegistered = true
}
