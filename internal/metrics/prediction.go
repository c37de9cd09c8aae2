package metrics

import "github.com/prometheus/client_golang/prometheus"

// Prediction Prometheus metrics.
var (
	PredictionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hickory",
			Name:      "predictions_total",
			Help:      "Total number of classified texts",
		},
		[]string{"category", "status"},
	)

	PredictionDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "hickory",
			Name:      "prediction_duration_seconds",
			Help:      "Classification duration in seconds",
			Buckets:   []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		},
	)

	PredictionConfidence = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "hickory",
			Name:      "prediction_confidence",
			Help:      "Confidence of the winning category",
			Buckets:   []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 0.95, 1},
		},
	)
)

var predMetricsRegistered bool

// RegisterPredictionMetrics registers Prometheus prediction metrics. Must be called once from main.
func RegisterPredictionMetrics() {
	if predMetricsRegistered {
		return
	}
	prometheus.MustRegister(PredictionsTotal)
	prometheus.MustRegister(PredictionDuration)
	prometheus.MustRegister(PredictionConfidence)
	predMetricsRegistered = true
}
