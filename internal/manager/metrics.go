package manager

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	loadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "emotiond",
			Subsystem: "model",
			Name:      "loads_total",
			Help:      "Total model load attempts by outcome",
		},
		[]string{"outcome"},
	)

	loadDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "emotiond",
			Subsystem: "model",
			Name:      "load_duration_seconds",
			Help:      "Duration of model load attempts in seconds",
			Buckets:   []float64{1, 5, 15, 30, 60, 120, 300},
		},
		[]string{"outcome"},
	)

	predictionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "emotiond",
			Subsystem: "inference",
			Name:      "predictions_total",
			Help:      "Total predictions by outcome",
		},
		[]string{"outcome"},
	)

	predictionDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "emotiond",
			Subsystem: "inference",
			Name:      "prediction_duration_seconds",
			Help:      "Duration of the forward pass in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"outcome"},
	)
)

func init() {
	prometheus.MustRegister(loadsTotal, loadDuration, predictionsTotal, predictionDuration)
}

func observeLoad(outcome string, dur time.Duration) {
	loadsTotal.WithLabelValues(outcome).Inc()
	loadDuration.WithLabelValues(outcome).Observe(dur.Seconds())
}

func observePrediction(outcome string, dur time.Duration) {
	predictionsTotal.WithLabelValues(outcome).Inc()
	predictionDuration.WithLabelValues(outcome).Observe(dur.Seconds())
}
