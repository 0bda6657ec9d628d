package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	paymentsProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "shop_service",
			Subsystem: "payments_consumer",
			Name:      "notifications_processed_total",
			Help:      "Total number of successfully applied payment notifications",
		},
	)

	paymentsFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shop_service",
			Subsystem: "payments_consumer",
			Name:      "notifications_failed_total",
			Help:      "Total number of payment notifications that could not be applied, by error code",
		},
		[]string{"code"},
	)

	paymentsDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "shop_service",
			Subsystem: "payments_consumer",
			Name:      "notifications_dlq_total",
			Help:      "Total number of payment notifications written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "shop_service",
			Subsystem: "payments_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	paymentProcessingDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "shop_service",
			Subsystem: "payments_consumer",
			Name:      "notification_processing_duration_seconds",
			Help:      "Histogram of payment notification processing durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	paymentsInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "shop_service",
			Subsystem: "payments_consumer",
			Name:      "notifications_in_progress",
			Help:      "Number of payment notifications currently being processed",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		paymentsProcessed,
		paymentsFailed,
		paymentsDLQ,
		commitErrors,
		paymentProcessingDuration,
		paymentsInProgress,
	)
}
