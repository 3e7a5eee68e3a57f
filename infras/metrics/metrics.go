// Package metrics holds the process-wide prometheus collectors, registered on the
// default registry and served at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "venuebook"

var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"route", "code", "method"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	DBTxDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "db_tx_seconds",
			Help:      "Duration of DB transactions",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	BookingsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_created_total",
			Help:      "Total bookings committed",
		},
	)

	BookingConflicts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_conflicts_total",
			Help:      "Total booking attempts rejected because the date was taken",
		},
		[]string{"cause"},
	)

	AvailabilityChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "availability_dates_total",
			Help:      "Total dates submitted to availability updates",
		},
		[]string{"action"},
	)

	RateLimitExceeded = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limit_exceeded_total",
			Help:      "Total requests rejected by the rate limiter",
		},
	)

	EventPublishFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "event_publish_failures_total",
			Help:      "Total domain events that could not be handed to the broker",
		},
		[]string{"topic"},
	)
)

const (
	ConflictCauseUnavailable = "unavailable"
	ConflictCauseConstraint  = "constraint"

	AvailabilityActionBlock   = "block"
	AvailabilityActionUnblock = "unblock"
)
