package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Progression Metrics
var (
	XPAwarded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameXPAwarded,
			Help: HelpTextXPAwarded,
		},
		[]string{LabelSource},
	)

	DailyQuestsCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDailyQuestsCompleted,
			Help: HelpTextDailyQuestsCompleted,
		},
	)

	StepsCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameStepsCompleted,
			Help: HelpTextStepsCompleted,
		},
	)

	QuestsCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameQuestsCompleted,
			Help: HelpTextQuestsCompleted,
		},
	)

	DailyResets = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDailyResets,
			Help: HelpTextDailyResets,
		},
	)
)

// Store Metrics
var (
	StoreFallbackReads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameStoreFallbackReads,
			Help: HelpTextStoreFallbackReads,
		},
		[]string{LabelMedium},
	)

	StoreMediumFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameStoreMediumFailures,
			Help: HelpTextStoreMediumFailures,
		},
		[]string{LabelMedium, LabelOperation},
	)

	SnapshotWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSnapshotWrites,
			Help: HelpTextSnapshotWrites,
		},
		[]string{LabelResult},
	)
)
