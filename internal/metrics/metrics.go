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

// Overlay Metrics
var (
	OverlayClients = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameOverlayClients,
			Help: HelpTextOverlayClients,
		},
		[]string{LabelTransport},
	)

	OverlayEventsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameOverlayEventsSent,
			Help: HelpTextOverlayEventsSent,
		},
		[]string{LabelType},
	)

	OverlayEventsDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameOverlayEventsDropped,
			Help: HelpTextOverlayEventsDropped,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	BlindBoxRedemptions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBlindBoxRedemptions,
			Help: HelpTextBlindBoxRedemptions,
		},
		[]string{LabelCollectionType, LabelIsNew},
	)

	BlindBoxFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBlindBoxFailures,
			Help: HelpTextBlindBoxFailures,
		},
		[]string{LabelCollectionType},
	)

	CollectionResets = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCollectionResets,
			Help: HelpTextCollectionResets,
		},
		[]string{LabelCollectionType},
	)

	CollectionsCompleted = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameCollectionsCompleted,
			Help: HelpTextCollectionsCompleted,
		},
		[]string{LabelCollectionType},
	)

	StatChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameStatChanges,
			Help: HelpTextStatChanges,
		},
		[]string{LabelStat},
	)

	ChatCommands = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameChatCommands,
			Help: HelpTextChatCommands,
		},
		[]string{LabelPlatform, LabelCommand},
	)
)

// Worker Metrics
var (
	WorkerJobs = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameWorkerJobs,
			Help: HelpTextWorkerJobs,
		},
		[]string{LabelResult},
	)

	WorkerQueueDepth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameWorkerQueueDepth,
			Help: HelpTextWorkerQueueDepth,
		},
	)
)
