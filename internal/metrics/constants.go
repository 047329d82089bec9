package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Overlay metric names
const (
	MetricNameOverlayClients       = "overlay_clients"
	MetricNameOverlayEventsSent    = "overlay_events_broadcast_total"
	MetricNameOverlayEventsDropped = "overlay_events_dropped_total"
)

// Business metric names
const (
	MetricNameBlindBoxRedemptions  = "blindbox_redemptions_total"
	MetricNameBlindBoxFailures     = "blindbox_redemption_failures_total"
	MetricNameCollectionResets     = "blindbox_collection_resets_total"
	MetricNameCollectionsCompleted = "blindbox_collections_completed"
	MetricNameStatChanges          = "stat_changes_total"
	MetricNameChatCommands         = "chat_commands_total"
)

// Worker metric names
const (
	MetricNameWorkerJobs       = "worker_jobs_total"
	MetricNameWorkerQueueDepth = "worker_queue_depth"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Overlay metric help text
const (
	HelpTextOverlayClients       = "Current number of connected overlay clients"
	HelpTextOverlayEventsSent    = "Total number of overlay events accepted for broadcast"
	HelpTextOverlayEventsDropped = "Total number of overlay events dropped for a slow or full client"
)

// Business metric help text
const (
	HelpTextBlindBoxRedemptions  = "Total number of blind box redemptions"
	HelpTextBlindBoxFailures     = "Total number of blind box redemptions that failed to persist"
	HelpTextCollectionResets     = "Total number of collection resets"
	HelpTextCollectionsCompleted = "Number of users owning every slot of a collection"
	HelpTextStatChanges          = "Total number of stat modifications"
	HelpTextChatCommands         = "Total number of chat commands handled"
)

// Worker metric help text
const (
	HelpTextWorkerJobs       = "Total number of worker pool jobs by result"
	HelpTextWorkerQueueDepth = "Number of jobs waiting in the worker queue"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod         = "method"
	LabelPath           = "path"
	LabelStatus         = "status"
	LabelType           = "type"
	LabelTransport      = "transport"
	LabelCollectionType = "collection_type"
	LabelIsNew          = "is_new"
	LabelStat           = "stat"
	LabelCommand        = "command"
	LabelPlatform       = "platform"
	LabelResult         = "result"
)

// Worker job results
const (
	ResultOK       = "ok"
	ResultError    = "error"
	ResultPanic    = "panic"
	ResultRejected = "rejected"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgUnexpectedPayload = "Unexpected event payload type"
	LogMsgMetricsRecorded   = "Metrics recorded for event"
)
