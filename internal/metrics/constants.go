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

// Progression metric names
const (
	MetricNameXPAwarded            = "xp_awarded_total"
	MetricNameDailyQuestsCompleted = "daily_quests_completed_total"
	MetricNameStepsCompleted       = "quest_steps_completed_total"
	MetricNameQuestsCompleted      = "main_quests_completed_total"
	MetricNameDailyResets          = "daily_resets_total"
)

// Store metric names
const (
	MetricNameStoreFallbackReads  = "store_fallback_reads_total"
	MetricNameStoreMediumFailures = "store_medium_failures_total"
	MetricNameSnapshotWrites      = "snapshot_writes_total"
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

// Progression metric help text
const (
	HelpTextXPAwarded            = "Total XP awarded, labelled by award source"
	HelpTextDailyQuestsCompleted = "Total number of daily quest completions"
	HelpTextStepsCompleted       = "Total number of main quest step completions"
	HelpTextQuestsCompleted      = "Total number of first-time main quest completions"
	HelpTextDailyResets          = "Total number of daily quest cutover resets"
)

// Store metric help text
const (
	HelpTextStoreFallbackReads  = "Total reads served from a fallback medium"
	HelpTextStoreMediumFailures = "Total storage medium operation failures"
	HelpTextSnapshotWrites      = "Total persisted aggregate snapshot writes"
)

// ============================================================================
// Labels
// ============================================================================

const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelType      = "type"
	LabelSource    = "source"
	LabelMedium    = "medium"
	LabelOperation = "operation"
	LabelResult    = "result"
)

// HTTPLatencyBuckets are the histogram buckets for HTTP request duration
var HTTPLatencyBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1}

// Log messages
const (
	LogMsgEventPayloadUnknown = "Event payload has unexpected type, metrics skipped"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
