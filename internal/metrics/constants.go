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

// Business metric names
const (
	MetricNameExperimentsRun       = "experiments_run_total"
	MetricNameXPAwarded            = "xp_awarded_total"
	MetricNameLevelUps             = "level_ups_total"
	MetricNameAchievementsUnlocked = "achievements_unlocked_total"
	MetricNameUsersRegistered      = "users_registered_total"
	MetricNameSearchesPerformed    = "searches_performed_total"
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
	HelpTextEventHandlerErrors = "Total number of event deliveries with handler errors"
)

// Business metric help text
const (
	HelpTextExperimentsRun       = "Total number of experiments run"
	HelpTextXPAwarded            = "Total experience points awarded, bonuses included"
	HelpTextLevelUps             = "Total number of level-ups"
	HelpTextAchievementsUnlocked = "Total number of achievements unlocked"
	HelpTextUsersRegistered      = "Total number of users registered"
	HelpTextSearchesPerformed    = "Total number of catalog searches performed"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod      = "method"
	LabelPath        = "path"
	LabelStatus      = "status"
	LabelType        = "type"
	LabelOutcome     = "outcome"
	LabelSource      = "source"
	LabelLevel       = "level"
	LabelAchievement = "achievement"
)

// Experiment outcome label values
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadDecode = "Could not decode event payload for metrics"
	LogMsgMetricsRecorded    = "Metrics recorded for event"
)
