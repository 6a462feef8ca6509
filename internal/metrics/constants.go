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

// Transaction engine metric names
const (
	MetricNameTxAttempts       = "tx_attempts_total"
	MetricNameTxConflicts      = "tx_conflicts_total"
	MetricNameTxExhausted      = "tx_retry_exhausted_total"
	MetricNameTxDuration       = "tx_duration_seconds"
	MetricNameTxOutcomes       = "tx_outcomes_total"
	MetricNameStaminaRegenRows = "stamina_regenerated_players_total"
)

// Business metric names
const (
	MetricNameHacksResolved  = "hacks_resolved_total"
	MetricNameLootTransfered = "loot_transferred_creds_total"
	MetricNameItemsPurchased = "items_purchased_total"
	MetricNameCredsSpent     = "creds_spent_total"
	MetricNameItemsActivated = "items_activated_total"
	MetricNameTasksClaimed   = "tasks_claimed_total"
	MetricNameQuizAnswers    = "quiz_answers_total"
	MetricNameFeedPublished  = "feed_items_published_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"

	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"

	HelpTextTxAttempts       = "Transaction attempts by operation"
	HelpTextTxConflicts      = "Transaction attempts aborted by a write conflict"
	HelpTextTxExhausted      = "Operations that gave up after the retry budget"
	HelpTextTxDuration       = "Wall time of an operation including retries"
	HelpTextTxOutcomes       = "Operation results by operation and outcome"
	HelpTextStaminaRegenRows = "Players whose stamina was raised by regeneration"

	HelpTextHacksResolved  = "Resolved hacks by outcome"
	HelpTextLootTransfered = "Creds moved from defenders to attackers"
	HelpTextItemsPurchased = "Shop purchases by item type"
	HelpTextCredsSpent     = "Creds spent in the shop"
	HelpTextItemsActivated = "Item activations by item type"
	HelpTextTasksClaimed   = "Task rewards claimed"
	HelpTextQuizAnswers    = "Quiz answers by correctness"
	HelpTextFeedPublished  = "Feed entries published by type"
)

// ============================================================================
// Metric Label Names and Values
// ============================================================================

const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelType      = "type"
	LabelOperation = "operation"
	LabelOutcome   = "outcome"
	LabelItemType  = "item_type"
	LabelCorrect   = "correct"
)

const (
	OutcomeWin  = "win"
	OutcomeLoss = "loss"

	OutcomeSuccess    = "success"
	OutcomeValidation = "validation"
	OutcomeNotFound   = "not_found"
	OutcomeExhausted  = "exhausted"
	OutcomeError      = "error"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets spans 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// TxLatencyBuckets spans 0.5ms to 5s, covering the retry backoff ceiling
var TxLatencyBuckets = []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5}

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgUnexpectedPayload = "Event payload has unexpected shape"
	LogMsgMetricsRecorded   = "Metrics recorded for event"
)
