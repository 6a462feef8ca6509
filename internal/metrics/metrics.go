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

// Transaction engine metrics
var (
	TxAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{Name: MetricNameTxAttempts, Help: HelpTextTxAttempts},
		[]string{LabelOperation},
	)

	TxConflicts = promauto.NewCounterVec(
		prometheus.CounterOpts{Name: MetricNameTxConflicts, Help: HelpTextTxConflicts},
		[]string{LabelOperation},
	)

	TxExhausted = promauto.NewCounterVec(
		prometheus.CounterOpts{Name: MetricNameTxExhausted, Help: HelpTextTxExhausted},
		[]string{LabelOperation},
	)

	TxDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{Name: MetricNameTxDuration, Help: HelpTextTxDuration, Buckets: TxLatencyBuckets},
		[]string{LabelOperation},
	)

	TxOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{Name: MetricNameTxOutcomes, Help: HelpTextTxOutcomes},
		[]string{LabelOperation, LabelOutcome},
	)

	StaminaRegenerated = promauto.NewCounter(
		prometheus.CounterOpts{Name: MetricNameStaminaRegenRows, Help: HelpTextStaminaRegenRows},
	)
)

// Business Metrics
var (
	HacksResolved = promauto.NewCounterVec(
		prometheus.CounterOpts{Name: MetricNameHacksResolved, Help: HelpTextHacksResolved},
		[]string{LabelOutcome},
	)

	LootTransferred = promauto.NewCounter(
		prometheus.CounterOpts{Name: MetricNameLootTransfered, Help: HelpTextLootTransfered},
	)

	ItemsPurchased = promauto.NewCounterVec(
		prometheus.CounterOpts{Name: MetricNameItemsPurchased, Help: HelpTextItemsPurchased},
		[]string{LabelItemType},
	)

	CredsSpent = promauto.NewCounter(
		prometheus.CounterOpts{Name: MetricNameCredsSpent, Help: HelpTextCredsSpent},
	)

	ItemsActivated = promauto.NewCounterVec(
		prometheus.CounterOpts{Name: MetricNameItemsActivated, Help: HelpTextItemsActivated},
		[]string{LabelItemType},
	)

	TasksClaimed = promauto.NewCounter(
		prometheus.CounterOpts{Name: MetricNameTasksClaimed, Help: HelpTextTasksClaimed},
	)

	QuizAnswers = promauto.NewCounterVec(
		prometheus.CounterOpts{Name: MetricNameQuizAnswers, Help: HelpTextQuizAnswers},
		[]string{LabelCorrect},
	)

	FeedPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{Name: MetricNameFeedPublished, Help: HelpTextFeedPublished},
		[]string{LabelType},
	)
)
