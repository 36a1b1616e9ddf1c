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

// Movement Metrics
var (
	MovementsStarted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMovementsStarted,
			Help: HelpTextMovementsStarted,
		},
		[]string{LabelTransport},
	)

	MovementsCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMovementsCompleted,
			Help: HelpTextMovementsCompleted,
		},
	)

	MovementsCancelled = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMovementsCancelled,
			Help: HelpTextMovementsCancelled,
		},
	)

	DistanceValidated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDistanceValidated,
			Help: HelpTextDistanceValidated,
		},
	)

	SCEarned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSCEarned,
			Help: HelpTextSCEarned,
		},
	)
)

// Economy and Game Metrics
var (
	RouletteSpins = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRouletteSpins,
			Help: HelpTextRouletteSpins,
		},
		[]string{LabelSlot},
	)

	CosmeticsMinted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCosmeticsMinted,
			Help: HelpTextCosmeticsMinted,
		},
		[]string{LabelTemplate},
	)

	EnhanceAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEnhanceAttempts,
			Help: HelpTextEnhanceAttempts,
		},
		[]string{LabelResult},
	)

	StorePurchases = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameStorePurchases,
			Help: HelpTextStorePurchases,
		},
		[]string{LabelItem},
	)

	AchievementsClaimed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameAchievementsClaimed,
			Help: HelpTextAchievementsClaimed,
		},
	)

	BoostersRedeemed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameBoostersRedeemed,
			Help: HelpTextBoostersRedeemed,
		},
	)
)
