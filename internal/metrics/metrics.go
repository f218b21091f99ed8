package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP
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

// Основная игра
var (
	CascadeSpins = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCascadeSpins,
			Help: HelpTextCascadeSpins,
		},
	)

	CascadeBonuses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCascadeBonuses,
			Help: HelpTextCascadeBonuses,
		},
	)

	CascadeSteps = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameCascadeCascades,
			Help:    HelpTextCascadeCascades,
			Buckets: CascadeStepBuckets,
		},
	)
)

// Бонус
var (
	MiningRounds = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMiningRounds,
			Help: HelpTextMiningRounds,
		},
		[]string{LabelEvent},
	)

	MiningSpins = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMiningSpins,
			Help: HelpTextMiningSpins,
		},
		[]string{LabelResult},
	)

	MiningBlocksDestroyed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMiningBlocks,
			Help: HelpTextMiningBlocks,
		},
		[]string{LabelBlock},
	)

	MiningSpinDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameMiningSpinSeconds,
			Help:    HelpTextMiningSpinSeconds,
			Buckets: SpinDurationBuckets,
		},
	)

	LiveRounds = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameLiveRounds,
			Help: HelpTextLiveRounds,
		},
	)
)

// Деньги
var (
	MoneyWagered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMoneyWagered,
			Help: HelpTextMoneyWagered,
		},
		[]string{LabelGame},
	)

	MoneyPaid = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMoneyPaid,
			Help: HelpTextMoneyPaid,
		},
		[]string{LabelGame},
	)
)
