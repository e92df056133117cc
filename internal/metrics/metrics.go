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

// Business Metrics
var (
	Recommendations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRecommendations,
			Help: HelpTextRecommendations,
		},
		[]string{LabelPolicy, LabelOutcome},
	)

	LootRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLootRecorded,
			Help: HelpTextLootRecorded,
		},
		[]string{LabelPolicy},
	)

	RosterInconsistencies = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRosterInconsistencies,
			Help: HelpTextRosterInconsistencies,
		},
		[]string{LabelSource},
	)

	GearNeedsCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGearNeedsCacheHits,
			Help: HelpTextGearNeedsCacheHits,
		},
	)

	GearNeedsCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGearNeedsCacheMisses,
			Help: HelpTextGearNeedsCacheMisses,
		},
	)
)
