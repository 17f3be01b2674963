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

// Command Metrics
var (
	CommandsHandled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCommandsHandled,
			Help: HelpTextCommandsHandled,
		},
		[]string{LabelCommand},
	)

	CommandErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCommandErrors,
			Help: HelpTextCommandErrors,
		},
		[]string{LabelCommand},
	)
)

// Record Metrics
var (
	RecordMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRecordMutations,
			Help: HelpTextRecordMutations,
		},
		[]string{LabelOperation},
	)
)
