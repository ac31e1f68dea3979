package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Split Metrics
var (
	SplitsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSplitsTotal,
			Help: HelpTextSplitsTotal,
		},
		[]string{LabelDivision},
	)

	SplitsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSplitsRejected,
			Help: HelpTextSplitsRejected,
		},
		[]string{LabelReason},
	)

	RemainderUnitsDistributed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRemainderUnitsDistributed,
			Help: HelpTextRemainderUnitsDistributed,
		},
	)

	RecipientsPerSplit = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameRecipientsPerSplit,
			Help:    HelpTextRecipientsPerSplit,
			Buckets: RecipientBuckets,
		},
	)
)
