package aggregators

import (
	"uwsgi-log-stats/internal/shared/metrics"
)

// metricRecordsAggregatedTotal counts in-window records per response code.
//
// Only records that passed the time window reach the aggregator, so the sum
// over all response_code values equals the printed request total of a run.
var (
	metricRecordsAggregatedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "records_aggregated_total",
		},
		[]string{metrics.FieldResponseCode},
	)
)
