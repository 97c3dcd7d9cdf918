package processors

import (
	"uwsgi-log-stats/internal/shared/metrics"
)

const (
	resultInWindow    = "in_window"
	resultOutOfWindow = "out_of_window"
	resultSkipped     = "skipped"
)

var (
	metricLinesProcessedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubProcessing,
			Name:      "lines_processed_total",
		},
		[]string{metrics.FieldResult},
	)
)
