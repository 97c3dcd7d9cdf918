package extractors

import (
	"uwsgi-log-stats/internal/shared/metrics"
)

const (
	resultMatched = "matched"
	resultNoMatch = "no_match"
)

var (
	metricLinesExtractedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubExtraction,
			Name:      "lines_extracted_total",
		},
		[]string{metrics.FieldResult, metrics.FieldErrorCode},
	)
)
