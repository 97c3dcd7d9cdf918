package app

import (
	"fmt"

	"uwsgi-log-stats/internal/shared/svcerrors"
)

const (
	codeInternalReportWriteFailed        = "APP_9000"
	codeInternalSummaryReportStoreFailed = "APP_9001"
)

// errInternalReportWriteFailed returns an error when the summary cannot be written to the output.
func errInternalReportWriteFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalReportWriteFailed, "failed to print summary", fmt.Errorf("reportWriteFailed: %w", cause))
}

// errInternalSummaryReportStoreFailed returns an error when the JSON summary report cannot be stored.
func errInternalSummaryReportStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalSummaryReportStoreFailed, "failed to store summary report", fmt.Errorf("summaryReportStoreFailed: %w", cause))
}
