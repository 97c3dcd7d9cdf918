package main

import (
	"uwsgi-log-stats/internal/shared/svcerrors"
)

const codeInvalidConfig = "CFG_1000"

// errInvalidConfig returns an error when the config file or environment cannot be loaded.
func errInvalidConfig(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidConfig, "invalid configuration", cause)
}
