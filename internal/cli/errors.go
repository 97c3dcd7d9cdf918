package cli

import (
	"uwsgi-log-stats/internal/shared/svcerrors"
)

const (
	codeInvalidDateTimeArgument = "ARG_1000"
	codeInvalidCommandLine      = "ARG_1001"
)

// errInvalidDateTimeArgument returns an error for a --from/--to value that does not parse.
func errInvalidDateTimeArgument(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidDateTimeArgument, "something wrong with datetime", cause)
}

// errInvalidCommandLine returns an error for unknown flags or a missing/extra positional argument.
func errInvalidCommandLine(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidCommandLine, msg, cause)
}
