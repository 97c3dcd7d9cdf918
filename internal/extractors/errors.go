package extractors

import (
	"fmt"

	"uwsgi-log-stats/internal/shared/svcerrors"
)

const (
	codeMalformedLogTimestamp = "EXT_9000"
)

// errMalformedLogTimestamp returns an error for a request line whose timestamp does not parse.
func errMalformedLogTimestamp(value string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeMalformedLogTimestamp, fmt.Sprintf("malformed log timestamp %q", value), cause)
}
