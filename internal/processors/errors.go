package processors

import (
	"fmt"

	"uwsgi-log-stats/internal/shared/svcerrors"
)

const (
	codeLogFileNotFound = "SRC_1000"

	codeLogFileUnreadable = "SRC_9000"
	codeLogFileReadFailed = "SRC_9001"
)

// errLogFileNotFound returns an error when the log file does not exist.
func errLogFileNotFound(key string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeLogFileNotFound, fmt.Sprintf("log file %q not found", key), cause)
}

// errLogFileUnreadable returns an error when the log file exists but cannot be opened.
func errLogFileUnreadable(key string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeLogFileUnreadable, fmt.Sprintf("log file %q cannot be opened", key), cause)
}

// errLogFileReadFailed returns an error when reading stops part-way through the file.
func errLogFileReadFailed(lineNumber int, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeLogFileReadFailed, fmt.Sprintf("failed reading line %d", lineNumber), cause)
}
