package extractors

import (
	"regexp"
	"strconv"
	"time"

	"uwsgi-log-stats/internal/models"
	"uwsgi-log-stats/internal/shared/metrics"
)

// LineTimestampLayout is the request time as uWSGI prints it, e.g. "Wed Oct 15 12:00:03 2026".
// The day may be space padded.
const LineTimestampLayout = "Mon Jan _2 15:04:05 2006"

// linePattern captures the request fields of the default uWSGI request log line.
// It is searched, not anchored: anything before "[pid: " and after the
// header byte count is ignored.
var linePattern = regexp.MustCompile(
	`\[pid: .*?in (?P<vars>\d+) bytes.* \[(?P<date>.*)\]` +
		` (?P<method>.*) /.*? generated (?P<generated>\d+)` +
		` .*? \(HTTP/.*? (?P<code>\d+)\) .*? headers in (?P<head>\d+)`)

var (
	groupVars      = linePattern.SubexpIndex("vars")
	groupDate      = linePattern.SubexpIndex("date")
	groupMethod    = linePattern.SubexpIndex("method")
	groupGenerated = linePattern.SubexpIndex("generated")
	groupCode      = linePattern.SubexpIndex("code")
	groupHead      = linePattern.SubexpIndex("head")
)

//go:generate mockgen -source=line_extractor.go -destination=./mocks/line_extractor_mock.go -package=mocks
type LineExtractor interface {
	// Extract returns (nil, nil) when line is not a request line.
	// A request line whose timestamp cannot be parsed is an error.
	Extract(line string) (*models.LogRecord, error)
}

type lineExtractor struct{}

func NewLineExtractor() LineExtractor {
	return &lineExtractor{}
}

func (e *lineExtractor) Extract(line string) (*models.LogRecord, error) {
	match := linePattern.FindStringSubmatch(line)
	if match == nil {
		metricLinesExtractedTotal.WithLabelValues(resultNoMatch, metrics.ValueNoError).Inc()
		return nil, nil
	}

	timestamp, err := time.Parse(LineTimestampLayout, match[groupDate])
	if err != nil {
		svcErr := errMalformedLogTimestamp(match[groupDate], err)
		metricLinesExtractedTotal.WithLabelValues(resultMatched, svcErr.Code).Inc()
		return nil, svcErr
	}

	record := &models.LogRecord{
		Timestamp:      timestamp,
		Method:         match[groupMethod],
		ResponseCode:   match[groupCode],
		BytesIn:        parseByteCount(match[groupVars]),
		BytesGenerated: parseByteCount(match[groupGenerated]),
		HeaderBytes:    parseByteCount(match[groupHead]),
	}

	metricLinesExtractedTotal.WithLabelValues(resultMatched, metrics.ValueNoError).Inc()
	return record, nil
}

// parseByteCount converts a \d+ group; values beyond uint64 saturate.
func parseByteCount(digits string) uint64 {
	n, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return ^uint64(0)
	}
	return n
}
