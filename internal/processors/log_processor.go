package processors

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"uwsgi-log-stats/internal/aggregators"
	"uwsgi-log-stats/internal/extractors"
	"uwsgi-log-stats/internal/models"
	"uwsgi-log-stats/internal/shared/filestorages"
	"uwsgi-log-stats/internal/shared/loggers"
)

// AggregatorFactory creates the state of one run.
type AggregatorFactory func() aggregators.Aggregator

// LogProcessor runs a single pass over one log file:
//
//	read line -> extract -> window filter -> aggregate
//
// and summarizes after EOF. Every call starts from an empty aggregator, so
// processing the same file twice with the same window gives the same summary.
//
//go:generate mockgen -source=log_processor.go -destination=./mocks/log_processor_mock.go -package=mocks
type LogProcessor interface {
	Process(ctx context.Context, key string, window models.TimeWindow) (*models.Summary, error)
}

type logProcessor struct {
	fileStorage   filestorages.FileStorage
	lineExtractor extractors.LineExtractor
	newAggregator AggregatorFactory
}

func NewLogProcessor(fileStorage filestorages.FileStorage, lineExtractor extractors.LineExtractor, newAggregator AggregatorFactory) LogProcessor {
	return &logProcessor{
		fileStorage:   fileStorage,
		lineExtractor: lineExtractor,
		newAggregator: newAggregator,
	}
}

func (p *logProcessor) Process(ctx context.Context, key string, window models.TimeWindow) (*models.Summary, error) {
	logger := loggers.Ctx(ctx).With().Str(loggers.FieldComponent, "log_processor").Logger()
	logger.Debug().
		Str(loggers.FieldFile, key).
		Time(loggers.FieldWindowStart, window.Start).
		Time(loggers.FieldWindowEnd, window.End).
		Msg("started processing log file")

	readCloser, err := p.fileStorage.Get(ctx, key)
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, errLogFileNotFound(key, err)
		}
		return nil, errLogFileUnreadable(key, err)
	}
	defer readCloser.Close()

	aggregator := p.newAggregator()
	stats, err := p.scan(ctx, readCloser, window, aggregator)
	if err != nil {
		return nil, err
	}

	summary := aggregator.Summarize()
	summary.Window = window

	logger.Info().
		Str(loggers.FieldFile, key).
		Msgf("processed %d lines: %d in window, %d out of window, %d skipped",
			stats.lines, stats.inWindow, stats.outOfWindow, stats.skipped)

	return summary, nil
}

type scanStats struct {
	lines       int
	inWindow    int
	outOfWindow int
	skipped     int
}

// scan reads r line by line without a line length limit.
func (p *logProcessor) scan(ctx context.Context, r io.Reader, window models.TimeWindow, aggregator aggregators.Aggregator) (scanStats, error) {
	var stats scanStats
	reader := bufio.NewReader(r)

	for {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		line, readErr := reader.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return stats, errLogFileReadFailed(stats.lines+1, readErr)
		}
		if line == "" && readErr == io.EOF {
			return stats, nil
		}
		stats.lines++

		record, err := p.lineExtractor.Extract(strings.TrimRight(line, "\r\n"))
		if err != nil {
			loggers.Ctx(ctx).Error().Err(err).Int(loggers.FieldLineNumber, stats.lines).Msg("failed to extract log line")
			return stats, fmt.Errorf("line %d: %w", stats.lines, err)
		}

		switch {
		case record == nil:
			stats.skipped++
			metricLinesProcessedTotal.WithLabelValues(resultSkipped).Inc()
		case !window.Contains(record.Timestamp):
			stats.outOfWindow++
			metricLinesProcessedTotal.WithLabelValues(resultOutOfWindow).Inc()
		default:
			stats.inWindow++
			aggregator.Update(record)
			metricLinesProcessedTotal.WithLabelValues(resultInWindow).Inc()
		}

		if readErr == io.EOF {
			return stats, nil
		}
	}
}
