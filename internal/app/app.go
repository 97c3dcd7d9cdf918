package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"uwsgi-log-stats/internal/aggregators"
	"uwsgi-log-stats/internal/cli"
	"uwsgi-log-stats/internal/extractors"
	"uwsgi-log-stats/internal/processors"
	"uwsgi-log-stats/internal/reporters"
	"uwsgi-log-stats/internal/shared/configs"
	"uwsgi-log-stats/internal/shared/filestorages"
	"uwsgi-log-stats/internal/shared/loggers"
	"uwsgi-log-stats/internal/shared/metrics"
	"uwsgi-log-stats/internal/shared/svcerrors"
	"uwsgi-log-stats/internal/shared/ulid"
	"uwsgi-log-stats/internal/stores"
)

// App holds all dependencies of one parser run.
type App struct {
	config    *configs.Config
	args      *cli.Args
	appLogger loggers.Logger
	out       io.Writer

	logKey       string
	logProcessor processors.LogProcessor
	reporter     reporters.SummaryReporter
	reportStore  stores.SummaryReportStore // nil when report.dir is unset
}

// New creates and initializes a new App instance. The summary is written to out.
func New(config *configs.Config, args *cli.Args, out io.Writer) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, cli.ProgramName).
		Logger()

	// Log file access: a storage rooted at the file's directory
	logStorage, logKey, err := filestorages.NewFileStorageForPath(args.FileName)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize log file storage: %w", err)
	}

	logProcessor := processors.NewLogProcessor(logStorage, extractors.NewLineExtractor(), aggregators.NewAggregator)

	// Optional JSON report of each run
	var reportStore stores.SummaryReportStore
	if config.Report.Dir != "" {
		reportStorage, err := filestorages.NewFileStorage(config.Report.Dir)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize report storage: %w", err)
		}
		reportStore = stores.NewSummaryReportStore(reportStorage)
	}

	return &App{
		config:       config,
		args:         args,
		appLogger:    appLogger,
		out:          out,
		logKey:       logKey,
		logProcessor: logProcessor,
		reporter:     reporters.NewTextReporter(),
		reportStore:  reportStore,
	}, nil
}

// Run processes the log file and prints the summary. Nothing is printed when
// processing fails.
func (app *App) Run(ctx context.Context) (err error) {
	runID := ulid.NewRunID()
	logger := app.appLogger.With().Str(loggers.FieldRunID, runID).Logger()
	ctx = logger.WithContext(ctx)

	startedAt := time.Now()
	defer func() {
		app.recordRun(ctx, time.Since(startedAt), err)
	}()

	logger.Info().
		Str(loggers.FieldFile, app.args.FileName).
		Msgf("starting run (log_level=%s, report_dir=%q, metrics_textfile=%q)",
			app.config.Log.Level,
			app.config.Report.Dir,
			app.config.Metrics.Textfile)

	summary, err := app.logProcessor.Process(ctx, app.logKey, app.args.Window)
	if err != nil {
		return err
	}
	summary.RunID = runID
	summary.File = app.args.FileName
	metricLastRunRequests.WithLabelValues().Set(float64(summary.TotalRequests))

	if err := app.reporter.Report(app.out, summary); err != nil {
		return errInternalReportWriteFailed(err)
	}

	if app.reportStore != nil {
		key, err := app.reportStore.Put(ctx, summary)
		if err != nil {
			return errInternalSummaryReportStoreFailed(err)
		}
		logger.Info().Str(loggers.FieldReportKey, key).Msg("summary report stored")
	}

	return nil
}

// recordRun counts the run and flushes the metrics textfile if configured.
// A failed flush is logged, it does not change the outcome of the run.
func (app *App) recordRun(ctx context.Context, elapsed time.Duration, runErr error) {
	logger := loggers.Ctx(ctx)

	errorCode := metrics.ValueNoError
	if runErr != nil {
		svcErr, ok := svcerrors.AsServiceError(runErr)
		if !ok {
			svcErr = svcerrors.NewInternalErrorUndefined(runErr)
		}
		errorCode = svcErr.Code
		logger.Error().Err(runErr).Str(loggers.FieldErrorCode, errorCode).Dur(loggers.FieldDuration, elapsed).Msg("run failed")
	} else {
		logger.Info().Dur(loggers.FieldDuration, elapsed).Msg("run finished")
	}
	metricRunsTotal.WithLabelValues(errorCode).Inc()

	if app.config.Metrics.Textfile == "" {
		return
	}
	if err := metrics.WriteTextfile(app.config.Metrics.Textfile); err != nil {
		logger.Warn().Err(err).Str(loggers.FieldMetricPath, app.config.Metrics.Textfile).Msg("failed to write metrics textfile")
		return
	}
	logger.Debug().Str(loggers.FieldMetricPath, app.config.Metrics.Textfile).Msg("metrics textfile written")
}
