package loggers

const (
	FieldApp       = "app"
	FieldComponent = "component"
	FieldRunID     = "run_id"

	FieldFile        = "file"
	FieldLineNumber  = "line_number"
	FieldWindowStart = "window_start"
	FieldWindowEnd   = "window_end"

	FieldDuration   = "duration"
	FieldErrorCode  = "error_code"
	FieldReportKey  = "report_key"
	FieldMetricPath = "metric_path"
)
