package configs

// Config holds all configuration for the application.
type Config struct {
	Log     LogConfig     `mapstructure:"log" validate:"required"`
	Report  ReportConfig  `mapstructure:"report"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,loglevel"`
}

// ReportConfig controls the JSON copy of each run summary.
// An empty Dir disables it.
type ReportConfig struct {
	Dir string `mapstructure:"dir"`
}

// MetricsConfig controls the Prometheus textfile written at the end of a run.
// An empty Textfile disables it.
type MetricsConfig struct {
	Textfile string `mapstructure:"textfile" validate:"omitempty,endswith=.prom"`
}
