package configs

import (
	"fmt"
	"strings"

	"uwsgi-log-stats/internal/shared/validators"

	"github.com/spf13/viper"
)

const envPrefix = "UWSGI_STATS"

const (
	defaultLogLevel = "warn"
)

// LoadConfig reads configuration from an optional YAML file and the environment, then validates it.
// An empty configPath means defaults plus environment overrides only.
var LoadConfig = func(configPath string) (*Config, error) {
	v := viper.New()
	v.SetDefault("log.level", defaultLogLevel)
	v.SetDefault("report.dir", "")
	v.SetDefault("metrics.textfile", "")

	// Environment overrides, e.g. UWSGI_STATS_LOG_LEVEL=debug
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read from file
	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", configPath, err)
		}
	}

	// Unmarshal into Config
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	validate := validators.New()
	if err := validate.Struct(&cfg); err != nil {
		var validationErrors []string
		if ve, ok := err.(validators.ValidationErrors); ok {
			for _, e := range ve {
				validationErrors = append(validationErrors, formatValidationError(e))
			}
		}
		return nil, fmt.Errorf("config validation failed: %s", strings.Join(validationErrors, ", "))
	}

	return &cfg, nil
}

// formatValidationError formats a single validation error into a readable string.
func formatValidationError(e validators.FieldError) string {
	field := e.Field()
	tag := e.Tag()

	// Build field path (e.g., "log.level")
	if e.StructNamespace() != "" {
		// "Config.Log.Level" -> "log.level"
		parts := strings.Split(e.StructNamespace(), ".")
		if len(parts) >= 2 {
			field = strings.ToLower(strings.Join(parts[1:], "."))
		}
	}

	switch tag {
	case "required":
		return fmt.Sprintf("%s (required)", field)
	case validators.TagLogLevel:
		return fmt.Sprintf("%s (unknown log level %q)", field, e.Value())
	case "endswith":
		return fmt.Sprintf("%s (endswith=%s)", field, e.Param())
	default:
		return fmt.Sprintf("%s (%s)", field, tag)
	}
}
