package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads the YAML file at path (optional when empty) and applies APP_* env overrides,
// e.g. APP_PAGINATION_MAX_PAGE_SIZE overrides pagination.max_page_size.
// Every scalar key can be overridden; the logger.fields map is file-only.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config file not found: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	config.inheritLoggerFields()

	if err := validator.New().Struct(&config); err != nil {
		return nil, fmt.Errorf("config validation error: %w", err)
	}
	return &config, nil
}

// setDefaults registers every key so AutomaticEnv can override keys missing from the file.
func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "pagewindow")
	v.SetDefault("app.version", "0.1.0")
	v.SetDefault("app.env", "prod")
	v.SetDefault("app.host", "0.0.0.0")
	v.SetDefault("app.port", 8080)
	v.SetDefault("app.shutdown_timeout", 15*time.Second)

	v.SetDefault("logger.level", "")
	v.SetDefault("logger.format", "")
	v.SetDefault("logger.output_target", "")
	v.SetDefault("logger.time_field", "")
	v.SetDefault("logger.time_format", "")
	v.SetDefault("logger.service_name", "")
	v.SetDefault("logger.service_version", "")
	v.SetDefault("logger.env", "")
	v.SetDefault("logger.with_caller", false)
	v.SetDefault("logger.stacktrace", false)

	v.SetDefault("pagination.default_page_size", 10)
	v.SetDefault("pagination.default_window_size", 5)
	v.SetDefault("pagination.max_page_size", 100)
	v.SetDefault("pagination.max_actions", 100)
}

func (c *Config) inheritLoggerFields() {
	if c.Logger.Env == "" {
		c.Logger.Env = c.App.Env
	}
	if c.Logger.ServiceName == "" {
		c.Logger.ServiceName = c.App.Name
	}
	if c.Logger.ServiceVersion == "" {
		c.Logger.ServiceVersion = c.App.Version
	}
}
