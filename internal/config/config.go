package config

import (
	"time"

	"github.com/maxviazov/pagewindow/internal/logger"
)

type Config struct {
	App        AppConfig           `mapstructure:"app"`
	Logger     logger.LoggerConfig `mapstructure:"logger" validate:"-"` // validated by logger.New after its own defaults
	Pagination PaginationConfig    `mapstructure:"pagination"`
}

// AppConfig holds process-level settings for the HTTP server.
type AppConfig struct {
	Name            string        `mapstructure:"name" validate:"required"`
	Version         string        `mapstructure:"version" validate:"required"`
	Env             string        `mapstructure:"env" validate:"oneof=dev test staging prod"`
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port" validate:"gte=1,lte=65535"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// PaginationConfig supplies the service-side defaults and caps applied to incoming requests.
type PaginationConfig struct {
	DefaultPageSize   int `mapstructure:"default_page_size" validate:"gte=1"`
	DefaultWindowSize int `mapstructure:"default_window_size" validate:"gte=1"`
	MaxPageSize       int `mapstructure:"max_page_size" validate:"gtefield=DefaultPageSize"`
	MaxActions        int `mapstructure:"max_actions" validate:"gte=1"`
}
