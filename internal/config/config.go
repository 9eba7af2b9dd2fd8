package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Fetch   FetchConfig
	Build   BuildConfig
	Logging LogConfig
	Notify  NotifyConfig
}

// FetchConfig holds documentation-site client configuration.
type FetchConfig struct {
	BaseURL      string        `envconfig:"BASE_URL" default:"https://docs.aws.amazon.com/service-authorization/latest/reference"`
	TOCURL       string        `envconfig:"TOC_URL" default:"https://docs.aws.amazon.com/service-authorization/latest/reference/toc-contents.json"`
	Timeout      time.Duration `envconfig:"FETCH_TIMEOUT" default:"30s"`
	RetryMax     int           `envconfig:"FETCH_RETRY_MAX" default:"3"`
	RetryWaitMin time.Duration `envconfig:"FETCH_RETRY_WAIT_MIN" default:"1s"`
	RetryWaitMax time.Duration `envconfig:"FETCH_RETRY_WAIT_MAX" default:"30s"`
	RateLimit    float64       `envconfig:"FETCH_RATE_LIMIT" default:"10"`
}

// BuildConfig holds catalog build configuration.
type BuildConfig struct {
	Workers int `envconfig:"BUILD_WORKERS" default:"8"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// NotifyConfig holds run-notification configuration.
type NotifyConfig struct {
	// WebhookURL receives a summary message after each run when set.
	WebhookURL string `envconfig:"WEBHOOK" default:""`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}
