package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// APIConfig configures the OpenRouter integration. Key may be empty: the
// process still starts and serves the catalog, but every chat attempt fails
// with a configuration error until the operator sets it.
type APIConfig struct {
	Key                  string        `mapstructure:"key"`
	DefaultModel         string        `mapstructure:"default_model"`
	BaseURL              string        `mapstructure:"base_url"`
	RequestTimeout       time.Duration `mapstructure:"request_timeout"`
	MaxRequestsPerMinute float32       `mapstructure:"max_requests_per_minute"`
	AvailabilityCron     string        `mapstructure:"availability_cron"`
}

func (config APIConfig) validate() error {

	if config.BaseURL == "" {
		return fmt.Errorf("missing variable: base_url")
	}

	if config.DefaultModel == "" {
		return fmt.Errorf("missing variable: default_model")
	}

	if config.RequestTimeout < 0 {
		return fmt.Errorf("request_timeout must be non-negative")
	}

	return nil
}

func (config APIConfig) bindEnvironmentVariables() error {
	var errs []error

	if err := viper.BindEnv("api.key", "OPENROUTER_API_KEY"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("api.default_model", "OPENROUTER_MODEL"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("api.base_url", "OPENROUTER_BASE_URL"); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return createMultiError(errs)
	}

	return nil
}
