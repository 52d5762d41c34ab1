package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port           int           `mapstructure:"port"`
	MetricsPort    int           `mapstructure:"metrics_port"`
	AllowedOrigins []string      `mapstructure:"allowed_origins"`
	SessionTTL     time.Duration `mapstructure:"session_ttl"`
}

func (config ServerConfig) validate() error {

	if config.Port <= 0 {
		return fmt.Errorf("port must be positive")
	}

	if config.MetricsPort <= 0 {
		return fmt.Errorf("metrics_port must be positive")
	}

	if config.Port == config.MetricsPort {
		return fmt.Errorf("port and metrics_port must differ")
	}

	if config.SessionTTL <= 0 {
		return fmt.Errorf("session_ttl must be positive")
	}

	return nil
}

func (config ServerConfig) bindEnvironmentVariables() error {
	var errs []error

	if err := viper.BindEnv("server.port", "PORT"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("server.metrics_port", "METRICS_PORT"); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return createMultiError(errs)
	}

	return nil
}
