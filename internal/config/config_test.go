package config

import (
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_Config_EnvironmentOverrideWorksCorrect(t *testing.T) {
	override := Config{
		API: APIConfig{
			Key:          "overrideKey",
			DefaultModel: "super_duper_model",
			BaseURL:      "https://openrouter.example.com/api/v1",
		},
		Server: ServerConfig{
			Port:        8181,
			MetricsPort: 9191,
		},
		Logger: LoggerConfig{
			LogLevel: LevelDebug,
			AppName:  "override-app",
			LokiURL:  "https://loki.example.com/push",
		},
	}
	os.Setenv("CONFIG_PATH", "../../configs/config.yaml")

	os.Setenv("OPENROUTER_API_KEY", override.API.Key)
	os.Setenv("OPENROUTER_MODEL", override.API.DefaultModel)
	os.Setenv("OPENROUTER_BASE_URL", override.API.BaseURL)
	os.Setenv("PORT", strconv.Itoa(override.Server.Port))
	os.Setenv("METRICS_PORT", strconv.Itoa(override.Server.MetricsPort))
	os.Setenv("LOG_LEVEL", string(override.Logger.LogLevel))
	os.Setenv("APP_NAME", override.Logger.AppName)
	os.Setenv("LOKI_URL", override.Logger.LokiURL)

	cfg := Get()

	assert.Equal(t, override.API.Key, cfg.API.Key)
	assert.Equal(t, override.API.DefaultModel, cfg.API.DefaultModel)
	assert.Equal(t, override.API.BaseURL, cfg.API.BaseURL)
	assert.Equal(t, override.Server.Port, cfg.Server.Port)
	assert.Equal(t, override.Server.MetricsPort, cfg.Server.MetricsPort)
	assert.Equal(t, override.Logger.LogLevel, cfg.Logger.LogLevel)
	assert.Equal(t, override.Logger.AppName, cfg.Logger.AppName)
	assert.Equal(t, override.Logger.LokiURL, cfg.Logger.LokiURL)
}

func Test_APIConfig_Validate_WithEmptyKey_ShouldPass(t *testing.T) {
	cfg := APIConfig{
		DefaultModel:   "some/model",
		BaseURL:        "https://openrouter.ai/api/v1",
		RequestTimeout: time.Minute,
	}

	assert.NoError(t, cfg.validate())
}

func Test_APIConfig_Validate_WithoutModel_ShouldFail(t *testing.T) {
	cfg := APIConfig{BaseURL: "https://openrouter.ai/api/v1"}

	assert.Error(t, cfg.validate())
}

func Test_ServerConfig_Validate_WithClashingPorts_ShouldFail(t *testing.T) {
	cfg := ServerConfig{Port: 8080, MetricsPort: 8080, SessionTTL: time.Hour}

	assert.Error(t, cfg.validate())
}
