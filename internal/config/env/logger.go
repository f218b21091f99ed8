package env

import (
	"mining_backend/internal/config"
	"os"
)

const (
	logLevelEnvName  = "LOG_LEVEL"
	logFormatEnvName = "LOG_FORMAT"

	defaultLogLevel  = "info"
	defaultLogFormat = "text"
)

type loggerConfig struct {
	level  string
	format string
}

// NewLoggerConfig Уровень и формат логов, без переменных окружения - info/text
func NewLoggerConfig() config.LoggerConfig {
	level := os.Getenv(logLevelEnvName)
	if len(level) == 0 {
		level = defaultLogLevel
	}

	format := os.Getenv(logFormatEnvName)
	if len(format) == 0 {
		format = defaultLogFormat
	}

	return &loggerConfig{
		level:  level,
		format: format,
	}
}

func (cfg *loggerConfig) Level() string {
	return cfg.level
}

func (cfg *loggerConfig) Format() string {
	return cfg.format
}
