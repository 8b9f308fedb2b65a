package helper

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/joho/godotenv"
)

const (
	EnvLogLevel         = "RAGFORMAT_LOG_LEVEL"
	EnvExtraChunkFields = "RAGFORMAT_EXTRA_CHUNK_FIELDS"
)

var ErrInvalidLogLevel = errors.New("invalid log level")

// Configuration holds the formatter settings read from the environment.
type Configuration struct {
	LogLevel         string
	ExtraChunkFields []string
}

// NewConfiguration reads the configuration from the environment.
// A .env file in the working directory is loaded first if it exists,
// already set variables are not overridden by it.
func NewConfiguration() (*Configuration, error) {
	_ = godotenv.Load()

	config := &Configuration{
		LogLevel:         strings.ToLower(strings.TrimSpace(os.Getenv(EnvLogLevel))),
		ExtraChunkFields: SplitFieldList(os.Getenv(EnvExtraChunkFields)),
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}

	if err := config.Validate(); err != nil {
		return nil, NewError("validate configuration", err)
	}

	return config, nil
}

// Validate checks the configuration values.
func (c *Configuration) Validate() error {
	if _, ok := logLevels[strings.ToLower(c.LogLevel)]; !ok {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}
	return nil
}

// SlogLevel returns the slog level for the configured log level, info if unset.
func (c *Configuration) SlogLevel() slog.Level {
	if level, ok := logLevels[strings.ToLower(c.LogLevel)]; ok {
		return level
	}
	return slog.LevelInfo
}

var logLevels = map[string]slog.Level{
	"":      slog.LevelInfo,
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// SplitFieldList splits a comma separated list of field names.
// Blank entries are dropped.
func SplitFieldList(value string) []string {
	fields := []string{}
	for _, field := range strings.Split(value, ",") {
		field = strings.TrimSpace(field)
		if field != "" {
			fields = append(fields, field)
		}
	}
	return fields
}

// SetTestConfigurationEnvs sets the configuration environment variables for the
// duration of the test.
func SetTestConfigurationEnvs(t *testing.T, logLevel string, extraChunkFields ...string) {
	t.Setenv(EnvLogLevel, logLevel)
	t.Setenv(EnvExtraChunkFields, strings.Join(extraChunkFields, ","))
}
