package config

import (
	"os"
	"strconv"

	"syllabus-analyzer/internal/domain"
	apperrors "syllabus-analyzer/pkg/errors"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort         string
	MaxFileSize        int64
	LogLevel           string
	OpenAIKey          string
	OpenAIModel        string
	OpenAIBaseURL      string
	AnalysisMaxTokens  int
	AnalysisTimeoutSec int
}

// NewConfig creates a new configuration instance with default values
func NewConfig() domain.Config {
	return &AppConfig{
		// Cloud Run (and many PaaS) provide the listening port via PORT.
		// Keep SERVER_PORT for local/dev compatibility.
		ServerPort:         getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "8080")),
		MaxFileSize:        getEnvInt64OrDefault("MAX_FILE_SIZE", 15*1024*1024), // 15MB default
		LogLevel:           getEnvOrDefault("LOG_LEVEL", "info"),
		OpenAIKey:          getEnvOrDefault("OPENAI_API_KEY", ""),
		OpenAIModel:        getEnvOrDefault("OPENAI_MODEL", "gpt-3.5-turbo"),
		OpenAIBaseURL:      getEnvOrDefault("OPENAI_BASE_URL", ""),
		AnalysisMaxTokens:  getEnvIntOrDefault("ANALYSIS_MAX_TOKENS", 1000),
		AnalysisTimeoutSec: getEnvIntOrDefault("ANALYSIS_TIMEOUT_SEC", 60),
	}
}

// Validate reports configuration problems that must stop the run before the
// server starts. A missing API key means no analysis request can ever
// succeed, so we refuse to serve the upload API at all.
func Validate(cfg domain.Config) error {
	if cfg.GetOpenAIKey() == "" {
		return apperrors.NewConfigurationError("OPENAI_API_KEY is not set")
	}
	return nil
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetMaxFileSize returns the maximum allowed upload size
func (c *AppConfig) GetMaxFileSize() int64 {
	return c.MaxFileSize
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetOpenAIKey returns the completion API credential
func (c *AppConfig) GetOpenAIKey() string {
	return c.OpenAIKey
}

// GetOpenAIModel returns the completion model identifier
func (c *AppConfig) GetOpenAIModel() string {
	return c.OpenAIModel
}

// GetOpenAIBaseURL returns an override for the completion endpoint base URL.
// Empty means the provider default.
func (c *AppConfig) GetOpenAIBaseURL() string {
	return c.OpenAIBaseURL
}

// GetAnalysisMaxTokens returns the response token budget for one analysis
func (c *AppConfig) GetAnalysisMaxTokens() int {
	return c.AnalysisMaxTokens
}

// GetAnalysisTimeoutSec returns the bound on one completion request, in seconds
func (c *AppConfig) GetAnalysisTimeoutSec() int {
	return c.AnalysisTimeoutSec
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}
