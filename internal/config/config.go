package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"pdf-extract-service/internal/domain"
)

const (
	defaultMaxRequestSize  int64 = 1 << 20
	defaultShutdownTimeout       = 10 * time.Second
	defaultAllowedOrigins        = "http://localhost:5173,http://localhost:3000"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort      string
	LogLevel        string
	PDFBackend      domain.PDFBackend
	MaxRequestSize  int64
	AllowedOrigins  []string
	ShutdownTimeout time.Duration
}

// NewConfig creates a new configuration instance with default values
func NewConfig() domain.Config {
	return &AppConfig{
		// Cloud Run (and many PaaS) provide the listening port via PORT.
		// Keep SERVER_PORT for local/dev compatibility.
		ServerPort:      getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "8080")),
		LogLevel:        getEnvOrDefault("LOG_LEVEL", "info"),
		PDFBackend:      domain.PDFBackend(strings.ToLower(getEnvOrDefault("PDF_BACKEND", string(domain.PDFBackendFitz)))),
		MaxRequestSize:  getEnvInt64OrDefault("MAX_REQUEST_SIZE", defaultMaxRequestSize),
		AllowedOrigins:  splitList(getEnvOrDefault("CORS_ALLOWED_ORIGINS", defaultAllowedOrigins)),
		ShutdownTimeout: getEnvDurationOrDefault("SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetPDFBackend returns the configured PDF parser name
func (c *AppConfig) GetPDFBackend() domain.PDFBackend {
	return c.PDFBackend
}

// GetMaxRequestSize returns the request body limit in bytes
func (c *AppConfig) GetMaxRequestSize() int64 {
	return c.MaxRequestSize
}

// GetAllowedOrigins returns the CORS origin allow-list
func (c *AppConfig) GetAllowedOrigins() []string {
	return c.AllowedOrigins
}

// GetShutdownTimeout returns how long in-flight requests get on shutdown
func (c *AppConfig) GetShutdownTimeout() time.Duration {
	return c.ShutdownTimeout
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil && intValue > 0 {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil && d > 0 {
			return d
		}
	}
	return defaultValue
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
