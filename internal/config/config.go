package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr        string
	ShutdownTimeout time.Duration

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	CORSAllowedOrigins []string
	PollRatePerMinute  int
	PollRateBurst      int
	TrustProxyHeaders  bool

	LogLevel  string
	LogFormat string
}

// LoadDotEnv loads a .env file when one exists. The returned error is only
// informational; callers usually log it and continue.
func LoadDotEnv(files ...string) error {
	return godotenv.Load(files...)
}

// FromEnv reads configuration from environment variables, applying defaults.
func FromEnv() (Config, error) {
	cfg := Config{
		HTTPAddr:           getEnv("HTTP_ADDR", "0.0.0.0:8080"),
		DBHost:             getEnv("POSTGRES_HOST", "localhost"),
		DBPort:             getEnv("POSTGRES_PORT", "5432"),
		DBUser:             os.Getenv("POSTGRES_USER"),
		DBPassword:         os.Getenv("POSTGRES_PASSWORD"),
		DBName:             os.Getenv("POSTGRES_DB"),
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFormat:          getEnv("LOG_FORMAT", "json"),
	}

	var err error
	if cfg.ShutdownTimeout, err = time.ParseDuration(getEnv("SHUTDOWN_TIMEOUT", "30s")); err != nil {
		return Config{}, fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err)
	}
	if cfg.PollRatePerMinute, err = strconv.Atoi(getEnv("POLL_RATE_PER_MINUTE", "60")); err != nil {
		return Config{}, fmt.Errorf("invalid POLL_RATE_PER_MINUTE: %w", err)
	}
	if cfg.PollRateBurst, err = strconv.Atoi(getEnv("POLL_RATE_BURST", "10")); err != nil {
		return Config{}, fmt.Errorf("invalid POLL_RATE_BURST: %w", err)
	}
	if cfg.TrustProxyHeaders, err = strconv.ParseBool(getEnv("TRUST_PROXY_HEADERS", "false")); err != nil {
		return Config{}, fmt.Errorf("invalid TRUST_PROXY_HEADERS: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
