// Package config collects service configuration from environment variables.
package config

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	// Load .env file to environments
	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog/log"

	"devagent-backend/internal/utilities"
)

// Environments accepted in APP_ENV
const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)

// Config is runtime configuration of API server
type Config struct {
	Environment string
	Port        int
	LogLevel    string

	SecretKey      string
	AccessTokenTTL time.Duration

	AllowOrigins []string

	RateLimitPerSecond uint
	BodyLimitBytes     int64

	// RedisURL selects redis backed rate limiting and token blacklist when set
	RedisURL string
}

// Load reads configuration from environment. Missing secret key is generated
// outside production.
func Load() (*Config, error) {
	cfg := &Config{
		Environment:        strings.ToLower(getEnv("APP_ENV", EnvDevelopment)),
		Port:               getEnvAsInt("PORT", 8080),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		SecretKey:          getEnv("SECRET_KEY", ""),
		AccessTokenTTL:     time.Duration(getEnvAsInt("ACCESS_TOKEN_TTL_MINUTES", 60)) * time.Minute,
		AllowOrigins:       splitList(getEnv("ALLOW_ORIGIN", "http://localhost:3000")),
		RateLimitPerSecond: uint(max(getEnvAsInt("RATE_LIMIT_REQUESTS_PER_SECOND", 5), 1)),
		BodyLimitBytes:     int64(getEnvAsInt("BODY_LIMIT_KB", 64)) * 1024,
		RedisURL:           getEnv("REDIS_URL", ""),
	}

	if !utilities.Contains([]string{EnvDevelopment, EnvTest, EnvProduction}, cfg.Environment) {
		return nil, fmt.Errorf("APP_ENV must be one of development, test, production, got %q", cfg.Environment)
	}
	if cfg.AccessTokenTTL <= 0 {
		return nil, fmt.Errorf("ACCESS_TOKEN_TTL_MINUTES must be positive")
	}

	if cfg.SecretKey == "" {
		if cfg.IsProduction() {
			return nil, fmt.Errorf("SECRET_KEY is required in production")
		}
		key, err := generateRandomKey(32)
		if err != nil {
			return nil, err
		}
		cfg.SecretKey = key
		log.Warn().Msg("Generated random SECRET_KEY, tokens will not survive restart")
	}

	return cfg, nil
}

// IsProduction reports whether service runs in production
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func splitList(value string) []string {
	out := []string{}
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func generateRandomKey(length int) (string, error) {
	key := make([]byte, length)
	if _, err := rand.Read(key); err != nil {
		return "", fmt.Errorf("failed to generate random key: %w", err)
	}
	return base64.StdEncoding.EncodeToString(key), nil
}
