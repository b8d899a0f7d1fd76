package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config - настройки консоли инцидентов
type Config struct {
	HTTPPort  string `env:"HTTP_PORT" envDefault:"3000"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Remote incident service
	APIBaseURL   string        `env:"API_BASE_URL" envDefault:"http://localhost:8080/api/v1/incident_reporting"`
	MediaBaseURL string        `env:"MEDIA_BASE_URL" envDefault:"http://localhost:8080/mediafiles"`
	APITimeout   time.Duration `env:"API_TIMEOUT" envDefault:"30s"`

	// Cache Config
	ChoicesTTL     time.Duration `env:"CHOICES_TTL" envDefault:"5m"`
	QueryStaleTime time.Duration `env:"QUERY_STALE_TIME" envDefault:"0s"`
	CacheKeyPrefix string        `env:"CACHE_KEY_PREFIX" envDefault:"incident-console"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`
}

const (
	defaultAPIBaseURL   = "http://localhost:8080/api/v1/incident_reporting"
	defaultMediaBaseURL = "http://localhost:8080/mediafiles"
)

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{
		HTTPPort:       getEnv("HTTP_PORT", "3000"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "json"),
		APIBaseURL:     getEnv("API_BASE_URL", defaultAPIBaseURL),
		MediaBaseURL:   getEnv("MEDIA_BASE_URL", defaultMediaBaseURL),
		APITimeout:     getEnvAsDuration("API_TIMEOUT", 30*time.Second),
		ChoicesTTL:     getEnvAsDuration("CHOICES_TTL", 5*time.Minute),
		QueryStaleTime: getEnvAsDuration("QUERY_STALE_TIME", 0),
		CacheKeyPrefix: getEnv("CACHE_KEY_PREFIX", "incident-console"),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisPass:      os.Getenv("REDIS_PASSWORD"),
		RedisDB:        getEnvAsInt("REDIS_DB", 0),
	}

	if err := validateURL("API_BASE_URL", cfg.APIBaseURL); err != nil {
		return nil, err
	}
	if err := validateURL("MEDIA_BASE_URL", cfg.MediaBaseURL); err != nil {
		return nil, err
	}
	if cfg.APITimeout <= 0 {
		cfg.APITimeout = 30 * time.Second
	}

	return cfg, nil
}

func validateURL(name, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s is not a valid url: %w", name, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%s must be an absolute http(s) url, got %q", name, raw)
	}
	return nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
