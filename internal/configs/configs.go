package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	LockBackendMemory = "memory"
	LockBackendRedis  = "redis"
)

type Config struct {
	AppURL                 string
	DatabaseDSN            string
	RateLimit              int
	ShutdownTimeoutSeconds int
	LogLevel               string

	GeminiAPIKey      string
	GeminiModel       string
	GeminiMaxTokens   int
	GeminiTemperature float32
	GeminiBaseURL     string

	LockBackend        string
	RedisAddr          string
	GoalLockTTLSeconds int
}

func Load() (Config, error) {
	appHost := getEnv("APP_HOST", "127.0.0.1")
	appPort := getEnv("APP_PORT", "8080")
	redisHost := getEnv("REDIS_HOST", "127.0.0.1")
	redisPort := getEnv("REDIS_PORT", "6379")

	var errs []string
	intVar := func(key string, def int) int {
		v, err := getEnvAsInt(key, def)
		if err != nil {
			errs = append(errs, err.Error())
		}
		return v
	}

	temperature, err := getEnvAsFloat("GEMINI_TEMPERATURE", 0.7)
	if err != nil {
		errs = append(errs, err.Error())
	}

	cfg := Config{
		AppURL:                 fmt.Sprintf("%s:%s", appHost, appPort),
		DatabaseDSN:            getEnv("DATABASE_DSN", "planner.db?_busy_timeout=5000&_foreign_keys=on"),
		RateLimit:              intVar("RATE_LIMIT_PER_MINUTE", 60),
		ShutdownTimeoutSeconds: intVar("SHUTDOWN_TIMEOUT_SECONDS", 20),
		LogLevel:               getEnv("LOG_LEVEL", "info"),

		GeminiAPIKey:      strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		GeminiModel:       getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		GeminiMaxTokens:   intVar("GEMINI_MAX_TOKENS", 2000),
		GeminiTemperature: float32(temperature),
		GeminiBaseURL:     os.Getenv("GEMINI_BASE_URL"),

		LockBackend:        strings.ToLower(getEnv("LOCK_BACKEND", LockBackendMemory)),
		RedisAddr:          fmt.Sprintf("%s:%s", redisHost, redisPort),
		GoalLockTTLSeconds: intVar("GOAL_LOCK_TTL_SECONDS", 10),
	}

	if len(errs) > 0 {
		return Config{}, fmt.Errorf("invalid configuration: %s", strings.Join(errs, "; "))
	}
	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validate(cfg Config) error {
	if cfg.DatabaseDSN == "" {
		return fmt.Errorf("DATABASE_DSN must not be empty")
	}
	if cfg.RateLimit <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be greater than 0")
	}
	if cfg.ShutdownTimeoutSeconds <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT_SECONDS must be greater than 0")
	}
	if cfg.GeminiMaxTokens <= 0 {
		return fmt.Errorf("GEMINI_MAX_TOKENS must be greater than 0")
	}
	if cfg.GeminiTemperature < 0 || cfg.GeminiTemperature > 2 {
		return fmt.Errorf("GEMINI_TEMPERATURE must be between 0 and 2")
	}
	if cfg.LockBackend != LockBackendMemory && cfg.LockBackend != LockBackendRedis {
		return fmt.Errorf("LOCK_BACKEND must be %q or %q", LockBackendMemory, LockBackendRedis)
	}
	if cfg.GoalLockTTLSeconds <= 0 {
		return fmt.Errorf("GOAL_LOCK_TTL_SECONDS must be greater than 0")
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) (int, error) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			return defaultVal, fmt.Errorf("invalid integer value for %s", key)
		}
		return i, nil
	}
	return defaultVal, nil
}

func getEnvAsFloat(key string, defaultVal float64) (float64, error) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		f, err := strconv.ParseFloat(v, 32)
		if err != nil {
			return defaultVal, fmt.Errorf("invalid number value for %s", key)
		}
		return f, nil
	}
	return defaultVal, nil
}
