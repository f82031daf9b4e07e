package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Gemini    GeminiConfig
	JobSearch JobSearchConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type DatabaseConfig struct {
	Host          string
	Port          string
	Name          string
	User          string
	Password      string
	SSLMode       string
	PoolMaxConns  int32
	RunMigrations bool
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

type JWTConfig struct {
	AccessSecret     string
	RefreshSecret    string
	AccessExpiresIn  time.Duration
	RefreshExpiresIn time.Duration
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type JobSearchConfig struct {
	BaseURL string
	APIKey  string
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.Database = DatabaseConfig{
		Host:          opt("DB_HOST"),
		Port:          opt("DB_PORT"),
		Name:          opt("DB_NAME"),
		User:          opt("DB_USER"),
		Password:      opt("DB_PASSWORD"),
		SSLMode:       opt("DB_SSL_MODE"),
		PoolMaxConns:  int32(optInt("DB_POOL_MAX_CONNS", 0)),
		RunMigrations: strings.EqualFold(opt("DB_RUN_MIGRATIONS"), "true"),
	}

	cfg.Redis = RedisConfig{
		Host:     defaultIfEmpty(opt("REDIS_HOST"), "localhost"),
		Port:     defaultIfEmpty(opt("REDIS_PORT"), "6379"),
		Password: opt("REDIS_PASSWORD"),
	}

	cfg.JWT = JWTConfig{
		AccessSecret:     req("JWT_ACCESS_SECRET"),
		RefreshSecret:    req("JWT_REFRESH_SECRET"),
		AccessExpiresIn:  optDuration("JWT_ACCESS_EXPIRES_IN", 15*time.Minute),
		RefreshExpiresIn: optDuration("JWT_REFRESH_EXPIRES_IN", 7*24*time.Hour),
	}

	cfg.Gemini = GeminiConfig{
		APIKey: opt("GEMINI_API_KEY"),
		Model:  opt("GEMINI_MODEL"),
	}

	cfg.JobSearch = JobSearchConfig{
		BaseURL: opt("JOBSEARCH_BASE_URL"),
		APIKey:  opt("JOBSEARCH_API_KEY"),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func defaultIfEmpty(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func optInt(key string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

func optDuration(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	v, err := time.ParseDuration(raw)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
