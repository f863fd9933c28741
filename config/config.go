package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Redis    RedisConfig
	Database DatabaseConfig
	Renderer RendererConfig
	App      AppConfig
}

type ServerConfig struct {
	Port        string
	CORSOrigins []string
}

type RedisConfig struct {
	Addr       string
	Password   string
	DB         int
	SessionTTL time.Duration
}

// DatabaseConfig configures the optional Postgres archive. An empty DSN
// disables it.
type DatabaseConfig struct {
	DSN           string
	RetentionDays int
}

type RendererConfig struct {
	Kind       string
	MermaidBin string
	URL        string
	Timeout    time.Duration
	RPS        float64
	Burst      int
	CacheTTL   time.Duration
}

type AppConfig struct {
	Environment string
	LogLevel    string
	Version     string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "8080"),
			CORSOrigins: getEnvAsList("CORS_ORIGINS", []string{"*"}),
		},
		Redis: RedisConfig{
			Addr:       getEnv("REDIS_ADDR", "localhost:6379"),
			Password:   getEnv("REDIS_PASSWORD", ""),
			DB:         getEnvAsInt("REDIS_DB", 0),
			SessionTTL: getEnvAsDuration("SESSION_TTL", 24*time.Hour),
		},
		Database: DatabaseConfig{
			DSN:           getEnv("DB_DSN", ""),
			RetentionDays: getEnvAsInt("ARCHIVE_RETENTION_DAYS", 30),
		},
		Renderer: RendererConfig{
			Kind:       getEnv("RENDERER", "cli"),
			MermaidBin: getEnv("MERMAID_BIN", "mmdc"),
			URL:        getEnv("RENDERER_URL", "https://kroki.io"),
			Timeout:    getEnvAsDuration("RENDER_TIMEOUT", 20*time.Second),
			RPS:        getEnvAsFloat("RENDER_RPS", 2),
			Burst:      getEnvAsInt("RENDER_BURST", 4),
			CacheTTL:   getEnvAsDuration("RENDER_CACHE_TTL", time.Hour),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Redis.Addr == "" {
		return fmt.Errorf("REDIS_ADDR is required")
	}

	switch c.Renderer.Kind {
	case "cli":
	case "http":
		if c.Renderer.URL == "" {
			return fmt.Errorf("RENDERER_URL is required when RENDERER=http")
		}
	default:
		return fmt.Errorf("RENDERER must be cli or http, got %q", c.Renderer.Kind)
	}

	if c.Database.RetentionDays < 0 {
		return fmt.Errorf("ARCHIVE_RETENTION_DAYS must not be negative")
	}

	return nil
}

// ArchiveEnabled reports whether a Postgres archive is configured.
func (c *Config) ArchiveEnabled() bool {
	return c.Database.DSN != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid number for %s, using default: %g", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration for %s, using default: %s", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	var out []string
	for _, v := range strings.Split(valueStr, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
