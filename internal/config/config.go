package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Storage drivers understood by the server.
const (
	DriverJSON     = "json"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort     string
	Debug          bool
	StorageDriver  string
	DataDir        string
	DatabaseDSN    string
	RedisAddr      string
	RedisDB        int
	RedisPass      string
	JWTSecret      string
	AdminUsername  string
	PartnerBaseURL string
	PartnerTimeout time.Duration
	DesignCacheTTL time.Duration
	SwaggerHost    string
}

// Load builds Config from environment with sensible defaults.
// A .env file in the working directory is applied first when present;
// variables already set in the environment win.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		Debug:          getEnvBool("APP_DEBUG", false),
		StorageDriver:  getEnv("STORAGE_DRIVER", DriverJSON),
		DataDir:        getEnv("DATA_DIR", "data"),
		DatabaseDSN:    os.Getenv("DATABASE_DSN"),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisDB:        getEnvInt("REDIS_DB", 0),
		RedisPass:      os.Getenv("REDIS_PASSWORD"),
		JWTSecret:      getEnv("JWT_SECRET", "myjwtsecret"),
		AdminUsername:  getEnv("ADMIN_USERNAME", "jazmy"),
		PartnerBaseURL: os.Getenv("PARTNER_BASE_URL"),
		PartnerTimeout: getEnvDuration("PARTNER_TIMEOUT", 10*time.Second),
		DesignCacheTTL: getEnvDuration("DESIGN_CACHE_TTL", 30*time.Second),
		SwaggerHost:    os.Getenv("SWAGGER_HOST"),
	}
}

// PartnerEnabled reports whether the home design partner integration is configured.
func (c *Config) PartnerEnabled() bool {
	return c.PartnerBaseURL != ""
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return def
}
