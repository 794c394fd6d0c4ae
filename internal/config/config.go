package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/tair/dineboard/pkg/database"
)

// SnapshotBackend selects where the state snapshot is persisted
const (
	SnapshotBackendNone     = "none"
	SnapshotBackendRedis    = "redis"
	SnapshotBackendPostgres = "postgres"
)

// Config holds the admin service configuration
type Config struct {
	ServiceName   string
	Environment   string
	LogLevel      string
	HTTPPort      string
	EnableTracing bool

	// Snapshot persistence
	SnapshotBackend  string
	SnapshotKey      string
	SnapshotInterval time.Duration
	RedisAddr        string
	RedisPassword    string
	Database         database.Config

	// Kafka (empty brokers disables event publishing)
	KafkaBrokers []string

	// Domain behavior
	RestockClamp      bool // clamp restocks at maxStock instead of allowing overflow
	ExpiryHorizonDays int  // horizon for the "expiring" inventory flag
}

// Load reads configuration from the environment
func Load() *Config {
	return &Config{
		ServiceName:   getEnv("SERVICE_NAME", "dineboard-admin"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		HTTPPort:      getEnv("HTTP_PORT", "8080"),
		EnableTracing: getBool("TRACING_ENABLED", false),

		SnapshotBackend:  getEnv("SNAPSHOT_BACKEND", SnapshotBackendNone),
		SnapshotKey:      getEnv("SNAPSHOT_KEY", "dineboard:snapshot"),
		SnapshotInterval: getDuration("SNAPSHOT_INTERVAL", 2*time.Second),
		RedisAddr:        getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:    getEnv("REDIS_PASSWORD", ""),
		Database: database.Config{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "dineboard"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},

		KafkaBrokers: getList("KAFKA_BROKERS", nil),

		RestockClamp:      getBool("INVENTORY_RESTOCK_CLAMP", false),
		ExpiryHorizonDays: getInt("INVENTORY_EXPIRY_HORIZON_DAYS", 7),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.ParseBool(value)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		parsed, err := time.ParseDuration(value)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
