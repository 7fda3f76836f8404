package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Config is the service configuration, read from the environment. A .env file
// in the working directory is loaded by the entrypoint before New runs.
type Config struct {
	Port     string
	LogLevel string

	// StoreDriver selects the record store: json, sqlite or dynamodb.
	StoreDriver      string
	DataDir          string
	SQLitePath       string
	OrdersTable      string
	TechniciansTable string
	StoreTimeout     time.Duration

	AWSRegion          string
	DynamoDBEndpoint   string
	AWSAccessKeyID     string
	AWSSecretAccessKey string

	CollationLocale string

	AuditQueueSize   int
	AuditWorkers     int
	AuditTimeout     time.Duration
	AuditSinks       []string
	AuditRedisStream string
	AuditWebhookURL  string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	RateLimitRPS   float64
	RateLimitBurst int
}

func New() Config {
	dataDir := getEnv("DATA_DIR", "data")
	return Config{
		Port:     getEnv("PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		StoreDriver:      strings.ToLower(getEnv("STORE_DRIVER", "json")),
		DataDir:          dataDir,
		SQLitePath:       getEnv("SQLITE_PATH", filepath.Join(dataDir, "visits.db")),
		OrdersTable:      getEnv("ORDERS_TABLE", "orders"),
		TechniciansTable: getEnv("TECHNICIANS_TABLE", "technicians"),
		StoreTimeout:     getEnvDuration("STORE_TIMEOUT", 5*time.Second),

		AWSRegion:          getEnv("AWS_REGION", "us-east-1"),
		DynamoDBEndpoint:   getEnv("DYNAMODB_ENDPOINT", ""),
		AWSAccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", "local"),
		AWSSecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", "local"),

		CollationLocale: getEnv("COLLATION_LOCALE", "en"),

		AuditQueueSize:   getEnvInt("AUDIT_QUEUE_SIZE", 256),
		AuditWorkers:     getEnvInt("AUDIT_WORKERS", 2),
		AuditTimeout:     getEnvDuration("AUDIT_TIMEOUT", 5*time.Second),
		AuditSinks:       getEnvList("AUDIT_SINKS", []string{"log"}),
		AuditRedisStream: getEnv("AUDIT_REDIS_STREAM", "visits:audit"),
		AuditWebhookURL:  getEnv("AUDIT_WEBHOOK_URL", ""),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		RateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", 50),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 100),
	}
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return v
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v, err := strconv.ParseFloat(getEnv(key, ""), 64); err == nil {
		return v
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v, err := time.ParseDuration(getEnv(key, "")); err == nil && v > 0 {
		return v
	}
	return def
}

func getEnvList(key string, def []string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, ""), ",") {
		if part = strings.ToLower(strings.TrimSpace(part)); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
