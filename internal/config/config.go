package config

import (
	"os"
	"strconv"
)

// Config holds the service configuration, loaded from environment
// variables with sensible development defaults
type Config struct {
	Environment string

	// Data store
	DBDriver    string
	SQLiteFile  string
	DatabaseURL string

	// NATS
	NATSURL     string
	NATSSubject string

	// ClickHouse (availability calibration, production only)
	ClickHouseAddr     string
	ClickHouseDB       string
	ClickHouseUser     string
	ClickHousePassword string

	// Draft defaults for sessions created without explicit settings
	TeamCount int
	UserSlot  int

	// Minimum undamped availability for a tier to count as the likely
	// target at a pick
	AvailabilityThreshold float64
}

// FromEnv loads configuration from the environment
func FromEnv() Config {
	return Config{
		Environment: getenv("ENVIRONMENT", "development"),

		DBDriver:    getenv("DB_DRIVER", "memory"),
		SQLiteFile:  getenv("SQLITE_FILE", "dev.sqlite"),
		DatabaseURL: os.Getenv("DATABASE_URL"),

		NATSURL:     getenv("NATS_URL", "nats://localhost:4222"),
		NATSSubject: getenv("NATS_SUBJECT", "draft.events"),

		ClickHouseAddr:     getenv("CLICKHOUSE_ADDR", "localhost:9000"),
		ClickHouseDB:       getenv("CLICKHOUSE_DB", "default"),
		ClickHouseUser:     getenv("CLICKHOUSE_USER", "default"),
		ClickHousePassword: os.Getenv("CLICKHOUSE_PASSWORD"),

		TeamCount: getenvInt("TEAM_COUNT", 10),
		UserSlot:  getenvInt("USER_SLOT", 5),

		AvailabilityThreshold: getenvFloat("AVAILABILITY_THRESHOLD", 0.5),
	}
}

// Development reports whether the service runs in development mode
func (c Config) Development() bool {
	return c.Environment == "" || c.Environment == "development"
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getenvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}
