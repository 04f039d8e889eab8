// internal/infrastructure/config/config.go
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// History backends
const (
	HistoryMemory = "memory"
	HistoryMongo  = "mongo"
)

// Config holds all configuration for the application
type Config struct {
	// App
	AppVersion string
	LogLevel   string

	// Server
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// Calendar
	CalendarTimezone string

	// History
	HistoryBackend string
	HistoryLimit   int

	// MongoDB
	MongoURI      string
	MongoDB       string
	MongoUser     string
	MongoPassword string

	// Postgres reference data
	PostgresDSN string

	// Gmail
	GmailClientID     string
	GmailClientSecret string
	GmailRefreshToken string
	GmailPollInterval time.Duration

	// Cron spec for returning stale emails to the queue
	PendingSweepSchedule string

	// Notifications
	NotifyEndpoint  string
	NotifyToken     string
	NotifyCompanyID string
	NotifyAgentID   string
	NotifyPhone     string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		AppVersion: getEnv("APP_VERSION", "1.0.0"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),

		Port:         getEnv("PORT", "8080"),
		ReadTimeout:  time.Duration(getEnvAsInt("READ_TIMEOUT", 30)) * time.Second,
		WriteTimeout: time.Duration(getEnvAsInt("WRITE_TIMEOUT", 30)) * time.Second,

		CalendarTimezone: getEnv("CALENDAR_TIMEZONE", ""),

		HistoryBackend: strings.ToLower(getEnv("HISTORY_BACKEND", HistoryMemory)),
		HistoryLimit:   getEnvAsInt("HISTORY_LIMIT", 500),

		MongoURI:      getEnv("MONGODB_DSN", "mongodb://localhost:27017"),
		MongoDB:       getEnv("MONGO_DB", "flightcal"),
		MongoUser:     getEnv("MONGO_USER", ""),
		MongoPassword: getEnv("MONGO_PASSWORD", ""),

		PostgresDSN: getEnv("POSTGRES_DSN", ""),

		GmailClientID:     getEnv("GMAIL_CLIENT_ID", ""),
		GmailClientSecret: getEnv("GMAIL_CLIENT_SECRET", ""),
		GmailRefreshToken: getEnv("GMAIL_REFRESH_TOKEN", ""),
		GmailPollInterval: time.Duration(getEnvAsInt("GMAIL_POLL_INTERVAL", 60)) * time.Second,

		PendingSweepSchedule: getEnv("PENDING_SWEEP_SCHEDULE", "@every 30s"),

		NotifyEndpoint:  getEnv("NOTIFY_ENDPOINT", ""),
		NotifyToken:     getEnv("NOTIFY_TOKEN", ""),
		NotifyCompanyID: getEnv("NOTIFY_COMPANY_ID", ""),
		NotifyAgentID:   getEnv("NOTIFY_AGENT_ID", ""),
		NotifyPhone:     getEnv("NOTIFY_PHONE", ""),
	}

	return config, nil
}

// GmailEnabled reports whether Gmail credentials are configured
func (c *Config) GmailEnabled() bool {
	return c.GmailClientID != "" && c.GmailClientSecret != "" && c.GmailRefreshToken != ""
}

// NotifyEnabled reports whether flight notifications can be delivered
func (c *Config) NotifyEnabled() bool {
	return c.NotifyEndpoint != "" && c.NotifyPhone != ""
}

// Location is the zone flight times are interpreted in. An empty or unknown
// CALENDAR_TIMEZONE means the host's local zone.
func (c *Config) Location() *time.Location {
	if c.CalendarTimezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.CalendarTimezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// Helper functions to get environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
