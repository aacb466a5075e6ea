package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"hostpro/database"
	"hostpro/logging"
)

// Store backends for client preferences.
const (
	StoreBackendSQLite = "sqlite"
	StoreBackendPebble = "pebble"
	StoreBackendMemory = "memory"
)

// AppConfig holds application-wide system configuration.
type AppConfig struct {
	HTTPAddr    string
	HTTPLogPath string
	Database    *database.Config
	Logging     *logging.Config
	Store       *StoreConfig
	Web         *WebConfig
	UI          *UIConfig
}

// StoreConfig selects and configures the preference store backend.
type StoreConfig struct {
	Backend    string
	PebblePath string
}

// WebConfig holds HTTP presentation settings.
type WebConfig struct {
	CookieSecure      bool
	EnableCompression bool
	PrettyHTML        bool
}

// UIConfig holds behaviour knobs for the simulated front-end.
type UIConfig struct {
	ToastDefaultDuration  time.Duration
	SimulatedLatencyScale float64
	ContextIdleTTL        time.Duration
}

// LoadAppConfigFromEnv loads complete application configuration from environment variables.
func LoadAppConfigFromEnv() *AppConfig {
	return &AppConfig{
		HTTPAddr:    getEnvWithDefault("HTTP_ADDR", ":8080"),
		HTTPLogPath: getEnvWithDefault("HTTP_LOG_PATH", ""),
		Database:    LoadDatabaseConfigFromEnv(),
		Logging:     LoadLoggingConfigFromEnv(),
		Store:       LoadStoreConfigFromEnv(),
		Web:         LoadWebConfigFromEnv(),
		UI:          LoadUIConfigFromEnv(),
	}
}

// LoadDatabaseConfigFromEnv loads database configuration from environment variables.
func LoadDatabaseConfigFromEnv() *database.Config {
	return &database.Config{
		Path:              getEnvWithDefault("DB_PATH", "./hostpro.db"),
		MaxOpenConns:      getEnvIntWithDefault("DB_MAX_OPEN_CONNS", 25),
		MaxIdleConns:      getEnvIntWithDefault("DB_MAX_IDLE_CONNS", 5),
		ConnMaxLifetime:   getEnvDurationWithDefault("DB_CONN_MAX_LIFETIME", time.Hour),
		ConnMaxIdleTime:   getEnvDurationWithDefault("DB_CONN_MAX_IDLE_TIME", 15*time.Minute),
		BusyTimeoutMs:     getEnvIntWithDefault("DB_BUSY_TIMEOUT_MS", 5000),
		EnableForeignKeys: getEnvBoolWithDefault("DB_ENABLE_FOREIGN_KEYS", true),
		EnableWAL:         getEnvBoolWithDefault("DB_ENABLE_WAL", true),
	}
}

// LoadLoggingConfigFromEnv loads logging configuration from environment variables.
func LoadLoggingConfigFromEnv() *logging.Config {
	return &logging.Config{
		Level:  getEnvWithDefault("LOG_LEVEL", "info"),
		Format: getEnvWithDefault("LOG_FORMAT", "json"),
		Output: getEnvWithDefault("LOG_OUTPUT", "stdout"),
	}
}

// LoadStoreConfigFromEnv loads preference store configuration from environment variables.
func LoadStoreConfigFromEnv() *StoreConfig {
	backend := strings.ToLower(strings.TrimSpace(getEnvWithDefault("STORE_BACKEND", StoreBackendSQLite)))
	switch backend {
	case StoreBackendSQLite, StoreBackendPebble, StoreBackendMemory:
	default:
		backend = StoreBackendSQLite
	}
	return &StoreConfig{
		Backend:    backend,
		PebblePath: getEnvWithDefault("PEBBLE_PATH", "./hostpro-prefs"),
	}
}

// LoadWebConfigFromEnv loads HTTP presentation settings from environment variables.
func LoadWebConfigFromEnv() *WebConfig {
	return &WebConfig{
		CookieSecure:      getEnvBoolWithDefault("COOKIE_SECURE", false),
		EnableCompression: getEnvBoolWithDefault("ENABLE_COMPRESSION", true),
		PrettyHTML:        getEnvBoolWithDefault("PRETTY_HTML", false),
	}
}

// LoadUIConfigFromEnv loads simulated front-end behaviour from environment variables.
func LoadUIConfigFromEnv() *UIConfig {
	scale := getEnvFloatWithDefault("SIMULATED_LATENCY_SCALE", 1.0)
	if scale < 0 {
		scale = 0
	}
	return &UIConfig{
		ToastDefaultDuration:  getEnvDurationWithDefault("TOAST_DEFAULT_DURATION", 3*time.Second),
		SimulatedLatencyScale: scale,
		ContextIdleTTL:        getEnvDurationWithDefault("CONTEXT_IDLE_TTL", 30*time.Minute),
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseBool(v string, def bool) bool {
	v = strings.TrimSpace(strings.ToLower(v))
	switch v {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}

// Helper functions for environment variable parsing.
func getEnvIntWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvFloatWithDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvBoolWithDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return parseBool(value, defaultValue)
	}
	return defaultValue
}

func getEnvDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
