package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/pflag"
)

// Config holds the configuration for a skyclock agent
type Config struct {
	// MQTT configuration
	MQTTBroker   string
	MQTTPort     int
	MQTTUser     string
	MQTTPassword string
	MQTTClientID string

	// Redis configuration
	RedisHost     string
	RedisPort     int
	RedisPassword string
	RedisDB       int

	// Postgres configuration (solar event archive)
	PostgresHost               string
	PostgresPort               int
	PostgresUser               string
	PostgresPassword           string
	PostgresDB                 string
	PostgresSSLMode            string
	PostgresMaxConnections     int
	PostgresMaxIdleConnections int
	PostgresConnMaxLifetime    time.Duration

	// Service configuration
	ServiceName string
	HealthPort  int
	LogLevel    string

	// Skyclock agent configuration
	ZonesFile         string
	TickIntervalSec   int
	SolarCacheSize    int
	WeatherTTLMinutes int
	StateTTLMinutes   int
	ArchiveEnabled    bool
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		MQTTBroker:   "localhost",
		MQTTPort:     1883,
		MQTTUser:     "",
		MQTTPassword: "",
		MQTTClientID: "",

		RedisHost:     "localhost",
		RedisPort:     6379,
		RedisPassword: "",
		RedisDB:       0,

		PostgresHost:               "localhost",
		PostgresPort:               5432,
		PostgresUser:               "skyclock",
		PostgresPassword:           "",
		PostgresDB:                 "skyclock",
		PostgresSSLMode:            "disable",
		PostgresMaxConnections:     10,
		PostgresMaxIdleConnections: 5,
		PostgresConnMaxLifetime:    30 * time.Minute,

		ServiceName: "skyclock-agent",
		HealthPort:  8080,
		LogLevel:    "info",

		ZonesFile:         "zones.yaml",
		TickIntervalSec:   1,
		SolarCacheSize:    60,
		WeatherTTLMinutes: 120,
		StateTTLMinutes:   10,
		ArchiveEnabled:    false,
	}
}

// LoadFromEnv loads configuration from environment variables with SKYCLOCK_ prefix
func (c *Config) LoadFromEnv() {
	// MQTT configuration
	if v := os.Getenv("SKYCLOCK_MQTT_BROKER"); v != "" {
		c.MQTTBroker = v
	}
	if v := os.Getenv("SKYCLOCK_MQTT_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.MQTTPort = port
		}
	}
	if v := os.Getenv("SKYCLOCK_MQTT_USER"); v != "" {
		c.MQTTUser = v
	}
	if v := os.Getenv("SKYCLOCK_MQTT_PASSWORD"); v != "" {
		c.MQTTPassword = v
	}
	if v := os.Getenv("SKYCLOCK_MQTT_CLIENT_ID"); v != "" {
		c.MQTTClientID = v
	}

	// Redis configuration
	if v := os.Getenv("SKYCLOCK_REDIS_HOST"); v != "" {
		c.RedisHost = v
	}
	if v := os.Getenv("SKYCLOCK_REDIS_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.RedisPort = port
		}
	}
	if v := os.Getenv("SKYCLOCK_REDIS_PASSWORD"); v != "" {
		c.RedisPassword = v
	}
	if v := os.Getenv("SKYCLOCK_REDIS_DB"); v != "" {
		if db, err := strconv.Atoi(v); err == nil {
			c.RedisDB = db
		}
	}

	// Postgres configuration
	if v := os.Getenv("SKYCLOCK_POSTGRES_HOST"); v != "" {
		c.PostgresHost = v
	}
	if v := os.Getenv("SKYCLOCK_POSTGRES_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.PostgresPort = port
		}
	}
	if v := os.Getenv("SKYCLOCK_POSTGRES_USER"); v != "" {
		c.PostgresUser = v
	}
	if v := os.Getenv("SKYCLOCK_POSTGRES_PASSWORD"); v != "" {
		c.PostgresPassword = v
	}
	if v := os.Getenv("SKYCLOCK_POSTGRES_DB"); v != "" {
		c.PostgresDB = v
	}
	if v := os.Getenv("SKYCLOCK_POSTGRES_SSLMODE"); v != "" {
		c.PostgresSSLMode = v
	}

	// Service configuration
	if v := os.Getenv("SKYCLOCK_SERVICE_NAME"); v != "" {
		c.ServiceName = v
	}
	if v := os.Getenv("SKYCLOCK_HEALTH_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.HealthPort = port
		}
	}
	if v := os.Getenv("SKYCLOCK_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}

	// Skyclock agent configuration
	if v := os.Getenv("SKYCLOCK_ZONES_FILE"); v != "" {
		c.ZonesFile = v
	}
	if v := os.Getenv("SKYCLOCK_TICK_INTERVAL_SEC"); v != "" {
		if interval, err := strconv.Atoi(v); err == nil {
			c.TickIntervalSec = interval
		}
	}
	if v := os.Getenv("SKYCLOCK_SOLAR_CACHE_SIZE"); v != "" {
		if size, err := strconv.Atoi(v); err == nil {
			c.SolarCacheSize = size
		}
	}
	if v := os.Getenv("SKYCLOCK_WEATHER_TTL_MINUTES"); v != "" {
		if minutes, err := strconv.Atoi(v); err == nil {
			c.WeatherTTLMinutes = minutes
		}
	}
	if v := os.Getenv("SKYCLOCK_STATE_TTL_MINUTES"); v != "" {
		if minutes, err := strconv.Atoi(v); err == nil {
			c.StateTTLMinutes = minutes
		}
	}
	if v := os.Getenv("SKYCLOCK_ARCHIVE_ENABLED"); v != "" {
		if enable, err := strconv.ParseBool(v); err == nil {
			c.ArchiveEnabled = enable
		}
	}
}

// LoadFromFlags parses command-line flags and overrides config values
func (c *Config) LoadFromFlags() {
	// MQTT flags
	pflag.StringVar(&c.MQTTBroker, "mqtt-broker", c.MQTTBroker, "MQTT broker hostname")
	pflag.IntVar(&c.MQTTPort, "mqtt-port", c.MQTTPort, "MQTT broker port")
	pflag.StringVar(&c.MQTTUser, "mqtt-user", c.MQTTUser, "MQTT username")
	pflag.StringVar(&c.MQTTPassword, "mqtt-password", c.MQTTPassword, "MQTT password")
	pflag.StringVar(&c.MQTTClientID, "mqtt-client-id", c.MQTTClientID, "MQTT client ID")

	// Redis flags
	pflag.StringVar(&c.RedisHost, "redis-host", c.RedisHost, "Redis hostname")
	pflag.IntVar(&c.RedisPort, "redis-port", c.RedisPort, "Redis port")
	pflag.StringVar(&c.RedisPassword, "redis-password", c.RedisPassword, "Redis password")
	pflag.IntVar(&c.RedisDB, "redis-db", c.RedisDB, "Redis database number")

	// Postgres flags
	pflag.StringVar(&c.PostgresHost, "postgres-host", c.PostgresHost, "Postgres hostname")
	pflag.IntVar(&c.PostgresPort, "postgres-port", c.PostgresPort, "Postgres port")
	pflag.StringVar(&c.PostgresUser, "postgres-user", c.PostgresUser, "Postgres username")
	pflag.StringVar(&c.PostgresPassword, "postgres-password", c.PostgresPassword, "Postgres password")
	pflag.StringVar(&c.PostgresDB, "postgres-db", c.PostgresDB, "Postgres database name")
	pflag.StringVar(&c.PostgresSSLMode, "postgres-sslmode", c.PostgresSSLMode, "Postgres SSL mode")

	// Service flags
	pflag.StringVar(&c.ServiceName, "service-name", c.ServiceName, "Service name")
	pflag.IntVar(&c.HealthPort, "health-port", c.HealthPort, "Health check HTTP port")
	pflag.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Log level (debug, info, warn, error)")

	// Skyclock agent flags
	pflag.StringVar(&c.ZonesFile, "zones-file", c.ZonesFile, "Path to YAML file listing tracked timezones")
	pflag.IntVar(&c.TickIntervalSec, "tick-interval", c.TickIntervalSec, "Sky state evaluation interval in seconds")
	pflag.IntVar(&c.SolarCacheSize, "solar-cache-size", c.SolarCacheSize, "Maximum cached (timezone, day) solar event entries")
	pflag.IntVar(&c.WeatherTTLMinutes, "weather-ttl-minutes", c.WeatherTTLMinutes, "TTL for cached weather conditions in minutes")
	pflag.IntVar(&c.StateTTLMinutes, "state-ttl-minutes", c.StateTTLMinutes, "TTL for mirrored sky state in minutes")
	pflag.BoolVar(&c.ArchiveEnabled, "archive-enabled", c.ArchiveEnabled, "Enable Postgres solar event archive")

	pflag.Parse()
}

// Validate checks that required configuration values are set
func (c *Config) Validate() error {
	if c.MQTTBroker == "" {
		return fmt.Errorf("MQTT broker is required")
	}
	if c.MQTTPort <= 0 || c.MQTTPort > 65535 {
		return fmt.Errorf("MQTT port must be between 1 and 65535")
	}
	if c.RedisHost == "" {
		return fmt.Errorf("Redis host is required")
	}
	if c.RedisPort <= 0 || c.RedisPort > 65535 {
		return fmt.Errorf("Redis port must be between 1 and 65535")
	}
	if c.HealthPort <= 0 || c.HealthPort > 65535 {
		return fmt.Errorf("Health port must be between 1 and 65535")
	}
	if c.ServiceName == "" {
		return fmt.Errorf("Service name is required")
	}
	if c.TickIntervalSec <= 0 {
		return fmt.Errorf("tick interval must be positive")
	}
	if c.SolarCacheSize <= 0 {
		return fmt.Errorf("solar cache size must be positive")
	}
	if c.ArchiveEnabled && c.PostgresHost == "" {
		return fmt.Errorf("Postgres host is required when archive is enabled")
	}

	// Validate log level
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}

// MQTTAddress returns the full MQTT broker address
func (c *Config) MQTTAddress() string {
	return fmt.Sprintf("tcp://%s:%d", c.MQTTBroker, c.MQTTPort)
}

// RedisAddress returns the full Redis address
func (c *Config) RedisAddress() string {
	return fmt.Sprintf("%s:%d", c.RedisHost, c.RedisPort)
}

// PostgresConnectionString returns the lib/pq connection string
func (c *Config) PostgresConnectionString() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.PostgresHost, c.PostgresPort, c.PostgresUser, c.PostgresPassword, c.PostgresDB, c.PostgresSSLMode)
}
