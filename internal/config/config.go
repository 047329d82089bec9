package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int    `validate:"min=1,max=65535"`
	APIKey      string `validate:"required"`
	LogLevel    string `validate:"oneof=debug info warn error"`
	LogFormat   string `validate:"oneof=text json"`
	Environment string
	ServiceName string
	Version     string

	// Storage
	DBDriver          string `validate:"oneof=postgres sqlite"`
	DBUser            string `validate:"required_if=DBDriver postgres"`
	DBPassword        string
	DBHost            string `validate:"required_if=DBDriver postgres"`
	DBPort            string `validate:"required_if=DBDriver postgres"`
	DBName            string `validate:"required_if=DBDriver postgres"`
	DBMaxConns        int    `validate:"min=1"`
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration
	SQLitePath        string `validate:"required_if=DBDriver sqlite"`

	// Empty uses the built-in catalog
	BlindBoxConfigPath string

	// Chat triggers. Each one is disabled when its channel or token is empty.
	TwitchChannel     string
	TwitchBotUsername string `validate:"required_with=TwitchChannel"`
	TwitchOAuthToken  string `validate:"required_with=TwitchChannel"`
	DiscordToken      string
	DiscordAppID      string `validate:"required_with=DiscordToken"`

	// Re-register slash commands even when Discord already has them
	DiscordForceCommandSync bool

	WorkerCount            int           `validate:"min=1"`
	WorkerQueueSize        int           `validate:"min=1"`
	MetricsRefreshInterval time.Duration `validate:"min=1s"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// A missing .env is fine, real environment variables still apply
	_ = godotenv.Load()

	cfg := &Config{
		APIKey:      getEnv("API_KEY", ""),
		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", DefaultLogLevel)),
		LogFormat:   strings.ToLower(getEnv("LOG_FORMAT", DefaultLogFormat)),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),
		Version:     getEnv("VERSION", "dev"),

		DBDriver:          strings.ToLower(getEnv("DB_DRIVER", DefaultDBDriver)),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", DefaultDBName),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),
		SQLitePath:        getEnv("SQLITE_PATH", DefaultSQLitePath),

		BlindBoxConfigPath: getEnv("BLINDBOX_CONFIG_PATH", ""),

		TwitchChannel:     strings.ToLower(strings.TrimPrefix(getEnv("TWITCH_CHANNEL", ""), "#")),
		TwitchBotUsername: getEnv("TWITCH_BOT_USERNAME", ""),
		TwitchOAuthToken:  getEnv("TWITCH_OAUTH_TOKEN", ""),
		DiscordToken:      getEnv("DISCORD_TOKEN", ""),
		DiscordAppID:      getEnv("DISCORD_APP_ID", ""),

		DiscordForceCommandSync: getEnvAsBool("DISCORD_FORCE_COMMAND_SYNC", false),

		WorkerCount:            getEnvAsInt("WORKER_COUNT", DefaultWorkerCount),
		WorkerQueueSize:        getEnvAsInt("WORKER_QUEUE_SIZE", DefaultWorkerQueueSize),
		MetricsRefreshInterval: getEnvAsDuration("METRICS_REFRESH_INTERVAL", DefaultMetricsRefreshInterval),
	}

	port, err := strconv.Atoi(getEnv("PORT", strconv.Itoa(DefaultPort)))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidPort, err)
	}
	cfg.Port = port

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%s", ErrMsgAPIKeyMissing)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the struct tags
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgInvalidConfig, err)
	}
	return nil
}

// TwitchEnabled reports whether the Twitch chat trigger should start
func (c *Config) TwitchEnabled() bool {
	return c.TwitchChannel != ""
}

// DiscordEnabled reports whether the Discord bot should start
func (c *Config) DiscordEnabled() bool {
	return c.DiscordToken != ""
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt falls back to the default when the value is missing or not an integer
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration falls back to the default when the value does not parse
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsBool accepts anything strconv.ParseBool does
func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}
