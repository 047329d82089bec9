package config

import "time"

// Supported storage drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Defaults applied when a variable is unset
const (
	DefaultPort                   = 8080
	DefaultLogLevel               = "info"
	DefaultLogFormat              = "text"
	DefaultEnvironment            = "dev"
	DefaultServiceName            = "charsibot"
	DefaultDBDriver               = DriverPostgres
	DefaultDBName                 = "charsibot"
	DefaultDBMaxConns             = 20
	DefaultDBMaxConnIdleTime      = 5 * time.Minute
	DefaultDBMaxConnLifetime      = 30 * time.Minute
	DefaultSQLitePath             = "data/charsibot.db"
	DefaultWorkerCount            = 4
	DefaultWorkerQueueSize        = 100
	DefaultMetricsRefreshInterval = time.Minute
)

// Error messages
const (
	ErrMsgInvalidPort     = "invalid PORT value"
	ErrMsgAPIKeyMissing   = "API_KEY environment variable must be set for security"
	ErrMsgInvalidConfig   = "invalid configuration"
	ErrMsgSchemaNotSet    = "ENV_SCHEMA_VERSION is not set - please update your .env file to include this field (expected: %s)"
	ErrMsgSchemaMismatch  = "ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated"
	ErrMsgMissingRequired = "missing required environment variables: %s"
)

// Warnings for values copied verbatim from .env.example
const (
	ExampleDBPassword = "change_this_secure_password"
	ExampleAPIKey     = "generate_with_openssl_rand_hex_32"

	WarnExampleDBPassword = "DB_PASSWORD appears to be using the example value - please use a secure password"
	WarnExampleAPIKey     = "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32"
)
