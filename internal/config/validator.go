package config

import (
	"fmt"
	"os"
	"strings"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// RequiredEnvVars must be set regardless of storage driver
var RequiredEnvVars = []string{
	"ENV_SCHEMA_VERSION",
	"API_KEY",
	"DB_DRIVER",
}

// RequiredPostgresEnvVars must be set when DB_DRIVER=postgres
var RequiredPostgresEnvVars = []string{
	"DB_USER",
	"DB_PASSWORD",
	"DB_HOST",
	"DB_PORT",
	"DB_NAME",
}

// RequiredSQLiteEnvVars must be set when DB_DRIVER=sqlite
var RequiredSQLiteEnvVars = []string{
	"SQLITE_PATH",
}

// ValidateEnv checks the .env schema version and that every variable needed
// by the selected driver is present
func ValidateEnv() error {
	schemaVersion := os.Getenv("ENV_SCHEMA_VERSION")
	if schemaVersion == "" {
		return fmt.Errorf(ErrMsgSchemaNotSet, ExpectedEnvSchemaVersion)
	}
	if schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf(ErrMsgSchemaMismatch, ExpectedEnvSchemaVersion, schemaVersion)
	}

	required := append([]string{}, RequiredEnvVars...)
	switch strings.ToLower(os.Getenv("DB_DRIVER")) {
	case DriverPostgres:
		required = append(required, RequiredPostgresEnvVars...)
	case DriverSQLite:
		required = append(required, RequiredSQLiteEnvVars...)
	}

	var missing []string
	for _, envVar := range required {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf(ErrMsgMissingRequired, strings.Join(missing, ", "))
	}

	return nil
}

// ValidateEnvWithWarnings runs ValidateEnv and also flags values that were
// left at their .env.example placeholders
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string

	if os.Getenv("DB_PASSWORD") == ExampleDBPassword {
		warnings = append(warnings, WarnExampleDBPassword)
	}
	if os.Getenv("API_KEY") == ExampleAPIKey {
		warnings = append(warnings, WarnExampleAPIKey)
	}

	return warnings, nil
}
