// Package migrations embeds the goose SQL migrations for each supported driver.
package migrations

import "embed"

// FS holds postgres/*.sql and sqlite/*.sql
//
//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS

// Directories inside FS, keyed by goose dialect
const (
	PostgresDir = "postgres"
	SQLiteDir   = "sqlite"
)
