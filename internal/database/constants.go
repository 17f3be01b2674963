package database

import "time"

// Connection pool settings
const (
	DefaultMaxConnections  = 10
	DefaultMinConnections  = 2
	DefaultMaxConnLifetime = 30 * time.Minute
	DefaultMaxConnIdleTime = 5 * time.Minute
)

// Error messages
const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
	ErrMsgFailedToOpenMigrationDB = "failed to open migration connection"
	ErrMsgFailedToSetDialect      = "failed to set migration dialect"
	ErrMsgFailedToRunMigrations   = "failed to run migrations"
)

// Log messages
const (
	LogMsgSuccessfullyConnectedToDatabase = "Successfully connected to database"
	LogMsgMigrationsApplied               = "Database migrations applied"
)
