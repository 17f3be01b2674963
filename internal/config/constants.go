package config

import "os"

// Environment variable names
const (
	EnvPort         = "PORT"
	EnvLogLevel     = "LOG_LEVEL"
	EnvLogFormat    = "LOG_FORMAT"
	EnvEnvironment  = "ENVIRONMENT"
	EnvVersion      = "VERSION"
	EnvDiscordToken = "DISCORD_TOKEN"
	EnvDiscordAppID = "DISCORD_APP_ID"
	EnvDBUser       = "DB_USER"
	EnvDBPassword   = "DB_PASSWORD"
	EnvDBHost       = "DB_HOST"
	EnvDBPort       = "DB_PORT"
	EnvDBName       = "DB_NAME"
)

// Default values
const (
	DefaultPort        = "8080"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultEnvironment = "dev"
	DefaultServiceName = "sensekibot"
	DefaultVersion     = "dev"
	DefaultDBUser      = "postgres"
	DefaultDBPassword  = "postgres"
	DefaultDBHost      = "localhost"
	DefaultDBPort      = "5432"
	DefaultDBName      = "sensekibot"
)

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
