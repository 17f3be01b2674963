package config

import (
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int    `validate:"gte=1,lte=65535"`
	LogLevel    string
	LogFormat   string
	Environment string
	ServiceName string
	Version     string

	DiscordToken string `validate:"required"`
	DiscordAppID string `validate:"required"`

	DBUser     string `validate:"required"`
	DBPassword string `validate:"required"`
	DBHost     string `validate:"required"`
	DBPort     string `validate:"required"`
	DBName     string `validate:"required"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:     getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:    getEnv(EnvLogFormat, DefaultLogFormat),
		Environment:  getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName:  DefaultServiceName,
		Version:      getEnv(EnvVersion, DefaultVersion),
		DiscordToken: getEnv(EnvDiscordToken, ""),
		DiscordAppID: getEnv(EnvDiscordAppID, ""),
		DBUser:       getEnv(EnvDBUser, DefaultDBUser),
		DBPassword:   getEnv(EnvDBPassword, DefaultDBPassword),
		DBHost:       getEnv(EnvDBHost, DefaultDBHost),
		DBPort:       getEnv(EnvDBPort, DefaultDBPort),
		DBName:       getEnv(EnvDBName, DefaultDBName),
	}

	portStr := getEnv(EnvPort, DefaultPort)
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value: %w", EnvPort, err)
	}
	cfg.Port = port

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
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
