package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultPort is the port the REST API listens on when PORT is not set.
const DefaultPort = "8000"

// RestConfig aggregates all settings needed by the REST API process
type RestConfig struct {
	Port     string `validate:"required"`
	Debug    bool
	Database DatabaseSettings
	Auth     AuthSettings
	Logger   LoggerSettings
}

// InitializeRestConfig loads the REST API configuration from the process
// environment. A .env file in the working directory is loaded first when
// present; real environment variables take precedence over .env entries.
func InitializeRestConfig() (*RestConfig, error) {
	// Load .env file if it exists (optional - fails silently if not found)
	_ = godotenv.Load()

	dbSettings, err := NewDatabaseSettingsFromURL(os.Getenv("DATABASE_URL"))
	if err != nil {
		return nil, fmt.Errorf("failed to read database settings: %w", err)
	}

	authSettings := AuthSettings{
		SecretKey:          os.Getenv("SECRET_KEY"),
		TokenExpiryMinutes: envInt("ACCESS_TOKEN_EXPIRE_MINUTES", DefaultTokenExpiryMinutes),
	}
	if err := authSettings.Validate(); err != nil {
		return nil, fmt.Errorf("failed to read auth settings: %w", err)
	}

	loggerSettings := LoggerSettings{
		LogLevel:   envString("LOG_LEVEL", LogLevelInfo),
		LogType:    envString("LOG_TYPE", LogTypeConsole),
		FilePath:   os.Getenv("LOG_FILE_PATH"),
		MaxSize:    envInt("LOG_MAX_SIZE", 10),
		MaxBackups: envInt("LOG_MAX_BACKUPS", 3),
		MaxAge:     envInt("LOG_MAX_AGE", 28),
	}
	if err := loggerSettings.Validate(); err != nil {
		return nil, fmt.Errorf("failed to read logger settings: %w", err)
	}

	cfg := &RestConfig{
		Port:     envString("PORT", DefaultPort),
		Debug:    envBool("DEBUG", false),
		Database: *dbSettings,
		Auth:     authSettings,
		Logger:   loggerSettings,
	}

	return cfg, nil
}

func envString(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func envBool(key string, fallback bool) bool {
	value := strings.ToLower(os.Getenv(key))
	switch value {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return fallback
	}
}
