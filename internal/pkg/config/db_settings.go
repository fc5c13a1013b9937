package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Database type constants
const (
	PostgresDbType = "postgres"
	SqliteDbType   = "sqlite"
)

// DatabaseSettings holds configuration settings for the database connection
type DatabaseSettings struct {
	Type string `validate:"required,oneof=postgres sqlite"`
	DSN  string `validate:"required"`
	Name string
}

// Validate checks that all fields in DatabaseSettings are valid
func (s *DatabaseSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for DatabaseSettings: %w", err)
	}

	return nil
}

// NewDatabaseSettingsFromURL derives DatabaseSettings from a DATABASE_URL
// value. URLs with a postgres scheme are passed through as-is, sqlite URLs
// are reduced to their file path and a bare path is treated as a SQLite file.
func NewDatabaseSettingsFromURL(databaseURL string) (*DatabaseSettings, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is not set")
	}

	settings := &DatabaseSettings{}

	switch {
	case strings.HasPrefix(databaseURL, "postgres://"), strings.HasPrefix(databaseURL, "postgresql://"):
		settings.Type = PostgresDbType
		settings.DSN = databaseURL
	case strings.HasPrefix(databaseURL, "sqlite://"):
		settings.Type = SqliteDbType
		settings.DSN = strings.TrimPrefix(databaseURL, "sqlite://")
	default:
		settings.Type = SqliteDbType
		settings.DSN = databaseURL
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return settings, nil
}
