package commands

import (
	"fmt"
	"os"

	"booking_service/internal/infrastructure/persistence"
	"booking_service/internal/pkg/config"
	"booking_service/internal/pkg/logger"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: "info",
		LogType:  "console",
		FilePath: "",
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// setupDatabase connects to the database configured through DATABASE_URL.
// Unlike the REST API the CLI does not need the full config, only the
// database settings.
func setupDatabase() (*gorm.DB, error) {
	_ = godotenv.Load()

	dbSettings, err := config.NewDatabaseSettingsFromURL(os.Getenv("DATABASE_URL"))
	if err != nil {
		return nil, fmt.Errorf("failed to read database settings: %w", err)
	}

	db, err := persistence.NewDBConnection(*dbSettings)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	return db, nil
}
