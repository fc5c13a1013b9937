package commands

import (
	"fmt"

	"booking_service/internal/infrastructure/persistence/models"
	"booking_service/internal/pkg/logger"

	"gorm.io/gorm"

	"github.com/spf13/cobra"
)

// MigrateCommandHandler encapsulates logic for running schema migrations via CLI.
type MigrateCommandHandler struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewMigrateCommandHandler initializes and returns a MigrateCommandHandler
// instance with a configured logger and database connection.
func NewMigrateCommandHandler() (*MigrateCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	db, err := setupDatabase()
	if err != nil {
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	return &MigrateCommandHandler{
		db:     db,
		logger: loggerInstance,
	}, nil
}

// MigrateCmd applies the database schema for all models
func (commandHandler *MigrateCommandHandler) MigrateCmd(_ *cobra.Command, _ []string) error {
	if err := commandHandler.db.AutoMigrate(&models.UserModel{}, &models.BookingModel{}); err != nil {
		return fmt.Errorf("schema migration failed: %w", err)
	}

	commandHandler.logger.Info("schema migration completed")
	return nil
}

// InitMigrateCommands registers the migrate command group with the root
// command. The database connection is established when the command runs, not
// at registration time.
func InitMigrateCommands(rootCmd *cobra.Command) error {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			handler, err := NewMigrateCommandHandler()
			if err != nil {
				return err
			}
			return handler.MigrateCmd(cmd, args)
		},
	}
	rootCmd.AddCommand(migrateCmd)

	return nil
}
