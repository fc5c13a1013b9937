package commands

import (
	"context"
	"fmt"

	"booking_service/internal/app"
	"booking_service/internal/domain/users"
	"booking_service/internal/infrastructure/identity"
	"booking_service/internal/infrastructure/persistence"
	"booking_service/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// AdminCommandHandler encapsulates logic for managing admin accounts via CLI.
type AdminCommandHandler struct {
	userService users.UserService
	logger      logger.Logger
}

// NewAdminCommandHandler initializes and returns an AdminCommandHandler
// instance with a configured logger, database connection and user service.
func NewAdminCommandHandler() (*AdminCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	db, err := setupDatabase()
	if err != nil {
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	userRepo, err := persistence.NewGormUserRepository(db, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}

	userService, err := app.NewUserService(userRepo, identity.NewBcryptPasswordHasher(), loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}

	return &AdminCommandHandler{
		userService: userService,
		logger:      loggerInstance,
	}, nil
}

// CreateAdminCmd registers a new account with the admin role
func (commandHandler *AdminCommandHandler) CreateAdminCmd(cmd *cobra.Command, _ []string) error {
	username, err := cmd.Flags().GetString("username")
	if err != nil {
		return fmt.Errorf("invalid username flag: %w", err)
	}

	email, err := cmd.Flags().GetString("email")
	if err != nil {
		return fmt.Errorf("invalid email flag: %w", err)
	}

	password, err := cmd.Flags().GetString("password")
	if err != nil {
		return fmt.Errorf("invalid password flag: %w", err)
	}

	fullName, err := cmd.Flags().GetString("full-name")
	if err != nil {
		return fmt.Errorf("invalid full-name flag: %w", err)
	}

	user, err := commandHandler.userService.Register(context.Background(), &users.RegisterUser{
		Username: username,
		Email:    email,
		FullName: fullName,
		Role:     users.RoleAdmin,
		Password: password,
	})
	if err != nil {
		return fmt.Errorf("failed to create admin account: %w", err)
	}

	commandHandler.logger.Info("created admin account ", user.Username, " with id ", user.ID)
	return nil
}

// InitAdminCommands registers the admin command group with the root command.
// The database connection is established when a command runs, not at
// registration time.
func InitAdminCommands(rootCmd *cobra.Command) error {
	createAdminCmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Register a new account with the admin role",
		RunE: func(cmd *cobra.Command, args []string) error {
			handler, err := NewAdminCommandHandler()
			if err != nil {
				return err
			}
			return handler.CreateAdminCmd(cmd, args)
		},
	}
	createAdminCmd.Flags().StringP("username", "u", "", "Username of the admin account")
	createAdminCmd.Flags().StringP("email", "e", "", "Email of the admin account")
	createAdminCmd.Flags().StringP("password", "p", "", "Password of the admin account (min 8 characters)")
	createAdminCmd.Flags().String("full-name", "", "Full name of the admin account")

	if err := createAdminCmd.MarkFlagRequired("username"); err != nil {
		return fmt.Errorf("failed to mark username flag required: %w", err)
	}
	if err := createAdminCmd.MarkFlagRequired("email"); err != nil {
		return fmt.Errorf("failed to mark email flag required: %w", err)
	}
	if err := createAdminCmd.MarkFlagRequired("password"); err != nil {
		return fmt.Errorf("failed to mark password flag required: %w", err)
	}

	rootCmd.AddCommand(createAdminCmd)

	return nil
}
