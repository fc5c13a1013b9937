// Package main is the entry point for the booking-cli application.
// It initializes the root command and registers the administrative
// sub-commands (schema migration, admin account management), then executes
// the command-line interface.
package main

import (
	"fmt"
	"log"

	commands "booking_service/cmd/booking-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "booking-cli",
		Short: "Administrative CLI for the booking service",
		Long: `booking-cli is a command-line tool for administering the booking service.
It runs schema migrations and manages admin accounts against the database
configured through DATABASE_URL (a .env file is loaded when present).`,
	}

	// Initialize all command groups BEFORE executing
	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	// Execute root command ONCE after all commands are registered
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitMigrateCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize migrate commands: %w", err)
	}

	if err := commands.InitAdminCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize admin commands: %w", err)
	}

	return nil
}
