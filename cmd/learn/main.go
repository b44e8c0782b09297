package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shane-reaume/pytest-playwright-learn-to-code/internal/cli"
	"github.com/shane-reaume/pytest-playwright-learn-to-code/internal/cli/commands"
	"github.com/shane-reaume/pytest-playwright-learn-to-code/internal/config"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:     "learn",
		Short:   "Python learn-to-code test runner and interactive tutor",
		Long:    `Run the learn-to-code pytest example suites by target alias, inspect results, and work through interactive Python lessons in the terminal.`,
		Version: version,
		// main owns error printing so exit codes and messages stay paired
		SilenceErrors: true,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command, mirroring explicit exit codes
	if err := rootCmd.Execute(); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", exitErr.Err)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
