// Package main is the entry point for the moneta binary.
// It provides a CLI over the money and email value objects.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/lumopay/moneta/pkg/config"
	"github.com/lumopay/moneta/pkg/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newRootCmd creates the root command for moneta
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "moneta",
		Short: "Currency-aware money arithmetic and email validation",
		Long: `moneta operates on immutable value objects: currency-tagged decimal
amounts and normalized email addresses.

Amounts are exact decimals, so "0.1" plus "0.2" is exactly "0.3".

Example:
  moneta money add 1000 300 --currency JPY
  moneta email check User@EXAMPLE.COM`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to configuration file (YAML)")
	rootCmd.PersistentFlags().StringP("log-level", "l", "", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(newMoneyCmd())
	rootCmd.AddCommand(newEmailCmd())

	return rootCmd
}

// setup loads the configuration and builds the logger for one invocation.
// The log-level flag overrides the config file value.
func setup(cmd *cobra.Command) (*config.Config, zerolog.Logger, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, zerolog.Nop(), fmt.Errorf("failed to get config flag: %w", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, zerolog.Nop(), err
	}

	level, err := cmd.Flags().GetString("log-level")
	if err != nil {
		return nil, zerolog.Nop(), fmt.Errorf("failed to get log-level flag: %w", err)
	}
	if level != "" {
		cfg.Logging.Level = level
	}

	logger := logging.New(logging.Config{
		Level:  cfg.Logging.Level,
		Pretty: cfg.Logging.Pretty,
	}, cmd.ErrOrStderr())

	return cfg, logger, nil
}
