// Package cli wires the cobra commands. `run` starts the interactive
// shell; `report` prints the ledger reports without entering the menus.
package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"jbpos/internal/app"
	"jbpos/internal/config"
	"jbpos/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "pos",
	Short: "JB Sneakers & Apparel - inventory and sales/purchase ledger",
	Long: `A single-operator point-of-sale system: product catalog, customer and
supplier directories, and append-only sale/purchase ledgers, all backed
by flat delimited-text files.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// buildApp loads .env, config and logger and opens every store.
func buildApp() (*app.App, error) {
	_ = godotenv.Load()

	cfg := config.Load()

	log, err := logger.New(cfg.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	a, err := app.New(cfg, log)
	if err != nil {
		log.Error("Failed to open stores", zap.Error(err))
		return nil, err
	}
	return a, nil
}
