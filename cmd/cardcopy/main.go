// Command cardcopy searches the card catalog and generates promotional copy
// from the terminal.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"cardcopy/internal/app"
	"cardcopy/internal/config"
	"cardcopy/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	verbose bool
	timeout time.Duration

	log         *zap.Logger
	application *app.App
)

// newApp is a package-level variable to allow replacing the wiring in tests.
var newApp = app.New

var rootCmd = &cobra.Command{
	Use:   "cardcopy",
	Short: "Generate promotional copy for credit cards",
	Long: `cardcopy searches the card catalog and asks the configured text
generation provider for four promotional variations.

Configuration is read from the environment and an optional .env file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.LoadEnv()
		cfg := config.Load()

		level := cfg.LogLevel
		if verbose {
			level = "debug"
		} else if level == "info" {
			level = "warn"
		}
		log = logger.Must(level, false)

		a, err := newApp(cmd.Context(), cfg, log)
		if err != nil {
			return fmt.Errorf("failed to initialize: %w", err)
		}
		application = a
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if application != nil {
			application.Close()
		}
		if log != nil {
			_ = log.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 2*time.Minute, "Operation timeout")

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(regenerateCmd)
	rootCmd.AddCommand(historyCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), timeout)
}
