package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/lautarocloudy/api-cuenta-corrientes/internal/platform/config"
)

var (
	logger *slog.Logger
	cfg    *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "cuentasctl",
	Short: "Operations CLI for the cuentas corrientes API",
	Long: `cuentasctl runs maintenance tasks against the database configured
through PGSQL_URL (or a .env file): schema migrations, seeding an admin user
and printing balance tables.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)

		var err error
		cfg, err = config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if cfg.DatabaseURL == "" {
			return fmt.Errorf("PGSQL_URL is required")
		}
		return nil
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
}
