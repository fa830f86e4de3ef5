package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lautarocloudy/api-cuenta-corrientes/pkg/database"
)

var migrateCmd = &cobra.Command{
	Use:       "migrate up|down",
	Short:     "Apply or revert the database schema",
	Example:   "  cuentasctl migrate up\n  cuentasctl migrate down --path file://migrations",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{string(database.Up), string(database.Down)},
	RunE:      runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.Flags().String("path", "", "Migrations source URL (default MIGRATIONS_PATH)")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("path")
	if path == "" {
		path = cfg.MigrationsPath
	}

	dir := database.Direction(args[0])
	if err := database.RunMigrations(cfg.DatabaseURL, path, dir, logger); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "migrations %s: ok\n", dir)
	return nil
}
