package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lautarocloudy/api-cuenta-corrientes/internal/core/domain"
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/core/services"
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/dto"
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/repositories/database/pgsql"
	"github.com/lautarocloudy/api-cuenta-corrientes/pkg/database"
)

// systemUserID marks records created from the CLI in the audit columns.
const systemUserID = "SYSTEM"

var usuariosCmd = &cobra.Command{
	Use:   "usuarios",
	Short: "Manage API users",
}

var crearAdminCmd = &cobra.Command{
	Use:     "crear-admin",
	Short:   "Create a user with the admin role",
	Example: `  cuentasctl usuarios crear-admin --nombre "Admin" --email admin@example.com --password secreto`,
	RunE:    runCrearAdmin,
}

func init() {
	rootCmd.AddCommand(usuariosCmd)
	usuariosCmd.AddCommand(crearAdminCmd)

	crearAdminCmd.Flags().String("nombre", "", "Display name")
	crearAdminCmd.Flags().String("email", "", "Login email")
	crearAdminCmd.Flags().String("password", "", "Initial password (min 6 characters)")
	_ = crearAdminCmd.MarkFlagRequired("nombre")
	_ = crearAdminCmd.MarkFlagRequired("email")
	_ = crearAdminCmd.MarkFlagRequired("password")
}

func runCrearAdmin(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("nombre")
	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")
	if len(password) < 6 {
		return fmt.Errorf("password must have at least 6 characters")
	}

	ctx := cmd.Context()
	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, 2)
	if err != nil {
		return err
	}
	defer database.ClosePgxPool(pool)

	repos := pgsql.NewRepositoryProvider(pool)
	userService := services.NewUserService(repos.UserRepo)

	user, err := userService.CreateUser(ctx, dto.CreateUserRequest{
		Name:     name,
		Email:    email,
		Password: password,
		Role:     string(domain.RoleAdmin),
	}, systemUserID)
	if err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "admin created: %s <%s>\n", user.UserID, user.Email)
	return nil
}
