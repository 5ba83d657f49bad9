package main

import (
	"errors"
	"fmt"

	"tallerhub/internal/adapter/persistence/repository"
	"tallerhub/internal/domain/entities"
	"tallerhub/internal/infrastructure/auth"
	"tallerhub/internal/usecase"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var (
	flagAdminName     string
	flagAdminEmail    string
	flagAdminPassword string
)

var bootstrapAdminCmd = &cobra.Command{
	Use:   "bootstrap-admin",
	Short: "Create the first site admin account",
	Long: `Create a site admin account. The API only lets admins create workshops
and their owners, so a fresh environment needs one created out of band.

Running it again with the same email is a no-op.`,
	Args: cobra.NoArgs,
	RunE: runBootstrapAdmin,
}

func init() {
	bootstrapAdminCmd.Flags().StringVar(&flagAdminName, "name", "Admin", "display name")
	bootstrapAdminCmd.Flags().StringVar(&flagAdminEmail, "email", "", "login email (required)")
	bootstrapAdminCmd.Flags().StringVar(&flagAdminPassword, "password", "", "login password, at least 8 characters (required)")
	_ = bootstrapAdminCmd.MarkFlagRequired("email")
	_ = bootstrapAdminCmd.MarkFlagRequired("password")
}

func runBootstrapAdmin(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	ddb, err := connect(ctx)
	if err != nil {
		return err
	}

	users := usecase.NewUserUseCase(
		repository.NewUserDynamoRepository(ddb),
		repository.NewWorkshopDynamoRepository(ddb),
		auth.NewBcryptHasher(bcrypt.DefaultCost),
	)
	user, err := users.Register(ctx, usecase.RegisterUserInput{
		Name:     flagAdminName,
		Email:    flagAdminEmail,
		Password: flagAdminPassword,
		Role:     entities.UserRoleAdmin,
	})
	if errors.Is(err, usecase.ErrEmailAlreadyExists) {
		fmt.Fprintf(cmd.OutOrStdout(), "admin %s already exists\n", flagAdminEmail)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "admin created id=%s email=%s\n", user.ID, user.Email)
	return nil
}
