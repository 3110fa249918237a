package main

import (
	"fmt"

	"github.com/piresc/unityride/internal/pkg/config"
	"github.com/piresc/unityride/internal/pkg/database"
	"github.com/piresc/unityride/internal/pkg/models"
	"github.com/piresc/unityride/internal/pkg/validator"
	userRepository "github.com/piresc/unityride/services/users/repository"
	userUsecase "github.com/piresc/unityride/services/users/usecase"
	"github.com/spf13/cobra"
)

func newCreateAdminCommand(opts *rootOptions) *cobra.Command {
	var req models.RegisterRequest

	cmd := &cobra.Command{
		Use:          "create-admin",
		Short:        "Create an ADMIN account",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validator.New().Validate(&req); err != nil {
				return err
			}

			configs := config.InitConfig(opts.ConfigPath)
			postgresClient, err := database.NewPostgresClient(configs.Database)
			if err != nil {
				return err
			}
			defer postgresClient.Close()

			userUC := userUsecase.NewUserUC(userRepository.NewUserRepository(postgresClient.GetDB()), nil, nil, configs)
			user, err := userUC.CreateAdmin(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created admin %s (%s)\n", user.Email, user.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Email, "email", "", "admin email")
	cmd.Flags().StringVar(&req.Password, "password", "", "admin password")
	cmd.Flags().StringVar(&req.DisplayName, "name", "Administrator", "display name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
