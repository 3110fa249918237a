package main

import (
	"fmt"

	"github.com/piresc/unityride/internal/pkg/config"
	"github.com/piresc/unityride/internal/pkg/database"
	"github.com/spf13/cobra"
)

func newMigrateCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:          "migrate",
		Short:        "Apply pending database migrations",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			configs := config.InitConfig(opts.ConfigPath)

			postgresClient, err := database.NewPostgresClient(configs.Database)
			if err != nil {
				return err
			}
			defer postgresClient.Close()

			applied, err := database.Migrate(cmd.Context(), postgresClient.GetDB())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "applied %d migration(s)\n", applied)
			return nil
		},
	}
}
