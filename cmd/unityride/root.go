package main

import (
	"github.com/spf13/cobra"
)

// rootOptions holds flags shared by every command
type rootOptions struct {
	ConfigPath string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "unityride",
		Short: "UnityRide - community carpooling for church events",
	}
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "config/unityride.env",
		"env file loaded when APP_ENV=local")

	cmd.AddCommand(newServeCommand(opts))
	cmd.AddCommand(newMigrateCommand(opts))
	cmd.AddCommand(newCreateAdminCommand(opts))
	return cmd
}
