package main

import (
	"github.com/spf13/cobra"

	"tempmanager/internal/app"
	"tempmanager/internal/config"
)

func newRootCmd(cfg config.Config) *cobra.Command {
	return &cobra.Command{
		Use:           appName,
		Short:         "Interactive temperature data manager",
		Long:          "Collects temperature readings from the console and shows them listed, sorted or summarised.\nAll data is discarded when the program exits.",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), cfg, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}
