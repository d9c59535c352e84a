package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd(app *AppContext) *cobra.Command {
	opts := &dashboardOptions{}

	cmd := &cobra.Command{
		Use:           "atlas",
		Short:         "Atlas is a terminal dashboard with tabs, sections, apps and chat",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(cmd, app, opts)
		},
	}

	cmd.PersistentFlags().StringVarP(&app.configPath, "config", "c", "", "Path to config file (default $ATLAS_CONFIG or $XDG_CONFIG_HOME/atlas/config.yaml)")
	cmd.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "Enable debug logging")
	opts.bind(cmd)

	cmd.AddCommand(newDashboardCmd(app))
	cmd.AddCommand(newPanelsCmd(app))
	cmd.AddCommand(newConfigCmd(app))
	cmd.AddCommand(newChatCmd(app))
	cmd.AddCommand(newSectionCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
