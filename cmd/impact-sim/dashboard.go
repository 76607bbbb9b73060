package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bennu-impact-sim/internal/dashboard"
)

var (
	dashboardOut   string
	dashboardTable string
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Render the Grafana dashboard for exported results",
	Long:  "dashboard writes a Grafana dashboard querying the GreptimeDB result table. " + dashboard.DatasourceEnv + " must hold the datasource UID.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		table := cfg.Greptime.Table
		if dashboardTable != "" {
			table = dashboardTable
		}
		path, err := dashboard.Render(dashboardOut, table)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func init() {
	dashboardCmd.Flags().StringVar(&dashboardOut, "out", "build", "Output directory")
	dashboardCmd.Flags().StringVar(&dashboardTable, "table", "", "Result table name (defaults to the configured table)")
}
