package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "List scenario presets",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		catalog, err := loadCatalog(cfg)
		if err != nil {
			return err
		}
		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("Name", "Diameter (km)", "Velocity (km/s)", "Force (cm/s)", "Angle", "Lead (y)", "Description")
		for _, sc := range catalog.Sorted() {
			angle := "-"
			if sc.ApproachAngleDeg != nil {
				angle = fmt.Sprintf("%g°", *sc.ApproachAngleDeg)
			}
			t.Row(
				sc.Name,
				fmt.Sprintf("%g", sc.DiameterKM),
				fmt.Sprintf("%g", sc.VelocityKMS),
				fmt.Sprintf("%g", sc.DeflectionForce),
				angle,
				fmt.Sprintf("%g", sc.LeadTime()),
				sc.Description,
			)
		}
		_, err = fmt.Fprintln(os.Stdout, t.String())
		return err
	},
}
