package main

import (
	"github.com/spf13/cobra"

	"bennu-impact-sim/internal/impact"
	"bennu-impact-sim/internal/scenario"
	"bennu-impact-sim/internal/sim"
)

var (
	simFlags   paramFlags
	simFormat  string
	simLogFile string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run one impact simulation",
	Long:  "simulate evaluates a single deflection attempt from flags or a named preset and prints the outcome.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		catalog, err := loadCatalog(cfg)
		if err != nil {
			return err
		}
		opts, err := simFlags.options(cfg)
		if err != nil {
			return err
		}
		sc, err := simFlags.resolve(cfg, catalog)
		if err != nil {
			return err
		}
		calc, err := impact.NewCalculator(opts)
		if err != nil {
			return err
		}

		writer, cleanup, err := newWriters(simFormat, modelHeader(cfg), simLogFile)
		if err != nil {
			return err
		}
		defer cleanup()

		_, err = sim.NewSimulator(calc, writer, nil).Run(cmd.Context(), []scenario.Scenario{sc})
		return err
	},
}

func init() {
	simFlags.register(simulateCmd.Flags(), true, true)
	simulateCmd.Flags().StringVar(&simFormat, "format", "auto", "Output format: text, json, color or auto")
	simulateCmd.Flags().StringVar(&simLogFile, "log-file", "", "Also append results to this JSONL file")
}
