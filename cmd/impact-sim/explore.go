package main

import (
	"github.com/spf13/cobra"

	"bennu-impact-sim/internal/sim"
	"bennu-impact-sim/internal/tui"
)

var exploreLogFile string

var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Explore parameters interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		var writer sim.ResultWriter
		if exploreLogFile != "" {
			fw, err := sim.NewFileWriter(exploreLogFile)
			if err != nil {
				return err
			}
			defer fw.Close()
			writer = fw
		}
		m, err := tui.New(cfg, writer, nil)
		if err != nil {
			return err
		}
		return tui.Run(m)
	},
}

func init() {
	exploreCmd.Flags().StringVar(&exploreLogFile, "log-file", "", "Append every explored result to this JSONL file")
}
