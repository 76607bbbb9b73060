package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bennu-impact-sim/internal/logging"
	"bennu-impact-sim/internal/sim"
)

var (
	replayInput     string
	replayFormat    string
	replayPrintOnly bool
)

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Replay a result log file",
	Long:  "replay feeds result rows from a JSONL log back into GreptimeDB or STDOUT.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if replayInput == "" {
			return fmt.Errorf("input file required")
		}
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		writer, err := exportWriter(cfg, replayPrintOnly)
		if err != nil {
			return err
		}
		if writer == nil {
			w, cleanup, err := newWriters(replayFormat, "", "")
			if err != nil {
				return err
			}
			defer cleanup()
			writer = w
		}
		n, err := sim.ReplayLogFile(replayInput, writer)
		if err != nil {
			return err
		}
		logging.FromContext(cmd.Context()).Info("replay complete", "rows", n)
		return nil
	},
}

func init() {
	replayCmd.Flags().StringVar(&replayInput, "input", "", "Path to result log file")
	replayCmd.Flags().StringVar(&replayFormat, "format", "auto", "Output format when printing: text, json, color or auto")
	replayCmd.Flags().BoolVar(&replayPrintOnly, "print-only", false, "Print rows to STDOUT instead of writing to DB")
	replayCmd.MarkFlagRequired("input")
}
