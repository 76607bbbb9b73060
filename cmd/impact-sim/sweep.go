package main

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"bennu-impact-sim/internal/impact"
	"bennu-impact-sim/internal/sim"
)

var (
	sweepFlags     paramFlags
	sweepSpec      sim.SweepSpec
	sweepPrintOnly bool
	sweepRows      bool
	sweepFormat    string
	sweepLogFile   string
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Sweep deflection force against lead time",
	Long: "sweep evaluates a grid of deflection forces and lead times for one scenario, prints the smallest " +
		"force that avoided impact per lead time, and exports every row to GreptimeDB when an endpoint is configured.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		catalog, err := loadCatalog(cfg)
		if err != nil {
			return err
		}
		opts, err := sweepFlags.options(cfg)
		if err != nil {
			return err
		}
		base, err := sweepFlags.resolve(cfg, catalog)
		if err != nil {
			return err
		}
		calc, err := impact.NewCalculator(opts)
		if err != nil {
			return err
		}

		spec := sim.SweepSpecFromConfig(cfg.Sweep)
		fs := cmd.Flags()
		if fs.Changed("force-min") {
			spec.ForceMin = sweepSpec.ForceMin
		}
		if fs.Changed("force-max") {
			spec.ForceMax = sweepSpec.ForceMax
		}
		if fs.Changed("force-steps") {
			spec.ForceSteps = sweepSpec.ForceSteps
		}
		if fs.Changed("lead-min") {
			spec.LeadMin = sweepSpec.LeadMin
		}
		if fs.Changed("lead-max") {
			spec.LeadMax = sweepSpec.LeadMax
		}
		if fs.Changed("lead-steps") {
			spec.LeadSteps = sweepSpec.LeadSteps
		}

		export, err := exportWriter(cfg, sweepPrintOnly)
		if err != nil {
			return err
		}
		var rowWriter sim.ResultWriter
		cleanup := func() {}
		switch {
		case sweepRows:
			rowWriter, cleanup, err = newWriters(sweepFormat, modelHeader(cfg), sweepLogFile)
			if err != nil {
				return err
			}
		case sweepLogFile != "":
			fw, err := sim.NewFileWriter(sweepLogFile)
			if err != nil {
				return err
			}
			rowWriter = fw
			cleanup = func() { fw.Close() }
		}
		defer cleanup()

		var writer sim.ResultWriter
		if export != nil || rowWriter != nil {
			writer = sim.NewMultiWriter(export, rowWriter)
		}
		_, summaries, err := sim.NewSimulator(calc, writer, nil).Sweep(cmd.Context(), base, spec)
		if err != nil {
			return err
		}
		return printSummaries(os.Stdout, base.Name, summaries)
	},
}

func formatForce(v float64) string {
	if math.IsInf(v, 0) {
		return "n/a"
	}
	return fmt.Sprintf("%.3f", v)
}

func printSummaries(w io.Writer, name string, summaries []sim.SweepSummary) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Lead (years)", "First miss (cm/s)", "Required (cm/s)", "Impacts", "Misses")
	for _, s := range summaries {
		first := "none"
		if s.FirstMissForce != nil {
			first = formatForce(*s.FirstMissForce)
		}
		t.Row(
			fmt.Sprintf("%.2f", s.LeadTimeYears),
			first,
			formatForce(s.RequiredForce),
			fmt.Sprintf("%d", s.Impacts),
			fmt.Sprintf("%d", s.Misses),
		)
	}
	_, err := fmt.Fprintf(w, "Sweep: %s\n%s\n", name, t.String())
	return err
}

func init() {
	fs := sweepCmd.Flags()
	sweepFlags.register(fs, false, false)
	fs.Float64Var(&sweepSpec.ForceMin, "force-min", 0, "Smallest deflection force in cm/s")
	fs.Float64Var(&sweepSpec.ForceMax, "force-max", 1, "Largest deflection force in cm/s")
	fs.IntVar(&sweepSpec.ForceSteps, "force-steps", 6, "Number of force values")
	fs.Float64Var(&sweepSpec.LeadMin, "lead-min", 1, "Shortest lead time in years")
	fs.Float64Var(&sweepSpec.LeadMax, "lead-max", 20, "Longest lead time in years")
	fs.IntVar(&sweepSpec.LeadSteps, "lead-steps", 4, "Number of lead time values")
	fs.BoolVar(&sweepPrintOnly, "print-only", false, "Skip GreptimeDB export even when an endpoint is configured")
	fs.BoolVar(&sweepRows, "rows", false, "Print every grid row, not just the summary")
	fs.StringVar(&sweepFormat, "format", "text", "Row output format with --rows: text, json, color or auto")
	fs.StringVar(&sweepLogFile, "log-file", "", "Also append rows to this JSONL file")
}
