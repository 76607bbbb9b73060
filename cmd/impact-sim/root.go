package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"bennu-impact-sim/internal/config"
	"bennu-impact-sim/internal/logging"
	"bennu-impact-sim/internal/scenario"
)

var (
	configPath string
	schemaPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "impact-sim",
	Short: "Bennu impact and deflection calculator",
	Long:  "impact-sim estimates whether a deflected Bennu-class asteroid still hits Earth and what the impact would do.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger := logging.New(logLevel)
		slog.SetDefault(logger)
		cmd.SetContext(logging.NewContext(cmd.Context(), logger))
	},
	SilenceUsage: true,
}

// Execute runs the root command. SIGINT and SIGTERM cancel the command
// context.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to configuration YAML (built-in defaults when empty)")
	rootCmd.PersistentFlags().StringVar(&schemaPath, "schema", "", "Path to CUE schema file (embedded schema when empty)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(sweepCmd)
	rootCmd.AddCommand(scenariosCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(exploreCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(replayCmd)
}

// loadConfig reads --config, or the defaults with env overrides when unset.
func loadConfig() (*config.Config, error) {
	if configPath == "" {
		return config.LoadDefault()
	}
	return config.Load(configPath, schemaPath)
}

// loadCatalog merges the built-in presets with cfg.ScenariosFile.
func loadCatalog(cfg *config.Config) (scenario.Catalog, error) {
	if cfg.ScenariosFile == "" {
		return scenario.NewCatalog(nil), nil
	}
	extra, err := scenario.Load(cfg.ScenariosFile)
	if err != nil {
		return nil, err
	}
	return scenario.NewCatalog(extra), nil
}
