package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"bennu-impact-sim/internal/config"
	"bennu-impact-sim/internal/sim"
)

// resolveFormat maps --format to a concrete writer format. auto picks color
// on a terminal and text otherwise.
func resolveFormat(format string, tty bool) (string, error) {
	switch format {
	case "text", "json", "color":
		return format, nil
	case "", "auto":
		if tty {
			return "color", nil
		}
		return "text", nil
	}
	return "", fmt.Errorf("unknown format %q (want text, json, color or auto)", format)
}

func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0
	}
	return w
}

// newWriters sets up the stdout writer for format and, when logFile is set,
// a JSONL copy. It returns the writer and a cleanup function to close any
// resources.
func newWriters(format, header, logFile string) (sim.ResultWriter, func(), error) {
	cleanup := func() {}
	resolved, err := resolveFormat(format, stdoutIsTerminal())
	if err != nil {
		return nil, nil, err
	}
	var writer sim.ResultWriter
	switch resolved {
	case "json":
		writer = sim.NewJSONStdoutWriter()
	case "color":
		writer = sim.NewColorStdoutWriter(header, terminalWidth())
	default:
		writer = sim.NewStdoutWriter()
	}
	if logFile == "" {
		return writer, cleanup, nil
	}
	fw, err := sim.NewFileWriter(logFile)
	if err != nil {
		return nil, nil, err
	}
	cleanup = func() { fw.Close() }
	return sim.NewMultiWriter(writer, fw), cleanup, nil
}

// exportWriter returns a GreptimeDB writer when an endpoint is configured and
// printOnly is false, and nil otherwise.
func exportWriter(cfg *config.Config, printOnly bool) (sim.ResultWriter, error) {
	if printOnly || cfg.Greptime.Endpoint == "" {
		return nil, nil
	}
	w, err := sim.NewGreptimeDBWriter(cfg.Greptime)
	if err != nil {
		return nil, fmt.Errorf("init GreptimeDB writer: %w", err)
	}
	return w, nil
}

// modelHeader describes the calculator configuration for the color writer.
func modelHeader(cfg *config.Config) string {
	return cfg.Calculator.ThresholdModel + " / " + cfg.Calculator.ConsequenceModel
}
