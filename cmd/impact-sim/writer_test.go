package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"

	"bennu-impact-sim/internal/config"
	"bennu-impact-sim/internal/impact"
	"bennu-impact-sim/internal/scenario"
	"bennu-impact-sim/internal/sim"
)

func TestResolveFormat(t *testing.T) {
	tests := []struct {
		format string
		tty    bool
		want   string
	}{
		{"auto", true, "color"},
		{"auto", false, "text"},
		{"", false, "text"},
		{"json", true, "json"},
		{"color", false, "color"},
	}
	for _, tt := range tests {
		got, err := resolveFormat(tt.format, tt.tty)
		if err != nil {
			t.Fatalf("resolveFormat(%q): %v", tt.format, err)
		}
		if got != tt.want {
			t.Fatalf("resolveFormat(%q, %v) = %q, want %q", tt.format, tt.tty, got, tt.want)
		}
	}
	if _, err := resolveFormat("xml", false); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}

func TestNewWritersFormats(t *testing.T) {
	w, cleanup, err := newWriters("json", "", "")
	if err != nil {
		t.Fatalf("newWriters returned error: %v", err)
	}
	cleanup()
	if _, ok := w.(*sim.JSONStdoutWriter); !ok {
		t.Fatalf("expected *sim.JSONStdoutWriter, got %T", w)
	}

	w, cleanup, err = newWriters("text", "", "")
	if err != nil {
		t.Fatalf("newWriters returned error: %v", err)
	}
	cleanup()
	if _, ok := w.(*sim.StdoutWriter); !ok {
		t.Fatalf("expected *sim.StdoutWriter, got %T", w)
	}
}

func TestNewWritersLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.jsonl")
	w, cleanup, err := newWriters("json", "", path)
	if err != nil {
		t.Fatalf("newWriters returned error: %v", err)
	}
	if _, ok := w.(*sim.MultiWriter); !ok {
		t.Fatalf("expected *sim.MultiWriter, got %T", w)
	}
	row := sim.ResultRow{RunID: "r1", Scenario: "custom"}
	if err := w.Write(row); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	cleanup()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), `"run_id":"r1"`) {
		t.Fatalf("log file missing row: %s", data)
	}
}

func TestExportWriterDisabled(t *testing.T) {
	cfg := config.Default()
	w, err := exportWriter(cfg, false)
	if err != nil || w != nil {
		t.Fatalf("expected no export without endpoint, got %v, %v", w, err)
	}
	cfg.Greptime.Endpoint = "greptime.local"
	w, err = exportWriter(cfg, true)
	if err != nil || w != nil {
		t.Fatalf("expected no export in print-only mode, got %v, %v", w, err)
	}
}

func TestParamFlagsResolve(t *testing.T) {
	var p paramFlags
	p.register(pflag.NewFlagSet("test", pflag.ContinueOnError), true, true)

	if err := p.fs.Parse([]string{"--scenario", "kinetic-impactor", "--lead", "2", "--location", "inland", "--model", "crater-scaling"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	cfg := config.Default()
	sc, err := p.resolve(cfg, scenario.NewCatalog(nil))
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if sc.Name != "kinetic-impactor" || sc.LeadTime() != 2 || sc.DeflectionForce != 1.0 {
		t.Fatalf("unexpected scenario %+v", sc)
	}
	opts, err := p.options(cfg)
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	if opts.Consequences != "crater-scaling" {
		t.Fatalf("model flag not applied: %q", opts.Consequences)
	}
	if loc := opts.Locator.PickLocation(); loc != "inland" {
		t.Fatalf("expected inland locator, got %q", loc)
	}

	var bad paramFlags
	bad.register(pflag.NewFlagSet("test", pflag.ContinueOnError), true, true)
	if err := bad.fs.Parse([]string{"--scenario", "nope"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, err := bad.resolve(cfg, scenario.NewCatalog(nil)); err == nil {
		t.Fatalf("expected unknown scenario error")
	}
}

func TestParamFlagsExplicitZeroLead(t *testing.T) {
	var p paramFlags
	p.register(pflag.NewFlagSet("test", pflag.ContinueOnError), true, true)
	if err := p.fs.Parse([]string{"--force", "1", "--lead", "0", "--location", "ocean"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	cfg := config.Default()
	sc, err := p.resolve(cfg, scenario.NewCatalog(nil))
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if sc.LeadTime() != 0 {
		t.Fatalf("--lead 0 replaced with %g", sc.LeadTime())
	}
	opts, err := p.options(cfg)
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	calc, err := impact.NewCalculator(opts)
	if err != nil {
		t.Fatalf("NewCalculator: %v", err)
	}
	row, err := sim.NewSimulator(calc, nil, nil).Evaluate(sc)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if row.LeadTimeYears != 0 || !row.Result.WillImpact {
		t.Fatalf("zero warning time must be a direct hit, got lead %v miss %.0f km", row.LeadTimeYears, row.Result.MissDistanceKM)
	}
}

func TestParamFlagsExplicitZeroAngle(t *testing.T) {
	var p paramFlags
	p.register(pflag.NewFlagSet("test", pflag.ContinueOnError), true, true)
	if err := p.fs.Parse([]string{"--angle", "0", "--model", "crater-scaling"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	cfg := config.Default()
	sc, err := p.resolve(cfg, scenario.NewCatalog(nil))
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	opts, err := p.options(cfg)
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	calc, err := impact.NewCalculator(opts)
	if err != nil {
		t.Fatalf("NewCalculator: %v", err)
	}
	_, err = calc.Simulate(sc.Params(), sc.LeadTime())
	if !errors.Is(err, impact.ErrInvalidParameter) || !strings.Contains(err.Error(), "(0, 90]") {
		t.Fatalf("expected angle range error, got %v", err)
	}
}
