package main

import (
	"fmt"

	"github.com/spf13/pflag"

	"bennu-impact-sim/internal/config"
	"bennu-impact-sim/internal/impact"
	"bennu-impact-sim/internal/scenario"
)

// paramFlags are the calculator inputs shared by simulate and sweep.
type paramFlags struct {
	scenario  string
	diameter  float64
	velocity  float64
	force     float64
	angle     float64
	lead      float64
	threshold string
	model     string
	location  string
	seed      int64
	fs        *pflag.FlagSet
	withForce bool
	withLead  bool
}

func (p *paramFlags) register(fs *pflag.FlagSet, withForce, withLead bool) {
	p.fs = fs
	p.withForce = withForce
	p.withLead = withLead
	fs.StringVar(&p.scenario, "scenario", "", "Start from a named preset (see 'scenarios')")
	fs.Float64Var(&p.diameter, "diameter", impact.BennuData.DiameterKM, "Asteroid diameter in km")
	fs.Float64Var(&p.velocity, "velocity", impact.BennuData.VelocityKMS, "Impact velocity in km/s")
	if withForce {
		fs.Float64Var(&p.force, "force", 0, "Deflection velocity change in cm/s")
	}
	fs.Float64Var(&p.angle, "angle", 45, "Approach angle in degrees from horizontal")
	if withLead {
		fs.Float64Var(&p.lead, "lead", impact.DefaultLeadTimeYears, "Warning time in years")
	}
	fs.StringVar(&p.threshold, "threshold", "", "Threshold model: safety-margin or physical-radius")
	fs.StringVar(&p.model, "model", "", "Consequence model: illustrative or crater-scaling")
	fs.StringVar(&p.location, "location", "random", "Impact location: random, ocean or inland")
	fs.Int64Var(&p.seed, "seed", 0, "Seed for the location draw; 0 seeds from the clock, so only non-zero seeds reproduce a run")
}

// applyConfig folds calculator flags into cfg.
func (p *paramFlags) applyConfig(cfg *config.Config) {
	if p.threshold != "" {
		cfg.Calculator.ThresholdModel = p.threshold
	}
	if p.model != "" {
		cfg.Calculator.ConsequenceModel = p.model
	}
	if p.fs.Changed("seed") {
		cfg.Calculator.Seed = p.seed
	}
}

// options returns calculator options with the location flag applied.
func (p *paramFlags) options(cfg *config.Config) (impact.Options, error) {
	p.applyConfig(cfg)
	opts, err := cfg.CalculatorOptions()
	if err != nil {
		return opts, err
	}
	switch p.location {
	case "", "random":
	default:
		loc, ok := impact.ParseLocation(p.location)
		if !ok {
			return opts, fmt.Errorf("unknown location %q", p.location)
		}
		opts.Locator = impact.FixedLocator(loc)
	}
	return opts, nil
}

// resolve builds the scenario to run: the preset or config defaults, then
// any explicitly set flags.
func (p *paramFlags) resolve(cfg *config.Config, catalog scenario.Catalog) (scenario.Scenario, error) {
	sc := scenario.Scenario{
		Name:             "custom",
		DiameterKM:       cfg.Defaults.DiameterKM,
		VelocityKMS:      cfg.Defaults.VelocityKMS,
		DeflectionForce:  cfg.Defaults.DeflectionForce,
		ApproachAngleDeg: impact.Angle(cfg.Defaults.ApproachAngleDeg),
		LeadTimeYears:    scenario.Years(cfg.Defaults.LeadTimeYears),
	}
	if p.scenario != "" {
		preset, ok := catalog.Lookup(p.scenario)
		if !ok {
			return sc, fmt.Errorf("unknown scenario %q", p.scenario)
		}
		sc = preset
	}
	if p.fs.Changed("diameter") {
		sc.DiameterKM = p.diameter
	}
	if p.fs.Changed("velocity") {
		sc.VelocityKMS = p.velocity
	}
	if p.withForce && p.fs.Changed("force") {
		sc.DeflectionForce = p.force
	}
	if p.fs.Changed("angle") {
		sc.ApproachAngleDeg = impact.Angle(p.angle)
	}
	if p.withLead && p.fs.Changed("lead") {
		sc.LeadTimeYears = scenario.Years(p.lead)
	}
	return sc, nil
}
