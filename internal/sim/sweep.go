package sim

import (
	"context"
	"fmt"

	"bennu-impact-sim/internal/config"
	"bennu-impact-sim/internal/logging"
	"bennu-impact-sim/internal/scenario"
)

// SweepSpec is a deflection force × lead time grid. Steps of 1 use the
// minimum only.
type SweepSpec struct {
	ForceMin, ForceMax float64
	ForceSteps         int
	LeadMin, LeadMax   float64
	LeadSteps          int
}

// SweepSpecFromConfig copies the sweep section of the config.
func SweepSpecFromConfig(c config.Sweep) SweepSpec {
	return SweepSpec{
		ForceMin:   c.ForceMinCMS,
		ForceMax:   c.ForceMaxCMS,
		ForceSteps: c.ForceSteps,
		LeadMin:    c.LeadMinYears,
		LeadMax:    c.LeadMaxYears,
		LeadSteps:  c.LeadSteps,
	}
}

// Validate checks the grid bounds.
func (s SweepSpec) Validate() error {
	if s.ForceSteps < 1 || s.LeadSteps < 1 {
		return fmt.Errorf("sweep steps must be at least 1 (force=%d, lead=%d)", s.ForceSteps, s.LeadSteps)
	}
	if s.ForceMin < 0 || s.ForceMax < s.ForceMin {
		return fmt.Errorf("invalid force range [%g, %g]", s.ForceMin, s.ForceMax)
	}
	if s.LeadMin < 0 || s.LeadMax < s.LeadMin {
		return fmt.Errorf("invalid lead time range [%g, %g]", s.LeadMin, s.LeadMax)
	}
	return nil
}

// Points returns the grid's force and lead time values.
func (s SweepSpec) Points() (forces, leads []float64) {
	return linspace(s.ForceMin, s.ForceMax, s.ForceSteps), linspace(s.LeadMin, s.LeadMax, s.LeadSteps)
}

func linspace(min, max float64, n int) []float64 {
	if n <= 1 {
		return []float64{min}
	}
	out := make([]float64, n)
	step := (max - min) / float64(n-1)
	for i := range out {
		out[i] = min + float64(i)*step
	}
	out[n-1] = max
	return out
}

// SweepSummary reports, per lead time, the smallest swept force that avoided
// impact and the analytic minimum.
type SweepSummary struct {
	LeadTimeYears  float64  `json:"lead_time_years"`
	FirstMissForce *float64 `json:"first_miss_force_cm_s,omitempty"`
	RequiredForce  float64  `json:"required_force_cm_s"`
	Impacts        int      `json:"impacts"`
	Misses         int      `json:"misses"`
}

// Sweep evaluates base over the grid, writes every row, and summarises the
// outcome per lead time.
func (s *Simulator) Sweep(ctx context.Context, base scenario.Scenario, spec SweepSpec) ([]ResultRow, []SweepSummary, error) {
	if err := spec.Validate(); err != nil {
		return nil, nil, err
	}
	log := logging.FromContext(ctx)
	forces, leads := spec.Points()
	log.Info("starting sweep", "scenario", base.Name, "forces", len(forces), "lead_times", len(leads))
	rows := make([]ResultRow, 0, len(forces)*len(leads))
	summaries := make([]SweepSummary, 0, len(leads))

	for _, lead := range leads {
		sum := SweepSummary{LeadTimeYears: lead, RequiredForce: s.calc.RequiredForce(lead)}
		for _, force := range forces {
			if err := ctx.Err(); err != nil {
				return rows, summaries, err
			}
			name := fmt.Sprintf("%s/f=%.3f,t=%.2f", base.Name, force, lead)
			p := base.Params()
			p.DeflectionForce = force
			row, err := s.evaluate(name, p, lead)
			if err != nil {
				return rows, summaries, err
			}
			rows = append(rows, row)
			if row.Result.WillImpact {
				sum.Impacts++
				continue
			}
			sum.Misses++
			if sum.FirstMissForce == nil {
				f := force
				sum.FirstMissForce = &f
			}
		}
		summaries = append(summaries, sum)
	}

	if err := s.writeRows(rows); err != nil {
		return rows, summaries, err
	}
	log.Info("sweep complete", "scenario", base.Name, "points", len(rows))
	return rows, summaries, nil
}
