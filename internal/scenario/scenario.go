package scenario

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"bennu-impact-sim/internal/impact"
)

// Scenario is a named set of simulation inputs.
type Scenario struct {
	Name             string  `yaml:"name" json:"name"`
	Description      string  `yaml:"description,omitempty" json:"description,omitempty"`
	DiameterKM       float64 `yaml:"diameter_km" json:"diameter_km"`
	VelocityKMS      float64 `yaml:"velocity_km_s" json:"velocity_km_s"`
	DeflectionForce  float64 `yaml:"deflection_force_cm_s" json:"deflection_force_cm_s"`
	// ApproachAngleDeg and LeadTimeYears are nil when not given. An explicit
	// zero is kept and passed to the calculator as is.
	ApproachAngleDeg *float64 `yaml:"approach_angle_deg,omitempty" json:"approach_angle_deg,omitempty"`
	LeadTimeYears    *float64 `yaml:"lead_time_years,omitempty" json:"lead_time_years,omitempty"`
}

// Years returns a pointer to y, for filling Scenario.LeadTimeYears.
func Years(y float64) *float64 { return &y }

// Params converts the scenario into calculator inputs. A nil angle is left
// unset.
func (s Scenario) Params() impact.Params {
	p := impact.Params{
		DiameterKM:      s.DiameterKM,
		VelocityKMS:     s.VelocityKMS,
		DeflectionForce: s.DeflectionForce,
	}
	if s.ApproachAngleDeg != nil {
		p.ApproachAngleDeg = impact.Angle(*s.ApproachAngleDeg)
	}
	return p
}

// LeadTime returns the scenario's warning time, defaulting to
// impact.DefaultLeadTimeYears when unset.
func (s Scenario) LeadTime() float64 {
	if s.LeadTimeYears == nil {
		return impact.DefaultLeadTimeYears
	}
	return *s.LeadTimeYears
}

type file struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Load reads a YAML list of scenarios from disk.
func Load(path string) ([]Scenario, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenarios: %w", err)
	}
	var f file
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse scenarios: %w", err)
	}
	seen := make(map[string]bool, len(f.Scenarios))
	for i, s := range f.Scenarios {
		if s.Name == "" {
			return nil, fmt.Errorf("scenario %d: missing name", i)
		}
		if seen[s.Name] {
			return nil, fmt.Errorf("scenario %q defined twice", s.Name)
		}
		seen[s.Name] = true
	}
	return f.Scenarios, nil
}

// Catalog indexes scenarios by name.
type Catalog map[string]Scenario

// NewCatalog merges the built-in presets with extra; extra wins on name
// collisions.
func NewCatalog(extra []Scenario) Catalog {
	c := BuiltIn()
	for _, s := range extra {
		c[s.Name] = s
	}
	return c
}

// Lookup returns the named scenario.
func (c Catalog) Lookup(name string) (Scenario, bool) {
	s, ok := c[name]
	return s, ok
}

// Sorted returns the scenarios ordered by name.
func (c Catalog) Sorted() []Scenario {
	out := make([]Scenario, 0, len(c))
	for _, s := range c {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
