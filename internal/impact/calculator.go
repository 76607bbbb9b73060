// Impact and deflection calculator
package impact

import (
	"fmt"
	"math"
	"strings"
)

// ThresholdModel selects the miss distance an asteroid must exceed to miss.
type ThresholdModel string

const (
	// ThresholdSafetyMargin requires SafeMissDistanceKM (or the configured
	// override) of clearance.
	ThresholdSafetyMargin ThresholdModel = "safety-margin"
	// ThresholdPhysicalRadius only requires clearing Earth's radius.
	ThresholdPhysicalRadius ThresholdModel = "physical-radius"
)

// ConsequenceModel selects how a confirmed impact is described.
type ConsequenceModel string

const (
	// ModelIllustrative draws an ocean/inland location and reports the
	// constant effect table.
	ModelIllustrative ConsequenceModel = "illustrative"
	// ModelCraterScaling applies the angle-aware crater law and classifies
	// severity by energy.
	ModelCraterScaling ConsequenceModel = "crater-scaling"
)

// ParseThresholdModel validates a threshold model name.
func ParseThresholdModel(s string) (ThresholdModel, error) {
	switch m := ThresholdModel(strings.ToLower(strings.TrimSpace(s))); m {
	case ThresholdSafetyMargin, ThresholdPhysicalRadius:
		return m, nil
	}
	return "", fmt.Errorf("unknown threshold model %q", s)
}

// ParseConsequenceModel validates a consequence model name.
func ParseConsequenceModel(s string) (ConsequenceModel, error) {
	switch m := ConsequenceModel(strings.ToLower(strings.TrimSpace(s))); m {
	case ModelIllustrative, ModelCraterScaling:
		return m, nil
	}
	return "", fmt.Errorf("unknown consequence model %q", s)
}

// Options configure a Calculator. Zero values take the defaults.
type Options struct {
	Threshold          ThresholdModel
	Consequences       ConsequenceModel
	SafeMissDistanceKM float64
	DensityKgM3        float64
	// Locator decides ocean vs inland for the illustrative model. Nil uses a
	// clock-seeded RandomLocator with DefaultOceanProbability.
	Locator LocationPicker
}

// DefaultOptions returns the safety-margin, illustrative configuration.
func DefaultOptions() Options {
	return Options{
		Threshold:          ThresholdSafetyMargin,
		Consequences:       ModelIllustrative,
		SafeMissDistanceKM: SafeMissDistanceKM,
		DensityKgM3:        BennuDensity,
	}
}

// Calculator turns simulation parameters into impact results. Apart from the
// location draw it holds no mutable state and is safe for concurrent use.
type Calculator struct {
	opts Options
}

// NewCalculator validates opts and fills defaults.
func NewCalculator(opts Options) (*Calculator, error) {
	if opts.Threshold == "" {
		opts.Threshold = ThresholdSafetyMargin
	}
	if opts.Consequences == "" {
		opts.Consequences = ModelIllustrative
	}
	if _, err := ParseThresholdModel(string(opts.Threshold)); err != nil {
		return nil, err
	}
	if _, err := ParseConsequenceModel(string(opts.Consequences)); err != nil {
		return nil, err
	}
	if opts.SafeMissDistanceKM == 0 {
		opts.SafeMissDistanceKM = SafeMissDistanceKM
	}
	if !(opts.SafeMissDistanceKM > 0) || math.IsInf(opts.SafeMissDistanceKM, 0) {
		return nil, fmt.Errorf("safe miss distance must be positive, got %g", opts.SafeMissDistanceKM)
	}
	if opts.DensityKgM3 == 0 {
		opts.DensityKgM3 = BennuDensity
	}
	if !(opts.DensityKgM3 > 0) || math.IsInf(opts.DensityKgM3, 0) {
		return nil, fmt.Errorf("density must be positive, got %g", opts.DensityKgM3)
	}
	if opts.Locator == nil {
		opts.Locator = NewRandomLocator(0, DefaultOceanProbability)
	}
	return &Calculator{opts: opts}, nil
}

// Options returns the effective configuration.
func (c *Calculator) Options() Options { return c.opts }

// ThresholdKM returns the miss distance that separates a hit from a miss.
func (c *Calculator) ThresholdKM() float64 {
	if c.opts.Threshold == ThresholdPhysicalRadius {
		return EarthRadiusKM
	}
	return c.opts.SafeMissDistanceKM
}

// RequiredForce returns the smallest deflection force that is not an impact
// under the configured threshold with leadYears of warning.
func (c *Calculator) RequiredForce(leadYears float64) float64 {
	return RequiredDeflectionForce(c.ThresholdKM()-BaselineTrajectoryOffsetKM, leadYears)
}

// Simulate runs one scenario with leadYears of warning. Invalid parameters
// fail with ErrInvalidParameter and non-finite intermediates with
// ErrArithmeticDegeneracy; no partial result is returned in either case.
func (c *Calculator) Simulate(p Params, leadYears float64) (*Result, error) {
	if err := c.validate(p, leadYears); err != nil {
		return nil, err
	}

	mass := CalculateMass(p.DiameterKM, c.opts.DensityKgM3)
	deflection := CalculateDeflection(p.DeflectionForce, leadYears)
	missDistance := BaselineTrajectoryOffsetKM + deflection
	energy := CalculateImpactEnergy(mass, p.VelocityKMS)
	if err := finite("deflection distance", missDistance); err != nil {
		return nil, err
	}
	if err := finite("impact energy", energy); err != nil {
		return nil, err
	}

	res := &Result{
		WillImpact:     missDistance < c.ThresholdKM(),
		MissDistanceKM: missDistance,
		ImpactEnergyJ:  energy,
		EnergyMegatons: EnergyToMegatons(energy),
	}
	if !res.WillImpact {
		res.Outcome, res.Details = missNarrative(p, deflection, leadYears)
		return res, nil
	}

	if c.opts.Consequences == ModelCraterScaling {
		return c.craterImpact(p, res)
	}
	return c.illustrativeImpact(res)
}

func (c *Calculator) illustrativeImpact(res *Result) (*Result, error) {
	loc := c.opts.Locator.PickLocation()
	if loc != LocationOcean {
		loc = LocationInland
	}
	cons := CalculateConsequences(res.ImpactEnergyJ, loc)
	if err := finite("crater diameter", cons.CraterDiameterKM); err != nil {
		return nil, err
	}
	if err := finite("earthquake magnitude", cons.EarthquakeMagnitude); err != nil {
		return nil, err
	}
	res.Location = loc
	res.Consequences = &cons
	if loc == LocationOcean {
		res.Outcome, res.Details = oceanNarrative(cons)
	} else {
		res.Outcome, res.Details = inlandNarrative(cons)
	}
	return res, nil
}

func (c *Calculator) craterImpact(p Params, res *Result) (*Result, error) {
	angle := *p.ApproachAngleDeg
	crater := CalculateCraterDiameter(p.DiameterKM, p.VelocityKMS, angle, c.opts.DensityKgM3)
	if err := finite("crater diameter", crater); err != nil {
		return nil, err
	}
	magnitude := SeismicMagnitude(res.EnergyMegatons)
	if err := finite("seismic magnitude", magnitude); err != nil {
		return nil, err
	}
	est := CraterEstimate{
		DiameterKM:          crater,
		DestructionRadiusKM: destructionCraterRatio * crater,
		SeismicMagnitude:    magnitude,
	}
	res.Crater = &est
	res.Severity = ClassifySeverity(res.EnergyMegatons)
	res.Outcome, res.Details = severityNarrative(res.Severity, res.EnergyMegatons, angle, est)
	return res, nil
}

func (c *Calculator) validate(p Params, leadYears float64) error {
	if err := positive("diameter_km", p.DiameterKM); err != nil {
		return err
	}
	if err := positive("velocity_km_s", p.VelocityKMS); err != nil {
		return err
	}
	if err := nonNegative("deflection_force_cm_s", p.DeflectionForce); err != nil {
		return err
	}
	if err := nonNegative("lead_time_years", leadYears); err != nil {
		return err
	}
	if p.ApproachAngleDeg == nil {
		if c.opts.Consequences == ModelCraterScaling {
			return &ParamError{Field: "approach_angle_deg", Value: math.NaN(), Reason: "required by the crater-scaling model"}
		}
		return nil
	}
	a := *p.ApproachAngleDeg
	if math.IsNaN(a) || a <= 0 || a > 90 {
		return &ParamError{Field: "approach_angle_deg", Value: a, Reason: "must be in (0, 90]"}
	}
	return nil
}

func positive(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return &ParamError{Field: field, Value: v, Reason: "must be a finite number greater than zero"}
	}
	return nil
}

func nonNegative(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return &ParamError{Field: field, Value: v, Reason: "must be a finite number not less than zero"}
	}
	return nil
}

func finite(quantity string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &DegeneracyError{Quantity: quantity, Value: v}
	}
	return nil
}
