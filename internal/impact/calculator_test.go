package impact

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"
)

func bennu() Params {
	return Params{DiameterKM: 0.49, VelocityKMS: 12.6}
}

func newTestCalculator(t *testing.T, opts Options) *Calculator {
	t.Helper()
	c, err := NewCalculator(opts)
	if err != nil {
		t.Fatalf("NewCalculator: %v", err)
	}
	return c
}

func TestSimulateUndeflectedImpact(t *testing.T) {
	c := newTestCalculator(t, Options{Locator: FixedLocator(LocationInland)})
	res, err := c.Simulate(bennu(), DefaultLeadTimeYears)
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	if !res.WillImpact {
		t.Fatalf("expected impact with zero deflection")
	}
	if res.MissDistanceKM != 0 {
		t.Fatalf("expected zero miss distance, got %g", res.MissDistanceKM)
	}
	want := CalculateImpactEnergy(CalculateMass(0.49, BennuDensity), 12.6)
	if !approx(res.ImpactEnergyJ, want, 1e-12) || !approx(res.ImpactEnergyJ, 5.818953924134579e18, 1e-9) {
		t.Fatalf("energy = %g, want %g", res.ImpactEnergyJ, want)
	}
	if res.Location != LocationInland || res.Consequences == nil || res.Consequences.Land == nil {
		t.Fatalf("expected inland consequences: %+v", res)
	}
	if res.Outcome != "IMPACT EVENT - Inland Catastrophe" {
		t.Fatalf("unexpected outcome %q", res.Outcome)
	}
	if len(res.Details) != 11 || res.Details[1] != "Total energy release: 1391 megatons TNT equivalent" {
		t.Fatalf("unexpected details %q", res.Details)
	}
	if res.Crater != nil || res.Severity != "" {
		t.Fatalf("illustrative model should not set crater-scaling fields")
	}
}

func TestSimulateOceanNarrative(t *testing.T) {
	c := newTestCalculator(t, Options{Locator: FixedLocator(LocationOcean)})
	res, err := c.Simulate(bennu(), 10)
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	if res.Location != LocationOcean || res.Consequences.Ocean == nil || res.Consequences.Land != nil {
		t.Fatalf("expected ocean-only consequences: %+v", res.Consequences)
	}
	if res.Outcome != "IMPACT EVENT - Deep Ocean Impact" {
		t.Fatalf("unexpected outcome %q", res.Outcome)
	}
	wantLines := []string{
		"Initial tsunami wave: 500 meters at impact point",
		"Coastal wave height: 15 meters (amplified 20-50x)",
		"Fireball radius: 3.8 km - complete vaporization",
		"Seismic magnitude: 6.7 on Richter scale",
	}
	joined := strings.Join(res.Details, "\n")
	for _, l := range wantLines {
		if !strings.Contains(joined, l) {
			t.Fatalf("missing detail %q in %q", l, res.Details)
		}
	}
}

func TestSimulateDeflectedMiss(t *testing.T) {
	c := newTestCalculator(t, DefaultOptions())
	p := bennu()
	p.DeflectionForce = 1
	res, err := c.Simulate(p, 10)
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	if res.WillImpact {
		t.Fatalf("expected miss, displacement %g km", res.MissDistanceKM)
	}
	if res.Outcome != "EARTH SAVED! Bennu will miss by 3156 km" {
		t.Fatalf("unexpected outcome %q", res.Outcome)
	}
	if res.ImpactEnergyJ <= 0 {
		t.Fatalf("energy should be reported on a miss")
	}
	if res.Consequences != nil || res.Crater != nil || res.Location != "" {
		t.Fatalf("miss should carry no consequences: %+v", res)
	}
	want := []string{
		"Deflection force of 1.00 cm/s successfully altered trajectory",
		"Total displacement: 3156 km over 10 years",
		"Population protected: 8 billion people",
		"Civilization preserved - asteroid continues safely through solar system",
	}
	if !reflect.DeepEqual(res.Details, want) {
		t.Fatalf("details = %q, want %q", res.Details, want)
	}
}

func TestSimulateThresholdBoundary(t *testing.T) {
	force, years := 0.75, 10.0
	exact := CalculateDeflection(force, years)

	atBoundary := newTestCalculator(t, Options{SafeMissDistanceKM: exact, Locator: FixedLocator(LocationOcean)})
	res, err := atBoundary.Simulate(Params{DiameterKM: 0.49, VelocityKMS: 12.6, DeflectionForce: force}, years)
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	if res.WillImpact {
		t.Fatalf("miss distance equal to the threshold must count as a miss")
	}

	above := newTestCalculator(t, Options{SafeMissDistanceKM: math.Nextafter(exact, math.Inf(1)), Locator: FixedLocator(LocationOcean)})
	res, err = above.Simulate(Params{DiameterKM: 0.49, VelocityKMS: 12.6, DeflectionForce: force}, years)
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	if !res.WillImpact {
		t.Fatalf("miss distance just under the threshold must be an impact")
	}
}

func TestSimulateThresholdModels(t *testing.T) {
	// 2 cm/s for 10 years is about 6312 km: clear of the safety margin but
	// inside Earth's radius.
	p := bennu()
	p.DeflectionForce = 2
	p.ApproachAngleDeg = Angle(45)

	safety := newTestCalculator(t, Options{Threshold: ThresholdSafetyMargin})
	res, err := safety.Simulate(p, 10)
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	if res.WillImpact {
		t.Fatalf("safety-margin model: expected miss at %g km", res.MissDistanceKM)
	}

	physical := newTestCalculator(t, Options{Threshold: ThresholdPhysicalRadius, Consequences: ModelCraterScaling})
	res, err = physical.Simulate(p, 10)
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	if !res.WillImpact {
		t.Fatalf("physical-radius model: expected impact at %g km", res.MissDistanceKM)
	}
	if physical.ThresholdKM() != EarthRadiusKM {
		t.Fatalf("unexpected threshold %g", physical.ThresholdKM())
	}
}

func TestSimulateCraterScaling(t *testing.T) {
	c := newTestCalculator(t, Options{Threshold: ThresholdPhysicalRadius, Consequences: ModelCraterScaling})
	p := bennu()
	p.ApproachAngleDeg = Angle(90)
	res, err := c.Simulate(p, 10)
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	if res.Crater == nil {
		t.Fatalf("expected crater estimate")
	}
	want := 1.161 * math.Cbrt(BennuDensity/2500) *
		math.Pow(490, 0.78) * math.Pow(12600, 0.44) * math.Pow(9.8, -0.22) / 1000
	if !approx(res.Crater.DiameterKM, want, 1e-12) {
		t.Fatalf("crater = %g, want %g", res.Crater.DiameterKM, want)
	}
	if !approx(res.Crater.DestructionRadiusKM, 10*want, 1e-12) {
		t.Fatalf("destruction radius = %g", res.Crater.DestructionRadiusKM)
	}
	if res.Severity != SeverityContinental {
		t.Fatalf("1391 Mt should be continental, got %s", res.Severity)
	}
	if res.Outcome != "IMPACT EVENT - Continental Catastrophe" {
		t.Fatalf("unexpected outcome %q", res.Outcome)
	}
	if res.Details[4] != "Seismic magnitude: 6.1 on Richter scale" {
		t.Fatalf("unexpected magnitude line %q", res.Details[4])
	}
	if res.Consequences != nil || res.Location != "" {
		t.Fatalf("crater-scaling model should not draw a location")
	}
}

func TestSimulateSeverityTiers(t *testing.T) {
	c := newTestCalculator(t, Options{Consequences: ModelCraterScaling})
	cases := []struct {
		diameter float64
		want     Severity
		outcome  string
	}{
		{0.1, SeverityRegional, "IMPACT EVENT - Regional Devastation"},
		{0.49, SeverityContinental, "IMPACT EVENT - Continental Catastrophe"},
		{10, SeverityGlobal, "IMPACT EVENT - Global Extinction-Level Event"},
	}
	for _, tc := range cases {
		res, err := c.Simulate(Params{DiameterKM: tc.diameter, VelocityKMS: 12.6, ApproachAngleDeg: Angle(45)}, 10)
		if err != nil {
			t.Fatalf("Simulate(%g): %v", tc.diameter, err)
		}
		if res.Severity != tc.want || res.Outcome != tc.outcome {
			t.Errorf("diameter %g: got %s / %q, want %s / %q", tc.diameter, res.Severity, res.Outcome, tc.want, tc.outcome)
		}
	}
}

func TestSimulateIdempotentWithFixedLocator(t *testing.T) {
	c := newTestCalculator(t, Options{Locator: FixedLocator(LocationOcean)})
	a, err := c.Simulate(bennu(), 10)
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	b, err := c.Simulate(bennu(), 10)
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("results differ:\n%+v\n%+v", a, b)
	}
}

func TestSimulateSeededLocatorReproducible(t *testing.T) {
	run := func() []Location {
		c := newTestCalculator(t, Options{Locator: NewRandomLocator(42, DefaultOceanProbability)})
		var out []Location
		for i := 0; i < 20; i++ {
			res, err := c.Simulate(bennu(), 10)
			if err != nil {
				t.Fatalf("Simulate: %v", err)
			}
			out = append(out, res.Location)
		}
		return out
	}
	if a, b := run(), run(); !reflect.DeepEqual(a, b) {
		t.Fatalf("same seed produced different locations: %v vs %v", a, b)
	}
}

func TestSimulateInvalidParameters(t *testing.T) {
	illustrative := newTestCalculator(t, Options{Locator: FixedLocator(LocationOcean)})
	crater := newTestCalculator(t, Options{Consequences: ModelCraterScaling})
	cases := []struct {
		name  string
		calc  *Calculator
		p     Params
		lead  float64
		field string
	}{
		{"zero diameter", illustrative, Params{DiameterKM: 0, VelocityKMS: 12.6}, 10, "diameter_km"},
		{"negative diameter", illustrative, Params{DiameterKM: -1, VelocityKMS: 12.6}, 10, "diameter_km"},
		{"zero velocity", illustrative, Params{DiameterKM: 0.49}, 10, "velocity_km_s"},
		{"nan velocity", illustrative, Params{DiameterKM: 0.49, VelocityKMS: math.NaN()}, 10, "velocity_km_s"},
		{"negative force", illustrative, Params{DiameterKM: 0.49, VelocityKMS: 12.6, DeflectionForce: -0.1}, 10, "deflection_force_cm_s"},
		{"negative lead", illustrative, bennu(), -1, "lead_time_years"},
		{"angle zero", illustrative, Params{DiameterKM: 0.49, VelocityKMS: 12.6, ApproachAngleDeg: Angle(0)}, 10, "approach_angle_deg"},
		{"angle above 90", crater, Params{DiameterKM: 0.49, VelocityKMS: 12.6, ApproachAngleDeg: Angle(91)}, 10, "approach_angle_deg"},
		{"missing angle", crater, bennu(), 10, "approach_angle_deg"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := tc.calc.Simulate(tc.p, tc.lead)
			if res != nil {
				t.Fatalf("expected no result, got %+v", res)
			}
			if !errors.Is(err, ErrInvalidParameter) {
				t.Fatalf("expected ErrInvalidParameter, got %v", err)
			}
			var pe *ParamError
			if !errors.As(err, &pe) || pe.Field != tc.field {
				t.Fatalf("expected ParamError on %s, got %v", tc.field, err)
			}
		})
	}
}

func TestSimulateArithmeticDegeneracy(t *testing.T) {
	c := newTestCalculator(t, Options{Locator: FixedLocator(LocationOcean)})
	res, err := c.Simulate(Params{DiameterKM: 1e120, VelocityKMS: 1e100}, 10)
	if res != nil {
		t.Fatalf("expected no result")
	}
	if !errors.Is(err, ErrArithmeticDegeneracy) {
		t.Fatalf("expected ErrArithmeticDegeneracy, got %v", err)
	}
	if errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("degeneracy must be distinct from invalid parameters")
	}
}

func TestNewCalculatorRejectsUnknownModels(t *testing.T) {
	if _, err := NewCalculator(Options{Threshold: "orbital"}); err == nil {
		t.Fatalf("expected error for unknown threshold model")
	}
	if _, err := NewCalculator(Options{Consequences: "n-body"}); err == nil {
		t.Fatalf("expected error for unknown consequence model")
	}
	if _, err := NewCalculator(Options{DensityKgM3: -1}); err == nil {
		t.Fatalf("expected error for negative density")
	}
}

func TestLocationForDraw(t *testing.T) {
	cases := []struct {
		draw, p float64
		want    Location
	}{
		{0.31, 0.7, LocationOcean},
		{0.3, 0.7, LocationInland},
		{0.0, 0.7, LocationInland},
		{0.99, 0.0, LocationInland},
		{0.0, 1.0, LocationOcean},
	}
	for _, c := range cases {
		if got := locationForDraw(c.draw, c.p); got != c.want {
			t.Errorf("locationForDraw(%g, %g) = %s, want %s", c.draw, c.p, got, c.want)
		}
	}
}
