package impact

import (
	"math"
	"testing"
)

func approx(a, b, relTol float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= relTol*math.Max(math.Abs(a), math.Abs(b))
}

func TestCalculateMassMonotonic(t *testing.T) {
	prev := 0.0
	for _, d := range []float64{0.01, 0.1, 0.49, 1, 10} {
		m := CalculateMass(d, BennuDensity)
		if m <= prev {
			t.Fatalf("mass not increasing at diameter %g: %g <= %g", d, m, prev)
		}
		prev = m
	}
	// doubling the diameter multiplies the mass by 8
	if got := CalculateMass(1, 1000) / CalculateMass(0.5, 1000); !approx(got, 8, 1e-12) {
		t.Fatalf("expected cubic growth, ratio %g", got)
	}
	// doubling the density doubles the mass
	if got := CalculateMass(0.49, 2000) / CalculateMass(0.49, 1000); !approx(got, 2, 1e-12) {
		t.Fatalf("expected linear density growth, ratio %g", got)
	}
}

func TestCalculateMassDegenerate(t *testing.T) {
	if m := CalculateMass(0, BennuDensity); m != 0 {
		t.Fatalf("expected zero mass, got %g", m)
	}
	if m := CalculateMass(-1, BennuDensity); m >= 0 {
		t.Fatalf("expected negative mass for negative diameter, got %g", m)
	}
}

func TestCalculateImpactEnergy(t *testing.T) {
	cases := []struct{ mass, vel float64 }{
		{0, 0}, {1, 0}, {0, 10}, {7.33e10, 12.6}, {1e15, 30},
	}
	for _, c := range cases {
		got := CalculateImpactEnergy(c.mass, c.vel)
		want := 0.5 * c.mass * math.Pow(c.vel*1000, 2)
		if got < 0 {
			t.Fatalf("negative energy for %+v", c)
		}
		if !approx(got, want, 1e-12) {
			t.Fatalf("energy(%g, %g) = %g, want %g", c.mass, c.vel, got, want)
		}
	}
}

func TestEnergyToMegatonsLinear(t *testing.T) {
	if got := EnergyToMegatons(JoulesPerMegaton); got != 1 {
		t.Fatalf("expected 1 Mt, got %g", got)
	}
	for _, x := range []float64{1, 1e15, 5.8e18} {
		if !approx(EnergyToMegatons(2*x), 2*EnergyToMegatons(x), 1e-12) {
			t.Fatalf("energyToMegatons not linear at %g", x)
		}
	}
}

func TestCalculateDeflectionLinear(t *testing.T) {
	if d := CalculateDeflection(5, 0); d != 0 {
		t.Fatalf("expected zero displacement with zero lead time, got %g", d)
	}
	base := CalculateDeflection(1, 10)
	if !approx(CalculateDeflection(3, 10), 3*base, 1e-12) {
		t.Fatalf("deflection not linear in force")
	}
	if !approx(CalculateDeflection(1, 30), 3*base, 1e-12) {
		t.Fatalf("deflection not linear in time")
	}
	// 1 cm/s for one year: 0.01 m/s * 31557600 s = 315576 m
	if got := CalculateDeflection(1, 1); !approx(got, 315.576, 1e-12) {
		t.Fatalf("unexpected displacement %g", got)
	}
}

func TestCalculateCraterDiameterReference(t *testing.T) {
	got := CalculateCraterDiameter(0.49, 12.6, 90, BennuDensity)
	want := 1.161 * math.Cbrt(BennuDensity/2500) *
		math.Pow(490, 0.78) * math.Pow(12600, 0.44) * math.Pow(9.8, -0.22) / 1000
	if !approx(got, want, 1e-12) {
		t.Fatalf("crater = %g, formula gives %g", got, want)
	}
	if math.Abs(got-4.3834) > 1e-3 {
		t.Fatalf("crater = %g, expected about 4.3834 km", got)
	}
	if shallow := CalculateCraterDiameter(0.49, 12.6, 30, BennuDensity); shallow >= got {
		t.Fatalf("shallower approach should give a smaller crater: %g >= %g", shallow, got)
	}
}

func TestSeismicMagnitude(t *testing.T) {
	if got := SeismicMagnitude(1); got != 4 {
		t.Fatalf("expected magnitude 4 at 1 Mt, got %g", got)
	}
	if got := SeismicMagnitude(100); !approx(got, 5.34, 1e-12) {
		t.Fatalf("expected 5.34 at 100 Mt, got %g", got)
	}
}

func TestClassifySeverityPartition(t *testing.T) {
	cases := []struct {
		mt   float64
		want Severity
	}{
		{0, SeverityRegional},
		{99.999, SeverityRegional},
		{100, SeverityContinental},
		{math.Nextafter(100, 0), SeverityRegional},
		{9999.9, SeverityContinental},
		{10000, SeverityGlobal},
		{math.Nextafter(10000, 0), SeverityContinental},
		{1e9, SeverityGlobal},
	}
	for _, c := range cases {
		if got := ClassifySeverity(c.mt); got != c.want {
			t.Errorf("ClassifySeverity(%v) = %s, want %s", c.mt, got, c.want)
		}
	}
}

func TestCalculateConsequencesExclusive(t *testing.T) {
	energy := 5.818953924134579e18
	ocean := CalculateConsequences(energy, LocationOcean)
	if ocean.Ocean == nil || ocean.Land != nil {
		t.Fatalf("ocean impact should only carry ocean effects: %+v", ocean)
	}
	if ocean.Ocean.TsunamiInitialHeightM != 500 || ocean.Ocean.TsunamiCoastalHeightM != 15 || ocean.Ocean.CoastalInundationKM != 10 {
		t.Fatalf("unexpected ocean constants: %+v", *ocean.Ocean)
	}
	land := CalculateConsequences(energy, LocationInland)
	if land.Land == nil || land.Ocean != nil {
		t.Fatalf("inland impact should only carry land effects: %+v", land)
	}
	if land.Land.EjectaThickness10KMM != 10 || land.Land.EjectaThickness30KMM != 1 || land.Land.VegetationIgnitionKM != 100 {
		t.Fatalf("unexpected land constants: %+v", *land.Land)
	}
	if land.FireballRadiusKM != 3.8 || land.SevereDamageRadiusKM != 45 || land.ModerateDamageRadiusKM != 95 || land.AffectedAreaKM2 != 6300 || land.FeltRadiusKM != 500 {
		t.Fatalf("unexpected flat constants: %+v", land)
	}
	if !approx(land.CraterDiameterKM, 0.0328749, 1e-5) {
		t.Fatalf("unexpected crater %g", land.CraterDiameterKM)
	}
	if !approx(land.CraterDepthKM, 0.33*land.CraterDiameterKM, 1e-12) || !approx(land.EjectaBlanketKM, 5*land.CraterDiameterKM, 1e-12) {
		t.Fatalf("crater depth/ejecta not derived from diameter: %+v", land)
	}
	if !approx(land.EarthquakeMagnitude, 6.70245, 1e-5) {
		t.Fatalf("unexpected magnitude %g", land.EarthquakeMagnitude)
	}
	if !approx(land.StrongShakingRadiusKM, math.Pow(10, 0.5*land.EarthquakeMagnitude-2), 1e-12) {
		t.Fatalf("unexpected shaking radius %g", land.StrongShakingRadiusKM)
	}
}

func TestRequiredDeflectionForce(t *testing.T) {
	f := RequiredDeflectionForce(SafeMissDistanceKM, 10)
	if !approx(f, 0.7922021953507238, 1e-12) {
		t.Fatalf("unexpected force %g", f)
	}
	if !approx(CalculateDeflection(f, 10), SafeMissDistanceKM, 1e-12) {
		t.Fatalf("force does not invert the deflection model")
	}
	if !math.IsInf(RequiredDeflectionForce(100, 0), 1) {
		t.Fatalf("zero lead time should need infinite force")
	}
}
