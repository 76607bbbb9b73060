// Reference constants for the impact model
package impact

// BennuData holds physical reference values for asteroid 101955 Bennu.
var BennuData = struct {
	DiameterKM  float64
	VelocityKMS float64
	DensityKgM3 float64
}{
	DiameterKM:  0.49,
	VelocityKMS: 12.6,
	DensityKgM3: BennuDensity,
}

// EarthData holds Earth reference values used as thresholds and in narratives.
var EarthData = struct {
	RadiusKM   float64
	Population float64
	GravityMS2 float64
}{
	RadiusKM:   EarthRadiusKM,
	Population: EarthPopulation,
	GravityMS2: SurfaceGravity,
}

const (
	// BennuDensity is Bennu's bulk density in kg/m³.
	BennuDensity = 1190.0
	// EarthRadiusKM is the mean Earth radius.
	EarthRadiusKM = 6371.0
	// EarthPopulation is the population figure quoted in narratives.
	EarthPopulation = 8e9
	// SurfaceGravity in m/s².
	SurfaceGravity = 9.8
	// TargetDensity is the crustal density assumed by the crater law (kg/m³).
	TargetDensity = 2500.0

	// JoulesPerMegaton is the TNT equivalence.
	JoulesPerMegaton = 4.184e15

	// SafeMissDistanceKM is the miss distance the safety-margin threshold requires.
	SafeMissDistanceKM = 2500.0

	// BaselineTrajectoryOffsetKM is the modeled miss distance without any
	// deflection. Zero means an undeflected body always hits.
	BaselineTrajectoryOffsetKM = 0.0

	// DefaultLeadTimeYears is the warning time used when none is given.
	DefaultLeadTimeYears = 10.0

	// DefaultOceanProbability is the chance a random impact lands in the ocean.
	DefaultOceanProbability = 0.7

	secondsPerYear = 365.25 * 24 * 3600
)

// Crater scaling law coefficients (transient crater, gravity regime).
const (
	craterScale            = 1.161
	craterDiameterExponent = 0.78
	craterVelocityExponent = 0.44
	craterGravityExponent  = -0.22
	destructionCraterRatio = 10.0
)

// Severity tier boundaries in megatons. A value on a boundary belongs to the
// higher tier.
const (
	RegionalLimitMt    = 100.0
	ContinentalLimitMt = 10000.0
)

// Effects is a set of flat illustrative magnitudes. These are demo numbers
// chosen for the narrative, not outputs of a physical model.
type Effects struct {
	FireballRadiusKM       float64
	SevereDamageRadiusKM   float64
	ModerateDamageRadiusKM float64
	AffectedAreaKM2        float64
	FeltRadiusKM           float64
}

// IllustrativeEffects maps each impact location to its constant magnitudes.
var IllustrativeEffects = map[Location]Effects{
	LocationOcean: {
		FireballRadiusKM:       3.8,
		SevereDamageRadiusKM:   45,
		ModerateDamageRadiusKM: 95,
		AffectedAreaKM2:        6300,
		FeltRadiusKM:           500,
	},
	LocationInland: {
		FireballRadiusKM:       3.8,
		SevereDamageRadiusKM:   45,
		ModerateDamageRadiusKM: 95,
		AffectedAreaKM2:        6300,
		FeltRadiusKM:           500,
	},
}

// IllustrativeOcean holds the constant tsunami figures for ocean impacts.
var IllustrativeOcean = OceanEffects{
	TsunamiInitialHeightM: 500,
	TsunamiCoastalHeightM: 15,
	CoastalInundationKM:   10,
}

// IllustrativeLand holds the constant ejecta and fire figures for inland impacts.
var IllustrativeLand = LandEffects{
	EjectaThickness10KMM: 10,
	EjectaThickness30KMM: 1,
	VegetationIgnitionKM: 100,
}
