package impact

import "strings"

// Location is where a confirmed impact lands.
type Location string

const (
	LocationOcean  Location = "ocean"
	LocationInland Location = "inland"
)

// ParseLocation accepts "ocean" or "inland" (case-insensitive).
func ParseLocation(s string) (Location, bool) {
	switch Location(strings.ToLower(strings.TrimSpace(s))) {
	case LocationOcean:
		return LocationOcean, true
	case LocationInland:
		return LocationInland, true
	}
	return "", false
}

// Severity is the energy tier of a confirmed impact.
type Severity string

const (
	SeverityRegional    Severity = "regional"
	SeverityContinental Severity = "continental"
	SeverityGlobal      Severity = "global"
)

// Params are the user-supplied inputs of one simulation.
type Params struct {
	DiameterKM      float64 `json:"diameter_km" yaml:"diameter_km"`
	VelocityKMS     float64 `json:"velocity_km_s" yaml:"velocity_km_s"`
	DeflectionForce float64 `json:"deflection_force_cm_s" yaml:"deflection_force_cm_s"`
	// ApproachAngleDeg is measured from the horizontal. Required by the
	// crater-scaling model, ignored otherwise.
	ApproachAngleDeg *float64 `json:"approach_angle_deg,omitempty" yaml:"approach_angle_deg,omitempty"`
}

// Angle returns a pointer to deg, for filling Params.ApproachAngleDeg.
func Angle(deg float64) *float64 { return &deg }

// OceanEffects are populated only for ocean impacts.
type OceanEffects struct {
	TsunamiInitialHeightM float64 `json:"tsunami_initial_height_m"`
	TsunamiCoastalHeightM float64 `json:"tsunami_coastal_height_m"`
	CoastalInundationKM   float64 `json:"coastal_inundation_km"`
}

// LandEffects are populated only for inland impacts.
type LandEffects struct {
	EjectaThickness10KMM float64 `json:"ejecta_thickness_10km_m"`
	EjectaThickness30KMM float64 `json:"ejecta_thickness_30km_m"`
	VegetationIgnitionKM float64 `json:"vegetation_ignition_km"`
}

// Consequences is the physical-effect record of a confirmed impact under the
// illustrative model. Exactly one of Ocean and Land is set.
type Consequences struct {
	EnergyMegatons         float64       `json:"energy_megatons"`
	FireballRadiusKM       float64       `json:"fireball_radius_km"`
	SevereDamageRadiusKM   float64       `json:"severe_damage_radius_km"`
	ModerateDamageRadiusKM float64       `json:"moderate_damage_radius_km"`
	AffectedAreaKM2        float64       `json:"affected_area_km2"`
	CraterDiameterKM       float64       `json:"crater_diameter_km"`
	CraterDepthKM          float64       `json:"crater_depth_km"`
	EjectaBlanketKM        float64       `json:"ejecta_blanket_km"`
	EarthquakeMagnitude    float64       `json:"earthquake_magnitude"`
	StrongShakingRadiusKM  float64       `json:"strong_shaking_radius_km"`
	FeltRadiusKM           float64       `json:"felt_radius_km"`
	Ocean                  *OceanEffects `json:"ocean,omitempty"`
	Land                   *LandEffects  `json:"land,omitempty"`
}

// CraterEstimate is produced by the crater-scaling model.
type CraterEstimate struct {
	DiameterKM          float64 `json:"diameter_km"`
	DestructionRadiusKM float64 `json:"destruction_radius_km"`
	SeismicMagnitude    float64 `json:"seismic_magnitude"`
}

// Result is the outcome of one simulation. It is not modified after Simulate
// returns it.
type Result struct {
	WillImpact     bool            `json:"will_impact"`
	MissDistanceKM float64         `json:"miss_distance_km"`
	ImpactEnergyJ  float64         `json:"impact_energy_j"`
	EnergyMegatons float64         `json:"energy_megatons"`
	Location       Location        `json:"location,omitempty"`
	Severity       Severity        `json:"severity,omitempty"`
	Crater         *CraterEstimate `json:"crater,omitempty"`
	Consequences   *Consequences   `json:"consequences,omitempty"`
	Outcome        string          `json:"outcome"`
	Details        []string        `json:"details"`
}
