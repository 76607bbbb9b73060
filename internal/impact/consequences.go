package impact

// CalculateConsequences builds the illustrative consequence record for an
// impact releasing energyJ joules at loc. Only the crater dimensions and the
// seismic figures depend on the energy; the remaining magnitudes come from
// IllustrativeEffects.
func CalculateConsequences(energyJ float64, loc Location) Consequences {
	crater := simpleCraterDiameter(energyJ)
	magnitude := energyMagnitude(energyJ)
	fx := IllustrativeEffects[loc]

	c := Consequences{
		EnergyMegatons:         EnergyToMegatons(energyJ),
		FireballRadiusKM:       fx.FireballRadiusKM,
		SevereDamageRadiusKM:   fx.SevereDamageRadiusKM,
		ModerateDamageRadiusKM: fx.ModerateDamageRadiusKM,
		AffectedAreaKM2:        fx.AffectedAreaKM2,
		CraterDiameterKM:       crater,
		CraterDepthKM:          0.33 * crater,
		EjectaBlanketKM:        5 * crater,
		EarthquakeMagnitude:    magnitude,
		StrongShakingRadiusKM:  strongShakingRadius(magnitude),
		FeltRadiusKM:           fx.FeltRadiusKM,
	}
	if loc == LocationOcean {
		ocean := IllustrativeOcean
		c.Ocean = &ocean
	} else {
		land := IllustrativeLand
		c.Land = &land
	}
	return c
}

// ClassifySeverity places an energy in megatons into exactly one tier.
func ClassifySeverity(megatons float64) Severity {
	switch {
	case megatons < RegionalLimitMt:
		return SeverityRegional
	case megatons < ContinentalLimitMt:
		return SeverityContinental
	default:
		return SeverityGlobal
	}
}
