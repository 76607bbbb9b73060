// Presentation strings for results
package impact

import "fmt"

func missNarrative(p Params, deflection, leadYears float64) (string, []string) {
	outcome := fmt.Sprintf("EARTH SAVED! Bennu will miss by %.0f km", BaselineTrajectoryOffsetKM+deflection)
	return outcome, []string{
		fmt.Sprintf("Deflection force of %.2f cm/s successfully altered trajectory", p.DeflectionForce),
		fmt.Sprintf("Total displacement: %.0f km over %g years", deflection, leadYears),
		fmt.Sprintf("Population protected: %s people", populationText()),
		"Civilization preserved - asteroid continues safely through solar system",
	}
}

func oceanNarrative(c Consequences) (string, []string) {
	return "IMPACT EVENT - Deep Ocean Impact", []string{
		"Location: Atlantic Ocean (33°N, 65°W) - between New York and Bermuda",
		"Water depth: 5,000-6,000 meters",
		fmt.Sprintf("Total energy release: %.0f megatons TNT equivalent", c.EnergyMegatons),
		fmt.Sprintf("Initial tsunami wave: %g meters at impact point", c.Ocean.TsunamiInitialHeightM),
		fmt.Sprintf("Coastal wave height: %g meters (amplified 20-50x)", c.Ocean.TsunamiCoastalHeightM),
		fmt.Sprintf("Coastal inundation: %g km inland", c.Ocean.CoastalInundationKM),
		fmt.Sprintf("Fireball radius: %g km - complete vaporization", c.FireballRadiusKM),
		fmt.Sprintf("Seismic magnitude: %.1f on Richter scale", c.EarthquakeMagnitude),
		"Affected coastlines: Eastern US, Caribbean, Western Europe, West Africa",
	}
}

func inlandNarrative(c Consequences) (string, []string) {
	return "IMPACT EVENT - Inland Catastrophe", []string{
		"Location: Central United States (40°N, 100°W) - agricultural heartland",
		fmt.Sprintf("Total energy release: %.0f megatons TNT equivalent", c.EnergyMegatons),
		fmt.Sprintf("Crater: %.1f km wide, %.0f m deep", c.CraterDiameterKM, c.CraterDepthKM*1000),
		fmt.Sprintf("Fireball radius: %g km - complete vaporization", c.FireballRadiusKM),
		fmt.Sprintf("Severe damage zone: %g km radius - 100%% fatalities", c.SevereDamageRadiusKM),
		fmt.Sprintf("Moderate damage zone: %g km radius - building collapse", c.ModerateDamageRadiusKM),
		fmt.Sprintf("Total destroyed area: %.0f km²", c.AffectedAreaKM2),
		fmt.Sprintf("Ejecta blanket: %.0f km from impact", c.EjectaBlanketKM),
		fmt.Sprintf("Ejecta thickness: %gm at 10km, %gm at 30km", c.Land.EjectaThickness10KMM, c.Land.EjectaThickness30KMM),
		fmt.Sprintf("Vegetation ignition: %g km radius from atmospheric heating", c.Land.VegetationIgnitionKM),
		fmt.Sprintf("Seismic magnitude: %.1f - felt %g km away", c.EarthquakeMagnitude, c.FeltRadiusKM),
	}
}

func severityNarrative(s Severity, megatons, angle float64, crater CraterEstimate) (string, []string) {
	details := []string{
		fmt.Sprintf("Total energy release: %.0f megatons TNT equivalent", megatons),
		fmt.Sprintf("Approach angle: %.0f° from horizontal", angle),
		fmt.Sprintf("Crater: %.2f km wide", crater.DiameterKM),
		fmt.Sprintf("Destruction radius: %.1f km", crater.DestructionRadiusKM),
		fmt.Sprintf("Seismic magnitude: %.1f on Richter scale", crater.SeismicMagnitude),
	}
	switch s {
	case SeverityRegional:
		return "IMPACT EVENT - Regional Devastation", append(details,
			"Damage confined to the impact region; nearby cities face severe destruction",
			"Emergency response possible from unaffected neighbouring regions",
		)
	case SeverityContinental:
		return "IMPACT EVENT - Continental Catastrophe", append(details,
			"Firestorms and ejecta fallout across the continent",
			"Months of regional climate disruption and crop failure",
			"Global economic collapse likely",
		)
	default:
		return "IMPACT EVENT - Global Extinction-Level Event", append(details,
			"Worldwide firestorms followed by years of impact winter",
			"Collapse of global food production",
			fmt.Sprintf("Population at risk: %s people", populationText()),
		)
	}
}

func populationText() string {
	return fmt.Sprintf("%.0f billion", EarthPopulation/1e9)
}
