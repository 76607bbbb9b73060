package scenario

import "bennu-impact-sim/internal/impact"

// BuiltIn returns the predefined scenarios.
func BuiltIn() Catalog {
	return Catalog{
		"bennu-2182": {
			Name:             "bennu-2182",
			Description:      "Bennu on its closest modeled approach with no mitigation.",
			DiameterKM:       0.49,
			VelocityKMS:      12.6,
			ApproachAngleDeg: impact.Angle(45),
			LeadTimeYears:    Years(10),
		},
		"kinetic-impactor": {
			Name:             "kinetic-impactor",
			Description:      "A DART-style spacecraft strike a decade ahead of impact.",
			DiameterKM:       0.49,
			VelocityKMS:      12.6,
			DeflectionForce:  1.0,
			ApproachAngleDeg: impact.Angle(45),
			LeadTimeYears:    Years(10),
		},
		"gravity-tractor": {
			Name:             "gravity-tractor",
			Description:      "A station-keeping spacecraft tugs gently for thirty years.",
			DiameterKM:       0.49,
			VelocityKMS:      12.6,
			DeflectionForce:  0.3,
			ApproachAngleDeg: impact.Angle(45),
			LeadTimeYears:    Years(30),
		},
		"late-detection": {
			Name:             "late-detection",
			Description:      "A full-strength impactor launched only six months before impact.",
			DiameterKM:       0.49,
			VelocityKMS:      12.6,
			DeflectionForce:  1.0,
			ApproachAngleDeg: impact.Angle(45),
			LeadTimeYears:    Years(0.5),
		},
		"tunguska-class": {
			Name:             "tunguska-class",
			Description:      "A 60 m stony body similar to the 1908 Tunguska airburst.",
			DiameterKM:       0.06,
			VelocityKMS:      15,
			ApproachAngleDeg: impact.Angle(35),
			LeadTimeYears:    Years(1),
		},
		"chicxulub-class": {
			Name:             "chicxulub-class",
			Description:      "A 10 km body comparable to the end-Cretaceous impactor.",
			DiameterKM:       10,
			VelocityKMS:      20,
			ApproachAngleDeg: impact.Angle(60),
			LeadTimeYears:    Years(10),
		},
	}
}
