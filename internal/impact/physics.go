// Closed-form physics and empirical relations
package impact

import "math"

// CalculateMass returns the mass in kg of a uniform sphere of the given
// diameter (km) and density (kg/m³). Non-positive diameters are not rejected
// here and yield non-positive masses.
func CalculateMass(diameterKM, densityKgM3 float64) float64 {
	radius := diameterKM * 1000 / 2
	volume := 4.0 / 3.0 * math.Pi * math.Pow(radius, 3)
	return volume * densityKgM3
}

// CalculateImpactEnergy returns the kinetic energy in joules for a mass (kg)
// moving at velocityKMS (km/s).
func CalculateImpactEnergy(massKg, velocityKMS float64) float64 {
	v := velocityKMS * 1000
	return 0.5 * massKg * v * v
}

// EnergyToMegatons converts joules to megatons of TNT.
func EnergyToMegatons(joules float64) float64 {
	return joules / JoulesPerMegaton
}

// CalculateDeflection returns the displacement in km produced by a constant
// velocity change of forceCMS applied over years. The model is a linear drift,
// not an orbit propagation.
func CalculateDeflection(forceCMS, years float64) float64 {
	deltaV := forceCMS / 100
	seconds := years * secondsPerYear
	return deltaV * seconds / 1000
}

// CalculateCraterDiameter estimates the crater diameter in km from projectile
// diameter (km), velocity (km/s), impact angle from horizontal (degrees) and
// projectile density (kg/m³):
//
//	D = 1.161 · (ρp/ρt)^(1/3) · L^0.78 · (v·sin θ)^0.44 · g^-0.22
//
// with L in m and v in m/s.
func CalculateCraterDiameter(diameterKM, velocityKMS, angleDeg, densityKgM3 float64) float64 {
	diameterM := diameterKM * 1000
	effectiveVelocity := velocityKMS * 1000 * math.Sin(angleDeg*math.Pi/180)
	densityRatio := math.Cbrt(densityKgM3 / TargetDensity)

	craterM := craterScale * densityRatio *
		math.Pow(diameterM, craterDiameterExponent) *
		math.Pow(effectiveVelocity, craterVelocityExponent) *
		math.Pow(SurfaceGravity, craterGravityExponent)
	return craterM / 1000
}

// SeismicMagnitude estimates the Richter magnitude of an impact releasing the
// given megatons.
func SeismicMagnitude(megatons float64) float64 {
	return 4.0 + 0.67*math.Log10(megatons)
}

// energyMagnitude is the joule-based magnitude used by the illustrative model.
func energyMagnitude(joules float64) float64 {
	return 0.67*math.Log10(joules) - 5.87
}

// simpleCraterDiameter is the energy-only crater estimate (km) of the
// illustrative model.
func simpleCraterDiameter(joules float64) float64 {
	return 0.0001 * math.Pow(joules, 0.294) / 1000
}

// strongShakingRadius is the radius in km of strong ground shaking for a
// given magnitude.
func strongShakingRadius(magnitude float64) float64 {
	return math.Pow(10, 0.5*magnitude-2)
}

// RequiredDeflectionForce inverts CalculateDeflection: the force in cm/s that
// moves the body missKM over years. Zero lead time needs an infinite force.
func RequiredDeflectionForce(missKM, years float64) float64 {
	if years <= 0 {
		return math.Inf(1)
	}
	return missKM * 1000 / (years * secondsPerYear) * 100
}
